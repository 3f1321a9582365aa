package buildtool

// BuildToolConfig mirrors the user config consumed by the contract build tool.
type BuildToolConfig struct {
	Paths          Paths              `json:"paths" yaml:"paths"`
	DefaultNetwork string             `json:"defaultNetwork" yaml:"defaultNetwork"`
	Networks       map[string]Network `json:"networks" yaml:"networks"`
	Solidity       Solidity           `json:"solidity" yaml:"solidity"`
}

type Paths struct {
	Sources   string `json:"sources" yaml:"sources"`
	Tests     string `json:"tests" yaml:"tests"`
	Cache     string `json:"cache" yaml:"cache"`
	Artifacts string `json:"artifacts" yaml:"artifacts"`
}

type Network struct {
	URL      string   `json:"url" yaml:"url"`
	Accounts []string `json:"accounts" yaml:"accounts"`
}

type Solidity struct {
	Version  string           `json:"version" yaml:"version"`
	Settings SoliditySettings `json:"settings" yaml:"settings"`
}

type SoliditySettings struct {
	Optimizer Optimizer `json:"optimizer" yaml:"optimizer"`
}

type Optimizer struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Runs    int  `json:"runs" yaml:"runs"`
}
