// Package buildtool projects the resolved AppConfig into the build tool's
// configuration schema and renders it.
package buildtool

import "github.com/0xPexy/deployconf/internal/config"

const (
	SolidityVersion = "0.8.17"
	OptimizerRuns   = 200
)

// DefaultPaths are fixed and do not depend on the environment.
var DefaultPaths = Paths{
	Sources:   "./contracts",
	Tests:     "./test",
	Cache:     "./cache",
	Artifacts: "./artifacts",
}

// ToBuildToolConfig maps cfg onto the build tool schema. Each network gets a
// single account, the raw key prefixed with 0x. The key is not checked.
func ToBuildToolConfig(cfg config.AppConfig) BuildToolConfig {
	nets := cfg.Networks()
	out := BuildToolConfig{
		Paths:          DefaultPaths,
		DefaultNetwork: cfg.DefaultNetwork(),
		Networks:       make(map[string]Network, len(nets)),
		Solidity: Solidity{
			Version: SolidityVersion,
			Settings: SoliditySettings{
				Optimizer: Optimizer{Enabled: true, Runs: OptimizerRuns},
			},
		},
	}
	for name, p := range nets {
		out.Networks[name] = Network{
			URL:      p.URL(),
			Accounts: []string{accountEntry(p.AccountKey())},
		}
	}
	return out
}

func accountEntry(key string) string {
	return "0x" + key
}
