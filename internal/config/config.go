package config

import (
	"os"
	"sort"
)

const (
	EnvNetwork = "NETWORK"
	EnvFile    = "DEPLOYCONF_ENV_FILE"

	DefaultNetwork = "sepolia"
	DefaultEnvFile = ".env"
)

// NetworkProfile holds the connection settings for one target network.
// The zero value is a profile with no URL and no key.
type NetworkProfile struct {
	url        string
	accountKey string
}

func NewNetworkProfile(url, accountKey string) NetworkProfile {
	return NetworkProfile{url: url, accountKey: accountKey}
}

func (p NetworkProfile) URL() string { return p.url }
func (p NetworkProfile) AccountKey() string { return p.accountKey }

// AppConfig is the resolved toolchain configuration. It is built once by Load
// and has no mutators; Networks hands out copies.
type AppConfig struct {
	defaultNetwork string
	networks       map[string]NetworkProfile
}

// NewAppConfig copies networks so later changes by the caller are not observed.
// defaultNetwork is not required to name an entry of networks.
func NewAppConfig(defaultNetwork string, networks map[string]NetworkProfile) AppConfig {
	cp := make(map[string]NetworkProfile, len(networks))
	for name, p := range networks {
		cp[name] = p
	}
	return AppConfig{defaultNetwork: defaultNetwork, networks: cp}
}

func (c AppConfig) DefaultNetwork() string { return c.defaultNetwork }

// Networks returns a copy of the network table.
func (c AppConfig) Networks() map[string]NetworkProfile {
	out := make(map[string]NetworkProfile, len(c.networks))
	for name, p := range c.networks {
		out[name] = p
	}
	return out
}

func (c AppConfig) Network(name string) (NetworkProfile, bool) {
	p, ok := c.networks[name]
	return p, ok
}

// NetworkNames returns the configured network names in sorted order.
func (c AppConfig) NetworkNames() []string {
	names := make([]string, 0, len(c.networks))
	for name := range c.networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load resolves the configuration from the process environment, after
// loading the dotenv file named by DEPLOYCONF_ENV_FILE (default ".env").
// Missing variables fall back to defaults, so Load never fails; a dotenv
// file that does not parse is skipped. Use LoadWithEnvFile to see why.
func Load() AppConfig {
	cfg, _ := LoadWithEnvFile(EnvFilePath())
	return cfg
}

// LoadWithEnvFile loads path and then resolves the configuration. The
// returned config is always usable; the error only reports a dotenv file
// that could not be read or parsed.
func LoadWithEnvFile(path string) (AppConfig, error) {
	err := LoadEnvFile(path)
	return LoadFrom(os.LookupEnv), err
}

// LoadFrom resolves the configuration from lookup without touching the
// process environment.
func LoadFrom(lookup LookupFunc) AppConfig {
	return NewAppConfig(
		getenv(lookup, EnvNetwork, DefaultNetwork),
		map[string]NetworkProfile{
			SepoliaNetwork: loadSepolia(lookup),
		},
	)
}
