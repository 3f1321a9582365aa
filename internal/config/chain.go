package config

const (
	SepoliaNetwork = "sepolia"

	EnvSepoliaURL = "SEPOLIA_URL"
	EnvSepoliaKey = "SEPOLIA_KEY"
)

func loadSepolia(lookup LookupFunc) NetworkProfile {
	return NetworkProfile{
		url:        getenv(lookup, EnvSepoliaURL, ""),
		accountKey: getenv(lookup, EnvSepoliaKey, ""),
	}
}
