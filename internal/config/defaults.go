package config

// DefaultUpstreamURL is the canonical periodic table JSON dataset.
const DefaultUpstreamURL = "https://raw.githubusercontent.com/Bowserinator/Periodic-Table-JSON/master/PeriodicTableJSON.json"

// DefaultImageHost serves element photos at /s/<name>.jpg.
const DefaultImageHost = "https://images-of-elements.com"

// DefaultConfig returns a Config with sensible defaults. The initial
// selection defaults to hydrogen; 0 starts with no selection.
func DefaultConfig() *Config {
	return &Config{
		UpstreamURL:         DefaultUpstreamURL,
		ImageHost:           DefaultImageHost,
		Port:                8080,
		DataDir:             ".elemex",
		CacheTTLSeconds:     3600,
		FetchTimeoutSeconds: 10,
		InitialSelection:    1,
		AllowAllOrigins:     false,
	}
}
