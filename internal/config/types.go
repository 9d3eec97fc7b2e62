package config

import "time"

// Config is the top-level elemex configuration, corresponding to .elemex.yml.
type Config struct {
	UpstreamURL         string `yaml:"upstream_url" koanf:"upstream_url"`
	ImageHost           string `yaml:"image_host" koanf:"image_host"`
	Port                int    `yaml:"port" koanf:"port"`
	DataDir             string `yaml:"data_dir" koanf:"data_dir"`
	CacheTTLSeconds     int    `yaml:"cache_ttl_seconds" koanf:"cache_ttl_seconds"`
	FetchTimeoutSeconds int    `yaml:"fetch_timeout_seconds" koanf:"fetch_timeout_seconds"`
	InitialSelection    int    `yaml:"initial_selection" koanf:"initial_selection"`
	AllowAllOrigins     bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// CacheTTL returns the dataset cache window as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// FetchTimeout returns the upstream fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}
