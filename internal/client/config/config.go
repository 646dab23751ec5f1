package config

import "time"

// Config holds runtime settings for the Blogsphere CLI.
//
// Fields:
//   - APIBaseURL: base URL of the blog backend (catalog, wishlist, comments).
//   - TokenURL: token endpoint of the external identity provider.
//   - ClientID: OAuth2 client id issued by the identity provider.
//   - RequestTimeout: per-request timeout for backend calls.
type Config struct {
	APIBaseURL     string
	TokenURL       string
	ClientID       string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000"
	c.TokenURL = "http://localhost:9099/token"
	c.ClientID = "blogsphere-cli"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
