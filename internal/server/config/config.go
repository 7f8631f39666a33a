// Package config handles configuration for the landing server,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the landing server.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - SiteTitle: brand title rendered into the page and OG card.
//   - AnalyticsToken: Cloudflare Web Analytics beacon token (public); empty disables the beacon.
//   - TurnstileSiteKey / TurnstileSecret: Turnstile widget key and server-side
//     verification secret. Verification runs only when both are set.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects in-memory stores (dev/tests).
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend.
//   - S3Bucket / S3Region / S3BaseEndpoint: object storage settings.
type Config struct {
	EndpointAddr     string
	SiteTitle        string
	AnalyticsToken   string
	TurnstileSiteKey string
	TurnstileSecret  string
	DatabaseDSN      string
	S3RootUser       string
	S3RootPassword   string
	S3Bucket         string
	S3Region         string
	S3BaseEndpoint   string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.SiteTitle = "Mr. RainbowSmoke"
	c.AnalyticsToken = ""
	c.TurnstileSiteKey = ""
	c.TurnstileSecret = ""
	c.DatabaseDSN = ""
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "landing"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
