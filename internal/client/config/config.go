package config

// DefaultBaseURL is the hosted story-sharing service the client talks to.
const DefaultBaseURL = "https://hack-or-snooze-v3.herokuapp.com"

// Config holds runtime settings for the StoryHub CLI.
//
// Fields:
//   - BaseURL: root URL of the story-sharing REST service.
//   - SessionDSN: sqlite DSN of the local credential store used for
//     session restore.
type Config struct {
	BaseURL    string
	SessionDSN string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = DefaultBaseURL
	c.SessionDSN = "storyhub.db"
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
