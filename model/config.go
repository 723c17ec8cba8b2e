package model

const CurrentStockCollectionName = "current_stocks"

// --- SYSTEM CONFIG ---
// EnvConfig holds sensitive environment settings, read once at startup.
type EnvConfig struct {
	Port          string   `json:"port"`
	Environment   string   `json:"environment"`
	MongoUri      string   `json:"mongoUri"`
	MongoDatabase string   `json:"mongoDatabase"`
	RedisUrl      string   `json:"redisUrl"`
	AlpacaKey     string   `json:"alpacaKey"`
	AlpacaSecret  string   `json:"alpacaSecret"`
	AlpacaBaseUrl string   `json:"alpacaBaseUrl"`
	AlpacaPaper   string   `json:"alpacaPaperUrl"`
	SymbolsFile   string   `json:"symbolsFile"`
	JwtSecret     string   `json:"jwtSecret"`
	FrontendUrls  []string `json:"frontendUrls"`
}

func (c *EnvConfig) IsProduction() bool {
	return c.Environment == "production"
}

func (c *EnvConfig) HasAlpaca() bool {
	return c.AlpacaKey != "" && c.AlpacaSecret != ""
}

// RuntimeConfig is the hot-swappable part of the configuration.
type RuntimeConfig struct {
	DebugMode       bool          `json:"debug" mapstructure:"debug"`
	RateLimiter     bool          `json:"rateLimiter" mapstructure:"rateLimiter"`
	ChartCacheTtl   int           `json:"chartCacheTtlSeconds" mapstructure:"chartCacheTtlSeconds"`
	DefaultTimeSpan string        `json:"defaultTimeSpan" mapstructure:"defaultTimeSpan"`
	Metrics         []MetricBlock `json:"metrics" mapstructure:"metrics"`
}

// SymbolConfig mirrors the `symbols` section of the symbols YAML file.
type SymbolConfig struct {
	Predefined []string `yaml:"predefined" json:"predefined"`
}

type SymbolsFile struct {
	Symbols SymbolConfig `yaml:"symbols"`
}

// --- Huma Structs ---

type RuntimeConfigResponse struct {
	Body RuntimeConfig
}
