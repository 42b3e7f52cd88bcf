package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"resumelens/internal/types"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
// Precedence order:
// 1. Config file values
// 2. Environment variables (RESUMELENS_ENGINE_GAPS_THRESHOLDMONTHS, etc.)
// 3. Default values
type Config struct {
	Engine        EngineConfig        `mapstructure:"engine"`
	Server        ServerConfig        `mapstructure:"server"`
	App           AppConfig           `mapstructure:"app"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// EngineConfig holds the scoring engine's tunables. Everything the analyzers
// and the aggregator treat as a threshold or a vocabulary is surfaced here so
// scoring behavior can change without code changes.
type EngineConfig struct {
	// Weights maps dimension name to its share of the overall score.
	// Weights are renormalized over the dimensions actually scored, so they
	// do not have to sum to 1.0 exactly.
	Weights map[string]float64 `mapstructure:"weights"`

	Bands           BandsConfig           `mapstructure:"bands"`
	Extractor       ExtractorConfig       `mapstructure:"extractor"`
	Skills          SkillsConfig          `mapstructure:"skills"`
	ActionVerbs     ActionVerbsConfig     `mapstructure:"actionVerbs"`
	Quantification  QuantificationConfig  `mapstructure:"quantification"`
	Readability     ReadabilityConfig     `mapstructure:"readability"`
	Gaps            GapsConfig            `mapstructure:"gaps"`
	Recommendations RecommendationsConfig `mapstructure:"recommendations"`
	Vocabulary      VocabularyFilesConfig `mapstructure:"vocabulary"`
}

// BandsConfig holds the overall-score band thresholds
type BandsConfig struct {
	Good    int `mapstructure:"good"`    // scores >= Good are "good"
	Warning int `mapstructure:"warning"` // scores >= Warning (and < Good) are "warning"
}

// ExtractorConfig holds document extraction limits
type ExtractorConfig struct {
	MaxBytes int64         `mapstructure:"maxBytes"`
	MaxLines int           `mapstructure:"maxLines"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// SkillsConfig holds skills-density thresholds
type SkillsConfig struct {
	MinCount int `mapstructure:"minCount"` // fewer matched skills than this is a warning
}

// ActionVerbsConfig holds action-verb scoring thresholds
type ActionVerbsConfig struct {
	CriticalWeakRatio float64 `mapstructure:"criticalWeakRatio"` // weak-opener fraction above this is critical
	LongBulletWords   int     `mapstructure:"longBulletWords"`   // bullets longer than this many words are flagged
}

// QuantificationConfig holds quantification thresholds
type QuantificationConfig struct {
	MinRatio float64 `mapstructure:"minRatio"` // quantified-bullet fraction below this is a warning
}

// ReadabilityConfig holds readability thresholds
type ReadabilityConfig struct {
	MaxSentenceLength float64 `mapstructure:"maxSentenceLength"` // average words per sentence ceiling
}

// GapsConfig holds employment-gap detection thresholds
type GapsConfig struct {
	ThresholdMonths int `mapstructure:"thresholdMonths"`
}

// RecommendationsConfig holds recommendation-list limits
type RecommendationsConfig struct {
	MaxItems int `mapstructure:"maxItems"`
}

// VocabularyFilesConfig points at optional external vocabulary files.
// When unset, the built-in defaults apply.
type VocabularyFilesConfig struct {
	SkillsFile          string `mapstructure:"skillsFile"`
	ActionVerbsFile     string `mapstructure:"actionVerbsFile"`
	WeakOpenersFile     string `mapstructure:"weakOpenersFile"`
	SectionSynonymsFile string `mapstructure:"sectionSynonymsFile"`
	Watch               bool   `mapstructure:"watch"` // reload vocabulary files on change in serve mode
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"readTimeout"`
	WriteTimeout time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout  time.Duration `mapstructure:"idleTimeout"`

	// TLS Configuration
	TLS TLSConfig `mapstructure:"tls"`

	// API Authentication
	APIKeys []string `mapstructure:"apiKeys"`

	// Rate Limiting Configuration
	RateLimit RateLimitConfig `mapstructure:"rateLimit"`
}

// TLSConfig holds TLS configuration
type TLSConfig struct {
	Mode       string `mapstructure:"mode"` // "disabled" or "server"
	CertFile   string `mapstructure:"certFile"`
	KeyFile    string `mapstructure:"keyFile"`
	MinVersion string `mapstructure:"minVersion"` // "1.2" or "1.3"
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	RequestsPerMin int           `mapstructure:"requestsPerMin"`
	BurstCapacity  int           `mapstructure:"burstCapacity"`
	ByIP           bool          `mapstructure:"byIP"`
	ByAPIKey       bool          `mapstructure:"byAPIKey"`
	Window         time.Duration `mapstructure:"window"`
}

// AppConfig holds general application configuration
type AppConfig struct {
	LogLevel         string   `mapstructure:"logLevel"`
	DefaultFormat    string   `mapstructure:"defaultFormat"`
	SupportedFormats []string `mapstructure:"supportedFormats"`
	MaxUploadSize    int64    `mapstructure:"maxUploadSize"`
}

// ObservabilityConfig holds observability configuration
type ObservabilityConfig struct {
	Enabled         bool                `mapstructure:"enabled"`
	ServiceName     string              `mapstructure:"serviceName"`
	ServiceVersion  string              `mapstructure:"serviceVersion"`
	ServiceInstance string              `mapstructure:"serviceInstance"`
	ConsoleOutput   bool                `mapstructure:"consoleOutput"`
	SampleRate      float64             `mapstructure:"sampleRate"`
	Metrics         MetricsConfig       `mapstructure:"metrics"`
	CustomMetrics   CustomMetricsConfig `mapstructure:"customMetrics"`
	Console         ConsoleConfig       `mapstructure:"console"`
	Prometheus      PrometheusConfig    `mapstructure:"prometheus"`
	OTLP            OTLPConfig          `mapstructure:"otlp"`
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Enabled            bool          `mapstructure:"enabled"`
	CollectionInterval time.Duration `mapstructure:"collectionInterval"`
}

// CustomMetricsConfig holds fine-grained custom metrics configuration
type CustomMetricsConfig struct {
	Analysis        AnalysisMetricsConfig       `mapstructure:"analysis"`
	BusinessMetrics BusinessMetricsConfig       `mapstructure:"businessMetrics"`
	Infrastructure  InfrastructureMetricsConfig `mapstructure:"infrastructure"`
}

// AnalysisMetricsConfig holds analysis pipeline metrics configuration
type AnalysisMetricsConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	TrackDuration bool `mapstructure:"trackDuration"`
	TrackScores   bool `mapstructure:"trackScores"`
}

// BusinessMetricsConfig holds business metrics configuration
type BusinessMetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// InfrastructureMetricsConfig holds infrastructure metrics configuration
type InfrastructureMetricsConfig struct {
	Enabled         bool `mapstructure:"enabled"`
	TrackRateLimits bool `mapstructure:"trackRateLimits"`
}

// ConsoleConfig holds console output configuration
type ConsoleConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	PrettyPrint bool `mapstructure:"prettyPrint"`
}

// PrometheusConfig holds Prometheus configuration
type PrometheusConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
	Port     string `mapstructure:"port"`
}

// OTLPConfig holds OTLP exporter configuration
type OTLPConfig struct {
	Enabled  bool              `mapstructure:"enabled"`
	Endpoint string            `mapstructure:"endpoint"`
	Insecure bool              `mapstructure:"insecure"`
	Headers  map[string]string `mapstructure:"headers"`
}

// LoadConfig loads configuration from environment variables and a config file
func LoadConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Set up environment variable handling
	v.SetEnvPrefix("RESUMELENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set up config file handling
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/resumelens/")
	v.AddConfigPath("$HOME/.resumelens")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyFallbacks()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	validFormats := make(map[string]bool)
	for _, format := range c.App.SupportedFormats {
		validFormats[format] = true
	}
	if !validFormats[c.App.DefaultFormat] {
		return fmt.Errorf("invalid default format: %s", c.App.DefaultFormat)
	}

	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("engine configuration error: %w", err)
	}

	if err := c.ValidateTLSConfig(); err != nil {
		return fmt.Errorf("TLS configuration error: %w", err)
	}

	return nil
}

// Validate checks the engine configuration for consistency
func (c *EngineConfig) Validate() error {
	for name, weight := range c.Weights {
		if !knownDimension(name) {
			return fmt.Errorf("unknown dimension in weights: %s", name)
		}
		if weight < 0 {
			return fmt.Errorf("weight for %s must be non-negative", name)
		}
	}

	total := 0.0
	for _, weight := range c.Weights {
		total += weight
	}
	if len(c.Weights) > 0 && total <= 0 {
		return fmt.Errorf("dimension weights must not all be zero")
	}

	if c.Bands.Good <= c.Bands.Warning {
		return fmt.Errorf("bands.good (%d) must be above bands.warning (%d)", c.Bands.Good, c.Bands.Warning)
	}
	if c.Bands.Good > 100 || c.Bands.Warning < 0 {
		return fmt.Errorf("band thresholds must lie within [0,100]")
	}

	if c.Extractor.MaxBytes <= 0 {
		return fmt.Errorf("extractor.maxBytes must be positive")
	}
	if c.Extractor.MaxLines <= 0 {
		return fmt.Errorf("extractor.maxLines must be positive")
	}
	if c.Extractor.Timeout <= 0 {
		return fmt.Errorf("extractor.timeout must be positive")
	}

	if c.Gaps.ThresholdMonths <= 0 {
		return fmt.Errorf("gaps.thresholdMonths must be positive")
	}
	if c.Recommendations.MaxItems <= 0 {
		return fmt.Errorf("recommendations.maxItems must be positive")
	}

	return nil
}

// Weight returns the configured weight for a dimension, or 0 when unset
func (c *EngineConfig) Weight(dim types.Dimension) float64 {
	return c.Weights[string(dim)]
}

// Band classifies a 0-100 score against the configured band thresholds
func (c *EngineConfig) Band(score int) types.Band {
	switch {
	case score >= c.Bands.Good:
		return types.BandGood
	case score >= c.Bands.Warning:
		return types.BandWarning
	default:
		return types.BandCritical
	}
}

func knownDimension(name string) bool {
	for _, dim := range types.Dimensions {
		if string(dim) == name {
			return true
		}
	}
	return false
}

// ValidateTLSConfig validates the TLS configuration
func (c *Config) ValidateTLSConfig() error {
	tls := c.Server.TLS

	switch tls.Mode {
	case "disabled":
		return nil
	case "server":
		if tls.CertFile == "" || tls.KeyFile == "" {
			return fmt.Errorf("TLS certificate and key files are required for server mode")
		}
	default:
		return fmt.Errorf("invalid TLS mode: %s (must be 'disabled' or 'server')", tls.Mode)
	}

	switch tls.MinVersion {
	case "", "1.2", "1.3":
		// Valid versions (empty defaults to 1.2)
	default:
		return fmt.Errorf("invalid TLS minVersion: %s (must be '1.2' or '1.3')", tls.MinVersion)
	}

	return nil
}

// Global configuration instance
var GlobalConfig *Config

// InitConfig initializes the global configuration
func InitConfig() error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	GlobalConfig = config
	return nil
}

// applyFallbacks applies environment variable fallbacks
func (c *Config) applyFallbacks() {
	// Parse API keys from environment variable if not set in config
	if len(c.Server.APIKeys) == 0 {
		if apiKeysEnv := os.Getenv("RESUMELENS_SERVER_APIKEYS"); apiKeysEnv != "" {
			c.Server.APIKeys = strings.Split(apiKeysEnv, ",")
			for i, key := range c.Server.APIKeys {
				c.Server.APIKeys[i] = strings.TrimSpace(key)
			}
		}
	}

	// Set default TLS version if not specified
	if c.Server.TLS.MinVersion == "" && c.Server.TLS.Mode != "disabled" {
		c.Server.TLS.MinVersion = "1.2"
	}

	// Set dynamic service instance ID if not specified
	if c.Observability.ServiceInstance == "" {
		if hostname, err := os.Hostname(); err == nil {
			c.Observability.ServiceInstance = fmt.Sprintf("%s-%s", c.Observability.ServiceName, hostname)
		} else {
			c.Observability.ServiceInstance = fmt.Sprintf("%s-1", c.Observability.ServiceName)
		}
	}

	// Set console output based on log level if not explicitly configured
	if c.App.LogLevel == "debug" && !c.Observability.ConsoleOutput {
		c.Observability.ConsoleOutput = true
	}
}
