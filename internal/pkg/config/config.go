package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets)
// - default: Values common across all environments (timeouts, windows, standard settings)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Log     LogConfig
	Scanner ScannerConfig
	Camera  CameraConfig
	Bridge  BridgeConfig
	Journal JournalConfig
	DB      DBConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// ScannerConfig holds the numeric knobs of the capture flow. They are behavior-neutral:
// changing them never changes which trigger may settle a request.
type ScannerConfig struct {
	RequestTimeout     time.Duration `envconfig:"SCANNER_REQUEST_TIMEOUT" default:"30s"`
	DecodeCooldown     time.Duration `envconfig:"SCANNER_DECODE_COOLDOWN" default:"300ms"`
	DismissRevealDelay time.Duration `envconfig:"SCANNER_DISMISS_REVEAL_DELAY" default:"10s"`
	Symbologies        []string      `envconfig:"SCANNER_SYMBOLOGIES" default:"qr,upc-a,upc-e,ean-8,ean-13,code-39,code-93,code-128,pdf-417,aztec,data-matrix"`
}

type CameraConfig struct {
	Available     bool          `envconfig:"CAMERA_AVAILABLE" default:"true"`
	Permission    string        `envconfig:"CAMERA_PERMISSION" default:"unknown"`
	PromptTimeout time.Duration `envconfig:"CAMERA_PROMPT_TIMEOUT" default:"60s"`
}

type BridgeConfig struct {
	TokenSecret   string        `envconfig:"BRIDGE_TOKEN_SECRET" required:"true"`
	TokenDuration time.Duration `envconfig:"BRIDGE_TOKEN_DURATION" default:"24h"`
}

type JournalConfig struct {
	Enabled    bool `envconfig:"JOURNAL_ENABLED" default:"false"`
	BufferSize int  `envconfig:"JOURNAL_BUFFER_SIZE" default:"64"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"scanbridge"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"scanbridge"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

const (
	DefaultRequestTimeout     = 30 * time.Second
	DefaultDecodeCooldown     = 300 * time.Millisecond
	DefaultDismissRevealDelay = 10 * time.Second
	DefaultPromptTimeout      = 60 * time.Second
)

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Normalize replaces non-positive windows with their defaults.
func (c ScannerConfig) Normalize() ScannerConfig {
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.DecodeCooldown <= 0 {
		c.DecodeCooldown = DefaultDecodeCooldown
	}
	if c.DismissRevealDelay <= 0 {
		c.DismissRevealDelay = DefaultDismissRevealDelay
	}
	return c
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	cfg.Scanner = cfg.Scanner.Normalize()
	if cfg.Camera.PromptTimeout <= 0 {
		cfg.Camera.PromptTimeout = DefaultPromptTimeout
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Scanner: ScannerConfig{
			RequestTimeout:     DefaultRequestTimeout,
			DecodeCooldown:     DefaultDecodeCooldown,
			DismissRevealDelay: DefaultDismissRevealDelay,
			Symbologies: []string{
				"qr", "upc-a", "upc-e", "ean-8", "ean-13", "code-39",
				"code-93", "code-128", "pdf-417", "aztec", "data-matrix",
			},
		},
		Camera: CameraConfig{
			Available:     true,
			Permission:    "granted",
			PromptTimeout: 5 * time.Second,
		},
		Bridge: BridgeConfig{
			TokenSecret:   "test-bridge-secret",
			TokenDuration: time.Hour,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
	}
}
