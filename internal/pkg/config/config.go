package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Ingest    IngestConfig
	Realtime  RealtimeConfig
	Admin     AdminConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"5000"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
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

type JWTConfig struct {
	Secret              string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// IngestConfig controls the offer ingestion pipeline and its triggers.
type IngestConfig struct {
	SourceURL   string        `envconfig:"INGEST_SOURCE_URL" default:"https://fakestoreapi.com/products"`
	Cron        string        `envconfig:"INGEST_CRON" default:"*/5 * * * *"`
	PriceRate   float64       `envconfig:"INGEST_PRICE_RATE" default:"10"`
	HTTPTimeout time.Duration `envconfig:"INGEST_HTTP_TIMEOUT" default:"30s"`
	UserAgent   string        `envconfig:"INGEST_USER_AGENT" default:"dealstream-ingest/1.0"`
	RunOnStart  bool          `envconfig:"INGEST_ON_START" default:"false"`
	Disabled    bool          `envconfig:"INGEST_SCHEDULE_DISABLED" default:"false"`
}

type RealtimeConfig struct {
	OriginPatterns []string `envconfig:"WS_ORIGIN_PATTERNS" default:"localhost:*"`
	SendBuffer     int      `envconfig:"WS_SEND_BUFFER" default:"16"`
}

// AdminConfig lists usernames that receive the admin role at login.
type AdminConfig struct {
	Usernames []string `envconfig:"ADMIN_USERS" default:""`
}

type TelemetryConfig struct {
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:""`
	Insecure    bool   `envconfig:"OTEL_INSECURE" default:"true"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"dealstream"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c AdminConfig) IsAdmin(username string) bool {
	for _, u := range c.Usernames {
		if u != "" && u == username {
			return true
		}
	}
	return false
}

// Validate checks the settings envconfig cannot express.
func (c Config) Validate() error {
	if _, err := time.ParseDuration(c.JWT.AccessTokenDuration); err != nil {
		return fmt.Errorf("JWT_ACCESS_TOKEN_DURATION: %w", err)
	}
	u, err := url.Parse(c.Ingest.SourceURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("INGEST_SOURCE_URL must be an absolute http(s) url, got %q", c.Ingest.SourceURL)
	}
	if c.Ingest.PriceRate <= 0 {
		return fmt.Errorf("INGEST_PRICE_RATE must be positive, got %v", c.Ingest.PriceRate)
	}
	if !c.Ingest.Disabled && strings.TrimSpace(c.Ingest.Cron) == "" {
		return fmt.Errorf("INGEST_CRON is empty; set INGEST_SCHEDULE_DISABLED=true to turn the schedule off")
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 4,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:              "test-secret-key-for-testing-only",
			AccessTokenDuration: "15m",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Ingest: IngestConfig{
			SourceURL:   "http://127.0.0.1:0/products",
			Cron:        "*/5 * * * *",
			PriceRate:   10,
			HTTPTimeout: 5 * time.Second,
			UserAgent:   "dealstream-test",
			Disabled:    true,
		},
		Realtime: RealtimeConfig{
			OriginPatterns: []string{"*"},
			SendBuffer:     8,
		},
		Admin: AdminConfig{
			Usernames: []string{"admin@example.com"},
		},
		Telemetry: TelemetryConfig{
			ServiceName: "dealstream-test",
		},
	}
}
