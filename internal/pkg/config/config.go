package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Session  SessionConfig
	Checkout CheckoutConfig
	Gateway  GatewayConfig
	Sweeper  SweeperConfig
	Redis    RedisConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Africa/Lagos"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Africa/Lagos"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

// JWTConfig signs the admin tokens accepted by the manual sweep trigger.
type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"1h"`
}

type SessionConfig struct {
	TTL          time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	CookieName   string        `envconfig:"SESSION_COOKIE_NAME" default:"session_id"`
	CookieDomain string        `envconfig:"SESSION_COOKIE_DOMAIN" default:""`
	CookieSecure bool          `envconfig:"SESSION_COOKIE_SECURE" default:"true"`
	SameSite     string        `envconfig:"SESSION_COOKIE_SAME_SITE" default:"Lax"`
}

type CheckoutConfig struct {
	HoldWindow  time.Duration `envconfig:"CHECKOUT_HOLD_WINDOW" default:"15m"`
	Currency    string        `envconfig:"CHECKOUT_CURRENCY" default:"NGN"`
	TaxRate     string        `envconfig:"CHECKOUT_TAX_RATE" default:"0.075"`
	ShippingFee string        `envconfig:"CHECKOUT_SHIPPING_FEE" default:"0"`
}

func (c CheckoutConfig) ParseRates() (taxRate, shippingFee decimal.Decimal, err error) {
	taxRate, err = decimal.NewFromString(c.TaxRate)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid CHECKOUT_TAX_RATE %q: %w", c.TaxRate, err)
	}
	shippingFee, err = decimal.NewFromString(c.ShippingFee)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid CHECKOUT_SHIPPING_FEE %q: %w", c.ShippingFee, err)
	}
	return taxRate, shippingFee, nil
}

type GatewayConfig struct {
	BaseURL   string        `envconfig:"GATEWAY_BASE_URL" default:"https://api.paystack.co"`
	SecretKey string        `envconfig:"GATEWAY_SECRET_KEY" required:"true"`
	Timeout   time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"10s"`
}

type SweeperConfig struct {
	Enabled     bool          `envconfig:"SWEEPER_ENABLED" default:"true"`
	Interval    time.Duration `envconfig:"SWEEPER_INTERVAL" default:"15m"`
	Lookahead   time.Duration `envconfig:"SWEEPER_LOOKAHEAD" default:"5m"`
	BatchSize   int           `envconfig:"SWEEPER_BATCH_SIZE" default:"500"`
	Concurrency int           `envconfig:"SWEEPER_CONCURRENCY" default:"16"`
	LockTTL     time.Duration `envconfig:"SWEEPER_LOCK_TTL" default:"10m"`
	StuckAfter  int           `envconfig:"SWEEPER_STUCK_AFTER" default:"4"` // unresolved runs before a reference is reported
}

// RedisConfig is optional; an empty Addr keeps the sweep lock in-process.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	LockKey  string `envconfig:"REDIS_LOCK_KEY" default:"storefront:sweeper:lock"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate covers what envconfig cannot: `required` accepts a variable that
// is set but empty.
func (c Config) validate() error {
	if strings.TrimSpace(c.Gateway.SecretKey) == "" {
		return fmt.Errorf("GATEWAY_SECRET_KEY must not be empty")
	}
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if _, _, err := c.Checkout.ParseRates(); err != nil {
		return err
	}
	return nil
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
			TimeZone: "Africa/Lagos",
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Africa/Lagos",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Session: SessionConfig{
			TTL:        24 * time.Hour,
			CookieName: "session_id",
			SameSite:   "Lax",
		},
		Checkout: CheckoutConfig{
			HoldWindow:  15 * time.Minute,
			Currency:    "NGN",
			TaxRate:     "0.075",
			ShippingFee: "0",
		},
		Gateway: GatewayConfig{
			BaseURL:   "http://127.0.0.1:0",
			SecretKey: "sk_test_secret",
			Timeout:   2 * time.Second,
		},
		Sweeper: SweeperConfig{
			Enabled:     false, // Tests trigger sweeps explicitly
			Interval:    15 * time.Minute,
			Lookahead:   5 * time.Minute,
			BatchSize:   500,
			Concurrency: 8,
			LockTTL:     time.Minute,
			StuckAfter:  4,
		},
	}
}
