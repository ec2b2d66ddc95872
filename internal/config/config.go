package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Slack      SlackConfig      `yaml:"slack"`
	Catalog    CatalogConfig    `yaml:"catalog"`
	Collection CollectionConfig `yaml:"collection"`
	Log        LogConfig        `yaml:"log"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"3000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// HandlerTimeout bounds the asynchronous work triggered by one Slack event.
	HandlerTimeout time.Duration `yaml:"handler_timeout" env:"SERVER_HANDLER_TIMEOUT" env-default:"20s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_URL"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// AutoMigrate applies pending migrations on serve startup.
	AutoMigrate bool `yaml:"auto_migrate" env:"DATABASE_AUTO_MIGRATE" env-default:"true"`
	// SlowQuery is the duration above which a statement is logged. Zero disables it.
	SlowQuery time.Duration `yaml:"slow_query" env:"DATABASE_SLOW_QUERY" env-default:"250ms"`
}

// SlackConfig holds the credentials of the Slack app.
type SlackConfig struct {
	BotToken      string `yaml:"bot_token"      env:"SLACK_BOT_TOKEN"`
	SigningSecret string `yaml:"signing_secret" env:"SLACK_SIGNING_SECRET"`
}

// CatalogConfig holds settings of the external book catalog (OpenLibrary).
type CatalogConfig struct {
	BaseURL     string        `yaml:"base_url"     env:"CATALOG_BASE_URL"     env-default:"https://openlibrary.org"`
	CoversURL   string        `yaml:"covers_url"   env:"CATALOG_COVERS_URL"   env-default:"https://covers.openlibrary.org"`
	Timeout     time.Duration `yaml:"timeout"      env:"CATALOG_TIMEOUT"      env-default:"8s"`
	FetchLimit  int           `yaml:"fetch_limit"  env:"CATALOG_FETCH_LIMIT"  env-default:"20"`
	ResultLimit int           `yaml:"result_limit" env:"CATALOG_RESULT_LIMIT" env-default:"5"`
}

// CollectionConfig holds the per-member and per-view limits.
type CollectionConfig struct {
	MaxItems     int `yaml:"max_items"     env:"COLLECTION_MAX_ITEMS"     env-default:"30"`
	RatingsLimit int `yaml:"ratings_limit" env:"COLLECTION_RATINGS_LIMIT" env-default:"30"`
	LendersLimit int `yaml:"lenders_limit" env:"COLLECTION_LENDERS_LIMIT" env-default:"50"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// TelemetryConfig holds OpenTelemetry exporter settings.
type TelemetryConfig struct {
	Enabled      bool   `yaml:"enabled"       env:"OTEL_ENABLED"                env-default:"false"`
	OTLPEndpoint string `yaml:"otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:"localhost:4317"`
	ServiceName  string `yaml:"service_name"  env:"OTEL_SERVICE_NAME"           env-default:"floating-librarian"`
	Environment  string `yaml:"environment"   env:"ENVIRONMENT"                 env-default:"development"`
}
