package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Practice   PracticeConfig   `yaml:"practice"`
	Providers  ProvidersConfig  `yaml:"providers"`
	Enrich     EnrichConfig     `yaml:"enrich"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host             string        `yaml:"host"              env:"SERVER_HOST"              env-default:"0.0.0.0"`
	Port             int           `yaml:"port"              env:"SERVER_PORT"              env-default:"8080"`
	ReadTimeout      time.Duration `yaml:"read_timeout"      env:"SERVER_READ_TIMEOUT"      env-default:"10s"`
	WriteTimeout     time.Duration `yaml:"write_timeout"     env:"SERVER_WRITE_TIMEOUT"     env-default:"30s"`
	IdleTimeout      time.Duration `yaml:"idle_timeout"      env:"SERVER_IDLE_TIMEOUT"      env-default:"60s"`
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout"  env:"SERVER_SHUTDOWN_TIMEOUT"  env-default:"10s"`
	AuthRatePerMin   int           `yaml:"auth_rate_per_min" env:"SERVER_AUTH_RATE_PER_MIN" env-default:"20"`
	APIRatePerMinute int           `yaml:"api_rate_per_min"  env:"SERVER_API_RATE_PER_MIN"  env-default:"300"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"lexibase"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"15m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"  env:"AUTH_REFRESH_TOKEN_TTL"  env-default:"720h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
}

// DictionaryConfig holds dictionary catalog settings.
type DictionaryConfig struct {
	MaxWordsPerUser         int `yaml:"max_words_per_user"         env:"DICT_MAX_WORDS_PER_USER"         env-default:"10000"`
	MaxWordsPerList         int `yaml:"max_words_per_list"         env:"DICT_MAX_WORDS_PER_LIST"         env-default:"500"`
	HardDeleteRetentionDays int `yaml:"hard_delete_retention_days" env:"DICT_HARD_DELETE_RETENTION_DAYS" env-default:"30"`
}

// PracticeConfig holds learning-metric thresholds and the review-interval
// ladder (SRS convention).
type PracticeConfig struct {
	LearnedMinReviews  int     `yaml:"learned_min_reviews"  env:"PRACTICE_LEARNED_MIN_REVIEWS"  env-default:"3"`
	LearnedMinAccuracy float64 `yaml:"learned_min_accuracy" env:"PRACTICE_LEARNED_MIN_ACCURACY" env-default:"0.8"`
	MasteredMinStreak  int     `yaml:"mastered_min_streak"  env:"PRACTICE_MASTERED_MIN_STREAK"  env-default:"7"`
	MasteredMinReviews int     `yaml:"mastered_min_reviews" env:"PRACTICE_MASTERED_MIN_REVIEWS" env-default:"10"`
	IntervalLadderRaw  string  `yaml:"interval_ladder"      env:"PRACTICE_INTERVAL_LADDER"      env-default:"1d,2d,4d,168h,336h,720h"`
	SessionSizeMax     int     `yaml:"session_size_max"     env:"PRACTICE_SESSION_SIZE_MAX"     env-default:"50"`

	// IntervalLadder is parsed from IntervalLadderRaw during validation.
	IntervalLadder []time.Duration `yaml:"-" env:"-"`
}

// ProvidersConfig holds outbound SaaS API settings. Empty keys disable the
// corresponding provider.
type ProvidersConfig struct {
	PexelsAPIKey      string        `yaml:"pexels_api_key"      env:"PEXELS_API_KEY"`
	GoogleTTSAPIKey   string        `yaml:"google_tts_api_key"  env:"GOOGLE_TTS_API_KEY"`
	MerriamWebsterKey string        `yaml:"merriam_webster_key" env:"MERRIAM_WEBSTER_KEY"`
	TranslateEmail    string        `yaml:"translate_email"     env:"TRANSLATE_EMAIL"`
	OrdnetBaseURL     string        `yaml:"ordnet_base_url"     env:"ORDNET_BASE_URL"`
	RequestTimeout    time.Duration `yaml:"request_timeout"     env:"PROVIDER_REQUEST_TIMEOUT" env-default:"10s"`
}

// EnrichConfig holds batch media-enrichment settings.
type EnrichConfig struct {
	ChunkSize    int           `yaml:"chunk_size"     env:"ENRICH_CHUNK_SIZE"     env-default:"5"`
	ChunkDelay   time.Duration `yaml:"chunk_delay"    env:"ENRICH_CHUNK_DELAY"    env-default:"1s"`
	MaxWords     int           `yaml:"max_words"      env:"ENRICH_MAX_WORDS"      env-default:"200"`
	AudioDir     string        `yaml:"audio_dir"      env:"ENRICH_AUDIO_DIR"      env-default:"./data/audio"`
	AudioBaseURL string        `yaml:"audio_base_url" env:"ENRICH_AUDIO_BASE_URL" env-default:"/static/audio"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
