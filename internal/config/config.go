package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/riskibarqy/kickoff-api/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"

	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"

	ShareModeHost = "host"
	ShareModeWeb  = "web"

	DefaultAPIFootballBaseURL = "https://v3.football.api-sports.io"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	ShutdownTimeout    time.Duration
	CORSAllowedOrigins []string
	LogLevel           logging.Level
	Location           *time.Location

	APIFootballBaseURL             string
	APIFootballKey                 string
	APIFootballTimeout             time.Duration
	APIFootballMaxRetries          int
	APIFootballRetryBackoff        time.Duration
	APIFootballCircuitEnabled      bool
	APIFootballCircuitFailureCount int
	APIFootballCircuitOpenTimeout  time.Duration
	APIFootballCircuitHalfOpenMax  int

	CacheBackend       string
	CacheTTL           time.Duration
	CacheSweepInterval time.Duration
	CachePrefix        string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int

	LivePollEnabled    bool
	LivePollInterval   time.Duration
	NoticeDismissAfter time.Duration
	AppearanceWorkers  int

	ShareMode     string
	ShareHostLink string
	ShareWebURL   string

	MetricsEnabled             bool
	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

// Load reads the environment, after merging a .env file from the working
// directory when one exists. Variables already set win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, errors.Wrap(err, "load .env")
	}

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "kickoff-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:                   parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		APIFootballBaseURL:         strings.TrimRight(getEnv("APIFOOTBALL_BASE_URL", DefaultAPIFootballBaseURL), "/"),
		APIFootballKey:             strings.TrimSpace(os.Getenv("APIFOOTBALL_KEY")),
		CachePrefix:                getEnv("CACHE_PREFIX", "kickoff:"),
		RedisAddr:                  strings.TrimSpace(getEnv("REDIS_ADDR", "")),
		RedisPassword:              os.Getenv("REDIS_PASSWORD"),
		ShareHostLink:              getEnv("SHARE_HOST_LINK", "intoss://kickoff"),
		ShareWebURL:                getEnv("SHARE_WEB_URL", "https://kickoff-live.vercel.app"),
		PprofAddr:                  strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),
		UptraceDSN:                 strings.TrimSpace(getEnv("UPTRACE_DSN", "")),
		PyroscopeServerAddress:     strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAuthToken:         os.Getenv("PYROSCOPE_AUTH_TOKEN"),
		PyroscopeBasicAuthUser:     os.Getenv("PYROSCOPE_BASIC_AUTH_USER"),
		PyroscopeBasicAuthPassword: os.Getenv("PYROSCOPE_BASIC_AUTH_PASSWORD"),
	}

	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	if cfg.APIFootballKey == "" {
		return Config{}, errors.New("APIFOOTBALL_KEY is required")
	}

	zone := getEnv("APP_TIMEZONE", "UTC")
	if cfg.Location, err = time.LoadLocation(zone); err != nil {
		return Config{}, errors.Wrapf(err, "parse APP_TIMEZONE %q", zone)
	}

	durations := []struct {
		key      string
		fallback string
		target   *time.Duration
	}{
		{"APP_READ_TIMEOUT", "10s", &cfg.ReadTimeout},
		{"APP_WRITE_TIMEOUT", "30s", &cfg.WriteTimeout},
		{"APP_SHUTDOWN_TIMEOUT", "10s", &cfg.ShutdownTimeout},
		{"APIFOOTBALL_TIMEOUT", "15s", &cfg.APIFootballTimeout},
		{"APIFOOTBALL_RETRY_BACKOFF", "300ms", &cfg.APIFootballRetryBackoff},
		{"APIFOOTBALL_CIRCUIT_OPEN_TIMEOUT", "15s", &cfg.APIFootballCircuitOpenTimeout},
		{"CACHE_TTL", "1m", &cfg.CacheTTL},
		{"CACHE_SWEEP_INTERVAL", "1m", &cfg.CacheSweepInterval},
		{"LIVE_POLL_INTERVAL", "30s", &cfg.LivePollInterval},
		{"NOTICE_DISMISS_AFTER", "2s", &cfg.NoticeDismissAfter},
		{"PYROSCOPE_UPLOAD_RATE", "15s", &cfg.PyroscopeUploadRate},
	}
	for _, d := range durations {
		if *d.target, err = getEnvAsPositiveDuration(d.key, d.fallback); err != nil {
			return Config{}, err
		}
	}

	ints := []struct {
		key      string
		fallback int
		min      int
		target   *int
	}{
		{"APIFOOTBALL_MAX_RETRIES", 1, 0, &cfg.APIFootballMaxRetries},
		{"APIFOOTBALL_CIRCUIT_FAILURE_COUNT", 5, 1, &cfg.APIFootballCircuitFailureCount},
		{"APIFOOTBALL_CIRCUIT_HALF_OPEN_MAX_REQ", 2, 1, &cfg.APIFootballCircuitHalfOpenMax},
		{"REDIS_DB", 0, 0, &cfg.RedisDB},
		{"APPEARANCE_WORKERS", 4, 1, &cfg.AppearanceWorkers},
	}
	for _, i := range ints {
		v, err := getEnvAsInt(i.key, i.fallback)
		if err != nil {
			return Config{}, errors.Wrapf(err, "parse %s", i.key)
		}
		if v < i.min {
			return Config{}, errors.Newf("%s must be >= %d", i.key, i.min)
		}
		*i.target = v
	}

	bools := []struct {
		key      string
		fallback string
		target   *bool
	}{
		{"APIFOOTBALL_CIRCUIT_ENABLED", "true", &cfg.APIFootballCircuitEnabled},
		{"LIVE_POLL_ENABLED", "true", &cfg.LivePollEnabled},
		{"METRICS_ENABLED", "true", &cfg.MetricsEnabled},
		{"PPROF_ENABLED", "false", &cfg.PprofEnabled},
		{"UPTRACE_ENABLED", "false", &cfg.UptraceEnabled},
		{"PYROSCOPE_ENABLED", "false", &cfg.PyroscopeEnabled},
	}
	for _, b := range bools {
		if *b.target, err = strconv.ParseBool(getEnv(b.key, b.fallback)); err != nil {
			return Config{}, errors.Wrapf(err, "parse %s", b.key)
		}
	}

	cfg.CacheBackend = strings.ToLower(strings.TrimSpace(getEnv("CACHE_BACKEND", CacheBackendMemory)))
	switch cfg.CacheBackend {
	case CacheBackendMemory:
	case CacheBackendRedis:
		if cfg.RedisAddr == "" {
			return Config{}, errors.New("REDIS_ADDR is required when CACHE_BACKEND=redis")
		}
	default:
		return Config{}, errors.Newf("invalid CACHE_BACKEND %q: valid values are %s, %s", cfg.CacheBackend, CacheBackendMemory, CacheBackendRedis)
	}

	cfg.ShareMode = strings.ToLower(strings.TrimSpace(getEnv("SHARE_MODE", ShareModeWeb)))
	if cfg.ShareMode != ShareModeHost && cfg.ShareMode != ShareModeWeb {
		return Config{}, errors.Newf("invalid SHARE_MODE %q: valid values are %s, %s", cfg.ShareMode, ShareModeHost, ShareModeWeb)
	}

	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return Config{}, errors.New("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return Config{}, errors.New("PPROF_ADDR is required when PPROF_ENABLED=true")
	}
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return Config{}, errors.New("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}

func getEnvAsPositiveDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", key)
	}
	if d <= 0 {
		return 0, errors.Newf("%s must be > 0", key)
	}
	return d, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", errors.Newf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
