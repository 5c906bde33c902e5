package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN string `env:"DATABASE_URI"` // пусто — хранилище в памяти
	AuthSecret  string `env:"AUTH_SECRET"`
	DemoMode    bool   `env:"DEMO_MODE" envDefault:"true"`
	MediaMaxMB  int    `env:"MEDIA_MAX_MB" envDefault:"50"`
	// CORSOrigins — origin веб-клиентов через запятую. Пусто — кросс-доменные запросы запрещены.
	CORSOrigins string `env:"CORS_ORIGINS"`

	// Политики ссылочной целостности, см. repo.ParsePolicy
	CategoryOnDelete  string `env:"CATEGORY_ON_DELETE"`
	ContactOnDelete   string `env:"CONTACT_ON_DELETE"`
	DuplicateSchedule string `env:"DUPLICATE_SCHEDULE"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL string `env:"-"`
	TokenFile string `env:"TOKEN_FILE"`
	Version   bool   `env:"-"` // show client version and exit (flag only)
}

// MediaMaxBytes — лимит одного медиафайла в байтах.
func (c *Config) MediaMaxBytes() int64 {
	return int64(c.MediaMaxMB) * 1024 * 1024
}

// AllowedOrigins разбирает CORSOrigins в список без пустых элементов.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres://, mysql://, sqlite://); пусто — память")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.BoolVar(&cfg.DemoMode, "demo", cfg.DemoMode, "запросы без cookie выполняются от имени демо-пользователя")
	flag.StringVar(&cfg.CORSOrigins, "cors-origins", cfg.CORSOrigins, "разрешённые origin веб-клиентов через запятую")
	flag.IntVar(&cfg.MediaMaxMB, "media-max-mb", cfg.MediaMaxMB, "максимальный размер медиафайла, МБ")
	flag.StringVar(&cfg.CategoryOnDelete, "category-on-delete", cfg.CategoryOnDelete, "tolerate | nullify")
	flag.StringVar(&cfg.ContactOnDelete, "contact-on-delete", cfg.ContactOnDelete, "tolerate | cascade")
	flag.StringVar(&cfg.DuplicateSchedule, "duplicate-schedule", cfg.DuplicateSchedule, "reject | replace")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the TimeCapsule server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "path to auth token file (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.MediaMaxMB <= 0 {
		cfg.MediaMaxMB = 50
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	// Fill client defaults if empty
	if cfg.TokenFile == "" {
		home, _ := os.UserHomeDir()
		cfg.TokenFile = filepath.Join(home, ".timecapsule_token")
	}

	return cfg
}
