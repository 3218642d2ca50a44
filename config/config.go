package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"k8s.io/klog/v2"
)

type Config struct {
	Port      string
	PgHost    string
	PgPort    string
	PgUser    string
	PgPass    string
	PgDBName  string
	PgSSLMode string
	BaseURL   string

	// PhotosDir is scanned by the importer and served under /static/photos/.
	PhotosDir string
	// CatalogFile is a YAML catalog used when no database is configured.
	CatalogFile string
	// ContactURL receives relayed contact form submissions.
	ContactURL string

	// Breakpoints is parsed by breakpoint.ParseRules, e.g. "1024:3:3,768:2:2,560:1:1".
	Breakpoints string
	// CarouselFallback is parsed by breakpoint.ParseConfig, e.g. "3:1".
	CarouselFallback string

	// SessionTTL is how long an idle gallery session is kept.
	SessionTTL time.Duration
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		klog.V(1).Infof("config: no .env file, using process environment")
	}

	ttl, err := time.ParseDuration(getenv("SESSION_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("SESSION_TTL: %w", err)
	}

	return &Config{
		Port:             getenv("PORT", "8000"),
		PgHost:           os.Getenv("PG_HOST"),
		PgPort:           getenv("PG_PORT", "5432"),
		PgUser:           os.Getenv("PG_USER"),
		PgPass:           os.Getenv("PG_PASS"),
		PgDBName:         os.Getenv("PG_DBNAME"),
		PgSSLMode:        getenv("PG_SSLMODE", "disable"),
		BaseURL:          os.Getenv("BASE_URL"),
		PhotosDir:        getenv("PHOTOS_DIR", "./static/photos"),
		CatalogFile:      getenv("CATALOG_FILE", "./catalog.yaml"),
		ContactURL:       os.Getenv("CONTACT_URL"),
		Breakpoints:      os.Getenv("BREAKPOINTS"),
		CarouselFallback: os.Getenv("CAROUSEL_FALLBACK"),
		SessionTTL:       ttl,
	}, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
