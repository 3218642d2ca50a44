package config

import (
	"database/sql"
	"fmt"
)

// NewConnection opens the postgres pool. It returns a nil *sql.DB when no
// PG_HOST is configured and the catalog is served from CatalogFile instead.
func NewConnection(cfg *Config) (*sql.DB, error) {
	if cfg.PgHost == "" {
		return nil, nil
	}
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.PgHost, cfg.PgPort, cfg.PgUser, cfg.PgPass, cfg.PgDBName, cfg.PgSSLMode,
	)
	return sql.Open("postgres", connStr)
}
