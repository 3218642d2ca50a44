package main

import (
	"PortfolioBackend/config"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate runs the test from an empty directory with no database configured.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	for _, k := range []string{"PG_HOST", "SESSION_TTL", "BREAKPOINTS", "CAROUSEL_FALLBACK", "CONTACT_URL"} {
		t.Setenv(k, "")
		if err := os.Unsetenv(k); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestRun_ReturnsErrors(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected string
	}{
		{"bad session ttl", map[string]string{"SESSION_TTL": "soon"}, "config:"},
		{"bad breakpoints", map[string]string{"BREAKPOINTS": "wide"}, "carousel config:"},
		{"missing catalog", map[string]string{"CATALOG_FILE": "missing.yaml"}, "catalog:"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			isolate(t)
			for k, v := range test.env {
				t.Setenv(k, v)
			}
			err := run(context.Background())
			if err == nil || !strings.HasPrefix(err.Error(), test.expected) {
				t.Errorf("run() error = %v, expected prefix %q", err, test.expected)
			}
		})
	}
}

func TestRun_StopsWithContext(t *testing.T) {
	dir := isolate(t)
	catalogFile := filepath.Join(dir, "catalog.yaml")
	yaml := "photos:\n  - id: 1\n    src: /static/photos/photo1.jpg\n    title: Coastline at Dawn\n"
	if err := os.WriteFile(catalogFile, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CATALOG_FILE", catalogFile)
	t.Setenv("PORT", "0")

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	if err := run(ctx); err != nil {
		t.Errorf("run() error = %v, expected clean shutdown", err)
	}
}

func TestControllerOptions(t *testing.T) {
	opts, err := controllerOptions(&config.Config{Breakpoints: "900:2:1", CarouselFallback: "4:2"})
	if err != nil || len(opts) != 2 {
		t.Errorf("controllerOptions() = %d options, %v; expected 2, nil", len(opts), err)
	}
	if _, err := controllerOptions(&config.Config{CarouselFallback: "x"}); err == nil {
		t.Errorf("controllerOptions() expected error for bad fallback")
	}
}
