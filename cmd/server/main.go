package main

import (
	"PortfolioBackend/config"
	"PortfolioBackend/internal/breakpoint"
	"PortfolioBackend/internal/gallery"
	"PortfolioBackend/internal/repository/file"
	"PortfolioBackend/internal/repository/postgres"
	"PortfolioBackend/internal/router"
	"PortfolioBackend/internal/service"
	"PortfolioBackend/internal/watcher"
	"PortfolioBackend/scripts"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"k8s.io/klog/v2"
)

// controllerOptions turns BREAKPOINTS / CAROUSEL_FALLBACK into controller
// options; unset values keep the built-in carousel layout.
func controllerOptions(cfg *config.Config) ([]gallery.Option, error) {
	var opts []gallery.Option
	if cfg.Breakpoints != "" {
		rules, err := breakpoint.ParseRules(cfg.Breakpoints)
		if err != nil {
			return nil, err
		}
		opts = append(opts, gallery.WithRules(rules))
	}
	if cfg.CarouselFallback != "" {
		fb, err := breakpoint.ParseConfig(cfg.CarouselFallback)
		if err != nil {
			return nil, err
		}
		opts = append(opts, gallery.WithFallback(fb))
	}
	return opts, nil
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		klog.Errorf("%v", err)
		klog.Flush()
		stop()
		os.Exit(1)
	}
}

// run returns instead of exiting so the database pool is always closed.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	opts, err := controllerOptions(cfg)
	if err != nil {
		return fmt.Errorf("carousel config: %w", err)
	}

	db, err := config.NewConnection(cfg)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	var source service.PhotoSource
	if db != nil {
		defer func() {
			if err := db.Close(); err != nil {
				klog.Errorf("Error closing the database: %v", err)
			}
		}()

		repo := postgres.NewPhotoRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
		// Sync the photos table with the photos folder before serving
		if err := scripts.ImportPhotos(ctx, repo, cfg.PhotosDir, router.StaticPrefix()); err != nil {
			return fmt.Errorf("import photos: %w", err)
		}
		source = repo
	} else {
		source = file.NewPhotoRepository(cfg.CatalogFile)
	}

	galleryService := service.NewGalleryService(source, cfg.SessionTTL, opts...)
	// A gallery cannot be rendered without a valid catalog
	if err := galleryService.Reload(ctx); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	go galleryService.ExpireIdle(ctx, time.Minute)

	if db == nil {
		go func() {
			if err := watcher.WatchCatalog(ctx, cfg.CatalogFile, galleryService.Reload); err != nil {
				klog.Errorf("catalog watcher stopped: %v", err)
			}
		}()
	}

	relay := service.NewContactRelay(cfg.ContactURL, nil)
	if cfg.ContactURL == "" {
		klog.Warningf("CONTACT_URL not set, contact submissions will be rejected")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router.NewRouter(galleryService, relay, cfg),
	}

	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			klog.Errorf("shutdown: %v", err)
		}
	}()

	klog.Infof("Server started on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("Failed to start server: %w", err)
	}
	return nil
}
