package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mahir-2003/portfolio/internal/config"
	"github.com/mahir-2003/portfolio/internal/content"
	"github.com/mahir-2003/portfolio/internal/letterboxd"
	"github.com/mahir-2003/portfolio/internal/web"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	site, err := content.Load()
	if err != nil {
		log.Fatal("Failed to load site content:", err)
	}

	feed := letterboxd.NewClient(letterboxd.Options{
		FeedURL:  cfg.FeedURL,
		ProxyURL: cfg.ProxyURL,
		Timeout:  cfg.FeedTimeout,
		Limit:    cfg.FeedLimit,
		Rate:     cfg.FeedRate,
		Burst:    cfg.FeedBurst,
	})
	log.Printf("Letterboxd feed: %s (timeout %s, limit %d)", feed.RequestURL(), cfg.FeedTimeout, cfg.FeedLimit)

	router, err := web.NewRouter(web.Deps{
		Site:       site,
		Feed:       feed,
		ProfileURL: cfg.ProfileURL(),
		ImagesDir:  cfg.ImagesDir,
	})
	if err != nil {
		log.Fatal("Failed to build router:", err)
	}

	// the feed fragment may wait out a full upstream timeout
	writeTimeout := cfg.FeedTimeout + 10*time.Second

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Server starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Server error:", err)
	}
	log.Println("Server stopped")
}
