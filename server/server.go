package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/imscore/sh-profile/cache"
	"github.com/imscore/sh-profile/store"
)

var server *http.Server

// API bundles the collaborators the handlers need.
type API struct {
	Cache *cache.RenderCache
	Store *store.Store
}

// Routes builds the HTTP mux for the profile API.
func (a *API) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", a.handleHealth)
	mux.HandleFunc("/api/profile/sh-data.xml", a.handleProfileXML)
	mux.HandleFunc("/api/profile/sh-data.json", a.handleProfileJSON)
	mux.HandleFunc("/api/cache/stats", a.handleCacheStats)
	mux.HandleFunc("/api/cache/invalidate", a.handleCacheInvalidate)
	return mux
}

// StartServer begins serving the profile API on the configured port.
func StartServer(port int, a *API) {
	addr := fmt.Sprintf(":%d", port)
	server = &http.Server{
		Addr:              addr,
		Handler:           a.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

// HandleGracefulShutdown blocks until SIGINT/SIGTERM and drains the server.
func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}
