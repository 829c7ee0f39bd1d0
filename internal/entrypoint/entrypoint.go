package entrypoint

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thanhmai/journal/internal/audit"
	"github.com/thanhmai/journal/internal/auth"
	"github.com/thanhmai/journal/internal/config"
	http_controllers "github.com/thanhmai/journal/internal/http"
	"github.com/thanhmai/journal/internal/store"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until interrupted, then shuts down gracefully
// within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires every component together and serves the API.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting Journal v%s", version)

	recordStore, err := store.New(cfg.Data.Dir)
	if err != nil {
		log.Fatalf("Failed to initialize record store: %v", err)
	}
	log.Printf("Record store initialized at %s", cfg.Data.Dir)

	userStore, err := auth.NewUserStore(cfg.Auth.UsersFile)
	if err != nil {
		log.Fatalf("Failed to initialize user store: %v", err)
	}

	secret := resolveTokenSecret(cfg.Auth)
	authService := auth.NewService(userStore, secret, cfg.Auth)

	var auditor *audit.Recorder
	if cfg.Audit.Enabled {
		auditor = audit.NewRecorder(cfg.Audit.Dir)
		log.Printf("Auditing write payloads to %s", cfg.Audit.Dir)
	}

	var watcher *store.Watcher
	if cfg.Watcher.Enabled {
		watcher, err = store.NewWatcher(recordStore)
		if err != nil {
			log.Printf("WARNING: Failed to start data directory watcher: %v", err)
		} else {
			log.Printf("Watching %s for external edits", cfg.Data.Dir)
		}
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Store:       recordStore,
		AuthService: authService,
		Auditor:     auditor,
		StaticDir:   cfg.Static.Dir,
		Version:     version,
	})

	Serve(router, cfg, func(ctx context.Context) {
		if watcher != nil {
			if err := watcher.Close(); err != nil {
				log.Printf("Error closing watcher: %v", err)
			}
		}
	})
}

// resolveTokenSecret decodes the configured secret, generating an ephemeral
// one when unset. Ephemeral secrets invalidate all tokens on restart.
func resolveTokenSecret(cfg config.Auth) []byte {
	if cfg.TokenSecret != "" {
		secret, err := hex.DecodeString(cfg.TokenSecret)
		if err != nil {
			// Not hex, use as raw bytes
			return []byte(cfg.TokenSecret)
		}
		return secret
	}

	generated, err := auth.GenerateTokenSecret()
	if err != nil {
		log.Fatalf("Failed to generate token secret: %v", err)
	}
	log.Printf("Generated token secret (set AUTH_TOKEN_SECRET to persist sessions across restarts)")
	secret, _ := hex.DecodeString(generated)
	return secret
}
