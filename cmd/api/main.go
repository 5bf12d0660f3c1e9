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

	"github.com/joho/godotenv"

	"github.com/Manny2706/servicehire/internal/agent"
	"github.com/Manny2706/servicehire/internal/config"
	"github.com/Manny2706/servicehire/internal/handler"
	"github.com/Manny2706/servicehire/internal/knowledge"
	"github.com/Manny2706/servicehire/internal/leads"
	"github.com/Manny2706/servicehire/internal/service/ai"
	convoservice "github.com/Manny2706/servicehire/internal/service/convo"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	plans, err := loadKnowledge(cfg.Knowledge)
	if err != nil {
		log.Fatalf("failed to load knowledge base: %v", err)
	}

	sink, err := leads.NewSQLite(cfg.Leads.DBPath)
	if err != nil {
		log.Fatalf("failed to open lead store: %v", err)
	}
	defer sink.Close()

	provider, err := ai.NewService(ctx, cfg.AI)
	if err != nil {
		log.Fatalf("failed to initialize language provider: %v", err)
	}

	convoSvc := convoservice.NewService(agent.New(provider, plans, sink))
	router := handler.NewRouter(convoSvc, plans, sink)

	startServer(ctx, cfg.Server, router)
}

// loadKnowledge builds the pricing knowledge base and verifies the plans the
// agent depends on are present. A missing plan aborts startup.
func loadKnowledge(cfg config.KnowledgeConfig) (*knowledge.MemoryStore, error) {
	var store *knowledge.MemoryStore
	if cfg.Path != "" {
		loaded, err := knowledge.LoadFile(cfg.Path)
		if err != nil {
			return nil, err
		}
		store = loaded
		log.Printf("knowledge base loaded from %s", cfg.Path)
	} else {
		store = knowledge.NewMemoryStore(knowledge.Seed())
		log.Println("knowledge base loaded from seeded defaults")
	}

	if err := knowledge.Validate(store, "Basic", "Pro"); err != nil {
		return nil, err
	}
	return store, nil
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("servicehire API listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
