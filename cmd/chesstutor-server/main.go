package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/awaisrafeeq/chesstutor/internal/server/httpapi"
	"github.com/awaisrafeeq/chesstutor/internal/server/session"
	"github.com/awaisrafeeq/chesstutor/internal/storage"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	addr := flag.String("addr", getenv("CHESSTUTOR_ADDR", ":8080"), "listen address")
	dataDir := flag.String("data", getenv("CHESSTUTOR_DATA", ""), "database directory (default: platform data dir)")
	memOnly := flag.Bool("mem", false, "run without persistence")
	flag.Parse()

	var store *storage.Store
	if !*memOnly {
		var err error
		if *dataDir != "" {
			store, err = storage.Open(*dataDir)
		} else {
			store, err = storage.OpenDefault()
		}
		if err != nil {
			return err
		}
		defer store.Close()
	}

	manager := session.NewManager(store)
	if n, err := manager.Restore(); err != nil {
		return err
	} else if n > 0 {
		log.Printf("restored %d stored sessions", n)
	}

	srv := httpapi.NewServer(manager)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Println("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Close(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	return srv.Listen(*addr)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
