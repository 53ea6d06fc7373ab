// File path: cmd/truenorth/main.go
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/truenorth-regtech/truenorth/internal/api"
	"github.com/truenorth-regtech/truenorth/internal/auth"
	"github.com/truenorth-regtech/truenorth/internal/common"
	"github.com/truenorth-regtech/truenorth/internal/llm"
	"github.com/truenorth-regtech/truenorth/internal/sqlite"
)

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn("truenorth: .env file not loaded", "error", err)
	} else {
		logger.Info("truenorth: environment loaded from .env")
	}

	addr := flag.String("addr", defaultAddr(), "listen address")
	dbPath := flag.String("db", defaultDBPath(), "path to the SQLite database")
	flag.Parse()

	logger.Info("truenorth: startup initiated", "addr", *addr, "db", *dbPath)

	store, err := sqlite.Open(*dbPath)
	if err != nil {
		logger.Error("truenorth: store initialization failed", "error", err)
		fmt.Println("store error:", err)
		os.Exit(1)
	}
	defer store.Close()

	provider := llm.NewProvider()
	logger.Info("truenorth: ai provider ready", "provider", provider.Name())

	server, err := api.NewServer(store, provider, auth.NewTokenIssuer())
	if err != nil {
		logger.Error("truenorth: server construction failed", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}

	logger.Info("truenorth: server listening", "addr", *addr, "health", "/healthz")
	fmt.Printf("Serving on %s\n", *addr)
	reachable := *addr
	if strings.HasPrefix(reachable, ":") {
		reachable = "localhost" + reachable
	}
	logger.Info("truenorth: verify reachability", "suggestion", fmt.Sprintf("curl http://%s/healthz", reachable))
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("truenorth: server stopped", "error", err)
		fmt.Println("server stopped:", err)
	}
}

func defaultAddr() string {
	if env := strings.TrimSpace(os.Getenv("TRUENORTH_ADDR")); env != "" {
		return env
	}
	return ":8080"
}

func defaultDBPath() string {
	if env := strings.TrimSpace(os.Getenv("TRUENORTH_DB")); env != "" {
		return env
	}
	return filepath.Join("data", "truenorth.db")
}
