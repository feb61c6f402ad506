package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/flaing/omingard/internal/config"
	"github.com/flaing/omingard/internal/server"
)

func main() {
	cfg, err := config.Load("omingard.yml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	server.GetSession().SetDefaultSeed(cfg.Seed)

	mux := http.NewServeMux()

	// WebSocket endpoint
	mux.HandleFunc("/ws", server.WSHandler)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Serve frontend build with SPA fallback
	webDist := cfg.WebDist
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(webDist, filepath.Clean(r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(webDist, "index.html"))
	}))

	log.Printf("listening on %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, mux))
}
