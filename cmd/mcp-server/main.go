// cmd/mcp-server/main.go — Standalone HTTP MCP server for goscalar
//
// Exposes goscalar tools as an HTTP endpoint for AI agent frameworks.
//
// Usage:
//   go run ./cmd/mcp-server -port 8080
//   go run ./cmd/mcp-server -config config.yaml
//
// Tool call endpoint: POST /tool
// Schema endpoint:    GET  /schema
// Health endpoint:    GET  /health
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/njchilds90/goscalar"
	"github.com/njchilds90/goscalar/internal/config"
)

const requestIDHeader = "X-Request-ID"

func main() {
	port := flag.Int("port", 0, "Port to listen on (overrides config)")
	configPath := flag.String("config", "", "Path to YAML config file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *port != 0 {
		cfg.Port = *port
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("goscalar MCP server listening on %s", addr)
	log.Printf("  POST /tool   — execute a tool call")
	log.Printf("  GET  /schema — tool schema for agent registration")
	log.Printf("  GET  /health — health check")

	srv := &http.Server{
		Addr:              addr,
		Handler:           newMux(cfg),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func newMux(cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	// POST /tool — handle a tool call
	mux.HandleFunc("/tool", func(w http.ResponseWriter, r *http.Request) {
		id := w.Header().Get(requestIDHeader)
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[%s] panic in /tool: %v\n%s", id, rec, string(debug.Stack()))
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()

		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxBodyBytes)
		defer r.Body.Close()

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req goscalar.ToolRequest
		if err := dec.Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		// Ensure there's no trailing junk.
		if dec.More() {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: trailing data"})
			return
		}

		start := time.Now()
		resp := goscalar.HandleToolCall(req)
		if resp.Error != "" {
			log.Printf("[%s] tool=%s error=%q (%s)", id, req.Tool, resp.Error, time.Since(start))
		} else {
			log.Printf("[%s] tool=%s ok (%s)", id, req.Tool, time.Since(start))
		}
		writeJSON(w, http.StatusOK, resp)
	})

	// GET /schema — return tool schema for agent registration
	mux.HandleFunc("/schema", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, goscalar.MCPToolSpec())
	})

	// GET /health — liveness check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	return withRequestID(mux)
}

// withRequestID echoes the client's X-Request-ID or assigns a fresh one.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
