// expr-server exposes the expression analyzer over HTTP.
//
// POST /tool runs one tool call ({"tool": ..., "params": ...}) and returns
// the tool response. GET /schema lists the available tools; GET /health
// answers liveness probes.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	analyzer "github.com/SinuoXu/Mathematical-Expression-Analyzer"
)

// Requests carry single-line expressions; anything larger is garbage.
const requestLimit = 1 << 20

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/tool", handleTool)
	mux.HandleFunc("/schema", handleSchema)
	mux.HandleFunc("/health", handleHealth)

	server := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("expr-server listening on %s (POST /tool, GET /schema, GET /health)", *addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func handleTool(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("tool call panicked: %v\n%s", rec, debug.Stack())
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}()
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, requestLimit)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	var req analyzer.ToolRequest
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, analyzer.ToolResponse{Error: err.Error()})
		return
	}
	if dec.More() {
		writeJSON(w, http.StatusBadRequest, analyzer.ToolResponse{Error: "request body holds more than one JSON value"})
		return
	}
	writeJSON(w, http.StatusOK, analyzer.HandleToolCall(req))
}

func handleSchema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(analyzer.ToolSpec()))
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}
