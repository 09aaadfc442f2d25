package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MaxRequestBytes limits the size of request bodies.
const MaxRequestBytes = 64 << 10

// ParseRequest is the body of a POST /parse request.
type ParseRequest struct {
	Sentence string `json:"sentence"`
}

// LexiconResponse is the body of a GET /lexicon response.
type LexiconResponse struct {
	Name    string         `json:"name"`
	Payload string         `json:"payload"`
	Policy  string         `json:"policy,omitempty"`
	Entries []LexiconEntry `json:"entries"`
}

// LexiconEntry is a word with its categories.
type LexiconEntry struct {
	Word       string   `json:"word"`
	Categories []string `json:"categories"`
}

// ErrorResponse is the body of responses for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewHandler creates an HTTP handler for an engine.
func NewHandler(engine *Engine) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(trace)
	r.Post("/parse", handleParse(engine))
	r.Get("/lexicon", handleLexicon(engine))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(engine.Registry(), promhttp.HandlerOpts{}))
	return r
}

func handleParse(engine *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ParseRequest
		body := http.MaxBytesReader(w, r.Body, MaxRequestBytes)
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				tracer().Infof("parse: request body exceeds %d bytes", tooLarge.Limit)
				writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body too large"})
				return
			}
			tracer().Infof("parse: invalid request body: %v", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}
		result, err := engine.Parse(r.Context(), req.Sentence)
		if errors.Is(err, ErrTooLong) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: err.Error()})
			return
		} else if err != nil {
			tracer().Errorf("parse failed: %v", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func handleLexicon(engine *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lex := engine.Lexicon()
		resp := LexiconResponse{
			Name:    lex.Name,
			Payload: lex.Payload,
			Policy:  lex.Policy,
			Entries: make([]LexiconEntry, len(lex.Entries)),
		}
		for i, e := range lex.Entries {
			resp.Entries[i] = LexiconEntry{Word: e.Word, Categories: e.Categories}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		tracer().Errorf("response encode failed: %v", err)
	}
}

func trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		tracer().Debugf("%s %s → %d (%v)", r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}
