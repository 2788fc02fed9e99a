package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/temporalkit/tgmin/pkg/cache"
	"github.com/temporalkit/tgmin/pkg/enumerate"
	"github.com/temporalkit/tgmin/pkg/graphio"
	"github.com/temporalkit/tgmin/pkg/minimize"
	"github.com/temporalkit/tgmin/pkg/observability"
	"github.com/temporalkit/tgmin/pkg/temporal"
)

// MinimizeRequest is the body of POST /v1/minimize. Exactly one of Graph
// and Line carries the input graph; Line takes the corpus line format.
type MinimizeRequest struct {
	// Graph is the temporal graph to minimize.
	Graph graphio.Graph `json:"graph,omitempty"`

	// Line is the graph in corpus line format, as an alternative to Graph.
	Line string `json:"line,omitempty"`

	// MaxIterations overrides the server's iteration cap when positive.
	MaxIterations int `json:"max_iterations,omitempty"`

	// Stats requests per-run statistics in the response.
	Stats bool `json:"stats,omitempty"`
}

// MinimizeResponse is the body of a successful minimize call.
type MinimizeResponse struct {
	RunID  string          `json:"run_id"`
	Result minimize.Result `json:"result"`
	Cached bool            `json:"cached,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMinimize(w http.ResponseWriter, r *http.Request) {
	var req MinimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	var (
		g   *temporal.Graph
		err error
	)
	if req.Line != "" {
		g, err = enumerate.ParseGraphLine(req.Line)
	} else {
		g, err = graphio.ToGraph(req.Graph)
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	cfg := s.config
	if req.MaxIterations > 0 {
		cfg = cfg.WithMaxIterations(req.MaxIterations)
	}
	if req.Stats {
		cfg = cfg.WithStats()
	}

	resp := MinimizeResponse{RunID: uuid.NewString()}

	key := ""
	if s.cache != nil {
		key = cache.VerdictKey(g.State().Key(), cfg.MaxIterations, cfg.Unbounded)
		if data, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
			var cached minimize.Result
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnHit("api")
				resp.Result = cached
				resp.Cached = true
				writeJSON(w, http.StatusOK, resp)
				return
			}
		}
		observability.Cache().OnMiss("api")
	}

	resp.Result = minimize.RunWithConfig(g, cfg)

	if resp.Result.Outcome == minimize.OutcomeFault {
		s.logger.Error("minimization fault",
			"request_id", middleware.GetReqID(r.Context()), "run", resp.RunID)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal fault during minimization"})
		return
	}

	if s.cache != nil {
		if data, err := json.Marshal(resp.Result); err == nil {
			if err := s.cache.Set(r.Context(), key, data, s.cacheTTL); err == nil {
				observability.Cache().OnSet("api", len(data))
			}
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
