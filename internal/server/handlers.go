package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/alexisbeaulieu97/fieldguide/internal/config"
	"github.com/alexisbeaulieu97/fieldguide/internal/fieldguide"
	"github.com/alexisbeaulieu97/fieldguide/internal/render/raster"
	"github.com/alexisbeaulieu97/fieldguide/internal/render/svg"
)

// HealthReport is the body of /healthz.
type HealthReport struct {
	Status string `json:"status"`
}

// ErrorResponse reports an error.
type ErrorResponse struct {
	Message string `json:"message"`
}

var errBadSeed = errors.New("seed must be an unsigned integer")

func (s *Server) handleHealth(w http.ResponseWriter, req *http.Request) {
	sendJSON(w, HealthReport{Status: "ok"})
}

func (s *Server) handleRecent(w http.ResponseWriter, req *http.Request) {
	sendJSON(w, s.recent.entries())
}

// handleTree serves one entry as svg, png or json. The seed comes from the
// path, then the query, then the service's sequence.
func (s *Server) handleTree(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	seed, err := s.seedFor(req)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	specimen, err := s.svc.GenerateSeeded(ctx, seed)
	if err != nil {
		s.logger.Error(ctx, "generation failed", "seed", seed, "error", err)
		sendError(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("X-Tree-Seed", strconv.FormatUint(seed, 10))

	switch mux.Vars(req)["format"] {
	case "json":
		sendJSON(w, specimen.Entry())
	case config.FormatPNG:
		s.writePNG(w, req, specimen)
	default:
		s.writeSVG(w, req, specimen)
	}
}

func (s *Server) writeSVG(w http.ResponseWriter, req *http.Request, specimen *fieldguide.Specimen) {
	ctx := req.Context()

	opts := s.cfg.SVGOptions()
	if fit, err := strconv.ParseBool(req.URL.Query().Get("fit")); err == nil {
		opts.Fit = fit
	}
	surface := svg.New(opts)
	if err := s.svc.Draw(ctx, specimen, surface); err != nil {
		sendError(w, "server error", http.StatusInternalServerError)
		return
	}
	data, err := surface.Bytes()
	if err != nil {
		s.logger.Error(ctx, "svg encode failed", "seed", specimen.Seed, "error", err)
		sendError(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(data)
}

func (s *Server) writePNG(w http.ResponseWriter, req *http.Request, specimen *fieldguide.Specimen) {
	ctx := req.Context()

	surface := raster.New(s.cfg.RasterOptions())
	if err := s.svc.Draw(ctx, specimen, surface); err != nil {
		sendError(w, "server error", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := surface.Encode(&buf); err != nil {
		s.logger.Error(ctx, "png encode failed", "seed", specimen.Seed, "error", err)
		sendError(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) seedFor(req *http.Request) (uint64, error) {
	raw, ok := mux.Vars(req)["seed"]
	if !ok {
		raw = req.URL.Query().Get("seed")
	}
	if raw == "" {
		return s.svc.NextSeed(), nil
	}
	seed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errBadSeed
	}
	return seed, nil
}

func sendJSON(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

func sendError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Message: msg})
}
