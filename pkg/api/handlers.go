package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/modalkit/uffio/pkg/block"
	"github.com/modalkit/uffio/pkg/registry"
	"github.com/modalkit/uffio/pkg/uff"
)

// maxBodyBytes caps uploaded file size; measurement exports are rarely
// beyond tens of megabytes.
const maxBodyBytes = 256 << 20

// Server handles decode and inspect requests over a shared codec.
type Server struct {
	codec   *uff.Codec
	reg     *registry.Registry
	metrics *Metrics
	log     zerolog.Logger
	config  ServerConfig
}

// NewServer creates a new API server instance
func NewServer(config ServerConfig, metrics *Metrics, log zerolog.Logger) *Server {
	return &Server{
		codec:   uff.New(uff.WithLogger(log)),
		reg:     registry.Default(),
		metrics: metrics,
		log:     log.With().Str("component", "api").Logger(),
		config:  config,
	}
}

// handleHealth reports server liveness and the supported dataset tags.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, HealthResponse{
		Status:        "healthy",
		SupportedTags: s.reg.Tags(),
	})
}

// handleDecode decodes an uploaded universal file into JSON records.
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	start := time.Now()
	records, stats, err := s.codec.DecodeAll(data)
	s.metrics.RecordDecode(err == nil, time.Since(start), stats.Decoded, stats.SkippedUnknown, stats.SkippedInvalid)
	if err != nil {
		s.log.Warn().Err(err).Msg("decode failed")
		sendError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	resp := DecodeResponse{Stats: stats, Records: make([]DecodedRecord, 0, len(records))}
	for _, rec := range records {
		resp.Records = append(resp.Records, DecodedRecord{Tag: rec.Tag(), Record: rec})
	}
	sendSuccess(w, resp)
}

// handleInspect summarizes the blocks of an uploaded file without decoding
// them.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	blocks, scanErr := block.ScanAll(data)
	resp := InspectResponse{Blocks: make([]BlockSummary, 0, len(blocks))}
	for _, b := range blocks {
		tag := registry.TagOf(b.FirstLine())
		resp.Blocks = append(resp.Blocks, BlockSummary{
			Index:        b.Index,
			Tag:          tag,
			Lines:        len(b.Lines),
			PayloadBytes: len(b.Payload),
			Supported:    s.reg.IsSupported(tag),
		})
	}
	if scanErr != nil {
		// Partial summaries are still useful; report the structural
		// failure alongside them.
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(APIResponse{
			Success: false,
			Error:   scanErr.Error(),
			Data:    resp,
		})
		return
	}
	sendSuccess(w, resp)
}
