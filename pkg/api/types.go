package api

import (
	"github.com/modalkit/uffio/pkg/registry"
	"github.com/modalkit/uffio/pkg/uff"
)

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port   int
	Bind   string
	APIKey string
}

// APIResponse represents a standard API response envelope
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// DecodedRecord wraps one decoded record with its dataset tag.
type DecodedRecord struct {
	Tag    string          `json:"tag"`
	Record registry.Record `json:"record"`
}

// DecodeResponse is the payload of POST /api/v1/decode.
type DecodeResponse struct {
	Records []DecodedRecord `json:"records"`
	Stats   uff.Stats       `json:"stats"`
}

// BlockSummary describes one block without decoding it.
type BlockSummary struct {
	Index        int    `json:"index"`
	Tag          string `json:"tag"`
	Lines        int    `json:"lines"`
	PayloadBytes int    `json:"payload_bytes,omitempty"`
	Supported    bool   `json:"supported"`
}

// InspectResponse is the payload of POST /api/v1/inspect.
type InspectResponse struct {
	Blocks []BlockSummary `json:"blocks"`
}

// HealthResponse is the payload of GET /api/v1/health.
type HealthResponse struct {
	Status        string   `json:"status"`
	SupportedTags []string `json:"supported_tags"`
}
