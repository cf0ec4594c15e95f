package dataset

import (
	"fmt"

	"github.com/modalkit/uffio/pkg/block"
	"github.com/modalkit/uffio/pkg/column"
	"github.com/modalkit/uffio/pkg/registry"
)

// Header is dataset 151, the model-file header.
type Header struct {
	ModelName   string
	Description string
	DBApp       string // program which created the database
	DateCreated string
	TimeCreated string
	Version     string
	Subversion  int
	FileType    int
	DateSaved   string
	TimeSaved   string
	UFFApp      string // program which wrote the universal file
	DateWritten string
	TimeWritten string
}

// Tag implements registry.Record.
func (Header) Tag() string { return "151" }

func init() {
	registry.MustRegister("151", parseHeader, writeHeader)
}

// Record 4 layout: date (10A1), time (8A1), version (11A1), subversion
// (I2), file type (I10). Records 5 and 7 share the date/time split.
const (
	hdrDateWidth = 10
	hdrTimeWidth = 8
	hdrVerStart  = 18
	hdrVerWidth  = 11
	hdrSubStart  = 29
	hdrSubWidth  = 2
	hdrTypeStart = 31
	hdrTypeWidth = 10
)

func parseHeader(b block.Block) (registry.Record, error) {
	h := Header{
		ModelName:   lineAt(b, 1),
		Description: lineAt(b, 2),
		DBApp:       lineAt(b, 3),
	}

	l4 := lineAt(b, 4)
	h.DateCreated = column.Extract(l4, 0, hdrDateWidth)
	h.TimeCreated = column.Extract(l4, hdrDateWidth, hdrTimeWidth)
	h.Version = column.Extract(l4, hdrVerStart, hdrVerWidth)

	var err error
	if h.Subversion, err = column.Int(l4, hdrSubStart, hdrSubWidth); err != nil {
		return nil, fmt.Errorf("header subversion: %w", err)
	}
	if h.FileType, err = column.Int(l4, hdrTypeStart, hdrTypeWidth); err != nil {
		return nil, fmt.Errorf("header file type: %w", err)
	}

	l5 := lineAt(b, 5)
	h.DateSaved = column.Extract(l5, 0, hdrDateWidth)
	h.TimeSaved = column.Extract(l5, hdrDateWidth, hdrTimeWidth)

	h.UFFApp = lineAt(b, 6)

	l7 := lineAt(b, 7)
	h.DateWritten = column.Extract(l7, 0, hdrDateWidth)
	h.TimeWritten = column.Extract(l7, hdrDateWidth, hdrTimeWidth)

	return h, nil
}

func writeHeader(r registry.Record) ([]string, error) {
	h, ok := r.(Header)
	if !ok {
		return nil, fmt.Errorf("expected dataset.Header, got %T", r)
	}

	l4 := column.Pad(h.DateCreated, hdrDateWidth) +
		column.Pad(h.TimeCreated, hdrTimeWidth) +
		column.Pad(h.Version, hdrVerWidth) +
		column.FormatInt(h.Subversion, hdrSubWidth) +
		column.FormatInt(h.FileType, hdrTypeWidth)

	return []string{
		h.ModelName,
		h.Description,
		h.DBApp,
		l4,
		column.Pad(h.DateSaved, hdrDateWidth) + column.Pad(h.TimeSaved, hdrTimeWidth),
		h.UFFApp,
		column.Pad(h.DateWritten, hdrDateWidth) + column.Pad(h.TimeWritten, hdrTimeWidth),
	}, nil
}
