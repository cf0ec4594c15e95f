package uff

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/modalkit/uffio/pkg/block"
	"github.com/modalkit/uffio/pkg/fsio"
	"github.com/modalkit/uffio/pkg/registry"
)

// tagLineWidth is the field width of the tag line written for plain
// datasets, mirroring the sentinel's six-column form.
const tagLineWidth = 6

// Stats summarizes one decode pass.
type Stats struct {
	Blocks         int // blocks produced by the scanner
	Decoded        int // records decoded successfully
	SkippedUnknown int // blocks with no registered dataset kind
	SkippedInvalid int // blocks whose fields failed to parse (lenient mode)
}

// Codec orchestrates scanning, tag dispatch, and record encoding.
type Codec struct {
	reg    *registry.Registry
	log    zerolog.Logger
	strict bool
}

// Option configures a Codec.
type Option func(*Codec)

// WithRegistry uses reg instead of the default registry.
func WithRegistry(reg *registry.Registry) Option {
	return func(c *Codec) { c.reg = reg }
}

// WithLogger attaches a logger for skip warnings. The default is a no-op
// logger, keeping the library silent unless asked.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Codec) { c.log = log.With().Str("component", "uff").Logger() }
}

// WithStrictFields makes a malformed fixed-width field abort the whole
// decode instead of skipping that record.
func WithStrictFields() Option {
	return func(c *Codec) { c.strict = true }
}

// New creates a codec. With no options it uses the default registry and
// lenient field handling.
func New(opts ...Option) *Codec {
	c := &Codec{
		reg: registry.Default(),
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DecodeAll decodes every supported dataset in data, in source order.
//
// Unsupported tags are counted in Stats.SkippedUnknown and skipped. A
// malformed field skips that one record (Stats.SkippedInvalid) unless the
// codec was built WithStrictFields, in which case the call fails carrying
// the block index and tag. A truncated binary payload always surfaces as
// the returned error, alongside the records decoded before it.
func (c *Codec) DecodeAll(data []byte) ([]registry.Record, Stats, error) {
	var (
		records []registry.Record
		stats   Stats
	)

	s := block.NewScanner(data)
	for s.Next() {
		b := s.Block()
		stats.Blocks++

		tag := registry.TagOf(b.FirstLine())
		entry, err := c.reg.Resolve(tag)
		if err != nil {
			stats.SkippedUnknown++
			c.log.Warn().Int("block", b.Index).Str("tag", tag).Msg("skipping unsupported dataset")
			continue
		}

		rec, err := entry.Parse(b)
		if err != nil {
			if c.strict {
				return records, stats, fmt.Errorf("block %d (tag %s): %w", b.Index, tag, err)
			}
			stats.SkippedInvalid++
			c.log.Warn().Int("block", b.Index).Str("tag", tag).Err(err).Msg("skipping malformed dataset")
			continue
		}

		records = append(records, rec)
		stats.Decoded++
	}
	if err := s.Err(); err != nil {
		return records, stats, err
	}
	return records, stats, nil
}

// EncodeAll renders records into sentinel-bracketed dataset lines, in input
// order. Plain kinds get a tag line after the opening sentinel; binary
// kinds emit their own identification line.
func (c *Codec) EncodeAll(records []registry.Record) ([]string, error) {
	var lines []string
	for i, rec := range records {
		entry, err := c.reg.Resolve(rec.Tag())
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		body, err := entry.Write(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d (tag %s): %w", i, rec.Tag(), err)
		}

		lines = append(lines, block.Sentinel)
		if !entry.Payload {
			lines = append(lines, fmt.Sprintf("%*s", tagLineWidth, rec.Tag()))
		}
		lines = append(lines, body...)
		lines = append(lines, block.Sentinel)
	}
	return lines, nil
}

// ReadFile loads path (decompressing .gz/.zst transparently) and decodes it.
func (c *Codec) ReadFile(path string) ([]registry.Record, Stats, error) {
	data, err := fsio.LoadBytes(path)
	if err != nil {
		return nil, Stats{}, err
	}
	return c.DecodeAll(data)
}

// WriteFile encodes records and writes them to path, compressing by
// extension.
func (c *Codec) WriteFile(path string, records []registry.Record) error {
	lines, err := c.EncodeAll(records)
	if err != nil {
		return err
	}
	return fsio.SaveLines(path, lines)
}

// DecodeAll decodes data with a default codec.
func DecodeAll(data []byte) ([]registry.Record, Stats, error) {
	return New().DecodeAll(data)
}

// EncodeAll encodes records with a default codec.
func EncodeAll(records []registry.Record) ([]string, error) {
	return New().EncodeAll(records)
}

// IsTruncatedPayload reports whether err came from a binary payload with no
// closing sentinel.
func IsTruncatedPayload(err error) bool {
	return errors.Is(err, block.ErrTruncatedPayload)
}
