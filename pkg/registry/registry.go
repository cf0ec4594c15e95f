// Package registry maps dataset type tags to their parse/write function
// pairs. The tag set is open: a new dataset kind is supported by adding one
// registry entry, without touching the scanner or the codec.
package registry

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/modalkit/uffio/pkg/block"
)

// Errors
var (
	ErrUnknownTag = &TagError{"no dataset kind registered for tag"}
	ErrInvalidTag = &TagError{"invalid dataset tag"}
	ErrDuplicate  = &TagError{"dataset tag already registered"}
)

// TagError represents a registry lookup or registration failure.
type TagError struct {
	Message string
}

func (e *TagError) Error() string {
	return e.Message
}

// Record is the abstract decoded dataset: any concrete kind that knows its
// own type tag. Concrete kinds live in pkg/dataset.
type Record interface {
	Tag() string
}

// ParseFunc decodes one block into a typed record.
type ParseFunc func(b block.Block) (Record, error)

// WriteFunc renders a record back into its dataset body lines, excluding
// the surrounding sentinel lines.
type WriteFunc func(r Record) ([]string, error)

// Entry is one registered dataset kind.
type Entry struct {
	Tag   string
	Parse ParseFunc
	Write WriteFunc

	// Payload marks binary dataset variants. Their writer emits its own
	// identification line, so the codec does not prepend a tag line.
	Payload bool
}

// compositeTagLen is how many leading characters form the tag when a
// block's first line carries more than the tag alone.
const compositeTagLen = 3

// TagOf derives the dispatch tag from a block's first line. A trimmed line
// of at most six characters is the tag itself; a longer line is the
// identification line of a binary dataset variant, and only its leading
// three characters are the tag.
func TagOf(firstLine string) string {
	t := strings.TrimSpace(firstLine)
	if len(t) > 6 {
		return t[:compositeTagLen]
	}
	return t
}

// tagPattern validates registrable tags: the dataset number, optionally
// followed by a single lowercase variant letter ("58b").
var tagPattern = regexp.MustCompile(`^[0-9]{1,5}[a-z]?$`)

// Registry holds the tag dispatch table. The zero value is not usable;
// call New.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds a dataset kind for tag. Registering an invalid tag or a
// tag that already has an entry is an error.
func (r *Registry) Register(tag string, parse ParseFunc, write WriteFunc) error {
	return r.add(Entry{Tag: tag, Parse: parse, Write: write})
}

// RegisterPayload adds a binary dataset kind whose writer emits its own
// identification line.
func (r *Registry) RegisterPayload(tag string, parse ParseFunc, write WriteFunc) error {
	return r.add(Entry{Tag: tag, Parse: parse, Write: write, Payload: true})
}

func (r *Registry) add(e Entry) error {
	if !tagPattern.MatchString(e.Tag) || len(e.Tag) > 6 {
		return fmt.Errorf("%w: %q", ErrInvalidTag, e.Tag)
	}
	if e.Parse == nil || e.Write == nil {
		return fmt.Errorf("%w: %q needs both parse and write functions", ErrInvalidTag, e.Tag)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[e.Tag]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, e.Tag)
	}
	r.entries[e.Tag] = e
	return nil
}

// IsSupported reports whether a dataset kind is registered for tag.
func (r *Registry) IsSupported(tag string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[tag]
	return ok
}

// Resolve returns the entry for tag, or ErrUnknownTag.
func (r *Registry) Resolve(tag string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[tag]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownTag, tag)
	}
	return e, nil
}

// Tags returns the registered tags in sorted order.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.entries))
	for t := range r.entries {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// defaultRegistry backs the package-level functions. Concrete dataset
// packages register themselves here from init.
var defaultRegistry = New()

// Default returns the registry populated by the dataset packages.
func Default() *Registry {
	return defaultRegistry
}

// MustRegister registers a dataset kind in the default registry and panics
// on failure. Intended for init-time registration where an error means a
// programming mistake.
func MustRegister(tag string, parse ParseFunc, write WriteFunc) {
	if err := defaultRegistry.Register(tag, parse, write); err != nil {
		panic(err)
	}
}

// MustRegisterPayload is MustRegister for binary dataset variants.
func MustRegisterPayload(tag string, parse ParseFunc, write WriteFunc) {
	if err := defaultRegistry.RegisterPayload(tag, parse, write); err != nil {
		panic(err)
	}
}
