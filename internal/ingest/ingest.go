// Package ingest turns statement files into raw string grids. Readers
// only tokenize; they know nothing about bank schemas, and all cell
// interpretation happens downstream.
package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Stefasaur/bank-bee-csv/internal/model"
)

// Reader tokenizes one file format into raw sheets.
type Reader interface {
	Read(r io.ReadSeeker) ([]model.RawSheet, error)
	Format() string
}

// Registry holds named readers.
type Registry struct {
	readers map[string]Reader
}

// NewRegistry creates an empty reader registry.
func NewRegistry() *Registry {
	return &Registry{readers: make(map[string]Reader)}
}

// Register adds a reader. Panics on duplicate format.
func (r *Registry) Register(rd Reader) {
	key := strings.ToLower(rd.Format())
	if _, ok := r.readers[key]; ok {
		panic("duplicate reader format: " + key)
	}
	r.readers[key] = rd
}

// Get returns the reader for format, or nil.
func (r *Registry) Get(format string) Reader {
	return r.readers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in readers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVReader{})
	r.Register(&XLSReader{})
	return r
}

// Open reads path with the reader matching its file extension.
func Open(path string) ([]model.RawSheet, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	rd := DefaultRegistry().Get(ext)
	if rd == nil {
		return nil, fmt.Errorf("unsupported statement format %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return rd.Read(f)
}
