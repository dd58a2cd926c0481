package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kdnorth/salesreport/internal/apperr"
)

// RawTable is tabular input before validation: a header row and data rows.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// Parser converts a raw sales export into a RawTable.
type Parser interface {
	Parse(r io.Reader) (RawTable, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// FileInfo describes an importable file in a directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// ForPath returns the parser matching the file extension of path.
func (r *Registry) ForPath(path string) (Parser, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if p := r.Get(ext); p != nil {
		return p, nil
	}
	return nil, apperr.Newf(apperr.KindInput, "unsupported file type %q", filepath.Ext(path))
}

// Formats lists the registered format names, sorted.
func (r *Registry) Formats() []string {
	out := make([]string, 0, len(r.parsers))
	for k := range r.parsers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// DefaultRegistry returns a registry with the CSV and XLSX parsers. The CSV
// parser decodes with the given text encoding.
func DefaultRegistry(encoding string) *Registry {
	r := NewRegistry()
	r.Register(&CSVParser{Encoding: encoding})
	r.Register(&XLSXParser{})
	return r
}

// Scan returns the files in dir that some parser in r can read.
func (r *Registry) Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.TrimPrefix(filepath.Ext(e.Name()), ".")
		if r.Get(ext) == nil {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}
