// Package graphio: CSV edge-list reader and writer.
package graphio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/graphx/core"
)

// Sentinel errors for CSV parsing.
var (
	// ErrEmptyInput is returned when the input has no header record.
	ErrEmptyInput = errors.New("graphio: empty input")

	// ErrBadHeader is returned when the header record is neither
	// "directed" nor "undirected".
	ErrBadHeader = errors.New("graphio: bad header")

	// ErrBadRecord is returned when an edge record does not have
	// exactly two fields.
	ErrBadRecord = errors.New("graphio: bad record")
)

// Read parses a CSV edge list into a fresh graph. Vertex identifiers
// are trimmed and kept as strings. Duplicate edge records are ignored.
func Read(r io.Reader) (*core.Graph[string], error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // validated per record below
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("graphio: read header: %w", err)
	}
	var directed bool
	switch strings.ToLower(strings.TrimSpace(header[0])) {
	case "directed":
		directed = true
	case "undirected":
		directed = false
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadHeader, header[0])
	}

	g := core.New[string](core.WithDirected(directed))
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			return g, nil
		}
		if err != nil {
			return nil, fmt.Errorf("graphio: line %d: %w", line, err)
		}
		if len(record) != 2 {
			return nil, fmt.Errorf("%w: line %d has %d fields, want 2", ErrBadRecord, line, len(record))
		}
		u := strings.TrimSpace(record[0])
		v := strings.TrimSpace(record[1])
		if err = addEdge(g, u, v); err != nil {
			return nil, fmt.Errorf("graphio: line %d: %w", line, err)
		}
	}
}

// addEdge registers both endpoints and the edge, tolerating duplicates.
func addEdge(g *core.Graph[string], u, v string) error {
	if err := g.AddVertex(u); err != nil {
		return err
	}
	if err := g.AddVertex(v); err != nil {
		return err
	}
	if err := g.AddEdge(u, v); err != nil && !errors.Is(err, core.ErrDuplicateEdge) {
		return err
	}

	return nil
}

// Write emits g in the same CSV format Read accepts, from the graph's
// snapshot export: one record per edge, in insertion order. The format
// carries edges only, so isolated vertices do not survive a round-trip.
func Write(w io.Writer, g *core.Graph[string]) error {
	cw := csv.NewWriter(w)
	header := "undirected"
	if g.Directed() {
		header = "directed"
	}
	if err := cw.Write([]string{header}); err != nil {
		return fmt.Errorf("graphio: write header: %w", err)
	}
	for _, e := range g.Edges() {
		if err := cw.Write([]string{e.From, e.To}); err != nil {
			return fmt.Errorf("graphio: write edge %s-%s: %w", e.From, e.To, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadFile loads a graph from the CSV file at path.
func ReadFile(path string) (*core.Graph[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// WriteFile stores g as a CSV file at path.
func WriteFile(path string, g *core.Graph[string]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	if err = Write(f, g); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
