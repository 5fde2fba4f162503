package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroot/core"
)

// ErrFormat reports an unknown output format.
var ErrFormat = errors.New("report: unknown format")

// Format selects how a result is written.
type Format int

const (
	// FormatTable is the human-readable table plus summary line.
	FormatTable Format = iota
	// FormatJSON writes an indented Document.
	FormatJSON
	// FormatYAML writes a Document as YAML.
	FormatYAML
)

// String returns the flag spelling of f.
func (f Format) String() string {
	switch f {
	case FormatTable:
		return "table"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat accepts "table" (or ""), "json", "yaml" and "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table", "text":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrFormat, s)
	}
}

// Entry is one history record in a Document.
type Entry struct {
	Index int     `json:"index" yaml:"index"`
	A     float64 `json:"a" yaml:"a"`
	FA    float64 `json:"fa" yaml:"fa"`
	B     float64 `json:"b" yaml:"b"`
	FB    float64 `json:"fb" yaml:"fb"`
	DF    float64 `json:"df" yaml:"df"`
	X     float64 `json:"x" yaml:"x"`
	FX    float64 `json:"fx" yaml:"fx"`
	Err   float64 `json:"err" yaml:"err"`
}

// Document is the machine-readable envelope of one run.
type Document struct {
	RunID      string          `json:"run_id" yaml:"run_id"`
	Method     core.Method     `json:"method" yaml:"method"`
	Root       float64         `json:"root" yaml:"root"`
	Iterations int             `json:"iterations" yaml:"iterations"`
	Reason     core.StopReason `json:"reason" yaml:"reason"`
	Converged  bool            `json:"converged" yaml:"converged"`
	History    []Entry         `json:"history,omitempty" yaml:"history,omitempty"`
}

// NewDocument wraps res with a fresh random run identifier.
func NewDocument(res core.Result) Document {
	doc := Document{
		RunID:      uuid.NewString(),
		Method:     res.Method,
		Root:       res.Root,
		Iterations: res.Iterations,
		Reason:     res.Reason,
		Converged:  res.Reason.Converged(),
	}
	if len(res.History) > 0 {
		doc.History = make([]Entry, len(res.History))
		for i, r := range res.History {
			doc.History[i] = Entry(r)
		}
	}
	return doc
}

// Encode writes doc to w in the given format. FormatTable is rejected:
// tables are rendered with Table and Summary.
func Encode(w io.Writer, doc Document, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("report: encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s cannot be encoded", ErrFormat, format)
	}
}

// Write renders res to w in the given format: a table followed by the
// summary line, or an encoded Document.
func Write(w io.Writer, res core.Result, format Format, opts ...Option) error {
	if format != FormatTable {
		return Encode(w, NewDocument(res), format)
	}
	if len(res.History) > 0 {
		if _, err := fmt.Fprintln(w, Table(res, opts...)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, Summary(res, opts...))
	return err
}
