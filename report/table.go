package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/lvroot/core"
)

// DefaultDecimals is the fixed-point precision used when none is set.
const DefaultDecimals = 4

// Option customizes rendering.
type Option func(*settings)

type settings struct {
	decimals int
}

// WithDecimals sets the number of digits after the decimal point.
// Negative values fall back to DefaultDecimals.
func WithDecimals(d int) Option {
	return func(s *settings) {
		if d < 0 {
			d = DefaultDecimals
		}
		s.decimals = d
	}
}

func gather(opts []Option) settings {
	s := settings{decimals: DefaultDecimals}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Columns returns the header row Table uses for m.
func Columns(m core.Method) []string {
	switch m {
	case core.Bisection, core.RegulaFalsi:
		return []string{"k", "a", "f(a)", "b", "f(b)", "x", "f(x)", "err"}
	case core.Secant:
		return []string{"k", "x_k", "f(x_k)"}
	case core.Newton:
		return []string{"n", "x_n", "f(x_n)", "f'(x_n)", "x_{n+1}"}
	case core.FixedPoint:
		return []string{"n", "x_n", "|Δx|", "|f(x_n)|"}
	default:
		return []string{"k", "x", "f(x)", "err"}
	}
}

// Rows formats the history of res as table cells, one slice per record.
func Rows(res core.Result, opts ...Option) [][]string {
	s := gather(opts)
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', s.decimals, 64) }

	rows := make([][]string, 0, len(res.History))
	for _, r := range res.History {
		k := strconv.Itoa(r.Index)
		var row []string
		switch res.Method {
		case core.Bisection, core.RegulaFalsi:
			row = []string{k, num(r.A), num(r.FA), num(r.B), num(r.FB), num(r.X), num(r.FX), num(r.Err)}
		case core.Secant:
			row = []string{k, num(r.X), num(r.FX)}
		case core.Newton:
			row = []string{k, num(r.A), num(r.FA), num(r.DF), num(r.X)}
		case core.FixedPoint:
			row = []string{k, num(r.X), num(r.Err), num(math.Abs(r.FX))}
		default:
			row = []string{k, num(r.X), num(r.FX), num(r.Err)}
		}
		rows = append(rows, row)
	}
	return rows
}

// Table renders the iteration history of res as a bordered table.
func Table(res core.Result, opts ...Option) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(Columns(res.Method)...).
		Rows(Rows(res, opts...)...)

	return t.String()
}

// Summary renders the outcome of res on a single line.
func Summary(res core.Result, opts ...Option) string {
	s := gather(opts)
	return fmt.Sprintf("%s: root=%s iterations=%d reason=%s",
		res.Method, strconv.FormatFloat(res.Root, 'f', s.decimals, 64), res.Iterations, res.Reason)
}
