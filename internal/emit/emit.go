// Package emit serializes a generated table set as source text for the
// consuming engine.
package emit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/hailam/rotboard/internal/board"
	"github.com/hailam/rotboard/internal/rotation"
	"github.com/hailam/rotboard/internal/tables"
)

// Format selects the output language.
type Format string

const (
	FormatCPP Format = "cpp"
	FormatGo  Format = "go"
)

// ErrUnknownFormat is returned for an unsupported -format value.
var ErrUnknownFormat = errors.New("unknown output format")

// ErrUnknownTable is returned when Options.Only names no known table.
var ErrUnknownTable = errors.New("unknown table")

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatCPP, FormatGo:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Options configures Write.
type Options struct {
	Format  Format
	Package string   // Go package name, default "tables"
	Guard   string   // C++ include guard, derived from the tables when empty
	Only    []string // table names to emit, all when empty
}

// valueKind is how a table's elements are spelled.
type valueKind uint8

const (
	kindBitboard valueKind = iota
	kindInt
	kindBool
)

// table describes one emitted array.
type table struct {
	name      string   // C++ name, also the name used by Options.Only
	goName    string
	dims      []int
	cppDims   []string
	kind      valueKind
	evaluator bool // lives in MetaEvaluator rather than MetaUtil
	at        func(idx []int) uint64
}

// catalogue lists the tables in output order. s may be nil when only the
// names are needed.
func catalogue(s *tables.Set) []table {
	var g *board.Geometry
	if s != nil {
		g = s.Geometry
	}
	sq, pat := board.NumSquares, tables.NumPatterns
	return []table{
		{
			name: "NUM_BIT16_TABLE", goName: "NumBit16Table",
			dims: []int{1 << 16}, cppDims: []string{"0xffff + 1"}, kind: kindInt,
			at: func(i []int) uint64 { return uint64(s.NumBit16[i[0]]) },
		},
		{
			name: "LINE", goName: "Line",
			dims: []int{sq, sq}, cppDims: []string{"NUM_SQUARES", "NUM_SQUARES"},
			at: func(i []int) uint64 { return uint64(g.Line[i[0]][i[1]]) },
		},
		{
			name: "BETWEEN", goName: "Between",
			dims: []int{sq, sq}, cppDims: []string{"NUM_SQUARES", "NUM_SQUARES"},
			at: func(i []int) uint64 { return uint64(g.Between[i[0]][i[1]]) },
		},
		{
			name: "DISTANCE", goName: "Distance",
			dims: []int{sq, sq}, cppDims: []string{"NUM_SQUARES", "NUM_SQUARES"}, kind: kindInt,
			at: func(i []int) uint64 { return uint64(g.Distance[i[0]][i[1]]) },
		},
		{
			name: "IS_EN_PASSANT", goName: "IsEnPassant",
			dims: []int{sq, sq}, cppDims: []string{"NUM_SQUARES", "NUM_SQUARES"}, kind: kindBool,
			at: func(i []int) uint64 { return boolBit(g.IsEnPassant[i[0]][i[1]]) },
		},
		{
			name: "IS_2STEP_MOVE", goName: "Is2StepMove",
			dims: []int{sq, sq}, cppDims: []string{"NUM_SQUARES", "NUM_SQUARES"}, kind: kindBool,
			at: func(i []int) uint64 { return boolBit(g.Is2StepMove[i[0]][i[1]]) },
		},
		{
			name: "ATTACK_TABLE", goName: "AttackTable",
			dims:    []int{sq, pat, rotation.NumAxes},
			cppDims: []string{"NUM_SQUARES", "0xff + 1", "NUM_ROTS"},
			at:      func(i []int) uint64 { return uint64(s.Attack[i[0]][i[1]][i[2]]) },
		},
		{
			name: "PAWN_MOVABLE_TABLE", goName: "PawnMovableTable",
			dims:    []int{board.NumSides, sq, pat},
			cppDims: []string{"NUM_SIDES", "NUM_SQUARES", "0xff + 1"},
			at:      func(i []int) uint64 { return uint64(s.PawnMovable[i[0]][i[1]][i[2]]) },
		},
		{
			name: "PIN_BACK_TABLE", goName: "PinBackTable",
			dims:    []int{sq, pat, rotation.NumAxes},
			cppDims: []string{"NUM_SQUARES", "0xff + 1", "NUM_ROTS"},
			evaluator: true,
			at:        func(i []int) uint64 { return uint64(s.PinBack[i[0]][i[1]][i[2]]) },
		},
	}
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// TableNames lists the emittable tables in output order.
func TableNames() []string {
	var names []string
	for _, t := range catalogue(nil) {
		names = append(names, t.name)
	}
	return names
}

func selectTables(s *tables.Set, only []string) ([]table, error) {
	all := catalogue(s)
	if len(only) == 0 {
		return all, nil
	}
	for _, name := range only {
		if !slices.ContainsFunc(all, func(t table) bool { return t.name == name }) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTable, name)
		}
	}
	return slices.DeleteFunc(all, func(t table) bool { return !slices.Contains(only, t.name) }), nil
}

// Write serializes the selected tables of s to w.
func Write(w io.Writer, s *tables.Set, opts Options) error {
	selected, err := selectTables(s, opts.Only)
	if err != nil {
		return err
	}

	bw := bufio.NewWriterSize(w, 1<<16)
	e := &emitter{w: bw, step: "\t"}
	switch opts.Format {
	case FormatCPP:
		e.step = "  "
		writeCPP(e, selected, opts)
	case FormatGo:
		writeGo(e, selected, opts)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
	if e.err != nil {
		return fmt.Errorf("emit %s: %w", opts.Format, e.err)
	}
	return bw.Flush()
}

// emitter remembers the first write error so the writers stay linear.
type emitter struct {
	w    *bufio.Writer
	step string // one level of indentation
	err  error
}

func (e *emitter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *emitter) str(s string) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.WriteString(s)
}

// body writes the elements of t between the outermost braces. spell
// renders one element.
func (e *emitter) body(t table, indent string, spell func(uint64) string) {
	idx := make([]int, len(t.dims))
	if len(t.dims) == 1 {
		for i := 0; i < t.dims[0]; i++ {
			idx[0] = i
			if i%16 == 0 {
				e.str(indent)
			}
			e.str(spell(t.at(idx)))
			if i%16 == 15 || i == t.dims[0]-1 {
				e.str(",\n")
			} else {
				e.str(", ")
			}
		}
		return
	}
	e.nested(t, 0, idx, indent, spell)
}

func (e *emitter) nested(t table, depth int, idx []int, indent string, spell func(uint64) string) {
	last := len(t.dims) - 1
	for i := 0; i < t.dims[depth]; i++ {
		idx[depth] = i
		if depth+1 == last {
			e.str(indent + "{")
			for j := 0; j < t.dims[last]; j++ {
				idx[last] = j
				if j > 0 {
					e.str(", ")
				}
				e.str(spell(t.at(idx)))
			}
			e.str("},\n")
			continue
		}
		e.str(indent + "{\n")
		e.nested(t, depth+1, idx, indent+e.step, spell)
		e.str(indent + "},\n")
	}
}
