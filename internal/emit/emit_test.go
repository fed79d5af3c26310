package emit

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/hailam/rotboard/internal/tables"
)

var (
	setOnce sync.Once
	set     *tables.Set
	setErr  error
)

func testSet(t *testing.T) *tables.Set {
	t.Helper()
	setOnce.Do(func() {
		set, setErr = tables.Build(context.Background(), tables.Options{})
	})
	if setErr != nil {
		t.Fatalf("Build() = %v", setErr)
	}
	return set
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"cpp", "go", "CPP"} {
		if _, err := ParseFormat(in); err != nil {
			t.Errorf("ParseFormat(%q) = %v", in, err)
		}
	}
	if _, err := ParseFormat("rust"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(rust) = %v, want ErrUnknownFormat", err)
	}
}

func TestWriteGo(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, testSet(t), Options{Format: FormatGo, Package: "gen", Only: []string{"LINE", "IS_2STEP_MOVE"}})
	if err != nil {
		t.Fatalf("Write() = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"// Code generated by gentables. DO NOT EDIT.",
		"package gen\n",
		"var Line = [64][64]uint64{\n",
		"var Is2StepMove = [64][64]bool{\n",
		// Line[a1][h1]
		"\t{0x0000000000000001, 0x0000000000000003, 0x0000000000000007,",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "AttackTable") {
		t.Error("output contains a table that was not selected")
	}
	if got := strings.Count(out, "},\n"); got != 128 {
		t.Errorf("got %d rows, want 128", got)
	}
}

func TestWriteCPP(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testSet(t), Options{Format: FormatCPP, Only: []string{"PIN_BACK_TABLE"}}); err != nil {
		t.Fatalf("Write() = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"#ifndef EVALUATOR_EXTRA_H\n",
		"namespace Sayuri {\n",
		"  namespace MetaEvaluator {\n",
		"    constexpr Bitboard PIN_BACK_TABLE[NUM_SQUARES][0xff + 1][NUM_ROTS] {\n",
		"{0x0ULL, 0x0ULL, 0x0ULL, 0x0ULL},\n",
		"#endif  // EVALUATOR_EXTRA_H\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "MetaUtil") {
		t.Error("pin-back only output opened MetaUtil")
	}
	if got := strings.Count(out, "ULL}"); got != 64*256 {
		t.Errorf("got %d entries, want %d", got, 64*256)
	}
}

func TestWriteCPPAllTables(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testSet(t), Options{Format: FormatCPP}); err != nil {
		t.Fatalf("Write() = %v", err)
	}
	out := buf.String()
	for _, name := range TableNames() {
		if !strings.Contains(out, " "+name+"[") {
			t.Errorf("output missing table %s", name)
		}
	}
	if !strings.Contains(out, "constexpr char NUM_BIT16_TABLE[0xffff + 1] {\n      0, 1, 1, 2, 1, 2, 2, 3,") {
		t.Error("NUM_BIT16_TABLE does not start with the expected counts")
	}
}

func TestWriteUnknownTable(t *testing.T) {
	err := Write(&bytes.Buffer{}, testSet(t), Options{Format: FormatGo, Only: []string{"KNIGHT"}})
	if !errors.Is(err, ErrUnknownTable) {
		t.Errorf("Write(KNIGHT) = %v, want ErrUnknownTable", err)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWritePropagatesErrors(t *testing.T) {
	err := Write(failWriter{}, testSet(t), Options{Format: FormatGo})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Write(failWriter) = %v, want disk full", err)
	}
}
