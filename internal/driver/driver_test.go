package driver

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tw-lang/turnways/internal/turnways"
)

// For single-line source, Flip(Flop(T)) is the identity (one line is
// always uniform-width), so the stored file content is simply the
// horizontal program text itself — these single-line fixtures exercise
// that degenerate case, same as go-snaps' own fixture inputs.

func TestRunFlipsVerticalSourceBeforeEvaluating(t *testing.T) {
	horizontal := "let x = 2; print(x);"

	var sink bytes.Buffer
	res := Run(horizontal, &sink)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Source != horizontal {
		t.Errorf("source = %q, want %q", res.Source, horizontal)
	}
	if sink.String() != "2\n.\n0\n" {
		t.Errorf("sink = %q, want %q", sink.String(), "2\n.\n0\n")
	}
}

// TestRunNormalizesRaggedMultiLineSource proves the double transform
// described in spec.md §4.7 step 2: Flop-then-Flip is not the same as
// Flip alone once a program spans multiple lines of differing length.
// Flip alone would transpose the text, turning each column into a row,
// so the program would no longer read as written; Flop-then-Flip instead pads
// every short line out to the width of the longest one first, so the
// grid Flip rotates is always rectangular and nothing is lost.
func TestRunNormalizesRaggedMultiLineSource(t *testing.T) {
	ragged := "let x = 1;\nprint(x);"
	wantPadded := "let x = 1;\nprint(x); "

	var sink bytes.Buffer
	res := Run(ragged, &sink)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Source != wantPadded {
		t.Errorf("source = %q, want %q (short line padded to the long line's width)", res.Source, wantPadded)
	}
	if res.Source == ragged {
		t.Errorf("source unchanged at %q; the double transform should have padded the short line", res.Source)
	}
	if sink.String() != "1\n.\n0\n" {
		t.Errorf("sink = %q, want %q", sink.String(), "1\n.\n0\n")
	}

	// A plain Flip with no preceding Flop would instead emit
	// len(lines[0]) rows, one per column of the input — confirm that's
	// a genuinely different (and wrong) result for this input.
	if bad := turnways.Flip(ragged); bad == wantPadded {
		t.Fatalf("test fixture is not actually ragged enough to distinguish Flip alone from Flop-then-Flip")
	}
}

func TestRunFileReportsIOErrorThroughSink(t *testing.T) {
	var sink bytes.Buffer
	res := RunFile(filepath.Join(t.TempDir(), "nope.tw"), &sink)
	if res.Err == nil {
		t.Fatalf("expected an error for a missing file")
	}
	if got := sink.String(); !strings.Contains(got, turnways.Flop("not found")) {
		t.Errorf("sink = %q, want it to mention the file was not found", got)
	}
}

func TestRunFileEvaluatesAnExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.tw")
	if err := os.WriteFile(path, []byte(`print("hi");`), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	var sink bytes.Buffer
	res := RunFile(path, &sink)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if sink.String() != "h\ni\n" {
		t.Errorf("sink = %q, want %q", sink.String(), "h\ni\n")
	}
}

func TestRunReportsSyntaxErrorThroughSink(t *testing.T) {
	var sink bytes.Buffer
	res := Run(`let = 1;`, &sink)
	if res.Err == nil {
		t.Fatalf("expected a syntax error")
	}
	if got := sink.String(); !strings.Contains(got, turnways.Flop("An error occurred")) {
		t.Errorf("sink = %q, want it to contain the generic failure wording", got)
	}
}

func TestRunReportsRuntimeErrorThroughSink(t *testing.T) {
	var sink bytes.Buffer
	res := Run(`print(nope);`, &sink)
	if res.Err == nil {
		t.Fatalf("expected a runtime error")
	}
	if got := sink.String(); !strings.Contains(got, turnways.Flop("An error occurred")) {
		t.Errorf("sink = %q, want it to contain the generic failure wording", got)
	}
}
