package interp

import (
	"io"
	"strings"

	"github.com/tw-lang/turnways/internal/turnways"
)

// PrintZone is the buffered "print zone" of spec.md §4.2: an
// accumulator of program output, rotated through turnways.Flop before
// it reaches a sink. It is an explicit state object owned by whatever
// drives the interpreter, not a package-level global, so independent
// runs (as in tests) never share state — see DESIGN.md.
type PrintZone struct {
	buf strings.Builder
}

// Append stringifies v and appends it followed by a newline.
func (z *PrintZone) Append(v Value) {
	z.buf.WriteString(v.String())
	z.buf.WriteByte('\n')
}

// AppendText appends raw text followed by a newline, used for the
// error messages the driver writes directly into the print zone
// (spec.md §7) rather than through Value stringification.
func (z *PrintZone) AppendText(text string) {
	z.buf.WriteString(text)
	z.buf.WriteByte('\n')
}

// Flush rotates the accumulated buffer through turnways.Flop, writes
// it to sink followed by a trailing newline, and resets the buffer to
// empty. The trailing newline mirrors the reference implementation's
// `print(turnwaysFlop(printZone))`, whose host print() function always
// appends one — see spec.md §8 scenario 1, where Flop("2.0\n") alone is
// one character (that final newline) short of the documented sink
// content. An empty buffer writes nothing, so a program that never
// prints leaves the sink silent.
func (z *PrintZone) Flush(sink io.Writer) error {
	if z.buf.Len() == 0 {
		return nil
	}
	rotated := turnways.Flop(z.buf.String())
	z.buf.Reset()
	_, err := io.WriteString(sink, rotated+"\n")
	return err
}
