// Package turnways implements the 90°-rotation transform between
// "horizontal" text (conventional line-per-row) and "vertical" text
// (column-major, one physical line per original column). It is the
// I/O wrapper the rest of the interpreter is bracketed by: source
// files are stored vertical and program output is displayed vertical.
//
// Flop and Flip are deliberately asymmetric, ported line-for-line from
// the reference implementation's turnwaysFlop/turnwaysFlip: Flop
// space-pads ragged rows to a uniform width on the way to vertical
// text, while Flip never pads on the way back, so Flip(Flop(x)) is
// only an identity when every line of x already has equal length.
package turnways

import "strings"

// Flop rotates horizontal text to vertical: each output line is the
// concatenation, over input lines in order, of one column of input,
// substituting a space where a line is too short to reach that column.
func Flop(text string) string {
	lines := splitLines(text)
	if len(lines) == 0 {
		return ""
	}

	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}

	rows := make([][]byte, width)
	for i := range rows {
		rows[i] = make([]byte, len(lines))
	}
	for y, line := range lines {
		for x := 0; x < width; x++ {
			if x < len(line) {
				rows[x][y] = line[x]
			} else {
				rows[x][y] = ' '
			}
		}
	}

	out := make([]string, width)
	for i, row := range rows {
		out[i] = string(row)
	}
	return strings.Join(out, "\n")
}

// Flip rotates vertical text back to horizontal: output line x is, for
// each input line y in order, character x of line y if that index is
// within line y's length, else nothing. Line 0's length determines how
// many output lines there are; no padding is added for short lines.
func Flip(text string) string {
	lines := splitLines(text)
	if len(lines) == 0 {
		return ""
	}

	height := len(lines[0])
	var sb strings.Builder
	for x := 0; x < height; x++ {
		for _, line := range lines {
			if x < len(line) {
				sb.WriteByte(line[x])
			}
		}
		if x < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// splitLines mirrors Python's str.splitlines(): "" splits to no lines
// at all (never to [""]), and a single trailing newline does not
// produce a trailing empty line the way strings.Split would. This
// distinction matters: spec.md's scenarios rotate buffers like "2.0\n",
// which must split into one line ("2.0"), not two ("2.0" and "").
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
