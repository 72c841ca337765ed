// Package diff renders line-oriented unified diffs, used to show what
// sanitization changed in a theme document.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	// ContextLines is the number of unchanged lines kept around each change.
	ContextLines    = 3
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

type op struct {
	kind byte // ' ', '-' or '+'
	text string
}

// Stats counts lines removed from before and added in after.
type Stats struct {
	Added   int
	Removed int
}

// Unified returns a unified diff of before and after with ContextLines of context
// per hunk, or "" when the inputs are identical. Output longer than 10,000 lines is
// truncated with a marker.
func Unified(before, after []byte, beforeLabel, afterLabel string) string {
	if bytes.Equal(before, after) {
		return ""
	}

	ops := lineOps(before, after)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)
	for _, h := range hunks(ops) {
		writeHunk(&buf, ops, h[0], h[1])
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		truncated := strings.Join(lines[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n"
	}
	return result
}

// Count returns line statistics without rendering.
func Count(before, after []byte) Stats {
	var s Stats
	for _, o := range lineOps(before, after) {
		switch o.kind {
		case '+':
			s.Added++
		case '-':
			s.Removed++
		}
	}
	return s
}

// lineOps diffs whole lines by mapping each distinct line to a rune first.
func lineOps(before, after []byte) []op {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	ops := make([]op, 0, len(diffs))
	for _, d := range diffs {
		kind := byte(' ')
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			kind = '-'
		case diffmatchpatch.DiffInsert:
			kind = '+'
		}
		for _, line := range splitLines(d.Text) {
			ops = append(ops, op{kind: kind, text: line})
		}
	}
	return ops
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\n")
	}
	return lines
}

// hunks groups changed ops into [start, end) ranges, merging changes whose
// context windows touch.
func hunks(ops []op) [][2]int {
	var out [][2]int
	for i := 0; i < len(ops); i++ {
		if ops[i].kind == ' ' {
			continue
		}
		start := max(0, i-ContextLines)
		end := min(len(ops), i+ContextLines+1)
		if n := len(out); n > 0 && start <= out[n-1][1] {
			out[n-1][1] = end
			continue
		}
		out = append(out, [2]int{start, end})
	}
	return out
}

func writeHunk(buf *bytes.Buffer, ops []op, start, end int) {
	oldStart, newStart := 1, 1
	for _, o := range ops[:start] {
		if o.kind != '+' {
			oldStart++
		}
		if o.kind != '-' {
			newStart++
		}
	}
	oldCount, newCount := 0, 0
	for _, o := range ops[start:end] {
		if o.kind != '+' {
			oldCount++
		}
		if o.kind != '-' {
			newCount++
		}
	}
	if oldCount == 0 {
		oldStart--
	}
	if newCount == 0 {
		newStart--
	}

	fmt.Fprintf(buf, "@@ -%d,%d +%d,%d @@\n", oldStart, oldCount, newStart, newCount)
	for _, o := range ops[start:end] {
		buf.WriteByte(o.kind)
		buf.WriteString(o.text)
		buf.WriteByte('\n')
	}
}
