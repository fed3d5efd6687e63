// Package render turns a visitation sequence into text.
//
// A sequence renders as its vertex indices in decimal, separated by a
// single space, with no leading or trailing separator:
//
//	[]int{0, 2, 1} → "0 2 1"
//	[]int{}        → ""
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultSeparator separates vertices in Sequence and Write.
const DefaultSeparator = " "

// Sequence renders seq space-separated.
func Sequence(seq []int) string {
	return Join(seq, DefaultSeparator)
}

// Join renders seq with sep between consecutive vertices.
func Join(seq []int, sep string) string {
	switch len(seq) {
	case 0:
		return ""
	case 1:
		return strconv.Itoa(seq[0])
	}

	var b strings.Builder
	b.Grow(len(seq) * (2 + len(sep)))
	b.WriteString(strconv.Itoa(seq[0]))
	for _, v := range seq[1:] {
		b.WriteString(sep)
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// Write writes Sequence(seq) followed by a newline to w.
func Write(w io.Writer, seq []int) error {
	if _, err := io.WriteString(w, Sequence(seq)+"\n"); err != nil {
		return fmt.Errorf("render: write sequence: %w", err)
	}

	return nil
}
