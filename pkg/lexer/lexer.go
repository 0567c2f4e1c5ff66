// Package lexer splits VM source into logical lines.
//
// A logical line is a physical line with its comment removed and
// surrounding whitespace trimmed. Lines that are blank, or become blank
// once the comment is stripped, never surface: the reader yields exactly
// the lines that can carry a command.
//
// Line Grammar:
//
//	<keyword> [<token>]*    tokens separated by spaces or tabs
//	// comment              runs to end of line
package lexer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Line is one logical line of VM source.
type Line struct {
	Text string `json:"text"` // comment-stripped, whitespace-trimmed
	Num  int    `json:"line"` // 1-based physical line number
}

// Tokens splits the line into its whitespace-delimited tokens. A logical
// line always has at least one token.
func (l Line) Tokens() []string {
	return strings.Fields(l.Text)
}

// LineReader lazily produces the logical lines of a VM source stream.
// It is restartable only by reopening the underlying stream.
type LineReader struct {
	r   *bufio.Reader
	num int
}

// NewLineReader creates a LineReader over the given stream.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// Next returns the next logical line. It returns io.EOF once the stream
// is exhausted; any other error comes from the underlying reader and
// means the rest of the stream is unreadable.
func (lr *LineReader) Next() (Line, error) {
	for {
		raw, err := lr.r.ReadString('\n')
		if err != nil && err != io.EOF {
			return Line{}, fmt.Errorf("reading line %d: %w", lr.num+1, err)
		}
		if raw == "" {
			return Line{}, io.EOF
		}
		lr.num++

		text := strings.TrimSpace(stripComment(raw))
		if text != "" {
			return Line{Text: text, Num: lr.num}, nil
		}
		if err == io.EOF {
			return Line{}, io.EOF
		}
	}
}

// stripComment drops a // comment and everything after it. A lone slash
// is ordinary token content.
func stripComment(s string) string {
	if i := strings.Index(s, "//"); i >= 0 {
		return s[:i]
	}
	return s
}
