// Package chunker segments document text into paragraph blocks and serves
// them page by page, and extracts character ranges for annotations.
//
// A paragraph block is a maximal run of text that starts at a non-whitespace
// character and ends at the first blank line (a newline, optional horizontal
// whitespace, another newline) or at the end of the text. A single newline
// does not end a block.
//
// All offsets are rune (character) positions in the normalized text, see
// Normalize. For every Chunk c produced from text t:
//
//	[]rune(Normalize(t))[c.Offset : c.Offset+c.Length] == []rune(c.Text)
//
// Functions in this package are pure and safe for concurrent use.
package chunker

import (
	"errors"
	"fmt"
	"unicode"
)

var (
	// ErrInvalidParameter is returned when page or page size is not a positive integer.
	ErrInvalidParameter = errors.New("invalid page parameter")
	// ErrOutOfRange is returned when the requested page starts past the last chunk.
	ErrOutOfRange = errors.New("page out of range")
	// ErrRangeOutOfBounds is returned when an extraction range does not fit the text.
	ErrRangeOutOfBounds = errors.New("range out of bounds")
)

// Chunk is one paragraph block of a document.
type Chunk struct {
	Index  int    `json:"index"`  // Zero-based position in the document's block sequence
	Text   string `json:"text"`   // Block text, exactly as it appears in the normalized text
	Offset int    `json:"offset"` // Rune offset of the first character
	Length int    `json:"length"` // Length in runes
}

// End returns the rune offset one past the last character of the chunk.
func (c Chunk) End() int {
	return c.Offset + c.Length
}

// String returns a debug representation, e.g. Chunk(0)[0:12].
func (c Chunk) String() string {
	return fmt.Sprintf("Chunk(%d)[%d:%d]", c.Index, c.Offset, c.End())
}

// Split normalizes text and returns all of its paragraph blocks in document
// order. It returns an empty slice for empty or all-whitespace text.
func Split(text string) []Chunk {
	return split([]rune(Normalize(text)))
}

// split scans normalized runes once, left to right.
func split(runes []rune) []Chunk {
	chunks := []Chunk{}
	n := len(runes)
	i := 0

	for i < n {
		for i < n && unicode.IsSpace(runes[i]) {
			i++
		}
		if i >= n {
			break
		}

		start := i
		end := blockEnd(runes, start)
		chunks = append(chunks, Chunk{
			Index:  len(chunks),
			Text:   string(runes[start:end]),
			Offset: start,
			Length: end - start,
		})
		i = end
	}

	return chunks
}

// blockEnd returns the offset of the first blank-line boundary at or after
// start, or len(runes) if the block runs to the end of the text.
func blockEnd(runes []rune, start int) int {
	n := len(runes)
	for j := start; j < n; j++ {
		if runes[j] != '\n' {
			continue
		}
		k := j + 1
		for k < n && isHorizontalSpace(runes[k]) {
			k++
		}
		if k < n && runes[k] == '\n' {
			return j
		}
		// Runes in [j+1, k) are horizontal space, none of them can open a
		// boundary, so resume the scan at k.
		j = k - 1
	}
	return n
}

func isHorizontalSpace(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}
