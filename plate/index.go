package plate

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Index addresses a well by zero-based row and one-based column. Its text
// form is the spreadsheet-style label: base-26 row letters followed by the
// decimal column, so {0, 1} is "A1", {1, 1} is "B1" and {26, 1} is "AA1".
//
// Indices order by row, then by column. This is the order in which every
// well set, group and plate in the module iterates.
type Index struct {
	Row    int
	Column int
}

// NewIndex validates row >= 0 and column >= 1.
func NewIndex(row, column int) (Index, error) {
	if row < 0 || column < 1 {
		return Index{}, fmt.Errorf("%w: row %d, column %d", ErrFormat, row, column)
	}
	return Index{Row: row, Column: column}, nil
}

// MustIndex is like NewIndex but panics on invalid input. Intended for
// literals in tests and examples.
func MustIndex(row, column int) Index {
	idx, err := NewIndex(row, column)
	if err != nil {
		panic(err)
	}
	return idx
}

// ParseIndex decodes a label of the form [A-Za-z]+[0-9]+. Letters are
// case-insensitive; the column must be at least 1.
func ParseIndex(label string) (Index, error) {
	split := strings.IndexFunc(label, func(r rune) bool { return r >= '0' && r <= '9' })
	if split <= 0 {
		return Index{}, fmt.Errorf("%w: %q", ErrFormat, label)
	}
	row, err := ParseRowLabel(label[:split])
	if err != nil {
		return Index{}, fmt.Errorf("%w: %q", ErrFormat, label)
	}
	digits := label[split:]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Index{}, fmt.Errorf("%w: %q", ErrFormat, label)
		}
	}
	column, err := strconv.Atoi(digits)
	if err != nil || column < 1 {
		return Index{}, fmt.Errorf("%w: %q", ErrFormat, label)
	}
	return Index{Row: row, Column: column}, nil
}

// MustParseIndex is like ParseIndex but panics on malformed input.
func MustParseIndex(label string) Index {
	idx, err := ParseIndex(label)
	if err != nil {
		panic(err)
	}
	return idx
}

// ParseIndexList splits list on delim and parses every token. A malformed
// token fails only itself; the indices of the well-formed tokens are
// returned in input order.
//
//	idx, out := plate.ParseIndexList("A1, B2,??", ",")
//	// idx == [A1 B2], out.OK() == false
func ParseIndexList(list, delim string) ([]Index, Outcome) {
	var out Outcome
	tokens := splitList(list, delim)
	indices := make([]Index, 0, len(tokens))
	for _, tok := range tokens {
		idx, err := ParseIndex(tok)
		if err != nil {
			out.fail(tok, err)
			continue
		}
		indices = append(indices, idx)
		out.pass()
	}
	return indices, out
}

// maxRowLetters is the length of RowLabel(math.MaxInt) on 64-bit platforms.
const maxRowLetters = 14

// RowLabel encodes a zero-based row in bijective base 26:
// 0 → "A", 25 → "Z", 26 → "AA", 701 → "ZZ", 702 → "AAA".
func RowLabel(row int) string {
	if row < 0 {
		return ""
	}
	var buf [maxRowLetters]byte
	i := len(buf)
	for n := uint64(row) + 1; n > 0; n = (n - 1) / 26 {
		i--
		buf[i] = byte('A' + (n-1)%26)
	}
	return string(buf[i:])
}

// ParseRowLabel decodes row letters produced by RowLabel (case-insensitive).
// Labels naming a row beyond math.MaxInt fail with ErrFormat.
func ParseRowLabel(letters string) (int, error) {
	if letters == "" || len(letters) > maxRowLetters {
		return 0, fmt.Errorf("%w: row label %q", ErrFormat, letters)
	}
	var n uint64
	for _, r := range letters {
		var d uint64
		switch {
		case r >= 'A' && r <= 'Z':
			d = uint64(r-'A') + 1
		case r >= 'a' && r <= 'z':
			d = uint64(r-'a') + 1
		default:
			return 0, fmt.Errorf("%w: row label %q", ErrFormat, letters)
		}
		if n > (math.MaxUint64-d)/26 {
			return 0, fmt.Errorf("%w: row label %q overflows", ErrFormat, letters)
		}
		n = n*26 + d
	}
	if n-1 > math.MaxInt {
		return 0, fmt.Errorf("%w: row label %q overflows", ErrFormat, letters)
	}
	return int(n - 1), nil
}

// RowLabel returns the letter part of the label.
func (i Index) RowLabel() string { return RowLabel(i.Row) }

// String returns the spreadsheet-style label, e.g. "C7".
func (i Index) String() string {
	return RowLabel(i.Row) + strconv.Itoa(i.Column)
}

// Compare orders by row, then column.
func (i Index) Compare(other Index) int {
	if c := cmp.Compare(i.Row, other.Row); c != 0 {
		return c
	}
	return cmp.Compare(i.Column, other.Column)
}

// Less reports whether i sorts before other.
func (i Index) Less(other Index) bool { return i.Compare(other) < 0 }

// within reports whether i lies inside a rows x columns plate.
func (i Index) within(rows, columns int) bool {
	return i.Row >= 0 && i.Row < rows && i.Column >= 1 && i.Column <= columns
}

// splitList splits on delim, trims whitespace and drops empty tokens.
func splitList(list, delim string) []string {
	if delim == "" {
		delim = ","
	}
	parts := strings.Split(list, delim)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
