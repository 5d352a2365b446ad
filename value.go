package gsheetdb

import (
	"fmt"
	"strconv"
)

// Kind identifies the scalar shape held by a Value.
type Kind int

const (
	// KindEmpty is a blank cell.
	KindEmpty Kind = iota
	// KindText is a string cell.
	KindText
	// KindNumber is a numeric cell.
	KindNumber
)

// Value is the content of a single cell: empty, text, or a number. The zero
// value is the empty cell.
type Value struct {
	kind Kind
	text string
	num  float64
}

// Text returns a text Value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Number returns a numeric Value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Kind reports the scalar shape of v.
func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether v is a blank cell.
func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

// Float64 returns the numeric form of v: the number itself, a parse of the
// text, or 0 for a blank cell.
func (v Value) Float64() float64 {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindText:
		f, _ := strconv.ParseFloat(v.text, 64)
		return f
	}
	return 0
}

// String returns the display form of v: "" for a blank cell, the text
// itself, or the plain decimal rendering of the number.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return ""
}

// Row builds a []Value from native Go scalars: strings become text, numeric
// types numbers, booleans the TRUE/FALSE grid form, nil the blank cell.
func Row(cells ...interface{}) []Value {
	row := make([]Value, len(cells))
	for i, c := range cells {
		row[i] = valueOf(c)
	}
	return row
}

// valueOf maps one cell of a remote grid, or a caller-supplied scalar, onto
// a Value. The interface{} cells of the generated client stop here.
func valueOf(cell interface{}) Value {
	switch c := cell.(type) {
	case nil:
		return Value{}
	case Value:
		return c
	case string:
		if c == "" {
			return Value{}
		}
		return Text(c)
	case float64:
		return Number(c)
	case float32:
		return Number(float64(c))
	case int:
		return Number(float64(c))
	case int64:
		return Number(float64(c))
	case bool:
		if c {
			return Text("TRUE")
		}
		return Text("FALSE")
	}
	return Text(fmt.Sprint(cell))
}

// api returns the wire form of v. Blank cells write the empty string, which
// clears content under a raw update.
func (v Value) api() interface{} {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return v.num
	}
	return ""
}

func rowToAPI(row []Value) []interface{} {
	out := make([]interface{}, len(row))
	for i, v := range row {
		out[i] = v.api()
	}
	return out
}

func gridToAPI(grid [][]Value) [][]interface{} {
	out := make([][]interface{}, len(grid))
	for i, row := range grid {
		out[i] = rowToAPI(row)
	}
	return out
}

func rowFromAPI(cells []interface{}) []Value {
	row := make([]Value, len(cells))
	for i, c := range cells {
		row[i] = valueOf(c)
	}
	return row
}

func gridFromAPI(values [][]interface{}) [][]Value {
	grid := make([][]Value, len(values))
	for i, cells := range values {
		grid[i] = rowFromAPI(cells)
	}
	return grid
}

// padGrid pads every row of grid to width columns and, when rows > 0,
// extends the grid to rows rows of blanks. The remote API trims trailing
// blank cells and rows from its responses; padding restores the rectangle.
func padGrid(grid [][]Value, rows, cols int) [][]Value {
	height := len(grid)
	if rows > height {
		height = rows
	}
	out := make([][]Value, height)
	for i := range out {
		row := make([]Value, cols)
		if i < len(grid) {
			copy(row, grid[i])
			if len(grid[i]) > cols {
				row = grid[i]
			}
		}
		out[i] = row
	}
	return out
}
