package gsheetdb

import (
	"regexp"
	"strconv"
	"strings"
)

// Accepted A1 forms. Cell operations take the bare cell form; range
// operations additionally take bounded rectangles, row-open rectangles
// ("A2:O"), and column spans ("A:C").
var (
	cellExpr       = regexp.MustCompile(`^([A-Za-z]{1,3})([1-9][0-9]*)$`)
	rangeExpr      = regexp.MustCompile(`^([A-Za-z]{1,3})([1-9][0-9]*):([A-Za-z]{1,3})([1-9][0-9]*)?$`)
	columnSpanExpr = regexp.MustCompile(`^([A-Za-z]{1,3}):([A-Za-z]{1,3})$`)
)

// rangeDims is the nominal rectangle of a validated range spec. rows is 0
// when the range is row-open and the height depends on the sheet contents.
type rangeDims struct {
	rows int
	cols int
}

func validCell(address string) bool {
	return cellExpr.MatchString(address)
}

// parseRange validates spec and returns its nominal rectangle. Reversed
// rectangles ("B2:A1") are rejected rather than normalized.
func parseRange(spec string) (rangeDims, bool) {
	if cellExpr.MatchString(spec) {
		return rangeDims{rows: 1, cols: 1}, true
	}
	if m := rangeExpr.FindStringSubmatch(spec); m != nil {
		left := columnNumber(m[1])
		right := columnNumber(m[3])
		if right < left {
			return rangeDims{}, false
		}
		dims := rangeDims{cols: right - left + 1}
		if m[4] != "" {
			top, _ := strconv.Atoi(m[2])
			bottom, _ := strconv.Atoi(m[4])
			if bottom < top {
				return rangeDims{}, false
			}
			dims.rows = bottom - top + 1
		}
		return dims, true
	}
	if m := columnSpanExpr.FindStringSubmatch(spec); m != nil {
		left := columnNumber(m[1])
		right := columnNumber(m[2])
		if right < left {
			return rangeDims{}, false
		}
		return rangeDims{cols: right - left + 1}, true
	}
	return rangeDims{}, false
}

// columnNumber converts column letters to a 1-based index (A=1, Z=26, AA=27).
func columnNumber(letters string) int {
	n := 0
	for _, r := range strings.ToUpper(letters) {
		n = n*26 + int(r-'A') + 1
	}
	return n
}

// columnLetters converts a 1-based column index to letters (1=A, 27=AA).
func columnLetters(n int) string {
	letters := ""
	for n > 0 {
		n--
		letters = string(rune('A'+n%26)) + letters
		n /= 26
	}
	return letters
}

// qualifyRange prefixes spec with a worksheet title in A1 notation, doubling
// single quotes inside the title. An empty spec addresses the whole sheet.
func qualifyRange(title, spec string) string {
	quoted := "'" + strings.ReplaceAll(title, "'", "''") + "'"
	if spec == "" {
		return quoted
	}
	return quoted + "!" + spec
}
