package gsheetdb

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/sheets/v4"

	"github.com/gsheetdb/gsheetdb/google"
)

// fakeSheets is an in-memory stand-in for the remote service carrying its
// observable semantics: reads trim trailing blank cells and rows, a
// single-cell update range anchors a larger grid, a bounded range rejects
// one, appends land after the last used row. Round-trip tests run the
// client against it.
type fakeSheets struct {
	spreadsheetID string
	order         []string
	sheets        map[string]*fakeSheet
	nextID        int64
}

var _ google.SheetsInterface = (*fakeSheets)(nil)

type fakeSheet struct {
	id   int64
	rows int
	cols int
	data [][]interface{}
}

// gridRegion is a resolved A1 target, 1-based and inclusive. anchor marks a
// single-cell range, which expands to fit the written grid.
type gridRegion struct {
	top, left, bottom, right int
	anchor                   bool
}

func newFakeSheets(spreadsheetID string, titles ...string) *fakeSheets {
	f := &fakeSheets{
		spreadsheetID: spreadsheetID,
		sheets:        map[string]*fakeSheet{},
	}
	for _, title := range titles {
		f.addSheet(title, defaultSheetRows, defaultSheetCols)
	}
	return f
}

func (f *fakeSheets) addSheet(title string, rows, cols int) {
	data := make([][]interface{}, rows)
	for i := range data {
		data[i] = make([]interface{}, cols)
	}
	f.sheets[title] = &fakeSheet{id: f.nextID, rows: rows, cols: cols, data: data}
	f.nextID++
	f.order = append(f.order, title)
}

func (f *fakeSheets) properties(title string) *sheets.SheetProperties {
	sheet := f.sheets[title]
	index := int64(0)
	for i, t := range f.order {
		if t == title {
			index = int64(i)
		}
	}
	return &sheets.SheetProperties{
		SheetId: sheet.id,
		Title:   title,
		Index:   index,
		GridProperties: &sheets.GridProperties{
			RowCount:    int64(sheet.rows),
			ColumnCount: int64(sheet.cols),
		},
	}
}

func (f *fakeSheets) GetSpreadsheet(_ context.Context, spreadsheetID string) (*sheets.Spreadsheet, error) {
	if spreadsheetID != f.spreadsheetID {
		return nil, spreadsheetNotFound()
	}
	spreadsheet := &sheets.Spreadsheet{SpreadsheetId: spreadsheetID}
	for _, title := range f.order {
		spreadsheet.Sheets = append(spreadsheet.Sheets, &sheets.Sheet{Properties: f.properties(title)})
	}
	return spreadsheet, nil
}

func (f *fakeSheets) GetValues(_ context.Context, spreadsheetID string, valueRange string) (*sheets.ValueRange, error) {
	sheet, region, err := f.resolve(spreadsheetID, valueRange)
	if err != nil {
		return nil, err
	}
	bottom := min(region.bottom, sheet.rows)
	right := min(region.right, sheet.cols)
	var rows [][]interface{}
	for r := region.top; r <= bottom; r++ {
		var row []interface{}
		for c := region.left; c <= right; c++ {
			cell := sheet.data[r-1][c-1]
			if isBlankCell(cell) {
				cell = ""
			}
			row = append(row, cell)
		}
		rows = append(rows, trimRowTail(row))
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	return &sheets.ValueRange{MajorDimension: "ROWS", Range: valueRange, Values: rows}, nil
}

func (f *fakeSheets) UpdateValues(_ context.Context, spreadsheetID string, valueRange string, values *sheets.ValueRange) (*sheets.UpdateValuesResponse, error) {
	sheet, region, err := f.resolve(spreadsheetID, valueRange)
	if err != nil {
		return nil, err
	}
	limitBottom := sheet.rows
	limitRight := sheet.cols
	if !region.anchor {
		limitBottom = min(limitBottom, region.bottom)
		limitRight = min(limitRight, region.right)
	}
	updated := int64(0)
	for i, row := range values.Values {
		for j, cell := range row {
			r := region.top + i
			c := region.left + j
			if r > limitBottom || c > limitRight {
				return nil, &googleapi.Error{Code: http.StatusBadRequest, Message: "Request range exceeds grid limits"}
			}
			sheet.data[r-1][c-1] = cell
			updated++
		}
	}
	return &sheets.UpdateValuesResponse{
		SpreadsheetId: spreadsheetID,
		UpdatedRange:  valueRange,
		UpdatedCells:  updated,
	}, nil
}

func (f *fakeSheets) ClearValues(_ context.Context, spreadsheetID string, valueRange string) (*sheets.ClearValuesResponse, error) {
	sheet, region, err := f.resolve(spreadsheetID, valueRange)
	if err != nil {
		return nil, err
	}
	bottom := min(region.bottom, sheet.rows)
	right := min(region.right, sheet.cols)
	for r := region.top; r <= bottom; r++ {
		for c := region.left; c <= right; c++ {
			sheet.data[r-1][c-1] = nil
		}
	}
	return &sheets.ClearValuesResponse{SpreadsheetId: spreadsheetID, ClearedRange: valueRange}, nil
}

func (f *fakeSheets) AppendValues(_ context.Context, spreadsheetID string, valueRange string, values *sheets.ValueRange) (*sheets.AppendValuesResponse, error) {
	sheet, _, err := f.resolve(spreadsheetID, valueRange)
	if err != nil {
		return nil, err
	}
	start := sheet.lastUsedRow() + 1
	updated := int64(0)
	for i, row := range values.Values {
		r := start + i
		for r > sheet.rows {
			sheet.data = append(sheet.data, make([]interface{}, sheet.cols))
			sheet.rows++
		}
		for j, cell := range row {
			if j >= sheet.cols {
				return nil, &googleapi.Error{Code: http.StatusBadRequest, Message: "Request range exceeds grid limits"}
			}
			sheet.data[r-1][j] = cell
			updated++
		}
	}
	return &sheets.AppendValuesResponse{
		SpreadsheetId: spreadsheetID,
		Updates:       &sheets.UpdateValuesResponse{SpreadsheetId: spreadsheetID, UpdatedCells: updated},
	}, nil
}

func (f *fakeSheets) AddSheet(_ context.Context, spreadsheetID string, title string, rows int64, cols int64) (*sheets.SheetProperties, error) {
	if spreadsheetID != f.spreadsheetID {
		return nil, spreadsheetNotFound()
	}
	if _, exists := f.sheets[title]; exists {
		return nil, &googleapi.Error{Code: http.StatusBadRequest, Message: `A sheet with the name "` + title + `" already exists.`}
	}
	f.addSheet(title, int(rows), int(cols))
	return f.properties(title), nil
}

func (f *fakeSheets) DeleteSheet(_ context.Context, spreadsheetID string, sheetID int64) error {
	if spreadsheetID != f.spreadsheetID {
		return spreadsheetNotFound()
	}
	for title, sheet := range f.sheets {
		if sheet.id != sheetID {
			continue
		}
		delete(f.sheets, title)
		for i, t := range f.order {
			if t == title {
				f.order = append(f.order[:i], f.order[i+1:]...)
				break
			}
		}
		return nil
	}
	return &googleapi.Error{Code: http.StatusBadRequest, Message: "No sheet with id: " + strconv.FormatInt(sheetID, 10)}
}

func (f *fakeSheets) resolve(spreadsheetID, valueRange string) (*fakeSheet, gridRegion, error) {
	if spreadsheetID != f.spreadsheetID {
		return nil, gridRegion{}, spreadsheetNotFound()
	}
	title, spec, ok := splitQualified(valueRange)
	if !ok {
		return nil, gridRegion{}, badRange(valueRange)
	}
	sheet, found := f.sheets[title]
	if !found {
		return nil, gridRegion{}, badRange(valueRange)
	}
	region, ok := sheetRegion(sheet, spec)
	if !ok {
		return nil, gridRegion{}, badRange(valueRange)
	}
	return sheet, region, nil
}

// splitQualified splits "'Title'!SPEC" into its parts, undoing the quote
// doubling. SPEC is empty for a bare "'Title'".
func splitQualified(s string) (title, spec string, ok bool) {
	if !strings.HasPrefix(s, "'") {
		return "", "", false
	}
	rest := s[1:]
	var b strings.Builder
	for i := 0; i < len(rest); i++ {
		if rest[i] != '\'' {
			b.WriteByte(rest[i])
			continue
		}
		if i+1 < len(rest) && rest[i+1] == '\'' {
			b.WriteByte('\'')
			i++
			continue
		}
		switch {
		case i+1 == len(rest):
			return b.String(), "", true
		case rest[i+1] == '!':
			return b.String(), rest[i+2:], true
		}
		return "", "", false
	}
	return "", "", false
}

func sheetRegion(sheet *fakeSheet, spec string) (gridRegion, bool) {
	if spec == "" {
		return gridRegion{top: 1, left: 1, bottom: sheet.rows, right: sheet.cols}, true
	}
	if m := cellExpr.FindStringSubmatch(spec); m != nil {
		col := columnNumber(m[1])
		row, _ := strconv.Atoi(m[2])
		return gridRegion{top: row, left: col, bottom: row, right: col, anchor: true}, true
	}
	if m := rangeExpr.FindStringSubmatch(spec); m != nil {
		left := columnNumber(m[1])
		top, _ := strconv.Atoi(m[2])
		right := columnNumber(m[3])
		bottom := sheet.rows
		if m[4] != "" {
			bottom, _ = strconv.Atoi(m[4])
		}
		return gridRegion{top: top, left: left, bottom: bottom, right: right}, true
	}
	if m := columnSpanExpr.FindStringSubmatch(spec); m != nil {
		return gridRegion{top: 1, left: columnNumber(m[1]), bottom: sheet.rows, right: columnNumber(m[2])}, true
	}
	return gridRegion{}, false
}

func (s *fakeSheet) lastUsedRow() int {
	last := 0
	for i, row := range s.data {
		for _, cell := range row {
			if !isBlankCell(cell) {
				last = i + 1
				break
			}
		}
	}
	return last
}

func isBlankCell(cell interface{}) bool {
	return cell == nil || cell == ""
}

func trimRowTail(row []interface{}) []interface{} {
	end := len(row)
	for end > 0 && isBlankCell(row[end-1]) {
		end--
	}
	return row[:end]
}

func spreadsheetNotFound() error {
	return &googleapi.Error{Code: http.StatusNotFound, Message: "Requested entity was not found."}
}

func badRange(valueRange string) error {
	return &googleapi.Error{Code: http.StatusBadRequest, Message: "Unable to parse range: " + valueRange}
}
