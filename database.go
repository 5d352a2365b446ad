package gsheetdb

import (
	"context"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"google.golang.org/api/sheets/v4"
)

// The database convention: row 1 of the active worksheet is the header row,
// every later row is a data row. Nothing is stored locally; each operation
// reads whatever it needs from the sheet.

// DBHeaders returns row 1 as column names; empty when the sheet is empty.
func (c *Client) DBHeaders(ctx context.Context) ([]string, error) {
	grid, err := c.allValues(ctx, "db headers")
	if err != nil {
		return nil, err
	}
	if len(grid) == 0 {
		return []string{}, nil
	}
	headers := make([]string, len(grid[0]))
	for i, v := range grid[0] {
		headers[i] = v.String()
	}
	return headers, nil
}

// DBAddHeader writes header into the first empty column of row 1, or one
// past the last used column when row 1 has no gaps.
func (c *Client) DBAddHeader(ctx context.Context, header string) error {
	const op = "db add header"
	grid, err := c.allValues(ctx, op)
	if err != nil {
		return err
	}
	address := columnLetters(headerSlot(grid)) + "1"
	body := &sheets.ValueRange{Values: [][]interface{}{{header}}}
	_, err = c.api.UpdateValues(ctx, c.spreadsheetID, c.qualified(address), body)
	if err != nil {
		return opError(op, address, err)
	}
	c.logger.Debug().Str("header", header).Str("cell", address).Msg("added header")
	return nil
}

// DBAddHeaders adds each header in order with the DBAddHeader rules, so
// interior gaps in row 1 fill before the row extends.
func (c *Client) DBAddHeaders(ctx context.Context, headers ...string) error {
	for _, header := range headers {
		if err := c.DBAddHeader(ctx, header); err != nil {
			return err
		}
	}
	return nil
}

// DBCreate clears the active worksheet and writes headers as row 1. Called
// with no headers it only clears, leaving an empty sheet.
func (c *Client) DBCreate(ctx context.Context, headers ...string) error {
	const op = "db create"
	_, err := c.api.ClearValues(ctx, c.spreadsheetID, c.qualified(""))
	if err != nil {
		return opError(op, c.sheet.title, err)
	}
	if len(headers) == 0 {
		return nil
	}
	row := make([]interface{}, len(headers))
	for i, header := range headers {
		row[i] = header
	}
	body := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err = c.api.UpdateValues(ctx, c.spreadsheetID, c.qualified("A1"), body)
	if err != nil {
		return opError(op, c.sheet.title, err)
	}
	c.logger.Debug().Str("sheet", c.sheet.title).Int("headers", len(headers)).Msg("created database sheet")
	return nil
}

// DBAddRow writes row at the first index past the used extent, header row
// included, so consecutive calls land on consecutive rows. Row width is not
// validated against the headers.
func (c *Client) DBAddRow(ctx context.Context, row []Value) error {
	const op = "db add row"
	grid, err := c.allValues(ctx, op)
	if err != nil {
		return err
	}
	address := "A" + strconv.Itoa(len(grid)+1)
	body := &sheets.ValueRange{Values: [][]interface{}{rowToAPI(row)}}
	_, err = c.api.UpdateValues(ctx, c.spreadsheetID, c.qualified(address), body)
	if err != nil {
		return opError(op, address, err)
	}
	c.logger.Debug().Str("cell", address).Msg("added database row")
	return nil
}

// DBRows returns the data rows, everything after row 1; empty when only a
// header row (or nothing) is present.
func (c *Client) DBRows(ctx context.Context) ([][]Value, error) {
	grid, err := c.allValues(ctx, "db rows")
	if err != nil {
		return nil, err
	}
	if len(grid) <= 1 {
		return [][]Value{}, nil
	}
	return grid[1:], nil
}

// DBColumn returns one column's data rows selected by header name. A
// missing column yields an empty slice, not an error.
func (c *Client) DBColumn(ctx context.Context, header string) ([]Value, error) {
	grid, err := c.allValues(ctx, "db column")
	if err != nil {
		return nil, err
	}
	index, ok := headerIndex(grid, header)
	if !ok {
		return []Value{}, nil
	}
	column := make([]Value, 0, len(grid)-1)
	for _, row := range grid[1:] {
		column = append(column, row[index])
	}
	return column, nil
}

// DBWhere returns the data rows whose cell under header equals v. Cells
// compare by display string, so Number(30) matches a cell holding 30.
func (c *Client) DBWhere(ctx context.Context, header string, v Value) ([][]Value, error) {
	grid, err := c.allValues(ctx, "db where")
	if err != nil {
		return nil, err
	}
	index, ok := headerIndex(grid, header)
	if !ok {
		return [][]Value{}, nil
	}
	want := v.String()
	matches := [][]Value{}
	for _, row := range grid[1:] {
		if row[index].String() == want {
			matches = append(matches, row)
		}
	}
	return matches, nil
}

// headerSlot is the 1-based column of the first empty cell in row 1.
func headerSlot(grid [][]Value) int {
	if len(grid) == 0 {
		return 1
	}
	for i, v := range grid[0] {
		if v.IsEmpty() {
			return i + 1
		}
	}
	return len(grid[0]) + 1
}

// headerIndex resolves a header name to its 0-based column in row 1.
// Matching folds case and ignores spaces, so "Full Name" finds "fullname".
func headerIndex(grid [][]Value, header string) (int, bool) {
	if len(grid) == 0 {
		return 0, false
	}
	want := normalizeHeader(header)
	for i, v := range grid[0] {
		if normalizeHeader(v.String()) == want {
			return i, true
		}
	}
	return 0, false
}

func normalizeHeader(header string) string {
	return cases.Fold().String(strings.ReplaceAll(header, " ", ""))
}
