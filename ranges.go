package gsheetdb

import (
	"context"

	"google.golang.org/api/sheets/v4"
)

// GetRange returns the grid for rangeSpec. Cells the remote trimmed from row
// tails come back as empty values: bounded ranges are padded to their full
// rectangle, row-open ranges and column spans to their column width.
func (c *Client) GetRange(ctx context.Context, rangeSpec string) ([][]Value, error) {
	const op = "get range"
	dims, ok := parseRange(rangeSpec)
	if !ok {
		return nil, invalidAddress(op, rangeSpec)
	}
	values, err := c.api.GetValues(ctx, c.spreadsheetID, c.qualified(rangeSpec))
	if err != nil {
		return nil, opError(op, rangeSpec, err)
	}
	return padGrid(gridFromAPI(values.Values), dims.rows, dims.cols), nil
}

// UpdateRange writes grid anchored at the top-left of rangeSpec. A grid
// smaller than the range touches only the cells it covers; a larger one is
// rejected by the remote service.
func (c *Client) UpdateRange(ctx context.Context, rangeSpec string, grid [][]Value) error {
	const op = "update range"
	if _, ok := parseRange(rangeSpec); !ok {
		return invalidAddress(op, rangeSpec)
	}
	body := &sheets.ValueRange{Values: gridToAPI(grid)}
	_, err := c.api.UpdateValues(ctx, c.spreadsheetID, c.qualified(rangeSpec), body)
	if err != nil {
		return opError(op, rangeSpec, err)
	}
	c.logger.Debug().Str("range", rangeSpec).Int("rows", len(grid)).Msg("updated range")
	return nil
}

// DeleteRange clears every cell in rangeSpec.
func (c *Client) DeleteRange(ctx context.Context, rangeSpec string) error {
	const op = "delete range"
	if _, ok := parseRange(rangeSpec); !ok {
		return invalidAddress(op, rangeSpec)
	}
	_, err := c.api.ClearValues(ctx, c.spreadsheetID, c.qualified(rangeSpec))
	if err != nil {
		return opError(op, rangeSpec, err)
	}
	c.logger.Debug().Str("range", rangeSpec).Msg("cleared range")
	return nil
}

// allValues reads the used extent of the active worksheet padded to a
// rectangle, attributing any failure to op.
func (c *Client) allValues(ctx context.Context, op string) ([][]Value, error) {
	values, err := c.api.GetValues(ctx, c.spreadsheetID, c.qualified(""))
	if err != nil {
		return nil, opError(op, c.sheet.title, err)
	}
	grid := gridFromAPI(values.Values)
	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}
	return padGrid(grid, 0, width), nil
}

// GetAllValues returns the used extent of the active worksheet, padded to a
// rectangle. An untouched worksheet yields an empty grid.
func (c *Client) GetAllValues(ctx context.Context) ([][]Value, error) {
	return c.allValues(ctx, "get all values")
}

// Clear clears every cell in the active worksheet. Irreversible.
func (c *Client) Clear(ctx context.Context) error {
	const op = "clear"
	_, err := c.api.ClearValues(ctx, c.spreadsheetID, c.qualified(""))
	if err != nil {
		return opError(op, c.sheet.title, err)
	}
	c.logger.Debug().Str("sheet", c.sheet.title).Msg("cleared worksheet")
	return nil
}

// AppendRow appends row after the last row of the worksheet's data using the
// remote append semantics: rows are inserted, never overwritten.
func (c *Client) AppendRow(ctx context.Context, row []Value) error {
	const op = "append row"
	body := &sheets.ValueRange{Values: [][]interface{}{rowToAPI(row)}}
	_, err := c.api.AppendValues(ctx, c.spreadsheetID, c.qualified(""), body)
	if err != nil {
		return opError(op, c.sheet.title, err)
	}
	c.logger.Debug().Str("sheet", c.sheet.title).Msg("appended row")
	return nil
}
