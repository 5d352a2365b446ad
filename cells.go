package gsheetdb

import (
	"context"

	"google.golang.org/api/sheets/v4"
)

// GetCell returns the scalar at address in the active worksheet. A blank
// cell reads back as the empty Value.
func (c *Client) GetCell(ctx context.Context, address string) (Value, error) {
	const op = "get cell"
	if !validCell(address) {
		return Value{}, invalidAddress(op, address)
	}
	values, err := c.api.GetValues(ctx, c.spreadsheetID, c.qualified(address))
	if err != nil {
		return Value{}, opError(op, address, err)
	}
	if len(values.Values) == 0 || len(values.Values[0]) == 0 {
		return Value{}, nil
	}
	return valueOf(values.Values[0][0]), nil
}

// UpdateCell writes v at address, overwriting unconditionally.
func (c *Client) UpdateCell(ctx context.Context, address string, v Value) error {
	const op = "update cell"
	if !validCell(address) {
		return invalidAddress(op, address)
	}
	body := &sheets.ValueRange{Values: [][]interface{}{{v.api()}}}
	_, err := c.api.UpdateValues(ctx, c.spreadsheetID, c.qualified(address), body)
	if err != nil {
		return opError(op, address, err)
	}
	c.logger.Debug().Str("cell", address).Msg("updated cell")
	return nil
}

// DeleteCell clears the content at address.
func (c *Client) DeleteCell(ctx context.Context, address string) error {
	const op = "delete cell"
	if !validCell(address) {
		return invalidAddress(op, address)
	}
	_, err := c.api.ClearValues(ctx, c.spreadsheetID, c.qualified(address))
	if err != nil {
		return opError(op, address, err)
	}
	c.logger.Debug().Str("cell", address).Msg("cleared cell")
	return nil
}
