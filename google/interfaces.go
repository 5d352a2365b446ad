package google

import (
	"context"

	"google.golang.org/api/sheets/v4"
)

type ClientInterface interface {
	NewSheetsService(ctx context.Context) (SheetsInterface, error)
	ReloadRateLimits(newQueriesPerMinute int, newBurstSize int)
}

// SheetsInterface is the remote surface consumed by the façade. Every method
// issues exactly one Sheets API call. Generated sheets/v4 types cross this
// boundary and no other.
type SheetsInterface interface {
	GetSpreadsheet(ctx context.Context, spreadsheetID string) (*sheets.Spreadsheet, error)
	GetValues(ctx context.Context, spreadsheetID string, valueRange string) (*sheets.ValueRange, error)
	UpdateValues(ctx context.Context, spreadsheetID string, valueRange string, values *sheets.ValueRange) (*sheets.UpdateValuesResponse, error)
	ClearValues(ctx context.Context, spreadsheetID string, valueRange string) (*sheets.ClearValuesResponse, error)
	AppendValues(ctx context.Context, spreadsheetID string, valueRange string, values *sheets.ValueRange) (*sheets.AppendValuesResponse, error)
	AddSheet(ctx context.Context, spreadsheetID string, title string, rows int64, cols int64) (*sheets.SheetProperties, error)
	DeleteSheet(ctx context.Context, spreadsheetID string, sheetID int64) error
}
