package gsheetdb

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/sheets/v4"

	mock_google "github.com/gsheetdb/gsheetdb/google/mocks"
)

const testSpreadsheetID = "spreadsheetId1"

// GetSampleSpreadsheet has two worksheets: "Sheet1" (id 0, 100x20) and
// "Expenses 2024" (id 812, 200x26).
func GetSampleSpreadsheet() *sheets.Spreadsheet {
	return &sheets.Spreadsheet{
		SpreadsheetId: testSpreadsheetID,
		Properties: &sheets.SpreadsheetProperties{
			Title: "spreadsheet1",
		},
		Sheets: []*sheets.Sheet{
			{
				Properties: &sheets.SheetProperties{
					SheetId: 0,
					Title:   "Sheet1",
					Index:   0,
					GridProperties: &sheets.GridProperties{
						RowCount:    100,
						ColumnCount: 20,
					},
				},
			},
			{
				Properties: &sheets.SheetProperties{
					SheetId: 812,
					Title:   "Expenses 2024",
					Index:   1,
					GridProperties: &sheets.GridProperties{
						RowCount:    200,
						ColumnCount: 26,
					},
				},
			},
		},
	}
}

func GetSampleValueRange(values [][]interface{}) *sheets.ValueRange {
	return &sheets.ValueRange{
		MajorDimension: "ROWS",
		Values:         values,
	}
}

// newMockAPI returns a SheetsInterface mock wired to a fresh controller.
func newMockAPI(t *testing.T) *mock_google.MockSheetsInterface {
	t.Helper()
	ctrl := gomock.NewController(t)
	return mock_google.NewMockSheetsInterface(ctrl)
}

// newTestClient builds a Client over api with "Sheet1" active, expecting the
// construction-time spreadsheet fetch.
func newTestClient(t *testing.T, api *mock_google.MockSheetsInterface) *Client {
	t.Helper()
	api.EXPECT().GetSpreadsheet(gomock.Any(), testSpreadsheetID).Return(GetSampleSpreadsheet(), nil)
	c, err := New(context.Background(), Config{
		SpreadsheetID: testSpreadsheetID,
		API:           api,
	})
	require.NoError(t, err)
	return c
}
