package google

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/api/sheets/v4"
)

// Render and input options are fixed across the service: unformatted reads
// and raw writes, so values round-trip by type instead of by the sheet's
// locale formatting.
const (
	valueRenderOption = "UNFORMATTED_VALUE"
	valueInputOption  = "RAW"
	insertDataOption  = "INSERT_ROWS"
)

type SheetsService struct {
	service *sheets.Service
	serviceBase
}

func (ds *SheetsService) GetSpreadsheet(ctx context.Context, spreadsheetID string) (*sheets.Spreadsheet, error) {
	err := ds.checkRateLimits(ctx)
	if err != nil {
		return nil, err
	}

	spreadsheet, err := ds.service.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		ds.logGoogleErrors(err)
		return nil, err
	}
	return spreadsheet, nil
}

func (ds *SheetsService) GetValues(ctx context.Context, spreadsheetID string, valueRange string) (*sheets.ValueRange, error) {
	err := ds.checkRateLimits(ctx)
	if err != nil {
		return nil, err
	}

	values, err := ds.service.Spreadsheets.Values.Get(spreadsheetID, valueRange).
		ValueRenderOption(valueRenderOption).
		Context(ctx).
		Do()
	if err != nil {
		ds.logGoogleErrors(err)
		return nil, err
	}
	return values, nil
}

func (ds *SheetsService) UpdateValues(ctx context.Context, spreadsheetID string, valueRange string, values *sheets.ValueRange) (*sheets.UpdateValuesResponse, error) {
	err := ds.checkRateLimits(ctx)
	if err != nil {
		return nil, err
	}

	response, err := ds.service.Spreadsheets.Values.Update(spreadsheetID, valueRange, values).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		ds.logGoogleErrors(err)
		return nil, err
	}
	return response, nil
}

func (ds *SheetsService) ClearValues(ctx context.Context, spreadsheetID string, valueRange string) (*sheets.ClearValuesResponse, error) {
	err := ds.checkRateLimits(ctx)
	if err != nil {
		return nil, err
	}

	response, err := ds.service.Spreadsheets.Values.Clear(spreadsheetID, valueRange, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		ds.logGoogleErrors(err)
		return nil, err
	}
	return response, nil
}

func (ds *SheetsService) AppendValues(ctx context.Context, spreadsheetID string, valueRange string, values *sheets.ValueRange) (*sheets.AppendValuesResponse, error) {
	err := ds.checkRateLimits(ctx)
	if err != nil {
		return nil, err
	}

	response, err := ds.service.Spreadsheets.Values.Append(spreadsheetID, valueRange, values).
		ValueInputOption(valueInputOption).
		InsertDataOption(insertDataOption).
		Context(ctx).
		Do()
	if err != nil {
		ds.logGoogleErrors(err)
		return nil, err
	}
	return response, nil
}

func (ds *SheetsService) AddSheet(ctx context.Context, spreadsheetID string, title string, rows int64, cols int64) (*sheets.SheetProperties, error) {
	err := ds.checkRateLimits(ctx)
	if err != nil {
		return nil, err
	}

	request := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{
						Title: title,
						GridProperties: &sheets.GridProperties{
							RowCount:    rows,
							ColumnCount: cols,
						},
					},
				},
			},
		},
	}
	response, err := ds.service.Spreadsheets.BatchUpdate(spreadsheetID, request).Context(ctx).Do()
	if err != nil {
		ds.logGoogleErrors(err)
		return nil, err
	}
	if len(response.Replies) == 0 || response.Replies[0].AddSheet == nil || response.Replies[0].AddSheet.Properties == nil {
		return nil, errors.New("add sheet response missing the new sheet")
	}
	return response.Replies[0].AddSheet.Properties, nil
}

func (ds *SheetsService) DeleteSheet(ctx context.Context, spreadsheetID string, sheetID int64) error {
	err := ds.checkRateLimits(ctx)
	if err != nil {
		return err
	}

	request := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				DeleteSheet: &sheets.DeleteSheetRequest{SheetId: sheetID},
			},
		},
	}
	_, err = ds.service.Spreadsheets.BatchUpdate(spreadsheetID, request).Context(ctx).Do()
	if err != nil {
		ds.logGoogleErrors(err)
		return err
	}
	return nil
}
