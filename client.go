// Package gsheetdb is a convenience client for Google Sheets. A Client holds
// one authenticated spreadsheet and one active worksheet, and exposes cell,
// range, and header-row database operations that each map onto a single
// remote call. Nothing is cached locally; every read and write round-trips
// to the spreadsheet.
package gsheetdb

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"google.golang.org/api/sheets/v4"

	"github.com/gsheetdb/gsheetdb/google"
)

// Grid size for worksheets made by CreateSheet.
const (
	defaultSheetRows = 100
	defaultSheetCols = 20
)

// Config carries the construction inputs for a Client. Credential sources
// are consulted in order: API, TokenSource, CredentialsJSON, CredentialsFile.
type Config struct {
	// CredentialsFile is the path of a service account key JSON file.
	CredentialsFile string
	// CredentialsJSON is service account key JSON supplied directly.
	CredentialsJSON []byte
	// TokenSource replaces the service account flow with a caller-built
	// token source.
	TokenSource oauth2.TokenSource
	// API replaces the remote layer entirely. Tests inject mocks and fakes
	// here.
	API google.SheetsInterface

	// SpreadsheetID names the spreadsheet. Immutable after construction.
	SpreadsheetID string
	// Worksheet is the initial active worksheet title. Empty selects the
	// spreadsheet's first sheet.
	Worksheet string

	// QueriesPerMinute and BurstSize tune the client's rate limiter.
	QueriesPerMinute int
	BurstSize        int

	// Logger receives the client's structured logs; nil disables logging.
	Logger *zerolog.Logger
}

// SetDefaults fills the rate limiter tuning when unset.
func (c *Config) SetDefaults() {
	if c.QueriesPerMinute == 0 {
		c.QueriesPerMinute = 60
	}
	if c.BurstSize == 0 {
		c.BurstSize = 10
	}
}

// IsValid checks if all needed fields are set.
func (c *Config) IsValid() error {
	if c.SpreadsheetID == "" {
		return errors.New("must have a spreadsheet id")
	}
	if c.API == nil && c.TokenSource == nil && len(c.CredentialsJSON) == 0 && c.CredentialsFile == "" {
		return errors.New("must have service account credentials or a token source")
	}
	if c.QueriesPerMinute <= 0 {
		return errors.New("queries per minute must be greater than 0")
	}
	if c.BurstSize <= 0 {
		return errors.New("burst size must be greater than 0")
	}

	return nil
}

// Clone shallow copies the configuration.
func (c *Config) Clone() *Config {
	var clone = *c
	return &clone
}

// Client is the spreadsheet façade. The active worksheet is mutable state,
// so a Client is not safe for concurrent use; callers sharing one add their
// own locking. Multiple independent Clients, each with its own credentials
// and spreadsheet, coexist freely.
type Client struct {
	api           google.SheetsInterface
	spreadsheetID string
	sheet         *Worksheet
	logger        zerolog.Logger
}

// New authenticates, opens the spreadsheet, and resolves the initial active
// worksheet: config.Worksheet by exact title when set, the first sheet
// otherwise. Credential and spreadsheet problems surface here, not on the
// first operation.
func New(ctx context.Context, config Config) (*Client, error) {
	config.SetDefaults()
	if err := config.IsValid(); err != nil {
		return nil, err
	}

	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = *config.Logger
	}
	logger = logger.With().
		Str("client_id", uuid.NewString()).
		Str("spreadsheet_id", config.SpreadsheetID).
		Logger()

	api := config.API
	if api == nil {
		tokenSource, err := resolveTokenSource(ctx, &config)
		if err != nil {
			return nil, &OpError{Op: "authorize", Kind: ErrAuthentication, Err: err}
		}
		api, err = google.NewClient(tokenSource, config.QueriesPerMinute, config.BurstSize, logger).NewSheetsService(ctx)
		if err != nil {
			return nil, opError("authorize", "", err)
		}
	}

	c := &Client{
		api:           api,
		spreadsheetID: config.SpreadsheetID,
		logger:        logger,
	}

	spreadsheet, err := c.api.GetSpreadsheet(ctx, c.spreadsheetID)
	if err != nil {
		return nil, opError("open spreadsheet", config.SpreadsheetID, err)
	}
	if config.Worksheet == "" {
		sheet, ok := firstSheet(spreadsheet)
		if !ok {
			return nil, notFound("open spreadsheet", config.SpreadsheetID)
		}
		c.sheet = sheet
	} else {
		sheet, ok := findSheet(spreadsheet, config.Worksheet)
		if !ok {
			return nil, notFound("open spreadsheet", config.Worksheet)
		}
		c.sheet = sheet
	}

	c.logger.Debug().
		Str("sheet", c.sheet.title).
		Int("sheets", len(spreadsheet.Sheets)).
		Msg("sheets client ready")
	return c, nil
}

func resolveTokenSource(ctx context.Context, config *Config) (oauth2.TokenSource, error) {
	if config.TokenSource != nil {
		return config.TokenSource, nil
	}
	credentialsJSON := config.CredentialsJSON
	if len(credentialsJSON) == 0 {
		b, err := os.ReadFile(config.CredentialsFile)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read credentials file")
		}
		credentialsJSON = b
	}
	return google.ServiceAccountTokenSource(ctx, credentialsJSON)
}

// findSheet resolves a worksheet by exact title.
func findSheet(spreadsheet *sheets.Spreadsheet, title string) (*Worksheet, bool) {
	for _, sh := range spreadsheet.Sheets {
		if sh.Properties != nil && sh.Properties.Title == title {
			return newWorksheet(sh.Properties), true
		}
	}
	return nil, false
}

// firstSheet resolves the spreadsheet's first worksheet.
func firstSheet(spreadsheet *sheets.Spreadsheet) (*Worksheet, bool) {
	for _, sh := range spreadsheet.Sheets {
		if sh.Properties != nil {
			return newWorksheet(sh.Properties), true
		}
	}
	return nil, false
}

// qualified prefixes spec with the active worksheet title; an empty spec
// addresses the whole sheet.
func (c *Client) qualified(spec string) string {
	return qualifyRange(c.sheet.title, spec)
}

// SetSheet switches the active worksheet to the one titled title, matched
// exactly. On ErrNotFound the previously active worksheet stays active.
func (c *Client) SetSheet(ctx context.Context, title string) error {
	const op = "set sheet"
	spreadsheet, err := c.api.GetSpreadsheet(ctx, c.spreadsheetID)
	if err != nil {
		return opError(op, title, err)
	}
	sheet, ok := findSheet(spreadsheet, title)
	if !ok {
		return notFound(op, title)
	}
	c.sheet = sheet
	c.logger.Debug().Str("sheet", title).Msg("switched active worksheet")
	return nil
}

// Sheet returns the active worksheet handle.
func (c *Client) Sheet() *Worksheet {
	return c.sheet
}

// SheetName returns the active worksheet's title.
func (c *Client) SheetName() string {
	return c.sheet.title
}

// ListSheets returns the spreadsheet's worksheet titles in tab order.
func (c *Client) ListSheets(ctx context.Context) ([]string, error) {
	const op = "list sheets"
	spreadsheet, err := c.api.GetSpreadsheet(ctx, c.spreadsheetID)
	if err != nil {
		return nil, opError(op, "", err)
	}
	titles := make([]string, 0, len(spreadsheet.Sheets))
	for _, sh := range spreadsheet.Sheets {
		if sh.Properties != nil {
			titles = append(titles, sh.Properties.Title)
		}
	}
	return titles, nil
}

// SheetExists reports whether a worksheet titled title exists.
func (c *Client) SheetExists(ctx context.Context, title string) (bool, error) {
	const op = "sheet exists"
	spreadsheet, err := c.api.GetSpreadsheet(ctx, c.spreadsheetID)
	if err != nil {
		return false, opError(op, title, err)
	}
	_, ok := findSheet(spreadsheet, title)
	return ok, nil
}

// CreateSheet adds a worksheet titled title with a 100x20 grid and returns
// its handle. The active worksheet does not change. ErrSheetExists when the
// title is already taken.
func (c *Client) CreateSheet(ctx context.Context, title string) (*Worksheet, error) {
	const op = "create sheet"
	spreadsheet, err := c.api.GetSpreadsheet(ctx, c.spreadsheetID)
	if err != nil {
		return nil, opError(op, title, err)
	}
	if _, ok := findSheet(spreadsheet, title); ok {
		return nil, &OpError{Op: op, Target: title, Kind: ErrSheetExists}
	}
	properties, err := c.api.AddSheet(ctx, c.spreadsheetID, title, defaultSheetRows, defaultSheetCols)
	if err != nil {
		return nil, opError(op, title, err)
	}
	c.logger.Info().Str("sheet", title).Msg("created worksheet")
	return newWorksheet(properties), nil
}

// DeleteSheet removes the worksheet titled title. ErrNotFound when no such
// worksheet exists. Deleting the active worksheet leaves the client holding
// a dead handle; SetSheet to a live one before further operations.
func (c *Client) DeleteSheet(ctx context.Context, title string) error {
	const op = "delete sheet"
	spreadsheet, err := c.api.GetSpreadsheet(ctx, c.spreadsheetID)
	if err != nil {
		return opError(op, title, err)
	}
	sheet, ok := findSheet(spreadsheet, title)
	if !ok {
		return notFound(op, title)
	}
	err = c.api.DeleteSheet(ctx, c.spreadsheetID, sheet.id)
	if err != nil {
		return opError(op, title, err)
	}
	c.logger.Info().Str("sheet", title).Msg("deleted worksheet")
	return nil
}
