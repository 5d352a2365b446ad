package gsheetdb

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
)

// Error kinds, one per failure class the client distinguishes. Operations
// wrap these in *OpError; match them with errors.Is.
var (
	// ErrAuthentication covers credentials rejected at construction or first
	// use, and permission failures on the spreadsheet.
	ErrAuthentication = errors.New("authentication failed")
	// ErrNotFound covers worksheet titles and spreadsheet IDs that do not
	// exist.
	ErrNotFound = errors.New("sheet not found")
	// ErrSheetExists is returned by CreateSheet when the title is taken.
	ErrSheetExists = errors.New("sheet already exists")
	// ErrInvalidAddress covers malformed A1 cell or range notation, rejected
	// before any remote call.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrRemote covers every other remote failure: network, quota, server
	// error.
	ErrRemote = errors.New("remote call failed")
)

// OpError is the failure of one client operation, attributed to the
// operation and the sheet, cell, or range it was addressing.
type OpError struct {
	Op     string // operation name, e.g. "update cell"
	Target string // sheet title, cell address, or range; may be empty
	Kind   error  // one of the package's error kinds
	Err    error  // underlying cause; nil for local validation failures
}

func (e *OpError) Error() string {
	msg := e.Op
	if e.Target != "" {
		msg += " " + strconv.Quote(e.Target)
	}
	msg += ": " + e.Kind.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *OpError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// opError attributes a remote failure to op and target.
func opError(op, target string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Target: target, Kind: classify(err), Err: err}
}

// invalidAddress is the local rejection of a malformed cell or range.
func invalidAddress(op, address string) error {
	return &OpError{Op: op, Target: address, Kind: ErrInvalidAddress}
}

func notFound(op, title string) error {
	return &OpError{Op: op, Target: title, Kind: ErrNotFound}
}

// classify maps a failure from the remote layer onto the package's error
// kinds. A 403 is an authorization problem unless Google reports it as quota
// exhaustion, which is operational.
func classify(err error) error {
	var googleErr *googleapi.Error
	if errors.As(err, &googleErr) {
		switch googleErr.Code {
		case http.StatusUnauthorized:
			return ErrAuthentication
		case http.StatusForbidden:
			if quotaExhausted(googleErr) {
				return ErrRemote
			}
			return ErrAuthentication
		case http.StatusNotFound:
			return ErrNotFound
		}
		return ErrRemote
	}
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return ErrAuthentication
	}
	return ErrRemote
}

func quotaExhausted(googleErr *googleapi.Error) bool {
	for _, item := range googleErr.Errors {
		switch item.Reason {
		case "rateLimitExceeded", "userRateLimitExceeded", "quotaExceeded", "dailyLimitExceeded":
			return true
		}
	}
	return false
}
