package gsheetdb

import (
	"google.golang.org/api/sheets/v4"
)

// Worksheet is an opaque reference to one tab of the spreadsheet. It is a
// snapshot of the tab's properties from the call that resolved it; the
// remote tab can move or grow afterwards without the handle noticing.
type Worksheet struct {
	title string
	id    int64
	index int64
	rows  int64
	cols  int64
}

func newWorksheet(properties *sheets.SheetProperties) *Worksheet {
	w := &Worksheet{
		title: properties.Title,
		id:    properties.SheetId,
		index: properties.Index,
	}
	if properties.GridProperties != nil {
		w.rows = properties.GridProperties.RowCount
		w.cols = properties.GridProperties.ColumnCount
	}
	return w
}

// Title returns the worksheet's tab name.
func (w *Worksheet) Title() string { return w.title }

// ID returns the worksheet's immutable sheet ID.
func (w *Worksheet) ID() int64 { return w.id }

// Index returns the worksheet's zero-based tab position.
func (w *Worksheet) Index() int64 { return w.index }

// Rows returns the grid's row count at resolution time.
func (w *Worksheet) Rows() int64 { return w.rows }

// Cols returns the grid's column count at resolution time.
func (w *Worksheet) Cols() int64 { return w.cols }
