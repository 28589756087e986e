package kmlconv

import (
	"github.com/xuri/excelize/v2"

	"github.com/geoforma/xlsx2kml/pkg/kmlconv/models"
	"github.com/geoforma/xlsx2kml/pkg/kmlconv/output"
	"github.com/geoforma/xlsx2kml/pkg/kmlconv/parser"
)

// Result holds the serialized document and conversion statistics.
type Result struct {
	// KML is the complete serialized document.
	KML []byte
	// TotalRows is the number of data rows read, including skipped ones.
	TotalRows int
	// Points is the number of placemarks written. Rows skipped for
	// unparsable coordinates equal TotalRows - Points.
	Points int
	// FolderNames lists the folders produced, in first-seen order.
	FolderNames []string
}

// Convert reads a workbook from path and converts one sheet to KML.
func Convert(path string, opts Options) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, ErrNoSheets
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, NewConversionError(sheet, "read", err)
	}

	return FromRows(rows, opts)
}

// FromRows converts an already-read table to KML. The header row, when
// configured, counts toward the table width but not toward the data rows.
// Processing is strictly sequential: folder creation order and within-folder
// record order follow input row order.
func FromRows(rows [][]string, opts Options) (*Result, error) {
	if tableWidth(rows) < models.MinColumns {
		return nil, ErrInsufficientColumns
	}

	data := rows
	if opts.ShouldSkipHeader() && len(data) > 0 {
		data = data[1:]
	}

	builder := output.NewBuilder()
	for i, row := range data {
		if p, ok := parser.ExtractPoint(row, i+1, opts.FolderDefault()); ok {
			builder.Add(p)
		}
		if opts.Progress != nil {
			opts.Progress(i+1, len(data))
		}
	}

	kml, err := builder.Marshal()
	if err != nil {
		return nil, NewConversionError(opts.Sheet, "serialize", err)
	}

	return &Result{
		KML:         kml,
		TotalRows:   len(data),
		Points:      builder.Count(),
		FolderNames: builder.FolderNames(),
	}, nil
}

// tableWidth returns the widest row of the table. Trailing empty cells are
// absent from rows as read, so the width is the maximum across all rows.
func tableWidth(rows [][]string) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}
