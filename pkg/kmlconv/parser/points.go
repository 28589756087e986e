// Package parser turns raw spreadsheet rows into validated point records.
package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/geoforma/xlsx2kml/pkg/kmlconv/models"
)

// ExtractPoint maps one row to a Point. rowNum is the 1-based data row
// number, used for the generated name placeholder. The second return value
// is false when the row has no parsable coordinates; such rows are skipped
// without error.
//
// Columns are addressed by fixed position, not header name. Rows shorter
// than the full column count are tolerated: missing trailing cells read as
// empty.
func ExtractPoint(row []string, rowNum int, defaultFolder string) (models.Point, bool) {
	lat, ok := parseCoordinate(cell(row, models.ColLatitude))
	if !ok {
		return models.Point{}, false
	}
	lon, ok := parseCoordinate(cell(row, models.ColLongitude))
	if !ok {
		return models.Point{}, false
	}

	name := cell(row, models.ColName)
	if name == "" {
		name = fmt.Sprintf("Point_%d", rowNum)
	}

	folder := cell(row, models.ColFolder)
	if folder == "" {
		folder = defaultFolder
	}

	return models.Point{
		Name:        name,
		Latitude:    lat,
		Longitude:   lon,
		Folder:      folder,
		Description: cell(row, models.ColDescription),
	}, true
}

// cell returns the value at idx, or "" when the row is too short.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseCoordinate parses a cell as a finite decimal number.
// Surrounding whitespace is tolerated; NaN and infinities are rejected.
func parseCoordinate(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
