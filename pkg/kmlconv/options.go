// Package kmlconv converts spreadsheets of geographic points into KML documents.
package kmlconv

import "github.com/geoforma/xlsx2kml/pkg/kmlconv/models"

// ProgressFunc reports fold progress after each data row: done rows
// processed out of total. It is called for skipped rows too.
type ProgressFunc func(done, total int)

// Options configures a conversion.
type Options struct {
	// Sheet is the worksheet to convert. Empty means the first sheet.
	Sheet string
	// SkipHeader specifies whether the first sheet row is a header row
	// and excluded from the data. If nil, defaults to true.
	SkipHeader *bool
	// DefaultFolder is the folder name used for rows with an empty folder
	// cell. Empty means models.DefaultFolder.
	DefaultFolder string
	// Progress, if non-nil, is invoked after each data row.
	Progress ProgressFunc
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldSkipHeader returns whether the first sheet row is treated as a header.
func (o Options) ShouldSkipHeader() bool {
	if o.SkipHeader != nil {
		return *o.SkipHeader
	}
	return true
}

// FolderDefault returns the folder name substituted for empty folder cells.
func (o Options) FolderDefault() string {
	if o.DefaultFolder != "" {
		return o.DefaultFolder
	}
	return models.DefaultFolder
}
