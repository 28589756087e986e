// Package models defines data structures for the spreadsheet-to-KML conversion.
package models

// Positional column indices (0-based) in the source spreadsheet.
const (
	// ColName is the point name column (column B).
	ColName = 1
	// ColLatitude is the latitude column (column C).
	ColLatitude = 2
	// ColLongitude is the longitude column (column D).
	ColLongitude = 3
	// ColFolder is the folder name column (column F).
	ColFolder = 5
	// ColDescription is the description column (column I).
	ColDescription = 8
)

// MinColumns is the minimum table width required for conversion.
const MinColumns = 9

// DefaultFolder is the folder name used when the folder column is empty.
const DefaultFolder = "General"

// Point represents a validated geographic point extracted from one row.
type Point struct {
	// Name is the placemark label, never empty.
	Name string
	// Latitude in decimal degrees.
	Latitude float64
	// Longitude in decimal degrees.
	Longitude float64
	// Folder is the grouping folder name, never empty.
	Folder string
	// Description is free text for the placemark (optional).
	Description string
}
