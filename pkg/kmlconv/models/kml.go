package models

import (
	"encoding/xml"
	"strconv"
)

// Namespace is the KML 2.2 XML namespace declared on the root element.
const Namespace = "http://www.opengis.net/kml/2.2"

// KML is the root element of the output document.
type KML struct {
	XMLName  xml.Name `xml:"kml"`
	Xmlns    string   `xml:"xmlns,attr"`
	Document Document `xml:"Document"`
}

// Document holds the folders of the output, in first-seen order.
type Document struct {
	Folders []*Folder `xml:"Folder"`
}

// Folder groups placemarks under a name. Grouping is organizational only,
// not geographic containment.
type Folder struct {
	Name       string      `xml:"name"`
	Placemarks []Placemark `xml:"Placemark"`
}

// Placemark is a single named geographic point. The description element is
// omitted entirely when empty.
type Placemark struct {
	Name        string   `xml:"name"`
	Description string   `xml:"description,omitempty"`
	Point       KMLPoint `xml:"Point"`
}

// KMLPoint wraps the coordinates element of a placemark.
type KMLPoint struct {
	Coordinates string `xml:"coordinates"`
}

// NewKML returns an empty document with the KML 2.2 namespace set.
func NewKML() *KML {
	return &KML{Xmlns: Namespace}
}

// FormatCoordinates renders a coordinates triple as "lon,lat,0".
// Longitude comes first per the KML convention; elevation is fixed at 0.
// Floats use the shortest decimal form that reparses to the same value.
func FormatCoordinates(lat, lon float64) string {
	return strconv.FormatFloat(lon, 'f', -1, 64) + "," +
		strconv.FormatFloat(lat, 'f', -1, 64) + ",0"
}
