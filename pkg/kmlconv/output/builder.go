// Package output assembles point records into a KML document tree and
// serializes it.
package output

import (
	"encoding/xml"

	"github.com/geoforma/xlsx2kml/pkg/kmlconv/models"
)

// Builder accumulates point records into a folder-grouped document.
// Folder lookup is by exact string match, case-sensitive and untrimmed;
// the first record with a given folder name creates the folder, later
// records append to it. Not safe for concurrent use.
type Builder struct {
	kml     *models.KML
	folders map[string]*models.Folder
	count   int
}

// NewBuilder returns a Builder holding an empty document.
func NewBuilder() *Builder {
	return &Builder{
		kml:     models.NewKML(),
		folders: make(map[string]*models.Folder),
	}
}

// Add places a point record into its folder, creating the folder at the
// position of first occurrence.
func (b *Builder) Add(p models.Point) {
	folder, ok := b.folders[p.Folder]
	if !ok {
		folder = &models.Folder{Name: p.Folder}
		b.folders[p.Folder] = folder
		b.kml.Document.Folders = append(b.kml.Document.Folders, folder)
	}

	folder.Placemarks = append(folder.Placemarks, models.Placemark{
		Name:        p.Name,
		Description: p.Description,
		Point: models.KMLPoint{
			Coordinates: models.FormatCoordinates(p.Latitude, p.Longitude),
		},
	})
	b.count++
}

// Count returns the number of records added so far.
func (b *Builder) Count() int {
	return b.count
}

// FolderNames returns the folder names in first-seen order.
func (b *Builder) FolderNames() []string {
	names := make([]string, 0, len(b.kml.Document.Folders))
	for _, folder := range b.kml.Document.Folders {
		names = append(names, folder.Name)
	}
	return names
}

// Marshal serializes the accumulated document to indented UTF-8 XML.
// Output is deterministic for a given builder state. An empty builder
// yields a valid document with no Folder elements.
func (b *Builder) Marshal() ([]byte, error) {
	body, err := xml.MarshalIndent(b.kml, "", "  ")
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}
