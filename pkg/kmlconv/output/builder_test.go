package output

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"
	"testing"

	"github.com/geoforma/xlsx2kml/pkg/kmlconv/models"
)

func TestBuilderGrouping(t *testing.T) {
	b := NewBuilder()
	b.Add(models.Point{Name: "A1", Folder: "SP"})
	b.Add(models.Point{Name: "B1", Folder: "RJ"})
	b.Add(models.Point{Name: "A2", Folder: "SP"})
	b.Add(models.Point{Name: "C1", Folder: "sp"}) // case-sensitive, distinct folder

	if b.Count() != 4 {
		t.Errorf("Count = %d, expected 4", b.Count())
	}

	names := b.FolderNames()
	expected := []string{"SP", "RJ", "sp"}
	if len(names) != len(expected) {
		t.Fatalf("FolderNames = %v, expected %v", names, expected)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("FolderNames[%d] = %q, expected %q", i, names[i], name)
		}
	}

	// Within-folder order follows insertion order
	data, err := b.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var doc models.KML
	if err := xml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not well-formed XML: %v", err)
	}
	sp := doc.Document.Folders[0]
	if sp.Name != "SP" || len(sp.Placemarks) != 2 {
		t.Fatalf("folder SP = %+v, expected 2 placemarks", sp)
	}
	if sp.Placemarks[0].Name != "A1" || sp.Placemarks[1].Name != "A2" {
		t.Errorf("SP placemark order = %q, %q, expected A1, A2",
			sp.Placemarks[0].Name, sp.Placemarks[1].Name)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	b := NewBuilder()
	b.Add(models.Point{Name: "Pt A", Latitude: -23.5505, Longitude: -46.6333, Folder: "SP", Description: "desc1"})
	b.Add(models.Point{Name: "Pt B", Latitude: -22.9068, Longitude: -43.1729, Folder: "RJ"})

	first, err := b.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	second, err := b.Marshal()
	if err != nil {
		t.Fatalf("second Marshal failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("repeated Marshal produced different bytes")
	}
}

func TestMarshalDocument(t *testing.T) {
	b := NewBuilder()
	b.Add(models.Point{Name: "Pt A", Latitude: -23.5505, Longitude: -46.6333, Folder: "SP", Description: "desc1"})
	b.Add(models.Point{Name: "Pt B", Latitude: -22.9068, Longitude: -43.1729, Folder: "RJ"})

	data, err := b.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	out := string(data)

	if !strings.HasPrefix(out, xml.Header) {
		t.Error("output does not start with the XML declaration")
	}
	if !strings.Contains(out, `<kml xmlns="http://www.opengis.net/kml/2.2">`) {
		t.Error("output does not declare the KML 2.2 namespace")
	}
	if !strings.Contains(out, "<coordinates>-46.6333,-23.5505,0</coordinates>") {
		t.Error("Pt A coordinates not emitted as lon,lat,0")
	}
	if !strings.Contains(out, "<description>desc1</description>") {
		t.Error("Pt A description missing")
	}
	// Pt B has no description, so exactly one description element overall
	if strings.Count(out, "<description>") != 1 {
		t.Errorf("expected exactly 1 description element, got %d",
			strings.Count(out, "<description>"))
	}
}

func TestMarshalEmptyDocument(t *testing.T) {
	data, err := NewBuilder().Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	expected := xml.Header +
		"<kml xmlns=\"http://www.opengis.net/kml/2.2\">\n" +
		"  <Document></Document>\n" +
		"</kml>\n"
	if string(data) != expected {
		t.Errorf("empty document = %q, expected %q", string(data), expected)
	}
}

func TestCoordinatesRoundTrip(t *testing.T) {
	coords := []struct {
		lat float64
		lon float64
	}{
		{-23.5505, -46.6333},
		{0, 0},
		{89.999999999, -179.999999999},
		{1.0 / 3.0, 2.0 / 3.0},
	}

	for _, c := range coords {
		text := models.FormatCoordinates(c.lat, c.lon)
		parts := strings.Split(text, ",")
		if len(parts) != 3 || parts[2] != "0" {
			t.Fatalf("FormatCoordinates(%v, %v) = %q, expected lon,lat,0", c.lat, c.lon, text)
		}
		lon, err := strconv.ParseFloat(parts[0], 64)
		if err != nil || lon != c.lon {
			t.Errorf("longitude %q does not round-trip to %v", parts[0], c.lon)
		}
		lat, err := strconv.ParseFloat(parts[1], 64)
		if err != nil || lat != c.lat {
			t.Errorf("latitude %q does not round-trip to %v", parts[1], c.lat)
		}
	}
}
