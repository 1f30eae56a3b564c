package models

import (
	"encoding/json"
	"testing"
)

func TestLocationUnmarshalStructured(t *testing.T) {
	var l Location
	raw := `{"address":"12 Marine Drive","city":"Mumbai","state":"Maharashtra","country":"India"}`
	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		t.Fatal(err)
	}

	if l.City != "Mumbai" || l.Address != "12 Marine Drive" {
		t.Errorf("structured fields not populated: %+v", l.StructuredLocation)
	}
	if l.Raw != "" {
		t.Errorf("Raw should be empty for structured input, got %q", l.Raw)
	}
	if got := l.Display(); got != "12 Marine Drive, Mumbai, Maharashtra" {
		t.Errorf("Display() = %q", got)
	}
	if got := l.CityName(); got != "Mumbai" {
		t.Errorf("CityName() = %q", got)
	}
}

func TestLocationUnmarshalLegacyString(t *testing.T) {
	var l Location
	if err := json.Unmarshal([]byte(`"Juhu, Mumbai"`), &l); err != nil {
		t.Fatal(err)
	}

	if l.Raw != "Juhu, Mumbai" {
		t.Errorf("Raw = %q", l.Raw)
	}
	if got := l.Display(); got != "Juhu, Mumbai" {
		t.Errorf("Display() = %q", got)
	}
	if got := l.CityName(); got != "" {
		t.Errorf("legacy locations carry no city, got %q", got)
	}
}

func TestLocationDisplaySkipsAbsentParts(t *testing.T) {
	tests := []struct {
		loc  Location
		want string
	}{
		{Location{StructuredLocation: StructuredLocation{City: "Delhi"}}, "Delhi"},
		{Location{StructuredLocation: StructuredLocation{City: "Delhi", State: "NCR"}}, "Delhi, NCR"},
		{Location{StructuredLocation: StructuredLocation{Address: "Plot 9", City: "Delhi"}}, "Plot 9, Delhi"},
	}
	for _, tt := range tests {
		if got := tt.loc.Display(); got != tt.want {
			t.Errorf("Display() = %q, want %q", got, tt.want)
		}
	}
}

func TestLocationMarshalRoundTrip(t *testing.T) {
	legacy := Location{Raw: "Old Manor Lane"}
	data, err := json.Marshal(legacy)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"Old Manor Lane"` {
		t.Errorf("legacy marshal = %s", data)
	}

	structured := Location{StructuredLocation: StructuredLocation{City: "Mumbai"}}
	data, err = json.Marshal(structured)
	if err != nil {
		t.Fatal(err)
	}
	var back Location
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.City != "Mumbai" || back.Raw != "" {
		t.Errorf("structured round trip lost data: %+v", back)
	}
}

func TestPropertySlug(t *testing.T) {
	p := Property{Title: "Sea Crest Villa, Juhu"}
	if got := p.Slug(); got != "sea-crest-villa-juhu" {
		t.Errorf("Slug() = %q", got)
	}
}

func TestPropertyGallery(t *testing.T) {
	p := Property{
		Exterior: []string{"e1.jpg"},
		Interior: []string{"i1.jpg", "i2.jpg"},
	}

	if got := p.Gallery("interior"); len(got) != 2 {
		t.Errorf("interior gallery = %v", got)
	}
	if got := p.Gallery("heroVideo"); got != nil {
		t.Errorf("unknown gallery should be nil, got %v", got)
	}

	for _, name := range GalleryNames {
		// Every advertised gallery name must resolve, even when empty.
		_ = p.Gallery(name)
	}
}
