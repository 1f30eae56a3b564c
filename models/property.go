package models

import (
	"bytes"
	"encoding/json"

	slug2 "github.com/gosimple/slug"
)

type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

type PossessionStatus string

const (
	PossessionReady             PossessionStatus = "Ready to Move"
	PossessionUnderConstruction PossessionStatus = "Under Construction"
)

type OwnershipType string

const (
	OwnershipFreehold  OwnershipType = "Freehold"
	OwnershipLeasehold OwnershipType = "Leasehold"
)

type PropertyStatus string

const (
	PropertyAvailable PropertyStatus = "available"
	PropertySold      PropertyStatus = "sold"
	PropertyReserved  PropertyStatus = "reserved"
)

// Price carries the structured asking price. Amount is in the major unit of
// the currency; DisplayText, when set, overrides any numeric rendering.
type Price struct {
	Amount         *float64 `json:"amount,omitempty"`
	Currency       Currency `json:"currency" validate:"omitempty,oneof=INR USD EUR"`
	PricePerSqFt   *float64 `json:"pricePerSqFt,omitempty"`
	DisplayText    string   `json:"displayText,omitempty"`
	IsPriceVisible bool     `json:"isPriceVisible"`
}

type StructuredLocation struct {
	Address                 string `json:"address,omitempty"`
	City                    string `json:"city,omitempty"`
	State                   string `json:"state,omitempty"`
	Country                 string `json:"country,omitempty"`
	PinCode                 string `json:"pinCode,omitempty"`
	Landmark                string `json:"landmark,omitempty"`
	NeighborhoodDescription string `json:"neighborhoodDescription,omitempty"`
}

// Location is the tagged union the API produces: either a structured object
// or, in older records, a bare display string.
type Location struct {
	StructuredLocation

	// Raw holds the legacy string form; when set it wins for display and the
	// structured fields are empty.
	Raw string `json:"-"`
}

func (l *Location) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		return json.Unmarshal(data, &l.Raw)
	}

	return json.Unmarshal(data, &l.StructuredLocation)
}

func (l Location) MarshalJSON() ([]byte, error) {
	if l.Raw != "" {
		return json.Marshal(l.Raw)
	}

	return json.Marshal(l.StructuredLocation)
}

// Display is the single normalization used everywhere a location is rendered:
// "address, city, state" with absent parts skipped.
func (l Location) Display() string {
	if l.Raw != "" {
		return l.Raw
	}

	out := ""
	if l.Address != "" {
		out = l.Address + ", "
	}
	out += l.City
	if l.State != "" {
		out += ", " + l.State
	}
	return out
}

// CityName returns the city for filtering; legacy string locations carry none.
func (l Location) CityName() string {
	if l.Raw != "" {
		return ""
	}
	return l.City
}

// GalleryNames lists the independently addressable media galleries, in the
// order the admin form presents them.
var GalleryNames = []string{"exterior", "interior", "views", "lifestyle", "floorplan"}

// Property is the central listing record as produced and consumed by the
// external API. The API owns the record; this application holds only
// per-view snapshots.
type Property struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Tagline     string `json:"tagline,omitempty"`
	Description string `json:"description,omitempty"`

	Price    Price    `json:"price"`
	Location Location `json:"location"`

	Bedrooms  int `json:"bedrooms,omitempty"`
	Bathrooms int `json:"bathrooms,omitempty"`
	Floors    int `json:"floors,omitempty"`
	YearBuilt int `json:"yearBuilt,omitempty"`

	// Free text with embedded units, e.g. "22,000 Sq ft" / "1.2 acres".
	BuiltUpArea string `json:"builtUpArea,omitempty"`
	LandArea    string `json:"landArea,omitempty"`

	ConfigurationTags []string `json:"configurationTags,omitempty"`
	Highlights        []string `json:"highlights,omitempty"`
	Amenities         []string `json:"amenities,omitempty"`
	UniqueFeatures    []string `json:"uniqueFeatures,omitempty"`

	HeroVideo   string   `json:"heroVideo,omitempty"`
	VirtualTour string   `json:"virtualTour,omitempty"`
	Exterior    []string `json:"exterior,omitempty"`
	Interior    []string `json:"interior,omitempty"`
	Views       []string `json:"views,omitempty"`
	Lifestyle   []string `json:"lifestyle,omitempty"`
	Floorplan   []string `json:"floorplan,omitempty"`

	Architect        string `json:"architect,omitempty"`
	InteriorDesigner string `json:"interiorDesigner,omitempty"`
	Developer        string `json:"developer,omitempty"`
	DesignPhilosophy string `json:"designPhilosophy,omitempty"`

	ReraNumber         string           `json:"reraNumber,omitempty"`
	PossessionStatus   PossessionStatus `json:"possessionStatus,omitempty"`
	OwnershipType      OwnershipType    `json:"ownershipType,omitempty"`
	StampDuty          string           `json:"stampDuty,omitempty"`
	MaintenanceCharges string           `json:"maintenanceCharges,omitempty"`

	ContactPerson string `json:"contactPerson,omitempty"`
	ContactEmail  string `json:"contactEmail,omitempty"`
	ContactPhone  string `json:"contactPhone,omitempty"`

	IsFeatured bool           `json:"isFeatured"`
	Status     PropertyStatus `json:"status"`
}

// Slug derives the shareable URL segment for a property detail page.
func (p Property) Slug() string {
	return slug2.Make(p.Title)
}

// Gallery returns the named gallery's items; unknown names yield nil.
func (p Property) Gallery(name string) []string {
	switch name {
	case "exterior":
		return p.Exterior
	case "interior":
		return p.Interior
	case "views":
		return p.Views
	case "lifestyle":
		return p.Lifestyle
	case "floorplan":
		return p.Floorplan
	}
	return nil
}
