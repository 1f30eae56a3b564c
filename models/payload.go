package models

// PropertyPayload is the editable slice of a Property as assembled from the
// admin form, before multipart serialization. Numeric inputs stay as the raw
// form strings; the external API parses them on its side, matching how the
// form always submitted them.
type PropertyPayload struct {
	Title       string
	Tagline     string
	Description string

	Price    Price
	Location StructuredLocation

	BuiltUpArea string
	LandArea    string
	Bedrooms    string
	Bathrooms   string
	Floors      string
	YearBuilt   string

	ConfigurationTags []string
	Highlights        []string
	Amenities         []string
	UniqueFeatures    []string

	Architect        string
	InteriorDesigner string
	Developer        string
	DesignPhilosophy string

	ReraNumber         string
	PossessionStatus   PossessionStatus
	OwnershipType      OwnershipType
	StampDuty          string
	MaintenanceCharges string

	ContactPerson string
	ContactEmail  string
	ContactPhone  string

	IsFeatured bool
	Status     PropertyStatus
}
