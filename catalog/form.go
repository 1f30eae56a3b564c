package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"veyra-io/estates-web/models"
)

// RequiredFormFields are validated before any network call; a submission with
// any of them empty is blocked and each offending field flagged.
var RequiredFormFields = []string{"title", "location.city", "price.amount", "builtUpArea"}

// PayloadFromForm maps the flat admin form (dotted paths for nested fields,
// comma-separated text for list fields) into the structured payload the API
// client serializes. The returned map flags every required field that failed
// validation; submission must not proceed while it is non-empty.
func PayloadFromForm(form url.Values) (models.PropertyPayload, map[string]bool) {
	fieldErrors := map[string]bool{}
	for _, field := range RequiredFormFields {
		if strings.TrimSpace(form.Get(field)) == "" {
			fieldErrors[field] = true
		}
	}

	payload := models.PropertyPayload{
		Title:       form.Get("title"),
		Tagline:     form.Get("tagline"),
		Description: form.Get("description"),
		Price: models.Price{
			Amount:         parseOptionalNumber(form.Get("price.amount")),
			Currency:       models.Currency(defaultString(form.Get("price.currency"), string(models.CurrencyINR))),
			PricePerSqFt:   parseOptionalNumber(form.Get("price.pricePerSqFt")),
			DisplayText:    form.Get("price.displayText"),
			IsPriceVisible: parseCheckbox(form.Get("price.isPriceVisible")),
		},
		Location: models.StructuredLocation{
			Address:                 form.Get("location.address"),
			City:                    form.Get("location.city"),
			State:                   form.Get("location.state"),
			Country:                 defaultString(form.Get("location.country"), "India"),
			PinCode:                 form.Get("location.pinCode"),
			Landmark:                form.Get("location.landmark"),
			NeighborhoodDescription: form.Get("location.neighborhoodDescription"),
		},
		BuiltUpArea: form.Get("builtUpArea"),
		LandArea:    form.Get("landArea"),
		Bedrooms:    form.Get("bedrooms"),
		Bathrooms:   form.Get("bathrooms"),
		Floors:      form.Get("floors"),
		YearBuilt:   form.Get("yearBuilt"),

		ConfigurationTags: SplitList(form.Get("configurationTags")),
		Highlights:        SplitList(form.Get("highlights")),
		Amenities:         SplitList(form.Get("amenities")),
		UniqueFeatures:    SplitList(form.Get("uniqueFeatures")),

		Architect:        form.Get("architect"),
		InteriorDesigner: form.Get("interiorDesigner"),
		Developer:        form.Get("developer"),
		DesignPhilosophy: form.Get("designPhilosophy"),

		ReraNumber:         form.Get("reraNumber"),
		PossessionStatus:   models.PossessionStatus(defaultString(form.Get("possessionStatus"), string(models.PossessionReady))),
		OwnershipType:      models.OwnershipType(defaultString(form.Get("ownershipType"), string(models.OwnershipFreehold))),
		StampDuty:          form.Get("stampDuty"),
		MaintenanceCharges: form.Get("maintenanceCharges"),

		ContactPerson: form.Get("contactPerson"),
		ContactEmail:  form.Get("contactEmail"),
		ContactPhone:  form.Get("contactPhone"),

		IsFeatured: parseCheckbox(form.Get("isFeatured")),
		Status:     models.PropertyStatus(defaultString(form.Get("status"), string(models.PropertyAvailable))),
	}

	return payload, fieldErrors
}

// FormValuesFromProperty is the edit-mode inverse: it refills the flat form,
// re-joining the list fields into comma-separated display strings.
func FormValuesFromProperty(p models.Property) url.Values {
	form := url.Values{}
	set := func(key, value string) {
		form.Set(key, value)
	}

	set("title", p.Title)
	set("tagline", p.Tagline)
	set("description", p.Description)

	if p.Price.Amount != nil {
		set("price.amount", strconv.FormatFloat(*p.Price.Amount, 'f', -1, 64))
	}
	set("price.currency", string(p.Price.Currency))
	if p.Price.PricePerSqFt != nil {
		set("price.pricePerSqFt", strconv.FormatFloat(*p.Price.PricePerSqFt, 'f', -1, 64))
	}
	set("price.displayText", p.Price.DisplayText)
	if p.Price.IsPriceVisible {
		set("price.isPriceVisible", "true")
	}

	set("location.address", p.Location.Address)
	set("location.city", p.Location.City)
	set("location.state", p.Location.State)
	set("location.country", p.Location.Country)
	set("location.pinCode", p.Location.PinCode)
	set("location.landmark", p.Location.Landmark)
	set("location.neighborhoodDescription", p.Location.NeighborhoodDescription)

	set("builtUpArea", p.BuiltUpArea)
	set("landArea", p.LandArea)
	if p.Bedrooms != 0 {
		set("bedrooms", strconv.Itoa(p.Bedrooms))
	}
	if p.Bathrooms != 0 {
		set("bathrooms", strconv.Itoa(p.Bathrooms))
	}
	if p.Floors != 0 {
		set("floors", strconv.Itoa(p.Floors))
	}
	if p.YearBuilt != 0 {
		set("yearBuilt", strconv.Itoa(p.YearBuilt))
	}

	set("configurationTags", JoinList(p.ConfigurationTags))
	set("highlights", JoinList(p.Highlights))
	set("amenities", JoinList(p.Amenities))
	set("uniqueFeatures", JoinList(p.UniqueFeatures))

	set("architect", p.Architect)
	set("interiorDesigner", p.InteriorDesigner)
	set("developer", p.Developer)
	set("designPhilosophy", p.DesignPhilosophy)

	set("reraNumber", p.ReraNumber)
	set("possessionStatus", string(p.PossessionStatus))
	set("ownershipType", string(p.OwnershipType))
	set("stampDuty", p.StampDuty)
	set("maintenanceCharges", p.MaintenanceCharges)

	set("contactPerson", p.ContactPerson)
	set("contactEmail", p.ContactEmail)
	set("contactPhone", p.ContactPhone)

	if p.IsFeatured {
		set("isFeatured", "true")
	}
	set("status", string(p.Status))

	return form
}

func parseOptionalNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &n
}

func parseCheckbox(s string) bool {
	switch strings.ToLower(s) {
	case "true", "on", "1", "yes":
		return true
	}
	return false
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
