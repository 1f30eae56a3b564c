package models

// InquiryKind selects the lead-capture endpoint an inquiry is dispatched to.
type InquiryKind string

const (
	InquiryContact        InquiryKind = "contact"
	InquiryPrivateAccess  InquiryKind = "private-access"
	InquiryPropertyDetail InquiryKind = "property-detail"
)

// ContactInquiry is the general contact form payload.
type ContactInquiry struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required,min=20"`
}

// PropertyDetailInquiry is posted from a property detail page and carries
// enough context to identify the property of interest.
type PropertyDetailInquiry struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message,omitempty"`

	PropertyID    string `json:"propertyId,omitempty"`
	PropertyTitle string `json:"propertyTitle,omitempty"`
}

// PrivateAccessInquiry is the confidential buyer-profile form. Every field is
// forwarded verbatim to the private-access endpoint.
type PrivateAccessInquiry struct {
	Name          string `json:"name" binding:"required"`
	Title         string `json:"title,omitempty"`
	Email         string `json:"email" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Country       string `json:"country,omitempty"`
	Communication string `json:"communication,omitempty"`

	AssetType string `json:"assetType,omitempty"`
	Location  string `json:"location,omitempty"`
	Budget    string `json:"budget,omitempty"`
	Timeline  string `json:"timeline,omitempty"`

	Profession string `json:"profession,omitempty"`
	Company    string `json:"company,omitempty"`
	Role       string `json:"role,omitempty"`
	Entity     string `json:"entity,omitempty"`
	EntityName string `json:"entityName,omitempty"`

	Features []string `json:"features"`

	OffMarket string `json:"offMarket,omitempty"`
	Manager   string `json:"manager,omitempty"`
	NDA       string `json:"nda,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// InquiryResult is the external API's answer for every inquiry kind.
type InquiryResult struct {
	Success bool `json:"success"`
}
