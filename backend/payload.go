package backend

import (
	"encoding/json"
	"io"
	"mime/multipart"

	"github.com/pkg/errors"

	"veyra-io/estates-web/models"
)

// MediaFile is one file part queued for upload, as received from the admin
// form. Content is streamed into the outgoing request body.
type MediaFile struct {
	Filename string
	Content  io.Reader
}

// MediaFiles is the named file bundle attached to a create or update
// submission. Uploads are additive; removal of existing items goes through
// RemoveMediaItem instead.
type MediaFiles struct {
	HeroVideo   *MediaFile
	VirtualTour *MediaFile
	Galleries   map[string][]MediaFile
}

// writeMultipart serializes the payload and files the way the API expects:
// flat scalar fields as plain string parts, the structured price and location
// plus the four list fields JSON-stringified, and every file under its named
// part. Multipart fields carry only strings, hence the JSON step.
func writeMultipart(w *multipart.Writer, payload models.PropertyPayload, files MediaFiles) error {
	scalars := map[string]string{
		"title":              payload.Title,
		"tagline":            payload.Tagline,
		"description":        payload.Description,
		"builtUpArea":        payload.BuiltUpArea,
		"landArea":           payload.LandArea,
		"bedrooms":           payload.Bedrooms,
		"bathrooms":          payload.Bathrooms,
		"floors":             payload.Floors,
		"yearBuilt":          payload.YearBuilt,
		"architect":          payload.Architect,
		"interiorDesigner":   payload.InteriorDesigner,
		"developer":          payload.Developer,
		"designPhilosophy":   payload.DesignPhilosophy,
		"reraNumber":         payload.ReraNumber,
		"possessionStatus":   string(payload.PossessionStatus),
		"ownershipType":      string(payload.OwnershipType),
		"stampDuty":          payload.StampDuty,
		"maintenanceCharges": payload.MaintenanceCharges,
		"contactPerson":      payload.ContactPerson,
		"contactEmail":       payload.ContactEmail,
		"contactPhone":       payload.ContactPhone,
		"status":             string(payload.Status),
	}
	for name, value := range scalars {
		if err := w.WriteField(name, value); err != nil {
			return errors.Wrapf(err, "writing field %s", name)
		}
	}

	if err := w.WriteField("isFeatured", boolString(payload.IsFeatured)); err != nil {
		return errors.Wrap(err, "writing field isFeatured")
	}

	structured := map[string]interface{}{
		"price":             payload.Price,
		"location":          payload.Location,
		"configurationTags": emptyAsList(payload.ConfigurationTags),
		"highlights":        emptyAsList(payload.Highlights),
		"amenities":         emptyAsList(payload.Amenities),
		"uniqueFeatures":    emptyAsList(payload.UniqueFeatures),
	}
	for name, value := range structured {
		encoded, err := json.Marshal(value)
		if err != nil {
			return errors.Wrapf(err, "encoding field %s", name)
		}
		if err := w.WriteField(name, string(encoded)); err != nil {
			return errors.Wrapf(err, "writing field %s", name)
		}
	}

	if files.HeroVideo != nil {
		if err := writeFilePart(w, "heroVideo", *files.HeroVideo); err != nil {
			return err
		}
	}
	if files.VirtualTour != nil {
		if err := writeFilePart(w, "virtualTour", *files.VirtualTour); err != nil {
			return err
		}
	}
	for _, gallery := range models.GalleryNames {
		for _, file := range files.Galleries[gallery] {
			if err := writeFilePart(w, gallery, file); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeFilePart(w *multipart.Writer, field string, file MediaFile) error {
	part, err := w.CreateFormFile(field, file.Filename)
	if err != nil {
		return errors.Wrapf(err, "creating %s part", field)
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return errors.Wrapf(err, "copying %s content", field)
	}
	return nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// emptyAsList keeps an empty list field serializing to [] instead of null.
func emptyAsList(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
