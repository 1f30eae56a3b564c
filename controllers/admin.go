package controllers

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"veyra-io/estates-web/backend"
	"veyra-io/estates-web/catalog"
	"veyra-io/estates-web/helper"
	"veyra-io/estates-web/models"
)

const maxUploadBytes = 64 << 20

// AdminProperties renders the management table of every record.
func AdminProperties() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), RequestTimeout)
		defer cancel()

		properties, err := API.ListProperties(ctx, catalog.CityAll)
		if err != nil {
			status, message := pageErrorFor(err)
			helper.ShowErrorPage(c, status, err, message)
			return
		}

		c.HTML(http.StatusOK, "admin_properties.html", gin.H{
			"Properties": properties,
			"Deleted":    c.Query("deleted") == "1",
		})
	}
}

// AdminNewProperty renders the empty creation form.
func AdminNewProperty() gin.HandlerFunc {
	return func(c *gin.Context) {
		form := url.Values{}
		form.Set("price.currency", string(models.CurrencyINR))
		form.Set("price.isPriceVisible", "true")
		form.Set("location.country", "India")
		form.Set("possessionStatus", string(models.PossessionReady))
		form.Set("ownershipType", string(models.OwnershipFreehold))
		form.Set("status", string(models.PropertyAvailable))

		renderAdminForm(c, http.StatusOK, adminFormState{Form: form})
	}
}

// AdminCreateProperty submits a new record. Required-field validation runs
// first and blocks the backend call, flagging each offending input.
func AdminCreateProperty() gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, form, fieldErrors, ok := parsePropertyForm(c)
		if !ok {
			return
		}
		if len(fieldErrors) > 0 {
			renderAdminForm(c, http.StatusBadRequest, adminFormState{
				Form:        form,
				FieldErrors: fieldErrors,
				Banner:      "Please fill in all required fields",
				BannerError: true,
			})
			return
		}

		files, closeFiles, err := collectMediaFiles(c)
		if err != nil {
			renderAdminForm(c, http.StatusBadRequest, adminFormState{
				Form: form, Banner: "Could not read the uploaded files", BannerError: true,
			})
			return
		}
		defer closeFiles()

		ctx, cancel := context.WithTimeout(c.Request.Context(), RequestTimeout)
		defer cancel()

		created, err := API.CreateProperty(ctx, payload, files)
		if err != nil {
			_, message := pageErrorFor(err)
			renderAdminForm(c, http.StatusBadGateway, adminFormState{
				Form: form, Banner: message, BannerError: true,
			})
			return
		}

		c.Redirect(http.StatusFound, "/admin/properties/"+url.PathEscape(created.ID)+"/edit?saved=1")
	}
}

// AdminEditProperty loads an existing record into the form: list fields are
// re-joined into comma-separated text, and already-uploaded media is shown
// with per-item remove controls, separate from any newly queued files.
func AdminEditProperty() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), RequestTimeout)
		defer cancel()

		property, err := API.GetProperty(ctx, c.Param("id"))
		if err != nil {
			status, message := pageErrorFor(err)
			helper.ShowErrorPage(c, status, err, message)
			return
		}

		state := adminFormState{
			IsEdit:   true,
			Property: &property,
			Form:     catalog.FormValuesFromProperty(property),
		}
		if c.Query("saved") == "1" {
			state.Banner = "Property saved successfully"
		}
		renderAdminForm(c, http.StatusOK, state)
	}
}

// AdminUpdateProperty overwrites the editable fields of a record. Newly
// selected files are additive uploads.
func AdminUpdateProperty() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		payload, form, fieldErrors, ok := parsePropertyForm(c)
		if !ok {
			return
		}
		if len(fieldErrors) > 0 {
			renderAdminForm(c, http.StatusBadRequest, adminFormState{
				IsEdit:      true,
				EditID:      id,
				Form:        form,
				FieldErrors: fieldErrors,
				Banner:      "Please fill in all required fields",
				BannerError: true,
			})
			return
		}

		files, closeFiles, err := collectMediaFiles(c)
		if err != nil {
			renderAdminForm(c, http.StatusBadRequest, adminFormState{
				IsEdit: true, EditID: id, Form: form,
				Banner: "Could not read the uploaded files", BannerError: true,
			})
			return
		}
		defer closeFiles()

		ctx, cancel := context.WithTimeout(c.Request.Context(), RequestTimeout)
		defer cancel()

		if _, err := API.UpdateProperty(ctx, id, payload, files); err != nil {
			_, message := pageErrorFor(err)
			renderAdminForm(c, http.StatusBadGateway, adminFormState{
				IsEdit: true, EditID: id, Form: form,
				Banner: message, BannerError: true,
			})
			return
		}

		c.Redirect(http.StatusFound, "/admin/properties/"+url.PathEscape(id)+"/edit?saved=1")
	}
}

// AdminDeleteProperty removes a record for good. The confirmation happened
// client-side; a failure leaves the record in place and visible.
func AdminDeleteProperty() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), RequestTimeout)
		defer cancel()

		if err := API.DeleteProperty(ctx, c.Param("id")); err != nil {
			status, message := pageErrorFor(err)
			helper.ShowErrorPage(c, status, err, message)
			return
		}

		c.Redirect(http.StatusFound, "/admin/properties?deleted=1")
	}
}

// AdminRemoveMedia detaches a single already-uploaded item from one gallery
// (or the hero video / virtual tour slot) without touching anything else.
func AdminRemoveMedia() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			MediaType string `json:"mediaType" binding:"required"`
			MediaURL  string `json:"mediaUrl" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "invalid or missing data in request body")
			return
		}
		if !isMediaCategory(req.MediaType) {
			helper.HandleError(c, http.StatusBadRequest, fmt.Errorf("unknown media category %q", req.MediaType), "unknown media category")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), RequestTimeout)
		defer cancel()

		if err := API.RemoveMediaItem(ctx, c.Param("id"), req.MediaType, req.MediaURL); err != nil {
			status, message := pageErrorFor(err)
			helper.HandleError(c, status, err, message)
			return
		}

		helper.HandleSuccess(c, http.StatusOK, "Media removed successfully", nil)
	}
}

func isMediaCategory(name string) bool {
	if name == "heroVideo" || name == "virtualTour" {
		return true
	}
	for _, gallery := range models.GalleryNames {
		if gallery == name {
			return true
		}
	}
	return false
}

type adminFormState struct {
	IsEdit      bool
	EditID      string
	Property    *models.Property
	Form        url.Values
	FieldErrors map[string]bool
	Banner      string
	BannerError bool
}

func renderAdminForm(c *gin.Context, status int, state adminFormState) {
	if state.Property != nil {
		state.EditID = state.Property.ID
	}
	if state.FieldErrors == nil {
		state.FieldErrors = map[string]bool{}
	}

	c.HTML(status, "admin_form.html", gin.H{
		"IsEdit":       state.IsEdit,
		"EditID":       state.EditID,
		"Property":     state.Property,
		"Form":         state.Form,
		"FieldErrors":  state.FieldErrors,
		"Banner":       state.Banner,
		"BannerError":  state.BannerError,
		"GalleryNames": models.GalleryNames,
		"Currencies":   []models.Currency{models.CurrencyINR, models.CurrencyUSD, models.CurrencyEUR},
	})
}

// parsePropertyForm reads the multipart submission into the structured
// payload. ok is false when the body itself was unreadable (already
// reported); field-level validation problems come back in the map.
func parsePropertyForm(c *gin.Context) (models.PropertyPayload, url.Values, map[string]bool, bool) {
	if err := c.Request.ParseMultipartForm(maxUploadBytes); err != nil {
		helper.ShowErrorPage(c, http.StatusBadRequest, err, "Could not read the submitted form")
		return models.PropertyPayload{}, nil, nil, false
	}

	form := url.Values(c.Request.MultipartForm.Value)
	payload, fieldErrors := catalog.PayloadFromForm(form)
	return payload, form, fieldErrors, true
}

// collectMediaFiles opens every queued upload under its named part. The
// returned closer must run after the backend call has consumed the readers.
func collectMediaFiles(c *gin.Context) (backend.MediaFiles, func(), error) {
	files := backend.MediaFiles{Galleries: map[string][]backend.MediaFile{}}
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	open := func(header *multipart.FileHeader) (*backend.MediaFile, error) {
		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		opened = append(opened, f)
		return &backend.MediaFile{Filename: header.Filename, Content: f}, nil
	}

	formFiles := c.Request.MultipartForm.File

	if headers := formFiles["heroVideo"]; len(headers) > 0 {
		file, err := open(headers[0])
		if err != nil {
			closeAll()
			return backend.MediaFiles{}, nil, err
		}
		files.HeroVideo = file
	}
	if headers := formFiles["virtualTour"]; len(headers) > 0 {
		file, err := open(headers[0])
		if err != nil {
			closeAll()
			return backend.MediaFiles{}, nil, err
		}
		files.VirtualTour = file
	}

	for _, gallery := range models.GalleryNames {
		for _, header := range formFiles[gallery] {
			file, err := open(header)
			if err != nil {
				closeAll()
				return backend.MediaFiles{}, nil, err
			}
			files.Galleries[gallery] = append(files.Galleries[gallery], *file)
		}
	}

	return files, closeAll, nil
}
