package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"veyra-io/estates-web/backend"
	"veyra-io/estates-web/configs"
	"veyra-io/estates-web/helper"
	"veyra-io/estates-web/models"
)

// pageErrorFor maps a backend failure onto the status and copy shown to the
// visitor. Nothing is retried; the visitor retries manually.
func pageErrorFor(err error) (int, string) {
	var notFound *backend.NotFoundError
	var validation *backend.ValidationError
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, "This property is no longer listed."
	case errors.As(err, &validation):
		return http.StatusBadRequest, validation.Message
	default:
		return http.StatusBadGateway, "Something went wrong on our side. Please try again."
	}
}

func forwardInquiry(c *gin.Context, kind models.InquiryKind, payload interface{}) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), RequestTimeout)
	defer cancel()

	result, err := API.SubmitInquiry(ctx, kind, payload)
	if err != nil {
		status, message := pageErrorFor(err)
		helper.HandleError(c, status, err, message)
		return
	}
	if !result.Success {
		helper.HandleError(c, http.StatusBadGateway, nil, "Submission failed. Please try again.")
		return
	}

	helper.HandleSuccess(c, http.StatusOK, "Inquiry submitted", gin.H{
		"success":   true,
		"reference": uuid.NewString(),
	})
}

// SubmitContactInquiry handles the general contact form. The email format is
// rejected here, before any network call is made.
func SubmitContactInquiry() gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload models.ContactInquiry
		if err := c.ShouldBindJSON(&payload); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "invalid or missing data in request body")
			return
		}
		if err := configs.ValidateEmailAddress(payload.Email); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, err.Error())
			return
		}

		forwardInquiry(c, models.InquiryContact, payload)
	}
}

// SubmitPrivateAccessInquiry handles the confidential buyer-profile form.
func SubmitPrivateAccessInquiry() gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload models.PrivateAccessInquiry
		if err := c.ShouldBindJSON(&payload); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "invalid or missing data in request body")
			return
		}
		if err := configs.ValidateEmailAddress(payload.Email); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, err.Error())
			return
		}
		if err := configs.ValidatePhoneNumber(payload.Phone); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, err.Error())
			return
		}
		if payload.Features == nil {
			payload.Features = []string{}
		}

		forwardInquiry(c, models.InquiryPrivateAccess, payload)
	}
}

// SubmitPropertyDetailInquiry handles the inquiry form on a detail page; the
// payload carries the property context alongside the visitor's details.
func SubmitPropertyDetailInquiry() gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload models.PropertyDetailInquiry
		if err := c.ShouldBindJSON(&payload); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "invalid or missing data in request body")
			return
		}
		if err := configs.ValidateEmailAddress(payload.Email); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, err.Error())
			return
		}
		if err := configs.ValidatePhoneNumber(payload.Phone); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, err.Error())
			return
		}

		forwardInquiry(c, models.InquiryPropertyDetail, payload)
	}
}
