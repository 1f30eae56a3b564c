package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"veyra-io/estates-web/models"
)

// Client talks to the external property and lead-capture API. The API is the
// sole source of truth: every call here is a plain network round trip with a
// single attempt and no local state.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		log:        slog.Default().With("component", "backend"),
	}
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("request failed", "method", method, "path", path, "err", err)
		return nil, &NetworkError{Err: err}
	}
	return resp, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload interface{}) (*http.Response, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "encoding payload")
	}
	return c.do(ctx, method, path, bytes.NewReader(encoded), "application/json")
}

func decodeInto(resp *http.Response, resource string, out interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return errorFromResponse(resp.StatusCode, resource, body)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decoding %s response", resource)
	}
	return nil
}

// ListProperties fetches the collection, optionally narrowed to a city. The
// "all" sentinel (or an empty filter) returns the unfiltered collection.
func (c *Client) ListProperties(ctx context.Context, city string) ([]models.Property, error) {
	path := "/projects"
	if city != "" && !strings.EqualFold(city, "all") {
		path += "?city=" + url.QueryEscape(strings.ToLower(city))
	}

	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}

	var properties []models.Property
	if err := decodeInto(resp, "property list", &properties); err != nil {
		return nil, err
	}
	c.log.Debug("fetched properties", "count", len(properties), "city", city)
	return properties, nil
}

// GetProperty fetches a single record by identifier.
func (c *Client) GetProperty(ctx context.Context, id string) (models.Property, error) {
	resp, err := c.do(ctx, http.MethodGet, "/projects/"+url.PathEscape(id), nil, "")
	if err != nil {
		return models.Property{}, err
	}

	var property models.Property
	if err := decodeInto(resp, "property", &property); err != nil {
		return models.Property{}, err
	}
	return property, nil
}

// CreateProperty submits a new record plus its media bundle; the server
// assigns the identifier.
func (c *Client) CreateProperty(ctx context.Context, payload models.PropertyPayload, files MediaFiles) (models.Property, error) {
	return c.submitProperty(ctx, http.MethodPost, "/projects", payload, files)
}

// UpdateProperty overwrites the editable fields of an existing record. Files
// are additive uploads; existing media is only removed via RemoveMediaItem.
func (c *Client) UpdateProperty(ctx context.Context, id string, payload models.PropertyPayload, files MediaFiles) (models.Property, error) {
	return c.submitProperty(ctx, http.MethodPut, "/projects/"+url.PathEscape(id), payload, files)
}

func (c *Client) submitProperty(ctx context.Context, method, path string, payload models.PropertyPayload, files MediaFiles) (models.Property, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if err := writeMultipart(w, payload, files); err != nil {
		return models.Property{}, err
	}
	if err := w.Close(); err != nil {
		return models.Property{}, errors.Wrap(err, "finalizing multipart body")
	}

	resp, err := c.do(ctx, method, path, &body, w.FormDataContentType())
	if err != nil {
		return models.Property{}, err
	}

	var property models.Property
	if err := decodeInto(resp, "property", &property); err != nil {
		return models.Property{}, err
	}
	c.log.Info("property submitted", "method", method, "id", property.ID, "title", payload.Title)
	return property, nil
}

// DeleteProperty removes a record permanently. Irreversible; callers confirm
// with the user first.
func (c *Client) DeleteProperty(ctx context.Context, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/projects/"+url.PathEscape(id), nil, "")
	if err != nil {
		return err
	}
	return decodeInto(resp, "property", nil)
}

// RemoveMediaItem detaches exactly one reference from the named gallery,
// leaving every other gallery and item untouched.
func (c *Client) RemoveMediaItem(ctx context.Context, id, mediaType, mediaURL string) error {
	body := map[string]string{
		"mediaType": mediaType,
		"mediaUrl":  mediaURL,
	}

	resp, err := c.doJSON(ctx, http.MethodPut, "/projects/"+url.PathEscape(id)+"/media", body)
	if err != nil {
		return err
	}
	return decodeInto(resp, "media item", nil)
}

var inquiryPaths = map[models.InquiryKind]string{
	models.InquiryContact:        "/email/contact",
	models.InquiryPrivateAccess:  "/email/private-access",
	models.InquiryPropertyDetail: "/email/property-detail",
}

// SubmitInquiry dispatches a lead-capture payload to the endpoint for its
// kind. The client retains nothing about the submission afterwards.
func (c *Client) SubmitInquiry(ctx context.Context, kind models.InquiryKind, payload interface{}) (models.InquiryResult, error) {
	path, ok := inquiryPaths[kind]
	if !ok {
		return models.InquiryResult{}, fmt.Errorf("unknown inquiry kind %q", kind)
	}

	resp, err := c.doJSON(ctx, http.MethodPost, path, payload)
	if err != nil {
		return models.InquiryResult{}, err
	}

	var result models.InquiryResult
	if err := decodeInto(resp, "inquiry", &result); err != nil {
		return models.InquiryResult{}, err
	}
	c.log.Info("inquiry submitted", "kind", kind, "success", result.Success)
	return result, nil
}
