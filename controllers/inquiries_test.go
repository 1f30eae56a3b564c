package controllers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"veyra-io/estates-web/backend"
	"veyra-io/estates-web/controllers"
)

// countingBackend stands in for the external API and records how many
// requests actually reached it.
func countingBackend(t *testing.T, responseBody string) (*httptest.Server, *int) {
	t.Helper()
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, responseBody)
	}))
	t.Cleanup(server.Close)
	return server, &hits
}

func inquiryRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/inquiries/contact", controllers.SubmitContactInquiry())
	router.POST("/api/inquiries/private-access", controllers.SubmitPrivateAccessInquiry())
	router.POST("/api/inquiries/property-detail", controllers.SubmitPropertyDetailInquiry())
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestContactInquirySuccess(t *testing.T) {
	server, hits := countingBackend(t, `{"success":true}`)
	controllers.Init(backend.NewClient(server.URL))
	router := inquiryRouter()

	rec := postJSON(router, "/api/inquiries/contact", `{
		"name": "Asha Rao",
		"email": "asha@example.com",
		"subject": "Schedule a Viewing",
		"message": "I would like to schedule a private viewing this weekend."
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if *hits != 1 {
		t.Errorf("backend hits = %d, want 1", *hits)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"success":true`) || !strings.Contains(body, `"reference"`) {
		t.Errorf("response missing confirmation: %s", body)
	}
}

func TestContactInquiryInvalidEmailSkipsBackend(t *testing.T) {
	server, hits := countingBackend(t, `{"success":true}`)
	controllers.Init(backend.NewClient(server.URL))
	router := inquiryRouter()

	rec := postJSON(router, "/api/inquiries/contact", `{
		"name": "Asha Rao",
		"email": "not-an-email",
		"subject": "Schedule a Viewing",
		"message": "I would like to schedule a private viewing this weekend."
	}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if *hits != 0 {
		t.Errorf("backend hits = %d, a malformed email must never leave the server", *hits)
	}
}

func TestContactInquiryShortMessageRejected(t *testing.T) {
	server, hits := countingBackend(t, `{"success":true}`)
	controllers.Init(backend.NewClient(server.URL))
	router := inquiryRouter()

	rec := postJSON(router, "/api/inquiries/contact", `{
		"name": "Asha Rao",
		"email": "asha@example.com",
		"subject": "Hello",
		"message": "too short"
	}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if *hits != 0 {
		t.Errorf("backend hits = %d, want 0", *hits)
	}
}

func TestPropertyDetailInquiryInvalidPhoneSkipsBackend(t *testing.T) {
	server, hits := countingBackend(t, `{"success":true}`)
	controllers.Init(backend.NewClient(server.URL))
	router := inquiryRouter()

	rec := postJSON(router, "/api/inquiries/property-detail", `{
		"name": "Asha Rao",
		"email": "asha@example.com",
		"phone": "12ab",
		"propertyId": "p1",
		"propertyTitle": "Sea Crest"
	}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if *hits != 0 {
		t.Errorf("backend hits = %d, want 0", *hits)
	}
}

func TestPrivateAccessInquirySendsEmptyFeatureList(t *testing.T) {
	var captured string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		captured = string(body)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"success":true}`)
	}))
	defer server.Close()
	controllers.Init(backend.NewClient(server.URL))
	router := inquiryRouter()

	rec := postJSON(router, "/api/inquiries/private-access", `{
		"name": "Asha Rao",
		"email": "asha@example.com",
		"phone": "+919876543210"
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if !strings.Contains(captured, `"features":[]`) {
		t.Errorf("forwarded payload should carry features as [], got %s", captured)
	}
}

func TestInquiryUnsuccessfulResultReported(t *testing.T) {
	server, _ := countingBackend(t, `{"success":false}`)
	controllers.Init(backend.NewClient(server.URL))
	router := inquiryRouter()

	rec := postJSON(router, "/api/inquiries/contact", `{
		"name": "Asha Rao",
		"email": "asha@example.com",
		"subject": "Schedule a Viewing",
		"message": "I would like to schedule a private viewing this weekend."
	}`)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502 when the API reports failure", rec.Code)
	}
}
