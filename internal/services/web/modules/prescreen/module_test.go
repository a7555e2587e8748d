package prescreen

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domain "github.com/louisbranch/covidtracker/internal/services/prescreen"
	"github.com/louisbranch/covidtracker/internal/services/web/routepath"
)

func mountHandler(t *testing.T) http.Handler {
	t.Helper()
	mount, err := New().Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.PrescreenPrefix {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.PrescreenPrefix)
	}
	return mount.Handler
}

func TestModuleIDReturnsPrescreen(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "prescreen" {
		t.Fatalf("ID() = %q, want %q", got, "prescreen")
	}
}

func TestIndexRendersQuestionnaireWithoutResult(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Prescreen, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, option := range domain.Options() {
		if !strings.Contains(body, `value="`+option.Value+`"`) {
			t.Fatalf("body missing symptom %q", option.Value)
		}
	}
	if strings.Contains(body, "result-card") {
		t.Fatalf("empty selection should render no result card")
	}
}

func TestResultFragmentForHTMXRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		symptoms []string
		message  string
		tone     string
	}{
		{name: "low", symptoms: []string{"Headache"}, message: "currently you do not need COVID-19 testing", tone: "card-success"},
		{name: "testing", symptoms: []string{"Fever", "Cough", "Age"}, message: "for COVID-19 testing", tone: "card-warning"},
		{name: "emergency", symptoms: []string{"Chest"}, message: "consult a doctor immediately.", tone: "card-danger"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, routepath.PrescreenResultFor(tc.symptoms), nil)
			req.Header.Set("HX-Request", "true")
			rr := httptest.NewRecorder()
			mountHandler(t).ServeHTTP(rr, req)
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
			}
			body := rr.Body.String()
			if strings.Contains(body, "<html") || strings.Contains(body, "page-content") {
				t.Fatalf("fragment contains page chrome: %q", body)
			}
			if !strings.Contains(body, tc.message) || !strings.Contains(body, tc.tone) {
				t.Fatalf("body = %q, want %q with %s", body, tc.message, tc.tone)
			}
		})
	}
}

func TestResultWithoutHTMXRendersFullPage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.PrescreenResultFor([]string{"Fever"}), nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "<!doctype html>") || !strings.Contains(body, "result-card") {
		t.Fatalf("expected full page with result card")
	}
	if !strings.Contains(body, `value="Fever" checked`) {
		t.Fatalf("selected symptom should stay checked")
	}
}

func TestUnknownSymptomIsBadRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, routepath.PrescreenResultFor([]string{"Sneezing"}), nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	mountHandler(t).ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestUnknownSubpathRendersNotFound(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.PrescreenPrefix+"nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), "404: Not found") {
		t.Fatalf("body missing 404 page")
	}
}

func TestPostIsMethodNotAllowed(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, routepath.Prescreen, nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}
