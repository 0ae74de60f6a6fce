package ui

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mondragon-developer/statools/adapters/memory"
	"github.com/mondragon-developer/statools/models"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(Config{
		Store:        memory.NewCalculationStore(100),
		HistoryLimit: 100,
	})
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	return app
}

func postJSON(t *testing.T, app *App, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)
	return rec
}

func TestPages(t *testing.T) {
	app := newTestApp(t)

	paths := []string{"/", "/calculators/descriptive", "/calculators/normal", "/calculators/probability"}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		app.Router().ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/calculators/unknown", nil)
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown calculator, got %d", rec.Code)
	}
}

func TestDescriptiveEndpoint(t *testing.T) {
	app := newTestApp(t)

	rec := postJSON(t, app, "/api/descriptive", descriptiveRequest{
		Sample:        "1 2 3 4 5",
		WithHistogram: true,
		LowerBoundary: 0,
		ClassWidth:    2,
		BinCount:      3,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp descriptiveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Summary.Mean != 3 || resp.Summary.Median != 3 {
		t.Errorf("Unexpected summary: %+v", resp.Summary)
	}
	if resp.Frequency == nil || len(resp.Frequency.Bins) != 3 {
		t.Errorf("Expected a 3-bin frequency table, got %+v", resp.Frequency)
	}
	if resp.Histogram == nil || len(resp.Histogram.Series) != 3 {
		t.Error("Expected a 3-bar histogram dataset")
	}
}

func TestDescriptiveEndpointRejectsBadInput(t *testing.T) {
	app := newTestApp(t)

	rec := postJSON(t, app, "/api/descriptive", descriptiveRequest{Sample: "not numbers"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode error body: %v", err)
	}
	if body["code"] != "INVALID_INPUT" {
		t.Errorf("Expected INVALID_INPUT code, got %q", body["code"])
	}
}

func TestBinomialEndpoint(t *testing.T) {
	app := newTestApp(t)

	rec := postJSON(t, app, "/api/distributions/binomial", binomialRequest{
		Trials: 10, Probability: 0.5, X: 5, Mode: "exact",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp discreteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Result.Mean != 5 {
		t.Errorf("Expected mean 5, got %v", resp.Result.Mean)
	}
	if len(resp.Chart.Series) != 11 {
		t.Errorf("Expected 11 chart points, got %d", len(resp.Chart.Series))
	}

	over := postJSON(t, app, "/api/distributions/binomial", binomialRequest{Trials: 51, Probability: 0.5, X: 5})
	if over.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for trials over the limit, got %d", over.Code)
	}
}

func TestHypothesisEndpoint(t *testing.T) {
	app := newTestApp(t)

	rec := postJSON(t, app, "/api/hypothesis", map[string]interface{}{
		"family":            "proportion",
		"tail":              "two",
		"alpha":             0.05,
		"hypothesized":      0.5,
		"sample_size":       100,
		"sample_proportion": 0.6,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp["reject"] != true {
		t.Errorf("Expected rejection, got %v", resp["reject"])
	}
}

func TestDiceEndpoints(t *testing.T) {
	app := newTestApp(t)

	rec := postJSON(t, app, "/api/dice/roll", diceRollRequest{Dice: 3})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp diceRollResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Roll.Faces) != 3 {
		t.Errorf("Expected 3 faces, got %d", len(resp.Roll.Faces))
	}

	freqReq := httptest.NewRequest(http.MethodGet, "/api/dice/frequencies", nil)
	freqRec := httptest.NewRecorder()
	app.Router().ServeHTTP(freqRec, freqReq)
	if freqRec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", freqRec.Code)
	}

	reset := postJSON(t, app, "/api/dice/reset", struct{}{})
	if reset.Code != http.StatusOK {
		t.Errorf("Expected 200 for reset, got %d", reset.Code)
	}
}

func TestHistoryEndpoint(t *testing.T) {
	app := newTestApp(t)

	postJSON(t, app, "/api/distributions/poisson", poissonRequest{Lambda: 5, X: 5, Mode: "exact"})
	postJSON(t, app, "/api/probability/counting", countingRequest{N: 5, R: 2})

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var records []*models.CalculationRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 history records, got %d", len(records))
	}
	// Newest first.
	if records[0].Kind != models.KindProbability || records[1].Kind != models.KindPoisson {
		t.Errorf("Unexpected history order: %s, %s", records[0].Kind, records[1].Kind)
	}

	bad := httptest.NewRequest(http.MethodGet, "/api/history?kind=bogus", nil)
	badRec := httptest.NewRecorder()
	app.Router().ServeHTTP(badRec, bad)
	if badRec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown kind, got %d", badRec.Code)
	}
}

func TestProfilesEndpointWithoutDataset(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/profiles", nil)
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 when no dataset is configured, got %d", rec.Code)
	}
}
