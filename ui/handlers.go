package ui

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/mondragon-developer/statools/internal/errors"
	"github.com/mondragon-developer/statools/models"
)

// pageData is the view model shared by the landing and calculator pages.
type pageData struct {
	Title       string
	Kind        string
	Guide       template.HTML
	Calculators []calculatorInfo
}

type calculatorInfo struct {
	Kind  string
	Title string
	Blurb string
}

var calculators = []calculatorInfo{
	{Kind: "descriptive", Title: "Descriptive Statistics", Blurb: "Summary statistics, quartiles, outliers and frequency tables."},
	{Kind: "binomial", Title: "Binomial Distribution", Blurb: "Exact, at-most and at-least probabilities for n trials."},
	{Kind: "poisson", Title: "Poisson Distribution", Blurb: "Event-count probabilities for a known average rate."},
	{Kind: "normal", Title: "Normal Distribution", Blurb: "Tail, interval and inverse probabilities with z-scores."},
	{Kind: "hypothesis", Title: "Hypothesis Testing", Blurb: "One-sample z and t tests for proportions and means."},
	{Kind: "probability", Title: "Probability Tools", Blurb: "Counting rules, two-event algebra and a dice simulator."},
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.renderTemplate(w, "index.html", pageData{
		Title:       "statools",
		Calculators: calculators,
	})
}

func (a *App) handleCalculatorPage(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	var info *calculatorInfo
	for i := range calculators {
		if calculators[i].Kind == kind {
			info = &calculators[i]
			break
		}
	}
	if info == nil {
		http.NotFound(w, r)
		return
	}

	a.renderTemplate(w, "calculator.html", pageData{
		Title:       info.Title,
		Kind:        info.Kind,
		Guide:       renderGuide(info.Kind),
		Calculators: calculators,
	})
}

func (a *App) handleHistory(w http.ResponseWriter, r *http.Request) {
	kind := models.CalculationKind(r.URL.Query().Get("kind"))
	if kind != "" && !models.ValidKind(kind) {
		writeError(w, apperrors.InvalidInputf("unknown calculation kind %q", kind))
		return
	}

	limit := a.historyLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, apperrors.InvalidInput("limit must be a positive integer"))
			return
		}
		if parsed < limit {
			limit = parsed
		}
	}

	records, err := a.store.Recent(r.Context(), kind, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (a *App) handleProfiles(w http.ResponseWriter, r *http.Request) {
	if a.profiles == nil {
		writeError(w, apperrors.NotFound("dataset overview"))
		return
	}
	writeJSON(w, http.StatusOK, a.profiles)
}

// Template helpers
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html")
	if err := a.templates.ExecuteTemplate(w, templateName, data); err != nil {
		log.Printf("[Server] Template error: %v", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}

// JSON helpers

func decodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return apperrors.InvalidInputf("request body is not valid JSON: %v", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[Server] Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch apperrors.GetCode(err) {
	case apperrors.CodeInvalidInput:
		status = http.StatusBadRequest
	case apperrors.CodeNotFound:
		status = http.StatusNotFound
	}

	writeJSON(w, status, map[string]string{
		"code":  apperrors.GetCode(err),
		"error": err.Error(),
	})
}

// record saves a completed calculation to the history store. History is
// best-effort; a store failure never fails the calculation itself.
func (a *App) record(r *http.Request, kind models.CalculationKind, inputs, results interface{}) {
	record, err := models.NewCalculationRecord(kind, inputs, results)
	if err != nil {
		log.Printf("[History] Failed to build record: %v", err)
		return
	}
	if err := a.store.Save(r.Context(), record); err != nil {
		log.Printf("[History] Failed to save record: %v", err)
	}
}
