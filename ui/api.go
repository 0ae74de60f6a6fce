package ui

import (
	"net/http"

	"github.com/mondragon-developer/statools/adapters/excel"
	"github.com/mondragon-developer/statools/domain/chart"
	"github.com/mondragon-developer/statools/domain/descriptive"
	"github.com/mondragon-developer/statools/domain/distribution"
	"github.com/mondragon-developer/statools/domain/hypothesis"
	"github.com/mondragon-developer/statools/domain/probability"
	"github.com/mondragon-developer/statools/domain/sample"
	apperrors "github.com/mondragon-developer/statools/internal/errors"
	"github.com/mondragon-developer/statools/models"
)

// descriptiveRequest carries the raw sample text plus optional frequency
// table parameters.
type descriptiveRequest struct {
	Sample string `json:"sample"`

	WithHistogram bool    `json:"with_histogram,omitempty"`
	LowerBoundary float64 `json:"lower_boundary,omitempty"`
	ClassWidth    float64 `json:"class_width,omitempty"`
	BinCount      int     `json:"bin_count,omitempty"`
}

type descriptiveResponse struct {
	Summary   *descriptive.Summary        `json:"summary"`
	Frequency *descriptive.FrequencyTable `json:"frequency,omitempty"`
	Histogram *chart.Dataset              `json:"histogram,omitempty"`
	BoxPlot   chart.Dataset               `json:"box_plot"`
}

func (a *App) computeDescriptive(req descriptiveRequest) (*descriptiveResponse, error) {
	s, err := sample.Parse(req.Sample)
	if err != nil {
		return nil, err
	}

	summary, err := descriptive.Compute(s)
	if err != nil {
		return nil, err
	}

	resp := &descriptiveResponse{
		Summary: summary,
		BoxPlot: chart.BoxPlot(summary),
	}

	if req.WithHistogram {
		table, err := descriptive.Histogram(s, req.LowerBoundary, req.ClassWidth, req.BinCount)
		if err != nil {
			return nil, err
		}
		dataset := chart.FromFrequencyTable(table, summary)
		resp.Frequency = table
		resp.Histogram = &dataset
	}

	return resp, nil
}

func (a *App) handleDescriptive(w http.ResponseWriter, r *http.Request) {
	var req descriptiveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	resp, err := a.computeDescriptive(req)
	if err != nil {
		writeError(w, err)
		return
	}

	a.record(r, models.KindDescriptive, req, resp.Summary)
	writeJSON(w, http.StatusOK, resp)
}

func (a *App) handleDescriptiveExport(w http.ResponseWriter, r *http.Request) {
	var req descriptiveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	resp, err := a.computeDescriptive(req)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="descriptive-statistics.xlsx"`)
	if err := excel.WriteDescriptiveReport(w, resp.Summary, resp.Frequency); err != nil {
		writeError(w, err)
	}
}

type binomialRequest struct {
	Trials      int                    `json:"trials"`
	Probability float64                `json:"probability"`
	X           int                    `json:"x"`
	Mode        distribution.QueryMode `json:"mode"`
}

type discreteResponse struct {
	Result distribution.DiscreteResult `json:"result"`
	Chart  chart.Dataset               `json:"chart"`
}

func (a *App) handleBinomial(w http.ResponseWriter, r *http.Request) {
	var req binomialRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Trials > distribution.MaxTrials {
		writeError(w, apperrors.InvalidInputf("trial count must not exceed %d", distribution.MaxTrials))
		return
	}
	if req.Mode == "" {
		req.Mode = distribution.QueryExact
	}

	resp := discreteResponse{
		Result: distribution.Binomial(req.Trials, req.Probability, req.X, req.Mode),
		Chart:  chart.BinomialPMF(req.Trials, req.Probability, req.X),
	}
	a.record(r, models.KindBinomial, req, resp.Result)
	writeJSON(w, http.StatusOK, resp)
}

type poissonRequest struct {
	Lambda float64                `json:"lambda"`
	X      int                    `json:"x"`
	Mode   distribution.QueryMode `json:"mode"`
}

func (a *App) handlePoisson(w http.ResponseWriter, r *http.Request) {
	var req poissonRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Mode == "" {
		req.Mode = distribution.QueryExact
	}

	resp := discreteResponse{
		Result: distribution.Poisson(req.Lambda, req.X, req.Mode),
		Chart:  chart.PoissonPMF(req.Lambda, req.X),
	}
	a.record(r, models.KindPoisson, req, resp.Result)
	writeJSON(w, http.StatusOK, resp)
}

type normalRequest struct {
	Mu    float64                 `json:"mu"`
	Sigma float64                 `json:"sigma"`
	Mode  distribution.NormalMode `json:"mode"`

	// A is the single bound for tail modes and the lower bound for
	// between/outside. B is the upper bound, or the cumulative
	// probability in inverse mode.
	A float64 `json:"a"`
	B float64 `json:"b,omitempty"`
}

type normalResponse struct {
	Result *distribution.NormalResult `json:"result"`
	Curve  chart.Dataset              `json:"curve"`
}

func (a *App) handleNormal(w http.ResponseWriter, r *http.Request) {
	var req normalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	result, err := distribution.Normal(req.Mu, req.Sigma, req.Mode, req.A, req.B)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := normalResponse{
		Result: result,
		Curve:  chart.NormalCurve(req.Mu, req.Sigma),
	}
	a.record(r, models.KindNormal, req, result)
	writeJSON(w, http.StatusOK, resp)
}

func (a *App) handleHypothesis(w http.ResponseWriter, r *http.Request) {
	var cfg hypothesis.Config
	if err := decodeJSON(r, &cfg); err != nil {
		writeError(w, err)
		return
	}

	result, err := hypothesis.Run(cfg)
	if err != nil {
		writeError(w, err)
		return
	}

	a.record(r, models.KindHypothesis, cfg, result)
	writeJSON(w, http.StatusOK, result)
}

type countingRequest struct {
	N               int  `json:"n"`
	R               int  `json:"r"`
	WithReplacement bool `json:"with_replacement"`
}

type countingResponse struct {
	FactorialN   float64 `json:"factorial_n"`
	Combinations float64 `json:"combinations"`
	Permutations float64 `json:"permutations"`
}

func (a *App) handleCounting(w http.ResponseWriter, r *http.Request) {
	var req countingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	resp := countingResponse{FactorialN: probability.Factorial(req.N)}
	if req.WithReplacement {
		resp.Combinations = probability.CombinationsWithReplacement(req.N, req.R)
		resp.Permutations = probability.PermutationsWithReplacement(req.N, req.R)
	} else {
		resp.Combinations = probability.Combinations(req.N, req.R)
		resp.Permutations = probability.Permutations(req.N, req.R)
	}

	a.record(r, models.KindProbability, req, resp)
	writeJSON(w, http.StatusOK, resp)
}

func (a *App) handleTwoEvents(w http.ResponseWriter, r *http.Request) {
	var req probability.TwoEventInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	result, err := probability.TwoEvents(req)
	if err != nil {
		writeError(w, err)
		return
	}

	a.record(r, models.KindProbability, req, result)
	writeJSON(w, http.StatusOK, result)
}
