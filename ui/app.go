package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mondragon-developer/statools/app"
	"github.com/mondragon-developer/statools/domain/dice"
	"github.com/mondragon-developer/statools/ports"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// App represents the UI application
type App struct {
	router       *chi.Mux
	store        ports.CalculationStore
	templates    *template.Template
	historyLimit int

	// Dice simulator state. The roller is swapped out when the client
	// changes the dice count, which also resets the rolling history.
	diceMu sync.Mutex
	roller *dice.Roller

	// Workbook overview computed at startup when DATA_FILE is set.
	profiles []app.ColumnProfile
}

// Config holds UI application configuration
type Config struct {
	Store        ports.CalculationStore
	HistoryLimit int
	Profiles     []app.ColumnProfile
}

// NewApp creates a new UI application
func NewApp(config Config) (*App, error) {
	funcMap := template.FuncMap{
		"mul": func(a, b float64) float64 { return a * b },
		"add": func(a, b int) int { return a + b },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	roller, err := dice.NewRoller(2, dice.DefaultHistory)
	if err != nil {
		return nil, fmt.Errorf("failed to create dice roller: %w", err)
	}

	if config.HistoryLimit < 1 {
		config.HistoryLimit = 100
	}

	a := &App{
		router:       chi.NewRouter(),
		store:        config.Store,
		templates:    templates,
		historyLimit: config.HistoryLimit,
		roller:       roller,
		profiles:     config.Profiles,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	// Serve static files
	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", staticFS)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	// Pages: the landing page and one route per calculator
	a.router.Get("/", a.handleIndex)
	a.router.Get("/calculators/{kind}", a.handleCalculatorPage)

	// Calculation API
	a.router.Post("/api/descriptive", a.handleDescriptive)
	a.router.Post("/api/descriptive/export", a.handleDescriptiveExport)
	a.router.Post("/api/distributions/binomial", a.handleBinomial)
	a.router.Post("/api/distributions/poisson", a.handlePoisson)
	a.router.Post("/api/distributions/normal", a.handleNormal)
	a.router.Post("/api/hypothesis", a.handleHypothesis)
	a.router.Post("/api/probability/counting", a.handleCounting)
	a.router.Post("/api/probability/events", a.handleTwoEvents)

	// Dice simulator
	a.router.Post("/api/dice/roll", a.handleDiceRoll)
	a.router.Get("/api/dice/frequencies", a.handleDiceFrequencies)
	a.router.Post("/api/dice/reset", a.handleDiceReset)

	// Calculation history and dataset overview
	a.router.Get("/api/history", a.handleHistory)
	a.router.Get("/api/profiles", a.handleProfiles)
}

// Start starts the HTTP server
func (a *App) Start(addr string) error {
	log.Printf("[Server] Starting statools UI server on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Router exposes the handler tree for tests.
func (a *App) Router() http.Handler {
	return a.router
}
