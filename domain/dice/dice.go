// Package dice implements the dice simulator: uniform faces in [1,6] per
// die, independent across dice and rolls, with a capped rolling history
// for empirical frequency display.
package dice

import (
	"math/rand"
	"sync"
	"time"

	"github.com/mondragon-developer/statools/internal/errors"

	"github.com/google/uuid"
)

const (
	Faces = 6

	// MaxDice bounds the number of dice per roll.
	MaxDice = 10

	// DefaultHistory is the rolling-history window size.
	DefaultHistory = 100
)

// Roll is a single throw of every die in the simulator.
type Roll struct {
	ID    uuid.UUID `json:"id"`
	Faces []int     `json:"faces"`
	Total int       `json:"total"`
	At    time.Time `json:"at"`
}

// Frequencies is the empirical face distribution over the history window.
type Frequencies struct {
	Counts    [Faces]int     `json:"counts"` // Counts[i] is occurrences of face i+1
	Total     int            `json:"total"`  // Total dice thrown in the window
	Relative  [Faces]float64 `json:"relative"`
	RollCount int            `json:"roll_count"`
}

// Roller simulates rolls of a fixed number of dice and retains a capped
// window of past rolls.
type Roller struct {
	mu      sync.Mutex
	dice    int
	rng     *rand.Rand
	history []Roll
	cap     int
}

// NewRoller creates a roller for the given number of dice seeded from the
// clock. historyCap ≤ 0 selects DefaultHistory.
func NewRoller(dice, historyCap int) (*Roller, error) {
	return NewSeededRoller(dice, historyCap, time.Now().UnixNano())
}

// NewSeededRoller creates a deterministic roller. The simulator's tests
// and replays rely on the seed producing an identical roll sequence.
func NewSeededRoller(dice, historyCap int, seed int64) (*Roller, error) {
	if dice < 1 || dice > MaxDice {
		return nil, errors.InvalidInputf("dice count must be between 1 and %d", MaxDice)
	}
	if historyCap <= 0 {
		historyCap = DefaultHistory
	}
	return &Roller{
		dice: dice,
		rng:  rand.New(rand.NewSource(seed)),
		cap:  historyCap,
	}, nil
}

// Dice returns the number of dice thrown per roll.
func (r *Roller) Dice() int {
	return r.dice
}

// Roll throws every die once and records the result in the history
// window, evicting the oldest roll when the window is full.
func (r *Roller) Roll() Roll {
	r.mu.Lock()
	defer r.mu.Unlock()

	roll := Roll{
		ID:    uuid.New(),
		Faces: make([]int, r.dice),
		At:    time.Now(),
	}
	for i := range roll.Faces {
		face := r.rng.Intn(Faces) + 1
		roll.Faces[i] = face
		roll.Total += face
	}

	r.history = append(r.history, roll)
	if len(r.history) > r.cap {
		r.history = r.history[len(r.history)-r.cap:]
	}

	return roll
}

// History returns a copy of the rolling window, oldest first.
func (r *Roller) History() []Roll {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Roll, len(r.history))
	copy(out, r.history)
	return out
}

// Frequencies tallies the empirical face distribution over the window.
func (r *Roller) Frequencies() Frequencies {
	r.mu.Lock()
	defer r.mu.Unlock()

	freq := Frequencies{RollCount: len(r.history)}
	for _, roll := range r.history {
		for _, face := range roll.Faces {
			freq.Counts[face-1]++
			freq.Total++
		}
	}
	if freq.Total > 0 {
		for i, c := range freq.Counts {
			freq.Relative[i] = float64(c) / float64(freq.Total)
		}
	}
	return freq
}

// Reset clears the history window.
func (r *Roller) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = nil
}
