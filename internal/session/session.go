// Package session drives a live city. It owns the grid and stats, applies
// player actions, advances the simulation clock, and feeds the news log.
// All mutation goes through one mutex so the TUI and the autosave loop can
// share a session safely.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/quintrel/gridrealm/internal/advisor"
	"github.com/quintrel/gridrealm/internal/core"
	"github.com/quintrel/gridrealm/internal/sim"
	"github.com/quintrel/gridrealm/internal/storage"
)

// newsLimit caps the retained news log.
const newsLimit = 50

// headlineEvery controls how often the advisor volunteers a headline.
const headlineEvery = 4 // days

// Session is a running city. Create one with New and advance it with Tick.
type Session struct {
	mu sync.Mutex

	name    string
	grid    sim.Grid
	stats   sim.CityStats
	catalog *sim.Catalog
	tuning  sim.Tuning

	advisor advisor.Advisor
	goal    *advisor.Goal
	news    []advisor.NewsItem

	store  *storage.Store
	logger *log.Logger

	tickInterval time.Duration
	paused       bool
}

// Options configures a new session. Store and Advisor may be nil for
// headless runs without persistence or quests.
type Options struct {
	Name         string
	Grid         sim.Grid
	Stats        sim.CityStats
	Catalog      *sim.Catalog
	Tuning       sim.Tuning
	Advisor      advisor.Advisor
	Store        *storage.Store
	Logger       *log.Logger
	TickInterval time.Duration
}

// New creates a session from the given options.
func New(opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = 2500 * time.Millisecond
	}
	s := &Session{
		name:         opts.Name,
		grid:         opts.Grid,
		stats:        opts.Stats,
		catalog:      opts.Catalog,
		tuning:       opts.Tuning,
		advisor:      opts.Advisor,
		store:        opts.Store,
		logger:       opts.Logger,
		tickInterval: opts.TickInterval,
	}
	if s.advisor != nil {
		if goal, err := s.advisor.NextGoal(s.grid, s.stats); err == nil {
			s.goal = goal
		}
	}
	return s
}

// TickInterval returns the configured simulation interval.
func (s *Session) TickInterval() time.Duration {
	return s.tickInterval
}

// Snapshot returns deep copies of the current grid and stats.
func (s *Session) Snapshot() (sim.Grid, sim.CityStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Clone(), s.stats
}

// Paused reports whether the simulation clock is stopped.
func (s *Session) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// TogglePause flips the pause state and returns the new value.
func (s *Session) TogglePause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = !s.paused
	return s.paused
}

// Tick advances the city by one day unless paused. It also settles the
// current goal and lets the advisor publish headlines.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paused {
		return
	}

	s.grid, s.stats = sim.Tick(s.grid, s.stats, s.catalog, s.tuning)
	s.settleGoal()

	if s.advisor != nil && s.stats.Day%headlineEvery == 0 {
		if item, err := s.advisor.NewsEvent(s.stats, ""); err == nil && item != nil {
			s.pushNews(*item)
		}
	}
}

// settleGoal pays out and replaces the active goal once its target is met.
// Caller must hold the mutex.
func (s *Session) settleGoal() {
	if s.goal == nil || s.goal.Completed {
		return
	}
	if !advisor.Completed(*s.goal, s.grid, s.stats) {
		return
	}

	s.goal.Completed = true
	s.stats.Money += s.goal.Reward
	s.logger.Info("quest completed", "goal", s.goal.Description, "reward", s.goal.Reward)
	s.pushNews(advisor.NewsItem{
		Text:      fmt.Sprintf("Quest complete: %s (+%d gold)", s.goal.Description, s.goal.Reward),
		Category:  advisor.CategoryPositive,
		Timestamp: time.Now(),
	})

	if next, err := s.advisor.NextGoal(s.grid, s.stats); err == nil {
		s.goal = next
	}
}

// Apply performs a tile action and records the outcome in the news log.
func (s *Session) Apply(action sim.Action) sim.ActionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := sim.Apply(s.grid, s.stats, s.catalog, s.tuning, action)
	s.grid = resp.Grid
	s.stats = resp.Stats

	if resp.Message != "" {
		s.pushNews(advisor.NewsItem{
			Text:      resp.Message,
			Category:  newsCategory(resp.Severity),
			Timestamp: time.Now(),
		})
	}
	if !resp.Success {
		s.logger.Debug("action rejected", "kind", action.Kind, "code", resp.Code)
	}
	return resp
}

// SetWeather changes the ambient weather. The simulation never changes
// weather on its own; it is a session-level command.
func (s *Session) SetWeather(w sim.Weather) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stats.Weather == w {
		return
	}
	s.stats.Weather = w
	s.pushNews(advisor.NewsItem{
		Text:      fmt.Sprintf("The skies shift. Weather is now %s.", w),
		Category:  advisor.CategoryNeutral,
		Timestamp: time.Now(),
	})
}

// SetTaxRate adjusts the income multiplier, clamped to [0, 2].
func (s *Session) SetTaxRate(rate float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.TaxRate = core.ClampF(rate, 0, 2)
}

// Goal returns a copy of the active goal, or nil if there is none.
func (s *Session) Goal() *advisor.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.goal == nil {
		return nil
	}
	g := *s.goal
	return &g
}

// News returns the news log, newest first.
func (s *Session) News() []advisor.NewsItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]advisor.NewsItem, len(s.news))
	copy(out, s.news)
	return out
}

// pushNews prepends an item and trims the log. Caller must hold the mutex.
func (s *Session) pushNews(item advisor.NewsItem) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	s.news = append([]advisor.NewsItem{item}, s.news...)
	if len(s.news) > newsLimit {
		s.news = s.news[:newsLimit]
	}
}

// Save persists the city under the session name.
func (s *Session) Save() error {
	s.mu.Lock()
	grid := s.grid.Clone()
	stats := s.stats
	s.mu.Unlock()

	if s.store == nil {
		return fmt.Errorf("session: no store configured")
	}
	if err := s.store.SaveCity(s.name, grid, stats); err != nil {
		return fmt.Errorf("session: save failed: %w", err)
	}
	s.logger.Info("city saved", "name", s.name, "day", stats.Day)
	return nil
}

// newsCategory maps an action severity onto a news category.
func newsCategory(sev sim.Severity) advisor.Category {
	switch sev {
	case sim.SeverityPositive:
		return advisor.CategoryPositive
	case sim.SeverityNegative:
		return advisor.CategoryNegative
	default:
		return advisor.CategoryNeutral
	}
}
