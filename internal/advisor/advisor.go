// Package advisor generates quests and news for the city. The simulation
// never depends on it: advisors consume read-only snapshots of the grid and
// stats and return optional goal/news objects for the presentation layer.
// An LLM-backed advisor can implement the same interface; the scripted one
// here keeps the game fully offline and deterministic.
package advisor

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/quintrel/gridrealm/internal/sim"
)

// TargetType is the metric a goal asks the player to reach.
type TargetType string

const (
	TargetPopulation    TargetType = "population"
	TargetMoney         TargetType = "money"
	TargetBuildingCount TargetType = "building_count"
	TargetHappiness     TargetType = "happiness"
)

// Goal is a quest issued to the player. Completion is a plain threshold
// comparison (>=) against the relevant stat, checked by the session.
type Goal struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Target      TargetType       `json:"targetType"`
	TargetValue int              `json:"targetValue"`
	Building    sim.BuildingType `json:"buildingType,omitempty"` // For building_count goals
	Reward      int              `json:"reward"`
	Completed   bool             `json:"completed"`
}

// Category classifies a news item for display.
type Category string

const (
	CategoryPositive Category = "positive"
	CategoryNegative Category = "negative"
	CategoryNeutral  Category = "neutral"
	CategoryUrgent   Category = "urgent"
)

// NewsItem is one headline for the city's news feed.
type NewsItem struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Category  Category  `json:"category"`
	Timestamp time.Time `json:"timestamp"`
}

// Advisor produces goals and news from city snapshots.
type Advisor interface {
	// NextGoal proposes a quest for the current city, or nil if the
	// advisor has nothing to say.
	NextGoal(grid sim.Grid, stats sim.CityStats) (*Goal, error)

	// NewsEvent produces a headline reacting to the current city, or nil.
	NewsEvent(stats sim.CityStats, hint string) (*NewsItem, error)
}

// Completed reports whether the goal's threshold is met by the snapshot.
// All target types compare with >=.
func Completed(g Goal, grid sim.Grid, stats sim.CityStats) bool {
	switch g.Target {
	case TargetPopulation:
		return stats.Population >= g.TargetValue
	case TargetMoney:
		return stats.Money >= g.TargetValue
	case TargetBuildingCount:
		return grid.Count(g.Building) >= g.TargetValue
	case TargetHappiness:
		return stats.Happiness >= g.TargetValue
	default:
		return false
	}
}

// Scripted is a deterministic offline advisor. Given the same seed and the
// same snapshots it issues the same quests and headlines.
type Scripted struct {
	rng *rand.Rand
}

// NewScripted creates a scripted advisor with the given RNG seed.
func NewScripted(seed int64) *Scripted {
	return &Scripted{rng: rand.New(rand.NewSource(seed))}
}

// NextGoal scales a quest off the city's current numbers so it stays
// challenging but reachable.
func (s *Scripted) NextGoal(grid sim.Grid, stats sim.CityStats) (*Goal, error) {
	reward := 500 + s.rng.Intn(1501) // 500-2000

	switch s.rng.Intn(4) {
	case 0:
		target := stats.Population + 25 + s.rng.Intn(25)
		return &Goal{
			ID:          uuid.NewString(),
			Description: fmt.Sprintf("The Royal Wizard foresees %d souls dwelling in your realm.", target),
			Target:      TargetPopulation,
			TargetValue: target,
			Reward:      reward,
		}, nil
	case 1:
		target := stats.Money + 1000 + s.rng.Intn(2000)
		return &Goal{
			ID:          uuid.NewString(),
			Description: fmt.Sprintf("Fill the royal coffers to %dg.", target),
			Target:      TargetMoney,
			TargetValue: target,
			Reward:      reward,
		}, nil
	case 2:
		target := grid.Count(sim.BuildingCottage) + 2 + s.rng.Intn(3)
		return &Goal{
			ID:          uuid.NewString(),
			Description: fmt.Sprintf("Raise %d cottages for the wandering folk.", target),
			Target:      TargetBuildingCount,
			TargetValue: target,
			Building:    sim.BuildingCottage,
			Reward:      reward,
		}, nil
	default:
		target := min(100, stats.Happiness+10)
		return &Goal{
			ID:          uuid.NewString(),
			Description: fmt.Sprintf("Lift the realm's spirits to %d contentment.", target),
			Target:      TargetHappiness,
			TargetValue: target,
			Reward:      reward,
		}, nil
	}
}

// NewsEvent reacts to the most noteworthy condition in the snapshot.
func (s *Scripted) NewsEvent(stats sim.CityStats, hint string) (*NewsItem, error) {
	item := func(text string, cat Category) (*NewsItem, error) {
		return &NewsItem{
			ID:        uuid.NewString(),
			Text:      text,
			Category:  cat,
			Timestamp: time.Now(),
		}, nil
	}

	switch {
	case stats.Money < 0:
		return item("The treasury runs dry! Creditors circle the castle gates.", CategoryUrgent)
	case stats.ManaUsage > 0 && stats.ManaUsage >= stats.ManaSupply:
		return item("The ley lines strain: every drop of mana is spoken for.", CategoryNegative)
	case stats.Weather == sim.WeatherStorm:
		return item("A storm rages over the realm. Stay indoors, good folk.", CategoryNegative)
	case stats.Happiness >= 90:
		return item("Minstrels sing of the happiest realm in all the land.", CategoryPositive)
	case stats.Happiness <= 30 && stats.Population > 0:
		return item("Grumblings in the tavern: the folk grow restless.", CategoryNegative)
	case hint != "":
		return item(hint, CategoryNeutral)
	default:
		return item(fmt.Sprintf("Day %d dawns quietly over the realm.", stats.Day), CategoryNeutral)
	}
}

var _ Advisor = (*Scripted)(nil)
