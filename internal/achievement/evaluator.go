package achievement

import (
	"github.com/osse101/Greenhouse_Go/internal/domain"
)

// CountMode selects the measure compared against plant_care counts
type CountMode string

// Count modes
const (
	// CountModeProxy counts plants whose level is above the starting level
	CountModeProxy CountMode = "proxy"
	// CountModeCounter uses the garden's per-action counters
	CountModeCounter CountMode = "counter"
)

// Evaluator decides which achievement definitions a garden newly qualifies for
type Evaluator struct {
	mode CountMode
}

// NewEvaluator creates an evaluator; unknown modes fall back to CountModeProxy
func NewEvaluator(mode CountMode) *Evaluator {
	if mode != CountModeCounter {
		mode = CountModeProxy
	}
	return &Evaluator{mode: mode}
}

// Evaluate returns the active definitions the post-action garden satisfies and
// that are not yet recorded on any plant, in definition order. It does not mutate.
func (e *Evaluator) Evaluate(defs []domain.Achievement, action domain.ActionType, g *domain.Garden) []domain.Achievement {
	if len(g.Plants) == 0 {
		// Nowhere to record an unlock
		return nil
	}

	unlocked := g.UnlockedAchievements()
	var out []domain.Achievement
	for _, def := range defs {
		if !def.IsActive || unlocked[def.Code] {
			continue
		}
		if e.satisfied(def.Criteria, action, g) {
			out = append(out, def)
			unlocked[def.Code] = true
		}
	}
	return out
}

func (e *Evaluator) satisfied(c domain.Criteria, action domain.ActionType, g *domain.Garden) bool {
	switch c.Kind {
	case domain.CriteriaPlantCare:
		if c.Action != action {
			return false
		}
		return e.careCount(action, g) >= atLeast(c.Count, 1)
	case domain.CriteriaLevelReach:
		return g.MaxPlantLevel() >= atLeast(c.Level, domain.MinPlantLevel)
	case domain.CriteriaCurrencyEarn:
		return g.Currency >= c.Currency
	default:
		return false
	}
}

func (e *Evaluator) careCount(action domain.ActionType, g *domain.Garden) int {
	switch e.mode {
	case CountModeCounter:
		return g.ActionCounts[action]
	default:
		n := 0
		for _, p := range g.Plants {
			if p.VirtualLevel > domain.MinPlantLevel {
				n++
			}
		}
		return n
	}
}

func atLeast(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}

// Record appends the unlocked codes to the first plant. Codes already present
// anywhere in the garden are skipped, so recording twice is harmless.
func Record(g *domain.Garden, unlocked []domain.Achievement) {
	if len(g.Plants) == 0 {
		return
	}
	for _, a := range unlocked {
		if g.HasAchievement(a.Code) {
			continue
		}
		g.Plants[0].Achievements = append(g.Plants[0].Achievements, a.Code)
	}
}
