// Package sips holds the pure sip and blood-alcohol arithmetic shared by the
// game engine and the presentation layers.
package sips

import (
	"fmt"
	"math"

	"github.com/drinkosaur/palmier/internal/models"
)

const (
	// unitsPerSip is the alcohol-unit weight of a single sip of beer
	unitsPerSip = 0.1

	// defaultWeightKG is assumed when a player gave no weight
	defaultWeightKG = 70

	// strengthDamping keeps strong alcohol a little punishing even after
	// the cost division
	strengthDamping = 0.7
)

// DifficultyMultiplier scales sip penalties by session difficulty
func DifficultyMultiplier(d models.Difficulty) float64 {
	switch d {
	case models.DifficultySoft:
		return 0.5
	case models.DifficultyHard:
		return 1.5
	case models.DifficultyGoated:
		return 2.5
	default:
		return 1.0
	}
}

// DistributionCost is how many points it costs to hand one sip to a drinker
// of the given type. Stronger drinks cost more points from the shared pool.
func DistributionCost(t models.AlcoholType) int {
	switch t {
	case models.AlcoholWine, models.AlcoholMixWeak:
		return 2
	case models.AlcoholMixStrong:
		return 3
	case models.AlcoholHard:
		return 4
	default:
		return 1
	}
}

// AlcoholCoefficient is the relative alcohol content per sip, beer = 1
func AlcoholCoefficient(t models.AlcoholType) float64 {
	switch t {
	case models.AlcoholWine:
		return 1.4
	case models.AlcoholMixWeak:
		return 1.5
	case models.AlcoholMixStrong:
		return 2.5
	case models.AlcoholHard:
		return 4.0
	default:
		return 1.0
	}
}

// DynamicSips converts a base penalty into an actual sip count. Difficulty
// raises the penalty; stronger alcohol lowers it, since each sip is heavier.
// Never returns less than 1.
func DynamicSips(baseSips int, difficulty models.Difficulty, alcoholType models.AlcoholType) int {
	result := float64(baseSips) * DifficultyMultiplier(difficulty)

	if cost := DistributionCost(alcoholType); cost > 1 {
		result = result / (float64(cost) * strengthDamping)
	}

	return int(math.Max(1, math.Round(result)))
}

// Widmark returns a simplified blood-alcohol estimate in g/L, formatted with
// two decimals. A scoreboard gimmick, not a medical number.
func Widmark(player *models.Player) string {
	totalUnits := float64(player.SipsTaken) * unitsPerSip * AlcoholCoefficient(player.AlcoholType)

	weight := player.Weight
	if weight <= 0 {
		weight = defaultWeightKG
	}

	r := 0.7
	if player.Gender == models.GenderFemale {
		r = 0.6
	}

	grams := totalUnits * 10
	permille := grams / (float64(weight) * r)

	return fmt.Sprintf("%.2f", permille)
}
