package sips

import (
	"testing"

	"github.com/drinkosaur/palmier/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDifficultyMultiplier(t *testing.T) {
	assert.Equal(t, 0.5, DifficultyMultiplier(models.DifficultySoft))
	assert.Equal(t, 1.0, DifficultyMultiplier(models.DifficultyMedium))
	assert.Equal(t, 1.5, DifficultyMultiplier(models.DifficultyHard))
	assert.Equal(t, 2.5, DifficultyMultiplier(models.DifficultyGoated))
}

func TestDistributionCostIncreasesWithStrength(t *testing.T) {
	assert.Equal(t, 1, DistributionCost(models.AlcoholBeer))
	assert.Equal(t, 2, DistributionCost(models.AlcoholWine))
	assert.Equal(t, 2, DistributionCost(models.AlcoholMixWeak))
	assert.Equal(t, 3, DistributionCost(models.AlcoholMixStrong))
	assert.Equal(t, 4, DistributionCost(models.AlcoholHard))
}

func TestDynamicSips(t *testing.T) {
	// Beer at medium difficulty takes the base penalty unchanged
	assert.Equal(t, 3, DynamicSips(3, models.DifficultyMedium, models.AlcoholBeer))

	// Hard liquor divides the penalty: round(3 / 2.8) = 1
	assert.Equal(t, 1, DynamicSips(3, models.DifficultyMedium, models.AlcoholHard))

	// Goated difficulty on hard liquor still clamps at the minimum:
	// round(2.5 / 2.8) = 1
	assert.Equal(t, 1, DynamicSips(1, models.DifficultyGoated, models.AlcoholHard))

	// Goated beer scales up: round(3 * 2.5) = 8
	assert.Equal(t, 8, DynamicSips(3, models.DifficultyGoated, models.AlcoholBeer))

	// Soft wine: round(0.5 * 3 / 1.4) = 1
	assert.Equal(t, 1, DynamicSips(3, models.DifficultySoft, models.AlcoholWine))
}

func TestDynamicSipsNeverBelowOne(t *testing.T) {
	for _, alcohol := range []models.AlcoholType{
		models.AlcoholBeer, models.AlcoholWine, models.AlcoholMixWeak,
		models.AlcoholMixStrong, models.AlcoholHard,
	} {
		for _, diff := range []models.Difficulty{
			models.DifficultySoft, models.DifficultyMedium,
			models.DifficultyHard, models.DifficultyGoated,
		} {
			assert.GreaterOrEqual(t, DynamicSips(1, diff, alcohol), 1)
		}
	}
}

func TestWidmark(t *testing.T) {
	// 10 beer sips, 70kg male: 10 * 0.1 * 1.0 * 10 / (70 * 0.7)
	p := &models.Player{
		SipsTaken:   10,
		AlcoholType: models.AlcoholBeer,
		Weight:      70,
		Gender:      models.GenderMale,
	}
	assert.Equal(t, "0.20", Widmark(p))

	// 5 wine sips, 60kg female: 5 * 0.1 * 1.4 * 10 / (60 * 0.6)
	p = &models.Player{
		SipsTaken:   5,
		AlcoholType: models.AlcoholWine,
		Weight:      60,
		Gender:      models.GenderFemale,
	}
	assert.Equal(t, "0.19", Widmark(p))
}

func TestWidmarkDefaults(t *testing.T) {
	// Missing weight falls back to 70kg, missing gender to the male constant
	withDefaults := &models.Player{
		SipsTaken:   10,
		AlcoholType: models.AlcoholBeer,
	}
	explicit := &models.Player{
		SipsTaken:   10,
		AlcoholType: models.AlcoholBeer,
		Weight:      70,
		Gender:      models.GenderMale,
	}
	assert.Equal(t, Widmark(explicit), Widmark(withDefaults))
}

func TestWidmarkZeroSips(t *testing.T) {
	p := &models.Player{AlcoholType: models.AlcoholHard, Weight: 80}
	assert.Equal(t, "0.00", Widmark(p))
}
