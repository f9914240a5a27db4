package rules

import (
	"testing"

	"github.com/drinkosaur/palmier/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestForRankIsTotal(t *testing.T) {
	for _, rank := range models.Ranks {
		rule := ForRank(rank)
		assert.NotEmpty(t, rule.Title, "rank %s has no title", rank)
		assert.NotEmpty(t, rule.Description, "rank %s has no description", rank)
		assert.NotEmpty(t, rule.Effect, "rank %s has no effect", rank)
	}
}

func TestForRankEffects(t *testing.T) {
	cases := map[models.Rank]Effect{
		models.RankAce:   EffectDrinkAll,
		models.RankTwo:   EffectDistribute,
		models.RankThree: EffectDistribute,
		models.RankFour:  EffectGameLoser,
		models.RankFive:  EffectGameLoser,
		models.RankSix:   EffectGameLoser,
		models.RankSeven: EffectStatusQuestion,
		models.RankEight: EffectDistribute,
		models.RankNine:  EffectGameLosers,
		models.RankTen:   EffectStatusFreeze,
		models.RankJack:  EffectGameLoser,
		models.RankQueen: EffectDrinkEveryone,
		models.RankKing:  EffectStatusRule,
	}

	for rank, effect := range cases {
		assert.Equal(t, effect, ForRank(rank).Effect, "rank %s", rank)
	}
}

func TestForRankDistributionAmounts(t *testing.T) {
	assert.Equal(t, 2, ForRank(models.RankTwo).Amount)
	assert.Equal(t, 3, ForRank(models.RankThree).Amount)
	assert.Equal(t, 8, ForRank(models.RankEight).Amount)

	// Non-distribute ranks carry no pool
	assert.Zero(t, ForRank(models.RankAce).Amount)
	assert.Zero(t, ForRank(models.RankKing).Amount)
}
