package rules

import (
	"github.com/drinkosaur/palmier/internal/models"
)

// Effect classifies what a rank does when drawn
type Effect string

const (
	// EffectDrinkAll is the ace: the drawer downs their drink
	EffectDrinkAll Effect = "drink_all"

	// EffectDistribute hands out a pool of sip points (2, 3, 8)
	EffectDistribute Effect = "distribute"

	// EffectGameLoser is a physical game with a single loser (4, 5, 6, J)
	EffectGameLoser Effect = "game_loser"

	// EffectGameLosers is a round with any number of losers (9)
	EffectGameLosers Effect = "game_losers"

	// EffectStatusQuestion registers the question master (7)
	EffectStatusQuestion Effect = "status_question"

	// EffectStatusFreeze registers the freeze master (10)
	EffectStatusFreeze Effect = "status_freeze"

	// EffectStatusRule registers a king rule (K)
	EffectStatusRule Effect = "status_rule"

	// EffectDrinkEveryone makes the whole table drink (Q)
	EffectDrinkEveryone Effect = "drink_everyone"
)

// Rule is what a drawn rank means at the table
type Rule struct {
	// Title is the rule's display name
	Title string

	// Description tells the table what to do
	Description string

	// Effect classifies the rank for the engine
	Effect Effect

	// Amount is the distribution pool size, zero for non-distribute ranks
	Amount int
}

var table = map[models.Rank]Rule{
	models.RankAce:   {Title: "As", Description: "Cul Sec !", Effect: EffectDrinkAll},
	models.RankTwo:   {Title: "Deux", Description: "Distribue 2 gorgées.", Effect: EffectDistribute, Amount: 2},
	models.RankThree: {Title: "Trois", Description: "Distribue 3 gorgées.", Effect: EffectDistribute, Amount: 3},
	models.RankFour:  {Title: "Four to the Floor", Description: "Dernier avec le doigt en bas boit !", Effect: EffectGameLoser},
	models.RankFive:  {Title: "Five to the Sky", Description: "Dernier avec le doigt en haut boit !", Effect: EffectGameLoser},
	models.RankSix:   {Title: "Dans ma Valise", Description: "Jeu de mémoire. Le premier qui se trompe boit.", Effect: EffectGameLoser},
	models.RankSeven: {Title: "Maître de la Question", Description: "Si tu poses une question et qu'on répond, ils boivent.", Effect: EffectStatusQuestion},
	models.RankEight: {Title: "Huit", Description: "Distribue 8 gorgées.", Effect: EffectDistribute, Amount: 8},
	models.RankNine:  {Title: "Je n'ai jamais", Description: "Ceux qui l'ont déjà fait boivent.", Effect: EffectGameLosers},
	models.RankTen:   {Title: "Maître du Freeze", Description: "Si tu te figes, tout le monde doit te suivre. Le dernier boit.", Effect: EffectStatusFreeze},
	models.RankJack:  {Title: "Thème", Description: "Choisis un thème. Le premier qui sèche boit.", Effect: EffectGameLoser},
	models.RankQueen: {Title: "Dame", Description: "À la tienne ! Tout le monde boit.", Effect: EffectDrinkEveryone},
	models.RankKing:  {Title: "Roi", Description: "Invente une règle pour la partie.", Effect: EffectStatusRule},
}

// ForRank returns the table rule for a rank. Total over the 13 ranks.
func ForRank(rank models.Rank) Rule {
	return table[rank]
}
