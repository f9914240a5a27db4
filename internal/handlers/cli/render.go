package cli

import (
	"context"
	"fmt"

	"github.com/drinkosaur/palmier/internal/models"
	"github.com/drinkosaur/palmier/internal/services/game"
)

var suitSymbols = map[models.Suit]string{
	models.SuitHearts:   "♥",
	models.SuitDiamonds: "♦",
	models.SuitClubs:    "♣",
	models.SuitSpades:   "♠",
}

func (h *Handler) renderCard(output *game.DrawCardOutput) {
	fmt.Fprintf(h.out, "\n  %s%s — %s\n", output.Card.Rank, suitSymbols[output.Card.Suit], output.Rule.Title)
	fmt.Fprintf(h.out, "  %s\n", output.Rule.Description)

	if output.EveryoneDrinks {
		fmt.Fprintln(h.out, "  Tout le monde boit !")
	}

	fmt.Fprintf(h.out, "  (%d cartes restantes — 'ok' pour continuer)\n\n", output.CardsLeft)
}

func (h *Handler) renderPending(action *models.PendingAction) {
	switch action.Type {
	case models.ActionDistribute:
		fmt.Fprintf(h.out, "Distribue %d point(s) : 'tap <joueur>' pour donner, 'reset' pour recommencer.\n", action.SipsRemaining)
	case models.ActionSelectLoser:
		fmt.Fprintf(h.out, "%s — 'tap <joueur>' pour désigner le perdant.\n", action.CardName)
	case models.ActionMultipleLosers:
		fmt.Fprintf(h.out, "%s — 'tap <joueur>' pour chaque perdant, puis 'validate'.\n", action.CardName)
	case models.ActionAceCheck:
		fmt.Fprintln(h.out, "Cul sec ! 'downed' si le verre est fini, sinon 'drank <gorgées>'.")
	case models.ActionMathPenalty:
		fmt.Fprintln(h.out, "Pénalité : 'downed' si le verre est fini, sinon 'drank <gorgées>'.")
	default:
		// King rule, question master and freeze traps all pick a victim
		fmt.Fprintln(h.out, "Règle invoquée — 'tap <joueur>' pour désigner qui boit.")
	}
}

func (h *Handler) renderUpdates(ctx context.Context, updates []game.SipUpdate) {
	state, err := h.gameService.GetGame(ctx, &game.GetGameInput{GameID: h.gameID})
	if err != nil {
		h.printServiceError(err)
		return
	}

	for _, update := range updates {
		name := update.TargetID
		if p := state.Game.PlayerByID(update.TargetID); p != nil {
			name = p.Name
		}
		fmt.Fprintf(h.out, "  %s boit %d gorgée(s)\n", name, update.Sips)
	}
}

func (h *Handler) printCurrentPlayer(ctx context.Context) {
	state, err := h.gameService.GetGame(ctx, &game.GetGameInput{GameID: h.gameID})
	if err != nil {
		h.printServiceError(err)
		return
	}

	current := state.Game.CurrentPlayer()
	if current == nil {
		fmt.Fprintln(h.out, "Au suivant ! ('draw' pour tirer)")
		return
	}

	fmt.Fprintf(h.out, "À toi, %s ! ('draw' pour tirer)\n", current.Name)
}

func (h *Handler) printRules(ctx context.Context) {
	state, err := h.gameService.GetGame(ctx, &game.GetGameInput{GameID: h.gameID})
	if err != nil {
		h.printServiceError(err)
		return
	}

	if len(state.Game.ActiveRules) == 0 {
		fmt.Fprintln(h.out, "Aucune règle active.")
		return
	}

	for i, rule := range state.Game.ActiveRules {
		owner := rule.PlayerID
		if p := state.Game.PlayerByID(rule.PlayerID); p != nil {
			owner = p.Name
		}
		fmt.Fprintf(h.out, "  %d. %s (%s)\n", i+1, ruleLabel(rule.Type), owner)
	}
}

func ruleLabel(ruleType models.RuleType) string {
	switch ruleType {
	case models.RuleTypeQuestionMaster:
		return "Maître de la Question"
	case models.RuleTypeFreezeMaster:
		return "Maître du Freeze"
	default:
		return "Règle du Roi"
	}
}

func (h *Handler) printPlayers(ctx context.Context) {
	state, err := h.gameService.GetGame(ctx, &game.GetGameInput{GameID: h.gameID})
	if err != nil {
		h.printServiceError(err)
		return
	}

	for i, p := range state.Game.Players {
		marker := "  "
		if i == state.Game.CurrentPlayerIndex {
			marker = "> "
		}
		fmt.Fprintf(h.out, "%s%d. %s — %d gorgée(s) bue(s), %d donnée(s)\n",
			marker, i+1, p.Name, p.SipsTaken, p.SipsGiven)
	}
}

func (h *Handler) printScoreboard(ctx context.Context) {
	output, err := h.gameService.GetScoreboard(ctx, &game.GetScoreboardInput{GameID: h.gameID})
	if err != nil {
		h.printServiceError(err)
		return
	}

	if len(output.Entries) == 0 {
		return
	}

	fmt.Fprintln(h.out, "\n  --- Classement ---")
	for i, entry := range output.Entries {
		fmt.Fprintf(h.out, "  %d. %s — %d bue(s), %d donnée(s), %s g/L estimé%s\n",
			i+1, entry.PlayerName, entry.SipsTaken, entry.SipsGiven,
			entry.BloodAlcohol, awardSuffix(entry.Awards))
	}
	fmt.Fprintln(h.out)
}

func awardSuffix(awards []game.Award) string {
	if len(awards) == 0 {
		return ""
	}

	suffix := ""
	for _, award := range awards {
		switch award {
		case game.AwardSimonDunce:
			suffix += " 🏆 Cancre du Simon"
		case game.AwardMathDunce:
			suffix += " 🏆 Cancre du Calcul"
		case game.AwardMostGenerous:
			suffix += " 🏆 Plus généreux"
		}
	}
	return suffix
}

func (h *Handler) printHelp() {
	fmt.Fprint(h.out, `Commandes :
  draw (d)        tirer une carte
  ok              appliquer la carte et passer la main
  tap <joueur>    désigner un joueur (nom ou numéro)
  reset           recommencer la distribution en cours
  validate (v)    confirmer les perdants sélectionnés
  downed          déclarer un cul sec
  drank <n>       déclarer n gorgées bues
  rules           lister les règles actives
  rule <n>        invoquer une règle active
  win / fail      résultat du mini-jeu en cours
  players         afficher les joueurs
  score (s)       afficher le classement
  quit (q)        terminer la partie
`)
}
