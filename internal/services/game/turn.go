package game

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/drinkosaur/palmier/internal/models"
	profileRepo "github.com/drinkosaur/palmier/internal/repositories/profile"
	sessionRepo "github.com/drinkosaur/palmier/internal/repositories/session"
)

// registerExclusiveRule hands a single-slot rule type to a new owner,
// evicting the previous holder. Callers must hold the mutex.
func (s *service) registerExclusiveRule(game *models.Game, ruleType models.RuleType, playerID string, now time.Time) {
	kept := make([]*models.ActiveRule, 0, len(game.ActiveRules))
	for _, r := range game.ActiveRules {
		if r.Type != ruleType {
			kept = append(kept, r)
		}
	}

	game.ActiveRules = append(kept, &models.ActiveRule{
		ID:           s.uuider.NewUUID(),
		PlayerID:     playerID,
		Type:         ruleType,
		RegisteredAt: now,
	})
}

// resolvePending commits the sip updates of the pending action, clears it
// and advances the turn. Returns the mini-game launched on advance, if any.
// Callers must hold the mutex.
func (s *service) resolvePending(ctx context.Context, game *models.Game, updates []SipUpdate) models.MiniGame {
	action := game.PendingAction

	// Sip mutations commit atomically here, never speculatively
	total := 0
	for _, update := range updates {
		target := game.PlayerByID(update.TargetID)
		if target == nil {
			// Stale reference; the rest of the batch still applies
			continue
		}
		target.SipsTaken += update.Sips
		total += update.Sips
	}

	// Whoever opened the action is credited with everything handed out.
	// For self-report actions this doubles onto the initiator's own
	// counters, which is how the original game keeps score.
	if action != nil && total > 0 {
		if initiator := game.PlayerByID(action.InitiatorID); initiator != nil {
			initiator.SipsGiven += total
		}
	}

	// A freeze trap is single-use: firing it retires the freeze master
	if action != nil && action.Type == models.ActionFreezeTrap {
		kept := make([]*models.ActiveRule, 0, len(game.ActiveRules))
		for _, r := range game.ActiveRules {
			if r.Type == models.RuleTypeFreezeMaster && r.PlayerID == action.InitiatorID {
				continue
			}
			kept = append(kept, r)
		}
		game.ActiveRules = kept
	}

	game.PendingAction = nil
	game.Distribution = map[string]int{}

	return s.advanceTurn(game)
}

// advanceTurn moves the table card to the discard pile, passes the turn and
// rolls for a mini-game intermission. Callers must hold the mutex.
func (s *service) advanceTurn(game *models.Game) models.MiniGame {
	if game.CurrentCard != nil {
		game.DiscardPile = append(game.DiscardPile, *game.CurrentCard)
		game.CurrentCard = nil
	}
	game.IsCardFlipped = false

	if len(game.Players) > 0 {
		game.CurrentPlayerIndex = (game.CurrentPlayerIndex + 1) % len(game.Players)
	} else {
		game.CurrentPlayerIndex = 0
	}
	game.UpdatedAt = s.clock.Now()

	if game.Settings.Mode == models.GameModeQuick {
		return models.MiniGameNone
	}

	// At most one intermission per turn; the memory game rolls first and
	// takes priority over the arithmetic game
	if game.Settings.SimonEnabled && s.random.Float64() > simonTriggerThreshold {
		game.ActiveMiniGame = models.MiniGameSimon
	} else if game.Settings.MathEnabled {
		game.ActiveMiniGame = models.MiniGameMath
	}

	return game.ActiveMiniGame
}

// endGame marks the session over and hands the final stats to the
// persistence sink. Persistence failures are logged, never surfaced; the
// session is over either way. Callers must hold the mutex.
func (s *service) endGame(ctx context.Context, game *models.Game) {
	game.GameOver = true
	game.PendingAction = nil
	game.ActiveMiniGame = models.MiniGameNone
	game.UpdatedAt = s.clock.Now()

	s.log.WithFields(logrus.Fields{
		"game_id": game.ID,
		"drawn":   len(game.DiscardPile),
	}).Info("session ended")

	if len(game.Players) == 0 {
		// Quick sessions carry no stats worth archiving
		return
	}

	s.persistSession(ctx, game)
}

// persistSession archives the session and bumps lifetime stats for every
// player with an identity
func (s *service) persistSession(ctx context.Context, game *models.Game) {
	results := make([]models.PlayerResult, 0, len(game.Players))
	for _, p := range game.Players {
		results = append(results, models.PlayerResult{
			Name:          p.Name,
			AlcoholType:   p.AlcoholType,
			SipsTaken:     p.SipsTaken,
			SipsGiven:     p.SipsGiven,
			SimonFailures: p.SimonFailures,
			MathFailures:  p.MathFailures,
			UID:           p.UID,
		})
	}

	err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: &models.Session{
			ID:         game.ID,
			HostID:     game.HostID,
			Settings:   game.Settings,
			Players:    results,
			FinishedAt: s.clock.Now(),
		},
	})
	if err != nil {
		s.log.WithError(err).WithField("game_id", game.ID).Error("failed to archive session")
	}

	for _, p := range game.Players {
		if p.UID == "" {
			continue
		}

		err := s.profileRepo.IncrementStats(ctx, &profileRepo.IncrementStatsInput{
			UID:           p.UID,
			TotalGames:    1,
			TotalSips:     p.SipsTaken,
			SipsGiven:     p.SipsGiven,
			SimonFailures: p.SimonFailures,
			MathFailures:  p.MathFailures,
		})
		if err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{
				"game_id": game.ID,
				"uid":     p.UID,
			}).Error("failed to update lifetime stats")
		}
	}
}
