package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/drinkosaur/palmier/internal/common/clock"
	"github.com/drinkosaur/palmier/internal/common/rng"
	"github.com/drinkosaur/palmier/internal/common/uuid"
	"github.com/drinkosaur/palmier/internal/deck"
	"github.com/drinkosaur/palmier/internal/models"
	profileRepo "github.com/drinkosaur/palmier/internal/repositories/profile"
	sessionRepo "github.com/drinkosaur/palmier/internal/repositories/session"
	"github.com/drinkosaur/palmier/internal/rules"
	"github.com/drinkosaur/palmier/internal/sips"
)

const (
	// defaultMaxPlayers caps the table when neither settings nor config say
	defaultMaxPlayers = 20

	// simonTriggerThreshold gates the memory mini-game roll after a turn
	simonTriggerThreshold = 0.8

	// aceCompletedSips is the flat value of a downed drink
	aceCompletedSips = 10

	// loserBaseSips is the base penalty for a single loser or a trap
	loserBaseSips = 3

	// simonPenaltyBaseSips is the base penalty for a failed memory game
	simonPenaltyBaseSips = 5
)

// service implements the Service interface
type service struct {
	config      *Config
	sessionRepo sessionRepo.Repository
	profileRepo profileRepo.Repository
	deckFactory deck.Factory
	random      rng.Random
	clock       clock.Clock
	uuider      uuid.UUID
	log         *logrus.Logger

	mu    sync.Mutex
	games map[string]*models.Game
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.ProfileRepo == nil {
		return nil, ErrNilProfileRepo
	}

	if cfg.DeckFactory == nil {
		return nil, ErrNilDeckFactory
	}

	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	maxPlayers := cfg.MaxPlayers
	if maxPlayers <= 0 {
		maxPlayers = defaultMaxPlayers
	}

	return &service{
		config: &Config{
			MaxPlayers: maxPlayers,
		},
		sessionRepo: cfg.SessionRepo,
		profileRepo: cfg.ProfileRepo,
		deckFactory: cfg.DeckFactory,
		random:      cfg.Random,
		clock:       cfg.Clock,
		uuider:      cfg.UUIDGenerator,
		log:         log,
		games:       make(map[string]*models.Game),
	}, nil
}

// StartGame creates a new session from a player list and settings
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, GameError("input cannot be nil")
	}

	if input.Settings.Mode != models.GameModeQuick && len(input.Players) == 0 {
		return nil, ErrNoPlayers
	}

	maxPlayers := input.Settings.MaxPlayers
	if maxPlayers <= 0 {
		maxPlayers = s.config.MaxPlayers
	}
	if len(input.Players) > maxPlayers {
		return nil, ErrGameFull
	}

	now := s.clock.Now()
	for _, p := range input.Players {
		if p.ID == "" {
			p.ID = s.uuider.NewUUID()
		}
	}

	game := &models.Game{
		ID:           s.uuider.NewUUID(),
		HostID:       input.HostID,
		Players:      input.Players,
		Settings:     input.Settings,
		Deck:         s.deckFactory.CreateDeck(),
		DiscardPile:  []models.Card{},
		ActiveRules:  []*models.ActiveRule{},
		Distribution: map[string]int{},
		GameStarted:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	s.mu.Lock()
	s.games[game.ID] = game
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"game_id": game.ID,
		"players": len(game.Players),
		"mode":    game.Settings.Mode,
	}).Info("session started")

	return &StartGameOutput{
		GameID:      game.ID,
		CardsInDeck: len(game.Deck),
	}, nil
}

// DrawCard pops the next card onto the table, face up
func (s *service) DrawCard(ctx context.Context, input *DrawCardInput) (*DrawCardOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.getGame(input)
	if err != nil {
		return nil, err
	}

	if game.GameOver {
		return nil, ErrGameOver
	}

	if game.ActiveMiniGame != models.MiniGameNone {
		return nil, ErrMiniGameActive
	}

	if game.PendingAction != nil {
		return nil, ErrActionPending
	}

	if game.CurrentCard != nil {
		return nil, ErrCardOnTable
	}

	if len(game.Deck) == 0 {
		s.endGame(ctx, game)
		return &DrawCardOutput{GameOver: true}, nil
	}

	card := game.Deck[len(game.Deck)-1]
	game.Deck = game.Deck[:len(game.Deck)-1]
	game.CurrentCard = &card
	game.IsCardFlipped = true
	game.UpdatedAt = s.clock.Now()

	rule := rules.ForRank(card.Rank)

	// The queen resolves on the spot: the whole table drinks and no
	// interaction opens
	everyoneDrinks := false
	if rule.Effect == rules.EffectDrinkEveryone && game.Settings.Mode != models.GameModeQuick {
		everyoneDrinks = true
		for _, p := range game.Players {
			p.SipsTaken += sips.DynamicSips(1, game.Settings.Difficulty, p.AlcoholType)
		}
	}

	return &DrawCardOutput{
		Card:           game.CurrentCard,
		Rule:           rule,
		CardsLeft:      len(game.Deck),
		EveryoneDrinks: everyoneDrinks,
	}, nil
}

// ResolveCard interprets the card on the table
func (s *service) ResolveCard(ctx context.Context, input *ResolveCardInput) (*ResolveCardOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.getGame(input)
	if err != nil {
		return nil, err
	}

	if game.GameOver {
		return nil, ErrGameOver
	}

	if game.CurrentCard == nil {
		return nil, ErrNoCardOnTable
	}

	if game.PendingAction != nil {
		return nil, ErrActionPending
	}

	if game.Settings.Mode == models.GameModeQuick {
		s.advanceTurn(game)
		return &ResolveCardOutput{TurnAdvanced: true}, nil
	}

	current := game.CurrentPlayer()
	rule := rules.ForRank(game.CurrentCard.Rank)
	now := s.clock.Now()

	switch rule.Effect {
	case rules.EffectDistribute:
		game.PendingAction = &models.PendingAction{
			Type:             models.ActionDistribute,
			SipsToDistribute: rule.Amount,
			SipsRemaining:    rule.Amount,
			InitiatorID:      current.ID,
		}
		game.Distribution = map[string]int{}

	case rules.EffectDrinkAll:
		game.PendingAction = &models.PendingAction{
			Type:        models.ActionAceCheck,
			InitiatorID: current.ID,
		}

	case rules.EffectStatusQuestion:
		s.registerExclusiveRule(game, models.RuleTypeQuestionMaster, current.ID, now)
		miniGame := s.advanceTurn(game)
		return &ResolveCardOutput{
			Notice:       fmt.Sprintf("Nouveau Maître de la Question : %s", current.Name),
			TurnAdvanced: true,
			MiniGame:     miniGame,
		}, nil

	case rules.EffectStatusFreeze:
		s.registerExclusiveRule(game, models.RuleTypeFreezeMaster, current.ID, now)
		miniGame := s.advanceTurn(game)
		return &ResolveCardOutput{
			Notice:       fmt.Sprintf("Nouveau Maître du Freeze : %s", current.Name),
			TurnAdvanced: true,
			MiniGame:     miniGame,
		}, nil

	case rules.EffectStatusRule:
		// Kings stack: every drawer keeps their own rule
		game.ActiveRules = append(game.ActiveRules, &models.ActiveRule{
			ID:           s.uuider.NewUUID(),
			PlayerID:     current.ID,
			Type:         models.RuleTypeKing,
			RegisteredAt: now,
		})
		miniGame := s.advanceTurn(game)
		return &ResolveCardOutput{
			Notice:       fmt.Sprintf("%s invente une règle !", current.Name),
			TurnAdvanced: true,
			MiniGame:     miniGame,
		}, nil

	case rules.EffectGameLosers:
		game.PendingAction = &models.PendingAction{
			Type:        models.ActionMultipleLosers,
			InitiatorID: current.ID,
			CardName:    rule.Title,
		}
		game.Distribution = map[string]int{}

	case rules.EffectGameLoser:
		game.PendingAction = &models.PendingAction{
			Type:        models.ActionSelectLoser,
			InitiatorID: current.ID,
			CardName:    rule.Title,
		}

	default:
		// Already settled at draw time (queen)
		miniGame := s.advanceTurn(game)
		return &ResolveCardOutput{
			TurnAdvanced: true,
			MiniGame:     miniGame,
		}, nil
	}

	game.UpdatedAt = now
	pending := *game.PendingAction

	return &ResolveCardOutput{
		PendingAction: &pending,
	}, nil
}

// SelectTarget routes a tap on a player into the pending action
func (s *service) SelectTarget(ctx context.Context, input *SelectTargetInput) (*SelectTargetOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.getGame(input)
	if err != nil {
		return nil, err
	}

	if game.GameOver {
		return nil, ErrGameOver
	}

	action := game.PendingAction
	if action == nil {
		return &SelectTargetOutput{Ignored: true}, nil
	}

	target := game.PlayerByID(input.TargetID)
	if target == nil {
		return &SelectTargetOutput{Ignored: true}, nil
	}

	switch action.Type {
	case models.ActionSelectLoser, models.ActionKingRule,
		models.ActionQuestionMasterTrap, models.ActionFreezeTrap:
		amount := sips.DynamicSips(loserBaseSips, game.Settings.Difficulty, target.AlcoholType)
		updates := []SipUpdate{{TargetID: target.ID, Sips: amount}}
		miniGame := s.resolvePending(ctx, game, updates)
		return &SelectTargetOutput{
			Resolved:     true,
			Updates:      updates,
			Notice:       fmt.Sprintf("%s boit %d gorgée(s) !", target.Name, amount),
			TurnAdvanced: true,
			MiniGame:     miniGame,
		}, nil

	case models.ActionDistribute:
		cost := sips.DistributionCost(target.AlcoholType)
		if action.SipsRemaining < cost {
			return &SelectTargetOutput{
				PointsRemaining: action.SipsRemaining,
				Notice:          fmt.Sprintf("Pas assez de points ! Coût : %d", cost),
			}, nil
		}

		game.Distribution[target.ID]++
		action.SipsRemaining -= cost
		game.UpdatedAt = s.clock.Now()

		if action.SipsRemaining >= 1 {
			return &SelectTargetOutput{
				PointsRemaining: action.SipsRemaining,
			}, nil
		}

		// Pool exhausted: commit every tally
		updates := make([]SipUpdate, 0, len(game.Distribution))
		for targetID, count := range game.Distribution {
			updates = append(updates, SipUpdate{TargetID: targetID, Sips: count})
		}
		miniGame := s.resolvePending(ctx, game, updates)
		return &SelectTargetOutput{
			Resolved:     true,
			Updates:      updates,
			TurnAdvanced: true,
			MiniGame:     miniGame,
		}, nil

	case models.ActionMultipleLosers:
		// Taps toggle membership; nothing commits until validation
		if _, ok := game.Distribution[target.ID]; ok {
			delete(game.Distribution, target.ID)
		} else {
			game.Distribution[target.ID] = 1
		}
		game.UpdatedAt = s.clock.Now()

		selected := make([]string, 0, len(game.Distribution))
		for targetID := range game.Distribution {
			selected = append(selected, targetID)
		}
		return &SelectTargetOutput{
			Selected: selected,
		}, nil

	default:
		// Modal actions resolve through ResolveSelfReport, not taps
		return &SelectTargetOutput{Ignored: true}, nil
	}
}

// ResetDistribution restores the full distribution pool
func (s *service) ResetDistribution(ctx context.Context, input *ResetDistributionInput) (*ResetDistributionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.getGame(input)
	if err != nil {
		return nil, err
	}

	action := game.PendingAction
	if action == nil || action.Type != models.ActionDistribute {
		return &ResetDistributionOutput{Ignored: true}, nil
	}

	game.Distribution = map[string]int{}
	action.SipsRemaining = action.SipsToDistribute
	game.UpdatedAt = s.clock.Now()

	return &ResetDistributionOutput{
		PointsRemaining: action.SipsRemaining,
	}, nil
}

// ValidateLosers commits the multi-select round
func (s *service) ValidateLosers(ctx context.Context, input *ValidateLosersInput) (*ValidateLosersOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.getGame(input)
	if err != nil {
		return nil, err
	}

	action := game.PendingAction
	if action == nil || action.Type != models.ActionMultipleLosers {
		return &ValidateLosersOutput{Ignored: true}, nil
	}

	// Each selected loser pays an independently computed penalty
	updates := make([]SipUpdate, 0, len(game.Distribution))
	for targetID := range game.Distribution {
		target := game.PlayerByID(targetID)
		if target == nil {
			continue
		}
		updates = append(updates, SipUpdate{
			TargetID: targetID,
			Sips:     sips.DynamicSips(1, game.Settings.Difficulty, target.AlcoholType),
		})
	}

	miniGame := s.resolvePending(ctx, game, updates)
	return &ValidateLosersOutput{
		Updates:      updates,
		TurnAdvanced: true,
		MiniGame:     miniGame,
	}, nil
}

// ResolveSelfReport settles an ace or math-penalty modal
func (s *service) ResolveSelfReport(ctx context.Context, input *ResolveSelfReportInput) (*ResolveSelfReportOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.getGame(input)
	if err != nil {
		return nil, err
	}

	action := game.PendingAction
	if action == nil || (action.Type != models.ActionAceCheck && action.Type != models.ActionMathPenalty) {
		return &ResolveSelfReportOutput{Ignored: true}, nil
	}

	amount := input.Sips
	if input.Completed {
		amount = aceCompletedSips
	}
	if amount < 1 {
		amount = 1
	}

	// The initiator drinks their own report. They are also credited the
	// same amount as given out, which mirrors how the table plays it.
	updates := []SipUpdate{{TargetID: action.InitiatorID, Sips: amount}}
	miniGame := s.resolvePending(ctx, game, updates)

	return &ResolveSelfReportOutput{
		SipsApplied:  amount,
		TurnAdvanced: true,
		MiniGame:     miniGame,
	}, nil
}

// TriggerRule invokes a standing rule from the sidebar
func (s *service) TriggerRule(ctx context.Context, input *TriggerRuleInput) (*TriggerRuleOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.getGame(input)
	if err != nil {
		return nil, err
	}

	if game.GameOver {
		return nil, ErrGameOver
	}

	if game.PendingAction != nil || game.ActiveMiniGame != models.MiniGameNone ||
		game.Settings.Mode == models.GameModeQuick {
		return &TriggerRuleOutput{Ignored: true}, nil
	}

	rule := game.RuleByID(input.RuleID)
	if rule == nil {
		return nil, ErrRuleNotFound
	}

	var actionType models.ActionType
	switch rule.Type {
	case models.RuleTypeKing:
		actionType = models.ActionKingRule
	case models.RuleTypeQuestionMaster:
		actionType = models.ActionQuestionMasterTrap
	default:
		actionType = models.ActionFreezeTrap
	}

	game.PendingAction = &models.PendingAction{
		Type:        actionType,
		InitiatorID: rule.PlayerID,
	}
	game.UpdatedAt = s.clock.Now()

	pending := *game.PendingAction
	return &TriggerRuleOutput{
		PendingAction: &pending,
	}, nil
}

// CompleteMiniGame consumes a mini-game's boolean outcome
func (s *service) CompleteMiniGame(ctx context.Context, input *CompleteMiniGameInput) (*CompleteMiniGameOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.getGame(input)
	if err != nil {
		return nil, err
	}

	miniGame := game.ActiveMiniGame
	if miniGame == models.MiniGameNone {
		return &CompleteMiniGameOutput{Ignored: true}, nil
	}

	game.ActiveMiniGame = models.MiniGameNone
	game.UpdatedAt = s.clock.Now()

	if input.Success || game.Settings.Mode == models.GameModeQuick {
		return &CompleteMiniGameOutput{}, nil
	}

	current := game.CurrentPlayer()
	if current == nil {
		return &CompleteMiniGameOutput{}, nil
	}

	if miniGame == models.MiniGameSimon {
		current.SimonFailures++
		amount := sips.DynamicSips(simonPenaltyBaseSips, game.Settings.Difficulty, current.AlcoholType)
		current.SipsTaken += amount
		return &CompleteMiniGameOutput{
			SipsApplied: amount,
		}, nil
	}

	// A failed math round is settled like the ace: the player reports
	// whether they paid up
	current.MathFailures++
	game.PendingAction = &models.PendingAction{
		Type:        models.ActionMathPenalty,
		InitiatorID: current.ID,
	}

	pending := *game.PendingAction
	return &CompleteMiniGameOutput{
		PendingAction: &pending,
	}, nil
}

// QuitGame ends a session on request
func (s *service) QuitGame(ctx context.Context, input *QuitGameInput) (*QuitGameOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.getGame(input)
	if err != nil {
		return nil, err
	}

	if game.GameOver {
		return nil, ErrGameOver
	}

	s.endGame(ctx, game)

	return &QuitGameOutput{
		Players: game.Players,
	}, nil
}

// GetGame returns the current state of a session
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.getGame(input)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{Game: game}, nil
}

// gameIDer lets getGame accept any input carrying a game ID
type gameIDer interface{ gameID() string }

func (i *DrawCardInput) gameID() string          { return i.GameID }
func (i *ResolveCardInput) gameID() string       { return i.GameID }
func (i *SelectTargetInput) gameID() string      { return i.GameID }
func (i *ResetDistributionInput) gameID() string { return i.GameID }
func (i *ValidateLosersInput) gameID() string    { return i.GameID }
func (i *ResolveSelfReportInput) gameID() string { return i.GameID }
func (i *TriggerRuleInput) gameID() string       { return i.GameID }
func (i *CompleteMiniGameInput) gameID() string  { return i.GameID }
func (i *QuitGameInput) gameID() string          { return i.GameID }
func (i *GetGameInput) gameID() string           { return i.GameID }
func (i *GetScoreboardInput) gameID() string     { return i.GameID }

// getGame resolves an input's game. Callers must hold the mutex.
func (s *service) getGame(input gameIDer) (*models.Game, error) {
	if input == nil || input.gameID() == "" {
		return nil, GameError("input and game ID cannot be empty")
	}

	game, ok := s.games[input.gameID()]
	if !ok {
		return nil, ErrGameNotFound
	}

	return game, nil
}
