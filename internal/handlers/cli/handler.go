package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/drinkosaur/palmier/internal/models"
	"github.com/drinkosaur/palmier/internal/services/game"
)

// Handler drives a pass-the-phone session from a terminal
type Handler struct {
	gameService game.Service
	in          io.Reader
	out         io.Writer
	log         *logrus.Logger
	config      *Config

	gameID string

	mu      sync.Mutex
	stopped bool
	done    chan struct{}
}

// Config holds the configuration for the terminal front-end
type Config struct {
	// Game service
	GameService game.Service

	// Players in seating order
	Players []*models.Player

	// Settings for the session
	Settings models.GameSettings

	// HostID is the external identity of the host, empty when offline
	HostID string

	// In is the command stream, typically stdin
	In io.Reader

	// Out is where the table display goes, typically stdout
	Out io.Writer

	// Logger is optional; defaults to the logrus standard logger
	Logger *logrus.Logger
}

// New creates a new terminal front-end
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.In == nil {
		return nil, errors.New("input stream cannot be nil")
	}

	if cfg.Out == nil {
		return nil, errors.New("output stream cannot be nil")
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Handler{
		gameService: cfg.GameService,
		in:          cfg.In,
		out:         cfg.Out,
		log:         log,
		config:      cfg,
		done:        make(chan struct{}),
	}, nil
}

// Start boots a session and begins reading commands
func (h *Handler) Start(ctx context.Context) error {
	output, err := h.gameService.StartGame(ctx, &game.StartGameInput{
		Players:  h.config.Players,
		Settings: h.config.Settings,
		HostID:   h.config.HostID,
	})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	h.gameID = output.GameID
	fmt.Fprintf(h.out, "Palmier ! %d cartes dans le paquet. Tapez 'help' pour les commandes.\n", output.CardsInDeck)
	h.printCurrentPlayer(ctx)

	go h.readLoop(ctx)
	return nil
}

// Stop ends the session if it is still running
func (h *Handler) Stop(ctx context.Context) error {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return nil
	}
	h.stopped = true
	close(h.done)
	h.mu.Unlock()

	_, err := h.gameService.QuitGame(ctx, &game.QuitGameInput{GameID: h.gameID})
	if err != nil && err != game.ErrGameOver {
		return fmt.Errorf("failed to quit session: %w", err)
	}

	return nil
}

// Done is closed when the session ends, through quit or deck exhaustion
func (h *Handler) Done() <-chan struct{} {
	return h.done
}

func (h *Handler) readLoop(ctx context.Context) {
	scanner := bufio.NewScanner(h.in)
	for scanner.Scan() {
		select {
		case <-h.done:
			return
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if over := h.handleCommand(ctx, line); over {
			h.finish(ctx)
			return
		}
	}

	if err := scanner.Err(); err != nil {
		h.log.WithError(err).Error("command stream failed")
	}
	h.finish(ctx)
}

// handleCommand runs one command line. Returns true when the session ended.
func (h *Handler) handleCommand(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	command := strings.ToLower(fields[0])
	args := fields[1:]

	switch command {
	case "draw", "d":
		return h.handleDraw(ctx)

	case "ok", "next":
		h.handleResolve(ctx)

	case "tap", "t":
		h.handleTap(ctx, args)

	case "reset":
		h.handleReset(ctx)

	case "validate", "v":
		h.handleValidate(ctx)

	case "downed":
		h.handleSelfReport(ctx, &game.ResolveSelfReportInput{GameID: h.gameID, Completed: true})

	case "drank":
		if len(args) == 0 {
			fmt.Fprintln(h.out, "Usage : drank <gorgées>")
			return false
		}
		count, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintln(h.out, "Usage : drank <gorgées>")
			return false
		}
		h.handleSelfReport(ctx, &game.ResolveSelfReportInput{GameID: h.gameID, Sips: count})

	case "rules":
		h.printRules(ctx)

	case "rule", "r":
		h.handleTriggerRule(ctx, args)

	case "win":
		h.handleMiniGame(ctx, true)

	case "fail":
		h.handleMiniGame(ctx, false)

	case "players":
		h.printPlayers(ctx)

	case "score", "s":
		h.printScoreboard(ctx)

	case "help", "h":
		h.printHelp()

	case "quit", "q":
		return true

	default:
		fmt.Fprintf(h.out, "Commande inconnue : %s (tapez 'help')\n", command)
	}

	return false
}

func (h *Handler) handleDraw(ctx context.Context) bool {
	output, err := h.gameService.DrawCard(ctx, &game.DrawCardInput{GameID: h.gameID})
	if err != nil {
		h.printServiceError(err)
		return false
	}

	if output.GameOver {
		fmt.Fprintln(h.out, "Le paquet est vide. Fin de partie !")
		return true
	}

	h.renderCard(output)
	return false
}

func (h *Handler) handleResolve(ctx context.Context) {
	output, err := h.gameService.ResolveCard(ctx, &game.ResolveCardInput{GameID: h.gameID})
	if err != nil {
		h.printServiceError(err)
		return
	}

	if output.Notice != "" {
		fmt.Fprintln(h.out, output.Notice)
	}

	if output.PendingAction != nil {
		h.renderPending(output.PendingAction)
		return
	}

	h.afterAdvance(ctx, output.MiniGame)
}

func (h *Handler) handleTap(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(h.out, "Usage : tap <joueur>")
		return
	}

	target := h.resolvePlayer(ctx, strings.Join(args, " "))
	if target == nil {
		fmt.Fprintln(h.out, "Joueur inconnu.")
		return
	}

	output, err := h.gameService.SelectTarget(ctx, &game.SelectTargetInput{
		GameID:   h.gameID,
		TargetID: target.ID,
	})
	if err != nil {
		h.printServiceError(err)
		return
	}

	if output.Ignored {
		fmt.Fprintln(h.out, "Rien à faire avec ce joueur pour l'instant.")
		return
	}

	if output.Notice != "" {
		fmt.Fprintln(h.out, output.Notice)
	}

	if output.Resolved {
		h.renderUpdates(ctx, output.Updates)
		h.afterAdvance(ctx, output.MiniGame)
		return
	}

	if len(output.Selected) > 0 {
		fmt.Fprintf(h.out, "%d perdant(s) sélectionné(s). 'validate' pour confirmer.\n", len(output.Selected))
		return
	}

	if output.PointsRemaining > 0 {
		fmt.Fprintf(h.out, "Points restants : %d\n", output.PointsRemaining)
	}
}

func (h *Handler) handleReset(ctx context.Context) {
	output, err := h.gameService.ResetDistribution(ctx, &game.ResetDistributionInput{GameID: h.gameID})
	if err != nil {
		h.printServiceError(err)
		return
	}

	if output.Ignored {
		fmt.Fprintln(h.out, "Aucune distribution en cours.")
		return
	}

	fmt.Fprintf(h.out, "Distribution remise à zéro. Points : %d\n", output.PointsRemaining)
}

func (h *Handler) handleValidate(ctx context.Context) {
	output, err := h.gameService.ValidateLosers(ctx, &game.ValidateLosersInput{GameID: h.gameID})
	if err != nil {
		h.printServiceError(err)
		return
	}

	if output.Ignored {
		fmt.Fprintln(h.out, "Aucune sélection en cours.")
		return
	}

	h.renderUpdates(ctx, output.Updates)
	h.afterAdvance(ctx, output.MiniGame)
}

func (h *Handler) handleSelfReport(ctx context.Context, input *game.ResolveSelfReportInput) {
	output, err := h.gameService.ResolveSelfReport(ctx, input)
	if err != nil {
		h.printServiceError(err)
		return
	}

	if output.Ignored {
		fmt.Fprintln(h.out, "Rien à déclarer pour l'instant.")
		return
	}

	fmt.Fprintf(h.out, "%d gorgée(s) comptée(s).\n", output.SipsApplied)
	h.afterAdvance(ctx, output.MiniGame)
}

func (h *Handler) handleTriggerRule(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(h.out, "Usage : rule <numéro> (voir 'rules')")
		return
	}

	index, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(h.out, "Usage : rule <numéro> (voir 'rules')")
		return
	}

	state, err := h.gameService.GetGame(ctx, &game.GetGameInput{GameID: h.gameID})
	if err != nil {
		h.printServiceError(err)
		return
	}

	if index < 1 || index > len(state.Game.ActiveRules) {
		fmt.Fprintln(h.out, "Numéro de règle invalide.")
		return
	}

	output, err := h.gameService.TriggerRule(ctx, &game.TriggerRuleInput{
		GameID: h.gameID,
		RuleID: state.Game.ActiveRules[index-1].ID,
	})
	if err != nil {
		h.printServiceError(err)
		return
	}

	if output.Ignored {
		fmt.Fprintln(h.out, "Impossible d'invoquer une règle maintenant.")
		return
	}

	h.renderPending(output.PendingAction)
}

func (h *Handler) handleMiniGame(ctx context.Context, success bool) {
	output, err := h.gameService.CompleteMiniGame(ctx, &game.CompleteMiniGameInput{
		GameID:  h.gameID,
		Success: success,
	})
	if err != nil {
		h.printServiceError(err)
		return
	}

	if output.Ignored {
		fmt.Fprintln(h.out, "Aucun mini-jeu en cours.")
		return
	}

	if output.SipsApplied > 0 {
		fmt.Fprintf(h.out, "Raté ! %d gorgée(s) de pénalité.\n", output.SipsApplied)
	}

	if output.PendingAction != nil {
		h.renderPending(output.PendingAction)
		return
	}

	if success {
		fmt.Fprintln(h.out, "Bien joué !")
	}
	h.printCurrentPlayer(ctx)
}

// afterAdvance prints the hand-over prompt after a turn moved on
func (h *Handler) afterAdvance(ctx context.Context, miniGame models.MiniGame) {
	switch miniGame {
	case models.MiniGameSimon:
		fmt.Fprintln(h.out, "SIMON ! Répète la séquence, puis 'win' ou 'fail'.")
	case models.MiniGameMath:
		fmt.Fprintln(h.out, "CALCUL MENTAL ! Résous l'opération, puis 'win' ou 'fail'.")
	default:
		h.printCurrentPlayer(ctx)
	}
}

// finish prints the final standings and unblocks waiters
func (h *Handler) finish(ctx context.Context) {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return
	}
	h.stopped = true
	close(h.done)
	h.mu.Unlock()

	_, err := h.gameService.QuitGame(ctx, &game.QuitGameInput{GameID: h.gameID})
	if err != nil && err != game.ErrGameOver {
		h.log.WithError(err).Error("failed to quit session")
	}

	h.printScoreboard(ctx)
	fmt.Fprintln(h.out, "Santé, et à la prochaine !")
}

// resolvePlayer matches a name or seat number against the player list
func (h *Handler) resolvePlayer(ctx context.Context, query string) *models.Player {
	state, err := h.gameService.GetGame(ctx, &game.GetGameInput{GameID: h.gameID})
	if err != nil {
		h.printServiceError(err)
		return nil
	}

	if index, err := strconv.Atoi(query); err == nil {
		if index >= 1 && index <= len(state.Game.Players) {
			return state.Game.Players[index-1]
		}
		return nil
	}

	for _, p := range state.Game.Players {
		if strings.EqualFold(p.Name, query) {
			return p
		}
	}
	return nil
}

func (h *Handler) printServiceError(err error) {
	switch err {
	case game.ErrCardOnTable:
		fmt.Fprintln(h.out, "Une carte est déjà sur la table ('ok' pour continuer).")
	case game.ErrNoCardOnTable:
		fmt.Fprintln(h.out, "Aucune carte sur la table ('draw' pour tirer).")
	case game.ErrActionPending:
		fmt.Fprintln(h.out, "Termine d'abord l'action en cours.")
	case game.ErrMiniGameActive:
		fmt.Fprintln(h.out, "Termine d'abord le mini-jeu ('win' ou 'fail').")
	case game.ErrGameOver:
		fmt.Fprintln(h.out, "La partie est terminée.")
	default:
		h.log.WithError(err).Error("command failed")
		fmt.Fprintf(h.out, "Erreur : %v\n", err)
	}
}
