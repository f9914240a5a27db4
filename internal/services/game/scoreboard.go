package game

import (
	"context"
	"sort"
	"strconv"

	"github.com/drinkosaur/palmier/internal/sips"
)

// GetScoreboard returns the standings, Widmark estimates and awards
func (s *service) GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*GetScoreboardOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.getGame(input)
	if err != nil {
		return nil, err
	}

	maxSimon, maxMath, maxGiven := 0, 0, 0
	for _, p := range game.Players {
		if p.SimonFailures > maxSimon {
			maxSimon = p.SimonFailures
		}
		if p.MathFailures > maxMath {
			maxMath = p.MathFailures
		}
		if p.SipsGiven > maxGiven {
			maxGiven = p.SipsGiven
		}
	}

	entries := make([]ScoreboardEntry, 0, len(game.Players))
	for _, p := range game.Players {
		entry := ScoreboardEntry{
			PlayerID:     p.ID,
			PlayerName:   p.Name,
			SipsTaken:    p.SipsTaken,
			SipsGiven:    p.SipsGiven,
			BloodAlcohol: sips.Widmark(p),
		}

		if game.Settings.SimonEnabled && maxSimon > 0 && p.SimonFailures == maxSimon {
			entry.Awards = append(entry.Awards, AwardSimonDunce)
		}
		if game.Settings.MathEnabled && maxMath > 0 && p.MathFailures == maxMath {
			entry.Awards = append(entry.Awards, AwardMathDunce)
		}
		if maxGiven > 0 && p.SipsGiven == maxGiven {
			entry.Awards = append(entry.Awards, AwardMostGenerous)
		}

		entries = append(entries, entry)
	}

	// Highest estimate first
	sort.SliceStable(entries, func(i, j int) bool {
		return parseBAC(entries[i].BloodAlcohol) > parseBAC(entries[j].BloodAlcohol)
	})

	return &GetScoreboardOutput{
		Entries: entries,
	}, nil
}

func parseBAC(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
