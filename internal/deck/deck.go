package deck

import (
	"errors"
	"fmt"

	"github.com/drinkosaur/palmier/internal/common/rng"
	"github.com/drinkosaur/palmier/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_factory.go github.com/drinkosaur/palmier/internal/deck Factory

// Size is the number of cards in a full deck
const Size = 52

// Factory produces shuffled decks. A deck is a finite, non-restartable
// resource: the engine draws from the tail and never reshuffles.
type Factory interface {
	// CreateDeck returns all 52 rank/suit combinations exactly once, in
	// a uniformly random order
	CreateDeck() []models.Card
}

// Config holds configuration for the default deck factory
type Config struct {
	// Random is the shuffle source
	Random rng.Random
}

// DefaultFactory implements Factory with a Fisher-Yates shuffle
type DefaultFactory struct {
	random rng.Random
}

// New creates a new deck factory
func New(cfg *Config) (*DefaultFactory, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Random == nil {
		return nil, errors.New("random source cannot be nil")
	}

	return &DefaultFactory{
		random: cfg.Random,
	}, nil
}

// CreateDeck builds the 52 cards and shuffles them
func (f *DefaultFactory) CreateDeck() []models.Card {
	cards := make([]models.Card, 0, Size)
	for _, suit := range models.Suits {
		for _, rank := range models.Ranks {
			cards = append(cards, models.Card{
				Suit: suit,
				Rank: rank,
				ID:   fmt.Sprintf("%s-%s", rank, suit),
			})
		}
	}

	f.random.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return cards
}
