package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/drinkosaur/palmier/internal/common/clock"
	"github.com/drinkosaur/palmier/internal/common/rng"
	"github.com/drinkosaur/palmier/internal/common/uuid"
	"github.com/drinkosaur/palmier/internal/deck"
	"github.com/drinkosaur/palmier/internal/handlers/cli"
	"github.com/drinkosaur/palmier/internal/models"
	profileRepo "github.com/drinkosaur/palmier/internal/repositories/profile"
	sessionRepo "github.com/drinkosaur/palmier/internal/repositories/session"
	gameService "github.com/drinkosaur/palmier/internal/services/game"
)

func main() {
	// Load .env if present; real environment variables win
	_ = godotenv.Load()

	log := logrus.New()
	if level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "warn")); err == nil {
		log.SetLevel(level)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	profiles, err := profileRepo.NewRedis(&profileRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create profile repository: %v", err)
	}

	// Initialize the deck factory
	deckFactory, err := deck.New(&deck.Config{
		Random: rng.New(&rng.Config{}),
	})
	if err != nil {
		log.Fatalf("Failed to create deck factory: %v", err)
	}

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		SessionRepo:   sessions,
		ProfileRepo:   profiles,
		DeckFactory:   deckFactory,
		Random:        rng.New(&rng.Config{}),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        log,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	players, err := parsePlayers(getEnv("PALMIER_PLAYERS", ""))
	if err != nil {
		log.Fatalf("Failed to parse PALMIER_PLAYERS: %v", err)
	}

	settings := models.GameSettings{
		Mode:         models.GameMode(getEnv("PALMIER_MODE", string(models.GameModeFun))),
		Difficulty:   models.Difficulty(getEnv("PALMIER_DIFFICULTY", string(models.DifficultyMedium))),
		SimonEnabled: getEnv("PALMIER_SIMON", "true") == "true",
		MathEnabled:  getEnv("PALMIER_MATH", "true") == "true",
	}

	// Initialize the terminal front-end
	handler, err := cli.New(&cli.Config{
		GameService: gameSvc,
		Players:     players,
		Settings:    settings,
		HostID:      getEnv("PALMIER_HOST_UID", ""),
		In:          os.Stdin,
		Out:         os.Stdout,
		Logger:      log,
	})
	if err != nil {
		log.Fatalf("Failed to create terminal front-end: %v", err)
	}

	runCtx := context.Background()
	if err := handler.Start(runCtx); err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	// Wait for the session to end or an interrupt
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	select {
	case <-handler.Done():
	case <-sc:
		if err := handler.Stop(runCtx); err != nil {
			log.Errorf("Error stopping session: %v", err)
		}
	}
}

// parsePlayers reads the comma-separated player list, one player per
// "name:alcohol:weight:gender" entry. Only the name is required.
func parsePlayers(raw string) ([]*models.Player, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var players []*models.Player
	for _, entry := range strings.Split(raw, ",") {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if parts[0] == "" {
			return nil, fmt.Errorf("player entry %q has no name", entry)
		}

		player := &models.Player{
			Name:        parts[0],
			AlcoholType: models.AlcoholBeer,
		}

		if len(parts) > 1 && parts[1] != "" {
			player.AlcoholType = models.AlcoholType(parts[1])
		}
		if len(parts) > 2 && parts[2] != "" {
			weight, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, fmt.Errorf("player entry %q has a bad weight: %w", entry, err)
			}
			player.Weight = weight
		}
		if len(parts) > 3 && parts[3] != "" {
			switch parts[3] {
			case "f", "female":
				player.Gender = models.GenderFemale
			case "m", "male":
				player.Gender = models.GenderMale
			}
		}

		players = append(players, player)
	}

	return players, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
