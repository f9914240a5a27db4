package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/drinkosaur/palmier/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	profileKeyPrefix = "profile:"
	statsKeyPrefix   = "profile_stats:"
)

// Stats hash fields
const (
	fieldTotalGames    = "total_games"
	fieldTotalSips     = "total_sips"
	fieldSipsGiven     = "sips_given"
	fieldSimonFailures = "simon_failures"
	fieldMathFailures  = "math_failures"
)

// ErrProfileNotFound is returned when a profile is not found
var ErrProfileNotFound = errors.New("profile not found")

// Config holds configuration for the Redis profile repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed profile repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveProfile persists a profile's identity fields to Redis. Lifetime stats
// live in their own hash and are not touched here.
func (r *redisRepository) SaveProfile(ctx context.Context, input *SaveProfileInput) error {
	if input == nil || input.Profile == nil {
		return errors.New("input and profile cannot be nil")
	}

	p := input.Profile
	if p.UID == "" {
		return errors.New("profile UID cannot be empty")
	}

	identity := *p
	identity.Stats = models.ProfileStats{}

	profileJSON, err := json.Marshal(&identity)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	profileKey := fmt.Sprintf("%s%s", profileKeyPrefix, p.UID)
	if err := r.client.Set(ctx, profileKey, profileJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

// GetProfile retrieves a profile and its lifetime stats from Redis
func (r *redisRepository) GetProfile(ctx context.Context, input *GetProfileInput) (*models.Profile, error) {
	if input == nil || input.UID == "" {
		return nil, errors.New("input and UID cannot be empty")
	}

	profileKey := fmt.Sprintf("%s%s", profileKeyPrefix, input.UID)
	profileJSON, err := r.client.Get(ctx, profileKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var p models.Profile
	if err := json.Unmarshal([]byte(profileJSON), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	statsKey := fmt.Sprintf("%s%s", statsKeyPrefix, input.UID)
	fields, err := r.client.HGetAll(ctx, statsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile stats: %w", err)
	}

	p.Stats = models.ProfileStats{
		TotalGames:    parseField(fields, fieldTotalGames),
		TotalSips:     parseField(fields, fieldTotalSips),
		SipsGiven:     parseField(fields, fieldSipsGiven),
		SimonFailures: parseField(fields, fieldSimonFailures),
		MathFailures:  parseField(fields, fieldMathFailures),
	}

	return &p, nil
}

// IncrementStats applies cumulative deltas to a profile's stats hash
func (r *redisRepository) IncrementStats(ctx context.Context, input *IncrementStatsInput) error {
	if input == nil || input.UID == "" {
		return errors.New("input and UID cannot be empty")
	}

	statsKey := fmt.Sprintf("%s%s", statsKeyPrefix, input.UID)

	pipe := r.client.Pipeline()
	increments := map[string]int{
		fieldTotalGames:    input.TotalGames,
		fieldTotalSips:     input.TotalSips,
		fieldSipsGiven:     input.SipsGiven,
		fieldSimonFailures: input.SimonFailures,
		fieldMathFailures:  input.MathFailures,
	}
	for field, delta := range increments {
		if delta != 0 {
			pipe.HIncrBy(ctx, statsKey, field, int64(delta))
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment profile stats: %w", err)
	}

	return nil
}

func parseField(fields map[string]string, name string) int {
	v, err := strconv.Atoi(fields[name])
	if err != nil {
		return 0
	}
	return v
}
