package profile

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/drinkosaur/palmier/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetProfile() {
	p := &models.Profile{
		UID:         "test-uid",
		DisplayName: "Test Drinker",
		CreatedAt:   time.Date(2025, 8, 30, 20, 0, 0, 0, time.UTC),
	}

	err := s.repo.SaveProfile(context.Background(), &SaveProfileInput{
		Profile: p,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetProfile(context.Background(), &GetProfileInput{
		UID: "test-uid",
	})
	s.Require().NoError(err)
	s.Equal("test-uid", retrieved.UID)
	s.Equal("Test Drinker", retrieved.DisplayName)
	s.Equal(models.ProfileStats{}, retrieved.Stats)
}

func (s *RedisRepositoryTestSuite) TestIncrementStats() {
	err := s.repo.SaveProfile(context.Background(), &SaveProfileInput{
		Profile: &models.Profile{UID: "test-uid", DisplayName: "Test"},
	})
	s.Require().NoError(err)

	err = s.repo.IncrementStats(context.Background(), &IncrementStatsInput{
		UID:           "test-uid",
		TotalGames:    1,
		TotalSips:     14,
		SipsGiven:     3,
		SimonFailures: 2,
	})
	s.Require().NoError(err)

	// A second session accumulates on top of the first
	err = s.repo.IncrementStats(context.Background(), &IncrementStatsInput{
		UID:          "test-uid",
		TotalGames:   1,
		TotalSips:    6,
		MathFailures: 1,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetProfile(context.Background(), &GetProfileInput{
		UID: "test-uid",
	})
	s.Require().NoError(err)
	s.Equal(models.ProfileStats{
		TotalGames:    2,
		TotalSips:     20,
		SipsGiven:     3,
		SimonFailures: 2,
		MathFailures:  1,
	}, retrieved.Stats)
}

func (s *RedisRepositoryTestSuite) TestIncrementStatsSkipsZeroDeltas() {
	err := s.repo.IncrementStats(context.Background(), &IncrementStatsInput{
		UID: "test-uid",
	})
	s.Require().NoError(err)

	s.False(s.mr.Exists("profile_stats:test-uid"))
}

func (s *RedisRepositoryTestSuite) TestGetNonExistentProfile() {
	_, err := s.repo.GetProfile(context.Background(), &GetProfileInput{
		UID: "missing",
	})
	s.Require().Error(err)
	s.Equal(ErrProfileNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestSaveProfileDoesNotTouchStats() {
	err := s.repo.IncrementStats(context.Background(), &IncrementStatsInput{
		UID:       "test-uid",
		TotalSips: 9,
	})
	s.Require().NoError(err)

	err = s.repo.SaveProfile(context.Background(), &SaveProfileInput{
		Profile: &models.Profile{
			UID:         "test-uid",
			DisplayName: "Renamed",
			// Stats on the model are ignored on save
			Stats: models.ProfileStats{TotalSips: 999},
		},
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetProfile(context.Background(), &GetProfileInput{
		UID: "test-uid",
	})
	s.Require().NoError(err)
	s.Equal(9, retrieved.Stats.TotalSips)
	s.Equal("Renamed", retrieved.DisplayName)
}
