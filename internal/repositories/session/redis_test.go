package session

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
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
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

	s.testNow = time.Date(2025, 8, 30, 23, 30, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testSession(id, hostID string) *models.Session {
	return &models.Session{
		ID:     id,
		HostID: hostID,
		Settings: models.GameSettings{
			Mode:       models.GameModeFun,
			Difficulty: models.DifficultyMedium,
			MaxPlayers: 20,
		},
		Players: []models.PlayerResult{
			{
				Name:        "Alice",
				AlcoholType: models.AlcoholBeer,
				SipsTaken:   12,
				SipsGiven:   5,
			},
			{
				Name:          "Bob",
				AlcoholType:   models.AlcoholHard,
				SipsTaken:     4,
				SimonFailures: 2,
				UID:           "bob-uid",
			},
		},
		FinishedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSession() {
	session := s.testSession("test-session-id", "host-uid")

	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: session,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-session-id", retrieved.ID)
	s.Equal("host-uid", retrieved.HostID)
	s.Equal(models.GameModeFun, retrieved.Settings.Mode)
	s.Require().Len(retrieved.Players, 2)
	s.Equal("Alice", retrieved.Players[0].Name)
	s.Equal(12, retrieved.Players[0].SipsTaken)
	s.Equal("bob-uid", retrieved.Players[1].UID)
	s.Equal(s.testNow.Unix(), retrieved.FinishedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetSessionsForHost() {
	for _, id := range []string{"session-1", "session-2"} {
		err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
			Session: s.testSession(id, "host-1"),
		})
		s.Require().NoError(err)
	}
	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: s.testSession("session-3", "host-2"),
	})
	s.Require().NoError(err)

	output, err := s.repo.GetSessionsForHost(context.Background(), &GetSessionsForHostInput{
		HostID: "host-1",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Sessions, 2)

	ids := map[string]bool{}
	for _, session := range output.Sessions {
		ids[session.ID] = true
	}
	s.Contains(ids, "session-1")
	s.Contains(ids, "session-2")
}

func (s *RedisRepositoryTestSuite) TestSessionWithoutHostIsNotIndexed() {
	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: s.testSession("anon-session", ""),
	})
	s.Require().NoError(err)

	// Still retrievable directly
	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "anon-session",
	})
	s.Require().NoError(err)
	s.Equal("anon-session", retrieved.ID)
}

func (s *RedisRepositoryTestSuite) TestGetNonExistentSession() {
	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "nope",
	})
	s.Require().Error(err)
	s.Equal(ErrSessionNotFound, err)
}
