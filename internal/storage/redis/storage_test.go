package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"casslot/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestGetMissing() {
	_, err := s.storage.Get(s.ctx, "userData")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageSuite) TestSetAndGet() {
	s.Require().NoError(s.storage.Set(s.ctx, "userData", []byte(`{"coins":1000}`)))

	got, err := s.storage.Get(s.ctx, "userData")
	s.Require().NoError(err)
	s.Equal(`{"coins":1000}`, string(got))
}

func (s *StorageSuite) TestKeysArePrefixed() {
	s.Require().NoError(s.storage.Set(s.ctx, "lastDailyClaim", []byte("t")))

	s.True(s.mini.Exists("casslot:lastDailyClaim"))
	s.False(s.mini.Exists("lastDailyClaim"))
}

func (s *StorageSuite) TestNoExpiry() {
	s.Require().NoError(s.storage.Set(s.ctx, "userData", []byte("x")))
	s.Zero(s.mini.TTL("casslot:userData"))
}

func (s *StorageSuite) TestNewConnects() {
	cfg := DefaultConfig()
	cfg.URL = "redis://" + s.mini.Addr()

	st, err := New(s.ctx, cfg)
	s.Require().NoError(err)
	defer st.Close()

	s.Require().NoError(st.Set(s.ctx, "k", []byte("v")))
	got, err := s.storage.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal("v", string(got))
}

func (s *StorageSuite) TestNewRejectsBadURL() {
	_, err := New(s.ctx, Config{URL: "not a url"})
	s.Error(err)
}
