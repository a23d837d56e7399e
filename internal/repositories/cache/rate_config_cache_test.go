package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/remittance_app/internal/apperrors"
	"github.com/SscSPs/remittance_app/internal/core/domain"
	"github.com/SscSPs/remittance_app/internal/repositories/cache"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRedis struct {
	mock.Mock
}

func (m *MockRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return redis.NewStringResult(args.String(0), args.Error(1))
}

func (m *MockRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return redis.NewStatusResult("OK", args.Error(0))
}

func (m *MockRedis) SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd {
	args := m.Called(ctx, key, value, expiration)
	return redis.NewBoolResult(args.Bool(0), args.Error(1))
}

func (m *MockRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(ctx, keys)
	return redis.NewIntResult(1, args.Error(0))
}

// memRedis keeps keys in a map so interleavings can be checked end to end.
type memRedis struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemRedis() *memRedis { return &memRedis{data: map[string]string{}} }

func (r *memRedis) Get(_ context.Context, key string) *redis.StringCmd {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (r *memRedis) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func (r *memRedis) SetNX(_ context.Context, key string, value any, _ time.Duration) *redis.BoolCmd {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	r.data[key] = string(value.([]byte))
	return redis.NewBoolResult(true, nil)
}

func (r *memRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys {
		delete(r.data, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

type MockRateConfigRepository struct {
	mock.Mock
}

func (m *MockRateConfigRepository) FindLatestRateConfiguration(ctx context.Context) (*domain.RateConfiguration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateConfiguration), args.Error(1)
}

func (m *MockRateConfigRepository) SaveRateConfiguration(ctx context.Context, cfg domain.RateConfiguration) error {
	return m.Called(ctx, cfg).Error(0)
}

func sampleConfig() *domain.RateConfiguration {
	return &domain.RateConfiguration{
		ID:         "cfg-1",
		BasePrices: map[domain.Region]decimal.Decimal{domain.RegionPeru: decimal.RequireFromString("3.75")},
		Margins:    map[string]decimal.Decimal{"PERU_VES": decimal.RequireFromString("5")},
	}
}

func TestFindLatest_Hit(t *testing.T) {
	rdb := new(MockRedis)
	repo := new(MockRateConfigRepository)
	payload, err := json.Marshal(sampleConfig())
	require.NoError(t, err)
	rdb.On("Get", mock.Anything, cache.LatestRateConfigKey).Return(string(payload), nil)

	cfg, err := cache.NewRateConfigCache(repo, rdb, time.Minute).FindLatestRateConfiguration(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "cfg-1", cfg.ID)
	assert.True(t, cfg.BasePrices[domain.RegionPeru].Equal(decimal.RequireFromString("3.75")))
	repo.AssertNotCalled(t, "FindLatestRateConfiguration", mock.Anything)
}

func TestFindLatest_MissFillsCache(t *testing.T) {
	rdb := new(MockRedis)
	repo := new(MockRateConfigRepository)
	rdb.On("Get", mock.Anything, cache.LatestRateConfigKey).Return("", redis.Nil)
	repo.On("FindLatestRateConfiguration", mock.Anything).Return(sampleConfig(), nil).Once()
	rdb.On("SetNX", mock.Anything, cache.LatestRateConfigKey, mock.Anything, 30*time.Second).Return(true, nil).Once()

	cfg, err := cache.NewRateConfigCache(repo, rdb, 30*time.Second).FindLatestRateConfiguration(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "cfg-1", cfg.ID)
	rdb.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestFindLatest_RedisDownFallsBack(t *testing.T) {
	rdb := new(MockRedis)
	repo := new(MockRateConfigRepository)
	rdb.On("Get", mock.Anything, mock.Anything).Return("", errors.New("connection refused"))
	rdb.On("SetNX", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("connection refused"))
	repo.On("FindLatestRateConfiguration", mock.Anything).Return(sampleConfig(), nil)

	cfg, err := cache.NewRateConfigCache(repo, rdb, time.Minute).FindLatestRateConfiguration(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "cfg-1", cfg.ID)
}

func TestFindLatest_NotFoundIsNotCached(t *testing.T) {
	rdb := new(MockRedis)
	repo := new(MockRateConfigRepository)
	rdb.On("Get", mock.Anything, mock.Anything).Return("", redis.Nil)
	repo.On("FindLatestRateConfiguration", mock.Anything).Return(nil, apperrors.ErrNotFound)

	_, err := cache.NewRateConfigCache(repo, rdb, time.Minute).FindLatestRateConfiguration(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	rdb.AssertNotCalled(t, "SetNX", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSave_ReplacesCachedCopy(t *testing.T) {
	rdb := new(MockRedis)
	repo := new(MockRateConfigRepository)
	repo.On("SaveRateConfiguration", mock.Anything, mock.Anything).Return(nil).Once()
	rdb.On("Set", mock.Anything, cache.LatestRateConfigKey, mock.MatchedBy(func(v any) bool {
		var cfg domain.RateConfiguration
		return json.Unmarshal(v.([]byte), &cfg) == nil && cfg.ID == "cfg-1"
	}), time.Minute).Return(nil).Once()

	err := cache.NewRateConfigCache(repo, rdb, time.Minute).SaveRateConfiguration(context.Background(), *sampleConfig())

	require.NoError(t, err)
	rdb.AssertExpectations(t)
	rdb.AssertNotCalled(t, "Del", mock.Anything, mock.Anything)
}

func TestSave_DropsKeyWhenWriteFails(t *testing.T) {
	rdb := new(MockRedis)
	repo := new(MockRateConfigRepository)
	repo.On("SaveRateConfiguration", mock.Anything, mock.Anything).Return(nil).Once()
	rdb.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("READONLY")).Once()
	rdb.On("Del", mock.Anything, []string{cache.LatestRateConfigKey}).Return(nil).Once()

	err := cache.NewRateConfigCache(repo, rdb, time.Minute).SaveRateConfiguration(context.Background(), *sampleConfig())

	require.NoError(t, err)
	rdb.AssertExpectations(t)
}

func TestFindLatest_SaveDuringMissIsNotOverwritten(t *testing.T) {
	rdb := newMemRedis()
	repo := new(MockRateConfigRepository)
	stale := sampleConfig()
	fresh := sampleConfig()
	fresh.ID = "cfg-2"
	c := cache.NewRateConfigCache(repo, rdb, time.Minute)

	// The reader loads the old row, then an operator saves before the reader
	// writes the cache.
	repo.On("SaveRateConfiguration", mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("FindLatestRateConfiguration", mock.Anything).Return(stale, nil).Once().Run(func(mock.Arguments) {
		require.NoError(t, c.SaveRateConfiguration(context.Background(), *fresh))
	})

	got, err := c.FindLatestRateConfiguration(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cfg-1", got.ID)

	next, err := c.FindLatestRateConfiguration(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cfg-2", next.ID)
	repo.AssertExpectations(t)
}

func TestSave_FailureKeepsCache(t *testing.T) {
	rdb := new(MockRedis)
	repo := new(MockRateConfigRepository)
	dbErr := errors.New("insert failed")
	repo.On("SaveRateConfiguration", mock.Anything, mock.Anything).Return(dbErr)

	err := cache.NewRateConfigCache(repo, rdb, time.Minute).SaveRateConfiguration(context.Background(), *sampleConfig())

	assert.ErrorIs(t, err, dbErr)
	rdb.AssertNotCalled(t, "Del", mock.Anything, mock.Anything)
}

func TestDisabledWithoutTTL(t *testing.T) {
	repo := new(MockRateConfigRepository)
	assert.Same(t, repo, cache.NewRateConfigCache(repo, new(MockRedis), 0))
}
