// Package cache 請求去重用的短期鍵值儲存
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"vinai-server/internal/infrastructure/config"
	"vinai-server/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// keyPrefix Redis 鍵前綴
const keyPrefix = "vinai:dedup:"

// Store 在 ttl 內只允許同一個 key 寫入一次
type Store interface {
	// SetIfAbsent key 不存在（或已過期）時寫入並回傳 true
	SetIfAbsent(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Close() error
}

// RedisStore 以 Redis SETNX 實作
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 連線 Redis 並測試連接
func NewRedisStore(cfg config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) SetIfAbsent(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, keyPrefix+key, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx: %w", err)
	}
	return ok, nil
}

// Ping 檢查 Redis 連線
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

// sweepThreshold 條目超過此數量時清理過期鍵
const sweepThreshold = 1024

// MemoryStore 單機記憶體實作
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewMemoryStore 創建記憶體儲存
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *MemoryStore) SetIfAbsent(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if expires, ok := s.entries[key]; ok && now.Before(expires) {
		return false, nil
	}
	if len(s.entries) >= sweepThreshold {
		for k, expires := range s.entries {
			if !now.Before(expires) {
				delete(s.entries, k)
			}
		}
	}
	s.entries[key] = now.Add(ttl)
	return true, nil
}

func (s *MemoryStore) Close() error { return nil }

// New 依設定選擇 Redis 或記憶體實作；Redis 無法連線時退回記憶體
func New(cfg config.RedisConfig) Store {
	if !cfg.Enabled {
		return NewMemoryStore()
	}
	rs, err := NewRedisStore(cfg)
	if err != nil {
		common.LogWarn("Redis 無法連線，改用記憶體去重",
			zap.String("addr", cfg.Addr),
			zap.Error(err),
		)
		return NewMemoryStore()
	}
	common.LogInfo("Redis 已連線", zap.String("addr", cfg.Addr))
	return rs
}
