package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"betenlace/dto"
)

const statusTTL = 7 * 24 * time.Hour

// GetFromRedis lấy data từ Redis; found=false nếu key không tồn tại
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) (bool, error) {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return false, err
	}
	return true, nil
}

// SetToRedis lưu dữ liệu vào Redis dạng JSON
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, dataJSON, ttl).Err()
}

// DeleteFromRedis xóa cache Redis
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, key).Err()
}

// StatusKey là khóa cache kết quả upload gần nhất của campaign
func StatusKey(campaign string) string {
	return fmt.Sprintf("ingest:status:%s", strings.ToLower(strings.TrimSpace(campaign)))
}

// StatusCache lưu tóm tắt lần upload gần nhất theo campaign
type StatusCache interface {
	SaveStatus(ctx context.Context, campaign string, summary dto.UploadSummary) error
	LastStatus(ctx context.Context, campaign string) (*dto.UploadSummary, error)
}

// RedisStatusCache implement StatusCache bằng redis
type RedisStatusCache struct {
	rdb *redis.Client
}

func NewRedisStatusCache(rdb *redis.Client) *RedisStatusCache {
	return &RedisStatusCache{rdb: rdb}
}

func (c *RedisStatusCache) SaveStatus(ctx context.Context, campaign string, summary dto.UploadSummary) error {
	return SetToRedis(ctx, c.rdb, StatusKey(campaign), summary, statusTTL)
}

// LastStatus trả về nil nếu chưa có upload nào được ghi nhận
func (c *RedisStatusCache) LastStatus(ctx context.Context, campaign string) (*dto.UploadSummary, error) {
	var summary dto.UploadSummary
	found, err := GetFromRedis(ctx, c.rdb, StatusKey(campaign), &summary)
	if err != nil || !found {
		return nil, err
	}
	return &summary, nil
}

// MemoryStatusCache giữ status trong bộ nhớ, dùng khi không có redis và trong test
type MemoryStatusCache struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewMemoryStatusCache() *MemoryStatusCache {
	return &MemoryStatusCache{items: make(map[string][]byte)}
}

func (c *MemoryStatusCache) SaveStatus(_ context.Context, campaign string, summary dto.UploadSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.items[StatusKey(campaign)] = data
	c.mu.Unlock()
	return nil
}

func (c *MemoryStatusCache) LastStatus(_ context.Context, campaign string) (*dto.UploadSummary, error) {
	c.mu.RLock()
	data, ok := c.items[StatusKey(campaign)]
	c.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var summary dto.UploadSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
