package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"betenlace/errors"
	"betenlace/utils"
)

// Locker giữ khóa upload theo (campaign, ngày); hai lần upload cùng khóa không được chạy song song
type Locker interface {
	Acquire(ctx context.Context, campaignID uint, day time.Time) (release func(), err error)
}

// Key tạo khóa redis cho (campaign, ngày)
func Key(campaignID uint, day time.Time) string {
	return fmt.Sprintf("ingest:lock:%d:%s", campaignID, utils.FormatDay(day))
}

// releaseScript chỉ xóa khóa khi token còn khớp (không xóa khóa của người khác sau khi hết TTL)
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker dùng SET NX PX, thử lại tới khi ctx hết hạn
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	retry  time.Duration
}

func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{client: client, ttl: ttl, retry: 200 * time.Millisecond}
}

func (l *RedisLocker) Acquire(ctx context.Context, campaignID uint, day time.Time) (func(), error) {
	key := Key(campaignID, day)
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeLockTimeout, "không lấy được khóa upload", err)
		}
		if ok {
			return func() {
				releaseScript.Run(context.Background(), l.client, []string{key}, token)
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, errors.NewAppError(errors.ErrCodeLockTimeout,
				fmt.Sprintf("campaign %d ngày %s đang được xử lý", campaignID, utils.FormatDay(day)), ctx.Err())
		case <-time.After(l.retry):
		}
	}
}

// LocalLocker khóa trong một process, dùng khi không có redis
type LocalLocker struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{slots: make(map[string]chan struct{})}
}

func (l *LocalLocker) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch, ok := l.slots[key]
	if !ok {
		ch = make(chan struct{}, 1)
		l.slots[key] = ch
	}
	return ch
}

func (l *LocalLocker) Acquire(ctx context.Context, campaignID uint, day time.Time) (func(), error) {
	key := Key(campaignID, day)
	ch := l.slot(key)

	select {
	case ch <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() { <-ch })
		}, nil
	case <-ctx.Done():
		return nil, errors.NewAppError(errors.ErrCodeLockTimeout,
			fmt.Sprintf("campaign %d ngày %s đang được xử lý", campaignID, utils.FormatDay(day)), ctx.Err())
	}
}
