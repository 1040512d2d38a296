package lock

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"travel-loyalty-booking/internal/pkg/errs"
	"travel-loyalty-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "booking:cancellation:lock:"

// Deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Pushes the expiry out only while the key still holds our token.
var extendScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// RedisLocker holds a booking for as long as the caller has not released it:
// the key is renewed every third of its TTL, so a long ledger batch never
// outlives the lock. The TTL only matters if the holder dies.
type RedisLocker struct {
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisLocker(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *RedisLocker {
	if logger == nil {
		logger = slog.Default()
	}
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &RedisLocker{client: client, ttl: ttl, logger: logger}
}

func (l *RedisLocker) Acquire(ctx context.Context, bookingID uuid.UUID) (func(context.Context), error) {
	key := keyPrefix + bookingID.String()
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, errs.Wrapf(err, "failed to acquire lock for booking %s", bookingID)
	}
	if !ok {
		return nil, shared.ErrLockNotAcquired
	}

	renewCtx, stopRenewal := context.WithCancel(context.WithoutCancel(ctx))
	renewed := make(chan struct{})
	go func() {
		defer close(renewed)
		l.keepAlive(renewCtx, key, token, bookingID)
	}()

	var once sync.Once
	return func(ctx context.Context) {
		once.Do(func() {
			stopRenewal()
			<-renewed
			if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
				l.logger.WarnContext(ctx, "failed to release booking lock",
					"booking_id", bookingID.String(),
					"error", err.Error())
			}
		})
	}, nil
}

func (l *RedisLocker) keepAlive(ctx context.Context, key, token string, bookingID uuid.UUID) {
	ticker := time.NewTicker(max(l.ttl/3, time.Millisecond))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		held, err := extendScript.Run(ctx, l.client, []string{key}, token, l.ttl.Milliseconds()).Int()
		switch {
		case ctx.Err() != nil:
			return
		case err != nil:
			l.logger.WarnContext(ctx, "failed to renew booking lock",
				"booking_id", bookingID.String(),
				"error", err.Error())
		case held == 0:
			l.logger.ErrorContext(ctx, "booking lock lost before release",
				"booking_id", bookingID.String())
			return
		}
	}
}
