package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-crosschain-bridge/internal/logger"
	"github.com/sbilibin2017/gw-crosschain-bridge/internal/models"
)

// DepositTargetCacheRepository caches exchange deposit targets in Redis.
// Targets are immutable per (coin, chain) once the exchange assigns them,
// so a cached read is always as good as a live lookup.
type DepositTargetCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached targets, 0 keeps them forever
}

// NewDepositTargetCacheRepository creates a new repository instance with optional TTL.
func NewDepositTargetCacheRepository(client *redis.Client, expiration time.Duration) *DepositTargetCacheRepository {
	return &DepositTargetCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func depositTargetKey(coin, chain string) string {
	return fmt.Sprintf("deposit_target:%s:%s", coin, chain)
}

// GetDepositTarget fetches a cached deposit target for a (coin, chain) pair.
func (r *DepositTargetCacheRepository) GetDepositTarget(ctx context.Context, coin, chain string) (models.DepositTarget, error) {
	key := depositTargetKey(coin, chain)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("deposit target cache read",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return models.DepositTarget{}, fmt.Errorf("deposit target not found in cache for %s on %s", coin, chain)
		}
		return models.DepositTarget{}, err
	}

	var target models.DepositTarget
	if err := json.Unmarshal([]byte(val), &target); err != nil {
		logger.Log.Errorw("deposit target cache decode",
			"key", key,
			"value", val,
			"error", err,
		)
		return models.DepositTarget{}, err
	}

	logger.Log.Infow("deposit target cache hit",
		"key", key,
		"address", target.Address,
	)
	return target, nil
}

// SetDepositTarget caches a deposit target with the configured expiration.
func (r *DepositTargetCacheRepository) SetDepositTarget(ctx context.Context, coin, chain string, target models.DepositTarget) error {
	key := depositTargetKey(coin, chain)

	data, err := json.Marshal(target)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("deposit target cache write",
		"key", key,
		"address", target.Address,
		"error", err,
	)

	return err
}
