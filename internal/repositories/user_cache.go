package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/utez-accounts/internal/logger"
	"github.com/sbilibin2017/utez-accounts/internal/models"
)

// UserCacheRepository caches user profiles in Redis
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached profiles
}

// NewUserCacheRepository creates a new repository instance
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func userKey(userID uuid.UUID) string {
	return fmt.Sprintf("user:%s", userID)
}

// Get returns the cached profile, or nil on a miss
func (r *UserCacheRepository) Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	key := userKey(userID)

	val, err := r.client.Get(ctx, key).Bytes()
	logger.Log.Infow("cache get",
		"key", key,
		"error", err,
	)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user models.UserDB
	if err := json.Unmarshal(val, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Set caches a profile with expiration
func (r *UserCacheRepository) Set(ctx context.Context, user *models.UserDB) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	key := userKey(user.UserID)
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"error", err,
	)

	return err
}
