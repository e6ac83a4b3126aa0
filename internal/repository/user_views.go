package repository

import (
	"context"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	redisx "github.com/KimTaekGwan/FinancialFlowApp/internal/redis"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/models"
)

const userViewKeyPrefix = "user:view:"

// userViewTTL bounds staleness if an invalidation is ever missed.
const userViewTTL = 60 * time.Second

// UserViewRepository serves user profile reads through the Redis view cache,
// falling back to the store on a miss. Without Redis it degrades to plain
// store reads. The cached projection goes through JSON, so the password
// hash (json:"-") never lands in Redis.
type UserViewRepository struct {
	store UserStore
	cache *redisx.ViewCache[models.User]
}

func NewUserViewRepository(store UserStore, client *goredis.Client) *UserViewRepository {
	var cache *redisx.ViewCache[models.User]
	if client != nil {
		cache = redisx.NewViewCache[models.User](client, userViewTTL)
	}
	return &UserViewRepository{store: store, cache: cache}
}

// GetByID returns the user view from Redis first, then the store.
func (r *UserViewRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	key := userViewKey(id)
	if view, ok := r.cache.Get(ctx, key); ok {
		return view, nil
	}
	user, err := r.store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	// Warm the cache
	r.CacheUserView(ctx, user)
	return user, nil
}

// CacheUserView stores or refreshes the cached view for a user.
// Called by the command service after every balance mutation.
func (r *UserViewRepository) CacheUserView(ctx context.Context, user *models.User) {
	r.cache.Set(ctx, userViewKey(user.ID), user)
}

// InvalidateUserView drops the cached view for a user.
func (r *UserViewRepository) InvalidateUserView(ctx context.Context, userID int) {
	r.cache.Delete(ctx, userViewKey(userID))
}

func userViewKey(id int) string {
	return userViewKeyPrefix + strconv.Itoa(id)
}
