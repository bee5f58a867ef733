package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/shift-scheduler/internal/config"
	"github.com/BruksfildServices01/shift-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// UserDirectory is a read-through cache in front of another directory.
// Only id lookups are cached; email lookups serve login and need the
// password hash, which is never written to redis.
type UserDirectory struct {
	next   user.Store
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewUserDirectory(next user.Store, client *redis.Client, ttl time.Duration, log *zap.Logger) *UserDirectory {
	return &UserDirectory{
		next:   next,
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func userKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (d *UserDirectory) FindByID(ctx context.Context, id uint) (*models.User, error) {
	data, err := d.client.Get(ctx, userKey(id)).Bytes()
	switch {
	case err == nil:
		var u models.User
		if jsonErr := json.Unmarshal(data, &u); jsonErr == nil {
			return &u, nil
		}
	case errors.Is(err, redis.Nil):
	default:
		d.log.Warn("user cache read failed", zap.Uint("user_id", id), zap.Error(err))
	}

	u, err := d.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d.store(ctx, u)
	return u, nil
}

func (d *UserDirectory) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return d.next.FindByEmail(ctx, email)
}

func (d *UserDirectory) Create(ctx context.Context, u *models.User) error {
	if err := d.next.Create(ctx, u); err != nil {
		return err
	}
	d.store(ctx, u)
	return nil
}

func (d *UserDirectory) List(ctx context.Context) ([]models.User, error) {
	return d.next.List(ctx)
}

func (d *UserDirectory) Update(ctx context.Context, id uint, changes user.Changes) (*models.User, error) {
	u, err := d.next.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	d.evict(ctx, id)
	return u, nil
}

func (d *UserDirectory) Delete(ctx context.Context, id uint) error {
	if err := d.next.Delete(ctx, id); err != nil {
		return err
	}
	d.evict(ctx, id)
	return nil
}

// evict drops the cached entry so the next lookup sees the new role and
// active flag.
func (d *UserDirectory) evict(ctx context.Context, id uint) {
	if err := d.client.Del(ctx, userKey(id)).Err(); err != nil {
		d.log.Warn("user cache evict failed", zap.Uint("user_id", id), zap.Error(err))
	}
}

func (d *UserDirectory) store(ctx context.Context, u *models.User) {
	data, err := json.Marshal(u)
	if err != nil {
		return
	}
	if err := d.client.Set(ctx, userKey(u.ID), data, d.ttl).Err(); err != nil {
		d.log.Warn("user cache write failed", zap.Uint("user_id", u.ID), zap.Error(err))
	}
}

var _ user.Store = (*UserDirectory)(nil)
