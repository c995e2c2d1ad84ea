package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"spa-booking/internal/data/entity"
	"spa-booking/pkg/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DraftRepository stores in-progress wizard sessions in Redis. Each session
// lives under a prefixed key and expires after the configured TTL; every save
// refreshes the TTL so an active visitor never loses their draft mid-flow.
type DraftRepository interface {
	Save(ctx context.Context, session *entity.WizardSession) error
	Find(ctx context.Context, id string) (*entity.WizardSession, error)
	Delete(ctx context.Context, id string) error
}

type draftRepository struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
	log    *zap.Logger
}

func NewDraftRepository(rdb *redis.Client, cfg utils.RedisConfig, log *zap.Logger) DraftRepository {
	return &draftRepository{
		rdb:    rdb,
		prefix: cfg.DraftPrefix,
		ttl:    time.Duration(cfg.DraftTTLMin) * time.Minute,
		log:    log.With(zap.String("repository", "draft")),
	}
}

func (r *draftRepository) key(id string) string {
	return r.prefix + id
}

func (r *draftRepository) Save(ctx context.Context, session *entity.WizardSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal wizard session: %w", err)
	}

	if err := r.rdb.Set(ctx, r.key(session.ID), payload, r.ttl).Err(); err != nil {
		r.log.Error("Failed to save wizard session",
			zap.Error(err),
			zap.String("session_id", session.ID),
		)
		return fmt.Errorf("save wizard session: %w", err)
	}

	return nil
}

func (r *draftRepository) Find(ctx context.Context, id string) (*entity.WizardSession, error) {
	payload, err := r.rdb.Get(ctx, r.key(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to load wizard session",
			zap.Error(err),
			zap.String("session_id", id),
		)
		return nil, fmt.Errorf("load wizard session: %w", err)
	}

	var session entity.WizardSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("unmarshal wizard session: %w", err)
	}

	return &session, nil
}

func (r *draftRepository) Delete(ctx context.Context, id string) error {
	if err := r.rdb.Del(ctx, r.key(id)).Err(); err != nil {
		r.log.Error("Failed to delete wizard session",
			zap.Error(err),
			zap.String("session_id", id),
		)
		return fmt.Errorf("delete wizard session: %w", err)
	}

	return nil
}
