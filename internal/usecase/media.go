package usecase

//go:generate mockgen -source=$GOFILE -destination=../../tests/mock/usecase/$GOFILE -package=usecasemock

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"dive-booking-gateway/internal/domain/media"
	"dive-booking-gateway/internal/pkg/config"
	"dive-booking-gateway/internal/pkg/errs"
)

var ErrInvalidFilename = errors.New("filename required")

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type MediaGateway interface {
	FindByFilename(ctx context.Context, filename string) (*media.Asset, error)
}

type MediaUseCase interface {
	ResolveMedia(ctx context.Context, filename string) (*media.Asset, error)
}

type mediaUseCaseImpl struct {
	gateway MediaGateway
	cache   Cache
	hitTTL  time.Duration
	missTTL time.Duration
	logger  *slog.Logger
}

// cachedMedia stores misses too, so a missing file is not looked up on every page view.
type cachedMedia struct {
	Found bool         `json:"found"`
	Asset *media.Asset `json:"asset,omitempty"`
}

func NewMediaUseCase(gateway MediaGateway, cache Cache, cfg config.Config, logger *slog.Logger) MediaUseCase {
	return &mediaUseCaseImpl{
		gateway: gateway,
		cache:   cache,
		hitTTL:  cfg.Cache.MediaHitTTL,
		missTTL: cfg.Cache.MediaMissTTL,
		logger:  logger,
	}
}

func mediaCacheKey(filename string) string {
	return "media:" + media.NormalizeFilename(filename)
}

func (m *mediaUseCaseImpl) ResolveMedia(ctx context.Context, filename string) (*media.Asset, error) {
	name := media.NormalizeFilename(filename)
	if name == "" || name == "." || name == "/" {
		return nil, ErrInvalidFilename
	}
	key := mediaCacheKey(filename)

	if raw, ok, err := m.cache.Get(ctx, key); err != nil {
		m.logger.Warn("Media cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	} else if ok {
		var cm cachedMedia
		if err := json.Unmarshal(raw, &cm); err == nil {
			if cm.Found && cm.Asset != nil {
				return cm.Asset, nil
			}
			return nil, errs.ErrMediaNotFound
		}
	}

	asset, err := m.gateway.FindByFilename(ctx, filename)
	if err != nil {
		m.store(ctx, key, cachedMedia{Found: false}, m.missTTL)
		if errors.Is(err, errs.ErrMediaNotFound) {
			return nil, errs.ErrMediaNotFound
		}
		return nil, errs.Wrap(err, "media lookup failed")
	}

	m.store(ctx, key, cachedMedia{Found: true, Asset: asset}, m.hitTTL)
	return asset, nil
}

func (m *mediaUseCaseImpl) store(ctx context.Context, key string, v cachedMedia, ttl time.Duration) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := m.cache.Set(ctx, key, raw, ttl); err != nil {
		m.logger.Warn("Media cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
