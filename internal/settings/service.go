package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/naturetrails/naturetrails-backend/pkg/db/models"
	pkgerrors "github.com/naturetrails/naturetrails-backend/pkg/errors"
	"github.com/naturetrails/naturetrails-backend/pkg/logger"
)

const (
	cacheName = "site_settings"
	cacheTTL  = 5 * time.Minute
)

type repository interface {
	Get(ctx context.Context) (*models.SiteSettings, error)
	Update(ctx context.Context, updates map[string]any) (*models.SiteSettings, error)
}

type cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CacheKey(name string) string
}

// ServiceParams collects the settings service dependencies. Cache is
// optional; without it every read hits the database.
type ServiceParams struct {
	Repo   repository
	Cache  cache
	Logger *logger.Logger
}

// Service serves and updates the site settings singleton.
type Service struct {
	repo  repository
	cache cache
	logg  *logger.Logger
}

func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("settings repository is required")
	}
	return &Service{repo: params.Repo, cache: params.Cache, logg: params.Logger}, nil
}

// Get returns the current settings, preferring the cache. Cache failures are
// logged and fall through to the database.
func (s *Service) Get(ctx context.Context) (*SettingsDTO, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, s.cache.CacheKey(cacheName)); err == nil {
			var dto SettingsDTO
			if err := json.Unmarshal([]byte(cached), &dto); err == nil {
				return &dto, nil
			}
		}
	}

	row, err := s.repo.Get(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load site settings")
	}
	dto := FromModel(row)

	if s.cache != nil {
		if payload, err := json.Marshal(dto); err == nil {
			if err := s.cache.Set(ctx, s.cache.CacheKey(cacheName), string(payload), cacheTTL); err != nil && s.logg != nil {
				s.logg.Warn(ctx, fmt.Sprintf("failed to cache site settings: %v", err))
			}
		}
	}

	return dto, nil
}

// Update persists partial changes and invalidates the cache.
func (s *Service) Update(ctx context.Context, req UpdateSettingsRequest) (*SettingsDTO, error) {
	updates := map[string]any{}
	if req.LogoURL != nil {
		updates["logo_url"] = strings.TrimSpace(*req.LogoURL)
	}
	if req.PrimaryColor != nil {
		updates["primary_color"] = strings.TrimSpace(*req.PrimaryColor)
	}
	if req.SecondaryColor != nil {
		updates["secondary_color"] = strings.TrimSpace(*req.SecondaryColor)
	}
	if req.FontFamily != nil {
		updates["font_family"] = strings.TrimSpace(*req.FontFamily)
	}
	if req.SiteName != nil {
		updates["site_name"] = strings.TrimSpace(*req.SiteName)
	}

	if len(updates) == 0 {
		return s.Get(ctx)
	}

	row, err := s.repo.Update(ctx, updates)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update site settings")
	}

	if s.cache != nil {
		if err := s.cache.Del(ctx, s.cache.CacheKey(cacheName)); err != nil && s.logg != nil {
			s.logg.Warn(ctx, fmt.Sprintf("failed to invalidate settings cache: %v", err))
		}
	}

	return FromModel(row), nil
}
