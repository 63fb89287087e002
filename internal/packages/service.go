package packages

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/naturetrails/naturetrails-backend/pkg/db/models"
	pkgerrors "github.com/naturetrails/naturetrails-backend/pkg/errors"
)

// Service defines the behavior needed by the package controllers.
type Service interface {
	Browse(ctx context.Context, filter Filter) ([]PackageDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*PackageDTO, error)
	ListAll(ctx context.Context) ([]PackageDTO, error)
	Create(ctx context.Context, req CreatePackageRequest) (*PackageDTO, error)
	Update(ctx context.Context, id uuid.UUID, req UpdatePackageRequest) (*PackageDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository interface {
	ListActive(ctx context.Context) ([]models.TravelPackage, error)
	ListAll(ctx context.Context) ([]models.TravelPackage, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.TravelPackage, error)
	Create(ctx context.Context, pkg *models.TravelPackage) (*models.TravelPackage, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.TravelPackage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repository
}

// NewService constructs a package service with the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("package repository is required")
	}
	return &service{repo: repo}, nil
}

// Browse lists active packages and narrows them with the in-memory filter.
// The catalog is small enough that filtering after the fetch keeps search,
// destination, and price semantics in one place.
func (s *service) Browse(ctx context.Context, filter Filter) ([]PackageDTO, error) {
	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list packages")
	}
	return filter.Apply(FromModels(rows)), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*PackageDTO, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "package not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load package")
	}
	return FromModel(row), nil
}

func (s *service) ListAll(ctx context.Context) ([]PackageDTO, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list packages")
	}
	return FromModels(rows), nil
}

func (s *service) Create(ctx context.Context, req CreatePackageRequest) (*PackageDTO, error) {
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	maxTravelers := req.MaxTravelers
	if maxTravelers <= 0 {
		maxTravelers = 10
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	row, err := s.repo.Create(ctx, &models.TravelPackage{
		Title:          strings.TrimSpace(req.Title),
		Destination:    strings.TrimSpace(req.Destination),
		Description:    req.Description,
		Price:          price,
		DurationDays:   req.DurationDays,
		Images:         pq.StringArray(req.Images),
		AvailableDates: pq.StringArray(req.AvailableDates),
		MaxTravelers:   maxTravelers,
		IsActive:       isActive,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create package")
	}
	return FromModel(row), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdatePackageRequest) (*PackageDTO, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Destination != nil {
		updates["destination"] = strings.TrimSpace(*req.Destination)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		price, err := parsePrice(*req.Price)
		if err != nil {
			return nil, err
		}
		updates["price"] = price
	}
	if req.DurationDays != nil {
		updates["duration_days"] = *req.DurationDays
	}
	if req.Images != nil {
		updates["images"] = pq.StringArray(*req.Images)
	}
	if req.AvailableDates != nil {
		updates["available_dates"] = pq.StringArray(*req.AvailableDates)
	}
	if req.MaxTravelers != nil {
		updates["max_travelers"] = *req.MaxTravelers
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		return s.Get(ctx, id)
	}

	row, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update package")
	}
	return FromModel(row), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "package not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete package")
	}
	return nil
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, pkgerrors.New(pkgerrors.CodeValidation, "price must be a decimal number")
	}
	if price.IsNegative() {
		return decimal.Decimal{}, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	return price, nil
}
