package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/naturetrails/naturetrails-backend/pkg/enums"
	pkgerrors "github.com/naturetrails/naturetrails-backend/pkg/errors"
)

// Stats is the back-office dashboard summary.
type Stats struct {
	TotalUsers        int64           `json:"total_users"`
	TotalPackages     int64           `json:"total_packages"`
	ActivePackages    int64           `json:"active_packages"`
	TotalBookings     int64           `json:"total_bookings"`
	PendingBookings   int64           `json:"pending_bookings"`
	ConfirmedBookings int64           `json:"confirmed_bookings"`
	CancelledBookings int64           `json:"cancelled_bookings"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
}

type userCounter interface {
	Count(ctx context.Context) (int64, error)
}

type packageCounter interface {
	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}

type bookingCounter interface {
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status enums.BookingStatus) (int64, error)
	ConfirmedRevenue(ctx context.Context) (decimal.Decimal, error)
}

// ServiceParams collects the dashboard dependencies.
type ServiceParams struct {
	Users    userCounter
	Packages packageCounter
	Bookings bookingCounter
}

// Service aggregates counts for the admin dashboard.
type Service struct {
	users    userCounter
	packages packageCounter
	bookings bookingCounter
}

func NewService(params ServiceParams) (*Service, error) {
	if params.Users == nil || params.Packages == nil || params.Bookings == nil {
		return nil, fmt.Errorf("dashboard service requires users, packages, and bookings repositories")
	}
	return &Service{
		users:    params.Users,
		packages: params.Packages,
		bookings: params.Bookings,
	}, nil
}

// Stats gathers the dashboard counters. Revenue only counts confirmed
// bookings.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{TotalRevenue: decimal.Zero}

	var err error
	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count users")
	}
	if stats.TotalPackages, err = s.packages.Count(ctx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count packages")
	}
	if stats.ActivePackages, err = s.packages.CountActive(ctx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count active packages")
	}
	if stats.TotalBookings, err = s.bookings.Count(ctx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count bookings")
	}
	if stats.PendingBookings, err = s.bookings.CountByStatus(ctx, enums.BookingStatusPending); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count pending bookings")
	}
	if stats.ConfirmedBookings, err = s.bookings.CountByStatus(ctx, enums.BookingStatusConfirmed); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count confirmed bookings")
	}
	if stats.CancelledBookings, err = s.bookings.CountByStatus(ctx, enums.BookingStatusCancelled); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count cancelled bookings")
	}
	if stats.TotalRevenue, err = s.bookings.ConfirmedRevenue(ctx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "sum confirmed revenue")
	}

	return stats, nil
}
