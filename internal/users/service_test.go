package users

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/naturetrails/naturetrails-backend/pkg/db/models"
	pkgerrors "github.com/naturetrails/naturetrails-backend/pkg/errors"
	"github.com/naturetrails/naturetrails-backend/pkg/pagination"
)

type stubRepo struct {
	byID      map[uuid.UUID]*models.User
	rows      []models.User
	lastLimit int
}

func (s *stubRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if user, ok := s.byID[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) List(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.User, error) {
	s.lastLimit = limit
	if limit < len(s.rows) {
		return s.rows[:limit], nil
	}
	return s.rows, nil
}

func TestProfile(t *testing.T) {
	id := uuid.New()
	repo := &stubRepo{byID: map[uuid.UUID]*models.User{
		id: {ID: id, Email: "sam@example.com", FullName: "Sam Okafor"},
	}}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Profile(context.Background(), id)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if dto.Email != "sam@example.com" {
		t.Fatalf("unexpected profile: %+v", dto)
	}

	_, err = svc.Profile(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListEmitsNextCursorOnlyWhenMoreRowsExist(t *testing.T) {
	now := time.Now()
	rows := make([]models.User, 3)
	for i := range rows {
		rows[i] = models.User{ID: uuid.New(), CreatedAt: now.Add(-time.Duration(i) * time.Minute)}
	}
	repo := &stubRepo{rows: rows}
	svc, _ := NewService(repo)

	page, err := svc.List(context.Background(), pagination.Params{Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.lastLimit != 3 {
		t.Fatalf("expected buffered limit 3, got %d", repo.lastLimit)
	}
	if len(page.Users) != 2 {
		t.Fatalf("expected trimmed page, got %d users", len(page.Users))
	}
	if page.NextCursor == "" {
		t.Fatal("expected next cursor")
	}

	cursor, err := pagination.ParseCursor(page.NextCursor)
	if err != nil {
		t.Fatalf("parse next cursor: %v", err)
	}
	if cursor.ID != rows[1].ID {
		t.Fatalf("cursor should point at the last returned row")
	}

	full, err := svc.List(context.Background(), pagination.Params{Limit: 10})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if full.NextCursor != "" {
		t.Fatal("no cursor expected when everything fits on one page")
	}
}

func TestListRejectsMalformedCursor(t *testing.T) {
	svc, _ := NewService(&stubRepo{})

	_, err := svc.List(context.Background(), pagination.Params{Cursor: "not-base64!!"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
