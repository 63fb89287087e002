package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	packagesvc "github.com/naturetrails/naturetrails-backend/internal/packages"
	pkgerrors "github.com/naturetrails/naturetrails-backend/pkg/errors"
)

type stubPackageService struct {
	browsed    []packagesvc.PackageDTO
	lastFilter packagesvc.Filter
	getResult  *packagesvc.PackageDTO
	getErr     error
	all        []packagesvc.PackageDTO
	created    *packagesvc.PackageDTO
	createErr  error
	updated    *packagesvc.PackageDTO
	updateErr  error
	deleteErr  error
}

func (s *stubPackageService) Browse(ctx context.Context, filter packagesvc.Filter) ([]packagesvc.PackageDTO, error) {
	s.lastFilter = filter
	return s.browsed, nil
}

func (s *stubPackageService) Get(ctx context.Context, id uuid.UUID) (*packagesvc.PackageDTO, error) {
	return s.getResult, s.getErr
}

func (s *stubPackageService) ListAll(ctx context.Context) ([]packagesvc.PackageDTO, error) {
	return s.all, nil
}

func (s *stubPackageService) Create(ctx context.Context, req packagesvc.CreatePackageRequest) (*packagesvc.PackageDTO, error) {
	return s.created, s.createErr
}

func (s *stubPackageService) Update(ctx context.Context, id uuid.UUID, req packagesvc.UpdatePackageRequest) (*packagesvc.PackageDTO, error) {
	return s.updated, s.updateErr
}

func (s *stubPackageService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteErr
}

func TestListPackagesParsesFilters(t *testing.T) {
	svc := &stubPackageService{browsed: []packagesvc.PackageDTO{{Title: "Alpine Trek"}}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/packages?search=trek&destination=peru&price_range=500-1000", nil)
	resp := httptest.NewRecorder()

	ListPackages(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastFilter.Search != "trek" || svc.lastFilter.Destination != "peru" {
		t.Fatalf("filter not forwarded: %+v", svc.lastFilter)
	}
	if svc.lastFilter.PriceRange == nil {
		t.Fatal("price range not parsed")
	}

	var envelope struct {
		Data []packagesvc.PackageDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].Title != "Alpine Trek" {
		t.Fatalf("unexpected payload: %+v", envelope.Data)
	}
}

func TestListPackagesRejectsBadPriceRange(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/packages?price_range=abc", nil)
	resp := httptest.NewRecorder()

	ListPackages(&stubPackageService{}, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestGetPackageRejectsMalformedID(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/packages/{packageID}", GetPackage(&stubPackageService{}, nil))

	req := httptest.NewRequest(http.MethodGet, "/packages/not-a-uuid", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestGetPackageNotFound(t *testing.T) {
	router := chi.NewRouter()
	svc := &stubPackageService{getErr: pkgerrors.New(pkgerrors.CodeNotFound, "package not found")}
	router.Get("/packages/{packageID}", GetPackage(svc, nil))

	req := httptest.NewRequest(http.MethodGet, "/packages/"+uuid.NewString(), nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
