package catalog

import (
	"context"
	"encoding/json"
	"time"

	"partyplan/database/repository/packages"
	"partyplan/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const activeCacheKey = "catalog:active"
const activeCacheTTL = 5 * time.Minute

// DefaultCatalogService is the default implementation backed by Postgres
// with a Redis cache in front of the public listing.
type DefaultCatalogService struct {
	Repo   packages.PackageRepository
	Cache  *redis.Client // optional; nil disables caching
	Logger *zap.Logger
}

// ListActive returns the active packages, served from cache when possible.
func (s *DefaultCatalogService) ListActive() ([]models.ServicePackage, error) {
	ctx := context.Background()

	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, activeCacheKey).Result(); err == nil {
			var pkgs []models.ServicePackage
			if err := json.Unmarshal([]byte(data), &pkgs); err == nil {
				return pkgs, nil
			}
			// Corrupt cache entry; fall through to the database.
		}
	}

	pkgs, err := s.Repo.ListActive()
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(pkgs); err == nil {
			if err := s.Cache.Set(ctx, activeCacheKey, data, activeCacheTTL).Err(); err != nil {
				s.Logger.Warn("failed to cache catalog listing", zap.Error(err))
			}
		}
	}
	return pkgs, nil
}

// ListAll returns every package for the admin panel, bypassing the cache.
func (s *DefaultCatalogService) ListAll() ([]models.ServicePackage, error) {
	return s.Repo.ListAll()
}

// GetByID returns one package.
func (s *DefaultCatalogService) GetByID(id string) (*models.ServicePackage, error) {
	return s.Repo.GetByID(id)
}

// Create inserts a new package from admin input.
func (s *DefaultCatalogService) Create(input models.ServicePackageInput) (*models.ServicePackage, error) {
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	pkg := &models.ServicePackage{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.Duration,
		Capacity:    input.Capacity,
		ImageURL:    input.ImageURL,
		IsActive:    active,
		Features:    input.Features,
	}
	if err := s.Repo.Create(pkg); err != nil {
		return nil, err
	}
	s.invalidate()
	return pkg, nil
}

// Update saves admin edits to an existing package.
func (s *DefaultCatalogService) Update(id string, input models.ServicePackageInput) (*models.ServicePackage, error) {
	pkg, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	pkg.Title = input.Title
	pkg.Description = input.Description
	pkg.Price = input.Price
	pkg.Duration = input.Duration
	pkg.Capacity = input.Capacity
	pkg.ImageURL = input.ImageURL
	pkg.Features = input.Features
	if input.IsActive != nil {
		pkg.IsActive = *input.IsActive
	}
	if err := s.Repo.Update(pkg); err != nil {
		return nil, err
	}
	s.invalidate()
	return pkg, nil
}

// Remove hard-deletes a package without bookings and deactivates one with
// bookings, so historical records keep their package reference.
func (s *DefaultCatalogService) Remove(id string) (bool, error) {
	hasBookings, err := s.Repo.HasBookings(id)
	if err != nil {
		return false, err
	}
	if hasBookings {
		if err := s.Repo.SetActive(id, false); err != nil {
			return false, err
		}
		s.invalidate()
		return false, nil
	}
	if err := s.Repo.Delete(id); err != nil {
		return false, err
	}
	s.invalidate()
	return true, nil
}

func (s *DefaultCatalogService) invalidate() {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(context.Background(), activeCacheKey).Err(); err != nil {
		s.Logger.Warn("failed to invalidate catalog cache", zap.Error(err))
	}
}
