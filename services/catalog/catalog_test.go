package catalog

import (
	"testing"

	"partyplan/database/repository/packages"
	"partyplan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePackageRepo struct {
	packages.PackageRepository
	active      []models.ServicePackage
	listErr     error
	created     *models.ServicePackage
	hasBookings bool
	deactivated bool
	deleted     bool
}

func (f *fakePackageRepo) ListActive() ([]models.ServicePackage, error) {
	return f.active, f.listErr
}

func (f *fakePackageRepo) Create(pkg *models.ServicePackage) error {
	f.created = pkg
	return nil
}

func (f *fakePackageRepo) HasBookings(id string) (bool, error) {
	return f.hasBookings, nil
}

func (f *fakePackageRepo) SetActive(id string, active bool) error {
	f.deactivated = !active
	return nil
}

func (f *fakePackageRepo) Delete(id string) error {
	f.deleted = true
	return nil
}

func TestListActiveWithoutCacheHitsRepo(t *testing.T) {
	repo := &fakePackageRepo{active: []models.ServicePackage{{ID: "pkg-1", Title: "Deluxe Party"}}}
	svc := &DefaultCatalogService{Repo: repo, Logger: zap.NewNop()}

	pkgs, err := svc.ListActive()
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	assert.Equal(t, "Deluxe Party", pkgs[0].Title)
}

func TestCreateDefaultsToActive(t *testing.T) {
	repo := &fakePackageRepo{}
	svc := &DefaultCatalogService{Repo: repo, Logger: zap.NewNop()}

	pkg, err := svc.Create(models.ServicePackageInput{
		Title:    "Deluxe Party",
		Price:    299,
		Capacity: 20,
	})
	require.NoError(t, err)
	assert.True(t, pkg.IsActive)
	assert.NotEmpty(t, pkg.ID)
	require.NotNil(t, repo.created)
	assert.Equal(t, pkg.ID, repo.created.ID)
}

func TestRemoveDeactivatesBookedPackage(t *testing.T) {
	repo := &fakePackageRepo{hasBookings: true}
	svc := &DefaultCatalogService{Repo: repo, Logger: zap.NewNop()}

	deleted, err := svc.Remove("pkg-1")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.True(t, repo.deactivated)
	assert.False(t, repo.deleted)
}

func TestRemoveDeletesUnbookedPackage(t *testing.T) {
	repo := &fakePackageRepo{hasBookings: false}
	svc := &DefaultCatalogService{Repo: repo, Logger: zap.NewNop()}

	deleted, err := svc.Remove("pkg-1")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.True(t, repo.deleted)
	assert.False(t, repo.deactivated)
}
