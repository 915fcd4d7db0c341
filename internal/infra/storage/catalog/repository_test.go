package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/om-engineers/OME-BookingService/internal/domain"
)

func seededRepository(t *testing.T) *Repository {
	t.Helper()

	repo := NewRepository()
	require.NoError(t, repo.Seed(context.Background(), DefaultOfferings()))
	return repo
}

func TestSeedAssignsStableIDs(t *testing.T) {
	repo := seededRepository(t)
	ctx := context.Background()

	listed, err := repo.List(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, listed, 8)

	for _, offering := range listed {
		assert.NotEmpty(t, offering.ID)
		assert.False(t, offering.CreatedAt.IsZero())
	}

	// Порядок выдачи совпадает с порядком засева
	assert.Equal(t, "Electrical Repair", listed[0].Name)
	assert.Equal(t, "Pest Control", listed[7].Name)

	// ID разрешаются обратно
	found, err := repo.GetByID(ctx, listed[0].ID)
	require.NoError(t, err)
	assert.Equal(t, listed[0].Name, found.Name)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := seededRepository(t)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestListFiltersByCategory(t *testing.T) {
	repo := seededRepository(t)

	listed, err := repo.List(context.Background(), domain.CategoryHVAC, "")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "AC Repair & Service", listed[0].Name)
}

func TestListFiltersByQuery(t *testing.T) {
	repo := seededRepository(t)

	listed, err := repo.List(context.Background(), "", "repair")
	require.NoError(t, err)

	names := make([]string, 0, len(listed))
	for _, offering := range listed {
		names = append(names, offering.Name)
	}
	assert.Contains(t, names, "Electrical Repair")
	assert.Contains(t, names, "AC Repair & Service")
	assert.Contains(t, names, "Home Appliance Repair")
	assert.NotContains(t, names, "Painting Services")
}

func TestListSkipsInactive(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, []domain.ServiceOffering{
		{Name: "Active", Category: domain.CategoryPlumbing, IsActive: true},
		{Name: "Retired", Category: domain.CategoryPlumbing, IsActive: false},
	}))

	listed, err := repo.List(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Active", listed[0].Name)

	// Неактивная услуга всё ещё доступна по ID для исторических заявок
	assert.Equal(t, 2, repo.Len())
}

func TestCategoriesSortedAndDistinct(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, []domain.ServiceOffering{
		{Name: "Pipe fix", Category: domain.CategoryPlumbing, IsActive: true},
		{Name: "Drain cleaning", Category: domain.CategoryPlumbing, IsActive: true},
		{Name: "Rewiring", Category: domain.CategoryElectrical, IsActive: true},
		{Name: "Old offering", Category: domain.CategoryPainting, IsActive: false},
	}))

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)

	assert.Equal(t, []domain.ServiceCategory{domain.CategoryElectrical, domain.CategoryPlumbing}, categories)
}
