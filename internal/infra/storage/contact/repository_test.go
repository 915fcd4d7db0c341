package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/om-engineers/OME-BookingService/internal/domain"
)

func TestUpsertCreatesNewContact(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	contact, created, err := repo.Upsert(ctx, &domain.Contact{
		Name:  "Priya Sharma",
		Phone: "+91 98765 43210",
		Email: "priya@example.com",
	})
	require.NoError(t, err)

	assert.True(t, created)
	assert.NotEmpty(t, contact.ID)
	assert.False(t, contact.CreatedAt.IsZero())
	assert.Equal(t, 1, repo.Len())
}

func TestUpsertMatchesByNormalizedPhone(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	first, created, err := repo.Upsert(ctx, &domain.Contact{
		Name:  "Priya Sharma",
		Phone: "+91 98765 43210",
		Email: "priya@example.com",
	})
	require.NoError(t, err)
	require.True(t, created)

	// Тот же номер в другом форматировании — это тот же контакт
	second, created, err := repo.Upsert(ctx, &domain.Contact{
		Name:  "Priya S.",
		Phone: "919876543210",
		Email: "priya.sharma@example.com",
	})
	require.NoError(t, err)

	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, repo.Len())

	// Непустые поля перезаписаны последним запросом
	assert.Equal(t, "Priya S.", second.Name)
	assert.Equal(t, "priya.sharma@example.com", second.Email)
}

func TestUpsertKeepsFieldsWhenIncomingEmpty(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, _, err := repo.Upsert(ctx, &domain.Contact{
		Name:    "Arun Kumar",
		Phone:   "9876543210",
		Email:   "arun@example.com",
		Address: "42 MG Road",
	})
	require.NoError(t, err)

	updated, created, err := repo.Upsert(ctx, &domain.Contact{
		Name:  "Arun Kumar",
		Phone: "9876543210",
	})
	require.NoError(t, err)

	assert.False(t, created)
	assert.Equal(t, "arun@example.com", updated.Email)
	assert.Equal(t, "42 MG Road", updated.Address)
}

func TestGetByPhone(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	created, _, err := repo.Upsert(ctx, &domain.Contact{
		Name:  "Priya Sharma",
		Phone: "+91 98765 43210",
	})
	require.NoError(t, err)

	found, err := repo.GetByPhone(ctx, "91-98765-43210")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.GetByPhone(ctx, "1234567890")
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := NewRepository()

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestSearch(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, _, err := repo.Upsert(ctx, &domain.Contact{Name: "Priya Sharma", Phone: "9876543210", Email: "priya@example.com"})
	require.NoError(t, err)
	_, _, err = repo.Upsert(ctx, &domain.Contact{Name: "Arun Kumar", Phone: "9123456789", Email: "arun@example.com"})
	require.NoError(t, err)

	found, err := repo.Search(ctx, "sharma")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Priya Sharma", found[0].Name)

	found, err = repo.Search(ctx, "9123")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Arun Kumar", found[0].Name)

	// Пустой запрос возвращает всех
	found, err = repo.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestSearchMatchesFormattedPhoneByDigits(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, _, err := repo.Upsert(ctx, &domain.Contact{Name: "Priya Sharma", Phone: "+91 98765 43210", Email: "priya@example.com"})
	require.NoError(t, err)

	// Запрос цифрами находит телефон, сохранённый с форматированием
	found, err := repo.Search(ctx, "9876543210")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Priya Sharma", found[0].Name)

	// И наоборот: отформатированный запрос находит тот же контакт
	found, err = repo.Search(ctx, "+91 98765 43210")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Priya Sharma", found[0].Name)
}

func TestListReturnsContactsInCreationOrder(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, _, err := repo.Upsert(ctx, &domain.Contact{Name: "Priya Sharma", Phone: "9876543210"})
	require.NoError(t, err)
	_, _, err = repo.Upsert(ctx, &domain.Contact{Name: "Arun Kumar", Phone: "9123456789"})
	require.NoError(t, err)

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Priya Sharma", listed[0].Name)
	assert.Equal(t, "Arun Kumar", listed[1].Name)
}
