//go:build integration

package repositories

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"wallof.love/database"
	"wallof.love/database/seeders"
	"wallof.love/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newPostgresDB gerçek bir PostgreSQL container'ı açar ve migration'ları uygular.
func newPostgresDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("wallotest"),
		postgres.WithUsername("wallo"),
		postgres.WithPassword("wallo"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("container kapatılamadı: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, database.RunMigrationsInOrder(db))
	require.NoError(t, seeders.SeedTypes(db))
	return db
}

func TestPostgresConcurrentModerationHasOneWinner(t *testing.T) {
	db := newPostgresDB(t)
	owner := seedUser(t, db, "owner@example.com")
	form := seedForm(t, db, owner.ID)
	tm := seedTestimonial(t, db, form, "Ali", 5, models.TestimonialStatusPending, time.Now().UTC())

	repo := NewTestimonialRepositoryTx(db)
	targets := []models.TestimonialStatus{models.TestimonialStatusApproved, models.TestimonialStatusRejected}
	errs := make([]error, len(targets))

	var wg sync.WaitGroup
	for i, to := range targets {
		wg.Add(1)
		go func(i int, to models.TestimonialStatus) {
			defer wg.Done()
			errs[i] = repo.TransitionStatus(context.Background(), tm.ID, owner.ID,
				models.TestimonialStatusPending, to, time.Now().UTC())
		}(i, to)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrStatusConflict):
			conflicts++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, conflicts)
}

func TestPostgresLockForUpdateSerializesWriters(t *testing.T) {
	db := newPostgresDB(t)
	owner := seedUser(t, db, "owner@example.com")
	form := seedForm(t, db, owner.ID)

	forms := NewFormRepositoryTx(db)
	fields := NewFormFieldRepositoryTx(db)
	tx := NewTransactorTx(db)

	// her yazar formu kilitleyip sıradaki indeksi okur; kilit olmadan aynı indeks iki kez verilirdi
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx := models.WithUserID(context.Background(), owner.ID)
			err := tx.Transaction(ctx, func(ctx context.Context) error {
				if _, err := forms.LockForUpdate(ctx, form.ID); err != nil {
					return err
				}
				existing, err := fields.FindByFormID(ctx, form.ID)
				if err != nil {
					return err
				}
				return fields.Create(ctx, &models.FormField{
					FormID: form.ID, FieldType: "text", Label: "Alan", OrderIndex: len(existing),
				})
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := fields.FindByFormID(context.Background(), form.ID)
	require.NoError(t, err)
	require.Len(t, stored, 5)
	for i, f := range stored {
		assert.Equal(t, i, f.OrderIndex)
	}
}

func TestPostgresTestimonialRoundTrip(t *testing.T) {
	db := newPostgresDB(t)
	owner := seedUser(t, db, "owner@example.com")
	form := seedForm(t, db, owner.ID)
	at := time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC)

	repo := NewTestimonialRepositoryTx(db)
	tm := &models.Testimonial{
		FormID: form.ID, UserID: owner.ID, Name: "Ali", Email: "ali@example.com",
		Rating: 4, Content: "Memnunum", Status: models.TestimonialStatusApproved,
		CustomFields: map[string]any{"1": "Yönetici", "2": []string{"Web", "API"}, "3": 5},
		CreatedAt:    at, UpdatedAt: at,
	}
	require.NoError(t, repo.Create(context.Background(), tm))

	got, err := repo.FindByID(context.Background(), tm.ID)
	require.NoError(t, err)
	assert.Equal(t, "Yönetici", got.CustomFields["1"])
	assert.Equal(t, []any{"Web", "API"}, got.CustomFields["2"])
	assert.EqualValues(t, 5, got.CustomFields["3"])
	assert.True(t, at.Equal(got.CreatedAt))

	wall, err := repo.FindApprovedByOwner(context.Background(), owner.ID, 0)
	require.NoError(t, err)
	require.Len(t, wall, 1)
}
