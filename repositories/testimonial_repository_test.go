package repositories

import (
	"context"
	"testing"
	"time"

	"wallof.love/models"
	"wallof.love/pkg/queryparams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestimonialCustomFieldsRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "owner@example.com")
	form := seedForm(t, db, user.ID)
	repo := NewTestimonialRepositoryTx(db)

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	tm := &models.Testimonial{
		FormID: form.ID, UserID: user.ID, Name: "Ada", Email: "ada@example.com",
		Rating: 5, Content: "Süper", Status: models.TestimonialStatusPending,
		CustomFields: map[string]any{"1": []string{"A", "C"}, "2": 4},
		CreatedAt:    at, UpdatedAt: at,
	}
	require.NoError(t, repo.Create(ctx, tm))

	got, err := repo.FindByID(ctx, tm.ID)
	require.NoError(t, err)
	assert.Equal(t, []any{"A", "C"}, got.CustomFields["1"])
	assert.Equal(t, float64(4), got.CustomFields["2"])
	assert.True(t, got.CreatedAt.Equal(at))
}

func TestTestimonialCreateRejectsInvalid(t *testing.T) {
	db := newTestDB(t)
	repo := NewTestimonialRepositoryTx(db)

	assert.Error(t, repo.Create(context.Background(), &models.Testimonial{UserID: 1, Status: models.TestimonialStatusPending}))
	assert.Error(t, repo.Create(context.Background(), &models.Testimonial{FormID: 1, UserID: 1, Status: "archived"}))
}

func TestWallShowsOnlyApprovedNewestFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	form := seedForm(t, db, owner.ID)
	otherForm := seedForm(t, db, other.ID)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seedTestimonial(t, db, form, "Eski", 4, models.TestimonialStatusApproved, base)
	seedTestimonial(t, db, form, "Yeni", 5, models.TestimonialStatusApproved, base.Add(48*time.Hour))
	seedTestimonial(t, db, form, "Bekleyen", 3, models.TestimonialStatusPending, base.Add(72*time.Hour))
	seedTestimonial(t, db, form, "Red", 1, models.TestimonialStatusRejected, base.Add(96*time.Hour))
	seedTestimonial(t, db, otherForm, "Başka", 5, models.TestimonialStatusApproved, base.Add(time.Hour))

	repo := NewTestimonialRepositoryTx(db)
	wall, err := repo.FindApprovedByOwner(ctx, owner.ID, 0)
	require.NoError(t, err)
	require.Len(t, wall, 2)
	assert.Equal(t, "Yeni", wall[0].Name)
	assert.Equal(t, "Eski", wall[1].Name)

	limited, err := repo.FindApprovedByOwner(ctx, owner.ID, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestTransitionStatus(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	form := seedForm(t, db, owner.ID)
	at := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	tm := seedTestimonial(t, db, form, "Ada", 5, models.TestimonialStatusPending, at)
	repo := NewTestimonialRepositoryTx(db)

	later := at.Add(time.Hour)
	require.NoError(t, repo.TransitionStatus(ctx, tm.ID, owner.ID,
		models.TestimonialStatusPending, models.TestimonialStatusApproved, later))

	got, err := repo.FindByID(ctx, tm.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TestimonialStatusApproved, got.Status)
	assert.True(t, got.UpdatedAt.Equal(later))
	assert.True(t, got.CreatedAt.Equal(at), "created_at değişmemeli")
	assert.Equal(t, "Ada", got.Name)

	// ikinci onay artık pending olmadığı için çakışır
	err = repo.TransitionStatus(ctx, tm.ID, owner.ID,
		models.TestimonialStatusPending, models.TestimonialStatusRejected, later)
	assert.ErrorIs(t, err, ErrStatusConflict)

	// başka hesabın kaydı görünmez
	err = repo.TransitionStatus(ctx, tm.ID, owner.ID+100,
		models.TestimonialStatusApproved, models.TestimonialStatusRejected, later)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRejectedDisappearsFromWall(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	form := seedForm(t, db, owner.ID)
	at := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	tm := seedTestimonial(t, db, form, "Ada", 5, models.TestimonialStatusApproved, at)
	repo := NewTestimonialRepositoryTx(db)

	require.NoError(t, repo.TransitionStatus(ctx, tm.ID, owner.ID,
		models.TestimonialStatusApproved, models.TestimonialStatusRejected, at.Add(time.Minute)))

	wall, err := repo.FindApprovedByOwner(ctx, owner.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, wall)
}

func TestFindByOwnerPaginatedFilters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	form := seedForm(t, db, owner.ID)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seedTestimonial(t, db, form, "Ayşe", 5, models.TestimonialStatusPending, base)
	seedTestimonial(t, db, form, "Mehmet", 4, models.TestimonialStatusApproved, base.Add(time.Hour))
	seedTestimonial(t, db, form, "Zeynep", 2, models.TestimonialStatusPending, base.Add(2*time.Hour))
	repo := NewTestimonialRepositoryTx(db)

	params := queryparams.DefaultListParams("created_at")
	params.Status = "pending"
	items, total, err := repo.FindByOwnerPaginated(ctx, owner.ID, params)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, "Zeynep", items[0].Name)

	params = queryparams.DefaultListParams("created_at")
	params.Status = "all"
	params.Name = "mehmet"
	items, total, err = repo.FindByOwnerPaginated(ctx, owner.ID, params)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Mehmet", items[0].Name)
}

func TestCountsAndAverages(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	form := seedForm(t, db, owner.ID)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seedTestimonial(t, db, form, "A", 5, models.TestimonialStatusApproved, base)
	seedTestimonial(t, db, form, "B", 4, models.TestimonialStatusApproved, base)
	seedTestimonial(t, db, form, "C", 2, models.TestimonialStatusPending, base)
	seedTestimonial(t, db, form, "D", 1, models.TestimonialStatusRejected, base)
	repo := NewTestimonialRepositoryTx(db)

	counts, err := repo.CountByStatus(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCounts{Pending: 1, Approved: 2, Rejected: 1}, counts)
	assert.Equal(t, int64(4), counts.Total())

	avg, n, err := repo.AverageRating(ctx, owner.ID, "")
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.InDelta(t, 3.0, avg, 0.0001)

	avg, n, err = repo.AverageRating(ctx, owner.ID, models.TestimonialStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.InDelta(t, 4.5, avg, 0.0001)

	avg, n, err = repo.AverageRating(ctx, owner.ID+1, "")
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, avg)
}

func TestSearchFoldsTurkishCapitals(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	form := seedForm(t, db, owner.ID)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seedTestimonial(t, db, form, "İLKER ŞAHİN", 5, models.TestimonialStatusApproved, base)
	seedTestimonial(t, db, form, "Işık", 4, models.TestimonialStatusApproved, base.Add(time.Hour))
	repo := NewTestimonialRepositoryTx(db)

	for term, want := range map[string]string{
		"ilker şahin": "İLKER ŞAHİN",
		"ILKER":       "İLKER ŞAHİN",
		"ışık":        "Işık",
		"IŞIK":        "Işık",
	} {
		params := queryparams.DefaultListParams("created_at")
		params.Name = term
		items, total, err := repo.FindByOwnerPaginated(ctx, owner.ID, params)
		require.NoError(t, err, term)
		require.Equal(t, int64(1), total, term)
		assert.Equal(t, want, items[0].Name, term)
	}
}
