package services

import (
	"context"
	"errors"
	"testing"

	"wallof.love/models"
	"wallof.love/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTestimonialRepo struct {
	repositories.ITestimonialRepository
	counts      repositories.StatusCounts
	avgAll      float64
	avgApproved float64
	recent      []models.Testimonial
	recentLimit int
	countErr    error
}

func (r *stubTestimonialRepo) CountByStatus(ctx context.Context, userID uint) (repositories.StatusCounts, error) {
	return r.counts, r.countErr
}

func (r *stubTestimonialRepo) AverageRating(ctx context.Context, userID uint, status models.TestimonialStatus) (float64, int64, error) {
	if status == models.TestimonialStatusApproved {
		return r.avgApproved, r.counts.Approved, nil
	}
	return r.avgAll, r.counts.Total(), nil
}

func (r *stubTestimonialRepo) FindRecentByOwner(ctx context.Context, userID uint, limit int) ([]models.Testimonial, error) {
	r.recentLimit = limit
	return r.recent, nil
}

type stubFormRepo struct {
	repositories.IFormRepository
	count int64
}

func (r *stubFormRepo) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	return r.count, nil
}

func TestSummaryAggregates(t *testing.T) {
	testimonials := &stubTestimonialRepo{
		counts:      repositories.StatusCounts{Pending: 1, Approved: 2, Rejected: 1},
		avgAll:      4.25,
		avgApproved: 4.666,
		recent:      []models.Testimonial{{Name: "Ali"}, {Name: "Veli"}},
	}
	svc := NewAnalyticsServiceWith(testimonials, &stubFormRepo{count: 3})

	s, err := svc.Summary(context.Background(), 1)
	require.NoError(t, err)
	assert.EqualValues(t, 4, s.Total)
	assert.EqualValues(t, 2, s.Approved)
	assert.EqualValues(t, 1, s.Pending)
	assert.EqualValues(t, 1, s.Rejected)
	assert.Equal(t, "4.3", s.AverageRating.String())
	assert.Equal(t, "4.7", s.ApprovedAverageRating.String())
	assert.EqualValues(t, 3, s.FormCount)
	assert.Len(t, s.Recent, 2)
	assert.Equal(t, RecentLimit, testimonials.recentLimit)
	assert.Equal(t, "50", s.ApprovalRate().String())
}

func TestSummaryEmptyAccount(t *testing.T) {
	svc := NewAnalyticsServiceWith(&stubTestimonialRepo{}, &stubFormRepo{})

	s, err := svc.Summary(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, s.Total)
	assert.True(t, s.AverageRating.IsZero())
	assert.True(t, s.ApprovalRate().IsZero())
	assert.Empty(t, s.Recent)
}

func TestSummaryPropagatesErrors(t *testing.T) {
	boom := errors.New("bağlantı koptu")
	svc := NewAnalyticsServiceWith(&stubTestimonialRepo{countErr: boom}, &stubFormRepo{})

	_, err := svc.Summary(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}

func TestRoundRating(t *testing.T) {
	assert.Equal(t, "3.3", RoundRating(10.0/3.0).String())
	assert.Equal(t, "5", RoundRating(5).String())
	assert.Equal(t, "0", RoundRating(0).String())
	assert.Equal(t, "1.5", RoundRating(1.45).String())
}
