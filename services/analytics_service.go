package services

import (
	"context"

	"wallof.love/models"
	"wallof.love/repositories"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// RecentLimit panelde gösterilen son tanıklık sayısı.
const RecentLimit = 5

// Summary hesap başına istatistiklerdir.
type Summary struct {
	Total    int64
	Approved int64
	Pending  int64
	Rejected int64
	// AverageRating tüm tanıklıkların ortalaması, tek ondalık.
	AverageRating decimal.Decimal
	// ApprovedAverageRating yalnızca onaylıların ortalaması (ana sayfa kartı).
	ApprovedAverageRating decimal.Decimal
	FormCount             int64
	Recent                []models.Testimonial
}

// ApprovalRate onaylı kayıtların yüzdesi, tek ondalık.
func (s Summary) ApprovalRate() decimal.Decimal {
	if s.Total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(s.Approved).Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(s.Total)).Round(1)
}

// RoundRating ortalamayı tek ondalığa yuvarlar.
func RoundRating(avg float64) decimal.Decimal {
	return decimal.NewFromFloat(avg).Round(1)
}

// IAnalyticsService istatistikler için arayüz.
type IAnalyticsService interface {
	Summary(ctx context.Context, userID uint) (*Summary, error)
}

type AnalyticsService struct {
	testimonials repositories.ITestimonialRepository
	forms        repositories.IFormRepository
}

func NewAnalyticsService() IAnalyticsService {
	return NewAnalyticsServiceWith(repositories.NewTestimonialRepository(), repositories.NewFormRepository())
}

func NewAnalyticsServiceWith(testimonials repositories.ITestimonialRepository, forms repositories.IFormRepository) *AnalyticsService {
	return &AnalyticsService{testimonials: testimonials, forms: forms}
}

// Summary sorguları eşzamanlı çalıştırır; biri hata verirse diğerleri iptal edilir.
func (s *AnalyticsService) Summary(ctx context.Context, userID uint) (*Summary, error) {
	var (
		out        Summary
		counts     repositories.StatusCounts
		avgAll     float64
		avgApprove float64
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts, err = s.testimonials.CountByStatus(ctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		avgAll, _, err = s.testimonials.AverageRating(ctx, userID, "")
		return err
	})
	g.Go(func() error {
		var err error
		avgApprove, _, err = s.testimonials.AverageRating(ctx, userID, models.TestimonialStatusApproved)
		return err
	})
	g.Go(func() error {
		var err error
		out.FormCount, err = s.forms.CountByUserID(ctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		out.Recent, err = s.testimonials.FindRecentByOwner(ctx, userID, RecentLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.Total = counts.Total()
	out.Approved = counts.Approved
	out.Pending = counts.Pending
	out.Rejected = counts.Rejected
	out.AverageRating = RoundRating(avgAll)
	out.ApprovedAverageRating = RoundRating(avgApprove)
	return &out, nil
}

var _ IAnalyticsService = (*AnalyticsService)(nil)
