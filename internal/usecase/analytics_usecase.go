package usecase

import (
	"context"
	"time"

	"clinic-queue-api/internal/delivery/dto"
	"clinic-queue-api/internal/domain/entity"
	"clinic-queue-api/internal/domain/repository"
	"clinic-queue-api/internal/service"

	"github.com/sirupsen/logrus"
)

const (
	// Bounds on the by-day aggregation window, in calendar days
	MinWindowDays     = 1
	MaxWindowDays     = 90
	DefaultWindowDays = 14
)

type AnalyticsUsecase interface {
	Summary(ctx context.Context) (*dto.SummaryResponse, error)
	ByDay(ctx context.Context, days int) ([]dto.DayBucketResponse, error)
}

type analyticsUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	analyticsCache  *service.AnalyticsCacheService

	// clock for the aggregation window, swapped out in tests
	now func() time.Time
}

func NewAnalyticsUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	analyticsCache *service.AnalyticsCacheService,
) AnalyticsUsecase {
	return &analyticsUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		analyticsCache:  analyticsCache,
		now:             time.Now,
	}
}

// Summary returns overall appointment counts and derived rates. Statuses
// outside the four enumerated values are ignored, so total always equals the
// sum of the reported buckets.
func (u *analyticsUsecase) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	var cached dto.SummaryResponse
	if u.analyticsCache.GetSummary(ctx, &cached) {
		return &cached, nil
	}

	counts, err := u.appointmentRepo.CountByStatus(ctx)
	if err != nil {
		u.log.Warnf("Failed to count appointments by status: %+v", err)
		return nil, err
	}

	summary := &dto.SummaryResponse{
		ByStatus: dto.StatusCounts{
			Scheduled: counts[string(entity.AppointmentStatusScheduled)],
			CheckedIn: counts[string(entity.AppointmentStatusCheckedIn)],
			Completed: counts[string(entity.AppointmentStatusCompleted)],
			Cancelled: counts[string(entity.AppointmentStatusCancelled)],
		},
	}
	summary.Total = summary.ByStatus.Scheduled + summary.ByStatus.CheckedIn +
		summary.ByStatus.Completed + summary.ByStatus.Cancelled

	if summary.Total > 0 {
		summary.CancelRate = float64(summary.ByStatus.Cancelled) / float64(summary.Total)
		summary.CompletionRate = float64(summary.ByStatus.Completed) / float64(summary.Total)
	}

	u.analyticsCache.SetSummary(ctx, summary)
	return summary, nil
}

// ByDay buckets appointments by calendar date over a window of days ending
// today (inclusive), oldest date first. Dates with no appointments appear
// with all-zero counts. Calendar truncation is done in UTC.
func (u *analyticsUsecase) ByDay(ctx context.Context, days int) ([]dto.DayBucketResponse, error) {
	if days < MinWindowDays || days > MaxWindowDays {
		return nil, ErrInvalidDaysRange
	}

	today := u.now().UTC().Truncate(24 * time.Hour)
	start := today.AddDate(0, 0, -(days - 1))

	rows, err := u.appointmentRepo.CountByDayAndStatus(ctx, start)
	if err != nil {
		u.log.Warnf("Failed to aggregate appointments by day: %+v", err)
		return nil, err
	}

	out := make([]dto.DayBucketResponse, days)
	buckets := make(map[string]*dto.DayBucketResponse, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		out[i] = dto.DayBucketResponse{Day: day}
		buckets[day] = &out[i]
	}

	for _, row := range rows {
		bucket, ok := buckets[row.Day]
		if !ok {
			// Outside the window (e.g. scheduled past today)
			continue
		}
		switch entity.AppointmentStatus(row.Status) {
		case entity.AppointmentStatusScheduled:
			bucket.Scheduled += row.Count
		case entity.AppointmentStatusCheckedIn:
			bucket.CheckedIn += row.Count
		case entity.AppointmentStatusCompleted:
			bucket.Completed += row.Count
		case entity.AppointmentStatusCancelled:
			bucket.Cancelled += row.Count
		default:
			// Unexpected status strings are skipped, not fatal
			continue
		}
		bucket.Total += row.Count
	}

	return out, nil
}
