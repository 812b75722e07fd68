package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-queue-api/internal/delivery/dto"
	"clinic-queue-api/internal/usecase"

	"github.com/stretchr/testify/assert"
)

type mockAnalyticsUsecase struct {
	SummaryFunc func(ctx context.Context) (*dto.SummaryResponse, error)
	ByDayFunc   func(ctx context.Context, days int) ([]dto.DayBucketResponse, error)
}

func (m *mockAnalyticsUsecase) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	return m.SummaryFunc(ctx)
}

func (m *mockAnalyticsUsecase) ByDay(ctx context.Context, days int) ([]dto.DayBucketResponse, error) {
	return m.ByDayFunc(ctx, days)
}

var _ usecase.AnalyticsUsecase = (*mockAnalyticsUsecase)(nil)

func TestAnalyticsHandler_GetSummary(t *testing.T) {
	h := NewAnalyticsHandler(&mockAnalyticsUsecase{
		SummaryFunc: func(ctx context.Context) (*dto.SummaryResponse, error) {
			return &dto.SummaryResponse{
				Total:          4,
				ByStatus:       dto.StatusCounts{Scheduled: 2, Completed: 1, Cancelled: 1},
				CancelRate:     0.25,
				CompletionRate: 0.25,
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/summary", nil)
	rec := httptest.NewRecorder()
	h.GetSummary(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":4`)
	// All four status keys stay present, zeros included
	assert.Contains(t, rec.Body.String(), `"checked_in":0`)
}

func TestAnalyticsHandler_GetByDay(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		wantDays       int
		byDayErr       error
		expectedStatus int
	}{
		{
			name:           "defaults to a 14 day window",
			query:          "",
			wantDays:       14,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "explicit window is forwarded",
			query:          "?days=7",
			wantDays:       7,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "non-numeric window maps to 400",
			query:          "?days=week",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "out of range window maps to 400",
			query:          "?days=91",
			wantDays:       91,
			byDayErr:       usecase.ErrInvalidDaysRange,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAnalyticsHandler(&mockAnalyticsUsecase{
				ByDayFunc: func(ctx context.Context, days int) ([]dto.DayBucketResponse, error) {
					assert.Equal(t, tt.wantDays, days)
					if tt.byDayErr != nil {
						return nil, tt.byDayErr
					}
					return make([]dto.DayBucketResponse, days), nil
				},
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/by-day"+tt.query, nil)
			rec := httptest.NewRecorder()
			h.GetByDay(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
