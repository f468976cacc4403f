package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roam/config"
	"roam/infras/otel/mocks"
	bookingMocks "roam/internal/domains/booking/mocks"
	bookingModel "roam/internal/domains/booking/model"
	catalogMocks "roam/internal/domains/catalog/mocks"
	dashboardMocks "roam/internal/domains/dashboard/mocks"
	"roam/internal/domains/dashboard/model/dto"
	"roam/internal/domains/dashboard/service"
	userMocks "roam/internal/domains/user/mocks"
	cacheMocks "roam/shared/cache/mocks"
	"roam/shared/timezone"
)

func TestDashboardService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := dashboardMocks.NewMockDashboard(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCatalogRepo := catalogMocks.NewMockCatalog(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookingRepo, mockCatalogRepo, mockUserRepo, cfg, mockCache, mockOtel)

	t.Run("aggregates all metrics", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockUserRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(42, nil)

		mockCatalogRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(7, nil)

		mockBookingRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(19, nil)

		mockRepo.EXPECT().
			TotalRevenue(gomock.Any()).
			Return(int64(570000), nil)

		mockRepo.EXPECT().
			RecentBookings(gomock.Any(), 5).
			Return([]bookingModel.Booking{
				{
					ID:            "booking-id-123",
					UserID:        "user-id-123",
					PackageID:     "package-id-123",
					BookingDate:   timezone.Now(),
					Travelers:     2,
					TotalAmount:   30000,
					PaymentStatus: bookingModel.PaymentStatusSuccess,
					BookingStatus: bookingModel.BookingStatusConfirmed,
				},
			}, nil)

		mockRepo.EXPECT().
			TopLocations(gomock.Any(), 5).
			Return([]dto.LocationCount{{Location: "Kerala", Bookings: 12}}, nil)

		mockRepo.EXPECT().
			DailyBookings(gomock.Any(), 30).
			Return([]dto.DailyCount{{Day: "2026-08-30", Bookings: 3}}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Stats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 42, res.TotalUsers)
		assert.Equal(t, 7, res.TotalPackages)
		assert.Equal(t, 19, res.TotalBookings)
		assert.Equal(t, int64(570000), res.TotalRevenue)
		assert.Len(t, res.RecentBookings, 1)
		assert.Len(t, res.TopLocations, 1)
		assert.Len(t, res.DailyBookings, 1)
	})

	t.Run("cache hit skips repositories", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.Stats(context.Background())

		assert.NoError(t, err)
	})

	t.Run("count error is surfaced", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockUserRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error"))

		_, err := svc.Stats(context.Background())

		assert.Error(t, err)
	})
}
