package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"roam/config"
	"roam/infras/otel"
	bookingDto "roam/internal/domains/booking/model/dto"
	bookingRepo "roam/internal/domains/booking/repository"
	catalogRepo "roam/internal/domains/catalog/repository"
	"roam/internal/domains/dashboard/model/dto"
	"roam/internal/domains/dashboard/repository"
	userRepo "roam/internal/domains/user/repository"
	"roam/shared/cache"
	"roam/shared/constant"
	gDto "roam/shared/dto"
)

const (
	cacheDashboardStats = "dashboard:stats"

	recentBookingLimit = 5
	topLocationLimit   = 5
	dailyBookingDays   = 30
)

type Dashboard interface {
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	repo        repository.Dashboard
	bookingRepo bookingRepo.Booking
	catalogRepo catalogRepo.Catalog
	userRepo    userRepo.User
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Dashboard,
	bookingRepo bookingRepo.Booking,
	catalogRepo catalogRepo.Catalog,
	userRepo userRepo.User,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Dashboard {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheDashboardStats, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheDashboardStats).Msg("cache hit for dashboard stats")

		return res, nil
	}

	empty := gDto.FilterGroup{}

	res.TotalUsers, err = s.userRepo.Count(ctx, empty)
	if err != nil {
		return res, fmt.Errorf("failed to count users: %w", err)
	}

	res.TotalPackages, err = s.catalogRepo.Count(ctx, empty)
	if err != nil {
		return res, fmt.Errorf("failed to count tour packages: %w", err)
	}

	res.TotalBookings, err = s.bookingRepo.Count(ctx, empty)
	if err != nil {
		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	res.TotalRevenue, err = s.repo.TotalRevenue(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to sum revenue: %w", err)
	}

	recent, err := s.repo.RecentBookings(ctx, recentBookingLimit)
	if err != nil {
		return res, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	res.RecentBookings = make([]bookingDto.BookingResponse, len(recent))
	for i, booking := range recent {
		res.RecentBookings[i].FromModel(booking)
	}

	res.TopLocations, err = s.repo.TopLocations(ctx, topLocationLimit)
	if err != nil {
		return res, fmt.Errorf("failed to get top locations: %w", err)
	}

	res.DailyBookings, err = s.repo.DailyBookings(ctx, dailyBookingDays)
	if err != nil {
		return res, fmt.Errorf("failed to get daily bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheDashboardStats, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard stats to cache")
		}
	}()

	return res, nil
}
