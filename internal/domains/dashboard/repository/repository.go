package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"roam/infras/otel"
	"roam/infras/postgres"
	bookingModel "roam/internal/domains/booking/model"
	"roam/internal/domains/dashboard/model/dto"
	"roam/shared/constant"
	"roam/shared/logger"
)

// Dashboard aggregates booking activity for the admin overview. Revenue only
// counts bookings whose payment succeeded.
type Dashboard interface {
	TotalRevenue(ctx context.Context) (int64, error)
	TopLocations(ctx context.Context, limit int) ([]dto.LocationCount, error)
	DailyBookings(ctx context.Context, days int) ([]dto.DailyCount, error)
	RecentBookings(ctx context.Context, limit int) ([]bookingModel.Booking, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Dashboard {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) TotalRevenue(ctx context.Context) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dashboard.TotalRevenue")
	defer scope.End()

	query := `SELECT COALESCE(SUM(total_amount), 0) FROM bookings WHERE payment_status = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var revenue int64

	err := repo.db.Read.GetContext(ctx, &revenue, query, bookingModel.PaymentStatusSuccess)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to sum booking revenue: %w", err)
	}

	return revenue, nil
}

func (repo *repositoryImpl) TopLocations(ctx context.Context, limit int) ([]dto.LocationCount, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dashboard.TopLocations")
	defer scope.End()

	query := `SELECT tour_packages.location AS location, COUNT(bookings.id) AS bookings
		FROM bookings
		JOIN tour_packages ON tour_packages.id = bookings.package_id
		GROUP BY tour_packages.location
		ORDER BY bookings DESC, location ASC
		LIMIT $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var locations []dto.LocationCount

	err := repo.db.Read.SelectContext(ctx, &locations, query, limit)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get top locations: %w", err)
	}

	return locations, nil
}

func (repo *repositoryImpl) DailyBookings(ctx context.Context, days int) ([]dto.DailyCount, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dashboard.DailyBookings")
	defer scope.End()

	query := `SELECT TO_CHAR(created_at, 'YYYY-MM-DD') AS day, COUNT(id) AS bookings
		FROM bookings
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 day')
		GROUP BY day
		ORDER BY day ASC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var counts []dto.DailyCount

	err := repo.db.Read.SelectContext(ctx, &counts, query, days)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get daily bookings: %w", err)
	}

	return counts, nil
}

func (repo *repositoryImpl) RecentBookings(ctx context.Context, limit int) ([]bookingModel.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dashboard.RecentBookings")
	defer scope.End()

	query := `SELECT bookings.*, users.name AS user_name, users.email AS user_email,
			tour_packages.title AS package_title, tour_packages.location AS package_location
		FROM bookings
		LEFT JOIN users ON users.id = bookings.user_id
		LEFT JOIN tour_packages ON tour_packages.id = bookings.package_id
		ORDER BY bookings.created_at DESC
		LIMIT $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var bookings []bookingModel.Booking

	err := repo.db.Read.SelectContext(ctx, &bookings, query, limit)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	return bookings, nil
}
