package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"roam/config"
	"roam/infras/kafka"
	"roam/infras/otel"
	"roam/infras/razorpay"
	bookingDto "roam/internal/domains/booking/model/dto"
	bookingRepo "roam/internal/domains/booking/repository"
	catalogModel "roam/internal/domains/catalog/model"
	catalogRepo "roam/internal/domains/catalog/repository"
	"roam/internal/domains/payment/model/dto"
	"roam/shared"
	"roam/shared/constant"
	"roam/shared/failure"
	"roam/shared/timezone"
)

type Payment interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (dto.CreateOrderResponse, error)
	VerifyPayment(ctx context.Context, req dto.VerifyPaymentRequest) (bookingDto.BookingResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	catalogRepo catalogRepo.Catalog
	gateway     razorpay.Gateway
	broker      kafka.Client
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	bookingRepo bookingRepo.Booking,
	catalogRepo catalogRepo.Catalog,
	gateway razorpay.Gateway,
	broker kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Payment {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		gateway:     gateway,
		broker:      broker,
		cfg:         cfg,
		otel:        otel,
	}
}

// loadPackageForOrder fetches the package and rejects orders for packages
// that are missing or closed for booking.
func (s *serviceImpl) loadPackageForOrder(ctx context.Context, packageID string) (catalogModel.TourPackage, error) {
	pkg, err := s.catalogRepo.Get(ctx, shared.FilterByID(packageID, catalogModel.FieldID, catalogModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour package")

		return pkg, fmt.Errorf("failed to get tour package: %w", err)
	}

	if pkg.ID == constant.Empty {
		return pkg, failure.NotFound("tour package not found") // nolint:wrapcheck
	}

	if !pkg.Available {
		return pkg, failure.BadRequestFromString("tour package is not available for booking") // nolint:wrapcheck
	}

	return pkg, nil
}

func (s *serviceImpl) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (res dto.CreateOrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = time.Parse(constant.BookingDateFormat, req.BookingDate); err != nil {
		return res, failure.BadRequestFromString("invalid booking date format, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	pkg, err := s.loadPackageForOrder(ctx, req.PackageID)
	if err != nil {
		return res, err
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	totalAmount := pkg.Price * int64(req.Travelers)
	amountPaise := totalAmount * constant.GatewayMinorUnit
	receipt := constant.GatewayReceiptPrefix + strconv.FormatInt(timezone.Now().UnixMilli(), 10)

	order, err := s.gateway.CreateOrder(ctx, amountPaise, constant.GatewayCurrencyINR, receipt, map[string]any{
		"package_id": req.PackageID,
		"user_id":    userID,
	})
	if err != nil {
		log.Error().Err(err).Str("package_id", req.PackageID).Msg("failed to create payment order")

		return res, fmt.Errorf("failed to create payment order: %w", err)
	}

	return dto.CreateOrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Receipt:  order.Receipt,
		KeyID:    s.gateway.KeyID(),
	}, nil
}

// VerifyPayment checks the gateway signature and, only when it matches,
// records the booking as paid and confirmed. A mismatch writes nothing.
func (s *serviceImpl) VerifyPayment(ctx context.Context, req dto.VerifyPaymentRequest) (res bookingDto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		log.Warn().
			Str("order_id", req.RazorpayOrderID).
			Str("payment_id", req.RazorpayPaymentID).
			Msg("payment signature mismatch")

		return res, failure.InvalidSignatureError
	}

	bookingDate, err := time.Parse(constant.BookingDateFormat, req.BookingDate)
	if err != nil {
		return res, failure.BadRequestFromString("invalid booking date format, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	pkg, err := s.loadPackageForOrder(ctx, req.PackageID)
	if err != nil {
		return res, err
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	totalAmount := pkg.Price * int64(req.Travelers)

	booking := req.ToBookingModel(userID, bookingDate, totalAmount)

	if err = s.bookingRepo.Insert(ctx, booking); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("payment already recorded") // nolint:wrapcheck
		}

		// The payment went through at the gateway but the booking row did
		// not land. Keep enough context in the log to reconcile manually.
		log.Error().Err(err).
			Str("user_id", userID).
			Str("package_id", req.PackageID).
			Str("gateway_order_id", req.RazorpayOrderID).
			Str("gateway_payment_id", req.RazorpayPaymentID).
			Msg("verified payment could not be recorded")

		return res, fmt.Errorf("failed to record booking: %w", err)
	}

	s.publishBookingCreated(ctx, booking.ID, bookingDto.BookingCreatedEvent{
		BookingID:        booking.ID,
		UserID:           booking.UserID,
		PackageID:        booking.PackageID,
		TotalAmount:      booking.TotalAmount,
		GatewayOrderID:   booking.GatewayOrderID,
		GatewayPaymentID: booking.GatewayPaymentID,
		BookingStatus:    booking.BookingStatus,
	})

	booking.PackageTitle = pkg.Title
	booking.PackageLocation = pkg.Location

	res.FromModel(booking)

	return res, nil
}

// publishBookingCreated is best effort. A broker outage must not fail a
// payment that has already been verified and stored.
func (s *serviceImpl) publishBookingCreated(ctx context.Context, key string, event bookingDto.BookingCreatedEvent) {
	topic := s.cfg.Kafka.Topics.BookingCreated
	if topic == constant.Empty {
		return
	}

	err := s.broker.SendMessages(ctx, topic, kafka.Message{Key: key, Value: event})
	if err != nil {
		log.Warn().Err(err).Str("booking_id", key).Msg("failed to publish booking created event")
	}
}
