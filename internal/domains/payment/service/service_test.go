package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roam/config"
	kafkaMocks "roam/infras/kafka/mocks"
	"roam/infras/otel/mocks"
	"roam/infras/razorpay"
	razorpayMocks "roam/infras/razorpay/mocks"
	bookingMocks "roam/internal/domains/booking/mocks"
	bookingModel "roam/internal/domains/booking/model"
	catalogMocks "roam/internal/domains/catalog/mocks"
	catalogModel "roam/internal/domains/catalog/model"
	"roam/internal/domains/payment/model/dto"
	"roam/internal/domains/payment/service"
	"roam/shared/constant"
	"roam/shared/failure"
	gModel "roam/shared/model"
	"roam/shared/timezone"
)

func validPackage() catalogModel.TourPackage {
	return catalogModel.TourPackage{
		ID:           "package-id-123",
		Title:        "Backwaters of Kerala",
		Description:  "Five days on the houseboats",
		Location:     "Kerala",
		Price:        15000,
		DurationDays: 5,
		MaxGroupSize: 12,
		Available:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func TestPaymentService_CreateOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCatalogRepo := catalogMocks.NewMockCatalog(ctrl)
	mockGateway := razorpayMocks.NewMockGateway(ctrl)
	mockBroker := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockBookingRepo, mockCatalogRepo, mockGateway, mockBroker, cfg, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateOrderRequest
		setupMock func()
		check     func(t *testing.T, res dto.CreateOrderResponse, err error)
	}{
		{
			name: "successful order creation",
			req: dto.CreateOrderRequest{
				PackageID:   "package-id-123",
				Travelers:   2,
				BookingDate: "2026-10-15",
			},
			setupMock: func() {
				mockCatalogRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validPackage(), nil)

				mockGateway.EXPECT().
					CreateOrder(gomock.Any(), int64(3000000), constant.GatewayCurrencyINR, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, amount int64, currency, receipt string, _ map[string]any) (razorpay.Order, error) {
						assert.True(t, strings.HasPrefix(receipt, constant.GatewayReceiptPrefix))

						return razorpay.Order{
							ID:       "order_MkxYz1234567890",
							Amount:   amount,
							Currency: currency,
							Receipt:  receipt,
							Status:   "created",
						}, nil
					})

				mockGateway.EXPECT().
					KeyID().
					Return("rzp_test_key")
			},
			check: func(t *testing.T, res dto.CreateOrderResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "order_MkxYz1234567890", res.OrderID)
				// 15000 rupees x 2 travelers x 100 paise.
				assert.Equal(t, int64(3000000), res.Amount)
				assert.Equal(t, constant.GatewayCurrencyINR, res.Currency)
				assert.Equal(t, "rzp_test_key", res.KeyID)
			},
		},
		{
			name: "invalid booking date",
			req: dto.CreateOrderRequest{
				PackageID:   "package-id-123",
				Travelers:   2,
				BookingDate: "15-10-2026",
			},
			setupMock: func() {},
			check: func(t *testing.T, _ dto.CreateOrderResponse, err error) {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))
			},
		},
		{
			name: "package not found",
			req: dto.CreateOrderRequest{
				PackageID:   "missing-package",
				Travelers:   2,
				BookingDate: "2026-10-15",
			},
			setupMock: func() {
				mockCatalogRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(catalogModel.TourPackage{}, nil)
			},
			check: func(t *testing.T, _ dto.CreateOrderResponse, err error) {
				assert.Error(t, err)
				assert.Equal(t, 404, failure.GetCode(err))
			},
		},
		{
			name: "package unavailable",
			req: dto.CreateOrderRequest{
				PackageID:   "package-id-123",
				Travelers:   2,
				BookingDate: "2026-10-15",
			},
			setupMock: func() {
				pkg := validPackage()
				pkg.Available = false

				mockCatalogRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pkg, nil)
			},
			check: func(t *testing.T, _ dto.CreateOrderResponse, err error) {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))
			},
		},
		{
			name: "gateway error",
			req: dto.CreateOrderRequest{
				PackageID:   "package-id-123",
				Travelers:   2,
				BookingDate: "2026-10-15",
			},
			setupMock: func() {
				mockCatalogRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validPackage(), nil)

				mockGateway.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(razorpay.Order{}, errors.New("gateway unreachable"))
			},
			check: func(t *testing.T, _ dto.CreateOrderResponse, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-123")
			res, err := svc.CreateOrder(ctx, tt.req)

			tt.check(t, res, err)
		})
	}
}

func TestPaymentService_VerifyPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCatalogRepo := catalogMocks.NewMockCatalog(ctrl)
	mockGateway := razorpayMocks.NewMockGateway(ctrl)
	mockBroker := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Kafka.Topics.BookingCreated = "booking.created"

	svc := service.New(mockBookingRepo, mockCatalogRepo, mockGateway, mockBroker, cfg, mockOtel)

	validReq := dto.VerifyPaymentRequest{
		RazorpayOrderID:   "order_MkxYz1234567890",
		RazorpayPaymentID: "pay_MkxAb0987654321",
		RazorpaySignature: "722cedc1769cbc9b1818938cddd6ef9bfcf92ad8866ab30c9fefbd935f1fc289",
		PackageID:         "package-id-123",
		Travelers:         2,
		BookingDate:       "2026-10-15",
		PhoneNumber:       "9999999999",
	}

	t.Run("verified payment creates confirmed booking", func(t *testing.T) {
		mockGateway.EXPECT().
			VerifySignature(validReq.RazorpayOrderID, validReq.RazorpayPaymentID, validReq.RazorpaySignature).
			Return(true)

		mockCatalogRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validPackage(), nil)

		mockBookingRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking bookingModel.Booking) error {
				assert.Equal(t, bookingModel.PaymentStatusSuccess, booking.PaymentStatus)
				assert.Equal(t, bookingModel.BookingStatusConfirmed, booking.BookingStatus)
				assert.Equal(t, validReq.RazorpayOrderID, booking.GatewayOrderID)
				assert.Equal(t, validReq.RazorpayPaymentID, booking.GatewayPaymentID)
				assert.Equal(t, validReq.RazorpaySignature, booking.GatewaySignature)
				assert.Equal(t, "user-id-123", booking.UserID)
				assert.Equal(t, "9999999999", booking.PhoneNumber)
				assert.Equal(t, int64(30000), booking.TotalAmount)

				return nil
			})

		mockBroker.EXPECT().
			SendMessages(gomock.Any(), "booking.created", gomock.Any()).
			Return(nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-123")
		res, err := svc.VerifyPayment(ctx, validReq)

		assert.NoError(t, err)
		assert.Equal(t, bookingModel.BookingStatusConfirmed, res.BookingStatus)
		assert.Equal(t, bookingModel.PaymentStatusSuccess, res.PaymentStatus)
		assert.Equal(t, "Backwaters of Kerala", res.PackageTitle)
	})

	t.Run("tampered signature writes nothing", func(t *testing.T) {
		tampered := validReq
		tampered.RazorpaySignature = "0000000000000000000000000000000000000000000000000000000000000000"

		mockGateway.EXPECT().
			VerifySignature(tampered.RazorpayOrderID, tampered.RazorpayPaymentID, tampered.RazorpaySignature).
			Return(false)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-123")
		_, err := svc.VerifyPayment(ctx, tampered)

		assert.ErrorIs(t, err, failure.InvalidSignatureError)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("duplicate payment id maps to conflict", func(t *testing.T) {
		mockGateway.EXPECT().
			VerifySignature(validReq.RazorpayOrderID, validReq.RazorpayPaymentID, validReq.RazorpaySignature).
			Return(true)

		mockCatalogRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validPackage(), nil)

		mockBookingRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-123")
		_, err := svc.VerifyPayment(ctx, validReq)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("insert failure after verification is surfaced", func(t *testing.T) {
		mockGateway.EXPECT().
			VerifySignature(validReq.RazorpayOrderID, validReq.RazorpayPaymentID, validReq.RazorpaySignature).
			Return(true)

		mockCatalogRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validPackage(), nil)

		mockBookingRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset"))

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-123")
		_, err := svc.VerifyPayment(ctx, validReq)

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})

	t.Run("broker outage does not fail a stored booking", func(t *testing.T) {
		mockGateway.EXPECT().
			VerifySignature(validReq.RazorpayOrderID, validReq.RazorpayPaymentID, validReq.RazorpaySignature).
			Return(true)

		mockCatalogRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validPackage(), nil)

		mockBookingRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		mockBroker.EXPECT().
			SendMessages(gomock.Any(), "booking.created", gomock.Any()).
			Return(errors.New("broker unavailable"))

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-123")
		_, err := svc.VerifyPayment(ctx, validReq)

		assert.NoError(t, err)
	})

	t.Run("invalid booking date after verification", func(t *testing.T) {
		badDate := validReq
		badDate.BookingDate = "not-a-date"

		mockGateway.EXPECT().
			VerifySignature(badDate.RazorpayOrderID, badDate.RazorpayPaymentID, badDate.RazorpaySignature).
			Return(true)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-123")
		_, err := svc.VerifyPayment(ctx, badDate)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}
