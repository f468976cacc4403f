package dto

import (
	"time"

	"github.com/google/uuid"

	bookingModel "roam/internal/domains/booking/model"
	gModel "roam/shared/model"
	"roam/shared/timezone"
)

type CreateOrderRequest struct {
	PackageID   string `json:"package_id"   validate:"required"`
	Travelers   int    `json:"travelers"    validate:"required,gt=0"`
	BookingDate string `json:"booking_date" validate:"required"`
}

type CreateOrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	KeyID    string `json:"key_id"`
}

// VerifyPaymentRequest carries the checkout callback fields together with the
// booking details the order was created for.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"   validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature"  validate:"required"`
	PackageID         string `json:"package_id"          validate:"required"`
	Travelers         int    `json:"travelers"           validate:"required,gt=0"`
	BookingDate       string `json:"booking_date"        validate:"required"`
	PhoneNumber       string `json:"phone_number"        validate:"required,max=20"`
}

func (r *VerifyPaymentRequest) ToBookingModel(userID string, bookingDate time.Time, totalAmount int64) bookingModel.Booking {
	return bookingModel.Booking{
		ID:               uuid.NewString(),
		UserID:           userID,
		PackageID:        r.PackageID,
		BookingDate:      bookingDate,
		Travelers:        r.Travelers,
		PhoneNumber:      r.PhoneNumber,
		TotalAmount:      totalAmount,
		PaymentStatus:    bookingModel.PaymentStatusSuccess,
		BookingStatus:    bookingModel.BookingStatusConfirmed,
		GatewayOrderID:   r.RazorpayOrderID,
		GatewayPaymentID: r.RazorpayPaymentID,
		GatewaySignature: r.RazorpaySignature,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}
