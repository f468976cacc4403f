package dto

import (
	"roam/internal/domains/booking/model"
	"roam/shared"
	"roam/shared/constant"
	gDto "roam/shared/dto"
)

type UpdateBookingStatusRequest struct {
	BookingStatus string `db:"booking_status" json:"booking_status" validate:"required,oneof=Pending Confirmed Cancelled Completed"`
}

type BookingResponse struct {
	ID               string `json:"id"`
	UserID           string `json:"user_id"`
	UserName         string `json:"user_name,omitempty"`
	UserEmail        string `json:"user_email,omitempty"`
	PackageID        string `json:"package_id"`
	PackageTitle     string `json:"package_title,omitempty"`
	PackageLocation  string `json:"package_location,omitempty"`
	BookingDate      string `json:"booking_date"`
	Travelers        int    `json:"travelers"`
	PhoneNumber      string `json:"phone_number"`
	TotalAmount      int64  `json:"total_amount"`
	PaymentStatus    string `json:"payment_status"`
	BookingStatus    string `json:"booking_status"`
	GatewayOrderID   string `json:"gateway_order_id"`
	GatewayPaymentID string `json:"gateway_payment_id"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.UserName = model.UserName
	r.UserEmail = model.UserEmail
	r.PackageID = model.PackageID
	r.PackageTitle = model.PackageTitle
	r.PackageLocation = model.PackageLocation
	r.BookingDate = model.BookingDate.Format(constant.BookingDateFormat)
	r.Travelers = model.Travelers
	r.PhoneNumber = model.PhoneNumber
	r.TotalAmount = model.TotalAmount
	r.PaymentStatus = model.PaymentStatus
	r.BookingStatus = model.BookingStatus
	r.GatewayOrderID = model.GatewayOrderID
	r.GatewayPaymentID = model.GatewayPaymentID
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingCreatedEvent is the payload published to Kafka after a verified
// payment produces a booking.
type BookingCreatedEvent struct {
	BookingID        string `json:"booking_id"`
	UserID           string `json:"user_id"`
	PackageID        string `json:"package_id"`
	TotalAmount      int64  `json:"total_amount"`
	GatewayOrderID   string `json:"gateway_order_id"`
	GatewayPaymentID string `json:"gateway_payment_id"`
	BookingStatus    string `json:"booking_status"`
}
