package model

import (
	"time"

	"roam/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldUserID           = "user_id"
	FieldPackageID        = "package_id"
	FieldBookingDate      = "booking_date"
	FieldTravelers        = "travelers"
	FieldPhoneNumber      = "phone_number"
	FieldTotalAmount      = "total_amount"
	FieldPaymentStatus    = "payment_status"
	FieldBookingStatus    = "booking_status"
	FieldGatewayOrderID   = "gateway_order_id"
	FieldGatewayPaymentID = "gateway_payment_id"
	FieldCreatedAt        = "created_at"
)

const (
	PaymentStatusPending = "Pending"
	PaymentStatusSuccess = "Success"
	PaymentStatusFailed  = "Failed"

	BookingStatusPending   = "Pending"
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"
	BookingStatusCompleted = "Completed"
)

// BookingStatuses lists every value UpdateStatus accepts.
var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCancelled,
	BookingStatusCompleted,
}

// Booking is created only after the payment gateway signature has been
// verified. TotalAmount is in whole rupees.
type Booking struct {
	ID               string    `db:"id"`
	UserID           string    `db:"user_id"`
	PackageID        string    `db:"package_id"`
	BookingDate      time.Time `db:"booking_date"`
	Travelers        int       `db:"travelers"`
	PhoneNumber      string    `db:"phone_number"`
	TotalAmount      int64     `db:"total_amount"`
	PaymentStatus    string    `db:"payment_status"`
	BookingStatus    string    `db:"booking_status"`
	GatewayOrderID   string    `db:"gateway_order_id"`
	GatewayPaymentID string    `db:"gateway_payment_id"`
	GatewaySignature string    `db:"gateway_signature"`

	UserName        string `db:"user_name"        table:"users"         column:"name"`
	UserEmail       string `db:"user_email"       table:"users"         column:"email"`
	PackageTitle    string `db:"package_title"    table:"tour_packages" column:"title"`
	PackageLocation string `db:"package_location" table:"tour_packages" column:"location"`

	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN users ON users.id = bookings.user_id " +
		"LEFT JOIN tour_packages ON tour_packages.id = bookings.package_id"
}
