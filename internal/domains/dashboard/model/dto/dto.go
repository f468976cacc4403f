package dto

import (
	bookingDto "roam/internal/domains/booking/model/dto"
)

// LocationCount is a catalog location ranked by confirmed bookings.
type LocationCount struct {
	Location string `db:"location" json:"location"`
	Bookings int    `db:"bookings" json:"bookings"`
}

// DailyCount is the number of bookings created on one day.
type DailyCount struct {
	Day      string `db:"day"      json:"day"`
	Bookings int    `db:"bookings" json:"bookings"`
}

type StatsResponse struct {
	TotalUsers     int                          `json:"total_users"`
	TotalPackages  int                          `json:"total_packages"`
	TotalBookings  int                          `json:"total_bookings"`
	TotalRevenue   int64                        `json:"total_revenue"`
	RecentBookings []bookingDto.BookingResponse `json:"recent_bookings"`
	TopLocations   []LocationCount              `json:"top_locations"`
	DailyBookings  []DailyCount                 `json:"daily_bookings"`
}
