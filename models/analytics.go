package models

// Stats are the dashboard headline cards. Missing fields decode to zero and
// render as zeroed metrics rather than errors.
type Stats struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalBookings  int     `json:"total_bookings"`
	PendingReviews int     `json:"pending_reviews"`
	TotalUsers     int     `json:"total_users"`
}

// AnalyticsCards are the revenue cards of the analytics page. All amounts are
// computed server-side; the console renders only.
type AnalyticsCards struct {
	TotalRevenue     float64 `json:"total_revenue"`
	NetProfit        float64 `json:"net_profit"`
	AvailableBalance float64 `json:"available_balance"`
	TotalBookings    int     `json:"total_bookings"`
	TotalUsers       int     `json:"total_users"`
}

// SeriesPoint is one point of the traffic/revenue time series.
type SeriesPoint struct {
	Name     string  `json:"name"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

// ChartPoint is one bar of the listed-services activity chart.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// DemographicEntry is a per-country user count.
type DemographicEntry struct {
	Country string `json:"country"`
	Users   int    `json:"users"`
}

// CategorySlice is one slice of the service-breakdown pie.
type CategorySlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color,omitempty"`
}

// DeviceStat is a per-device-class user count.
type DeviceStat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// AnalyticsSnapshot is the full payload of /admin/analytics. The list fields
// are optional; absent lists render as empty sections.
type AnalyticsSnapshot struct {
	Cards        AnalyticsCards     `json:"cards"`
	Chart        []SeriesPoint      `json:"chart,omitempty"`
	Demographics []DemographicEntry `json:"demographics,omitempty"`
	Categories   []CategorySlice    `json:"categories,omitempty"`
	DeviceStats  []DeviceStat       `json:"device_stats,omitempty"`
}

// WithdrawRequest moves earnings to the configured payout destination.
type WithdrawRequest struct {
	Amount      float64 `json:"amount"`
	Destination string  `json:"destination"`
}
