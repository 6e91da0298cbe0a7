package model

// Dashboard is the admin revenue overview.
type Dashboard struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalOrders   int64   `json:"totalOrders"`
	TotalUsers    int64   `json:"totalUsers"`
	TotalProducts int64   `json:"totalProducts"`
	RecentOrders  []Order `json:"recentOrders,omitempty"`
}

// AdminOverview bundles the dashboard page data fetched in one go.
type AdminOverview struct {
	Dashboard Dashboard
	Orders    []Order
	Users     []User
}
