package models

type MessageResponse struct {
	Message string `json:"message"`
}

type Dashboard struct {
	UsersCount    int64 `json:"usersCount"`
	ProductsCount int64 `json:"productsCount"`
	OrdersCount   int64 `json:"ordersCount"`
	BlogsCount    int64 `json:"blogsCount"`
}

type UserAnalytics struct {
	TotalUsers int64 `json:"totalUsers"`
}

type OrderCount struct {
	TotalOrders int64 `json:"totalOrders"`
}

type Reports struct {
	UserAnalytics    UserAnalytics `json:"userAnalytics"`
	ProductInventory []string      `json:"productInventory"`
	OrderAnalytics   OrderCount    `json:"orderAnalytics"`
}

type SalesReport struct {
	TotalOrders  int64   `json:"totalOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
}
