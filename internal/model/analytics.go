package model

// Stats is the per-user aggregate summary shown on the dashboard. Totals only
// include completed transactions; the counts cover every status.
type Stats struct {
	TotalTransactions int     `json:"total_transactions"`
	TotalIncome       float64 `json:"total_income"`
	TotalExpense      float64 `json:"total_expense"`
	Balance           float64 `json:"balance"`
	PendingCount      int     `json:"pending_count"`
	CompletedCount    int     `json:"completed_count"`
	FailedCount       int     `json:"failed_count"`
	CancelledCount    int     `json:"cancelled_count"`
}

// MonthlyPoint is one month of the income/expense trend chart.
type MonthlyPoint struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// DailyPoint is one day of the income/expense trend chart.
type DailyPoint struct {
	Date    string  `json:"date"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// CategorySlice is one category's share of completed expenses in the window.
type CategorySlice struct {
	Category string  `json:"category"`
	Color    string  `json:"color"`
	Total    float64 `json:"total"`
}

// StatusCount is the number of transactions in one status.
type StatusCount struct {
	Status TransactionStatus `json:"status"`
	Count  int               `json:"count"`
}

// TopCategory is one entry of the top-categories ranking.
type TopCategory struct {
	Category         string  `json:"category"`
	Color            string  `json:"color"`
	Icon             string  `json:"icon"`
	TransactionCount int     `json:"transaction_count"`
	TotalAmount      float64 `json:"total_amount"`
}

// AdminStats is the account summary shown on the admin view.
type AdminStats struct {
	TotalUsers          int `json:"total_users"`
	ActiveUsers         int `json:"active_users"`
	AdminCount          int `json:"admin_count"`
	RecentRegistrations int `json:"recent_registrations"`
}

// Fixed window choices offered by the analytics views. The backend accepts a
// wider range; these are the selectable presets.
var (
	MonthWindows = []int{3, 6, 12}
	DayWindows   = []int{7, 14, 30, 90}
)

// Default analytics parameters.
const (
	DefaultMonths      = 6
	DefaultDays        = 30
	DefaultTopLimit    = 5
	DefaultRecentLimit = 10
)
