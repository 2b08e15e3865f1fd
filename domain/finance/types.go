package finance

// Assumptions are the fixed growth and cost constants of the projection
type Assumptions struct {
	InitialUsers        int     `json:"initial_users"`
	MonthlyGrowthRate   float64 `json:"monthly_growth_rate"`
	ChurnRate           float64 `json:"churn_rate"`
	ConversionRate      float64 `json:"conversion_rate"`
	ARPU                int64   `json:"arpu"`
	FixedCosts          int64   `json:"fixed_costs"`
	VariableCostPerUser int64   `json:"variable_cost_per_user"`
	MarketingCost       int64   `json:"marketing_cost"`
}

// DefaultAssumptions returns the constants every projection uses
func DefaultAssumptions() Assumptions {
	return Assumptions{
		InitialUsers:        10,
		MonthlyGrowthRate:   0.15,
		ChurnRate:           0.05,
		ConversionRate:      0.10,
		ARPU:                9900,
		FixedCosts:          10_000_000,
		VariableCostPerUser: 1000,
		MarketingCost:       5_000_000,
	}
}

// MonthRecord is one step of the projection
type MonthRecord struct {
	Month            string `json:"month"`
	Users            int64  `json:"users"`
	NewUsers         int64  `json:"new_users"`
	ChurnedUsers     int64  `json:"churned_users"`
	PayingUsers      int64  `json:"paying_users"`
	Revenue          int64  `json:"revenue"`
	Costs            int64  `json:"costs"`
	Profit           int64  `json:"profit"`
	CumulativeProfit int64  `json:"cumulative_profit"`
}

// Metrics summarize a projection
type Metrics struct {
	BreakEvenMonth *int    `json:"break_even_month"`
	TotalUsers     int64   `json:"total_users"`
	TotalRevenue   int64   `json:"total_revenue"`
	TotalCosts     int64   `json:"total_costs"`
	ROI            float64 `json:"roi"`
	CAC            float64 `json:"cac"`
	LTV            float64 `json:"ltv"`
}

// Projection is the month-by-month trajectory plus its derived metrics
type Projection struct {
	Assumptions Assumptions   `json:"assumptions"`
	Months      []MonthRecord `json:"months"`
	Metrics     Metrics       `json:"metrics"`
}
