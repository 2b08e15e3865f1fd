package market

// Analysis is the market-sizing record attached to every report
type Analysis struct {
	MarketSize              float64  `json:"market_size"`
	GrowthRate              float64  `json:"growth_rate"`
	CompetitionLevel        string   `json:"competition_level"`
	EntryBarriers           []string `json:"entry_barriers"`
	CustomerAcquisitionCost float64  `json:"customer_acquisition_cost"`
	LifetimeValue           float64  `json:"lifetime_value"`
}

// DefaultAnalysis is used when the caller supplies no market data
func DefaultAnalysis() Analysis {
	return Analysis{
		MarketSize:       1_000_000_000_000,
		GrowthRate:       15.0,
		CompetitionLevel: "medium",
		EntryBarriers: []string{
			"brand_recognition",
			"switching_cost",
			"network_effect",
		},
		CustomerAcquisitionCost: 50000,
		LifetimeValue:           300000,
	}
}
