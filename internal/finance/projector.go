// Package finance projects a month-by-month user, revenue and cost trajectory
// from fixed growth assumptions.
package finance

import (
	"fmt"
	"math"

	domain "startupsim/domain/finance"
)

// DefaultMonths is the horizon of a full simulation's projection
const DefaultMonths = 12

// fallbackChurn stands in for a zero churn rate in the LTV formula
const fallbackChurn = 0.01

// Project runs the recurrence for the given number of months. A non-positive
// horizon yields no months and zero metrics.
func Project(a domain.Assumptions, months int) domain.Projection {
	proj := domain.Projection{
		Assumptions: a,
		Months:      []domain.MonthRecord{},
	}
	if months <= 0 {
		return proj
	}

	users := int64(a.InitialUsers)
	var cumulative, lastNew int64
	for m := 1; m <= months; m++ {
		newUsers := floorMul(users, a.MonthlyGrowthRate)
		churned := floorMul(users, a.ChurnRate)
		users += newUsers - churned

		paying := floorMul(users, a.ConversionRate)
		revenue := paying * a.ARPU
		costs := a.FixedCosts + users*a.VariableCostPerUser + a.MarketingCost
		profit := revenue - costs
		cumulative += profit
		lastNew = newUsers

		proj.Months = append(proj.Months, domain.MonthRecord{
			Month:            fmt.Sprintf("Month %d", m),
			Users:            users,
			NewUsers:         newUsers,
			ChurnedUsers:     churned,
			PayingUsers:      paying,
			Revenue:          revenue,
			Costs:            costs,
			Profit:           profit,
			CumulativeProfit: cumulative,
		})
	}

	proj.Metrics = metrics(a, proj.Months, users, lastNew)
	return proj
}

func metrics(a domain.Assumptions, months []domain.MonthRecord, finalUsers, finalNew int64) domain.Metrics {
	var m domain.Metrics
	m.TotalUsers = finalUsers

	for i, rec := range months {
		m.TotalRevenue += rec.Revenue
		m.TotalCosts += rec.Costs
		if m.BreakEvenMonth == nil && rec.CumulativeProfit > 0 {
			month := i + 1
			m.BreakEvenMonth = &month
		}
	}

	if m.TotalCosts != 0 {
		m.ROI = float64(m.TotalRevenue-m.TotalCosts) / float64(m.TotalCosts) * 100
	}

	divisor := finalNew
	if divisor <= 0 {
		divisor = 1
	}
	m.CAC = float64(a.MarketingCost) / float64(divisor)

	churn := a.ChurnRate
	if churn <= 0 {
		churn = fallbackChurn
	}
	m.LTV = float64(a.ARPU) * 12 / churn

	return m
}

func floorMul(n int64, rate float64) int64 {
	return int64(math.Floor(float64(n) * rate))
}
