package profiling

import (
	"github.com/montanaflynn/stats"

	"startupsim/models"
)

// Summarize computes the distribution summary of data. Population standard
// deviation is used since a run's personas are the whole population.
// Quartiles use the nearest-rank method so any non-empty sample has them.
func Summarize(data []float64) (models.DistributionSummary, error) {
	var summary models.DistributionSummary

	mean, err := stats.Mean(data)
	if err != nil {
		return summary, err
	}

	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return summary, err
	}

	min, err := stats.Min(data)
	if err != nil {
		return summary, err
	}

	max, err := stats.Max(data)
	if err != nil {
		return summary, err
	}

	median, err := stats.Median(data)
	if err != nil {
		return summary, err
	}

	q25, err := stats.PercentileNearestRank(data, 25)
	if err != nil {
		return summary, err
	}

	q75, err := stats.PercentileNearestRank(data, 75)
	if err != nil {
		return summary, err
	}

	summary.Mean = mean
	summary.StdDev = stdDev
	summary.Min = min
	summary.Max = max
	summary.Median = median
	summary.Q25 = q25
	summary.Q75 = q75

	return summary, nil
}
