package stats

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Func reduces a sample to a single statistic. Every built-in Func returns
// NaN for an empty sample and never modifies x.
type Func func(x []float64) float64

// guard wraps fn so that an empty sample yields NaN.
func guard(fn Func) Func {
	return func(x []float64) float64 {
		if len(x) == 0 {
			return math.NaN()
		}
		return fn(x)
	}
}

var (
	// Mean is the arithmetic mean.
	Mean Func = guard(func(x []float64) float64 { return stat.Mean(x, nil) })

	// Median is the middle value of the sorted sample, or the mean of the
	// two middle values when the sample size is even.
	Median Func = guard(median)

	// Variance is the unbiased sample variance. A single value has variance 0.
	Variance Func = guard(func(x []float64) float64 {
		if len(x) == 1 {
			return 0
		}
		return stat.Variance(x, nil)
	})

	// StdDev is the sample standard deviation.
	StdDev Func = guard(func(x []float64) float64 { return math.Sqrt(Variance(x)) })

	// Sum is the sum of all values.
	Sum Func = guard(floats.Sum)

	// Min is the smallest value.
	Min Func = guard(floats.Min)

	// Max is the largest value.
	Max Func = guard(floats.Max)

	// Skewness is the sample skewness.
	Skewness Func = guard(func(x []float64) float64 { return stat.Skew(x, nil) })

	// Kurtosis is the sample excess kurtosis.
	Kurtosis Func = guard(func(x []float64) float64 { return stat.ExKurtosis(x, nil) })

	// GeometricMean is the n-th root of the product of n values.
	GeometricMean Func = guard(func(x []float64) float64 { return stat.GeometricMean(x, nil) })

	// HarmonicMean is n divided by the sum of reciprocals.
	HarmonicMean Func = guard(func(x []float64) float64 { return stat.HarmonicMean(x, nil) })
)

func median(x []float64) float64 {
	s := slices.Clone(x)
	slices.Sort(s)
	n := len(s)
	if n%2 == 1 {
		return stat.Quantile(0.5, stat.Empirical, s, nil)
	}
	return (s[n/2-1] + s[n/2]) / 2
}
