package util

import (
	"fmt"
	"strings"
	"time"
)

// DelayRange is an inclusive span of simulated wait times.
type DelayRange struct {
	Min time.Duration
	Max time.Duration
}

// Fixed returns a range that always yields d.
func Fixed(d time.Duration) DelayRange {
	return DelayRange{Min: d, Max: d}
}

// ParseDelayRange converts a delay string (e.g., "400ms-1s", "1.5s") to a range.
// A single value yields a fixed delay. If the string is empty, it returns
// the zero range.
func ParseDelayRange(s string) (DelayRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DelayRange{}, nil
	}

	lo, hi, found := strings.Cut(s, "-")
	minD, err := time.ParseDuration(strings.TrimSpace(lo))
	if err != nil {
		return DelayRange{}, fmt.Errorf("invalid delay value: %s", s)
	}
	if !found {
		return Fixed(minD), nil
	}

	maxD, err := time.ParseDuration(strings.TrimSpace(hi))
	if err != nil {
		return DelayRange{}, fmt.Errorf("invalid delay value: %s", s)
	}
	if minD < 0 || maxD < minD {
		return DelayRange{}, fmt.Errorf("invalid delay range: %s (min must be >= 0 and <= max)", s)
	}
	return DelayRange{Min: minD, Max: maxD}, nil
}

// Pick draws a uniform duration from the range.
func (r DelayRange) Pick(rng interface{ Float64() float64 }) time.Duration {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + time.Duration(rng.Float64()*float64(r.Max-r.Min))
}

// Scale multiplies both bounds by f. Negative factors are treated as zero.
func (r DelayRange) Scale(f float64) DelayRange {
	if f <= 0 {
		return DelayRange{}
	}
	return DelayRange{
		Min: time.Duration(float64(r.Min) * f),
		Max: time.Duration(float64(r.Max) * f),
	}
}

func (r DelayRange) String() string {
	if r.Min == r.Max {
		return r.Min.String()
	}
	return r.Min.String() + "-" + r.Max.String()
}
