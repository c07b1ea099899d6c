package model

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var salaryAmount = regexp.MustCompile(`(\d[\d,]*(?:\.\d+)?)\s*([kKmM])?`)

// ParseSalaryRange extracts the lowest and highest amount from free-text salary like
// "$80K - $120K", "90,000-110,000" or "15000 THB". ok is false when no amount is found.
// Amounts past the int range are clamped to math.MaxInt.
func ParseSalaryRange(s string) (lo int, hi int, ok bool) {
	matches := salaryAmount.FindAllStringSubmatch(s, -1)
	for _, m := range matches {
		f, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		switch strings.ToLower(m[2]) {
		case "k":
			f *= 1_000
		case "m":
			f *= 1_000_000
		}
		v := math.MaxInt
		if f < float64(math.MaxInt) {
			v = int(math.Round(f))
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi, ok
}
