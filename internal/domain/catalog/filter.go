package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mapmytour/tour-api/internal/domain/tour"
)

// SortBy selects the catalog sort order.
type SortBy string

const (
	SortByName      SortBy = "name"
	SortByPriceLow  SortBy = "price-low"
	SortByPriceHigh SortBy = "price-high"
	SortByDuration  SortBy = "duration"
)

// Duration bucket values accepted by Filters.Duration. The empty string
// means no duration filtering.
const (
	Duration1to5   = "1-5"
	Duration6to10  = "6-10"
	Duration11to15 = "11-15"
	Duration16Plus = "16+"
)

// PriceRange is an inclusive price band.
type PriceRange struct {
	Min int
	Max int
}

// Filters is the catalog filter state. Not persisted.
type Filters struct {
	SortBy     SortBy
	PriceRange PriceRange
	Duration   string
}

// DefaultFilters returns the initial filter state.
func DefaultFilters() Filters {
	return Filters{
		SortBy:     SortByName,
		PriceRange: PriceRange{Min: 0, Max: 2000},
	}
}

// Apply derives the displayed list from the catalog and the filter state.
// Pure: the input slice is never modified and identical inputs yield
// identical output. A nil catalog is treated as empty.
func Apply(tours []tour.Tour, f Filters) []tour.Tour {
	out := make([]tour.Tour, 0, len(tours))
	for _, t := range tours {
		if t.Price < f.PriceRange.Min || t.Price > f.PriceRange.Max {
			continue
		}
		if f.Duration != "" && !inBucket(tour.Days(t.Duration), f.Duration) {
			continue
		}
		out = append(out, t)
	}

	switch f.SortBy {
	case SortByName:
		c := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Title, out[j].Title) < 0
		})
	case SortByPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case SortByPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	case SortByDuration:
		sort.SliceStable(out, func(i, j int) bool {
			return tour.Days(out[i].Duration) < tour.Days(out[j].Duration)
		})
	}

	return out
}

// inBucket classifies a day count into a duration bucket. A duration string
// without digits counts as 0 days and lands in no bucket.
func inBucket(days int, bucket string) bool {
	switch bucket {
	case Duration1to5:
		return days >= 1 && days <= 5
	case Duration6to10:
		return days >= 6 && days <= 10
	case Duration11to15:
		return days >= 11 && days <= 15
	case Duration16Plus:
		return days >= 16
	default:
		return true
	}
}
