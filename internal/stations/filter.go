package stations

import (
	"fmt"

	"github.com/pedalpoint/pedalpoint/internal/models"
)

// Predicate decides whether a reconciled station is eligible
type Predicate func(models.Station) bool

// Named predicate rules accepted by ByName
const (
	RuleEBikesOnly   = "ebikes-only"
	RuleMixedClassic = "mixed-classic"
)

// EBikesOnly matches stations holding e-bikes and no classic bikes
func EBikesOnly() Predicate {
	return func(s models.Station) bool {
		return s.EBikes > 0 && s.ClassicBikes == 0
	}
}

// MixedWithClassic matches stations holding e-bikes and exactly n
// classic bikes
func MixedWithClassic(n int) Predicate {
	return func(s models.Station) bool {
		return s.EBikes > 0 && s.ClassicBikes == n
	}
}

// ExcludeAnomalous narrows a predicate to reject records flagged during
// reconciliation
func ExcludeAnomalous(pred Predicate) Predicate {
	return func(s models.Station) bool {
		return !s.Anomalous && pred(s)
	}
}

// ByName resolves a named rule. classic is only consulted by the
// mixed-classic rule. Unrecognized names fail with ErrUnknownPredicate
// rather than silently matching nothing.
func ByName(name string, classic int) (Predicate, error) {
	switch name {
	case RuleEBikesOnly:
		return EBikesOnly(), nil
	case RuleMixedClassic:
		return MixedWithClassic(classic), nil
	}
	return nil, fmt.Errorf("predicate %q: %w", name, ErrUnknownPredicate)
}

// Filter returns the stations satisfying pred, in input order
func Filter(records []models.Station, pred Predicate) []models.Station {
	var eligible []models.Station
	for _, s := range records {
		if pred(s) {
			eligible = append(eligible, s)
		}
	}
	return eligible
}
