package placement

import "math"

// defaultEligibleRatio is the rough share of a set that historically
// falls in the variant-eligible tiers. Display-only; the committed plan
// always counts eligibility from the fetched list.
const defaultEligibleRatio = 0.6

// EstimateVariantCount returns a rough pre-fetch guess at how many
// variant entries a set of totalCards would generate with the given copy
// count. It exists for progress and confirmation UIs only and must never
// feed a committed plan; BuildEntries computes the exact count from the
// fetched list (docs/DECISIONS § estimate vs exact).
func EstimateVariantCount(totalCards, variantCopies int) int {
	if totalCards <= 0 || variantCopies < 1 {
		return 0
	}
	eligible := int(math.Round(float64(totalCards) * defaultEligibleRatio))
	return eligible * variantCopies
}
