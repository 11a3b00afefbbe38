package recommendation

import (
	"math"
	"sort"

	"github.com/miambidi/mealplan/internal/domain/pantry"
	"github.com/miambidi/mealplan/internal/domain/recipe"
)

// DefaultTopN is the result-list cap applied when the caller passes a
// non-positive limit.
const DefaultTopN = 20

// ratioEpsilon guards the availability-ratio tie-break against float-noise
// reordering.
const ratioEpsilon = 0.01

// Scored is a recipe annotated with match metadata. It is computed fresh on
// every Recommend call and never persisted.
type Scored struct {
	Recipe             *recipe.Recipe
	MatchCount         int
	MissingCount       int
	MatchedIngredients []string
	MissingIngredients []string
	MatchPercentage    int
	AvailabilityRatio  float64
	PriorityScore      float64
}

// Recommend scores every recipe against the pantry stock and returns the
// ranked top-N list. Recipes sharing no ingredient with the pantry are
// dropped. The sort is a three-level descending tie-break: match count,
// then availability ratio (differences within ratioEpsilon count as ties),
// then priority score; residual ties keep input order (stable sort), which
// is deterministic per run.
func Recommend(stock []pantry.StockItem, recipes []*recipe.Recipe, topN int) []Scored {
	if topN <= 0 {
		topN = DefaultTopN
	}

	scored := make([]Scored, 0, len(recipes))
	for _, r := range recipes {
		if r == nil {
			continue
		}
		s := score(stock, r)
		if s.MatchCount == 0 {
			continue
		}
		scored = append(scored, s)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.MatchCount != b.MatchCount {
			return a.MatchCount > b.MatchCount
		}
		if diff := a.AvailabilityRatio - b.AvailabilityRatio; math.Abs(diff) > ratioEpsilon {
			return diff > 0
		}
		return a.PriorityScore > b.PriorityScore
	})

	if len(scored) > topN {
		scored = scored[:topN]
	}
	return scored
}

// score evaluates one recipe. An ingredient is matched when at least one
// stock item satisfies it. A recipe with no required ingredients degrades to
// 0% rather than dividing by zero; the MatchCount filter in Recommend then
// excludes it.
func score(stock []pantry.StockItem, r *recipe.Recipe) Scored {
	requirements := r.Requirements()

	var matched, missing []string
	for _, req := range requirements {
		satisfied := false
		for _, item := range stock {
			if Match(req, item).Satisfied() {
				satisfied = true
				break
			}
		}
		if satisfied {
			matched = append(matched, req.Name)
		} else {
			missing = append(missing, req.Name)
		}
	}

	total := len(requirements)
	matchCount := len(matched)

	percentage := 0
	ratio := 0.0
	if total > 0 {
		percentage = int(math.Round(float64(matchCount) / float64(total) * 100))
		ratio = float64(matchCount) / float64(total)
	}

	// The quadratic term strongly favors recipes that use many of the
	// available ingredients over short recipes with a high percentage: a
	// 1-ingredient recipe at 100% must not outrank a 6-ingredient recipe
	// matching 5.
	priority := float64(matchCount*matchCount)*1000 +
		float64(percentage)*50 +
		r.Rating()*10

	return Scored{
		Recipe:             r,
		MatchCount:         matchCount,
		MissingCount:       len(missing),
		MatchedIngredients: matched,
		MissingIngredients: missing,
		MatchPercentage:    percentage,
		AvailabilityRatio:  ratio,
		PriorityScore:      priority,
	}
}
