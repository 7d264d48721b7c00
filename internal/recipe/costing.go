package recipe

import (
	"context"
	"errors"

	"github.com/locvowork/hospitality_backoffice/internal/domain"
)

// ErrRecipeNotFound is returned when a recipe id is absent upstream.
var ErrRecipeNotFound = errors.New("recipe not found")

// Cost aggregates a recipe's ingredient costs into the per-serving cost and
// profit margin breakdown.
func Cost(r domain.Recipe) domain.RecipeCost {
	var total float64
	for _, ing := range r.Ingredients {
		total += ing.Quantity * ing.UnitCost
	}

	servings := r.Servings
	if servings < 1 {
		// Bad master data; costing per recipe is better than dividing by zero.
		servings = 1
	}
	perServing := total / float64(servings)

	margin := r.SellingPrice - perServing
	var pct float64
	if r.SellingPrice > 0 {
		pct = margin / r.SellingPrice * 100
	}

	return domain.RecipeCost{
		RecipeID:       r.ID,
		RecipeName:     r.Name,
		TotalCost:      total,
		CostPerServing: perServing,
		SellingPrice:   r.SellingPrice,
		GrossMargin:    margin,
		MarginPct:      pct,
	}
}

// Calculator computes cost breakdowns over the upstream recipe collection.
type Calculator struct {
	recipes domain.RecipeStore
}

// NewCalculator creates a Calculator.
func NewCalculator(recipes domain.RecipeStore) *Calculator {
	return &Calculator{recipes: recipes}
}

// ListCosts returns the cost breakdown for every recipe.
func (c *Calculator) ListCosts(ctx context.Context) ([]domain.RecipeCost, error) {
	recipes, err := c.recipes.List(ctx)
	if err != nil {
		return nil, err
	}
	costs := make([]domain.RecipeCost, 0, len(recipes))
	for _, r := range recipes {
		costs = append(costs, Cost(r))
	}
	return costs, nil
}

// CostByID returns the cost breakdown for one recipe.
func (c *Calculator) CostByID(ctx context.Context, id int) (*domain.RecipeCost, error) {
	recipes, err := c.recipes.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range recipes {
		if r.ID == id {
			cost := Cost(r)
			return &cost, nil
		}
	}
	return nil, ErrRecipeNotFound
}
