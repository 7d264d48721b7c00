package recipe

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/locvowork/hospitality_backoffice/internal/domain"
)

type fakeRecipeStore struct {
	recipes []domain.Recipe
	err     error
}

func (f *fakeRecipeStore) List(ctx context.Context) ([]domain.Recipe, error) {
	return f.recipes, f.err
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCost(t *testing.T) {
	t.Run("sums ingredient lines and derives margin", func(t *testing.T) {
		r := domain.Recipe{
			ID: 1, Name: "Pho Bo", Servings: 4, SellingPrice: 12.0,
			Ingredients: []domain.Ingredient{
				{Name: "beef", Quantity: 0.5, Unit: "kg", UnitCost: 18.0},  // 9.00
				{Name: "noodles", Quantity: 1, Unit: "kg", UnitCost: 3.0}, // 3.00
				{Name: "broth", Quantity: 2, Unit: "l", UnitCost: 1.5},    // 3.00
			},
		}
		cost := Cost(r)
		assert.True(t, almostEqual(cost.TotalCost, 15.0), "total cost %v", cost.TotalCost)
		assert.True(t, almostEqual(cost.CostPerServing, 3.75), "per serving %v", cost.CostPerServing)
		assert.True(t, almostEqual(cost.GrossMargin, 8.25), "margin %v", cost.GrossMargin)
		assert.True(t, almostEqual(cost.MarginPct, 68.75), "margin pct %v", cost.MarginPct)
	})

	t.Run("zero servings costs per whole recipe", func(t *testing.T) {
		r := domain.Recipe{
			ID: 2, Name: "Stock", Servings: 0, SellingPrice: 5,
			Ingredients: []domain.Ingredient{{Name: "bones", Quantity: 2, UnitCost: 1}},
		}
		cost := Cost(r)
		assert.True(t, almostEqual(cost.CostPerServing, 2.0), "per serving %v", cost.CostPerServing)
	})

	t.Run("zero price gives zero margin pct", func(t *testing.T) {
		r := domain.Recipe{
			ID: 3, Name: "Staff Meal", Servings: 1, SellingPrice: 0,
			Ingredients: []domain.Ingredient{{Name: "rice", Quantity: 1, UnitCost: 2}},
		}
		cost := Cost(r)
		assert.Equal(t, 0.0, cost.MarginPct)
		assert.True(t, almostEqual(cost.GrossMargin, -2.0), "margin %v", cost.GrossMargin)
	})

	t.Run("no ingredients costs nothing", func(t *testing.T) {
		cost := Cost(domain.Recipe{ID: 4, Name: "Water", Servings: 1, SellingPrice: 1})
		assert.Equal(t, 0.0, cost.TotalCost)
		assert.True(t, almostEqual(cost.MarginPct, 100.0), "margin pct %v", cost.MarginPct)
	})
}

func TestCalculatorListCosts(t *testing.T) {
	store := &fakeRecipeStore{recipes: []domain.Recipe{
		{ID: 1, Name: "Pho Bo", Servings: 1, SellingPrice: 10},
		{ID: 2, Name: "Banh Mi", Servings: 1, SellingPrice: 6},
	}}

	costs, err := NewCalculator(store).ListCosts(context.Background())
	assert.NoError(t, err)
	assert.Len(t, costs, 2)
	assert.Equal(t, "Pho Bo", costs[0].RecipeName)
	assert.Equal(t, "Banh Mi", costs[1].RecipeName)
}

func TestCalculatorCostByID(t *testing.T) {
	store := &fakeRecipeStore{recipes: []domain.Recipe{
		{ID: 7, Name: "Pho Bo", Servings: 2, SellingPrice: 10,
			Ingredients: []domain.Ingredient{{Name: "beef", Quantity: 1, UnitCost: 8}}},
	}}
	calc := NewCalculator(store)

	cost, err := calc.CostByID(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, 7, cost.RecipeID)
	assert.True(t, almostEqual(cost.CostPerServing, 4.0), "per serving %v", cost.CostPerServing)

	_, err = calc.CostByID(context.Background(), 99)
	assert.True(t, errors.Is(err, ErrRecipeNotFound), "expected ErrRecipeNotFound, got %v", err)
}
