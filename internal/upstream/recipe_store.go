package upstream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/locvowork/hospitality_backoffice/internal/domain"
)

type recipeStore struct {
	client *Client
}

// NewRecipeStore creates a store backed by GET /recipes/.
func NewRecipeStore(client *Client) domain.RecipeStore {
	return &recipeStore{client: client}
}

func (r *recipeStore) List(ctx context.Context) ([]domain.Recipe, error) {
	raws, err := r.client.FetchAllPages(ctx, "recipes/", nil)
	if err != nil {
		return nil, err
	}

	recipes := make([]domain.Recipe, 0, len(raws))
	for _, raw := range raws {
		var rec domain.Recipe
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("decode recipe record: %w", err)
		}
		recipes = append(recipes, rec)
	}
	return recipes, nil
}
