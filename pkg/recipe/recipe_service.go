package recipe

import (
	"context"
	"fmt"
	"strings"

	"Grocery-Tracker/domain"
	"Grocery-Tracker/pkg/grocery"
	"Grocery-Tracker/pkg/llm"

	"github.com/rs/zerolog"
)

type (
	RecipeService interface {
		GetRecipeSuggestions(ctx context.Context, req domain.RecipeSuggestionRequest) (domain.RecipeSuggestionResponse, error)
	}

	recipeService struct {
		groceryRepository grocery.GroceryRepository
		model             llm.Client
		logger            zerolog.Logger
	}
)

func NewRecipeService(groceryRepository grocery.GroceryRepository, model llm.Client, logger zerolog.Logger) RecipeService {
	return &recipeService{
		groceryRepository: groceryRepository,
		model:             model,
		logger:            logger.With().Str("component", "recipe").Logger(),
	}
}

func (s *recipeService) GetRecipeSuggestions(ctx context.Context, req domain.RecipeSuggestionRequest) (domain.RecipeSuggestionResponse, error) {
	items, err := s.groceryRepository.GetGroceryItems(ctx)
	if err != nil {
		return domain.RecipeSuggestionResponse{}, fmt.Errorf("%w: %w", domain.ErrStore, err)
	}

	ingredients := make([]string, 0, len(items))
	for _, item := range items {
		if name := strings.TrimSpace(item.ItemName); name != "" {
			ingredients = append(ingredients, name)
		}
	}
	if len(ingredients) == 0 {
		return domain.RecipeSuggestionResponse{}, domain.ErrNoIngredients
	}

	filters := uniqueFilters(req.Filters)

	text, err := s.model.Generate(ctx, BuildRecipePrompt(ingredients, filters))
	if err != nil {
		s.logger.Error().Err(err).Msg("recipe generation failed")
		return domain.RecipeSuggestionResponse{}, err
	}

	blocks, err := SegmentRecipes(text)
	if err != nil {
		s.logger.Warn().Err(err).Int("length", len(text)).Msg("recipe response had no headings")
		return domain.RecipeSuggestionResponse{}, err
	}
	if len(blocks) != recipeCount {
		s.logger.Debug().Int("recipes", len(blocks)).Msg("model returned an unexpected number of recipes")
	}

	return domain.RecipeSuggestionResponse{
		Recipes:         blocks,
		Filters:         filters,
		IngredientCount: len(ingredients),
	}, nil
}

// uniqueFilters keeps the first occurrence of each filter. An empty result
// means "any".
func uniqueFilters(filters []string) []string {
	seen := make(map[string]struct{}, len(filters))
	out := make([]string, 0, len(filters))
	for _, f := range filters {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
