package domain

import (
	"errors"
)

var (
	MessageSuccessGetRecipes = "success get recipe suggestions"
	MessageFailedGetRecipes  = "failed to get recipe suggestions"
	MessageNoIngredients     = "no ingredients available"

	ErrNoIngredients = errors.New("no ingredients available for recipe generation")
)

const (
	FilterVegetarian    = "Vegetarian"
	FilterHighProtein   = "High Protein"
	FilterChickenDishes = "Chicken Dishes"
	FilterHighVeggie    = "High Veggie"
	FilterLowCalorie    = "Low Calorie"
)

// DietaryFilters lists every filter a caller may select, in display order.
var DietaryFilters = []string{
	FilterVegetarian,
	FilterHighProtein,
	FilterChickenDishes,
	FilterHighVeggie,
	FilterLowCalorie,
}

func IsDietaryFilter(s string) bool {
	for _, f := range DietaryFilters {
		if f == s {
			return true
		}
	}
	return false
}

type (
	RecipeSuggestionRequest struct {
		Filters []string `json:"filters" validate:"omitempty,dive,dietary_filter"`
	}

	RecipeBlock struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}

	RecipeSuggestionResponse struct {
		Recipes         []RecipeBlock `json:"recipes"`
		Filters         []string      `json:"filters"`
		IngredientCount int           `json:"ingredient_count"`
	}
)
