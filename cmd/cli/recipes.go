package cli

import (
	"errors"
	"fmt"
	"strings"

	"Grocery-Tracker/domain"
	"Grocery-Tracker/internal/utils"

	"github.com/spf13/cobra"
)

var recipeFilters []string

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Suggest recipes from the current inventory",
	Long: "Suggest three recipes that use the groceries expiring soonest.\n" +
		"Filters: " + strings.Join(domain.DietaryFilters, ", "),
	RunE: runRecipes,
}

func init() {
	recipesCmd.Flags().StringSliceVarP(&recipeFilters, "filter", "f", nil, "Dietary filter, may be repeated")
	rootCmd.AddCommand(recipesCmd)
}

func runRecipes(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	req := domain.RecipeSuggestionRequest{Filters: recipeFilters}
	utils.InitValidator()
	if err := utils.Validate.Struct(req); err != nil {
		return fmt.Errorf("invalid filter, choose from: %s", strings.Join(domain.DietaryFilters, ", "))
	}

	services, err := loadServices(ctx)
	if err != nil {
		return err
	}

	wait := newSpinner("Cooking up ideas...")
	wait.Start()
	res, err := services.Recipe.GetRecipeSuggestions(ctx, req)
	wait.Stop()
	if err != nil {
		if errors.Is(err, domain.ErrNoIngredients) {
			printWarning("Your inventory is empty, scan a receipt first")
			return nil
		}
		return err
	}

	for _, block := range res.Recipes {
		lines := strings.SplitN(block.Content, "\n", 2)
		printHeading(lines[0])
		if len(lines) > 1 {
			fmt.Println(lines[1])
		}
		fmt.Println()
	}
	return nil
}
