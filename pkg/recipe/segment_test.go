package recipe

import (
	"testing"

	"Grocery-Tracker/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentRecipes(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		contents []string
		titles   []string
	}{
		{
			name:     "preamble dropped",
			text:     "preamble\n## A\ntext1\n## B\ntext2",
			contents: []string{"## A\ntext1", "## B\ntext2"},
			titles:   []string{"A", "B"},
		},
		{
			name:     "trailing whitespace trimmed",
			text:     "## Omelette\neggs\n\n\n## Salad  \nlettuce\n  \n",
			contents: []string{"## Omelette\neggs", "## Salad\nlettuce"},
			titles:   []string{"Omelette", "Salad"},
		},
		{
			name:     "sub headings stay inside",
			text:     "## Soup\n### Ingredients\n- carrot\n### Steps\n1. boil",
			contents: []string{"## Soup\n### Ingredients\n- carrot\n### Steps\n1. boil"},
			titles:   []string{"Soup"},
		},
		{
			name:     "crlf",
			text:     "Here you go:\r\n## Stir Fry\r\nrice\r\n",
			contents: []string{"## Stir Fry\nrice"},
			titles:   []string{"Stir Fry"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks, err := SegmentRecipes(tt.text)
			require.NoError(t, err)
			require.Len(t, blocks, len(tt.contents))
			for i, b := range blocks {
				assert.Equal(t, tt.contents[i], b.Content)
				assert.Equal(t, tt.titles[i], b.Title)
			}
		})
	}
}

func TestSegmentRecipesEmpty(t *testing.T) {
	for _, text := range []string{"", "   \n\t", "Sorry, I cannot help.", "# One\n### Two\n##Three"} {
		_, err := SegmentRecipes(text)
		assert.ErrorIs(t, err, domain.ErrEmptyGeneration, text)
	}
}

func TestBuildRecipePrompt(t *testing.T) {
	prompt := BuildRecipePrompt([]string{"🥛 Milk", "🥕 Carrots"}, nil)
	assert.Contains(t, prompt, "exactly 3 recipes")
	assert.Contains(t, prompt, "- 🥛 Milk\n- 🥕 Carrots\n")
	assert.Contains(t, prompt, "Dietary preferences: any")
	assert.Contains(t, prompt, "## ")

	prompt = BuildRecipePrompt([]string{"Tofu"}, []string{domain.FilterVegetarian, domain.FilterLowCalorie})
	assert.Contains(t, prompt, "Dietary preferences: Vegetarian, Low Calorie")
}
