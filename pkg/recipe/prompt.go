package recipe

import (
	"fmt"
	"strings"
)

const recipeCount = 3

// BuildRecipePrompt asks for exactly three recipes. ingredients must already
// be ordered soonest-expiring first.
func BuildRecipePrompt(ingredients []string, filters []string) string {
	var b strings.Builder

	b.WriteString("You are a helpful home cook. Suggest exactly ")
	fmt.Fprintf(&b, "%d", recipeCount)
	b.WriteString(" recipes using the groceries below.\n")
	b.WriteString("The list is ordered from the item expiring soonest to the item expiring last; ")
	b.WriteString("prioritize the items at the top so they are used before they spoil.\n\n")

	b.WriteString("Groceries:\n")
	for _, name := range ingredients {
		b.WriteString("- ")
		b.WriteString(name)
		b.WriteString("\n")
	}

	b.WriteString("\nDietary preferences: ")
	if len(filters) == 0 {
		b.WriteString("any")
	} else {
		b.WriteString(strings.Join(filters, ", "))
	}
	b.WriteString("\n\n")

	b.WriteString("Format rules:\n")
	b.WriteString("- Start every recipe with a line of the form \"## <Recipe name>\".\n")
	b.WriteString("- Under each heading list the ingredients and numbered steps.\n")
	b.WriteString("- Do not use \"## \" anywhere else and do not add text after the last recipe.\n")

	return b.String()
}
