package recipe

import (
	"strings"

	"Grocery-Tracker/domain"
)

const headingPrefix = "## "

// SegmentRecipes splits generated text into one block per top-level "## "
// heading. Text before the first heading is dropped; each block keeps its
// heading line and has trailing whitespace trimmed.
func SegmentRecipes(text string) ([]domain.RecipeBlock, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyGeneration
	}

	var (
		blocks  []domain.RecipeBlock
		current []string
	)
	flush := func() {
		if current == nil {
			return
		}
		content := strings.TrimRight(strings.Join(current, "\n"), " \t\n")
		title := strings.TrimSpace(strings.TrimPrefix(current[0], headingPrefix))
		blocks = append(blocks, domain.RecipeBlock{Title: title, Content: content})
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, headingPrefix) {
			flush()
			current = []string{line}
			continue
		}
		if current != nil {
			current = append(current, line)
		}
	}
	flush()

	if len(blocks) == 0 {
		return nil, domain.ErrEmptyGeneration
	}
	return blocks, nil
}
