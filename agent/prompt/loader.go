package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/classify.txt
	classifyRaw string

	//go:embed template/search_terms.txt
	searchTermsRaw string

	//go:embed template/cart_item.txt
	cartItemRaw string

	//go:embed template/details_item.txt
	detailsItemRaw string

	//go:embed template/render_search.txt
	renderSearchRaw string

	//go:embed template/render_cart_add.txt
	renderCartAddRaw string

	//go:embed template/render_cart.txt
	renderCartRaw string

	//go:embed template/render_details.txt
	renderDetailsRaw string

	//go:embed template/greeting.txt
	greetingRaw string

	//go:embed template/other.txt
	otherRaw string
)

// PromptSet holds loaded prompt templates. Each template is a fmt format
// string; Classify and the extraction prompts take the raw user input, the
// render prompts take the raw tool result.
type PromptSet struct {
	Classify      string
	SearchTerms   string
	CartItem      string
	DetailsItem   string
	RenderSearch  string
	RenderCartAdd string
	RenderCart    string
	RenderDetails string
	Greeting      string
	Other         string
}

// LoadPromptSet returns a PromptSet with trimmed template strings. Safe to
// call concurrently; the embed is compile-time, and trimming is cheap.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Classify:      strings.TrimSpace(classifyRaw),
		SearchTerms:   strings.TrimSpace(searchTermsRaw),
		CartItem:      strings.TrimSpace(cartItemRaw),
		DetailsItem:   strings.TrimSpace(detailsItemRaw),
		RenderSearch:  strings.TrimSpace(renderSearchRaw),
		RenderCartAdd: strings.TrimSpace(renderCartAddRaw),
		RenderCart:    strings.TrimSpace(renderCartRaw),
		RenderDetails: strings.TrimSpace(renderDetailsRaw),
		Greeting:      strings.TrimSpace(greetingRaw),
		Other:         strings.TrimSpace(otherRaw),
	}
}
