package resolver

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/shopmate-ai/shopmate/agent/contract"
	promptx "github.com/shopmate-ai/shopmate/agent/prompt"
	toolx "github.com/shopmate-ai/shopmate/agent/tool"
)

// searchResultIDPattern pulls the first product id out of a formatted
// search result block.
var searchResultIDPattern = regexp.MustCompile(`ID: (\d+)`)

// Model resolves input through the completion service: a liveness probe,
// then one exchange each for classification, argument extraction, and
// natural-language rendering of the tool result. Any failure anywhere in
// the chain discards all model output and reruns the pattern resolver on
// the original input, so the user always gets a response.
type Model struct {
	llm      contractx.Completer
	tools    *toolx.Toolset
	fallback *Pattern
	prompts  promptx.PromptSet
}

func NewModel(llm contractx.Completer, tools *toolx.Toolset, fallback *Pattern) *Model {
	return &Model{
		llm:      llm,
		tools:    tools,
		fallback: fallback,
		prompts:  promptx.LoadPromptSet(),
	}
}

func (r *Model) Resolve(ctx context.Context, input string) string {
	out, err := r.resolve(ctx, input)
	if err != nil {
		log.Warn().Err(err).Msg("model-assisted resolution failed, using pattern matching")
		return r.fallback.Resolve(ctx, input)
	}
	return out
}

func (r *Model) resolve(ctx context.Context, input string) (string, error) {
	// Liveness probe: no usable response means the whole turn is handled
	// by the pattern resolver.
	if _, err := r.complete(ctx, "Hello"); err != nil {
		return "", err
	}

	classification, err := r.complete(ctx, fmt.Sprintf(r.prompts.Classify, input))
	if err != nil {
		return "", err
	}

	switch contractx.ParseIntent(classification) {
	case contractx.IntentSearch:
		return r.resolveSearch(ctx, input)
	case contractx.IntentAddToCart:
		return r.resolveAddToCart(ctx, input)
	case contractx.IntentViewCart:
		return r.complete(ctx, fmt.Sprintf(r.prompts.RenderCart, r.tools.GetCart(ctx)))
	case contractx.IntentProductDetails:
		return r.resolveProductDetails(ctx, input)
	case contractx.IntentGreeting:
		return r.complete(ctx, fmt.Sprintf(r.prompts.Greeting, input))
	default:
		return r.complete(ctx, fmt.Sprintf(r.prompts.Other, input))
	}
}

func (r *Model) resolveSearch(ctx context.Context, input string) (string, error) {
	terms, err := r.complete(ctx, fmt.Sprintf(r.prompts.SearchTerms, input))
	if err != nil {
		return "", err
	}
	results := r.tools.SearchProducts(ctx, terms)
	return r.complete(ctx, fmt.Sprintf(r.prompts.RenderSearch, terms, results))
}

func (r *Model) resolveAddToCart(ctx context.Context, input string) (string, error) {
	ref, err := r.complete(ctx, fmt.Sprintf(r.prompts.CartItem, input))
	if err != nil {
		return "", err
	}

	var result string
	if isNumeric(ref) {
		result = r.tools.AddToCart(ctx, ref, "1")
	} else {
		// The model extracted a product name: search for it and add the
		// first listed product.
		searchResults := r.tools.SearchProducts(ctx, ref)
		switch {
		case !strings.Contains(searchResults, "Found products:"):
			result = fmt.Sprintf("Sorry, I couldn't find any products matching '%s'", ref)
		default:
			m := searchResultIDPattern.FindStringSubmatch(searchResults)
			if m == nil {
				result = fmt.Sprintf("I found some products for '%s' but couldn't determine which one you want. Please specify the product ID.", ref)
			} else {
				result = r.tools.AddToCart(ctx, m[1], "1")
			}
		}
	}

	return r.complete(ctx, fmt.Sprintf(r.prompts.RenderCartAdd, result))
}

func (r *Model) resolveProductDetails(ctx context.Context, input string) (string, error) {
	ref, err := r.complete(ctx, fmt.Sprintf(r.prompts.DetailsItem, input))
	if err != nil {
		return "", err
	}

	var result string
	if isNumeric(ref) {
		result = r.tools.GetProductDetails(ctx, ref)
	} else {
		result = "Please specify the product ID you want details for."
	}

	return r.complete(ctx, fmt.Sprintf(r.prompts.RenderDetails, result))
}

// complete runs one exchange with the completion service. An empty
// completion counts as a failure so the caller falls back.
func (r *Model) complete(ctx context.Context, prompt string) (string, error) {
	out, err := r.llm.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", contractx.ErrModelInvoke, err)
	}
	trimmed := strings.TrimSpace(out)
	if trimmed == "" {
		return "", contractx.ErrEmptyCompletion
	}
	return trimmed, nil
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
