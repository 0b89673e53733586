// Package resolver maps free-form user input to one tool invocation. The
// model-assisted resolver runs a classify/extract/render protocol against
// the completion service; the pattern resolver is its deterministic
// fallback and also stands alone when no service is configured.
package resolver

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	toolx "github.com/shopmate-ai/shopmate/agent/tool"
)

// productIDPattern extracts a trailing numeric product id, e.g. from
// "add product ID 3 to cart" or "details for product 9".
var productIDPattern = regexp.MustCompile(`(?:id|product)\s*(\d+)`)

var (
	greetingWords  = []string{"hi", "hello", "hey", "good morning", "good afternoon"}
	sentimentWords = []string{"doing great", "good", "fine", "excellent"}
	laptopWords    = []string{"macbook", "laptop", "mac book"}
	phoneWords     = []string{"phone", "smartphone", "iphone", "samsung"}
	cartViewWords  = []string{"show", "view", "my", "check"}

	// stopWords are stripped before treating the remainder as a free-text
	// search query.
	stopWords = []string{"search", "find", "looking", "for", "show", "me", "i", "need", "want", "help", "with"}
)

const (
	greetingReply = "Hello! Welcome to our AI Shopping Assistant! 🛒\n\n" +
		"I can help you:\n" +
		"- Search for products\n" +
		"- Add items to your cart\n" +
		"- View your cart\n" +
		"- Get product details\n\n" +
		"What would you like to find today?"

	sentimentReply = "That's wonderful to hear! How can I help you with your shopping today? " +
		"You can ask me to find products, check your cart, or get details about any item."

	addToCartHint = "Please specify the product ID you want to add to cart. " +
		"For example: 'add product ID 3 to cart'"

	detailsHint = "Please specify the product ID you want details for. " +
		"For example: 'show details for product ID 3'"

	defaultReply = "I'd be happy to help you find products! You can ask me to:\n" +
		"- Search for specific items (e.g., 'find smartphones')\n" +
		"- Show your cart\n" +
		"- Add items to cart using product ID\n" +
		"- Get product details\n\n" +
		"What would you like to do?"
)

// Pattern resolves input with an ordered rule list: the rules form a
// priority list evaluated top to bottom on the lower-cased input, and the
// first match wins. Every branch terminates in a string; identical input
// always produces identical output.
type Pattern struct {
	tools *toolx.Toolset
}

func NewPattern(tools *toolx.Toolset) *Pattern {
	return &Pattern{tools: tools}
}

func (r *Pattern) Resolve(ctx context.Context, input string) string {
	lowered := strings.ToLower(input)

	if containsAny(lowered, greetingWords) {
		return greetingReply
	}

	if containsAny(lowered, sentimentWords) {
		return sentimentReply
	}

	if containsAny(lowered, laptopWords) {
		result := r.tools.SearchProducts(ctx, "macbook")
		return fmt.Sprintf("Here are the MacBook laptops I found:\n\n%s", result)
	}

	if strings.Contains(lowered, "electronics") || strings.Contains(lowered, "gadget") {
		result := r.tools.SearchProducts(ctx, "electronics")
		return fmt.Sprintf("Here are some electronics I found:\n\n%s", result)
	}

	if containsAny(lowered, phoneWords) {
		result := r.tools.SearchProducts(ctx, "phone")
		return fmt.Sprintf("Here are the phones I found:\n\n%s", result)
	}

	if strings.Contains(lowered, "cart") && containsAny(lowered, cartViewWords) {
		return r.tools.GetCart(ctx)
	}

	if strings.Contains(lowered, "add") && strings.Contains(lowered, "cart") {
		if id, ok := extractProductID(lowered); ok {
			return r.tools.AddToCart(ctx, id, "1")
		}
		return addToCartHint
	}

	if strings.Contains(lowered, "details") || strings.Contains(lowered, "info") {
		if id, ok := extractProductID(lowered); ok {
			return r.tools.GetProductDetails(ctx, id)
		}
		return detailsHint
	}

	if terms := stripStopWords(lowered); terms != "" {
		result := r.tools.SearchProducts(ctx, terms)
		return fmt.Sprintf("Here's what I found for '%s':\n\n%s", terms, result)
	}

	return defaultReply
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func extractProductID(lowered string) (string, bool) {
	m := productIDPattern.FindStringSubmatch(lowered)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func stripStopWords(lowered string) string {
	terms := lowered
	for _, word := range stopWords {
		terms = strings.ReplaceAll(terms, word, "")
	}
	return strings.TrimSpace(terms)
}
