// Package tool exposes the catalog/cart operations as string-in/string-out
// functions. Both resolvers dispatch through this boundary; every outcome,
// including argument and lookup failures, is a user-readable string.
package tool

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	storex "github.com/shopmate-ai/shopmate/agent/store"
)

const maxSearchResults = 5

// phoneSynonyms trigger the low-recall fallback: a literal search for these
// finds nothing in the catalog, so the search retries over Electronics
// filtered by phone-related tags.
var phoneSynonyms = map[string]bool{
	"smartphone":  true,
	"smartphones": true,
	"phone":       true,
	"phones":      true,
}

var phoneTags = map[string]bool{
	"smartphone": true,
	"apple":      true,
	"samsung":    true,
	"phone":      true,
}

// Toolset binds the operation tools to one store and one user.
type Toolset struct {
	store  *storex.Store
	userID string
}

func New(store *storex.Store, userID string) *Toolset {
	if strings.TrimSpace(userID) == "" {
		userID = storex.DefaultUserID
	}
	return &Toolset{store: store, userID: userID}
}

// SearchProducts searches the catalog and formats up to the first five
// results, one line per product, followed by usage hints.
func (t *Toolset) SearchProducts(ctx context.Context, query string) string {
	results, err := t.store.SearchProducts(ctx, query, "")
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("search products failed")
		results = nil
	}

	if len(results) == 0 && phoneSynonyms[strings.ToLower(query)] {
		electronics, err := t.store.SearchProducts(ctx, "", "Electronics")
		if err != nil {
			log.Error().Err(err).Msg("phone fallback search failed")
		}
		for _, p := range electronics {
			for _, tag := range p.Tags {
				if phoneTags[tag] {
					results = append(results, p)
					break
				}
			}
		}
	}

	if len(results) == 0 {
		return fmt.Sprintf("No products found for '%s'. Try searching for 'phone', 'laptop', 'shoes', or browse by category.", query)
	}

	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	lines := make([]string, 0, len(results))
	for _, p := range results {
		lines = append(lines, fmt.Sprintf("ID: %s, Name: %s, Price: $%.2f, Rating: %s/5, Stock: %d",
			p.ID, p.Name, p.Price, formatRating(p.Rating), p.Stock))
	}

	var b strings.Builder
	b.WriteString("Found products:\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\nTo add any product to cart, say 'add product ID X to cart' where X is the product ID.")
	b.WriteString("\nFor more details about a product, say 'show details for product ID X'.")
	return b.String()
}

// AddToCart adds quantity units of a product to the cart. The quantity
// argument arrives as text from the dispatch boundary and must parse to an
// integer; stock is checked here, not in the store.
func (t *Toolset) AddToCart(ctx context.Context, productID, quantity string) string {
	qty, err := strconv.Atoi(quantity)
	if err != nil {
		return "Invalid quantity specified"
	}

	product, err := t.store.GetProduct(ctx, productID)
	if err != nil {
		log.Error().Err(err).Str("product_id", productID).Msg("product lookup failed")
		return "Failed to add item to cart"
	}
	if product == nil {
		return fmt.Sprintf("Product with ID %s not found", productID)
	}

	if product.Stock < qty {
		return fmt.Sprintf("Sorry, only %d items available for %s", product.Stock, product.Name)
	}

	ok, err := t.store.AddToCart(ctx, t.userID, productID, qty)
	if err != nil {
		log.Error().Err(err).Str("product_id", productID).Msg("add to cart failed")
		return "Failed to add item to cart"
	}
	if !ok {
		return "Failed to add item to cart"
	}
	return fmt.Sprintf("Added %d x %s to cart successfully!", qty, product.Name)
}

// AddToWishlist records a product on the wishlist.
func (t *Toolset) AddToWishlist(ctx context.Context, productID string) string {
	product, err := t.store.GetProduct(ctx, productID)
	if err != nil {
		log.Error().Err(err).Str("product_id", productID).Msg("product lookup failed")
		return "Failed to add item to wishlist"
	}
	if product == nil {
		return fmt.Sprintf("Product with ID %s not found", productID)
	}

	ok, err := t.store.AddToWishlist(ctx, t.userID, productID)
	if err != nil || !ok {
		if err != nil {
			log.Error().Err(err).Str("product_id", productID).Msg("add to wishlist failed")
		}
		return "Failed to add item to wishlist"
	}
	return fmt.Sprintf("Added %s to wishlist!", product.Name)
}

// GetCart renders the cart contents with per-line subtotals and a total.
func (t *Toolset) GetCart(ctx context.Context) string {
	cart, err := t.store.GetCart(ctx, t.userID)
	if err != nil {
		log.Error().Err(err).Msg("get cart failed")
		return "Your cart is empty"
	}
	if len(cart) == 0 {
		return "Your cart is empty"
	}

	lines := []string{"Current cart contents:"}
	total := 0.0
	for _, line := range cart {
		subtotal := line.Product.Price * float64(line.Quantity)
		total += subtotal
		lines = append(lines, fmt.Sprintf("- %s x%d = $%.2f", line.Product.Name, line.Quantity, subtotal))
	}
	lines = append(lines, fmt.Sprintf("Total: $%.2f", total))
	return strings.Join(lines, "\n")
}

// GetProductDetails renders the full field block for one product.
func (t *Toolset) GetProductDetails(ctx context.Context, productID string) string {
	product, err := t.store.GetProduct(ctx, productID)
	if err != nil {
		log.Error().Err(err).Str("product_id", productID).Msg("product lookup failed")
		return fmt.Sprintf("Product with ID %s not found", productID)
	}
	if product == nil {
		return fmt.Sprintf("Product with ID %s not found", productID)
	}

	return fmt.Sprintf("Product Details:\n"+
		"Name: %s\n"+
		"Category: %s\n"+
		"Price: $%.2f\n"+
		"Description: %s\n"+
		"Rating: %s/5\n"+
		"Stock: %d available\n"+
		"Tags: %s",
		product.Name, product.Category, product.Price, product.Description,
		formatRating(product.Rating), product.Stock, strings.Join(product.Tags, ", "))
}

// formatRating prints a rating without trailing zeros: 4.8, 4.5, 5.
func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}
