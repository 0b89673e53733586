package store

import (
	"context"
	"fmt"
)

// DefaultUserID is the single seed user the sandbox operates as.
const DefaultUserID = "user1"

// seedProducts is the fixed catalog, loaded identically at every start.
// Insertion order doubles as the tie-break order for equal ratings.
func seedProducts() []Product {
	return []Product{
		{ID: "1", Name: "iPhone 15 Pro", Category: "Electronics", Price: 999.99, Description: "Latest iPhone with A17 Pro chip", Stock: 50, Rating: 4.8, Tags: TagList{"smartphone", "apple", "premium"}},
		{ID: "2", Name: "Samsung Galaxy S24", Category: "Electronics", Price: 799.99, Description: "Android flagship with AI features", Stock: 30, Rating: 4.7, Tags: TagList{"smartphone", "samsung", "android"}},
		{ID: "3", Name: "MacBook Air M3", Category: "Electronics", Price: 1299.99, Description: "Lightweight laptop with M3 chip", Stock: 25, Rating: 4.9, Tags: TagList{"laptop", "apple", "m3"}},
		{ID: "4", Name: "Nike Air Max 270", Category: "Fashion", Price: 150.00, Description: "Comfortable running shoes", Stock: 100, Rating: 4.5, Tags: TagList{"shoes", "nike", "running"}},
		{ID: "5", Name: "Levi's 501 Jeans", Category: "Fashion", Price: 89.99, Description: "Classic straight-fit jeans", Stock: 75, Rating: 4.4, Tags: TagList{"jeans", "levis", "denim"}},
		{ID: "6", Name: "The Great Gatsby", Category: "Books", Price: 12.99, Description: "Classic American novel", Stock: 200, Rating: 4.6, Tags: TagList{"book", "classic", "fiction"}},
		{ID: "7", Name: "Instant Pot Duo 7-in-1", Category: "Home & Kitchen", Price: 79.99, Description: "Multi-use pressure cooker", Stock: 40, Rating: 4.7, Tags: TagList{"kitchen", "cooking", "appliance"}},
		{ID: "8", Name: "Dyson V15 Detect", Category: "Home & Kitchen", Price: 749.99, Description: "Cordless vacuum with laser detection", Stock: 15, Rating: 4.8, Tags: TagList{"vacuum", "dyson", "cordless"}},
		{ID: "9", Name: "PlayStation 5", Category: "Electronics", Price: 499.99, Description: "Next-gen gaming console", Stock: 20, Rating: 4.9, Tags: TagList{"gaming", "playstation", "console"}},
		{ID: "10", Name: "AirPods Pro 2", Category: "Electronics", Price: 249.99, Description: "Noise-cancelling wireless earbuds", Stock: 60, Rating: 4.6, Tags: TagList{"earbuds", "apple", "wireless"}},
	}
}

func (s *Store) seed(ctx context.Context) error {
	products := seedProducts()
	if _, err := s.db.NewInsert().Model(&products).Exec(ctx); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}

	user := &userRow{
		ID:              DefaultUserID,
		Name:            "Ronnie Kakunguwo",
		Cart:            cartItems{},
		Wishlist:        idList{},
		PurchaseHistory: "[]",
	}
	if _, err := s.db.NewInsert().Model(user).Exec(ctx); err != nil {
		return fmt.Errorf("seed user: %w", err)
	}
	return nil
}
