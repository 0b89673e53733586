package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

func (s *Store) getUser(ctx context.Context, userID string) (*userRow, error) {
	var u userRow
	err := s.db.NewSelect().Model(&u).Where("id = ?", userID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}
	return &u, nil
}

// GetCart returns the user's cart in insertion order, each entry resolved
// against the catalog at read time. Entries referencing products no longer
// in the catalog are silently omitted.
func (s *Store) GetCart(ctx context.Context, userID string) ([]CartLine, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil || u == nil {
		return nil, err
	}

	lines := make([]CartLine, 0, len(u.Cart))
	for _, item := range u.Cart {
		p, err := s.GetProduct(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}
		lines = append(lines, CartLine{
			Product:  *p,
			Quantity: item.Quantity,
			AddedAt:  item.AddedAt,
		})
	}
	return lines, nil
}

// GetWishlist returns the user's wishlist resolved against the catalog,
// skipping dangling references.
func (s *Store) GetWishlist(ctx context.Context, userID string) ([]Product, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil || u == nil {
		return nil, err
	}

	products := make([]Product, 0, len(u.Wishlist))
	for _, id := range u.Wishlist {
		p, err := s.GetProduct(ctx, id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}
		products = append(products, *p)
	}
	return products, nil
}

// AddToCart records quantity units of a product in the user's cart. An
// existing entry for the product has its quantity summed; otherwise a new
// entry is appended with the current timestamp. Returns false for an unknown
// user. Stock limits are the caller's responsibility.
func (s *Store) AddToCart(ctx context.Context, userID, productID string, quantity int) (bool, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, nil
	}

	merged := false
	for i := range u.Cart {
		if u.Cart[i].ProductID == productID {
			u.Cart[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		u.Cart = append(u.Cart, CartItem{
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   s.now().UTC(),
		})
	}

	if _, err := s.db.NewUpdate().Model(u).Column("cart").WherePK().Exec(ctx); err != nil {
		return false, fmt.Errorf("update cart for %s: %w", userID, err)
	}
	return true, nil
}

// AddToWishlist records a product on the user's wishlist. Idempotent: adding
// an already-present product is a no-op success. Returns false for an
// unknown user.
func (s *Store) AddToWishlist(ctx context.Context, userID, productID string) (bool, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, nil
	}

	for _, id := range u.Wishlist {
		if id == productID {
			return true, nil
		}
	}
	u.Wishlist = append(u.Wishlist, productID)

	if _, err := s.db.NewUpdate().Model(u).Column("wishlist").WherePK().Exec(ctx); err != nil {
		return false, fmt.Errorf("update wishlist for %s: %w", userID, err)
	}
	return true, nil
}
