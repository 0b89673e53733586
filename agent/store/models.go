package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// Product is one catalog row. Immutable after seed load except Stock.
type Product struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	ID          string  `bun:"id,pk"`
	Name        string  `bun:"name,notnull"`
	Category    string  `bun:"category,notnull"`
	Price       float64 `bun:"price,notnull"`
	Description string  `bun:"description"`
	Stock       int     `bun:"stock,notnull"`
	Rating      float64 `bun:"rating"`
	Tags        TagList `bun:"tags,type:text"`
}

// TagList stores a product's tags as a JSON text column. Order is preserved
// for display; matching never depends on it.
type TagList []string

func (t TagList) Value() (driver.Value, error) { return jsonValue(t) }
func (t *TagList) Scan(src any) error          { return jsonScan(t, src) }

// CartItem is one cart entry as persisted inside the users.cart JSON column.
type CartItem struct {
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// CartLine is a cart entry resolved against the catalog at read time.
type CartLine struct {
	Product  Product
	Quantity int
	AddedAt  time.Time
}

type cartItems []CartItem

func (c cartItems) Value() (driver.Value, error) { return jsonValue(c) }
func (c *cartItems) Scan(src any) error          { return jsonScan(c, src) }

type idList []string

func (l idList) Value() (driver.Value, error) { return jsonValue(l) }
func (l *idList) Scan(src any) error          { return jsonScan(l, src) }

// userRow mirrors the users table: cart, wishlist, and purchase history are
// JSON documents in text columns, mutated only through single-row updates.
type userRow struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID              string    `bun:"id,pk"`
	Name            string    `bun:"name,notnull"`
	Cart            cartItems `bun:"cart,type:text"`
	Wishlist        idList    `bun:"wishlist,type:text"`
	PurchaseHistory string    `bun:"purchase_history,type:text"`
}

func jsonValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonScan(dst any, src any) error {
	switch s := src.(type) {
	case nil:
		return nil
	case string:
		if s == "" {
			return nil
		}
		return json.Unmarshal([]byte(s), dst)
	case []byte:
		if len(s) == 0 {
			return nil
		}
		return json.Unmarshal(s, dst)
	default:
		return fmt.Errorf("cannot scan %T into JSON column", src)
	}
}
