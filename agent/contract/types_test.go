package contract

import "testing"

func TestParseIntent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		completion string
		want       Intent
	}{
		{"SEARCH", IntentSearch},
		{"search", IntentSearch},
		{"The intent is ADD_TO_CART.", IntentAddToCart},
		{"VIEW_CART", IntentViewCart},
		{"product_details", IntentProductDetails},
		{"GREETING", IntentGreeting},
		{"OTHER", IntentOther},
		{"no idea", IntentOther},
		{"", IntentOther},
		// SEARCH wins over ADD_TO_CART when both appear: labels are probed
		// in priority order.
		{"either SEARCH or ADD_TO_CART", IntentSearch},
	}

	for _, tc := range cases {
		if got := ParseIntent(tc.completion); got != tc.want {
			t.Fatalf("ParseIntent(%q) = %s, want %s", tc.completion, got, tc.want)
		}
	}
}
