package contract

import "strings"

// Intent is the fixed label set the model-assisted resolver classifies user
// input into.
type Intent string

const (
	IntentSearch         Intent = "SEARCH"
	IntentAddToCart      Intent = "ADD_TO_CART"
	IntentViewCart       Intent = "VIEW_CART"
	IntentProductDetails Intent = "PRODUCT_DETAILS"
	IntentGreeting       Intent = "GREETING"
	IntentOther          Intent = "OTHER"
)

// classifyPriority is the order labels are probed in a completion: the first
// label contained in the response wins, so SEARCH is checked before
// ADD_TO_CART and so on.
var classifyPriority = []Intent{
	IntentSearch,
	IntentAddToCart,
	IntentViewCart,
	IntentProductDetails,
	IntentGreeting,
	IntentOther,
}

// ParseIntent maps a raw classification completion to an Intent by substring
// containment on the upper-cased text. Unrecognized responses map to
// IntentOther.
func ParseIntent(completion string) Intent {
	normalized := strings.ToUpper(strings.TrimSpace(completion))
	for _, label := range classifyPriority {
		if strings.Contains(normalized, string(label)) {
			return label
		}
	}
	return IntentOther
}
