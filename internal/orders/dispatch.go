package orders

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/veltrade/order-records-backend/pkg/db/models"
	"github.com/veltrade/order-records-backend/pkg/enums"
)

// ProductToken is one parsed entry of a flat product_details string.
// Qty is nil when the token carried no "xN" quantity suffix.
type ProductToken struct {
	Name string
	Qty  *int
}

var qtySuffixPattern = regexp.MustCompile(`^(.*\S)\s+x(\d+)$`)

// ParseProductDetails splits a semicolon-delimited product string into tokens,
// peeling off a trailing " xN" quantity where present.
func ParseProductDetails(details string) []ProductToken {
	var tokens []ProductToken
	for _, raw := range strings.Split(details, ";") {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		if m := qtySuffixPattern.FindStringSubmatch(token); m != nil {
			qty, err := strconv.Atoi(m[2])
			if err == nil {
				tokens = append(tokens, ProductToken{Name: m[1], Qty: &qty})
				continue
			}
		}
		tokens = append(tokens, ProductToken{Name: token})
	}
	return tokens
}

// FlattenItems renders line items in the "name xQTY; name xQTY" form used by
// the product_details column and the CSV export.
func FlattenItems(items []models.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.ProductName+" x"+strconv.Itoa(item.Qty))
	}
	return strings.Join(parts, "; ")
}

// ProductNames returns the order's full product token set: line-item names
// when items exist, otherwise the names parsed from product_details.
func ProductNames(order *models.Order) []string {
	if len(order.Items) > 0 {
		names := make([]string, 0, len(order.Items))
		for _, item := range order.Items {
			names = append(names, item.ProductName)
		}
		return names
	}
	tokens := ParseProductDetails(order.ProductDetails)
	names := make([]string, 0, len(tokens))
	for _, token := range tokens {
		names = append(names, token.Name)
	}
	return names
}

// DispatchResult is the derived delivery state for one order.
type DispatchResult struct {
	Status           enums.DispatchStatus
	DeliveredItems   string
	UndeliveredItems string
}

// DeriveDispatch partitions the order's products into delivered and
// undelivered sets and computes the tri-state status. Delivered entries that
// are not in the product set are ignored, so the two sides always partition
// the full set.
func DeriveDispatch(products []string, delivered []string) DispatchResult {
	deliveredSet := make(map[string]struct{}, len(delivered))
	for _, name := range delivered {
		deliveredSet[strings.TrimSpace(name)] = struct{}{}
	}

	var done, remaining []string
	for _, name := range products {
		if _, ok := deliveredSet[name]; ok {
			done = append(done, name)
		} else {
			remaining = append(remaining, name)
		}
	}

	status := enums.DispatchStatusPartial
	switch {
	case len(done) == 0:
		status = enums.DispatchStatusPending
	case len(remaining) == 0:
		status = enums.DispatchStatusDelivered
	}

	return DispatchResult{
		Status:           status,
		DeliveredItems:   strings.Join(done, "; "),
		UndeliveredItems: strings.Join(remaining, "; "),
	}
}
