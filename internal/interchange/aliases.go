package interchange

import "strings"

// Semantic field keys used by the import alias table.
const (
	fieldPONumber         = "po_no"
	fieldPODate           = "po_date"
	fieldClientName       = "client_name"
	fieldProductDetails   = "product_details"
	fieldQty              = "qty"
	fieldDispatchStatus   = "dispatch_status"
	fieldInvoiceNo        = "invoice_no"
	fieldInvoiceDate      = "invoice_date"
	fieldInvoiceAmount    = "invoice_amount"
	fieldPaymentStatus    = "payment_status"
	fieldDeliveredItems   = "delivered_items"
	fieldUndeliveredItems = "undelivered_items"
)

// headerAliases maps each semantic field to the header spellings seen across
// the historical spreadsheet exports, highest priority first. Matching runs
// on normalized header text, so "PO No." and "po_no" land in the same bucket.
var headerAliases = map[string][]string{
	fieldPONumber:         {"po no", "order number", "po number", "po"},
	fieldPODate:           {"po date", "order date", "date"},
	fieldClientName:       {"client name", "company name", "client", "customer"},
	fieldProductDetails:   {"product details", "products", "items"},
	fieldQty:              {"qty", "quantity", "total qty"},
	fieldDispatchStatus:   {"dispatch status", "dispatch/delivered", "delivery status"},
	fieldInvoiceNo:        {"invoice no", "invoice number"},
	fieldInvoiceDate:      {"invoice date"},
	fieldInvoiceAmount:    {"invoice amount", "amount"},
	fieldPaymentStatus:    {"payment status", "payment"},
	fieldDeliveredItems:   {"delivered items"},
	fieldUndeliveredItems: {"undelivered items"},
}

// normalizeHeader folds a raw header cell to its canonical lookup form:
// lowercase, trimmed, underscores as spaces, trailing dots dropped.
func normalizeHeader(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.TrimSuffix(s, ".")
	return strings.Join(strings.Fields(s), " ")
}

// resolveColumns maps each semantic field to its column index in the header
// row. The first alias present wins; fields with no matching alias are absent
// from the result.
func resolveColumns(header []string) map[string]int {
	byName := make(map[string]int, len(header))
	for i, cell := range header {
		name := normalizeHeader(cell)
		if name == "" {
			continue
		}
		if _, seen := byName[name]; !seen {
			byName[name] = i
		}
	}

	columns := make(map[string]int, len(headerAliases))
	for field, aliases := range headerAliases {
		for _, alias := range aliases {
			if idx, ok := byName[alias]; ok {
				columns[field] = idx
				break
			}
		}
	}
	return columns
}
