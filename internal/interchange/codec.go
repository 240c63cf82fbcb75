// Package interchange translates between stored order records and the CSV
// format used for bulk exchange with spreadsheet tools.
package interchange

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/veltrade/order-records-backend/internal/orders"
	pkgerrors "github.com/veltrade/order-records-backend/pkg/errors"
)

// ExportHeader is the fixed column order every export carries.
var ExportHeader = []string{
	"PO No",
	"PO Date",
	"Client Name",
	"Product Details",
	"Qty",
	"Dispatch Status",
	"Invoice No",
	"Invoice Date",
	"Invoice Amount",
	"Payment Status",
	"Delivered Items",
	"Undelivered Items",
}

// ImportReport separates rows read from rows persisted. Processed counts rows
// with a resolvable PO number, Imported counts actual inserts; the historical
// implementation conflated the two, so both are surfaced and the caller picks.
type ImportReport struct {
	Processed  int `json:"processed"`
	Imported   int `json:"imported"`
	Duplicates int `json:"duplicates"`
	Skipped    int `json:"skipped"`
}

// Codec moves order records across the CSV boundary through the order service,
// so imports get the same validation, date normalization and duplicate
// handling as interactive creates.
type Codec struct {
	svc orders.Service
}

func NewCodec(svc orders.Service) (*Codec, error) {
	if svc == nil {
		return nil, fmt.Errorf("orders service required")
	}
	return &Codec{svc: svc}, nil
}

// Export writes the full order collection as CSV. Line items collapse into
// the Product Details column as "name xQTY; name xQTY"; unit prices and
// remarks do not survive that direction.
func (c *Codec) Export(ctx context.Context, w io.Writer) error {
	list, err := c.svc.List(ctx, orders.ListFilters{SortBy: "id", Order: "asc"})
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(ExportHeader); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write csv header")
	}

	for i := range list {
		order := &list[i]
		details := order.ProductDetails
		if len(order.Items) > 0 {
			details = orders.FlattenItems(order.Items)
		}
		row := []string{
			order.PONumber,
			order.PODate,
			order.ClientName,
			details,
			strconv.Itoa(order.Qty),
			string(order.DispatchStatus),
			order.InvoiceNo,
			order.InvoiceDate,
			formatAmount(order.InvoiceAmount),
			order.PaymentStatus,
			order.DeliveredItems,
			order.UndeliveredItems,
		}
		if err := writer.Write(row); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write csv row")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "flush csv")
	}
	return nil
}

// Import reads CSV rows with unknown header naming and inserts what it can.
// Rows without a resolvable PO number are skipped; duplicate PO numbers are
// dropped silently. Storage failures abort the batch mid-way and surface with
// the partial report, matching the no-rollback import contract.
func (c *Codec) Import(ctx context.Context, r io.Reader) (*ImportReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return &ImportReport{}, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "read csv header")
	}

	columns := resolveColumns(header)
	poColumn, hasPO := columns[fieldPONumber]

	report := &ImportReport{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// malformed row, a per-row skip rather than a batch failure
			report.Skipped++
			continue
		}

		if !hasPO || cell(record, poColumn) == "" {
			report.Skipped++
			continue
		}
		report.Processed++

		input := buildInput(record, columns)
		if _, err := c.svc.Create(ctx, input); err != nil {
			switch {
			case pkgerrors.HasCode(err, pkgerrors.CodeDuplicatePO):
				report.Duplicates++
			case pkgerrors.HasCode(err, pkgerrors.CodeValidation):
				report.Skipped++
				report.Processed--
			default:
				return report, err
			}
			continue
		}
		report.Imported++
	}

	return report, nil
}

func buildInput(record []string, columns map[string]int) orders.OrderInput {
	input := orders.OrderInput{
		PONumber:         field(record, columns, fieldPONumber),
		PODate:           field(record, columns, fieldPODate),
		ClientName:       field(record, columns, fieldClientName),
		ProductDetails:   field(record, columns, fieldProductDetails),
		Qty:              coerceInt(field(record, columns, fieldQty)),
		DispatchStatus:   field(record, columns, fieldDispatchStatus),
		InvoiceNo:        field(record, columns, fieldInvoiceNo),
		InvoiceDate:      field(record, columns, fieldInvoiceDate),
		InvoiceAmount:    coerceFloat(field(record, columns, fieldInvoiceAmount)),
		PaymentStatus:    field(record, columns, fieldPaymentStatus),
		DeliveredItems:   field(record, columns, fieldDeliveredItems),
		UndeliveredItems: field(record, columns, fieldUndeliveredItems),
	}

	// When every product token carries an explicit quantity the row can be
	// promoted to line items; otherwise the flat string and Qty column stand.
	tokens := orders.ParseProductDetails(input.ProductDetails)
	if len(tokens) > 0 && allHaveQty(tokens) {
		items := make([]orders.ItemInput, 0, len(tokens))
		for _, token := range tokens {
			items = append(items, orders.ItemInput{
				ProductName: token.Name,
				Qty:         *token.Qty,
			})
		}
		input.Items = items
	}

	return input
}

func allHaveQty(tokens []orders.ProductToken) bool {
	for _, token := range tokens {
		if token.Qty == nil {
			return false
		}
	}
	return true
}

func field(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok {
		return ""
	}
	return cell(record, idx)
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// coerceInt is the best-effort quantity parse: integers pass, decimals
// truncate, anything else is 0.
func coerceInt(raw string) int {
	if raw == "" {
		return 0
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f)
	}
	return 0
}

func coerceFloat(raw string) float64 {
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimPrefix(raw, "$"), 64)
	if err != nil {
		return 0
	}
	return f
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
