package render

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"go-inventory-billing/internal/model"
)

// TextRenderer is the built-in document collaborator: plain tabular text.
// A real deployment swaps in a PDF implementation behind the same interfaces.
type TextRenderer struct{}

func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

func (r *TextRenderer) RenderInvoice(order *model.Order) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Invoice for Order #%s\n\n", order.ID)
	if order.Customer != nil {
		fmt.Fprintf(&buf, "Customer: %s\n", order.Customer.Name)
		fmt.Fprintf(&buf, "Contact:  %s\n", order.Customer.Contact)
	}
	fmt.Fprintf(&buf, "Date:     %s\n", order.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&buf, "Total:    $%.2f\n\n", order.TotalPrice)

	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Product\tQuantity\tPrice")
	for _, item := range order.Items {
		name := item.ProductID.String()
		if item.Product != nil {
			name = item.Product.Name
		}
		fmt.Fprintf(w, "%s\t%d\t$%.2f\n", name, item.Quantity, item.Price)
	}
	if err := w.Flush(); err != nil {
		return nil, ErrRenderFailed
	}

	return buf.Bytes(), nil
}

func (r *TextRenderer) RenderTable(title string, headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s\n\n", title)

	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	writeRow(w, headers)
	for _, row := range rows {
		writeRow(w, row)
	}
	if err := w.Flush(); err != nil {
		return nil, ErrRenderFailed
	}

	return buf.Bytes(), nil
}

func (r *TextRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *TextRenderer) Extension() string {
	return "txt"
}

func writeRow(w *tabwriter.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, cell)
	}
	fmt.Fprintln(w)
}
