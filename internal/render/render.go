package render

import (
	"errors"

	"go-inventory-billing/internal/model"
)

// ErrRenderFailed marks a collaborator failure in document rendering.
// Handlers surface it as a 502 instead of a client error.
var ErrRenderFailed = errors.New("document rendering failed")

// InvoiceRenderer produces the invoice artifact for a committed order.
// Extension names stored artifacts after what the renderer actually emits.
type InvoiceRenderer interface {
	RenderInvoice(order *model.Order) ([]byte, error)
	Extension() string
}

// DocumentRenderer turns a tabular report into a rendered document. The
// aggregation that feeds it is format-independent; PDF generation itself is
// a pluggable collaborator. ContentType and Extension label the bytes that
// RenderTable emits so responses and filenames stay truthful to the
// installed implementation.
type DocumentRenderer interface {
	RenderTable(title string, headers []string, rows [][]string) ([]byte, error)
	ContentType() string
	Extension() string
}
