package render

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"go-inventory-billing/internal/model"
	"go-inventory-billing/internal/repository"

	"github.com/samber/lo"
)

// CSV assembles a csv document from headers and rows.
func CSV(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(headers); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func SalesRows(orders []model.Order) [][]string {
	return lo.Map(orders, func(o model.Order, _ int) []string {
		return []string{
			o.ID.String(),
			o.CustomerID.String(),
			fmt.Sprintf("%.2f", o.TotalPrice),
			o.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	})
}

func LowStockRows(products []model.Product) [][]string {
	return lo.Map(products, func(p model.Product, _ int) []string {
		return []string{p.ID.String(), p.Name, fmt.Sprintf("%d", p.Stock)}
	})
}

func TopSellingRows(entries []repository.ProductSales) [][]string {
	return lo.Map(entries, func(e repository.ProductSales, _ int) []string {
		return []string{e.ProductID.String(), e.Name, fmt.Sprintf("%d", e.TotalQuantity)}
	})
}
