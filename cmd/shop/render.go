package main

import (
	"fmt"
	"io"

	"github.com/artisanhome/cartengine/internal/catalog"
	"github.com/artisanhome/cartengine/internal/domain"
	"github.com/artisanhome/cartengine/internal/pricing"
)

func renderCatalog(w io.Writer, products []catalog.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "nothing matched")
		return
	}
	for _, p := range products {
		fmt.Fprintf(w, "  %-14s %-28s %8s  %s\n",
			p.ID, p.Name, pricing.FormatUSD(p.UnitPrice), p.Category)
	}
}

func renderCart(w io.Writer, items []domain.LineItem, s pricing.Summary) {
	if len(items) == 0 {
		fmt.Fprintln(w, "your cart is empty")
		return
	}
	for _, it := range items {
		fmt.Fprintf(w, "  %-28s × %-3d %10s\n",
			it.Name, it.Quantity, pricing.FormatUSD(it.LineTotal()))
	}
	fmt.Fprintf(w, "  %-34s %10s\n", "subtotal", pricing.FormatUSD(s.Subtotal))
	if s.Discount > 0 {
		fmt.Fprintf(w, "  %-34s -%9s\n", "discount", pricing.FormatUSD(s.Discount))
	}
	fmt.Fprintf(w, "  %-34s %10s\n", "shipping", pricing.FormatShipping(s.Shipping))
	fmt.Fprintf(w, "  %-34s %10s\n", "tax", pricing.FormatUSD(s.Tax))
	fmt.Fprintf(w, "  %-34s %10s\n", "total", pricing.FormatUSD(s.Total))
}

func renderConfirmation(w io.Writer, conf *domain.Confirmation) {
	fmt.Fprintf(w, "order %s confirmed — total %s\n",
		conf.OrderNumber, pricing.FormatUSD(conf.Total))
	for _, it := range conf.Items {
		fmt.Fprintf(w, "  %s × %d\n", it.Name, it.Quantity)
	}
}
