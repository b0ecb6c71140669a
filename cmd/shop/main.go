// Command shop is a line-oriented stand-in for the store pages: it feeds the
// same add/remove/checkout events into the cart engine that the DOM handlers
// used to.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/artisanhome/cartengine/internal/cart"
	"github.com/artisanhome/cartengine/internal/catalog"
	"github.com/artisanhome/cartengine/internal/checkout"
	"github.com/artisanhome/cartengine/internal/config"
	"github.com/artisanhome/cartengine/internal/domain"
	"github.com/artisanhome/cartengine/internal/observability"
	"github.com/artisanhome/cartengine/internal/pkg/debounce"
	"github.com/artisanhome/cartengine/internal/pricing"
	"github.com/artisanhome/cartengine/internal/storage"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	metrics := observability.NewInmem(64)

	store := cart.NewStore(storage.NewFile(cfg.StorageFile()), logger, metrics)
	store.Load()

	calc := pricing.NewCalculator(pricing.Rates{
		TaxRate:          cfg.Pricing.TaxRate,
		ShippingFlat:     cfg.Pricing.ShippingFlat,
		FreeShippingOver: cfg.Pricing.FreeShippingOver,
	}, pricing.DefaultPromos()...)

	history, err := checkout.NewHistory(cfg.HistoryCap)
	if err != nil {
		logger.Fatal("history", zap.Error(err))
	}
	flow := checkout.NewFlow(store, calc, checkout.LocalSubmitter{}, history, logger, metrics)

	shop := &shop{
		out:     os.Stdout,
		store:   store,
		catalog: catalog.New(catalog.Seed()),
		flow:    flow,
		history: history,
	}

	// The badge re-render is debounced the way the page coalesced resize
	// storms: many mutations in one quiet period print once.
	badge := debounce.New(cfg.RenderDebounce, func() {
		fmt.Fprintf(os.Stdout, "[badge] %d item(s) in cart\n", store.TotalItemCount())
	})
	defer badge.Stop()
	store.OnChange(func([]domain.LineItem) { badge.Trigger() })

	fmt.Fprintln(os.Stdout, "artisan shop — type 'help' for commands")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(os.Stdout, "> ")
		if !scanner.Scan() {
			break
		}
		if quit := shop.handle(context.Background(), scanner.Text()); quit {
			break
		}
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

type shop struct {
	out     *os.File
	store   *cart.Store
	catalog *catalog.Catalog
	flow    *checkout.Flow
	history *checkout.History
}

// handle runs one user event to completion, like a single DOM callback.
func (s *shop) handle(ctx context.Context, line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		s.printHelp()

	case "list":
		renderCatalog(s.out, s.catalog.List(catalog.Filter{}, catalog.SortNameAsc))

	case "find":
		if len(args) == 0 {
			fmt.Fprintln(s.out, "usage: find <query>")
			return false
		}
		renderCatalog(s.out, s.catalog.List(catalog.Filter{Query: strings.Join(args, " ")}, catalog.SortNameAsc))

	case "add":
		s.add(args)

	case "rm":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "usage: rm <id>")
			return false
		}
		s.store.Remove(args[0])

	case "qty":
		if len(args) != 2 {
			fmt.Fprintln(s.out, "usage: qty <id> <n>")
			return false
		}
		n, err := cart.ParseQuantity(args[1])
		if err != nil {
			fmt.Fprintln(s.out, err)
			return false
		}
		s.store.SetQuantity(args[0], n)

	case "inc":
		if len(args) == 1 {
			s.store.ChangeQuantity(args[0], 1)
		}

	case "dec":
		if len(args) == 1 {
			s.store.ChangeQuantity(args[0], -1)
		}

	case "cart":
		renderCart(s.out, s.store.Items(), s.flow.Summary())

	case "clear":
		s.store.Clear()

	case "promo":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "usage: promo <code>")
			return false
		}
		if err := s.flow.ApplyPromo(args[0]); err != nil {
			fmt.Fprintln(s.out, "invalid promo code")
			return false
		}
		fmt.Fprintln(s.out, "promo code applied")

	case "checkout":
		summary, err := s.flow.Begin()
		if err != nil {
			fmt.Fprintln(s.out, checkoutError(err))
			return false
		}
		renderCart(s.out, s.store.Items(), summary)
		fmt.Fprintln(s.out, "enter: submit <name>; <email>; <address>[; <phone>[; <notes>]]")

	case "cancel":
		if err := s.flow.Cancel(); err != nil {
			fmt.Fprintln(s.out, checkoutError(err))
		}

	case "submit":
		s.submit(ctx, strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "submit")))

	case "ack":
		if err := s.flow.Acknowledge(); err != nil {
			fmt.Fprintln(s.out, checkoutError(err))
			return false
		}
		fmt.Fprintln(s.out, "thank you for shopping with us")

	case "order":
		if len(args) == 0 {
			if conf, ok := s.flow.Confirmation(); ok {
				renderConfirmation(s.out, conf)
			} else {
				fmt.Fprintln(s.out, "usage: order <number>")
			}
			return false
		}
		conf, ok := s.history.Get(args[0])
		if !ok {
			fmt.Fprintln(s.out, "no such order")
			return false
		}
		renderConfirmation(s.out, &conf)

	case "quit", "exit":
		return true

	default:
		fmt.Fprintf(s.out, "unknown command %q, try 'help'\n", cmd)
	}
	return false
}

func (s *shop) add(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "usage: add <id> [qty]")
		return
	}
	qty := 1
	if len(args) > 1 {
		n, err := cart.ParseQuantity(args[1])
		if err != nil {
			fmt.Fprintln(s.out, err)
			return
		}
		qty = n
	}

	p, err := s.catalog.Get(args[0])
	if err != nil {
		fmt.Fprintln(s.out, "no such product")
		return
	}
	s.store.Add(p.LineItem(qty))
	fmt.Fprintf(s.out, "%s added to cart\n", p.Name)
}

func (s *shop) submit(ctx context.Context, raw string) {
	parts := strings.Split(raw, ";")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	var c domain.Customer
	if len(parts) > 0 {
		c.Name = parts[0]
	}
	if len(parts) > 1 {
		c.Email = parts[1]
	}
	if len(parts) > 2 {
		c.Address = parts[2]
	}
	if len(parts) > 3 {
		c.Phone = parts[3]
	}
	if len(parts) > 4 {
		c.Notes = strings.Join(parts[4:], "; ")
	}

	conf, err := s.flow.Submit(ctx, c)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(s.out, "please fix: %s\n", strings.Join(verr.Fields, ", "))
			return
		}
		fmt.Fprintln(s.out, checkoutError(err))
		return
	}

	renderConfirmation(s.out, conf)
	fmt.Fprintln(s.out, "type 'ack' to close the confirmation (this clears your cart)")
}

func (s *shop) printHelp() {
	fmt.Fprint(s.out, `commands:
  list                 show the collection
  find <query>         search the collection
  add <id> [qty]       add a product to the cart
  rm <id>              remove a line
  qty <id> <n>         set a line's quantity (0 removes)
  inc <id> / dec <id>  bump a line's quantity
  cart                 show cart and order summary
  promo <code>         apply a promo code
  clear                empty the cart
  checkout             open checkout
  cancel               abandon checkout
  submit n; e; a       place the order (name; email; address[; phone[; notes]])
  ack                  dismiss the confirmation and clear the cart
  order <number>       re-show a recent confirmation
  quit
`)
}

func checkoutError(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return "your cart is empty"
	case errors.Is(err, domain.ErrInvalidTransition):
		return "that doesn't make sense right now: " + err.Error()
	default:
		return err.Error()
	}
}
