// pricecli quotes mandi prices offline, without the HTTP service.
//
// Usage:
//
//	pricecli quote --product आलू --quantity "2 किलो" --location Delhi --language hi
//	pricecli catalog [--database-url postgres://...]
//	pricecli languages
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"mandiprice/internal/catalog"
	"mandiprice/internal/config"
	"mandiprice/internal/db"
	"mandiprice/internal/locale"
	"mandiprice/internal/logx"
	"mandiprice/internal/quote"
	"mandiprice/internal/rate"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "pricecli",
		Usage:   "Estimate negotiable mandi prices from the command line",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "database-url",
				Usage:   "Postgres URL with a commodity_prices table to override base prices",
				EnvVars: []string{"DATABASE_URL"},
			},
		},
		Before: func(c *cli.Context) error {
			logx.Init(config.Development, c.String("log-level"))
			return nil
		},
		Commands: []*cli.Command{
			quoteCommand(),
			catalogCommand(),
			languagesCommand(),
		},
	}
}

func quoteCommand() *cli.Command {
	return &cli.Command{
		Name:  "quote",
		Usage: "Quote a price range for a product",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "product", Aliases: []string{"p"}, Required: true, Usage: "Product name, any supported script"},
			&cli.StringFlag{Name: "quantity", Aliases: []string{"q"}, Usage: "Quantity, e.g. \"2 kg\" (defaults to 10 kg when no number)"},
			&cli.StringFlag{Name: "location", Aliases: []string{"l"}, Usage: "Delivery location"},
			&cli.StringFlag{Name: "language", Value: locale.DefaultLanguage, Usage: "Response language (" + strings.Join(locale.Supported(), ", ") + ")"},
			&cli.StringFlag{Name: "provider", Value: "mandi", Usage: "Estimator (mandi, fixed)"},
			&cli.Uint64Flag{Name: "seed", Usage: "Seed for reproducible quotes (0 = random)"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text", Usage: "Output format (text, json)"},
		},
		Action: func(c *cli.Context) error {
			cat, err := loadCatalog(c)
			if err != nil {
				return err
			}
			est := rate.NewByName(c.String("provider"), cat, rate.SourceFromSeed(c.Uint64("seed")))
			res := quote.NewService(cat, est).Quote(quote.Request{
				Product:  c.String("product"),
				Quantity: c.String("quantity"),
				Location: c.String("location"),
				Language: c.String("language"),
			})
			switch c.String("format") {
			case "json":
				enc := json.NewEncoder(c.App.Writer)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			case "text":
				printQuote(c.App.Writer, res)
				return nil
			default:
				return fmt.Errorf("unknown format %q", c.String("format"))
			}
		},
	}
}

// orderValue is the indicative total for qty kilograms across the band.
func orderValue(low, high int, qty float64) (decimal.Decimal, decimal.Decimal) {
	q := decimal.NewFromFloat(qty)
	return decimal.NewFromInt(int64(low)).Mul(q), decimal.NewFromInt(int64(high)).Mul(q)
}

func printQuote(w io.Writer, res quote.Response) {
	minTotal, maxTotal := orderValue(res.Low, res.High, res.QuantityKg)
	fmt.Fprintf(w, "Product:      %s\n", res.Product)
	fmt.Fprintf(w, "Quantity:     %s kg\n", decimal.NewFromFloat(res.QuantityKg).String())
	if res.Location != "" {
		fmt.Fprintf(w, "Location:     %s\n", res.Location)
	}
	fmt.Fprintf(w, "Price range:  %s\n", res.PriceRange)
	fmt.Fprintf(w, "Tip:          %s\n", res.NegotiationTip)
	fmt.Fprintf(w, "Order value:  ₹%s – ₹%s\n", minTotal.StringFixed(2), maxTotal.StringFixed(2))
}

func catalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "List known products, aliases and base prices",
		Action: func(c *cli.Context) error {
			cat, err := loadCatalog(c)
			if err != nil {
				return err
			}
			for _, p := range cat.Entries() {
				aliases := "-"
				if len(p.Aliases) > 0 {
					aliases = strings.Join(p.Aliases, ", ")
				}
				fmt.Fprintf(c.App.Writer, "%-10s ₹%-5d %s\n", p.Key, p.BasePrice, aliases)
			}
			return nil
		},
	}
}

func languagesCommand() *cli.Command {
	return &cli.Command{
		Name:  "languages",
		Usage: "List supported response languages",
		Action: func(c *cli.Context) error {
			for _, code := range locale.Supported() {
				fmt.Fprintln(c.App.Writer, code)
			}
			return nil
		},
	}
}

func loadCatalog(c *cli.Context) (*catalog.Catalog, error) {
	cat := catalog.Default()
	url := c.String("database-url")
	if url == "" {
		return cat, nil
	}
	ctx, cancel := context.WithTimeout(c.Context, 10*time.Second)
	defer cancel()
	pool, err := db.NewPool(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	defer pool.Close()
	next, skipped, err := catalog.ApplyOverrides(ctx, pool, cat)
	if err != nil {
		return nil, err
	}
	if len(skipped) > 0 {
		logx.Warn().Strs("keys", skipped).Msg("ignoring prices for unknown products")
	}
	return next, nil
}
