package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNoPriceTable is returned when the commodity_prices table does not exist.
var ErrNoPriceTable = errors.New("commodity_prices table not found")

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type priceRow struct {
	ProductKey string
	BasePrice  int32
}

// LoadBasePrices reads per-kg price overrides keyed by canonical product key.
func LoadBasePrices(ctx context.Context, q Querier) (map[string]int, error) {
	rows, err := q.Query(ctx, `SELECT product_key, base_price FROM commodity_prices ORDER BY product_key`)
	if err != nil {
		return nil, wrapQueryErr(err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByPos[priceRow])
	if err != nil {
		return nil, wrapQueryErr(err)
	}
	prices := make(map[string]int, len(list))
	for _, r := range list {
		if r.BasePrice <= 0 {
			return nil, fmt.Errorf("%s: %w", r.ProductKey, ErrBadPrice)
		}
		prices[r.ProductKey] = int(r.BasePrice)
	}
	return prices, nil
}

func wrapQueryErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "42P01" { // undefined_table
		return ErrNoPriceTable
	}
	return fmt.Errorf("load base prices: %w", err)
}

// ApplyOverrides loads prices through q and applies them to base.
func ApplyOverrides(ctx context.Context, q Querier, base *Catalog) (*Catalog, []string, error) {
	prices, err := LoadBasePrices(ctx, q)
	if err != nil {
		return nil, nil, err
	}
	return base.WithBasePrices(prices)
}
