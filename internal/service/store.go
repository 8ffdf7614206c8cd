package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"rentrisk/internal/model"
)

// OrderStore reads the wide order join both the batch pipeline and the
// serving path consume. Rows are decoded dynamically from the result set, so
// the raw column set is whatever the source currently exposes and both paths
// see the same one.
type OrderStore struct {
	db *sql.DB
}

func NewOrderStore(db *sql.DB) *OrderStore {
	return &OrderStore{db: db}
}

// FetchOrder reads exactly one order by identifier. Zero rows is not an
// error: it returns (nil, nil) and the caller treats the order as unknown.
// A failed query is retried once after re-establishing the connection; a
// second failure propagates.
func (s *OrderStore) FetchOrder(ctx context.Context, id int64) (*model.Order, error) {
	var rec *model.Record
	err := retryOnce(
		func() error {
			var err error
			rec, err = s.queryRecords(ctx, `SELECT * FROM orders WHERE order_id = $1`, oneRow, id)
			return err
		},
		s.reconnect(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("fetch order %d: %w", id, err)
	}
	if rec == nil {
		return nil, nil
	}
	o, err := model.OrderFromRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("decode order %d: %w", id, err)
	}
	return &o, nil
}

// AllOrders reads the full order snapshot for the batch pipeline.
func (s *OrderStore) AllOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := retryOnce(
		func() error {
			recs, err := s.queryAll(ctx, `SELECT * FROM orders`)
			if err != nil {
				return err
			}
			orders = orders[:0]
			for _, rec := range recs {
				o, err := model.OrderFromRecord(rec)
				if err != nil {
					return err
				}
				orders = append(orders, o)
			}
			return nil
		},
		s.reconnect(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("fetch order snapshot: %w", err)
	}
	return orders, nil
}

// RiskWhitelist reads the user identifiers excluded from the training
// population.
func (s *OrderStore) RiskWhitelist(ctx context.Context) (map[int64]struct{}, error) {
	wl := make(map[int64]struct{})
	err := retryOnce(
		func() error {
			rows, err := s.db.QueryContext(ctx, `SELECT user_id FROM risk_white_list`)
			if err != nil {
				return err
			}
			defer rows.Close()
			for rows.Next() {
				var id int64
				if err := rows.Scan(&id); err != nil {
					return err
				}
				wl[id] = struct{}{}
			}
			return rows.Err()
		},
		s.reconnect(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("fetch risk whitelist: %w", err)
	}
	return wl, nil
}

// oneRow limits a dynamic query to a single record; extra rows are ignored
// the way the original single-order fetch ignored them.
const oneRow = 1

// queryRecords runs a dynamic-column query and decodes at most limit rows,
// returning the first record or nil when the result set is empty.
func (s *OrderStore) queryRecords(ctx context.Context, query string, limit int, args ...any) (*model.Record, error) {
	recs, err := s.query(ctx, query, limit, args...)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return recs[0], nil
}

func (s *OrderStore) queryAll(ctx context.Context, query string, args ...any) ([]*model.Record, error) {
	return s.query(ctx, query, -1, args...)
}

func (s *OrderStore) query(ctx context.Context, query string, limit int, args ...any) ([]*model.Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var recs []*model.Record
	for rows.Next() {
		if limit >= 0 && len(recs) >= limit {
			break
		}
		vals := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		rec := model.NewRecord()
		for i, c := range cols {
			rec.Set(c, vals[i].String)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}
	return recs, nil
}

func (s *OrderStore) reconnect(ctx context.Context) func() error {
	return func() error {
		slog.Warn("order store query failed, re-establishing connection")
		return s.db.PingContext(ctx)
	}
}
