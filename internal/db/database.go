package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wellywell/shopsync/internal/types"
)

const orderColumns = `id, external_id, external_serial_number, currency, status,
		products_cost, products, external_created_at, external_updated_at,
		created_at, updated_at`

type Database struct {
	pool *pgxpool.Pool
}

func NewDatabase(connString string) (*Database, error) {

	err := Migrate(connString)

	if err != nil {
		return nil, fmt.Errorf("failed to migrate %w", err)
	}

	ctx := context.Background()
	p, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	return &Database{
		pool: p,
	}, nil
}

// GetOrderByExternalID returns (nil, nil) when the order is unknown.
func (d *Database) GetOrderByExternalID(ctx context.Context, externalID string) (*types.Order, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM shop_order
		WHERE external_id = $1`, orderColumns)

	rows, err := d.pool.Query(ctx, query, externalID)
	if err != nil {
		return nil, fmt.Errorf("failed collecting rows %w", err)
	}

	order, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[types.Order])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed unpacking rows %w", err)
	}
	return &order, nil
}

func (d *Database) CreateOrder(ctx context.Context, order types.Order) (*types.Order, error) {
	query := fmt.Sprintf(`
		INSERT INTO shop_order
			(external_id, external_serial_number, currency, status,
			 products_cost, products, external_created_at, external_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s`, orderColumns)

	rows, err := d.pool.Query(ctx, query,
		order.ExternalID, order.ExternalSerialNumber, order.Currency, order.Status,
		order.ProductsCost, order.Products, order.ExternalCreatedAt, order.ExternalUpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			return nil, fmt.Errorf("%w", &OrderExistsError{ExternalID: order.ExternalID})
		}
		return nil, fmt.Errorf("failed inserting order %w", err)
	}

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[types.Order])
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			return nil, fmt.Errorf("%w", &OrderExistsError{ExternalID: order.ExternalID})
		}
		return nil, fmt.Errorf("failed unpacking rows %w", err)
	}
	return &created, nil
}

// UpdateOrderByExternalID replaces the sync-relevant fields of an existing
// order. The original created_at is preserved, updated_at is refreshed.
func (d *Database) UpdateOrderByExternalID(ctx context.Context, externalID string, order types.Order) (*types.Order, error) {
	query := fmt.Sprintf(`
		UPDATE shop_order
		SET external_serial_number = $2,
		    currency = $3,
		    status = $4,
		    products_cost = $5,
		    products = $6,
		    external_created_at = $7,
		    external_updated_at = $8,
		    updated_at = now()
		WHERE external_id = $1
		RETURNING %s`, orderColumns)

	rows, err := d.pool.Query(ctx, query,
		externalID, order.ExternalSerialNumber, order.Currency, order.Status,
		order.ProductsCost, order.Products, order.ExternalCreatedAt, order.ExternalUpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed updating order %w", err)
	}

	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[types.Order])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w", &OrderNotFoundError{ExternalID: externalID})
		}
		return nil, fmt.Errorf("failed unpacking rows %w", err)
	}
	return &updated, nil
}

func (d *Database) GetOrders(ctx context.Context, filter types.OrderFilter) ([]types.Order, error) {

	where, args := buildFilter(filter)

	limit := filter.Limit
	if limit <= 0 {
		limit = 1000
	}
	args = append(args, limit, filter.Offset)

	query := fmt.Sprintf(`
		SELECT %s
		FROM shop_order
		%s
		ORDER BY id
		LIMIT $%d OFFSET $%d`, orderColumns, where, len(args)-1, len(args))

	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed collecting rows %w", err)
	}

	orders, err := pgx.CollectRows(rows, pgx.RowToStructByName[types.Order])
	if err != nil {
		return nil, fmt.Errorf("failed unpacking rows %w", err)
	}
	return orders, nil
}

func (d *Database) GetOrdersCount(ctx context.Context, filter types.OrderFilter) (int, error) {

	where, args := buildFilter(filter)

	query := fmt.Sprintf(`SELECT count(*) FROM shop_order %s`, where)

	row := d.pool.QueryRow(ctx, query, args...)

	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed counting orders %w", err)
	}
	return count, nil
}

func buildFilter(filter types.OrderFilter) (string, []any) {

	var conditions []string
	var args []any

	addCondition := func(expr string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(expr, len(args)))
	}

	if filter.Status != "" {
		addCondition("status = $%d", filter.Status)
	}
	if filter.DateFrom != nil {
		addCondition("created_at >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		addCondition("created_at <= $%d", *filter.DateTo)
	}
	if filter.MinWorth != nil {
		addCondition("products_cost >= $%d", *filter.MinWorth)
	}
	if filter.MaxWorth != nil {
		addCondition("products_cost <= $%d", *filter.MaxWorth)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
