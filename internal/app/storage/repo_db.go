package storage

import (
	"time"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/devkekops/starshop/internal/app/entity"
)

var schema = `
CREATE TABLE IF NOT EXISTS orders(
	id				SERIAL PRIMARY KEY,
	username		TEXT NOT NULL,
	star_amount		INTEGER NOT NULL,
	price_usd		NUMERIC(15,2) NOT NULL,
	status			VARCHAR(10) NOT NULL,
	transaction_id	TEXT NOT NULL,
	created_at		TIMESTAMP WITH TIME ZONE NOT NULL,
	updated_at		TIMESTAMP WITH TIME ZONE
);`

type RepoDB struct {
	db *sqlx.DB
}

func NewRepoDB(databaseURI string) (*RepoDB, error) {
	db, err := sqlx.Connect("pgx", databaseURI)
	if err != nil {
		return nil, err
	}

	db.MustExec(schema)

	return &RepoDB{db: db}, nil
}

func (r *RepoDB) CreateOrder(username string, starAmount int, priceUSD decimal.Decimal, transactionID string) (int64, error) {
	var orderID int64
	querySaveNewOrder := `INSERT INTO orders (username, star_amount, price_usd, status, transaction_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.Get(&orderID, querySaveNewOrder, username, starAmount, priceUSD, entity.StatusPending, transactionID, time.Now().Truncate(time.Second))
	if err != nil {
		return 0, err
	}

	return orderID, nil
}

func (r *RepoDB) MarkSent(orderID int64) error {
	queryUpdateOrderStatus := `UPDATE orders SET status = ($1), updated_at = ($2) WHERE id = ($3)`
	res, err := r.db.Exec(queryUpdateOrderStatus, entity.StatusSent, time.Now().Truncate(time.Second), orderID)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func (r *RepoDB) GetOrders(usernameFilter string, limit int) ([]entity.Order, error) {
	var orders []entity.Order
	var err error

	if usernameFilter != "" {
		queryGetOrdersByUsername := `SELECT id, username, star_amount, price_usd, status, transaction_id, created_at, updated_at
			FROM orders WHERE username = ($1) ORDER BY created_at DESC LIMIT ($2)`
		err = r.db.Select(&orders, queryGetOrdersByUsername, usernameFilter, limit)
	} else {
		queryGetOrders := `SELECT id, username, star_amount, price_usd, status, transaction_id, created_at, updated_at
			FROM orders ORDER BY created_at DESC LIMIT ($1)`
		err = r.db.Select(&orders, queryGetOrders, limit)
	}
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *RepoDB) Close() {
	r.db.Close()
}
