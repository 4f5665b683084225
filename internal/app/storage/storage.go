package storage

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/devkekops/starshop/internal/app/entity"
)

var ErrOrderNotFound = errors.New("order not found")

type Repository interface {
	CreateOrder(username string, starAmount int, priceUSD decimal.Decimal, transactionID string) (int64, error)
	MarkSent(orderID int64) error
	GetOrders(usernameFilter string, limit int) ([]entity.Order, error)
	Close()
}
