package service

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// formatOrderMessage renders the operator notification for a new order.
// Pure function of the order fields.
func formatOrderMessage(username string, starAmount int, priceUSD decimal.Decimal, orderID int64, transactionID string) string {
	return fmt.Sprintf("✨ Новый заказ Telegram Stars!\n\n"+
		"👤 Username: @%s\n"+
		"⭐ Количество: %s Stars\n"+
		"💰 Сумма: $%s\n\n"+
		"🔄 Статус: Ожидает обработки\n"+
		"📦 Заказ: #%d\n"+
		"📝 ID запроса: %s",
		username, formatThousands(starAmount), priceUSD.StringFixed(2), orderID, transactionID)
}

// formatThousands renders n with comma separators (1234567 -> "1,234,567").
func formatThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}

	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}

	return string(out)
}
