package portfolio

import (
	"github.com/kasku/internal/models"
)

// LotSize is the unit multiple of one equity lot.
const LotSize = 100

// Notional returns price times quantity for one trade.
func Notional(price, quantity float64) float64 {
	return price * quantity
}

// ConvertQuantity interprets a submitted quantity according to asset
// class: stocks are entered in lots and stored in shares, everything
// else is already in natural units.
func ConvertQuantity(class models.AssetClass, quantity float64) float64 {
	if class == models.AssetClassStock {
		return quantity * LotSize
	}
	return quantity
}

// BalanceDelta returns the signed cash adjustment a trade applies to
// its funding account: buys drain cash, sells return it.
func BalanceDelta(side models.TradeSide, notional float64) float64 {
	if side == models.TradeSideBuy {
		return -notional
	}
	return notional
}

// TransactionDelta returns the signed cash adjustment for a generic
// income or expense entry.
func TransactionDelta(kind models.CategoryKind, amount float64) float64 {
	if kind == models.CategoryKindIncome {
		return amount
	}
	return -amount
}
