// Package portfolio derives per-asset positions from the raw trade log.
// Positions are recomputed from the full history on every read; nothing
// in this package mutates state or touches storage.
package portfolio

import (
	"math"
	"sort"

	"github.com/kasku/internal/models"
)

// EPS is the quantity below which a position counts as closed.
const EPS = 1e-6

// Position is a derived per-asset snapshot. AverageCost is the weighted
// average purchase price of the held quantity; only buys move it.
type Position struct {
	Ticker        string  `json:"ticker"`
	TotalQuantity float64 `json:"total_quantity"`
	AverageCost   float64 `json:"average_cost"`
	TotalValue    float64 `json:"total_value"`
}

// Accumulate folds one asset's trades, in (TradeDate, ID) ascending
// order, into its final position. A buy recomputes the weighted average
// cost; a sell only reduces quantity and leaves the average untouched.
// A sell past zero is accepted and drives the quantity negative.
func Accumulate(ticker string, trades []models.Trade) Position {
	pos := Position{Ticker: ticker}
	for _, t := range trades {
		if t.Side == models.TradeSideBuy {
			newQty := pos.TotalQuantity + t.Quantity
			if newQty > 0 {
				pos.AverageCost = (pos.TotalQuantity*pos.AverageCost + t.Quantity*t.Price) / newQty
			} else {
				pos.AverageCost = 0
			}
			pos.TotalQuantity = newQty
		} else {
			pos.TotalQuantity -= t.Quantity
		}
	}
	pos.TotalValue = pos.TotalQuantity * pos.AverageCost
	return pos
}

// Compute groups the full trade history by ticker, orders each group
// chronologically (ties broken by insertion id), folds it and drops
// near-zero positions. Output is sorted by ticker so repeated calls on
// the same input are identical.
func Compute(trades []models.Trade) []Position {
	groups := make(map[string][]models.Trade)
	for _, t := range trades {
		groups[t.AssetTicker] = append(groups[t.AssetTicker], t)
	}

	positions := make([]Position, 0, len(groups))
	for ticker, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].TradeDate.Equal(group[j].TradeDate) {
				return group[i].ID < group[j].ID
			}
			return group[i].TradeDate.Before(group[j].TradeDate)
		})

		pos := Accumulate(ticker, group)
		if math.Abs(pos.TotalQuantity) <= EPS {
			continue
		}
		positions = append(positions, pos)
	}

	sort.Slice(positions, func(i, j int) bool {
		return positions[i].Ticker < positions[j].Ticker
	})
	return positions
}
