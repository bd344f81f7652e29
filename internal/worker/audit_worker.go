package worker

import (
	"log"
	"math"
	"time"

	"github.com/kasku/internal/portfolio"
	"github.com/kasku/internal/repository"
)

const auditBatchSize = 500

// notionalTolerance absorbs float rounding in stored totals
const notionalTolerance = 1e-6

// AuditWorker sweeps recorded trades and flags rows whose stored total
// disagrees with price times quantity. Mismatches are logged, never
// mutated; the trade log is append-only.
type AuditWorker struct {
	tradeRepo *repository.TradeRepository
	interval  time.Duration
	stopChan  chan struct{}

	lastID uint
}

// NewAuditWorker creates a new trade audit worker
func NewAuditWorker(tradeRepo *repository.TradeRepository, interval time.Duration) *AuditWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &AuditWorker{
		tradeRepo: tradeRepo,
		interval:  interval,
		stopChan:  make(chan struct{}),
	}
}

// Start begins the audit loop
func (w *AuditWorker) Start() {
	log.Printf("Audit worker started with interval: %v", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.sweep()
		case <-w.stopChan:
			log.Println("Audit worker stopped")
			return
		}
	}
}

// Stop stops the audit loop
func (w *AuditWorker) Stop() {
	close(w.stopChan)
}

// sweep walks forward through the trade log from the last audited row
func (w *AuditWorker) sweep() {
	for {
		trades, err := w.tradeRepo.GetBatch(w.lastID, auditBatchSize)
		if err != nil {
			log.Printf("Audit worker: failed to load trades: %v", err)
			return
		}
		if len(trades) == 0 {
			return
		}

		for _, trade := range trades {
			expected := portfolio.Notional(trade.Price, trade.Quantity)
			if math.Abs(trade.TotalAmount-expected) > notionalTolerance {
				log.Printf("Audit worker: trade %d (%s) total %.8f != price*quantity %.8f",
					trade.ID, trade.ReferenceID, trade.TotalAmount, expected)
			}
			w.lastID = trade.ID
		}

		if len(trades) < auditBatchSize {
			return
		}
	}
}
