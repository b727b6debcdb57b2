// Package ledger turns decoded contract events into immutable transaction rows.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"openfund/internal/ethereum"
	"openfund/internal/metrics"
	"openfund/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrInvalidEvent = errors.New("invalid ledger event")

var eventTypes = map[string]repository.TransactionType{
	ethereum.EventInvestmentMade: repository.TransactionInvestment,
	ethereum.EventVoteCast:       repository.TransactionVote,
	ethereum.EventRefunded:       repository.TransactionRefund,
}

type Writer struct {
	logs    *zap.SugaredLogger
	repo    Repository
	metrics *metrics.Metrics
}

func NewWriter(logger *zap.SugaredLogger, repo Repository, m *metrics.Metrics) *Writer {
	return &Writer{
		logs:    logger,
		repo:    repo,
		metrics: m,
	}
}

// Write stores the event once. Writing an event whose hash and type are
// already recorded is a no-op.
func (w *Writer) Write(ctx context.Context, event ethereum.ContractEvent) error {
	entry, err := ToEntry(event)
	if err != nil {
		return err
	}

	inserted, err := w.repo.SaveLedgerEntry(ctx, entry)
	if err != nil {
		return fmt.Errorf("write %s event: %w", event.Name, err)
	}

	if !inserted {
		w.metrics.EventsDuplicate.WithLabelValues(string(entry.Type)).Inc()
		w.logs.Debugw("ledger entry already recorded",
			"tx_hash", entry.TransactionHash,
			"type", entry.Type,
			"block", entry.BlockNumber)
		return nil
	}

	w.metrics.EventsWritten.WithLabelValues(string(entry.Type)).Inc()
	w.logs.Infow("ledger entry recorded",
		"tx_hash", entry.TransactionHash,
		"type", entry.Type,
		"project_id", entry.ProjectID,
		"investor", entry.InvestorAddress,
		"block", entry.BlockNumber)

	return nil
}

// ToEntry maps a contract event to its ledger row.
func ToEntry(event ethereum.ContractEvent) (repository.Transaction, error) {
	txType, ok := eventTypes[event.Name]
	if !ok {
		return repository.Transaction{}, fmt.Errorf("%w: unsupported event %q", ErrInvalidEvent, event.Name)
	}
	if event.ProjectID == nil || !event.ProjectID.IsInt64() {
		return repository.Transaction{}, fmt.Errorf("%w: project id out of range in %s", ErrInvalidEvent, event.TxHash.Hex())
	}
	if event.BlockTime.IsZero() {
		return repository.Transaction{}, fmt.Errorf("%w: missing block time for %s", ErrInvalidEvent, event.TxHash.Hex())
	}

	entry := repository.Transaction{
		ProjectID:       event.ProjectID.Int64(),
		InvestorAddress: strings.ToLower(event.Account.Hex()),
		TransactionHash: event.TxHash.Hex(),
		Type:            txType,
		BlockNumber:     event.BlockNumber,
		LogIndex:        event.LogIndex,
		TransactionTime: event.BlockTime,
	}

	switch txType {
	case repository.TransactionInvestment:
		if event.Amount == nil || event.TokensToReceive == nil {
			return repository.Transaction{}, fmt.Errorf("%w: investment without amounts in %s", ErrInvalidEvent, event.TxHash.Hex())
		}
		entry.Amount = decimal.NewNullDecimal(ethereum.ToDecimal(event.Amount))
		entry.TokenReceived = decimal.NewNullDecimal(decimal.NewFromBigInt(event.TokensToReceive, 0))
	case repository.TransactionRefund:
		if event.Amount == nil {
			return repository.Transaction{}, fmt.Errorf("%w: refund without amount in %s", ErrInvalidEvent, event.TxHash.Hex())
		}
		entry.Amount = decimal.NewNullDecimal(ethereum.ToDecimal(event.Amount))
	}

	return entry, nil
}
