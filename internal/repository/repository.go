package repository

import (
	"context"
	"errors"
	"fmt"

	"openfund/internal/db"
)

var (
	ErrInvestorNotFound = errors.New("investor not found")
	ErrRaiserNotFound   = errors.New("raiser not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrAccountExists    = errors.New("account already exists")
)

// Repository is the relational store shared by the API, the scanner and the
// reconciler.
type Repository struct {
	db Storage
}

func NewRepository(db Storage) *Repository {
	return &Repository{
		db: db,
	}
}

// MigrateTables creates the domain tables plus any extra models owned by
// other packages.
func (r *Repository) MigrateTables(extra ...any) error {
	tables := append([]any{&Project{}, &Transaction{}, &Investor{}, &Raiser{}}, extra...)
	if err := r.db.MigrateTable(tables...); err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

// SaveLedgerEntry records the investor and the ledger row in one database
// transaction. It reports false when a row with the same hash and type already
// exists.
func (r *Repository) SaveLedgerEntry(ctx context.Context, entry Transaction) (bool, error) {
	var inserted bool

	err := r.db.Transaction(ctx, func(tx db.Store) error {
		if _, err := tx.InsertIgnore(ctx, &Investor{WalletAddress: entry.InvestorAddress}); err != nil {
			return fmt.Errorf("ensure investor: %w", err)
		}

		ok, err := tx.InsertIgnore(ctx, &entry)
		if err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}
		inserted = ok
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("save ledger entry %s/%s: %w", entry.TransactionHash, entry.Type, err)
	}

	return inserted, nil
}

// EnsureInvestor inserts the wallet if it is not known yet.
func (r *Repository) EnsureInvestor(ctx context.Context, wallet string) error {
	if _, err := r.db.InsertIgnore(ctx, &Investor{WalletAddress: wallet}); err != nil {
		return fmt.Errorf("ensure investor: %w", err)
	}
	return nil
}

func (r *Repository) GetInvestor(ctx context.Context, wallet string) (Investor, error) {
	var investor Investor

	err := r.db.GetOneBy(ctx, "wallet_address", wallet, &investor)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Investor{}, ErrInvestorNotFound
		}
		return Investor{}, fmt.Errorf("get investor by wallet: %w", err)
	}

	return investor, nil
}
