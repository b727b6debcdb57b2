package repository

import (
	"context"
	"errors"
	"fmt"

	"openfund/internal/db"
)

// CreateRaiser stores a new raiser account. ErrAccountExists is returned when
// the email or wallet is already registered.
func (r *Repository) CreateRaiser(ctx context.Context, raiser Raiser) error {
	inserted, err := r.db.InsertIgnore(ctx, &raiser)
	if err != nil {
		return fmt.Errorf("create raiser: %w", err)
	}
	if !inserted {
		return ErrAccountExists
	}
	return nil
}

func (r *Repository) GetRaiserByEmail(ctx context.Context, email string) (Raiser, error) {
	var raiser Raiser

	err := r.db.GetOneBy(ctx, "email", email, &raiser)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Raiser{}, ErrRaiserNotFound
		}
		return Raiser{}, fmt.Errorf("get raiser by email: %w", err)
	}

	return raiser, nil
}

func (r *Repository) UpdateRaiserWallet(ctx context.Context, raiserID, wallet string) error {
	rows, err := r.db.UpdateWhere(ctx, &Raiser{},
		map[string]any{"wallet_address": wallet},
		"id = ?", raiserID)
	if err != nil {
		return fmt.Errorf("update raiser wallet: %w", err)
	}
	if rows == 0 {
		return ErrRaiserNotFound
	}
	return nil
}
