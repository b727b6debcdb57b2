package ledger

import (
	"context"

	"openfund/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	SaveLedgerEntry(ctx context.Context, entry repository.Transaction) (bool, error)
}
