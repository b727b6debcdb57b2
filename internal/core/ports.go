package core

import (
	"context"

	"openfund/internal/repository"
	"openfund/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateRaiser(ctx context.Context, raiser repository.Raiser) error
	GetRaiserByEmail(ctx context.Context, email string) (repository.Raiser, error)
	UpdateRaiserWallet(ctx context.Context, raiserID, wallet string) error
	EnsureInvestor(ctx context.Context, wallet string) error
	GetInvestor(ctx context.Context, wallet string) (repository.Investor, error)
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Issue(info jwt.TokenInfo) (string, error)
	Validate(token string) (jwt.Claims, error)
}

//counterfeiter:generate -o fake -fake-name NonceIssuer . NonceIssuer
type NonceIssuer interface {
	Issue(sessionID string) (string, error)
}

//counterfeiter:generate -o fake -fake-name WalletVerifier . WalletVerifier
type WalletVerifier interface {
	VerifyWallet(sessionID, claimed string, signature []byte) (string, error)
}
