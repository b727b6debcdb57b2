package handler

import (
	"context"
	"net/http"

	"openfund/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name AccountService . AccountService
type AccountService interface {
	IssueNonce(sessionID string) (string, error)
	Signup(ctx context.Context, msg core.SignupMessage) (core.RaiserProfile, error)
	Login(ctx context.Context, msg core.LoginMessage) (string, error)
	ConnectWallet(ctx context.Context, msg core.WalletMessage) (core.InvestorProfile, error)
	ChangeWallet(ctx context.Context, token string, msg core.WalletMessage) (string, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
