package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"openfund/internal/repository"
	tokenIssuer "openfund/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrIncorrectPassword error = errors.New("incorrect password")
	ErrUserNotFound      error = errors.New("user not found")
	ErrAccountExists     error = errors.New("account already exists")
	ErrWalletNotVerified error = errors.New("wallet ownership not verified")
	ErrUnauthorized      error = errors.New("unauthorized")
)

const (
	RoleRaiser      = "raiser"
	tokenExpiration = 24 * time.Hour
)

// OpenFund serves the account and wallet flows of the web API. Every wallet
// bound action is checked against the caller's session nonce.
type OpenFund struct {
	logs     *zap.SugaredLogger
	repo     Repository
	tokens   TokenIssuer
	nonces   NonceIssuer
	verifier WalletVerifier
}

func NewOpenFund(logger *zap.SugaredLogger, repo Repository, tokens TokenIssuer, nonces NonceIssuer, verifier WalletVerifier) *OpenFund {
	return &OpenFund{
		logs:     logger,
		repo:     repo,
		tokens:   tokens,
		nonces:   nonces,
		verifier: verifier,
	}
}

// IssueNonce mints the challenge the session has to sign next.
func (o *OpenFund) IssueNonce(sessionID string) (string, error) {
	nonce, err := o.nonces.Issue(sessionID)
	if err != nil {
		return "", fmt.Errorf("issue nonce: %w", err)
	}
	return nonce, nil
}

// Signup registers a raiser whose wallet is proven by signature.
func (o *OpenFund) Signup(ctx context.Context, msg SignupMessage) (RaiserProfile, error) {
	address, err := o.verifyWallet(msg.SessionID, msg.WalletAddress, msg.Signature)
	if err != nil {
		return RaiserProfile{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return RaiserProfile{}, fmt.Errorf("hash password: %w", err)
	}

	raiser := repository.Raiser{
		ID:            uuid.NewString(),
		FirstName:     msg.FirstName,
		LastName:      msg.LastName,
		Email:         strings.ToLower(msg.Email),
		PasswordHash:  string(hash),
		WalletAddress: address,
	}
	if err := o.repo.CreateRaiser(ctx, raiser); err != nil {
		if errors.Is(err, repository.ErrAccountExists) {
			return RaiserProfile{}, ErrAccountExists
		}
		return RaiserProfile{}, fmt.Errorf("create raiser: %w", err)
	}

	o.logs.Infow("raiser signed up", "raiser_id", raiser.ID, "wallet", address)
	return toRaiserProfile(raiser), nil
}

// Login checks the raiser's credentials and returns a signed session token.
func (o *OpenFund) Login(ctx context.Context, msg LoginMessage) (string, error) {
	raiser, err := o.repo.GetRaiserByEmail(ctx, strings.ToLower(msg.Email))
	if err != nil {
		if errors.Is(err, repository.ErrRaiserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get raiser: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(raiser.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	token, err := o.tokens.Issue(tokenIssuer.TokenInfo{
		Subject:    raiser.ID,
		Email:      raiser.Email,
		Role:       RoleRaiser,
		Expiration: tokenExpiration,
	})
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}

// ConnectWallet records an investor once it proves control of its wallet.
func (o *OpenFund) ConnectWallet(ctx context.Context, msg WalletMessage) (InvestorProfile, error) {
	address, err := o.verifyWallet(msg.SessionID, msg.WalletAddress, msg.Signature)
	if err != nil {
		return InvestorProfile{}, err
	}

	if err := o.repo.EnsureInvestor(ctx, address); err != nil {
		return InvestorProfile{}, fmt.Errorf("ensure investor: %w", err)
	}

	investor, err := o.repo.GetInvestor(ctx, address)
	if err != nil {
		return InvestorProfile{}, fmt.Errorf("get investor: %w", err)
	}

	o.logs.Infow("investor wallet connected", "wallet", address)
	return InvestorProfile{
		WalletAddress: investor.WalletAddress,
		Name:          investor.Name,
		Email:         investor.Email,
		Bio:           investor.Bio,
		AvatarURL:     investor.AvatarURL,
	}, nil
}

// ChangeWallet rebinds the authenticated raiser to a newly proven wallet.
func (o *OpenFund) ChangeWallet(ctx context.Context, token string, msg WalletMessage) (string, error) {
	claims, err := o.tokens.Validate(token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if claims.Role != RoleRaiser {
		return "", fmt.Errorf("%w: role %q", ErrUnauthorized, claims.Role)
	}

	address, err := o.verifyWallet(msg.SessionID, msg.WalletAddress, msg.Signature)
	if err != nil {
		return "", err
	}

	if err := o.repo.UpdateRaiserWallet(ctx, claims.Subject, address); err != nil {
		if errors.Is(err, repository.ErrRaiserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("update raiser wallet: %w", err)
	}

	o.logs.Infow("raiser wallet changed", "raiser_id", claims.Subject, "wallet", address)
	return address, nil
}

func (o *OpenFund) verifyWallet(sessionID, claimed string, signature []byte) (string, error) {
	address, err := o.verifier.VerifyWallet(sessionID, claimed, signature)
	if err != nil {
		o.logs.Warnw("wallet verification failed", "wallet", claimed, "error", err)
		return "", fmt.Errorf("%w: %w", ErrWalletNotVerified, err)
	}
	return address, nil
}

func toRaiserProfile(r repository.Raiser) RaiserProfile {
	return RaiserProfile{
		ID:            r.ID,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		WalletAddress: r.WalletAddress,
		CreatedAt:     r.CreatedAt,
	}
}
