package wallet

import (
	"fmt"
)

// Authenticator binds signature verification to the caller's session nonce.
type Authenticator struct {
	nonces    *NonceIssuer
	verifier  Verifier
	singleUse bool
}

// NewAuthenticator returns an Authenticator. With singleUse set a nonce is
// dropped after the first successful verification, so a captured signature
// cannot be replayed within the same session.
func NewAuthenticator(nonces *NonceIssuer, verifier Verifier, singleUse bool) *Authenticator {
	return &Authenticator{
		nonces:    nonces,
		verifier:  verifier,
		singleUse: singleUse,
	}
}

// VerifyWallet checks that signature over the session's current challenge was
// produced by claimed and returns the lowercased address.
func (a *Authenticator) VerifyWallet(sessionID, claimed string, signature []byte) (string, error) {
	nonce, err := a.nonces.Current(sessionID)
	if err != nil {
		return "", fmt.Errorf("session nonce: %w", err)
	}

	address, err := a.verifier.Verify(nonce, claimed, signature)
	if err != nil {
		return "", err
	}

	// concurrent requests may verify the same nonce; only one may consume it
	if a.singleUse && !a.nonces.Consume(sessionID, nonce) {
		return "", fmt.Errorf("session nonce: %w", ErrNonceNotFound)
	}

	return address, nil
}
