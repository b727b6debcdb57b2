// Package wallet implements the wallet ownership challenge: session nonces and
// recovery of the signing address from a personal_sign signature.
package wallet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrInvalidSignature error = errors.New("invalid wallet signature")

const challengePrefix = "Sign this message to verify your wallet ownership with OpenFund. Nonce: "

// ChallengeMessage is the exact text a wallet signs for the given nonce.
func ChallengeMessage(nonce string) string {
	return challengePrefix + nonce
}

// DecodeSignature parses a 0x-prefixed hex signature as sent by browser wallets.
func DecodeSignature(signature string) ([]byte, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return nil, fmt.Errorf("%w: decode hex: %w", ErrInvalidSignature, err)
	}
	return sig, nil
}

type Verifier struct{}

func NewVerifier() Verifier {
	return Verifier{}
}

// Verify recovers the address that signed the challenge for nonce and checks
// it against claimed. The recovered address is returned lowercased.
func (v Verifier) Verify(nonce, claimed string, signature []byte) (string, error) {
	if !common.IsHexAddress(claimed) {
		return "", fmt.Errorf("%w: malformed address %q", ErrInvalidSignature, claimed)
	}
	if len(signature) != crypto.SignatureLength {
		return "", fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSignature, crypto.SignatureLength, len(signature))
	}

	sig := make([]byte, crypto.SignatureLength)
	copy(sig, signature)
	// wallets produce V as 27/28
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}
	if sig[crypto.RecoveryIDOffset] > 1 {
		return "", fmt.Errorf("%w: bad recovery id", ErrInvalidSignature)
	}

	hash := accounts.TextHash([]byte(ChallengeMessage(nonce)))
	pub, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return "", fmt.Errorf("%w: recover public key: %w", ErrInvalidSignature, err)
	}

	recovered := strings.ToLower(crypto.PubkeyToAddress(*pub).Hex())
	if recovered != strings.ToLower(claimed) {
		return "", fmt.Errorf("%w: signed by %s", ErrInvalidSignature, recovered)
	}

	return recovered, nil
}
