package payload

import (
	"fmt"
	"regexp"
	"strings"

	"openfund/internal/core"
	"openfund/internal/wallet"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

var (
	addressRegex   = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	signatureRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{130}$`)
)

type SignupRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	WalletAddress string `json:"wallet_address"`
	Signature     string `json:"signature"`
}

func (s *SignupRequest) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&s.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&s.Email, validation.Required, is.EmailFormat),
		validation.Field(&s.Password, validation.Required, validation.Length(8, 72)),
		validation.Field(&s.WalletAddress, validation.Required, validation.Match(addressRegex)),
		validation.Field(&s.Signature, validation.Required, validation.Match(signatureRegex)),
	)
}

func (s SignupRequest) ToMessage(sessionID string) (core.SignupMessage, error) {
	sig, err := wallet.DecodeSignature(s.Signature)
	if err != nil {
		return core.SignupMessage{}, fmt.Errorf("decode signature: %w", err)
	}

	return core.SignupMessage{
		SessionID:     sessionID,
		FirstName:     strings.TrimSpace(s.FirstName),
		LastName:      strings.TrimSpace(s.LastName),
		Email:         strings.TrimSpace(s.Email),
		Password:      s.Password,
		WalletAddress: s.WalletAddress,
		Signature:     sig,
	}, nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (l *LoginRequest) Validate() error {
	return validation.ValidateStruct(l,
		validation.Field(&l.Email, validation.Required, is.EmailFormat),
		validation.Field(&l.Password, validation.Required),
	)
}

func (l LoginRequest) ToMessage() core.LoginMessage {
	return core.LoginMessage{
		Email:    strings.TrimSpace(l.Email),
		Password: l.Password,
	}
}

// WalletRequest carries a wallet address and its signature over the current
// session challenge.
type WalletRequest struct {
	WalletAddress string `json:"wallet_address"`
	Signature     string `json:"signature"`
}

func (wr *WalletRequest) Validate() error {
	return validation.ValidateStruct(wr,
		validation.Field(&wr.WalletAddress, validation.Required, validation.Match(addressRegex)),
		validation.Field(&wr.Signature, validation.Required, validation.Match(signatureRegex)),
	)
}

func (wr WalletRequest) ToMessage(sessionID string) (core.WalletMessage, error) {
	sig, err := wallet.DecodeSignature(wr.Signature)
	if err != nil {
		return core.WalletMessage{}, fmt.Errorf("decode signature: %w", err)
	}

	return core.WalletMessage{
		SessionID:     sessionID,
		WalletAddress: wr.WalletAddress,
		Signature:     sig,
	}, nil
}
