package core

import "time"

type SignupMessage struct {
	SessionID     string
	FirstName     string
	LastName      string
	Email         string
	Password      string
	WalletAddress string
	Signature     []byte
}

type LoginMessage struct {
	Email    string
	Password string
}

// WalletMessage proves control of WalletAddress by a signature over the
// session's current challenge.
type WalletMessage struct {
	SessionID     string
	WalletAddress string
	Signature     []byte
}

type RaiserProfile struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	WalletAddress string    `json:"wallet_address"`
	CreatedAt     time.Time `json:"created_at"`
}

type InvestorProfile struct {
	WalletAddress string `json:"wallet_address"`
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
	Bio           string `json:"bio,omitempty"`
	AvatarURL     string `json:"avatar_url,omitempty"`
}
