package handler

import "net/http"

const oopsErr = "Oops! Something went wrong. Please try again later."

// Response is the JSON envelope of every non-trivial reply.
type Response struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Register mounts the account and wallet routes on mux.
func (h *OpenFundHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(GetNonce, h.HandleGetNonce)
	mux.HandleFunc(SignUp, h.HandleSignUp)
	mux.HandleFunc(Login, h.HandleLogin)
	mux.HandleFunc(ConnectWallet, h.HandleConnectWallet)
	mux.HandleFunc(ChangeWallet, h.HandleChangeWallet)
}
