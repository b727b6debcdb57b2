package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"openfund/internal/core"
	"openfund/internal/http/handler/middleware"
	"openfund/internal/http/payload"
	"openfund/internal/wallet"

	"go.uber.org/zap"
)

var (
	GetNonce      = "GET /openfund/nonce"
	SignUp        = "POST /openfund/sign-up"
	Login         = "POST /openfund/login"
	ConnectWallet = "POST /openfund/connect-wallet"
	ChangeWallet  = "PUT /openfund/profile/wallet"
)

const authTokenHeader = "AUTH_TOKEN"

type OpenFundHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	accounts         AccountService
}

func NewOpenFundHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, accounts AccountService) *OpenFundHandler {
	return &OpenFundHandler{
		logs:             logger,
		requestValidator: requestValidator,
		accounts:         accounts,
	}
}

// HandleGetNonce returns a fresh challenge nonce together with the exact
// message the wallet has to sign.
func (h *OpenFundHandler) HandleGetNonce(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestIDFrom(r.Context())
	sessionID := middleware.SessionIDFrom(r.Context())

	nonce, err := h.accounts.IssueNonce(sessionID)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not issue nonce",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestID)
		h.logs.Errorw("failed to issue nonce",
			"error", err,
			"handler", GetNonce,
			"request_id", requestID)
		return
	}

	h.respond(w, map[string]string{
		"nonce":   nonce,
		"message": wallet.ChallengeMessage(nonce),
	}, http.StatusOK, requestID)
}

func (h *OpenFundHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestIDFrom(r.Context())

	var req payload.SignupRequest
	if !h.decode(w, r, &req, SignUp, requestID) {
		return
	}

	msg, err := req.ToMessage(middleware.SessionIDFrom(r.Context()))
	if err != nil {
		h.badRequest(w, err, SignUp, requestID)
		return
	}

	profile, err := h.accounts.Signup(r.Context(), msg)
	if err != nil {
		h.fail(w, "Sign up failed", err, SignUp, requestID)
		return
	}

	h.logs.Infow("raiser registered",
		"raiser_id", profile.ID,
		"handler", SignUp,
		"request_id", requestID)
	h.respond(w, Response{Message: "Account created", Data: profile}, http.StatusCreated, requestID)
}

func (h *OpenFundHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestIDFrom(r.Context())

	var req payload.LoginRequest
	if !h.decode(w, r, &req, Login, requestID) {
		return
	}

	token, err := h.accounts.Login(r.Context(), req.ToMessage())
	if err != nil {
		h.fail(w, "Login failed", err, Login, requestID)
		return
	}

	h.respond(w, map[string]string{
		"token": token,
	}, http.StatusOK, requestID)
}

func (h *OpenFundHandler) HandleConnectWallet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestIDFrom(r.Context())

	var req payload.WalletRequest
	if !h.decode(w, r, &req, ConnectWallet, requestID) {
		return
	}

	msg, err := req.ToMessage(middleware.SessionIDFrom(r.Context()))
	if err != nil {
		h.badRequest(w, err, ConnectWallet, requestID)
		return
	}

	investor, err := h.accounts.ConnectWallet(r.Context(), msg)
	if err != nil {
		h.fail(w, "Could not connect wallet", err, ConnectWallet, requestID)
		return
	}

	h.respond(w, Response{Message: "Wallet connected", Data: investor}, http.StatusOK, requestID)
}

func (h *OpenFundHandler) HandleChangeWallet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestIDFrom(r.Context())

	authToken := r.Header.Get(authTokenHeader)
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized, requestID)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", ChangeWallet, "request_id", requestID)
		return
	}

	var req payload.WalletRequest
	if !h.decode(w, r, &req, ChangeWallet, requestID) {
		return
	}

	msg, err := req.ToMessage(middleware.SessionIDFrom(r.Context()))
	if err != nil {
		h.badRequest(w, err, ChangeWallet, requestID)
		return
	}

	address, err := h.accounts.ChangeWallet(r.Context(), authToken, msg)
	if err != nil {
		h.fail(w, "Could not change wallet", err, ChangeWallet, requestID)
		return
	}

	h.respond(w, map[string]string{
		"wallet_address": address,
	}, http.StatusOK, requestID)
}

func (h *OpenFundHandler) decode(w http.ResponseWriter, r *http.Request, object any, route, requestID string) bool {
	if err := h.requestValidator.DecodeJSONPayload(r, object); err != nil {
		h.badRequest(w, err, route, requestID)
		return false
	}
	return true
}

func (h *OpenFundHandler) badRequest(w http.ResponseWriter, err error, route, requestID string) {
	h.respond(w, Response{
		Message: "Request failed",
		Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
	}, http.StatusBadRequest, requestID)
	h.logs.Errorw("failed to decode and validate request payload",
		"error", err,
		"handler", route,
		"request_id", requestID)
}

// fail maps service errors to status codes. Only errors meant for the caller
// are echoed back.
func (h *OpenFundHandler) fail(w http.ResponseWriter, message string, err error, route, requestID string) {
	resp := Response{Message: message}
	httpCode := http.StatusInternalServerError

	switch {
	case errors.Is(err, core.ErrWalletNotVerified):
		httpCode = http.StatusUnauthorized
		resp.Error = core.ErrWalletNotVerified.Error()
	case errors.Is(err, core.ErrUserNotFound), errors.Is(err, core.ErrIncorrectPassword):
		httpCode = http.StatusUnauthorized
		resp.Error = "invalid email or password"
	case errors.Is(err, core.ErrUnauthorized):
		httpCode = http.StatusUnauthorized
		resp.Error = core.ErrUnauthorized.Error()
	case errors.Is(err, core.ErrAccountExists):
		httpCode = http.StatusConflict
		resp.Error = err.Error()
	default:
		resp.Error = "unexpected error occurred"
	}

	h.respond(w, resp, httpCode, requestID)
	h.logs.Errorw("request failed",
		"error", err,
		"status", httpCode,
		"handler", route,
		"request_id", requestID)
}

func (h *OpenFundHandler) respond(w http.ResponseWriter, resp any, code int, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestID)
	}
}
