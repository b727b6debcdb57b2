package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"openfund/internal/core"
	"openfund/internal/http/handler"
	"openfund/internal/http/handler/fake"
	"openfund/internal/http/handler/middleware"
	"openfund/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var signature = "0x" + strings.Repeat("ab", 64) + "1c"

func withSession(req *http.Request, sessionID string) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.SessionIDKey, sessionID)
	ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-1")
	return req.WithContext(ctx)
}

var _ = Describe("OpenFundHandler", func() {
	var (
		oh            *handler.OpenFundHandler
		fakeService   *fake.AccountService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeService = new(fake.AccountService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = payload.DecodeValidator{}.DecodeJSONPayload

		w = httptest.NewRecorder()
		oh = handler.NewOpenFundHandler(zap.NewNop().Sugar(), fakeValidator, fakeService)
	})

	Describe("HandleGetNonce", func() {
		BeforeEach(func() {
			req = withSession(httptest.NewRequest(http.MethodGet, "/openfund/nonce", nil), "session-1")
		})

		JustBeforeEach(func() {
			oh.HandleGetNonce(w, req)
		})

		When("a nonce is issued", func() {
			BeforeEach(func() {
				fakeService.IssueNonceReturns("abc123", nil)
			})

			It("should return the nonce and the challenge", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string]string
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["nonce"]).To(Equal("abc123"))
				Expect(response["message"]).To(Equal("Sign this message to verify your wallet ownership with OpenFund. Nonce: abc123"))
				Expect(fakeService.IssueNonceArgsForCall(0)).To(Equal("session-1"))
			})
		})

		When("issuing fails", func() {
			BeforeEach(func() {
				fakeService.IssueNonceReturns("", fakeErr)
			})

			It("should return 500 without the cause", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleSignUp", func() {
		var body string

		BeforeEach(func() {
			body = `{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","password":"correct horse",` +
				`"wallet_address":"0x000000000000000000000000000000000000BEEF","signature":"` + signature + `"}`
			fakeService.SignupReturns(core.RaiserProfile{ID: "raiser-1"}, nil)
		})

		JustBeforeEach(func() {
			req = withSession(httptest.NewRequest(http.MethodPost, "/openfund/sign-up", strings.NewReader(body)), "session-1")
			oh.HandleSignUp(w, req)
		})

		It("should create the account", func() {
			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(fakeService.SignupCallCount()).To(Equal(1))
			_, msg := fakeService.SignupArgsForCall(0)
			Expect(msg.SessionID).To(Equal("session-1"))
			Expect(msg.Signature).To(HaveLen(65))
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				body = `{"email":"ada@example.com"}`
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.SignupCallCount()).To(BeZero())
			})
		})

		When("the wallet is not verified", func() {
			BeforeEach(func() {
				fakeService.SignupReturns(core.RaiserProfile{}, core.ErrWalletNotVerified)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the account exists", func() {
			BeforeEach(func() {
				fakeService.SignupReturns(core.RaiserProfile{}, core.ErrAccountExists)
			})

			It("should return 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})
	})

	Describe("HandleLogin", func() {
		var body string

		BeforeEach(func() {
			body = `{"email":"ada@example.com","password":"pass"}`
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/openfund/login", strings.NewReader(body))
			oh.HandleLogin(w, req)
		})

		When("login succeeds", func() {
			BeforeEach(func() {
				fakeService.LoginReturns("test-token", nil)
			})

			It("should return a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string]string
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["token"]).To(Equal("test-token"))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				fakeService.LoginReturns("", core.ErrIncorrectPassword)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("decoding fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadStub = nil
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return 400 with the cause", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.LoginCallCount()).To(BeZero())
			})
		})
	})

	Describe("HandleConnectWallet", func() {
		JustBeforeEach(func() {
			body := `{"wallet_address":"0x000000000000000000000000000000000000BEEF","signature":"` + signature + `"}`
			req = withSession(httptest.NewRequest(http.MethodPost, "/openfund/connect-wallet", strings.NewReader(body)), "session-9")
			oh.HandleConnectWallet(w, req)
		})

		When("the signature checks out", func() {
			BeforeEach(func() {
				fakeService.ConnectWalletReturns(core.InvestorProfile{WalletAddress: "0x000000000000000000000000000000000000beef"}, nil)
			})

			It("should return the investor", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("0x000000000000000000000000000000000000beef"))
				_, msg := fakeService.ConnectWalletArgsForCall(0)
				Expect(msg.SessionID).To(Equal("session-9"))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.ConnectWalletReturns(core.InvestorProfile{}, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleChangeWallet", func() {
		var token string

		BeforeEach(func() {
			token = "test-token"
			fakeService.ChangeWalletReturns("0x00000000000000000000000000000000000000cc", nil)
		})

		JustBeforeEach(func() {
			body := `{"wallet_address":"0x00000000000000000000000000000000000000CC","signature":"` + signature + `"}`
			req = withSession(httptest.NewRequest(http.MethodPut, "/openfund/profile/wallet", strings.NewReader(body)), "session-1")
			if token != "" {
				req.Header.Set("AUTH_TOKEN", token)
			}
			oh.HandleChangeWallet(w, req)
		})

		It("should change the wallet", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			_, argToken, msg := fakeService.ChangeWalletArgsForCall(0)
			Expect(argToken).To(Equal("test-token"))
			Expect(msg.SessionID).To(Equal("session-1"))
		})

		When("no token is sent", func() {
			BeforeEach(func() {
				token = ""
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.ChangeWalletCallCount()).To(BeZero())
			})
		})

		When("the token is rejected", func() {
			BeforeEach(func() {
				fakeService.ChangeWalletReturns("", core.ErrUnauthorized)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("Register", func() {
		It("should route every endpoint", func() {
			mux := http.NewServeMux()
			oh.Register(mux)
			fakeService.IssueNonceReturns("n", nil)

			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openfund/nonce", nil))
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeService.IssueNonceCallCount()).To(Equal(1))
		})
	})
})
