package payload_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"openfund/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var (
	validAddress   = "0x000000000000000000000000000000000000BEEF"
	validSignature = "0x" + strings.Repeat("ab", 64) + "1b"
)

var _ = Describe("DecodeValidator", func() {
	var dv payload.DecodeValidator

	newRequest := func(body string) *http.Request {
		return httptest.NewRequest(http.MethodPost, "/openfund/login", strings.NewReader(body))
	}

	It("should decode and validate a login", func() {
		var login payload.LoginRequest
		err := dv.DecodeJSONPayload(newRequest(`{"email":"ada@example.com","password":"secret"}`), &login)
		Expect(err).NotTo(HaveOccurred())
		Expect(login.ToMessage().Email).To(Equal("ada@example.com"))
	})

	It("should reject unknown fields", func() {
		var login payload.LoginRequest
		err := dv.DecodeJSONPayload(newRequest(`{"email":"ada@example.com","password":"x","admin":true}`), &login)
		Expect(err).To(HaveOccurred())
	})

	It("should reject malformed json", func() {
		var login payload.LoginRequest
		Expect(dv.DecodeJSONPayload(newRequest(`{`), &login)).NotTo(Succeed())
	})

	It("should run validation", func() {
		var login payload.LoginRequest
		err := dv.DecodeJSONPayload(newRequest(`{"email":"not-an-email","password":"x"}`), &login)
		Expect(err).To(MatchError(ContainSubstring("validating payload")))
	})
})

var _ = Describe("SignupRequest", func() {
	var req payload.SignupRequest

	BeforeEach(func() {
		req = payload.SignupRequest{
			FirstName:     "Ada",
			LastName:      "Lovelace",
			Email:         "ada@example.com",
			Password:      "correct horse",
			WalletAddress: validAddress,
			Signature:     validSignature,
		}
	})

	It("should accept a complete request", func() {
		Expect(req.Validate()).To(Succeed())

		msg, err := req.ToMessage("session-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(msg.SessionID).To(Equal("session-1"))
		Expect(msg.Signature).To(HaveLen(65))
		Expect(msg.Signature[64]).To(Equal(byte(0x1b)))
	})

	DescribeTable("invalid requests",
		func(mutate func(*payload.SignupRequest)) {
			mutate(&req)
			Expect(req.Validate()).NotTo(Succeed())
		},
		Entry("missing first name", func(r *payload.SignupRequest) { r.FirstName = "" }),
		Entry("bad email", func(r *payload.SignupRequest) { r.Email = "ada" }),
		Entry("short password", func(r *payload.SignupRequest) { r.Password = "short" }),
		Entry("bad wallet", func(r *payload.SignupRequest) { r.WalletAddress = "0x1234" }),
		Entry("short signature", func(r *payload.SignupRequest) { r.Signature = "0xabcd" }),
	)
})

var _ = Describe("WalletRequest", func() {
	It("should carry the decoded signature", func() {
		req := payload.WalletRequest{WalletAddress: validAddress, Signature: validSignature}
		Expect(req.Validate()).To(Succeed())

		msg, err := req.ToMessage("session-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(msg.WalletAddress).To(Equal(validAddress))
		Expect(msg.Signature).To(HaveLen(65))
	})

	It("should require a signature", func() {
		req := payload.WalletRequest{WalletAddress: validAddress}
		Expect(req.Validate()).NotTo(Succeed())
	})
})
