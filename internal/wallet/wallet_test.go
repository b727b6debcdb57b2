package wallet_test

import (
	"crypto/ecdsa"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"openfund/internal/wallet"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func signChallenge(key *ecdsa.PrivateKey, nonce string) []byte {
	sig, err := crypto.Sign(accounts.TextHash([]byte(wallet.ChallengeMessage(nonce))), key)
	Expect(err).NotTo(HaveOccurred())
	sig[crypto.RecoveryIDOffset] += 27
	return sig
}

var _ = Describe("Verifier", func() {
	var (
		verifier wallet.Verifier
		key      *ecdsa.PrivateKey
		address  string
	)

	BeforeEach(func() {
		verifier = wallet.NewVerifier()

		var err error
		key, err = crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())
		address = crypto.PubkeyToAddress(key.PublicKey).Hex()
	})

	It("should build the challenge message", func() {
		Expect(wallet.ChallengeMessage("abc123")).To(Equal(
			"Sign this message to verify your wallet ownership with OpenFund. Nonce: abc123"))
	})

	When("the claimed wallet signed the challenge", func() {
		It("should return the lowercased address", func() {
			recovered, err := verifier.Verify("abc123", address, signChallenge(key, "abc123"))
			Expect(err).NotTo(HaveOccurred())
			Expect(recovered).To(Equal(strings.ToLower(address)))
		})

		It("should accept the claimed address in any case", func() {
			recovered, err := verifier.Verify("abc123", "0x"+strings.ToUpper(address[2:]), signChallenge(key, "abc123"))
			Expect(err).NotTo(HaveOccurred())
			Expect(recovered).To(Equal(strings.ToLower(address)))
		})

		It("should accept a raw 0/1 recovery id", func() {
			sig := signChallenge(key, "abc123")
			sig[crypto.RecoveryIDOffset] -= 27
			_, err := verifier.Verify("abc123", address, sig)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	When("another key signed the challenge", func() {
		It("should reject the signature", func() {
			other, err := crypto.GenerateKey()
			Expect(err).NotTo(HaveOccurred())

			_, err = verifier.Verify("abc123", address, signChallenge(other, "abc123"))
			Expect(err).To(MatchError(wallet.ErrInvalidSignature))
		})
	})

	When("a different nonce was signed", func() {
		It("should reject the signature", func() {
			_, err := verifier.Verify("abc123", address, signChallenge(key, "zzz999"))
			Expect(err).To(MatchError(wallet.ErrInvalidSignature))
		})
	})

	When("the signature is malformed", func() {
		It("should reject short input", func() {
			_, err := verifier.Verify("abc123", address, []byte{1, 2, 3})
			Expect(err).To(MatchError(wallet.ErrInvalidSignature))
		})

		It("should reject a bad recovery id", func() {
			sig := signChallenge(key, "abc123")
			sig[crypto.RecoveryIDOffset] = 40
			_, err := verifier.Verify("abc123", address, sig)
			Expect(err).To(MatchError(wallet.ErrInvalidSignature))
		})

		It("should reject undecodable hex", func() {
			_, err := wallet.DecodeSignature("not-hex")
			Expect(err).To(MatchError(wallet.ErrInvalidSignature))
		})
	})

	It("should decode a hex signature", func() {
		sig := signChallenge(key, "abc123")
		decoded, err := wallet.DecodeSignature(hexutil.Encode(sig))
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded).To(Equal(sig))
	})
})

var _ = Describe("NonceIssuer", func() {
	var (
		issuer *wallet.NonceIssuer
		now    time.Time
	)

	BeforeEach(func() {
		now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		wallet.TimeNow = func() time.Time { return now }
		DeferCleanup(func() { wallet.TimeNow = time.Now })

		issuer = wallet.NewNonceIssuer(time.Minute)
	})

	It("should issue a fresh 32 character nonce per call", func() {
		first, err := issuer.Issue("session")
		Expect(err).NotTo(HaveOccurred())
		Expect(first).To(MatchRegexp(`^[0-9a-f]{32}$`))

		second, err := issuer.Issue("session")
		Expect(err).NotTo(HaveOccurred())
		Expect(second).NotTo(Equal(first))

		current, err := issuer.Current("session")
		Expect(err).NotTo(HaveOccurred())
		Expect(current).To(Equal(second))
	})

	It("should keep sessions apart", func() {
		a, _ := issuer.Issue("a")
		b, _ := issuer.Issue("b")
		Expect(issuer.Current("a")).To(Equal(a))
		Expect(issuer.Current("b")).To(Equal(b))
	})

	It("should report unknown sessions", func() {
		_, err := issuer.Current("missing")
		Expect(err).To(MatchError(wallet.ErrNonceNotFound))
	})

	It("should expire nonces after the ttl", func() {
		_, err := issuer.Issue("session")
		Expect(err).NotTo(HaveOccurred())

		now = now.Add(2 * time.Minute)
		_, err = issuer.Current("session")
		Expect(err).To(MatchError(wallet.ErrNonceExpired))
	})

	It("should only consume the matching nonce", func() {
		nonce, _ := issuer.Issue("session")
		Expect(issuer.Consume("session", "stale")).To(BeFalse())
		Expect(issuer.Current("session")).To(Equal(nonce))

		Expect(issuer.Consume("session", nonce)).To(BeTrue())
		_, err := issuer.Current("session")
		Expect(err).To(MatchError(wallet.ErrNonceNotFound))
		Expect(issuer.Consume("session", nonce)).To(BeFalse())
	})

	It("should purge expired nonces", func() {
		_, _ = issuer.Issue("old")
		now = now.Add(2 * time.Minute)
		_, _ = issuer.Issue("new")

		Expect(issuer.Purge()).To(Equal(1))
		_, err := issuer.Current("new")
		Expect(err).NotTo(HaveOccurred())
	})
})

var _ = Describe("Authenticator", func() {
	var (
		issuer  *wallet.NonceIssuer
		key     *ecdsa.PrivateKey
		address string
		nonce   string
	)

	BeforeEach(func() {
		issuer = wallet.NewNonceIssuer(time.Minute)

		var err error
		key, err = crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())
		address = crypto.PubkeyToAddress(key.PublicKey).Hex()

		nonce, err = issuer.Issue("session")
		Expect(err).NotTo(HaveOccurred())
	})

	When("nonces are single use", func() {
		It("should refuse to verify the same signature twice", func() {
			auth := wallet.NewAuthenticator(issuer, wallet.NewVerifier(), true)
			sig := signChallenge(key, nonce)

			recovered, err := auth.VerifyWallet("session", address, sig)
			Expect(err).NotTo(HaveOccurred())
			Expect(recovered).To(Equal(strings.ToLower(address)))

			_, err = auth.VerifyWallet("session", address, sig)
			Expect(err).To(MatchError(wallet.ErrNonceNotFound))
		})

		It("should let only one of many concurrent requests through", func() {
			auth := wallet.NewAuthenticator(issuer, wallet.NewVerifier(), true)

			for range 50 {
				current, err := issuer.Issue("session")
				Expect(err).NotTo(HaveOccurred())
				sig := signChallenge(key, current)

				var (
					wg        sync.WaitGroup
					succeeded atomic.Int64
				)
				for range 16 {
					wg.Add(1)
					go func() {
						defer wg.Done()
						if _, err := auth.VerifyWallet("session", address, sig); err == nil {
							succeeded.Add(1)
						}
					}()
				}
				wg.Wait()

				Expect(succeeded.Load()).To(Equal(int64(1)))
			}
		})

		It("should keep the nonce after a failed attempt", func() {
			auth := wallet.NewAuthenticator(issuer, wallet.NewVerifier(), true)
			other, _ := crypto.GenerateKey()

			_, err := auth.VerifyWallet("session", address, signChallenge(other, nonce))
			Expect(err).To(MatchError(wallet.ErrInvalidSignature))

			_, err = auth.VerifyWallet("session", address, signChallenge(key, nonce))
			Expect(err).NotTo(HaveOccurred())
		})
	})

	When("nonces may be reused", func() {
		It("should accept the signature again", func() {
			auth := wallet.NewAuthenticator(issuer, wallet.NewVerifier(), false)
			sig := signChallenge(key, nonce)

			_, err := auth.VerifyWallet("session", address, sig)
			Expect(err).NotTo(HaveOccurred())
			_, err = auth.VerifyWallet("session", address, sig)
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
