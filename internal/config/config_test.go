package config_test

import (
	"os"
	"time"

	"openfund/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewApp", func() {
	var (
		app config.App
		err error
	)

	setEnv := func(key, value string) {
		prev, had := os.LookupEnv(key)
		Expect(os.Setenv(key, value)).To(Succeed())
		DeferCleanup(func() {
			if had {
				os.Setenv(key, prev)
			} else {
				os.Unsetenv(key)
			}
		})
	}

	BeforeEach(func() {
		setEnv("ETH_NODE_URL", "http://localhost:8545")
		setEnv("DB_CONNECTION_URL", "postgres://openfund@localhost/openfund")
		setEnv("JWT_SECRET", "secret")
		setEnv("CONTRACT_ADDRESS", "0x6b2b43b3b162c2a7aea56c8422fd34a94847f2c0")
	})

	JustBeforeEach(func() {
		app, err = config.NewApp()
	})

	When("only the required variables are set", func() {
		It("should apply the defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("8080"))
			Expect(app.Scanner.ChunkSize).To(Equal(uint64(1999)))
			Expect(app.Scanner.PollInterval).To(Equal(500 * time.Millisecond))
			Expect(app.Scanner.Backoff).To(Equal(60 * time.Second))
			Expect(app.Reconciler.Interval).To(Equal(time.Second))
			Expect(app.Reconciler.Workers).To(Equal(8))
			Expect(app.Nonce.SingleUse).To(BeTrue())
			Expect(app.Session.MaxAge).To(Equal(24 * time.Hour))
			Expect(app.Session.SecureCookie).To(BeFalse())
			Expect(app.Enabled(config.ComponentScanner)).To(BeTrue())
			Expect(app.Enabled(config.ComponentPublisher)).To(BeTrue())
		})
	})

	When("overrides are provided", func() {
		BeforeEach(func() {
			setEnv("SCAN_CHUNK_SIZE", "500")
			setEnv("RECONCILE_INTERVAL", "3s")
			setEnv("COMPONENTS", "scanner, Reconciler")
		})

		It("should use them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Scanner.ChunkSize).To(Equal(uint64(500)))
			Expect(app.Reconciler.Interval).To(Equal(3 * time.Second))
			Expect(app.Enabled(config.ComponentReconciler)).To(BeTrue())
			Expect(app.Enabled(config.ComponentAPI)).To(BeFalse())
		})
	})

	When("a required variable is missing", func() {
		BeforeEach(func() {
			setEnv("CONTRACT_ADDRESS", "")
		})

		It("should return an error naming it", func() {
			Expect(err).To(MatchError(ContainSubstring("CONTRACT_ADDRESS")))
		})
	})

	When("the chunk size is zero", func() {
		BeforeEach(func() {
			setEnv("SCAN_CHUNK_SIZE", "0")
		})

		It("should reject the configuration", func() {
			Expect(err).To(MatchError(ContainSubstring("SCAN_CHUNK_SIZE")))
		})
	})
})
