package ledger_test

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"time"

	"openfund/internal/ethereum"
	"openfund/internal/ledger"
	"openfund/internal/ledger/fake"
	"openfund/internal/metrics"
	"openfund/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

// memLedger keeps one row per (hash, type) like the unique index does.
type memLedger struct {
	mu   sync.Mutex
	rows map[string]repository.Transaction
}

func (m *memLedger) SaveLedgerEntry(_ context.Context, entry repository.Transaction) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := entry.TransactionHash + "/" + string(entry.Type)
	if _, ok := m.rows[key]; ok {
		return false, nil
	}
	m.rows[key] = entry
	return true, nil
}

var _ = Describe("Writer", func() {
	var (
		writer   *ledger.Writer
		fakeRepo *fake.Repository
		ctx      context.Context
		event    ethereum.ContractEvent
		fakeErr  error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		writer = ledger.NewWriter(zap.NewNop().Sugar(), fakeRepo, metrics.New())
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		event = ethereum.ContractEvent{
			Name:            ethereum.EventInvestmentMade,
			ProjectID:       big.NewInt(7),
			Account:         common.HexToAddress("0x000000000000000000000000000000000000BEEF"),
			Amount:          big.NewInt(2_000_000),
			TokensToReceive: big.NewInt(100),
			TxHash:          common.HexToHash("0xabc"),
			BlockNumber:     500,
			LogIndex:        1,
			BlockTime:       time.Unix(1_700_000_000, 0).UTC(),
		}
	})

	Describe("Write", func() {
		var err error

		JustBeforeEach(func() {
			err = writer.Write(ctx, event)
		})

		When("an investment is new", func() {
			BeforeEach(func() {
				fakeRepo.SaveLedgerEntryReturns(true, nil)
			})

			It("should store a scaled, lowercased row", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.SaveLedgerEntryCallCount()).To(Equal(1))

				_, entry := fakeRepo.SaveLedgerEntryArgsForCall(0)
				Expect(entry.ProjectID).To(Equal(int64(7)))
				Expect(entry.InvestorAddress).To(Equal("0x000000000000000000000000000000000000beef"))
				Expect(entry.Type).To(Equal(repository.TransactionInvestment))
				Expect(entry.Amount.Valid).To(BeTrue())
				Expect(entry.Amount.Decimal.String()).To(Equal("2"))
				Expect(entry.TokenReceived.Decimal.String()).To(Equal("100"))
				Expect(entry.TransactionTime).To(Equal(event.BlockTime))
				Expect(entry.TransactionHash).To(Equal(common.HexToHash("0xabc").Hex()))
			})
		})

		When("the event was already recorded", func() {
			BeforeEach(func() {
				fakeRepo.SaveLedgerEntryReturns(false, nil)
			})

			It("should treat the duplicate as success", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("a vote is written", func() {
			BeforeEach(func() {
				event.Name = ethereum.EventVoteCast
				event.Amount = nil
				event.TokensToReceive = nil
				fakeRepo.SaveLedgerEntryReturns(true, nil)
			})

			It("should leave the amounts null", func() {
				Expect(err).NotTo(HaveOccurred())
				_, entry := fakeRepo.SaveLedgerEntryArgsForCall(0)
				Expect(entry.Type).To(Equal(repository.TransactionVote))
				Expect(entry.Amount.Valid).To(BeFalse())
				Expect(entry.TokenReceived.Valid).To(BeFalse())
			})
		})

		When("a refund is written", func() {
			BeforeEach(func() {
				event.Name = ethereum.EventRefunded
				event.Amount = big.NewInt(1_250_000)
				event.TokensToReceive = nil
				fakeRepo.SaveLedgerEntryReturns(true, nil)
			})

			It("should store the scaled amount", func() {
				Expect(err).NotTo(HaveOccurred())
				_, entry := fakeRepo.SaveLedgerEntryArgsForCall(0)
				Expect(entry.Type).To(Equal(repository.TransactionRefund))
				Expect(entry.Amount.Decimal.String()).To(Equal("1.25"))
				Expect(entry.TokenReceived.Valid).To(BeFalse())
			})
		})

		When("the block time is missing", func() {
			BeforeEach(func() {
				event.BlockTime = time.Time{}
			})

			It("should reject the event without writing", func() {
				Expect(err).To(MatchError(ledger.ErrInvalidEvent))
				Expect(fakeRepo.SaveLedgerEntryCallCount()).To(BeZero())
			})
		})

		When("the database fails", func() {
			BeforeEach(func() {
				fakeRepo.SaveLedgerEntryReturns(false, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	When("the same event is written twice", func() {
		It("should leave exactly one row", func() {
			mem := &memLedger{rows: map[string]repository.Transaction{}}
			w := ledger.NewWriter(zap.NewNop().Sugar(), mem, metrics.New())

			Expect(w.Write(ctx, event)).To(Succeed())
			Expect(w.Write(ctx, event)).To(Succeed())
			Expect(mem.rows).To(HaveLen(1))

			vote := event
			vote.Name = ethereum.EventVoteCast
			Expect(w.Write(ctx, vote)).To(Succeed())
			Expect(mem.rows).To(HaveLen(2))
		})
	})
})
