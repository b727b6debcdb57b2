package reconciler_test

import (
	"context"
	"errors"
	"math/big"
	"time"

	"openfund/internal/ethereum"
	"openfund/internal/metrics"
	"openfund/internal/reconciler"
	"openfund/internal/reconciler/fake"
	"openfund/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("MapStatus", func() {
	DescribeTable("known statuses",
		func(status uint8, expected repository.FundingStatus) {
			got, err := reconciler.MapStatus(status)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(expected))
		},
		Entry("initial", reconciler.StatusInitialCreated, repository.FundingCreated),
		Entry("raising", reconciler.StatusRaisingPeriod, repository.FundingRaising),
		Entry("voting", reconciler.StatusVotingPeriod, repository.FundingVoting),
		Entry("failed", reconciler.StatusFundingFailed, repository.FundingFailed),
		Entry("completed", reconciler.StatusFundingCompleted, repository.FundingCompleted),
	)

	It("should reject values outside the enum", func() {
		_, err := reconciler.MapStatus(5)
		Expect(err).To(MatchError(reconciler.ErrUnknownStatus))
	})
})

var _ = Describe("Reconciler", func() {
	var (
		rec       *reconciler.Reconciler
		fakeStore *fake.ProjectStore
		fakeChain *fake.ChainReader
		ctx       context.Context
		fakeErr   error
		details   ethereum.ProjectDetails
	)

	BeforeEach(func() {
		fakeStore = new(fake.ProjectStore)
		fakeChain = new(fake.ChainReader)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		details = ethereum.ProjectDetails{
			Raiser:               common.HexToAddress("0x01"),
			TokensToSell:         big.NewInt(1000),
			TokensSold:           big.NewInt(250),
			TokenPrice:           big.NewInt(20_000),
			EndFundingTime:       big.NewInt(1_700_000_000),
			FundsRaised:          big.NewInt(5_000_000),
			Status:               reconciler.StatusRaisingPeriod,
			InvestorsCount:       big.NewInt(3),
			VotersForRefundCount: big.NewInt(1),
			VoteForRefund:        big.NewInt(1_500_000),
		}
		fakeChain.ProjectDetailsReturns(details, nil)
		fakeStore.ApplyChainStateReturns(true, nil)
	})

	JustBeforeEach(func() {
		var err error
		rec, err = reconciler.New(zap.NewNop().Sugar(), fakeStore, fakeChain, metrics.New(), reconciler.Config{
			Interval: 10 * time.Millisecond,
			Backoff:  10 * time.Millisecond,
			Workers:  4,
		})
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(rec.Close)
	})

	Describe("ReconcileOnce", func() {
		When("a single project is active", func() {
			BeforeEach(func() {
				fakeStore.GetActiveProjectsReturns([]repository.Project{{ID: 42}}, nil)
			})

			It("should store the scaled chain state", func() {
				Expect(rec.ReconcileOnce(ctx)).To(Succeed())

				_, id := fakeChain.ProjectDetailsArgsForCall(0)
				Expect(id).To(Equal(int64(42)))

				Expect(fakeStore.ApplyChainStateCallCount()).To(Equal(1))
				_, storedID, state := fakeStore.ApplyChainStateArgsForCall(0)
				Expect(storedID).To(Equal(int64(42)))
				Expect(state.FundRaised.String()).To(Equal("5"))
				Expect(state.VoteForRefund.String()).To(Equal("1.5"))
				Expect(state.TokenSold.String()).To(Equal("250"))
				Expect(state.VoteForRefundCount).To(Equal(int64(1)))
				Expect(state.FundingStatus).To(Equal(repository.FundingRaising))
				Expect(state.FundClaimed).To(BeFalse())
			})
		})

		When("the contract reports an unknown status", func() {
			BeforeEach(func() {
				fakeStore.GetActiveProjectsReturns([]repository.Project{{ID: 1}}, nil)
				details.Status = 5
				fakeChain.ProjectDetailsReturns(details, nil)
			})

			It("should skip the project", func() {
				Expect(rec.ReconcileOnce(ctx)).To(Succeed())
				Expect(fakeStore.ApplyChainStateCallCount()).To(BeZero())
			})
		})

		When("one project cannot be fetched", func() {
			BeforeEach(func() {
				fakeStore.GetActiveProjectsReturns([]repository.Project{{ID: 1}, {ID: 2}, {ID: 3}}, nil)
				fakeChain.ProjectDetailsStub = func(_ context.Context, id int64) (ethereum.ProjectDetails, error) {
					if id == 2 {
						return ethereum.ProjectDetails{}, fakeErr
					}
					return details, nil
				}
			})

			It("should still reconcile the others", func() {
				Expect(rec.ReconcileOnce(ctx)).To(Succeed())
				Expect(fakeChain.ProjectDetailsCallCount()).To(Equal(3))

				applied := []int64{}
				for i := range fakeStore.ApplyChainStateCallCount() {
					_, id, _ := fakeStore.ApplyChainStateArgsForCall(i)
					applied = append(applied, id)
				}
				Expect(applied).To(ConsistOf(int64(1), int64(3)))
			})
		})

		When("the stored status is already terminal", func() {
			BeforeEach(func() {
				fakeStore.GetActiveProjectsReturns([]repository.Project{{ID: 9}}, nil)
				fakeStore.ApplyChainStateReturns(false, nil)
			})

			It("should leave the row alone without failing the pass", func() {
				Expect(rec.ReconcileOnce(ctx)).To(Succeed())
				Expect(fakeStore.ApplyChainStateCallCount()).To(Equal(1))
			})
		})

		When("the store update fails", func() {
			BeforeEach(func() {
				fakeStore.GetActiveProjectsReturns([]repository.Project{{ID: 9}}, nil)
				fakeStore.ApplyChainStateReturns(false, fakeErr)
			})

			It("should not fail the pass", func() {
				Expect(rec.ReconcileOnce(ctx)).To(Succeed())
			})
		})

		When("active projects cannot be listed", func() {
			BeforeEach(func() {
				fakeStore.GetActiveProjectsReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(rec.ReconcileOnce(ctx)).To(MatchError(fakeErr))
				Expect(fakeChain.ProjectDetailsCallCount()).To(BeZero())
			})
		})
	})

	Describe("ToChainState", func() {
		It("should treat missing values as zero", func() {
			state, err := reconciler.ToChainState(ethereum.ProjectDetails{
				Status:       reconciler.StatusFundingCompleted,
				FundsClaimed: true,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(state.FundRaised.IsZero()).To(BeTrue())
			Expect(state.TokenSold.IsZero()).To(BeTrue())
			Expect(state.VoteForRefundCount).To(BeZero())
			Expect(state.FundingStatus).To(Equal(repository.FundingCompleted))
			Expect(state.FundClaimed).To(BeTrue())
		})
	})

	Describe("Run", func() {
		It("should reconcile repeatedly until cancelled", func() {
			runCtx, cancel := context.WithCancel(ctx)
			defer cancel()
			fakeStore.GetActiveProjectsReturns(nil, nil)

			done := make(chan struct{})
			go func() {
				defer GinkgoRecover()
				rec.Run(runCtx)
				close(done)
			}()

			Eventually(fakeStore.GetActiveProjectsCallCount).Should(BeNumerically(">=", 2))
			cancel()
			Eventually(done).Should(BeClosed())
		})
	})
})
