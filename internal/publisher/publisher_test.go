package publisher_test

import (
	"context"
	"errors"
	"math/big"
	"time"

	"openfund/internal/ethereum"
	"openfund/internal/metrics"
	"openfund/internal/publisher"
	"openfund/internal/publisher/fake"
	"openfund/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ = Describe("Publisher", func() {
	var (
		pub         *publisher.Publisher
		fakeStore   *fake.ProjectStore
		fakeCreator *fake.ProjectCreator
		fakeChain   *fake.ChainReader
		ctx         context.Context
		fakeErr     error
		project     repository.Project
	)

	BeforeEach(func() {
		fakeStore = new(fake.ProjectStore)
		fakeCreator = new(fake.ProjectCreator)
		fakeChain = new(fake.ChainReader)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		project = repository.Project{
			ID:                11,
			FundingAddress:    "0x00000000000000000000000000000000000000a1",
			TokenAddress:      "0x00000000000000000000000000000000000000b2",
			TokenPrice:        decimal.RequireFromString("0.25"),
			TokenToSell:       decimal.NewFromInt(1_000_000),
			Decimal:           18,
			InvestmentEndTime: 1_800_000_000,
			FundingStatus:     repository.FundingNotListed,
			ListingStatus:     repository.ListingAccepted,
		}

		fakeCreator.CreateProjectReturns(common.HexToHash("0xabc"), nil)
		fakeChain.ProjectDetailsReturns(ethereum.ProjectDetails{}, nil)
		pub = publisher.New(zap.NewNop().Sugar(), fakeStore, fakeCreator, fakeChain, metrics.New(), 20*time.Second)
	})

	It("should describe itself as a scheduled job", func() {
		Expect(pub.Name()).To(Equal("project_publisher"))
		Expect(pub.Interval()).To(Equal(20 * time.Second))
	})

	Describe("PublishOnce", func() {
		var (
			published int
			err       error
		)

		JustBeforeEach(func() {
			published, err = pub.PublishOnce(ctx)
		})

		When("a project awaits listing", func() {
			BeforeEach(func() {
				fakeStore.GetProjectsAwaitingListingReturns([]repository.Project{project}, nil)
			})

			It("should create it on chain and mark it created", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(published).To(Equal(1))

				Expect(fakeCreator.CreateProjectCallCount()).To(Equal(1))
				_, params := fakeCreator.CreateProjectArgsForCall(0)
				Expect(params.ProjectID).To(Equal(big.NewInt(11)))
				Expect(params.Raiser).To(Equal(common.HexToAddress(project.FundingAddress)))
				Expect(params.TokenAddress).To(Equal(common.HexToAddress(project.TokenAddress)))
				Expect(params.TokensToSell.String()).To(Equal("1000000"))
				Expect(params.TokenPrice.String()).To(Equal("250000"))
				Expect(params.EndFundingTime.Int64()).To(Equal(int64(1_800_000_000)))
				Expect(params.Decimals).To(Equal(uint8(18)))

				_, id := fakeStore.MarkProjectCreatedArgsForCall(0)
				Expect(id).To(Equal(int64(11)))
			})
		})

		When("an earlier pass created the project but failed to mark it", func() {
			BeforeEach(func() {
				fakeStore.GetProjectsAwaitingListingReturns([]repository.Project{project}, nil)
				fakeStore.MarkProjectCreatedReturnsOnCall(0, fakeErr)
				fakeChain.ProjectDetailsReturnsOnCall(0, ethereum.ProjectDetails{}, nil)
				fakeChain.ProjectDetailsReturnsOnCall(1, ethereum.ProjectDetails{
					Raiser: common.HexToAddress(project.FundingAddress),
				}, nil)
			})

			It("should mark it created on the next pass without sending again", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(published).To(BeZero())
				Expect(fakeCreator.CreateProjectCallCount()).To(Equal(1))

				published, err = pub.PublishOnce(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeCreator.CreateProjectCallCount()).To(Equal(1))
				Expect(fakeStore.MarkProjectCreatedCallCount()).To(Equal(2))
				_, id := fakeStore.MarkProjectCreatedArgsForCall(1)
				Expect(id).To(Equal(int64(11)))
			})
		})

		When("the chain cannot be queried", func() {
			BeforeEach(func() {
				fakeStore.GetProjectsAwaitingListingReturns([]repository.Project{project}, nil)
				fakeChain.ProjectDetailsReturns(ethereum.ProjectDetails{}, fakeErr)
			})

			It("should not send a transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(published).To(BeZero())
				Expect(fakeCreator.CreateProjectCallCount()).To(BeZero())
				Expect(fakeStore.MarkProjectCreatedCallCount()).To(BeZero())
			})
		})

		When("the transaction fails", func() {
			BeforeEach(func() {
				second := project
				second.ID = 12
				fakeStore.GetProjectsAwaitingListingReturns([]repository.Project{project, second}, nil)
				fakeCreator.CreateProjectReturnsOnCall(0, common.Hash{}, fakeErr)
				fakeCreator.CreateProjectReturnsOnCall(1, common.HexToHash("0xdef"), nil)
			})

			It("should leave the project for the next pass and continue", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(published).To(Equal(1))
				Expect(fakeStore.MarkProjectCreatedCallCount()).To(Equal(1))
				_, id := fakeStore.MarkProjectCreatedArgsForCall(0)
				Expect(id).To(Equal(int64(12)))
			})
		})

		When("the project has a malformed address", func() {
			BeforeEach(func() {
				project.TokenAddress = "not-an-address"
				fakeStore.GetProjectsAwaitingListingReturns([]repository.Project{project}, nil)
			})

			It("should not send a transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(published).To(BeZero())
				Expect(fakeCreator.CreateProjectCallCount()).To(BeZero())
			})
		})

		When("projects cannot be listed", func() {
			BeforeEach(func() {
				fakeStore.GetProjectsAwaitingListingReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ToCreateParams", func() {
		It("should reject a zero price", func() {
			project.TokenPrice = decimal.Zero
			_, err := publisher.ToCreateParams(project)
			Expect(err).To(MatchError(publisher.ErrInvalidProject))
		})
	})

	It("should satisfy the chain ports with the ethereum services", func() {
		var _ publisher.ProjectCreator = (*ethereum.ProjectCreator)(nil)
		var _ publisher.ChainReader = (*ethereum.EthService)(nil)
	})
})
