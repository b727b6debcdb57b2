package repository_test

import (
	"context"
	"errors"

	"openfund/internal/db"
	"openfund/internal/repository"
	"openfund/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("Repository", func() {
	var (
		repo        *repository.Repository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		fakeStorage.TransactionStub = func(_ context.Context, fn func(tx db.Store) error) error {
			return fn(fakeStorage)
		}
	})

	Describe("MigrateTables", func() {
		It("should migrate the domain tables and the extras", func() {
			type extra struct{}
			Expect(repo.MigrateTables(&extra{})).To(Succeed())

			Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
			tables := fakeStorage.MigrateTableArgsForCall(0)
			Expect(tables).To(HaveLen(5))
			Expect(tables[0]).To(BeAssignableToTypeOf(&repository.Project{}))
			Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Transaction{}))
			Expect(tables[2]).To(BeAssignableToTypeOf(&repository.Investor{}))
			Expect(tables[3]).To(BeAssignableToTypeOf(&repository.Raiser{}))
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(repo.MigrateTables()).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("SaveLedgerEntry", func() {
		var (
			entry    repository.Transaction
			inserted bool
			err      error
		)

		BeforeEach(func() {
			entry = repository.Transaction{
				ProjectID:       7,
				InvestorAddress: "0xbeef",
				Amount:          decimal.NewNullDecimal(decimal.RequireFromString("2")),
				TransactionHash: "0xabc",
				Type:            repository.TransactionInvestment,
			}
		})

		JustBeforeEach(func() {
			inserted, err = repo.SaveLedgerEntry(ctx, entry)
		})

		When("the entry is new", func() {
			BeforeEach(func() {
				fakeStorage.InsertIgnoreReturnsOnCall(0, true, nil)
				fakeStorage.InsertIgnoreReturnsOnCall(1, true, nil)
			})

			It("should insert the investor and the entry in one transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(inserted).To(BeTrue())
				Expect(fakeStorage.TransactionCallCount()).To(Equal(1))
				Expect(fakeStorage.InsertIgnoreCallCount()).To(Equal(2))

				_, investor := fakeStorage.InsertIgnoreArgsForCall(0)
				Expect(investor).To(Equal(&repository.Investor{WalletAddress: "0xbeef"}))

				_, row := fakeStorage.InsertIgnoreArgsForCall(1)
				Expect(row).To(BeAssignableToTypeOf(&repository.Transaction{}))
				Expect(row.(*repository.Transaction).TransactionHash).To(Equal("0xabc"))
			})
		})

		When("the entry already exists", func() {
			BeforeEach(func() {
				fakeStorage.InsertIgnoreReturnsOnCall(0, false, nil)
				fakeStorage.InsertIgnoreReturnsOnCall(1, false, nil)
			})

			It("should succeed without reporting an insert", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(inserted).To(BeFalse())
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertIgnoreReturnsOnCall(0, true, nil)
				fakeStorage.InsertIgnoreReturnsOnCall(1, false, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err.Error()).To(ContainSubstring("0xabc/investment"))
				Expect(inserted).To(BeFalse())
			})
		})
	})

	Describe("GetActiveProjects", func() {
		BeforeEach(func() {
			fakeStorage.FindWhereStub = func(_ context.Context, entity any, _ string, _ ...any) error {
				projects := entity.(*[]repository.Project)
				*projects = append(*projects, repository.Project{ID: 7}, repository.Project{ID: 8})
				return nil
			}
		})

		It("should query accepted projects in an active status", func() {
			projects, err := repo.GetActiveProjects(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(projects).To(HaveLen(2))

			_, _, query, args := fakeStorage.FindWhereArgsForCall(0)
			Expect(query).To(Equal("listing_status = ? AND funding_status IN ?"))
			Expect(args).To(Equal([]any{repository.ListingAccepted, repository.ActiveFundingStatuses}))
		})
	})

	Describe("ApplyChainState", func() {
		var (
			state   repository.ChainState
			applied bool
			err     error
		)

		BeforeEach(func() {
			state = repository.ChainState{
				TokenSold:     decimal.NewFromInt(100),
				FundRaised:    decimal.RequireFromString("5"),
				FundingStatus: repository.FundingVoting,
			}
		})

		JustBeforeEach(func() {
			applied, err = repo.ApplyChainState(ctx, 7, state)
		})

		When("the project row is updated", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(1, nil)
			})

			It("should guard the update with the statuses that may precede the new one", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(applied).To(BeTrue())

				_, model, values, query, args := fakeStorage.UpdateWhereArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Project{}))
				Expect(values).To(HaveKeyWithValue("funding_status", repository.FundingVoting))
				Expect(values).To(HaveKeyWithValue("fund_raised", decimal.RequireFromString("5")))
				Expect(query).To(Equal("id = ? AND funding_status IN ?"))
				Expect(args).To(Equal([]any{int64(7), []repository.FundingStatus{
					repository.FundingCreated,
					repository.FundingRaising,
					repository.FundingVoting,
				}}))
			})
		})

		When("the stored status is already further along", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, nil)
			})

			It("should report that nothing was applied", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(applied).To(BeFalse())
			})
		})

		When("the update fails", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("PrecedingStatuses", func() {
		It("should never include another terminal status", func() {
			Expect(repository.PrecedingStatuses(repository.FundingCompleted)).To(ConsistOf(
				repository.FundingCreated,
				repository.FundingRaising,
				repository.FundingVoting,
				repository.FundingCompleted,
			))
			Expect(repository.PrecedingStatuses(repository.FundingFailed)).NotTo(ContainElement(repository.FundingCompleted))
		})

		It("should not allow moving back from a later status", func() {
			Expect(repository.PrecedingStatuses(repository.FundingRaising)).To(ConsistOf(
				repository.FundingCreated,
				repository.FundingRaising,
			))
		})

		It("should return nothing for statuses outside the chain lifecycle", func() {
			Expect(repository.PrecedingStatuses(repository.FundingNotListed)).To(BeEmpty())
		})
	})

	Describe("MarkProjectCreated", func() {
		When("the project is no longer awaiting listing", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, nil)
			})

			It("should return ErrProjectNotFound", func() {
				Expect(repo.MarkProjectCreated(ctx, 3)).To(MatchError(repository.ErrProjectNotFound))
			})
		})
	})

	Describe("CreateRaiser", func() {
		When("the account is already registered", func() {
			BeforeEach(func() {
				fakeStorage.InsertIgnoreReturns(false, nil)
			})

			It("should return ErrAccountExists", func() {
				err := repo.CreateRaiser(ctx, repository.Raiser{ID: "id", Email: "a@b.c"})
				Expect(err).To(MatchError(repository.ErrAccountExists))
			})
		})
	})

	Describe("GetRaiserByEmail", func() {
		When("no raiser matches", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrRaiserNotFound", func() {
				_, err := repo.GetRaiserByEmail(ctx, "nobody@openfund.io")
				Expect(err).To(MatchError(repository.ErrRaiserNotFound))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should wrap the error", func() {
				_, err := repo.GetRaiserByEmail(ctx, "a@b.c")
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
