package checkpoint_test

import (
	"context"
	"errors"

	"openfund/internal/checkpoint"
	"openfund/internal/checkpoint/fake"
	"openfund/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Store", func() {
	var (
		store       *checkpoint.Store
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		store = checkpoint.NewStore(fakeStorage, "openfund-events")
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("Load", func() {
		When("no checkpoint was saved", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should start from zero", func() {
				block, err := store.Load(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(block).To(BeZero())
			})
		})

		When("a checkpoint exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, column string, value any, entity any) error {
					entity.(*checkpoint.Checkpoint).LastBlock = 4200
					return nil
				}
			})

			It("should return the stored block", func() {
				block, err := store.Load(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(block).To(Equal(uint64(4200)))

				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("name"))
				Expect(value).To(Equal("openfund-events"))
			})
		})

		When("the database is unreachable", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				_, err := store.Load(ctx)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Advance", func() {
		var (
			from, to uint64
			err      error
		)

		BeforeEach(func() {
			from, to = 1000, 2999
		})

		JustBeforeEach(func() {
			err = store.Advance(ctx, from, to)
		})

		When("the stored value matches", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(1, nil)
			})

			It("should swap it", func() {
				Expect(err).NotTo(HaveOccurred())
				_, _, values, query, args := fakeStorage.UpdateWhereArgsForCall(0)
				Expect(values).To(Equal(map[string]any{"last_block": uint64(2999)}))
				Expect(query).To(Equal("name = ? AND last_block = ?"))
				Expect(args).To(Equal([]any{"openfund-events", uint64(1000)}))
				Expect(fakeStorage.InsertIgnoreCallCount()).To(BeZero())
			})
		})

		When("another scanner moved the cursor", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, nil)
			})

			It("should return ErrConflict", func() {
				Expect(err).To(MatchError(checkpoint.ErrConflict))
			})
		})

		When("the first checkpoint is written", func() {
			BeforeEach(func() {
				from = 0
				fakeStorage.UpdateWhereReturns(0, nil)
				fakeStorage.InsertIgnoreReturns(true, nil)
			})

			It("should create the row", func() {
				Expect(err).NotTo(HaveOccurred())
				_, record := fakeStorage.InsertIgnoreArgsForCall(0)
				Expect(record).To(Equal(&checkpoint.Checkpoint{Name: "openfund-events", LastBlock: 2999}))
			})
		})

		When("another scanner created the first checkpoint", func() {
			BeforeEach(func() {
				from = 0
				fakeStorage.UpdateWhereReturns(0, nil)
				fakeStorage.InsertIgnoreReturns(false, nil)
			})

			It("should return ErrConflict", func() {
				Expect(err).To(MatchError(checkpoint.ErrConflict))
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
})
