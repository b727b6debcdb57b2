package scheduler_test

import (
	"context"
	"sync/atomic"
	"time"

	"openfund/internal/scheduler"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Manager", func() {
	var (
		manager *scheduler.Manager
		ctx     context.Context
	)

	BeforeEach(func() {
		var err error
		manager, err = scheduler.NewManager(zap.NewNop().Sugar())
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()
	})

	It("should run registered jobs repeatedly", func() {
		var runs atomic.Int32
		job := scheduler.NewFuncJob("counter", 20*time.Millisecond, func(context.Context) {
			runs.Add(1)
		})
		Expect(manager.Register(ctx, job)).To(Succeed())

		manager.Start()
		Eventually(runs.Load).Should(BeNumerically(">=", 2))
		Expect(manager.Stop()).To(Succeed())
	})

	It("should never overlap runs of the same job", func() {
		var running, overlaps atomic.Int32
		job := scheduler.NewFuncJob("slow", 5*time.Millisecond, func(context.Context) {
			if running.Add(1) > 1 {
				overlaps.Add(1)
			}
			time.Sleep(30 * time.Millisecond)
			running.Add(-1)
		})
		Expect(manager.Register(ctx, job)).To(Succeed())

		manager.Start()
		Consistently(overlaps.Load, 150*time.Millisecond).Should(BeZero())
		Expect(manager.Stop()).To(Succeed())
	})

	It("should pass the registration context to the job", func() {
		type key struct{}
		jobCtx := context.WithValue(ctx, key{}, "value")
		seen := make(chan any, 1)

		job := scheduler.NewFuncJob("ctx", time.Hour, func(c context.Context) {
			select {
			case seen <- c.Value(key{}):
			default:
			}
		})
		Expect(manager.Register(jobCtx, job)).To(Succeed())

		manager.Start()
		Eventually(seen).Should(Receive(Equal("value")))
		Expect(manager.Stop()).To(Succeed())
	})

	It("should reject invalid intervals", func() {
		job := scheduler.NewFuncJob("broken", 0, func(context.Context) {})
		Expect(manager.Register(ctx, job)).NotTo(Succeed())
	})
})
