package locks_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/mandelsoft/cwm/pkg/testutils"

	"github.com/mandelsoft/cwm/pkg/locks"
)

var _ = Describe("mutex", func() {
	var lock *locks.Mutex
	var ctx context.Context

	BeforeEach(func() {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		DeferCleanup(cancel)
		lock = &locks.Mutex{}
	})

	It("locks and unlocks", func() {
		MustBeSuccessful(lock.Lock(ctx))
		Expect(lock.IsLocked()).To(BeTrue())
		Expect(lock.TryLock()).To(BeFalse())

		lock.Unlock()
		Expect(lock.IsLocked()).To(BeFalse())
		Expect(lock.TryLock()).To(BeTrue())
		lock.Unlock()
		Expect(func() { lock.Unlock() }).To(Panic())
	})

	It("serves waiters in order", func() {
		MustBeSuccessful(lock.Lock(ctx))

		order := make(chan string, 2)
		for i, n := range []string{"A", "B"} {
			go func(n string) {
				defer GinkgoRecover()
				MustBeSuccessful(lock.Lock(ctx))
				order <- n
				lock.Unlock()
			}(n)
			Eventually(lock.Waiting).Should(Equal(i + 1))
		}

		lock.Unlock()
		Eventually(order).Should(Receive(Equal("A")))
		Eventually(order).Should(Receive(Equal("B")))
		Eventually(lock.IsLocked).Should(BeFalse())
	})

	It("cancels waiting", func() {
		MustBeSuccessful(lock.Lock(ctx))

		cctx, cancel := context.WithCancel(ctx)
		result := make(chan error, 1)
		go func() {
			result <- lock.Lock(cctx)
		}()
		Eventually(lock.HasWaiting).Should(BeTrue())
		cancel()
		Eventually(result).Should(Receive(MatchError(context.Canceled)))
		Expect(lock.HasWaiting()).To(BeFalse())

		lock.Unlock()
		Expect(lock.IsLocked()).To(BeFalse())
	})
})
