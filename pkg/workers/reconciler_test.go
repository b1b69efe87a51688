package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services/signalbus"
	"github.com/onsi/gomega"
)

func TestReconciler_Wakeup(t *testing.T) {
	g := gomega.NewWithT(t)

	bus := signalbus.NewSignalBus()
	r := Reconciler{
		SignalBus:        bus,
		ReconcilerConfig: NewReconcilerConfig(),
	}
	var stopchan chan struct{}
	var wg sync.WaitGroup

	reconcileChan := make(chan time.Time, 1000)
	worker := &WorkerMock{
		GetStopChanFunc: func() *chan struct{} {
			return &stopchan
		},
		GetSyncGroupFunc: func() *sync.WaitGroup {
			return &wg
		},
		SetIsRunningFunc: func(val bool) {
		},
		GetIDFunc: func() string {
			return "test"
		},
		GetWorkerTypeFunc: func() string {
			return "test"
		},
		ReconcileFunc: func() []error {
			reconcileChan <- time.Now()
			return nil
		},
	}

	waitForReconcile := func(d time.Duration) (timeout bool) {
		if d == 0 {
			select {
			case <-reconcileChan:
			default:
				timeout = true
			}
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), d)
			defer cancel()
			select {
			case <-reconcileChan:
			case <-ctx.Done():
				timeout = true
			}
		}
		return
	}

	r.Start(worker)
	defer r.Stop(worker)

	// initial reconcile should happen right away... this should not timeout
	g.Expect(waitForReconcile(1 * time.Second)).Should(gomega.Equal(false))

	// Next reconcile will take a while since it runs every 30 seconds.. lets timeout after 3 seconds of waiting..
	g.Expect(waitForReconcile(3 * time.Second)).Should(gomega.Equal(true))

	// Now lets try to wake it up before those 30 seconds have passed...
	r.Wakeup(false)
	g.Expect(waitForReconcile(1 * time.Second)).Should(gomega.Equal(false))

	r.Wakeup(true)
	// We can use a 0 timeout here because Wakeup will wait for the reconcile to occur first.
	g.Expect(waitForReconcile(0)).Should(gomega.Equal(false))

	// A signal bus notification addressed to the worker type also triggers a reconcile.
	bus.Notify("test")
	g.Expect(waitForReconcile(1 * time.Second)).Should(gomega.Equal(false))
}
