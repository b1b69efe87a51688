package workers

import (
	"sync"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/metrics"
)

//go:generate moq -out worker_moq.go . Worker
// Worker defines the interface the background reconciliation workers implement
type Worker interface {
	GetID() string
	GetWorkerType() string
	Start()
	Stop()
	Reconcile() []error
	GetStopChan() *chan struct{}
	GetSyncGroup() *sync.WaitGroup
	IsRunning() bool
	SetIsRunning(val bool)
}

// BaseWorker carries the state shared by every worker implementation.
type BaseWorker struct {
	Id           string
	WorkerType   string
	Reconciler   Reconciler
	isRunning    bool
	imStop       chan struct{}
	syncTeardown sync.WaitGroup
}

// GetID ...
func (b *BaseWorker) GetID() string {
	return b.Id
}

// GetWorkerType ...
func (b *BaseWorker) GetWorkerType() string {
	return b.WorkerType
}

// GetStopChan ...
func (b *BaseWorker) GetStopChan() *chan struct{} {
	return &b.imStop
}

// GetSyncGroup ...
func (b *BaseWorker) GetSyncGroup() *sync.WaitGroup {
	return &b.syncTeardown
}

// IsRunning ...
func (b *BaseWorker) IsRunning() bool {
	return b.isRunning
}

// SetIsRunning ...
func (b *BaseWorker) SetIsRunning(val bool) {
	b.isRunning = val
}

// StartWorker starts the given worker's reconciliation loop.
func (b *BaseWorker) StartWorker(w Worker) {
	metrics.SetLeaderWorkerMetric(b.WorkerType, true)
	b.Reconciler.Start(w)
}

// StopWorker stops the given worker's reconciliation loop.
func (b *BaseWorker) StopWorker(w Worker) {
	defer metrics.SetLeaderWorkerMetric(b.WorkerType, false)
	b.Reconciler.Stop(w)
}
