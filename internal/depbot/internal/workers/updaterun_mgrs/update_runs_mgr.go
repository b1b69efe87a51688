package updaterun_mgrs

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/metrics"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/workers"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var updateRunMetricsStatuses = []constants.UpdateRunStatus{
	constants.UpdateRunStatusPending,
	constants.UpdateRunStatusOpening,
	constants.UpdateRunStatusOpen,
	constants.UpdateRunStatusMerged,
	constants.UpdateRunStatusClosed,
	constants.UpdateRunStatusFailed,
}

// UpdateRunManager represents an update run manager that periodically reconciles update runs
type UpdateRunManager struct {
	workers.BaseWorker
	updateRunService services.UpdateRunService
}

// NewUpdateRunManager creates a new update run manager to reconcile update runs
func NewUpdateRunManager(updateRunService services.UpdateRunService, reconciler workers.Reconciler) *UpdateRunManager {
	return &UpdateRunManager{
		BaseWorker: workers.BaseWorker{
			Id:         uuid.New().String(),
			WorkerType: "general_update_run_worker",
			Reconciler: reconciler,
		},
		updateRunService: updateRunService,
	}
}

// Start initializes the update run manager to reconcile update runs
func (k *UpdateRunManager) Start() {
	k.StartWorker(k)
}

// Stop causes the process for reconciling update runs to stop.
func (k *UpdateRunManager) Stop() {
	k.StopWorker(k)
}

func (k *UpdateRunManager) Reconcile() []error {
	glog.Infoln("reconciling update runs")
	var encounteredErrors []error

	statusErrors := k.setUpdateRunStatusCountMetric()
	if len(statusErrors) > 0 {
		encounteredErrors = append(encounteredErrors, statusErrors...)
	}

	return encounteredErrors
}

func (k *UpdateRunManager) setUpdateRunStatusCountMetric() []error {
	counters, err := k.updateRunService.CountByStatus(updateRunMetricsStatuses)
	if err != nil {
		return []error{errors.Wrap(err, "failed to count update runs by status")}
	}

	for _, c := range counters {
		metrics.UpdateRunsStatusCountMetric(c.Status, c.Count)
	}

	return nil
}
