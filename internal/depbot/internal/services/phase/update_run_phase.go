package phase

import (
	"context"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/looplab/fsm"
)

type UpdateRunOperation string

const (
	OpenRun   UpdateRunOperation = "open"
	OpenedRun UpdateRunOperation = "opened"
	RetryRun  UpdateRunOperation = "retry"
	MergeRun  UpdateRunOperation = "merge"
	CloseRun  UpdateRunOperation = "close"
	FailRun   UpdateRunOperation = "fail"
)

// UpdateRunFSM handles update run status changes
type UpdateRunFSM struct {
	UpdateRun *dbapi.UpdateRun
	fsm       *fsm.FSM
}

var updateRunEvents = []fsm.EventDesc{
	{Name: string(OpenRun), Src: []string{string(constants.UpdateRunStatusPending), string(constants.UpdateRunStatusOpening)}, Dst: string(constants.UpdateRunStatusOpening)},
	{Name: string(OpenedRun), Src: []string{string(constants.UpdateRunStatusOpening), string(constants.UpdateRunStatusOpen)}, Dst: string(constants.UpdateRunStatusOpen)},
	{Name: string(RetryRun), Src: []string{string(constants.UpdateRunStatusOpening), string(constants.UpdateRunStatusPending)}, Dst: string(constants.UpdateRunStatusPending)},
	{Name: string(MergeRun), Src: []string{string(constants.UpdateRunStatusOpen), string(constants.UpdateRunStatusMerged)}, Dst: string(constants.UpdateRunStatusMerged)},
	{Name: string(CloseRun), Src: []string{string(constants.UpdateRunStatusOpen), string(constants.UpdateRunStatusClosed)}, Dst: string(constants.UpdateRunStatusClosed)},
	{Name: string(FailRun), Src: []string{string(constants.UpdateRunStatusPending), string(constants.UpdateRunStatusOpening), string(constants.UpdateRunStatusOpen), string(constants.UpdateRunStatusFailed)}, Dst: string(constants.UpdateRunStatusFailed)},
}

func NewUpdateRunFSM(updateRun *dbapi.UpdateRun) *UpdateRunFSM {
	return &UpdateRunFSM{
		UpdateRun: updateRun,
		fsm:       fsm.NewFSM(updateRun.Status, updateRunEvents, nil),
	}
}

// Perform tries to perform the given operation and updates the update run status,
// first return value is true if the status was changed and
// second value is an error if operation is not permitted in the run's present status
func (r *UpdateRunFSM) Perform(operation UpdateRunOperation) (bool, *errors.ServiceError) {
	// make sure FSM state is current
	r.fsm.SetState(r.UpdateRun.Status)
	if err := r.fsm.Event(context.TODO(), string(operation)); err != nil {
		switch err.(type) {
		case fsm.NoTransitionError:
			return false, nil
		default:
			return false, errors.BadRequest("Cannot perform UpdateRun operation [%s] because %s",
				operation, err)
		}
	}

	r.UpdateRun.Status = r.fsm.Current()
	return true, nil
}

// PerformUpdateRunOperation is a utility method to change an update run's status and call optional functions to save updated status
// first return value is true if the status was changed and
// second value is an error if operation is not permitted in the run's present status
func PerformUpdateRunOperation(updateRun *dbapi.UpdateRun, operation UpdateRunOperation,
	updateStatus ...func(updateRun *dbapi.UpdateRun) *errors.ServiceError) (updated bool, err *errors.ServiceError) {

	if updated, err = NewUpdateRunFSM(updateRun).Perform(operation); len(updateStatus) > 0 && err == nil && updated {
		for _, f := range updateStatus {
			err = f(updateRun)
			if err != nil {
				break
			}
		}
	}
	return updated, err
}
