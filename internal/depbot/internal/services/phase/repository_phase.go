package phase

import (
	"context"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/looplab/fsm"
)

type RepositoryOperation string

const (
	PrepareRepository     RepositoryOperation = "prepare"
	ActivateRepository    RepositoryOperation = "activate"
	PauseRepository       RepositoryOperation = "pause"
	ResumeRepository      RepositoryOperation = "resume"
	DeprovisionRepository RepositoryOperation = "deprovision"
	DeleteRepository      RepositoryOperation = "delete"
	FailRepository        RepositoryOperation = "fail"
)

// RepositoryFSM handles repository status changes
type RepositoryFSM struct {
	Repository *dbapi.RepositoryRequest
	fsm        *fsm.FSM
}

var repositoryEvents = []fsm.EventDesc{
	{Name: string(PrepareRepository), Src: []string{string(constants.RepositoryRequestStatusAccepted), string(constants.RepositoryRequestStatusPreparing)}, Dst: string(constants.RepositoryRequestStatusPreparing)},
	{Name: string(ActivateRepository), Src: []string{string(constants.RepositoryRequestStatusPreparing), string(constants.RepositoryRequestStatusReady)}, Dst: string(constants.RepositoryRequestStatusReady)},
	{Name: string(PauseRepository), Src: []string{string(constants.RepositoryRequestStatusReady), string(constants.RepositoryRequestStatusPaused)}, Dst: string(constants.RepositoryRequestStatusPaused)},
	{Name: string(ResumeRepository), Src: []string{string(constants.RepositoryRequestStatusPaused), string(constants.RepositoryRequestStatusReady)}, Dst: string(constants.RepositoryRequestStatusReady)},
	{Name: string(DeprovisionRepository), Src: []string{string(constants.RepositoryRequestStatusAccepted), string(constants.RepositoryRequestStatusPreparing), string(constants.RepositoryRequestStatusReady), string(constants.RepositoryRequestStatusPaused), string(constants.RepositoryRequestStatusFailed), string(constants.RepositoryRequestStatusDeprovision)}, Dst: string(constants.RepositoryRequestStatusDeprovision)},
	{Name: string(DeleteRepository), Src: []string{string(constants.RepositoryRequestStatusDeprovision), string(constants.RepositoryRequestStatusDeleting)}, Dst: string(constants.RepositoryRequestStatusDeleting)},
	{Name: string(FailRepository), Src: []string{string(constants.RepositoryRequestStatusAccepted), string(constants.RepositoryRequestStatusPreparing), string(constants.RepositoryRequestStatusReady), string(constants.RepositoryRequestStatusDeprovision), string(constants.RepositoryRequestStatusDeleting), string(constants.RepositoryRequestStatusFailed)}, Dst: string(constants.RepositoryRequestStatusFailed)},
}

func NewRepositoryFSM(repository *dbapi.RepositoryRequest) *RepositoryFSM {
	return &RepositoryFSM{
		Repository: repository,
		fsm:        fsm.NewFSM(repository.Status, repositoryEvents, nil),
	}
}

// Perform tries to perform the given operation and updates the repository status,
// first return value is true if the status was changed and
// second value is an error if operation is not permitted in repository's present status
func (r *RepositoryFSM) Perform(operation RepositoryOperation) (bool, *errors.ServiceError) {
	// make sure FSM state is current
	r.fsm.SetState(r.Repository.Status)
	if err := r.fsm.Event(context.TODO(), string(operation)); err != nil {
		switch err.(type) {
		case fsm.NoTransitionError:
			return false, nil
		default:
			return false, errors.BadRequest("Cannot perform Repository operation [%s] because %s",
				operation, err)
		}
	}

	r.Repository.Status = r.fsm.Current()
	return true, nil
}

// PerformRepositoryOperation is a utility method to change a repository's status and call optional functions to save updated status
// first return value is true if the status was changed and
// second value is an error if operation is not permitted in repository's present status
func PerformRepositoryOperation(repository *dbapi.RepositoryRequest, operation RepositoryOperation,
	updateStatus ...func(repository *dbapi.RepositoryRequest) *errors.ServiceError) (updated bool, err *errors.ServiceError) {

	if updated, err = NewRepositoryFSM(repository).Perform(operation); len(updateStatus) > 0 && err == nil && updated {
		for _, f := range updateStatus {
			err = f(repository)
			if err != nil {
				break
			}
		}
	}
	return updated, err
}
