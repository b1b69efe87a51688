package constants

import (
	"time"
)

// RepositoryStatus type
type RepositoryStatus string

// RepositoryOperation type
type RepositoryOperation string

const (
	// RepositoryRequestStatusAccepted - repository request status when accepted by the repository worker
	RepositoryRequestStatusAccepted RepositoryStatus = "accepted"
	// RepositoryRequestStatusPreparing - repository request status of a preparing repository
	RepositoryRequestStatusPreparing RepositoryStatus = "preparing"
	// RepositoryRequestStatusReady - repository is onboarded and eligible for update scans
	RepositoryRequestStatusReady RepositoryStatus = "ready"
	// RepositoryRequestStatusPaused - update scans are suspended for the repository
	RepositoryRequestStatusPaused RepositoryStatus = "paused"
	// RepositoryRequestStatusFailed - repository request failed
	RepositoryRequestStatusFailed RepositoryStatus = "failed"
	// RepositoryRequestStatusDeprovision - repository request status when to be deleted by the worker
	RepositoryRequestStatusDeprovision RepositoryStatus = "deprovision"
	// RepositoryRequestStatusDeleting - external resources are being deleted for the repository request
	RepositoryRequestStatusDeleting RepositoryStatus = "deleting"

	// RepositoryOperationCreate - repository create operations
	RepositoryOperationCreate RepositoryOperation = "create"
	// RepositoryOperationUpdate = repository update operations
	RepositoryOperationUpdate RepositoryOperation = "update"
	// RepositoryOperationDelete = repository delete operations
	RepositoryOperationDelete RepositoryOperation = "delete"
	// RepositoryOperationDeprovision = repository deprovision operations
	RepositoryOperationDeprovision RepositoryOperation = "deprovision"

	// RepositoryMaxDurationWithProvisioningErrs the maximum duration a repository request
	// might be in preparing state while receiving 5XX errors from the forge
	RepositoryMaxDurationWithProvisioningErrs = 5 * time.Minute
)

// ordinals - Used to decide if a status comes after or before a given state
var ordinals = map[string]int{
	RepositoryRequestStatusAccepted.String():    0,
	RepositoryRequestStatusPreparing.String():   10,
	RepositoryRequestStatusReady.String():       20,
	RepositoryRequestStatusPaused.String():      30,
	RepositoryRequestStatusDeprovision.String(): 40,
	RepositoryRequestStatusDeleting.String():    50,
	RepositoryRequestStatusFailed.String():      500,
}

func (r RepositoryOperation) String() string {
	return string(r)
}

// RepositoryStatus Methods
func (r RepositoryStatus) String() string {
	return string(r)
}

// CompareTo - Compare this status with the given status returning an int. The result will be 0 if r==r1, -1 if r < r1, and +1 if r > r1
func (r RepositoryStatus) CompareTo(r1 RepositoryStatus) int {
	ordinalR := ordinals[r.String()]
	ordinalR1 := ordinals[r1.String()]

	switch {
	case ordinalR == ordinalR1:
		return 0
	case ordinalR > ordinalR1:
		return 1
	default:
		return -1
	}
}
