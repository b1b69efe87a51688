package constants

// UpdateRunStatus type
type UpdateRunStatus string

// UpdateRunOperation type
type UpdateRunOperation string

const (
	// UpdateRunStatusPending - update run recorded but its pull request has not been opened yet
	UpdateRunStatusPending UpdateRunStatus = "pending"
	// UpdateRunStatusOpening - pull request creation against the forge is in progress
	UpdateRunStatusOpening UpdateRunStatus = "opening"
	// UpdateRunStatusOpen - pull request is open and waiting for review or automerge
	UpdateRunStatusOpen UpdateRunStatus = "open"
	// UpdateRunStatusMerged - pull request was merged
	UpdateRunStatusMerged UpdateRunStatus = "merged"
	// UpdateRunStatusClosed - pull request was closed without merging
	UpdateRunStatusClosed UpdateRunStatus = "closed"
	// UpdateRunStatusFailed - update run failed
	UpdateRunStatusFailed UpdateRunStatus = "failed"

	// UpdateRunOperationOpen - pull request open operations
	UpdateRunOperationOpen UpdateRunOperation = "open"
	// UpdateRunOperationMerge - pull request merge operations
	UpdateRunOperationMerge UpdateRunOperation = "merge"
	// UpdateRunOperationClose - pull request close operations
	UpdateRunOperationClose UpdateRunOperation = "close"

	// UpdateRunMaxAttempts the number of times opening a pull request is retried before the run is failed
	UpdateRunMaxAttempts = 5
)

func (u UpdateRunOperation) String() string {
	return string(u)
}

func (u UpdateRunStatus) String() string {
	return string(u)
}

// IsFinal reports whether the status is terminal. Final runs are never picked
// up by the update run worker again.
func (u UpdateRunStatus) IsFinal() bool {
	return u == UpdateRunStatusMerged || u == UpdateRunStatusClosed || u == UpdateRunStatusFailed
}
