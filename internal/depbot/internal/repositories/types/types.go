package types

import "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/client/ocm"

type RepositoryInstanceType string

const (
	DEVELOPER RepositoryInstanceType = "developer"
	STANDARD  RepositoryInstanceType = "standard"
)

func (t RepositoryInstanceType) String() string {
	return string(t)
}

func (t RepositoryInstanceType) GetQuotaType() ocm.DubQuotaType {
	if t == STANDARD {
		return ocm.StandardQuota
	}
	return ocm.DeveloperQuota
}
