package repository_mgrs

import (
	"testing"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/acl"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	w "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/workers"

	"github.com/onsi/gomega"
)

func TestRepositoryManager_reconcileDeniedRepositoryOwners(t *testing.T) {
	type fields struct {
		repositoryService services.RepositoryService
	}
	type args struct {
		deniedOwners acl.DeniedUsers
	}
	tests := []struct {
		name    string
		fields  fields
		args    args
		wantErr bool
	}{
		{
			name: "do not reconcile when denied owners list is empty",
			fields: fields{
				repositoryService: &services.RepositoryServiceMock{
					DeprovisionRepositoriesForUsersFunc: nil, // set to nil as it should not be called
				},
			},
			args: args{
				deniedOwners: acl.DeniedUsers{},
			},
			wantErr: false,
		},
		{
			name: "should receive error when deprovisioning in database returns an error",
			fields: fields{
				repositoryService: &services.RepositoryServiceMock{
					DeprovisionRepositoriesForUsersFunc: func(users []string) *errors.ServiceError {
						return &errors.ServiceError{}
					},
				},
			},
			args: args{
				deniedOwners: acl.DeniedUsers{"some user"},
			},
			wantErr: true,
		},
		{
			name: "should not receive error when deprovisioning in database succeeds",
			fields: fields{
				repositoryService: &services.RepositoryServiceMock{
					DeprovisionRepositoriesForUsersFunc: func(users []string) *errors.ServiceError {
						return nil
					},
				},
			},
			args: args{
				deniedOwners: acl.DeniedUsers{"some user"},
			},
			wantErr: false,
		},
	}

	for _, testcase := range tests {
		tt := testcase

		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			k := &RepositoryManager{
				repositoryService: tt.fields.repositoryService,
			}
			g.Expect(k.reconcileDeniedRepositoryOwners(tt.args.deniedOwners) != nil).To(gomega.Equal(tt.wantErr))
		})
	}
}

func TestRepositoryManager_setRepositoryStatusCountMetric(t *testing.T) {
	type fields struct {
		repositoryService services.RepositoryService
	}
	tests := []struct {
		name    string
		fields  fields
		wantErr bool
	}{
		{
			name: "should return an error if CountByStatus fails",
			fields: fields{
				repositoryService: &services.RepositoryServiceMock{
					CountByStatusFunc: func(status []constants.RepositoryStatus) ([]services.RepositoryStatusCount, error) {
						return nil, errors.GeneralError("failed to count repositories by status")
					},
				},
			},
			wantErr: true,
		},
		{
			name: "should successfully set repository status count metrics",
			fields: fields{
				repositoryService: &services.RepositoryServiceMock{
					CountByStatusFunc: func(status []constants.RepositoryStatus) ([]services.RepositoryStatusCount, error) {
						return []services.RepositoryStatusCount{{
							Status: constants.RepositoryRequestStatusAccepted,
							Count:  2,
						}}, nil
					},
				},
			},
			wantErr: false,
		},
	}

	for _, testcase := range tests {
		tt := testcase

		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			k := &RepositoryManager{
				repositoryService: tt.fields.repositoryService,
			}
			g.Expect(len(k.setRepositoryStatusCountMetric()) > 0).To(gomega.Equal(tt.wantErr))
		})
	}
}

func TestRepositoryManager_Reconcile(t *testing.T) {
	type fields struct {
		repositoryService       services.RepositoryService
		accessControlListConfig *acl.AccessControlListConfig
	}
	tests := []struct {
		name    string
		fields  fields
		wantErr bool
	}{
		{
			name: "should fail if counting repositories by status fails",
			fields: fields{
				repositoryService: &services.RepositoryServiceMock{
					CountByStatusFunc: func(status []constants.RepositoryStatus) ([]services.RepositoryStatusCount, error) {
						return nil, errors.GeneralError("count failed")
					},
				},
				accessControlListConfig: &acl.AccessControlListConfig{},
			},
			wantErr: true,
		},
		{
			name: "should deprovision the repositories of denied owners when the deny list is enabled",
			fields: fields{
				repositoryService: &services.RepositoryServiceMock{
					CountByStatusFunc: func(status []constants.RepositoryStatus) ([]services.RepositoryStatusCount, error) {
						return []services.RepositoryStatusCount{}, nil
					},
					DeprovisionRepositoriesForUsersFunc: func(users []string) *errors.ServiceError {
						return nil
					},
				},
				accessControlListConfig: &acl.AccessControlListConfig{
					EnableDenyList: true,
					DenyList:       acl.DeniedUsers{"denied-user"},
				},
			},
			wantErr: false,
		},
		{
			name: "should fail if deprovisioning the repositories of denied owners fails",
			fields: fields{
				repositoryService: &services.RepositoryServiceMock{
					CountByStatusFunc: func(status []constants.RepositoryStatus) ([]services.RepositoryStatusCount, error) {
						return []services.RepositoryStatusCount{}, nil
					},
					DeprovisionRepositoriesForUsersFunc: func(users []string) *errors.ServiceError {
						return errors.GeneralError("deprovision failed")
					},
				},
				accessControlListConfig: &acl.AccessControlListConfig{
					EnableDenyList: true,
					DenyList:       acl.DeniedUsers{"denied-user"},
				},
			},
			wantErr: true,
		},
	}

	for _, testcase := range tests {
		tt := testcase

		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			g.Expect(len(NewRepositoryManager(tt.fields.repositoryService, tt.fields.accessControlListConfig, w.Reconciler{}).Reconcile()) > 0).To(gomega.Equal(tt.wantErr))
		})
	}
}
