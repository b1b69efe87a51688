package repository_mgrs

import (
	"context"
	"testing"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/clients/forge"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
)

func TestDeletingRepositoryManager(t *testing.T) {
	type fields struct {
		repositoryService services.RepositoryService
		updateRunService  services.UpdateRunService
		quotaService      services.QuotaService
		forgeClient       forge.Client
	}
	type args struct {
		repository *dbapi.RepositoryRequest
	}
	tests := []struct {
		name    string
		fields  fields
		args    args
		wantErr bool
	}{
		{
			name: "successful reconcile",
			args: args{
				repository: &dbapi.RepositoryRequest{
					Status: constants.RepositoryRequestStatusDeleting.String(),
				},
			},
			fields: fields{
				repositoryService: &services.RepositoryServiceMock{
					DeleteFunc: func(repositoryRequest *dbapi.RepositoryRequest) *errors.ServiceError {
						return nil
					},
				},
				updateRunService: &services.UpdateRunServiceMock{
					ListByRepositoryFunc: func(repositoryID string) (dbapi.UpdateRunList, *errors.ServiceError) {
						return dbapi.UpdateRunList{}, nil
					},
					DeleteByRepositoryFunc: func(repositoryID string) *errors.ServiceError {
						return nil
					},
				},
				quotaService: &services.QuotaServiceMock{
					DeleteQuotaFunc: func(subscriptionId string) *errors.ServiceError {
						return nil
					},
				},
			},
		},
		{
			name: "successful reconcile from a deprovision request",
			args: args{
				repository: &dbapi.RepositoryRequest{
					Meta: api.Meta{
						ID: "repository-id",
					},
					Status: constants.RepositoryRequestStatusDeprovision.String(),
				},
			},
			fields: fields{
				repositoryService: &services.RepositoryServiceMock{
					UpdateStatusFunc: func(id string, status constants.RepositoryStatus) (bool, *errors.ServiceError) {
						return true, nil
					},
					DeleteFunc: func(repositoryRequest *dbapi.RepositoryRequest) *errors.ServiceError {
						return nil
					},
				},
				updateRunService: &services.UpdateRunServiceMock{
					ListByRepositoryFunc: func(repositoryID string) (dbapi.UpdateRunList, *errors.ServiceError) {
						return dbapi.UpdateRunList{}, nil
					},
					DeleteByRepositoryFunc: func(repositoryID string) *errors.ServiceError {
						return nil
					},
				},
				quotaService: &services.QuotaServiceMock{
					DeleteQuotaFunc: func(subscriptionId string) *errors.ServiceError {
						return nil
					},
				},
			},
		},
		{
			name: "open pull requests are closed on the forge before the repository goes",
			args: args{
				repository: &dbapi.RepositoryRequest{
					Status: constants.RepositoryRequestStatusDeleting.String(),
				},
			},
			fields: fields{
				repositoryService: &services.RepositoryServiceMock{
					DeleteFunc: func(repositoryRequest *dbapi.RepositoryRequest) *errors.ServiceError {
						return nil
					},
				},
				updateRunService: &services.UpdateRunServiceMock{
					ListByRepositoryFunc: func(repositoryID string) (dbapi.UpdateRunList, *errors.ServiceError) {
						return dbapi.UpdateRunList{
							{Status: constants.UpdateRunStatusOpen.String(), PRNumber: 7},
							{Status: constants.UpdateRunStatusMerged.String(), PRNumber: 5},
						}, nil
					},
					DeleteByRepositoryFunc: func(repositoryID string) *errors.ServiceError {
						return nil
					},
				},
				quotaService: &services.QuotaServiceMock{
					DeleteQuotaFunc: func(subscriptionId string) *errors.ServiceError {
						return nil
					},
				},
				forgeClient: &forge.ClientMock{
					ClosePullRequestFunc: func(ctx context.Context, slug string, number int) error {
						return nil
					},
				},
			},
		},
		{
			name: "pull requests already gone from the forge are skipped",
			args: args{
				repository: &dbapi.RepositoryRequest{
					Status: constants.RepositoryRequestStatusDeleting.String(),
				},
			},
			fields: fields{
				repositoryService: &services.RepositoryServiceMock{
					DeleteFunc: func(repositoryRequest *dbapi.RepositoryRequest) *errors.ServiceError {
						return nil
					},
				},
				updateRunService: &services.UpdateRunServiceMock{
					ListByRepositoryFunc: func(repositoryID string) (dbapi.UpdateRunList, *errors.ServiceError) {
						return dbapi.UpdateRunList{
							{Status: constants.UpdateRunStatusOpen.String(), PRNumber: 7},
						}, nil
					},
					DeleteByRepositoryFunc: func(repositoryID string) *errors.ServiceError {
						return nil
					},
				},
				quotaService: &services.QuotaServiceMock{
					DeleteQuotaFunc: func(subscriptionId string) *errors.ServiceError {
						return nil
					},
				},
				forgeClient: &forge.ClientMock{
					ClosePullRequestFunc: func(ctx context.Context, slug string, number int) error {
						return &forge.APIError{StatusCode: 404, Message: "not found"}
					},
				},
			},
		},
		{
			name: "failed reconcile when releasing the quota fails",
			args: args{
				repository: &dbapi.RepositoryRequest{
					Status: constants.RepositoryRequestStatusDeleting.String(),
				},
			},
			fields: fields{
				updateRunService: &services.UpdateRunServiceMock{
					ListByRepositoryFunc: func(repositoryID string) (dbapi.UpdateRunList, *errors.ServiceError) {
						return dbapi.UpdateRunList{}, nil
					},
				},
				quotaService: &services.QuotaServiceMock{
					DeleteQuotaFunc: func(subscriptionId string) *errors.ServiceError {
						return errors.GeneralError("test")
					},
				},
			},
			wantErr: true,
		},
		{
			name: "failed reconcile",
			args: args{
				repository: &dbapi.RepositoryRequest{
					Status: constants.RepositoryRequestStatusDeleting.String(),
				},
			},
			fields: fields{
				repositoryService: &services.RepositoryServiceMock{
					DeleteFunc: func(repositoryRequest *dbapi.RepositoryRequest) *errors.ServiceError {
						return errors.GeneralError("test")
					},
				},
				updateRunService: &services.UpdateRunServiceMock{
					ListByRepositoryFunc: func(repositoryID string) (dbapi.UpdateRunList, *errors.ServiceError) {
						return dbapi.UpdateRunList{}, nil
					},
					DeleteByRepositoryFunc: func(repositoryID string) *errors.ServiceError {
						return nil
					},
				},
				quotaService: &services.QuotaServiceMock{
					DeleteQuotaFunc: func(subscriptionId string) *errors.ServiceError {
						return nil
					},
				},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := &DeletingRepositoryManager{
				repositoryService: tt.fields.repositoryService,
				updateRunService:  tt.fields.updateRunService,
				quotaServiceFactory: &services.QuotaServiceFactoryMock{
					GetQuotaServiceFunc: func(quoataType api.QuotaType) (services.QuotaService, *errors.ServiceError) {
						return tt.fields.quotaService, nil
					},
				},
				forgeClientFactory: &forge.ClientFactoryMock{
					GetClientFunc: func(forgeType string, orgID string) (forge.Client, error) {
						return tt.fields.forgeClient, nil
					},
				},
			}
			if err := k.reconcileDeletingRepository(tt.args.repository); (err != nil) != tt.wantErr {
				t.Errorf("reconcileDeletingRepository() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
