package quota

import (
	"fmt"
	"testing"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/repositories/types"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/client/ocm"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/onsi/gomega"
	v1 "github.com/openshift-online/ocm-sdk-go/accountsmgmt/v1"
)

func Test_AMSCheckIfQuotaIsDefinedForInstanceType(t *testing.T) {
	type fields struct {
		amsClient ocm.AMSClient
	}
	type args struct {
		instanceType types.RepositoryInstanceType
	}
	tests := []struct {
		name    string
		fields  fields
		args    args
		want    bool
		wantErr bool
	}{
		{
			name: "org with standard quota cost is allowed standard repositories",
			fields: fields{
				amsClient: &ocm.ClientMock{
					GetOrganisationIdFromExternalIdFunc: func(externalId string) (string, error) {
						return fmt.Sprintf("fake-org-id-%s", externalId), nil
					},
					GetQuotaCostsForProductFunc: func(organizationID, resourceName, product string) ([]*v1.QuotaCost, error) {
						if product != string(ocm.DUBProduct) {
							return []*v1.QuotaCost{}, nil
						}
						qc, err := v1.NewQuotaCost().Allowed(1).Consumed(0).Build()
						if err != nil {
							return nil, err
						}
						return []*v1.QuotaCost{qc}, nil
					},
				},
			},
			args: args{
				instanceType: types.STANDARD,
			},
			want:    true,
			wantErr: false,
		},
		{
			name: "org without assigned quota is not allowed standard repositories",
			fields: fields{
				amsClient: &ocm.ClientMock{
					GetOrganisationIdFromExternalIdFunc: func(externalId string) (string, error) {
						return fmt.Sprintf("fake-org-id-%s", externalId), nil
					},
					GetQuotaCostsForProductFunc: func(organizationID, resourceName, product string) ([]*v1.QuotaCost, error) {
						return []*v1.QuotaCost{}, nil
					},
				},
			},
			args: args{
				instanceType: types.STANDARD,
			},
			want:    false,
			wantErr: false,
		},
		{
			name: "quota cost with no allowed amount does not grant quota",
			fields: fields{
				amsClient: &ocm.ClientMock{
					GetOrganisationIdFromExternalIdFunc: func(externalId string) (string, error) {
						return fmt.Sprintf("fake-org-id-%s", externalId), nil
					},
					GetQuotaCostsForProductFunc: func(organizationID, resourceName, product string) ([]*v1.QuotaCost, error) {
						qc, err := v1.NewQuotaCost().Allowed(0).Consumed(0).Build()
						if err != nil {
							return nil, err
						}
						return []*v1.QuotaCost{qc}, nil
					},
				},
			},
			args: args{
				instanceType: types.STANDARD,
			},
			want:    false,
			wantErr: false,
		},
		{
			name: "failed to resolve organisation id",
			fields: fields{
				amsClient: &ocm.ClientMock{
					GetOrganisationIdFromExternalIdFunc: func(externalId string) (string, error) {
						return "", fmt.Errorf("organisation not found")
					},
				},
			},
			args: args{
				instanceType: types.STANDARD,
			},
			want:    false,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gomega.RegisterTestingT(t)
			factory := NewDefaultQuotaServiceFactory(tt.fields.amsClient, nil, nil)
			quotaService, _ := factory.GetQuotaService(api.AMSQuotaType)
			repository := &dbapi.RepositoryRequest{
				Owner:          "testUser",
				OrganisationId: "external-org-id",
			}
			allowed, err := quotaService.CheckIfQuotaIsDefinedForInstanceType(repository, tt.args.instanceType)
			gomega.Expect(err != nil).To(gomega.Equal(tt.wantErr))
			gomega.Expect(allowed).To(gomega.Equal(tt.want))
		})
	}
}

func Test_AMSReserveQuota(t *testing.T) {
	type fields struct {
		amsClient ocm.AMSClient
	}
	tests := []struct {
		name    string
		fields  fields
		want    string
		wantErr *errors.ServiceError
	}{
		{
			name: "owner allowed to reserve quota",
			fields: fields{
				amsClient: &ocm.ClientMock{
					ClusterAuthorizationFunc: func(cb *v1.ClusterAuthorizationRequest) (*v1.ClusterAuthorizationResponse, error) {
						ca, err := v1.NewClusterAuthorizationResponse().Allowed(true).Subscription(v1.NewSubscription().ID("1234")).Build()
						if err != nil {
							return nil, err
						}
						return ca, nil
					},
				},
			},
			want:    "1234",
			wantErr: nil,
		},
		{
			name: "owner not allowed to reserve quota",
			fields: fields{
				amsClient: &ocm.ClientMock{
					ClusterAuthorizationFunc: func(cb *v1.ClusterAuthorizationRequest) (*v1.ClusterAuthorizationResponse, error) {
						ca, err := v1.NewClusterAuthorizationResponse().Allowed(false).Build()
						if err != nil {
							return nil, err
						}
						return ca, nil
					},
				},
			},
			want:    "",
			wantErr: errors.InsufficientQuotaError("Insufficient Quota"),
		},
		{
			name: "failed to reserve quota",
			fields: fields{
				amsClient: &ocm.ClientMock{
					ClusterAuthorizationFunc: func(cb *v1.ClusterAuthorizationRequest) (*v1.ClusterAuthorizationResponse, error) {
						return nil, fmt.Errorf("some errors")
					},
				},
			},
			want:    "",
			wantErr: errors.NewWithCause(errors.ErrorGeneral, fmt.Errorf("some errors"), "Error reserving quota"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gomega.RegisterTestingT(t)
			factory := NewDefaultQuotaServiceFactory(tt.fields.amsClient, nil, nil)
			quotaService, _ := factory.GetQuotaService(api.AMSQuotaType)
			repository := &dbapi.RepositoryRequest{
				Owner:          "testUser",
				OrganisationId: "external-org-id",
			}
			repository.ID = "repo-id"
			subscriptionId, err := quotaService.ReserveQuota(repository, types.STANDARD)
			gomega.Expect(subscriptionId).To(gomega.Equal(tt.want))
			if tt.wantErr != nil {
				gomega.Expect(err).ToNot(gomega.BeNil())
				gomega.Expect(err.Code).To(gomega.Equal(tt.wantErr.Code))
			} else {
				gomega.Expect(err).To(gomega.BeNil())
			}
		})
	}
}

func Test_AMSDeleteQuota(t *testing.T) {
	g := gomega.NewWithT(t)

	deleted := []string{}
	factory := NewDefaultQuotaServiceFactory(&ocm.ClientMock{
		DeleteSubscriptionFunc: func(id string) (int, error) {
			deleted = append(deleted, id)
			return 204, nil
		},
	}, nil, nil)
	quotaService, _ := factory.GetQuotaService(api.AMSQuotaType)

	g.Expect(quotaService.DeleteQuota("")).To(gomega.BeNil())
	g.Expect(quotaService.DeleteQuota("sub-1")).To(gomega.BeNil())
	g.Expect(deleted).To(gomega.Equal([]string{"sub-1"}))
}
