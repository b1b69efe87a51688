package sso

import (
	"context"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/client/keycloak"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
)

type CompleteServiceAccountRequest struct {
	Owner          string
	OwnerAccountId string
	OrgId          string
	ClientId       string
	Name           string
	Description    string
}

//go:generate moq -out keycloakservice_moq.go . KeycloakService
type KeycloakService interface {
	RegisterClientInSSO(dashboardId string, dashboardOathCallbackURI string) (string, *errors.ServiceError)
	DeRegisterClientInSSO(clientId string) *errors.ServiceError
	GetConfig() *keycloak.KeycloakConfig
	GetRealmConfig() *keycloak.KeycloakRealmConfig
	IsDashboardClientExist(clientId string) *errors.ServiceError
	CreateServiceAccount(serviceAccountRequest *api.ServiceAccountRequest, ctx context.Context) (*api.ServiceAccount, *errors.ServiceError)
	DeleteServiceAccount(ctx context.Context, clientId string) *errors.ServiceError
	ResetServiceAccountCredentials(ctx context.Context, clientId string) (*api.ServiceAccount, *errors.ServiceError)
	ListServiceAcc(ctx context.Context, first int, max int) ([]api.ServiceAccount, *errors.ServiceError)
	RegisterAgentServiceAccount(agentClusterId string) (*api.ServiceAccount, *errors.ServiceError)
	DeRegisterAgentServiceAccount(agentClusterId string) *errors.ServiceError
	GetServiceAccountById(ctx context.Context, id string) (*api.ServiceAccount, *errors.ServiceError)
	GetServiceAccountByClientId(ctx context.Context, clientId string) (*api.ServiceAccount, *errors.ServiceError)
	GetDashboardClientSecret(clientId string) (string, *errors.ServiceError)
	CreateServiceAccountInternal(request CompleteServiceAccountRequest) (*api.ServiceAccount, *errors.ServiceError)
	DeleteServiceAccountInternal(clientId string) *errors.ServiceError
}

// DepbotKeycloakService is the SSO surface the depbot control plane consumes.
type DepbotKeycloakService KeycloakService

// DashboardKeycloakService is the SSO surface used when managing dashboard
// cluster identity provider clients.
type DashboardKeycloakService KeycloakService

//go:generate moq -out keycloakserviceinternal_moq.go . keycloakServiceInternal
type keycloakServiceInternal interface {
	RegisterClientInSSO(accessToken string, dashboardId string, dashboardOathCallbackURI string) (string, *errors.ServiceError)
	DeRegisterClientInSSO(accessToken string, clientId string) *errors.ServiceError
	GetConfig() *keycloak.KeycloakConfig
	GetRealmConfig() *keycloak.KeycloakRealmConfig
	IsDashboardClientExist(accessToken string, clientId string) *errors.ServiceError
	CreateServiceAccount(accessToken string, serviceAccountRequest *api.ServiceAccountRequest, ctx context.Context) (*api.ServiceAccount, *errors.ServiceError)
	DeleteServiceAccount(accessToken string, ctx context.Context, clientId string) *errors.ServiceError
	ResetServiceAccountCredentials(accessToken string, ctx context.Context, clientId string) (*api.ServiceAccount, *errors.ServiceError)
	ListServiceAcc(accessToken string, ctx context.Context, first int, max int) ([]api.ServiceAccount, *errors.ServiceError)
	RegisterAgentServiceAccount(accessToken string, agentClusterId string) (*api.ServiceAccount, *errors.ServiceError)
	DeRegisterAgentServiceAccount(accessToken string, agentClusterId string) *errors.ServiceError
	GetServiceAccountById(accessToken string, ctx context.Context, id string) (*api.ServiceAccount, *errors.ServiceError)
	GetServiceAccountByClientId(accessToken string, ctx context.Context, clientId string) (*api.ServiceAccount, *errors.ServiceError)
	GetDashboardClientSecret(accessToken string, clientId string) (string, *errors.ServiceError)
	CreateServiceAccountInternal(accessToken string, request CompleteServiceAccountRequest) (*api.ServiceAccount, *errors.ServiceError)
	DeleteServiceAccountInternal(accessToken string, clientId string) *errors.ServiceError
}

func NewKeycloakServiceWithClient(client keycloak.KcClient) KeycloakService {
	return &keycloakServiceProxy{
		getToken: client.GetToken,
		service: &masService{
			kcClient: client,
		},
	}
}
