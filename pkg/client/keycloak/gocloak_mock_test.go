package keycloak

import (
	"context"

	"github.com/Nerzal/gocloak/v11"
)

// GoCloakMock mocks the subset of gocloak.GoCloak exercised by the tests in
// this package. Methods without a Func field panic via the embedded interface.
type GoCloakMock struct {
	gocloak.GoCloak
	GetTokenFunc   func(ctx context.Context, realm string, options gocloak.TokenOptions) (*gocloak.JWT, error)
	GetClientsFunc func(ctx context.Context, accessToken string, realm string, params gocloak.GetClientsParams) ([]*gocloak.Client, error)
}

func (m *GoCloakMock) GetToken(ctx context.Context, realm string, options gocloak.TokenOptions) (*gocloak.JWT, error) {
	return m.GetTokenFunc(ctx, realm, options)
}

func (m *GoCloakMock) GetClients(ctx context.Context, accessToken string, realm string, params gocloak.GetClientsParams) ([]*gocloak.Client, error) {
	return m.GetClientsFunc(ctx, accessToken, realm, params)
}
