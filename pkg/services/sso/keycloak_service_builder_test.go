package sso

import (
	"testing"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/client/keycloak"
	"github.com/onsi/gomega"
)

var (
	config = &keycloak.KeycloakConfig{
		EnableAuthenticationOnDashboard: true,
		BaseURL:                         "base_url",
		SelectSSOProvider:               keycloak.REDHAT_SSO,
	}
	realmConfig = &keycloak.KeycloakRealmConfig{
		ClientID:     "clientId",
		ClientSecret: "clientSecret",
	}
)

func Test_keycloakServiceBuilder_Build_ForDFM(t *testing.T) {
	type fields struct {
		config      *keycloak.KeycloakConfig
		realmConfig *keycloak.KeycloakRealmConfig
	}
	client := keycloak.NewClient(config, realmConfig)
	tests := []struct {
		name   string
		fields fields
		want   KeycloakService
	}{
		{
			name: "should return an instance of the keycloak service",
			fields: fields{
				config:      config,
				realmConfig: realmConfig,
			},
			want: &keycloakServiceProxy{
				getToken: client.GetToken,
				service: &masService{
					kcClient: client,
				},
			},
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			service := NewKeycloakServiceBuilder().
				ForDFM().
				WithConfiguration(tt.fields.config).
				WithRealmConfig(tt.fields.realmConfig).
				Build()
			g.Expect(service).ToNot(gomega.BeNil())
			g.Expect(service.GetConfig()).To(gomega.Equal(tt.want.GetConfig()))
			g.Expect(service.GetRealmConfig()).To(gomega.Equal(tt.want.GetRealmConfig()))
		})
	}
}

func Test_dashboardKeycloackServiceBuilder_Build_ForDashboard(t *testing.T) {
	type fields struct {
		config      *keycloak.KeycloakConfig
		realmConfig *keycloak.KeycloakRealmConfig
	}

	client := keycloak.NewClient(config, realmConfig)

	tests := []struct {
		name   string
		fields fields
		want   DashboardKeycloakService
	}{
		{
			name: "should return an instance of the dashboard keycloak service",
			fields: fields{
				config:      config,
				realmConfig: realmConfig,
			},
			want: &keycloakServiceProxy{
				getToken: client.GetToken,
				service: &masService{
					kcClient: client,
				},
			},
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			service := NewKeycloakServiceBuilder().
				ForDashboard().
				WithConfiguration(tt.fields.config).
				WithRealmConfig(tt.fields.realmConfig).
				Build()

			g.Expect(service).ToNot(gomega.BeNil())
			g.Expect(service.GetConfig()).To(gomega.Equal(tt.want.GetConfig()))
			g.Expect(service.GetRealmConfig()).To(gomega.Equal(tt.want.GetRealmConfig()))
		})
	}
}
