package sso

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/client/keycloak"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/client/redhatsso"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/shared/utils/arrays"
)

var _ KeycloakServiceBuilderSelector = &keycloakServiceBuilderSelector{}
var _ KeycloakServiceBuilder = &keycloakServiceBuilder{}
var _ DFMKeycloakServiceBuilderConfigurator = &keycloakBuilderConfigurator{}
var _ DashboardKeycloakServiceBuilderConfigurator = &dashboardBuilderConfigurator{}

type KeycloakServiceBuilderSelector interface {
	ForDashboard() DashboardKeycloakServiceBuilderConfigurator
	ForDFM() DFMKeycloakServiceBuilderConfigurator
}

type DFMKeycloakServiceBuilderConfigurator interface {
	WithConfiguration(config *keycloak.KeycloakConfig) KeycloakServiceBuilder
}

type DashboardKeycloakServiceBuilderConfigurator interface {
	WithConfiguration(config *keycloak.KeycloakConfig) DashboardKeycloakServiceBuilder
}

type KeycloakServiceBuilder interface {
	WithRealmConfig(realmConfig *keycloak.KeycloakRealmConfig) KeycloakServiceBuilder
	Build() KeycloakService
}

type DashboardKeycloakServiceBuilder interface {
	WithRealmConfig(realmConfig *keycloak.KeycloakRealmConfig) DashboardKeycloakServiceBuilder
	Build() DashboardKeycloakService
}

func NewKeycloakServiceBuilder() KeycloakServiceBuilderSelector {
	return &keycloakServiceBuilderSelector{}
}

type keycloakServiceBuilderSelector struct {
}

func (s *keycloakServiceBuilderSelector) ForDashboard() DashboardKeycloakServiceBuilderConfigurator {
	return &dashboardBuilderConfigurator{}
}

func (s *keycloakServiceBuilderSelector) ForDFM() DFMKeycloakServiceBuilderConfigurator {
	return &keycloakBuilderConfigurator{}
}

type keycloakBuilderConfigurator struct{}
type dashboardBuilderConfigurator keycloakBuilderConfigurator

func (k *keycloakBuilderConfigurator) WithConfiguration(config *keycloak.KeycloakConfig) KeycloakServiceBuilder {
	return &keycloakServiceBuilder{
		config: config,
	}
}

func (o *dashboardBuilderConfigurator) WithConfiguration(config *keycloak.KeycloakConfig) DashboardKeycloakServiceBuilder {
	return &dashboardKeycloackServiceBuilder{
		config: config,
	}
}

type keycloakServiceBuilder struct {
	config      *keycloak.KeycloakConfig
	realmConfig *keycloak.KeycloakRealmConfig
}

type dashboardKeycloackServiceBuilder keycloakServiceBuilder

// Build returns an instance of KeycloakService ready to be used.
// If a custom realm is configured (WithRealmConfig called), then always Keycloak provider is used
// irrespective of the `builder.config.SelectSSOProvider` value
func (builder *keycloakServiceBuilder) Build() KeycloakService {
	return build(builder.config.SelectSSOProvider, builder.config, builder.realmConfig)
}

func (builder *keycloakServiceBuilder) WithRealmConfig(realmConfig *keycloak.KeycloakRealmConfig) KeycloakServiceBuilder {
	builder.realmConfig = realmConfig
	return builder
}

// Build returns an instance of KeycloakService ready to be used.
// If a custom realm is configured (WithRealmConfig called), then always Keycloak provider is used
// irrespective of the `builder.config.SelectSSOProvider` value
func (builder *dashboardKeycloackServiceBuilder) Build() DashboardKeycloakService {
	return build(builder.config.SelectSSOProvider, builder.config, builder.realmConfig).(DashboardKeycloakService)
}

func (builder *dashboardKeycloackServiceBuilder) WithRealmConfig(realmConfig *keycloak.KeycloakRealmConfig) DashboardKeycloakServiceBuilder {
	builder.realmConfig = realmConfig
	return builder
}

func build(providerName string, keycloakConfig *keycloak.KeycloakConfig, realmConfig *keycloak.KeycloakRealmConfig) KeycloakService {
	notNilPredicate := func(x *keycloak.KeycloakRealmConfig) bool {
		return x != nil
	}

	// Temporary: if a realm configuration different from the one into the config is specified
	// we always instantiate MAS_SSO irrespective of the selected provider
	if providerName == keycloak.MAS_SSO ||
		realmConfig != nil {
		_, realmConfig := arrays.FindFirst([]*keycloak.KeycloakRealmConfig{realmConfig, keycloakConfig.DepbotRealm}, notNilPredicate)

		client := keycloak.NewClient(keycloakConfig, realmConfig)
		return &keycloakServiceProxy{
			getToken: client.GetToken,
			service: &masService{
				kcClient: client,
			},
		}

	} else {
		_, realmConfig := arrays.FindFirst([]*keycloak.KeycloakRealmConfig{realmConfig, keycloakConfig.RedhatSSORealm}, notNilPredicate)
		client := redhatsso.NewSSOClient(keycloakConfig, realmConfig)
		return &keycloakServiceProxy{
			getToken: client.GetToken,
			service: &redhatssoService{
				client: client,
			},
		}
	}
}
