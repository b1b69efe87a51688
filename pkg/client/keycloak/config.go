package keycloak

import (
	"os"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/shared"

	"github.com/golang/glog"
	"github.com/spf13/pflag"
)

const (
	MAS_SSO    = "mas_sso"
	REDHAT_SSO = "redhat_sso"
)

type KeycloakConfig struct {
	EnableAuthenticationOnDashboard           bool                 `json:"enable_auth"`
	BaseURL                                   string               `json:"base_url"`
	SsoBaseUrl                                string               `json:"sso_base_url"`
	Debug                                     bool                 `json:"debug"`
	InsecureSkipVerify                        bool                 `json:"insecure-skip-verify"`
	UserNameClaim                             string               `json:"user_name_claim"`
	FallBackUserNameClaim                     string               `json:"fall_back_user_name_claim"`
	TLSTrustedCertificatesKey                 string               `json:"tls_trusted_certificates_key"`
	TLSTrustedCertificatesValue               string               `json:"tls_trusted_certificates_value"`
	TLSTrustedCertificatesFile                string               `json:"tls_trusted_certificates_file"`
	DepbotRealm                               *KeycloakRealmConfig `json:"depbot_realm"`
	DashboardIDPRealm                         *KeycloakRealmConfig `json:"dashboard_idp_realm"`
	RedhatSSORealm                            *KeycloakRealmConfig `json:"redhat_sso_config"`
	MaxAllowedServiceAccounts                 int                  `json:"max_allowed_service_accounts"`
	MaxLimitForGetClients                     int                  `json:"max_limit_for_get_clients"`
	SelectSSOProvider                         string               `json:"select_sso_provider"`
	ServiceAccountLimitCheckSkippedOrgIdList  []string             `json:"-"`
	ServiceAccountLimitCheckSkippedOrgIdsFile string               `json:"service_account_limit_check_skipped_org_ids_file"`
	KeycloakClientExpire                      bool                 `json:"keycloak_client_expire"`
}

type KeycloakRealmConfig struct {
	BaseURL          string `json:"base_url"`
	Realm            string `json:"realm"`
	ClientID         string `json:"client-id"`
	ClientIDFile     string `json:"client-id_file"`
	ClientSecret     string `json:"client-secret"`
	ClientSecretFile string `json:"client-secret_file"`
	GrantType        string `json:"grant_type"`
	TokenEndpointURI string `json:"token_endpoint_uri"`
	JwksEndpointURI  string `json:"jwks_endpoint_uri"`
	ValidIssuerURI   string `json:"valid_issuer_uri"`
	APIEndpointURI   string `json:"api_endpoint_uri"`
	Scope            string `json:"scope"`
}

func (c *KeycloakRealmConfig) setDefaultURIs(baseURL string) {
	c.BaseURL = baseURL
	c.ValidIssuerURI = baseURL + "/auth/realms/" + c.Realm
	c.JwksEndpointURI = baseURL + "/auth/realms/" + c.Realm + "/protocol/openid-connect/certs"
	c.TokenEndpointURI = baseURL + "/auth/realms/" + c.Realm + "/protocol/openid-connect/token"
}

func NewKeycloakConfig() *KeycloakConfig {
	kc := &KeycloakConfig{
		EnableAuthenticationOnDashboard: true,
		SelectSSOProvider:               MAS_SSO,
		DepbotRealm: &KeycloakRealmConfig{
			ClientIDFile:     "secrets/keycloak-service.clientId",
			ClientSecretFile: "secrets/keycloak-service.clientSecret",
			GrantType:        "client_credentials",
		},
		DashboardIDPRealm: &KeycloakRealmConfig{
			ClientIDFile:     "secrets/dashboard-idp-keycloak-service.clientId",
			ClientSecretFile: "secrets/dashboard-idp-keycloak-service.clientSecret",
			GrantType:        "client_credentials",
		},
		RedhatSSORealm: &KeycloakRealmConfig{
			ClientIDFile:     "secrets/redhatsso-service.clientId",
			ClientSecretFile: "secrets/redhatsso-service.clientSecret",
			GrantType:        "client_credentials",
			Realm:            "redhat-external",
			APIEndpointURI:   "/auth/realms/redhat-external",
			Scope:            "api.iam.service_accounts",
		},
		TLSTrustedCertificatesFile:                "secrets/keycloak-service.crt",
		Debug:                                     false,
		InsecureSkipVerify:                        false,
		UserNameClaim:                             "clientId",
		FallBackUserNameClaim:                     "preferred_username",
		TLSTrustedCertificatesKey:                 "keycloak.crt",
		MaxAllowedServiceAccounts:                 50,
		MaxLimitForGetClients:                     100,
		ServiceAccountLimitCheckSkippedOrgIdsFile: "config/service-account-limits-check-skipped-org-ids.yaml",
		KeycloakClientExpire:                      false,
	}
	return kc
}

func (kc *KeycloakConfig) SSOProviderRealm() *KeycloakRealmConfig {
	if kc.SelectSSOProvider == REDHAT_SSO {
		return kc.RedhatSSORealm
	}
	return kc.DepbotRealm
}

func (kc *KeycloakConfig) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&kc.EnableAuthenticationOnDashboard, "mas-sso-enable-auth", kc.EnableAuthenticationOnDashboard, "Enable authentication on the dependency dashboards via the sso, enabled by default")
	fs.StringVar(&kc.DepbotRealm.ClientIDFile, "mas-sso-client-id-file", kc.DepbotRealm.ClientIDFile, "File containing Keycloak privileged account client-id that has access to the Depbot service accounts realm")
	fs.StringVar(&kc.DepbotRealm.ClientSecretFile, "mas-sso-client-secret-file", kc.DepbotRealm.ClientSecretFile, "File containing Keycloak privileged account client-secret that has access to the Depbot service accounts realm")
	fs.StringVar(&kc.BaseURL, "mas-sso-base-url", kc.BaseURL, "The base URL of the mas-sso, integration by default")
	fs.StringVar(&kc.DepbotRealm.Realm, "mas-sso-realm", kc.DepbotRealm.Realm, "Realm for Depbot service accounts in the mas-sso")
	fs.StringVar(&kc.TLSTrustedCertificatesFile, "mas-sso-cert-file", kc.TLSTrustedCertificatesFile, "File containing tls cert for the mas-sso. Useful when mas-sso uses a self-signed certificate. If the provided file does not exist, is the empty string or the provided file content is empty then no custom MAS SSO certificate is used")
	fs.BoolVar(&kc.Debug, "mas-sso-debug", kc.Debug, "Debug flag for Keycloak API")
	fs.BoolVar(&kc.InsecureSkipVerify, "mas-sso-insecure", kc.InsecureSkipVerify, "Disable tls verification with mas-sso")
	fs.StringVar(&kc.DashboardIDPRealm.ClientIDFile, "dashboard-idp-mas-sso-client-id-file", kc.DashboardIDPRealm.ClientIDFile, "File containing Keycloak privileged account client-id that has access to the dashboard IDP realm")
	fs.StringVar(&kc.DashboardIDPRealm.ClientSecretFile, "dashboard-idp-mas-sso-client-secret-file", kc.DashboardIDPRealm.ClientSecretFile, "File containing Keycloak privileged account client-secret that has access to the dashboard IDP realm")
	fs.StringVar(&kc.DashboardIDPRealm.Realm, "dashboard-idp-mas-sso-realm", kc.DashboardIDPRealm.Realm, "Realm for dashboard IDP clients in the mas-sso")
	fs.StringVar(&kc.RedhatSSORealm.ClientIDFile, "redhat-sso-client-id-file", kc.RedhatSSORealm.ClientIDFile, "File containing privileged account client-id that has access to the service accounts api in redhat-sso")
	fs.StringVar(&kc.RedhatSSORealm.ClientSecretFile, "redhat-sso-client-secret-file", kc.RedhatSSORealm.ClientSecretFile, "File containing privileged account client-secret that has access to the service accounts api in redhat-sso")
	fs.StringVar(&kc.SsoBaseUrl, "redhat-sso-base-url", kc.SsoBaseUrl, "The base URL of the redhat-sso, integration by default")
	fs.StringVar(&kc.RedhatSSORealm.Realm, "redhat-sso-realm", kc.RedhatSSORealm.Realm, "Realm for service accounts in the redhat-sso")
	fs.IntVar(&kc.MaxAllowedServiceAccounts, "max-allowed-service-accounts", kc.MaxAllowedServiceAccounts, "Max allowed number of service accounts per organisation")
	fs.IntVar(&kc.MaxLimitForGetClients, "max-limit-for-sso-get-clients", kc.MaxLimitForGetClients, "Max limits for SSO get clients")
	fs.StringVar(&kc.UserNameClaim, "user-name-claim", kc.UserNameClaim, "Human readable username token claim")
	fs.StringVar(&kc.FallBackUserNameClaim, "fall-back-user-name-claim", kc.FallBackUserNameClaim, "Fall back username token claim")
	fs.StringVar(&kc.SelectSSOProvider, "sso-provider-type", kc.SelectSSOProvider, "The SSO provider the service accounts are managed with. Valid options are 'mas_sso' and 'redhat_sso'")
	fs.StringVar(&kc.ServiceAccountLimitCheckSkippedOrgIdsFile, "service-account-limits-check-skipped-org-id-list-file", kc.ServiceAccountLimitCheckSkippedOrgIdsFile, "File containing the list of org IDs for which the max allowed service accounts check is skipped")
	fs.BoolVar(&kc.KeycloakClientExpire, "keycloak-client-expire", kc.KeycloakClientExpire, "Whether or not to tag Keycloak created Client to expire in 2 hours (useful for cleaning up after integrations tests)")
}

func (kc *KeycloakConfig) ReadFiles() error {
	err := shared.ReadFileValueString(kc.DepbotRealm.ClientIDFile, &kc.DepbotRealm.ClientID)
	if err != nil {
		return err
	}
	err = shared.ReadFileValueString(kc.DepbotRealm.ClientSecretFile, &kc.DepbotRealm.ClientSecret)
	if err != nil {
		return err
	}
	err = shared.ReadFileValueString(kc.DashboardIDPRealm.ClientIDFile, &kc.DashboardIDPRealm.ClientID)
	if err != nil {
		return err
	}
	err = shared.ReadFileValueString(kc.DashboardIDPRealm.ClientSecretFile, &kc.DashboardIDPRealm.ClientSecret)
	if err != nil {
		return err
	}

	// The redhat-sso secrets only need to be present when it is the selected provider
	if kc.SelectSSOProvider == REDHAT_SSO {
		err = shared.ReadFileValueString(kc.RedhatSSORealm.ClientIDFile, &kc.RedhatSSORealm.ClientID)
		if err != nil {
			return err
		}
		err = shared.ReadFileValueString(kc.RedhatSSORealm.ClientSecretFile, &kc.RedhatSSORealm.ClientSecret)
		if err != nil {
			return err
		}
	}

	// We read the MAS SSO TLS certificate file. If it does not exist we
	// intentionally continue as if it was not provided
	err = shared.ReadFileValueString(kc.TLSTrustedCertificatesFile, &kc.TLSTrustedCertificatesValue)
	if err != nil {
		if os.IsNotExist(err) {
			glog.V(10).Infof("Specified MAS SSO TLS certificate file '%s' does not exist. Proceeding as if MAS SSO TLS certificate was not provided", kc.TLSTrustedCertificatesFile)
		} else {
			return err
		}
	}

	// The skipped org ID list is optional
	err = shared.ReadYamlFile(kc.ServiceAccountLimitCheckSkippedOrgIdsFile, &kc.ServiceAccountLimitCheckSkippedOrgIdList)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	kc.DepbotRealm.setDefaultURIs(kc.BaseURL)
	kc.DashboardIDPRealm.setDefaultURIs(kc.BaseURL)
	kc.RedhatSSORealm.setDefaultURIs(kc.SsoBaseUrl)
	return nil
}
