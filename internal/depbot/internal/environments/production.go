package environments

import "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/environments"

func NewProductionEnvLoader() environments.EnvLoader {
	return environments.SimpleEnvLoader{
		"v":                                     "1",
		"ocm-debug":                             "false",
		"enable-ocm-mock":                       "false",
		"enable-sentry":                         "true",
		"enable-deny-list":                      "true",
		"max-allowed-instances":                 "1",
		"mas-sso-base-url":                      "https://identity.api.openshift.com",
		"mas-sso-realm":                         "depbot",
		"enable-forge-mock":                     "false",
		"enable-dashboard-external-certificate": "true",
	}
}
