package environments

import "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/environments"

func NewStageEnvLoader() environments.EnvLoader {
	return environments.SimpleEnvLoader{
		"ocm-base-url":                          "https://api.stage.openshift.com",
		"ams-base-url":                          "https://api.stage.openshift.com",
		"enable-ocm-mock":                       "false",
		"enable-deny-list":                      "true",
		"max-allowed-instances":                 "1",
		"mas-sso-base-url":                      "https://identity.api.stage.openshift.com",
		"mas-sso-realm":                         "depbot",
		"enable-forge-mock":                     "false",
		"enable-dashboard-external-certificate": "true",
	}
}
