package environments

import "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/environments"

// The development environment is intended for use while developing features, requiring manual verification
func NewDevelopmentEnvLoader() environments.EnvLoader {
	return environments.SimpleEnvLoader{
		"v":                                      "10",
		"ocm-debug":                              "false",
		"ams-base-url":                           "https://api.stage.openshift.com",
		"ocm-base-url":                           "https://api.stage.openshift.com",
		"enable-ocm-mock":                        "true",
		"enable-https":                           "false",
		"enable-metrics-https":                   "false",
		"enable-terms-acceptance":                "false",
		"api-server-bindaddress":                 "localhost:8000",
		"enable-sentry":                          "false",
		"enable-deny-list":                       "true",
		"enable-instance-limit-control":          "false",
		"mas-sso-base-url":                       "https://identity.api.stage.openshift.com",
		"mas-sso-realm":                          "depbot",
		"allow-developer-instance":               "true",
		"quota-type":                             "quota-management-list",
		"enable-forge-mock":                      "true",
		"repository-scan-interval":               "1h",
		"enable-dashboard-external-certificate":  "false",
		"dashboard-certificate-management-strategy": "manual",
	}
}
