package environments

import "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/environments"

// The integration environment is intended for automated integration testing
// against mocked external dependencies
func NewIntegrationEnvLoader() environments.EnvLoader {
	return environments.SimpleEnvLoader{
		"v":                             "0",
		"logtostderr":                   "true",
		"ocm-debug":                     "false",
		"enable-ocm-mock":               "true",
		"ocm-mock-mode":                 "emulate-server",
		"enable-https":                  "false",
		"enable-metrics-https":          "false",
		"enable-terms-acceptance":       "false",
		"api-server-bindaddress":        "localhost:8000",
		"enable-sentry":                 "false",
		"enable-deny-list":              "true",
		"enable-instance-limit-control": "true",
		"max-allowed-instances":         "1",
		"quota-type":                    "quota-management-list",
		"allow-developer-instance":      "true",
		"enable-forge-mock":             "true",
		"repository-scan-interval":      "1s",
	}
}
