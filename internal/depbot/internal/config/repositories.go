package config

import (
	"fmt"
	"time"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/shared/utils/arrays"
	"github.com/spf13/pflag"
)

type RepositoryQuotaConfig struct {
	Type                   string `json:"type"`
	AllowDeveloperInstance bool   `json:"allow_developer_instance"`
}

func NewRepositoryQuotaConfig() *RepositoryQuotaConfig {
	return &RepositoryQuotaConfig{
		Type:                   api.QuotaManagementListQuotaType.String(),
		AllowDeveloperInstance: true,
	}
}

type RepositoryConfig struct {
	SupportedForgeTypes []string               `json:"supported_forge_types"`
	ScanInterval        time.Duration          `json:"scan_interval"`
	Quota               *RepositoryQuotaConfig `json:"quota"`
}

func NewRepositoryConfig() *RepositoryConfig {
	return &RepositoryConfig{
		SupportedForgeTypes: []string{"github", "gitlab"},
		ScanInterval:        24 * time.Hour,
		Quota:               NewRepositoryQuotaConfig(),
	}
}

func (c *RepositoryConfig) IsForgeTypeSupported(forgeType string) bool {
	return arrays.Contains(c.SupportedForgeTypes, forgeType)
}

func (c *RepositoryConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringSliceVar(&c.SupportedForgeTypes, "supported-forge-types", c.SupportedForgeTypes, "Forge types repositories may be registered from")
	fs.DurationVar(&c.ScanInterval, "repository-scan-interval", c.ScanInterval, "Minimum interval between two dependency scans of the same repository")
	fs.StringVar(&c.Quota.Type, "quota-type", c.Quota.Type, "The type of the quota service to be used. The available options are: 'ams' for AMS backed implementation and 'quota-management-list' for quota list backed implementation (default).")
	fs.BoolVar(&c.Quota.AllowDeveloperInstance, "allow-developer-instance", c.Quota.AllowDeveloperInstance, "Allow the registration of developer repository instances for users without quota")
}

func (c *RepositoryConfig) ReadFiles() error {
	return nil
}

func (c *RepositoryConfig) Validate() error {
	if c.Quota.Type != api.QuotaManagementListQuotaType.String() && c.Quota.Type != api.AMSQuotaType.String() {
		return fmt.Errorf("invalid quota type %q supplied, valid quota types are %q and %q", c.Quota.Type, api.QuotaManagementListQuotaType, api.AMSQuotaType)
	}
	if len(c.SupportedForgeTypes) == 0 {
		return fmt.Errorf("at least one supported forge type must be configured")
	}
	for _, forgeType := range c.SupportedForgeTypes {
		if forgeType != "github" && forgeType != "gitlab" {
			return fmt.Errorf("unsupported forge type %q, valid forge types are 'github' and 'gitlab'", forgeType)
		}
	}
	return nil
}
