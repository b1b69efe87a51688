package vault

import (
	"fmt"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/metrics"
)

type VaultService interface {
	SetSecretString(name string, value string, owningResource string) error
	GetSecretString(name string) (string, error)
	DeleteSecretString(name string) error
	ForEachSecret(f func(name string, owningResource string) bool) error
	Kind() string
}

func NewVaultService(vaultConfig *Config) (VaultService, error) {
	metrics.ResetMetricsForVaultService()
	switch vaultConfig.Kind {
	case KindAws:
		return NewAwsVaultService(vaultConfig)
	case KindTmp:
		return NewTmpVaultService()

	default:
		return nil, fmt.Errorf("invalid vault kind: %s", vaultConfig.Kind)

	}
}
