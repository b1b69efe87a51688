package config

import (
	"fmt"
	"time"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/shared"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/shared/utils/arrays"
	"github.com/caddyserver/certmagic"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const (
	InMemoryTLSCertStorageType     = "in-memory"
	SecureTLSCertStorageType       = "secure-storage"
	FileTLSCertStorageType         = "file"
	ManualCertificateManagement    = "manual"
	AutomaticCertificateManagement = "automatic"
)

var validStorageTypes = []string{InMemoryTLSCertStorageType, FileTLSCertStorageType, SecureTLSCertStorageType}
var validCertificateManagementStrategies = []string{ManualCertificateManagement, AutomaticCertificateManagement}

// DashboardConfig drives the per organisation dependency dashboard hosts
// (<org>.<base-domain>) and the TLS certificate covering them.
type DashboardConfig struct {
	BaseDomain                           string
	EnableDashboardExternalCertificate   bool
	CertificateAuthorityEndpoint         string
	CertificateManagementStrategy        string
	StorageType                          string
	ManualCertificateManagementConfig    ManualCertificateManagementConfig
	AutomaticCertificateManagementConfig AutomaticCertificateManagementConfig
}

type ManualCertificateManagementConfig struct {
	DashboardTLSCert         string
	DashboardTLSKey          string
	DashboardTLSCertFilePath string `validate:"required"`
	DashboardTLSKeyFilePath  string `validate:"required"`
}

type AutomaticCertificateManagementConfig struct {
	RenewalWindowRatio           float64 `validate:"gte=0,lte=1"`
	EmailToSendNotificationTo    string  `validate:"required,email"`
	AcmeIssuerAccountKeyFilePath string  `validate:"required"`
	CertificateCacheTTL          time.Duration
	AcmeIssuerAccountKey         string
	MustStaple                   bool
}

func NewDashboardConfig() *DashboardConfig {
	return &DashboardConfig{
		BaseDomain:                         "dashboards.dubfm.dev",
		CertificateAuthorityEndpoint:       certmagic.LetsEncryptProductionCA,
		StorageType:                        InMemoryTLSCertStorageType,
		EnableDashboardExternalCertificate: false,
		ManualCertificateManagementConfig: ManualCertificateManagementConfig{
			DashboardTLSCertFilePath: "secrets/dashboard-tls.crt",
			DashboardTLSKeyFilePath:  "secrets/dashboard-tls.key",
		},
		CertificateManagementStrategy: ManualCertificateManagement,
		AutomaticCertificateManagementConfig: AutomaticCertificateManagementConfig{
			EmailToSendNotificationTo:    "",
			CertificateCacheTTL:          10 * time.Minute,
			RenewalWindowRatio:           certmagic.Default.RenewalWindowRatio,
			AcmeIssuerAccountKeyFilePath: "secrets/dashboard-certificate-management-acme-issuer-account-key.pem",
			MustStaple:                   false,
		},
	}
}

// DashboardHost returns the vanity host serving the dependency dashboard of
// the given organisation.
func (c *DashboardConfig) DashboardHost(organisationID string) string {
	return fmt.Sprintf("%s.%s", organisationID, c.BaseDomain)
}

// WildcardDomain is the single domain the managed certificate covers.
func (c *DashboardConfig) WildcardDomain() string {
	return fmt.Sprintf("*.%s", c.BaseDomain)
}

func (c *DashboardConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.BaseDomain, "dashboard-base-domain", c.BaseDomain, "Base domain the per organisation dashboard hosts are created under")
	fs.StringVar(&c.CertificateManagementStrategy, "dashboard-certificate-management-strategy", c.CertificateManagementStrategy, "The strategy used to manage the dashboard tls certificate: Supported values are 'manual', 'automatic'. The default value is 'manual'")
	fs.StringVar(&c.StorageType, "dashboard-certificate-management-storage-type", c.StorageType, "The storage type of the dashboard tls certificate: Supported values are 'in-memory', 'secure-storage', 'file'. The default value is 'in-memory'")
	fs.StringVar(&c.ManualCertificateManagementConfig.DashboardTLSCertFilePath, "dashboard-tls-cert-file", c.ManualCertificateManagementConfig.DashboardTLSCertFilePath, "File containing the dashboard certificate")
	fs.StringVar(&c.ManualCertificateManagementConfig.DashboardTLSKeyFilePath, "dashboard-tls-key-file", c.ManualCertificateManagementConfig.DashboardTLSKeyFilePath, "File containing the dashboard certificate private key")
	fs.BoolVar(&c.EnableDashboardExternalCertificate, "enable-dashboard-external-certificate", c.EnableDashboardExternalCertificate, "Enable custom certificate for the dashboard hosts")
	fs.BoolVar(&c.AutomaticCertificateManagementConfig.MustStaple, "dashboard-certificate-management-must-staple", c.AutomaticCertificateManagementConfig.MustStaple, "Adds the must staple TLS extension to the certificate signing request")
	fs.StringVar(&c.AutomaticCertificateManagementConfig.EmailToSendNotificationTo, "dashboard-certificate-management-email", c.AutomaticCertificateManagementConfig.EmailToSendNotificationTo, "The email address that will receive certificate notifications")
	fs.StringVar(&c.AutomaticCertificateManagementConfig.AcmeIssuerAccountKeyFilePath, "dashboard-certificate-management-acme-issuer-account-key-file-path", c.AutomaticCertificateManagementConfig.AcmeIssuerAccountKeyFilePath, "The file containing the ACME issuer account key")
	fs.Float64Var(&c.AutomaticCertificateManagementConfig.RenewalWindowRatio, "dashboard-certificate-management-renewal-window-ratio", c.AutomaticCertificateManagementConfig.RenewalWindowRatio, "How much of a certificate's lifetime becomes the renewal window")
	fs.DurationVar(&c.AutomaticCertificateManagementConfig.CertificateCacheTTL, "dashboard-certificate-management-secure-storage-cache-ttl", c.AutomaticCertificateManagementConfig.CertificateCacheTTL, "The cache duration of the certificate when secure-storage is used")
}

func (c *DashboardConfig) ReadFiles() error {
	if c.CertificateManagementStrategy == AutomaticCertificateManagement {
		err := shared.ReadFileValueString(c.AutomaticCertificateManagementConfig.AcmeIssuerAccountKeyFilePath, &c.AutomaticCertificateManagementConfig.AcmeIssuerAccountKey)
		if err != nil {
			return err
		}
	}

	// The manual certificate is read regardless of the strategy so a switch
	// from manual to automatic management keeps serving the old certificate
	// until the managed one is issued.
	if c.EnableDashboardExternalCertificate {
		err := shared.ReadFileValueString(c.ManualCertificateManagementConfig.DashboardTLSCertFilePath, &c.ManualCertificateManagementConfig.DashboardTLSCert)
		if err != nil {
			return err
		}
		err = shared.ReadFileValueString(c.ManualCertificateManagementConfig.DashboardTLSKeyFilePath, &c.ManualCertificateManagementConfig.DashboardTLSKey)
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *DashboardConfig) Validate() error {
	if !arrays.Contains(validStorageTypes, c.StorageType) {
		return fmt.Errorf("invalid storage type %q supplied. Valid storage types are %v", c.StorageType, validStorageTypes)
	}

	if !arrays.Contains(validCertificateManagementStrategies, c.CertificateManagementStrategy) {
		return fmt.Errorf("invalid certificate management strategy %q supplied. Valid strategies are %v", c.CertificateManagementStrategy, validCertificateManagementStrategies)
	}

	if c.CertificateManagementStrategy == AutomaticCertificateManagement && c.EnableDashboardExternalCertificate {
		err := validator.New().Struct(c.AutomaticCertificateManagementConfig)
		if err != nil {
			return errors.Wrap(err, "error validating the automatic dashboard certificate management configuration")
		}
	}

	if c.CertificateManagementStrategy == ManualCertificateManagement && c.EnableDashboardExternalCertificate {
		err := validator.New().Struct(c.ManualCertificateManagementConfig)
		if err != nil {
			return errors.Wrap(err, "error validating the manual dashboard certificate management configuration")
		}
	}

	return nil
}
