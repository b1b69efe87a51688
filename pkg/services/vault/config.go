package vault

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/shared"
	"github.com/spf13/pflag"
)

const (
	KindTmp       = "tmp"
	KindAws       = "aws"
	DefaultRegion = "us-east-1"
)

type Config struct {
	Kind                string `json:"kind"`
	AccessKey           string `json:"access_key"`
	AccessKeyFile       string `json:"access_key_file"`
	SecretAccessKey     string `json:"secret_access_key"`
	SecretAccessKeyFile string `json:"secret_access_key_file"`
	SecretPrefix        string `json:"secret_prefix"`
	Region              string `json:"region"`
}

func NewConfig() *Config {
	return &Config{
		Kind:                KindTmp,
		AccessKeyFile:       "secrets/vault.accesskey",
		SecretAccessKeyFile: "secrets/vault.secretaccesskey",
		SecretPrefix:        "dub-fleet-manager",
		Region:              DefaultRegion,
	}
}

func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Kind, "vault-kind", c.Kind, "The kind of vault to use: aws|tmp")
	fs.StringVar(&c.AccessKeyFile, "vault-access-key-file", c.AccessKeyFile, "File containing the aws access key")
	fs.StringVar(&c.SecretAccessKeyFile, "vault-secret-access-key-file", c.SecretAccessKeyFile, "File containing the aws secret access key")
	fs.StringVar(&c.SecretPrefix, "vault-secret-prefix", c.SecretPrefix, "Prefix used for all secret names stored in the vault")
	fs.StringVar(&c.Region, "vault-region", c.Region, "The aws region of the vault")
}

func (c *Config) ReadFiles() error {
	if c.Kind == KindAws {
		err := shared.ReadFileValueString(c.AccessKeyFile, &c.AccessKey)
		if err != nil {
			return err
		}
		err = shared.ReadFileValueString(c.SecretAccessKeyFile, &c.SecretAccessKey)
		if err != nil {
			return err
		}
	}
	return nil
}
