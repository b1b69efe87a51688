package config

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/shared"
	"github.com/spf13/pflag"
)

type AWSConfig struct {
	Route53       awsRoute53Config
	SecretManager awsSecretManagerConfig
}

type awsRoute53Config struct {
	AccessKey               string
	SecretAccessKey         string
	accessKeyFilePath       string
	secretAccessKeyFilePath string
}

type awsSecretManagerConfig struct {
	Region                  string
	AccessKey               string
	SecretPrefix            string
	SecretAccessKey         string
	accessKeyFilePath       string
	secretAccessKeyFilePath string
}

func NewAWSConfig() *AWSConfig {
	return &AWSConfig{
		Route53: awsRoute53Config{
			accessKeyFilePath:       "secrets/aws.route53accesskey",
			secretAccessKeyFilePath: "secrets/aws.route53secretaccesskey",
		},
		SecretManager: awsSecretManagerConfig{
			accessKeyFilePath:       "secrets/aws-secret-manager/aws_access_key_id",
			secretAccessKeyFilePath: "secrets/aws-secret-manager/aws_secret_access_key",
			Region:                  "us-east-1",
			SecretPrefix:            "dub-fleet-manager",
		},
	}
}

func (c *AWSConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Route53.accessKeyFilePath, "aws-route53-access-key-file", c.Route53.accessKeyFilePath, "File containing AWS access key for route53")
	fs.StringVar(&c.Route53.secretAccessKeyFilePath, "aws-route53-secret-access-key-file", c.Route53.secretAccessKeyFilePath, "File containing AWS secret access key for route53")
	fs.StringVar(&c.SecretManager.accessKeyFilePath, "aws-secret-manager-access-key-file", c.SecretManager.accessKeyFilePath, "File containing AWS secret manager access key")
	fs.StringVar(&c.SecretManager.secretAccessKeyFilePath, "aws-secret-manager-secret-access-key-file", c.SecretManager.secretAccessKeyFilePath, "File containing AWS secret manager secret access key")
	fs.StringVar(&c.SecretManager.SecretPrefix, "aws-secret-manager-secret-prefix", c.SecretManager.SecretPrefix, "Prefix to use for all secret names in AWS secret manager")
	fs.StringVar(&c.SecretManager.Region, "aws-secret-manager-region", c.SecretManager.Region, "The region of the AWS secret manager")
}

func (c *AWSConfig) ReadFiles() error {
	err := shared.ReadFileValueString(c.Route53.accessKeyFilePath, &c.Route53.AccessKey)
	if err != nil {
		return err
	}
	err = shared.ReadFileValueString(c.Route53.secretAccessKeyFilePath, &c.Route53.SecretAccessKey)
	if err != nil {
		return err
	}
	err = shared.ReadFileValueString(c.SecretManager.accessKeyFilePath, &c.SecretManager.AccessKey)
	if err != nil {
		return err
	}
	err = shared.ReadFileValueString(c.SecretManager.secretAccessKeyFilePath, &c.SecretManager.SecretAccessKey)
	if err != nil {
		return err
	}
	return nil
}
