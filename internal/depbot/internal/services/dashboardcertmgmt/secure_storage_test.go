package dashboardcertmgmt

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/aws/aws-sdk-go/service/secretsmanager/secretsmanageriface"
	"github.com/aws/aws-secretsmanager-caching-go/secretcache"
	"github.com/caddyserver/certmagic"
	"github.com/onsi/gomega"
)

// fakeSecretsManagerAPI stands in for the full AWS client handed to the secret
// cache. The embedded interface panics on anything the cache is not expected
// to call.
type fakeSecretsManagerAPI struct {
	secretsmanageriface.SecretsManagerAPI
	describeSecretWithContextFunc func(ctx context.Context, input *secretsmanager.DescribeSecretInput, opts ...request.Option) (*secretsmanager.DescribeSecretOutput, error)
	getSecretValueWithContextFunc func(ctx context.Context, input *secretsmanager.GetSecretValueInput, opts ...request.Option) (*secretsmanager.GetSecretValueOutput, error)

	describeSecretCalls []*secretsmanager.DescribeSecretInput
	getSecretValueCalls []*secretsmanager.GetSecretValueInput
}

func (fake *fakeSecretsManagerAPI) DescribeSecretWithContext(ctx context.Context, input *secretsmanager.DescribeSecretInput, opts ...request.Option) (*secretsmanager.DescribeSecretOutput, error) {
	fake.describeSecretCalls = append(fake.describeSecretCalls, input)
	return fake.describeSecretWithContextFunc(ctx, input, opts...)
}

func (fake *fakeSecretsManagerAPI) GetSecretValueWithContext(ctx context.Context, input *secretsmanager.GetSecretValueInput, opts ...request.Option) (*secretsmanager.GetSecretValueOutput, error) {
	fake.getSecretValueCalls = append(fake.getSecretValueCalls, input)
	return fake.getSecretValueWithContextFunc(ctx, input, opts...)
}

func newTestSecretCache(t *testing.T, cacheClient secretsmanageriface.SecretsManagerAPI) *secretcache.Cache {
	t.Helper()
	g := gomega.NewWithT(t)
	secretCache, err := secretcache.New(func(cache *secretcache.Cache) {
		cache.Client = cacheClient
	})
	g.Expect(err).ToNot(gomega.HaveOccurred())
	return secretCache
}

func Test_secureStorage_Delete(t *testing.T) {
	type fields struct {
		secretPrefix string
		secretClient SecretManagerClient
	}
	type args struct {
		key string
	}
	tests := []struct {
		name    string
		fields  fields
		args    args
		wantErr bool
	}{
		{
			name: "return an error when aws secret manager client returns an error",
			fields: fields{
				secretPrefix: "some-prefix",
				secretClient: &SecretManagerClientMock{
					DeleteSecretFunc: func(input *secretsmanager.DeleteSecretInput) (*secretsmanager.DeleteSecretOutput, error) {
						return nil, fmt.Errorf("some error")
					},
				},
			},
			args: args{
				key: "some-key",
			},
			wantErr: true,
		},
		{
			name: "successfully deletes the secret",
			fields: fields{
				secretPrefix: "some-other-prefix",
				secretClient: &SecretManagerClientMock{
					DeleteSecretFunc: func(input *secretsmanager.DeleteSecretInput) (*secretsmanager.DeleteSecretOutput, error) {
						return &secretsmanager.DeleteSecretOutput{}, nil
					},
				},
			},
			args: args{
				key: "some-other-key",
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		testcase := tt
		t.Run(testcase.name, func(t *testing.T) {
			t.Parallel()
			g := gomega.NewWithT(t)
			storage := &secureStorage{
				secretPrefix: testcase.fields.secretPrefix,
				secretClient: testcase.fields.secretClient,
			}
			err := storage.Delete(context.Background(), testcase.args.key)
			g.Expect(err != nil).To(gomega.Equal(testcase.wantErr))

			// assert that aws secret manager call was done appropriately

			mock, ok := testcase.fields.secretClient.(*SecretManagerClientMock)
			g.Expect(ok).To(gomega.BeTrue())
			deleteCalls := mock.DeleteSecretCalls()
			g.Expect(deleteCalls).To(gomega.HaveLen(1))

			name := fmt.Sprintf("%s/%s", testcase.fields.secretPrefix, testcase.args.key)
			force := true
			g.Expect(deleteCalls[0].Input).To(gomega.Equal(&secretsmanager.DeleteSecretInput{
				SecretId:                   &name,
				ForceDeleteWithoutRecovery: &force,
			}))
		})
	}
}

func Test_secureStorage_Store(t *testing.T) {
	type fields struct {
		secretPrefix string
		secretClient SecretManagerClient
	}
	type args struct {
		key   string
		value []byte
	}
	tests := []struct {
		name    string
		fields  fields
		args    args
		wantErr bool
	}{
		{
			name: "successfully stores the secret",
			fields: fields{
				secretPrefix: "some-prefix",
				secretClient: &SecretManagerClientMock{
					CreateSecretFunc: func(input *secretsmanager.CreateSecretInput) (*secretsmanager.CreateSecretOutput, error) {
						return &secretsmanager.CreateSecretOutput{}, nil
					},
				},
			},
			args: args{
				key:   "some-key",
				value: []byte("some byte"),
			},
			wantErr: false,
		},
		{
			name: "returns an error when the error is different than ResourceExistsException",
			fields: fields{
				secretPrefix: "some-other-prefix",
				secretClient: &SecretManagerClientMock{
					CreateSecretFunc: func(input *secretsmanager.CreateSecretInput) (*secretsmanager.CreateSecretOutput, error) {
						return nil, fmt.Errorf("some error")
					},
				},
			},
			args: args{
				key:   "some-key-to-store",
				value: []byte("some byte to store"),
			},
			wantErr: true,
		},
		{
			name: "successfully updates the secret when it exists rather than raising ResourceExistsException",
			fields: fields{
				secretPrefix: "some-other-prefix",
				secretClient: &SecretManagerClientMock{
					CreateSecretFunc: func(input *secretsmanager.CreateSecretInput) (*secretsmanager.CreateSecretOutput, error) {
						return nil, &secretsmanager.ResourceExistsException{}
					},
					UpdateSecretFunc: func(input *secretsmanager.UpdateSecretInput) (*secretsmanager.UpdateSecretOutput, error) {
						return &secretsmanager.UpdateSecretOutput{}, nil
					},
				},
			},
			args: args{
				key:   "key-to-update",
				value: []byte("some up to date value"),
			},
			wantErr: false,
		},
		{
			name: "returns an error when fails to update the secret",
			fields: fields{
				secretPrefix: "some-other-prefix",
				secretClient: &SecretManagerClientMock{
					CreateSecretFunc: func(input *secretsmanager.CreateSecretInput) (*secretsmanager.CreateSecretOutput, error) {
						return nil, &secretsmanager.ResourceExistsException{}
					},
					UpdateSecretFunc: func(input *secretsmanager.UpdateSecretInput) (*secretsmanager.UpdateSecretOutput, error) {
						return nil, fmt.Errorf("some error")
					},
				},
			},
			args: args{
				key:   "key",
				value: []byte("value"),
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		testcase := tt
		t.Run(testcase.name, func(t *testing.T) {
			t.Parallel()
			g := gomega.NewWithT(t)
			storage := &secureStorage{
				secretPrefix: testcase.fields.secretPrefix,
				secretClient: testcase.fields.secretClient,
			}
			err := storage.Store(context.Background(), testcase.args.key, testcase.args.value)
			g.Expect(err != nil).To(gomega.Equal(testcase.wantErr))

			mock, ok := testcase.fields.secretClient.(*SecretManagerClientMock)
			g.Expect(ok).To(gomega.BeTrue())
			createSecretCalls := mock.CreateSecretCalls()
			g.Expect(createSecretCalls).To(gomega.HaveLen(1))
			name := fmt.Sprintf("%s/%s", testcase.fields.secretPrefix, testcase.args.key)
			g.Expect(createSecretCalls[0].Input).To(gomega.Equal(&secretsmanager.CreateSecretInput{
				Name:         &name,
				SecretBinary: testcase.args.value,
			}))

			if mock.UpdateSecretFunc != nil {
				updateSecretCalls := mock.UpdateSecretCalls()
				g.Expect(updateSecretCalls).To(gomega.HaveLen(1))
				g.Expect(updateSecretCalls[0].Input).To(gomega.Equal(&secretsmanager.UpdateSecretInput{
					SecretId:     &name,
					SecretBinary: testcase.args.value,
				}))
			}
		})
	}
}

func Test_secureStorage_List(t *testing.T) {
	type fields struct {
		secretPrefix string
		secretClient SecretManagerClient
	}
	type args struct {
		prefix    string
		recursive bool
	}
	tests := []struct {
		name    string
		fields  fields
		args    args
		want    []string
		wantErr bool
	}{
		{
			name:    "return an error when list returns an error",
			wantErr: true,
			want:    []string{},
			fields: fields{
				secretPrefix: "some-prefix",
				secretClient: &SecretManagerClientMock{
					ListSecretsPagesFunc: func(input *secretsmanager.ListSecretsInput, fn func(*secretsmanager.ListSecretsOutput, bool) bool) error {
						return fmt.Errorf("some error")
					},
				},
			},
			args: args{
				prefix:    "key prefix",
				recursive: true,
			},
		},
		{
			name:    "returns the secret keys with the global prefix removed",
			wantErr: false,
			want:    []string{"example/key1", "example2/keys/key2"},
			fields: fields{
				secretPrefix: "some-prefix",
				secretClient: &SecretManagerClientMock{
					ListSecretsPagesFunc: func(input *secretsmanager.ListSecretsInput, fn func(*secretsmanager.ListSecretsOutput, bool) bool) error {
						keyname1 := "some-prefix/example/key1"
						keyname2 := "some-prefix/example2/keys/key2"
						fn(&secretsmanager.ListSecretsOutput{
							SecretList: []*secretsmanager.SecretListEntry{
								{
									Name: &keyname1,
								},
								{
									Name: &keyname2,
								},
							},
						}, true)
						return nil
					},
				},
			},
			args: args{
				prefix:    "example",
				recursive: true,
			},
		},
	}
	for _, tt := range tests {
		testcase := tt
		t.Run(testcase.name, func(t *testing.T) {
			t.Parallel()
			g := gomega.NewWithT(t)
			storage := &secureStorage{
				secretPrefix: testcase.fields.secretPrefix,
				secretClient: testcase.fields.secretClient,
			}
			keys, err := storage.List(context.Background(), testcase.args.prefix, testcase.args.recursive)
			g.Expect(err != nil).To(gomega.Equal(testcase.wantErr))
			g.Expect(keys).To(gomega.Equal(testcase.want))

			mock, ok := testcase.fields.secretClient.(*SecretManagerClientMock)
			g.Expect(ok).To(gomega.BeTrue())
			listPagesCalls := mock.ListSecretsPagesCalls()
			g.Expect(listPagesCalls).To(gomega.HaveLen(1))
			filterKey := "name"
			filter := fmt.Sprintf("%s/%s", testcase.fields.secretPrefix, testcase.args.prefix)
			g.Expect(listPagesCalls[0].Input).To(gomega.Equal(&secretsmanager.ListSecretsInput{
				Filters: []*secretsmanager.Filter{
					{Key: &filterKey, Values: []*string{&filter}}},
			}))

		})
	}
}

func Test_secureStorage_String(t *testing.T) {
	t.Parallel()
	g := gomega.NewWithT(t)
	storage := &secureStorage{}
	g.Expect(storage.String()).To(gomega.Equal("SecureStorage"))
}

func Test_secureStorage_Load(t *testing.T) {
	type args struct {
		key string
	}
	version := "AWSCURRENT"

	tests := []struct {
		name                           string
		secretPrefix                   string
		cacheClient                    *fakeSecretsManagerAPI
		args                           args
		want                           []byte
		wantErr                        bool
		shouldReturnFileNotExistsError bool
	}{
		{
			name:         "return an error when describing the secret fails with a different error than ResourceNotFoundException",
			secretPrefix: "secret-prefix",
			cacheClient: &fakeSecretsManagerAPI{
				describeSecretWithContextFunc: func(ctx context.Context, input *secretsmanager.DescribeSecretInput, opts ...request.Option) (*secretsmanager.DescribeSecretOutput, error) {
					return nil, fmt.Errorf("some error")
				},
			},
			args: args{
				key: "some-key",
			},
			wantErr: true,
		},
		{
			name:         "return an error when getting the secret value fails with a different error than ResourceNotFoundException",
			secretPrefix: "secret-prefix",
			cacheClient: &fakeSecretsManagerAPI{
				describeSecretWithContextFunc: func(ctx context.Context, input *secretsmanager.DescribeSecretInput, opts ...request.Option) (*secretsmanager.DescribeSecretOutput, error) {
					return &secretsmanager.DescribeSecretOutput{
						VersionIdsToStages: map[string][]*string{
							"AWSCURRENT": {&version},
						},
					}, nil
				},
				getSecretValueWithContextFunc: func(ctx context.Context, input *secretsmanager.GetSecretValueInput, opts ...request.Option) (*secretsmanager.GetSecretValueOutput, error) {
					return nil, fmt.Errorf("some-error")
				},
			},
			args: args{
				key: "some-other-key",
			},
			wantErr: true,
		},
		{
			name:         "return the file not found error when the secret manager returns ResourceNotFoundException",
			secretPrefix: "secret-prefix",
			cacheClient: &fakeSecretsManagerAPI{
				describeSecretWithContextFunc: func(ctx context.Context, input *secretsmanager.DescribeSecretInput, opts ...request.Option) (*secretsmanager.DescribeSecretOutput, error) {
					return nil, &secretsmanager.ResourceNotFoundException{}
				},
			},
			args: args{
				key: "some-other-key",
			},
			wantErr:                        true,
			shouldReturnFileNotExistsError: true,
		},
		{
			name:         "return the secret",
			secretPrefix: "secret-prefix",
			cacheClient: &fakeSecretsManagerAPI{
				describeSecretWithContextFunc: func(ctx context.Context, input *secretsmanager.DescribeSecretInput, opts ...request.Option) (*secretsmanager.DescribeSecretOutput, error) {
					return &secretsmanager.DescribeSecretOutput{
						VersionIdsToStages: map[string][]*string{
							"AWSCURRENT": {&version},
						},
					}, nil
				},
				getSecretValueWithContextFunc: func(ctx context.Context, input *secretsmanager.GetSecretValueInput, opts ...request.Option) (*secretsmanager.GetSecretValueOutput, error) {
					return &secretsmanager.GetSecretValueOutput{
						SecretBinary: []byte("some-value"),
					}, nil
				},
			},
			args: args{
				key: "some-other-key",
			},
			wantErr: false,
			want:    []byte("some-value"),
		},
	}
	for _, tt := range tests {
		testcase := tt
		t.Run(testcase.name, func(t *testing.T) {
			t.Parallel()
			g := gomega.NewWithT(t)
			storage := &secureStorage{
				secretCache:  newTestSecretCache(t, testcase.cacheClient),
				secretPrefix: testcase.secretPrefix,
			}
			value, err := storage.Load(context.Background(), testcase.args.key)
			g.Expect(err != nil).To(gomega.Equal(testcase.wantErr))
			g.Expect(value).To(gomega.Equal(testcase.want))
			if testcase.wantErr && testcase.shouldReturnFileNotExistsError {
				g.Expect(errors.Is(err, fs.ErrNotExist)).To(gomega.BeTrue())
			}

			name := fmt.Sprintf("%s/%s", testcase.secretPrefix, testcase.args.key)
			g.Expect(testcase.cacheClient.describeSecretCalls).To(gomega.HaveLen(1))
			g.Expect(testcase.cacheClient.describeSecretCalls[0].SecretId).To(gomega.Equal(&name))
			if testcase.cacheClient.getSecretValueWithContextFunc != nil {
				g.Expect(testcase.cacheClient.getSecretValueCalls).To(gomega.HaveLen(1))
				g.Expect(testcase.cacheClient.getSecretValueCalls[0].SecretId).To(gomega.Equal(&name))
				g.Expect(testcase.cacheClient.getSecretValueCalls[0].VersionId).To(gomega.Equal(&version))
			}
		})
	}
}

func Test_secureStorage_Exists(t *testing.T) {
	version := "AWSCURRENT"

	t.Run("return false when the secret manager returns ResourceNotFoundException", func(t *testing.T) {
		t.Parallel()
		g := gomega.NewWithT(t)
		cacheClient := &fakeSecretsManagerAPI{
			describeSecretWithContextFunc: func(ctx context.Context, input *secretsmanager.DescribeSecretInput, opts ...request.Option) (*secretsmanager.DescribeSecretOutput, error) {
				return nil, &secretsmanager.ResourceNotFoundException{}
			},
		}
		storage := &secureStorage{
			secretCache:  newTestSecretCache(t, cacheClient),
			secretPrefix: "secret-prefix",
		}
		g.Expect(storage.Exists(context.Background(), "some-key")).To(gomega.BeFalse())
	})

	t.Run("return true when the secret exists", func(t *testing.T) {
		t.Parallel()
		g := gomega.NewWithT(t)
		cacheClient := &fakeSecretsManagerAPI{
			describeSecretWithContextFunc: func(ctx context.Context, input *secretsmanager.DescribeSecretInput, opts ...request.Option) (*secretsmanager.DescribeSecretOutput, error) {
				return &secretsmanager.DescribeSecretOutput{
					VersionIdsToStages: map[string][]*string{
						"AWSCURRENT": {&version},
					},
				}, nil
			},
			getSecretValueWithContextFunc: func(ctx context.Context, input *secretsmanager.GetSecretValueInput, opts ...request.Option) (*secretsmanager.GetSecretValueOutput, error) {
				return &secretsmanager.GetSecretValueOutput{
					SecretBinary: []byte("some-value"),
				}, nil
			},
		}
		storage := &secureStorage{
			secretCache:  newTestSecretCache(t, cacheClient),
			secretPrefix: "secret-prefix",
		}
		g.Expect(storage.Exists(context.Background(), "some-key")).To(gomega.BeTrue())
	})
}

func Test_secureStorage_Stat(t *testing.T) {
	version := "AWSCURRENT"
	changedTime := time.Now()
	value := []byte("some-value")

	t.Run("return an error when loading the secret fails", func(t *testing.T) {
		t.Parallel()
		g := gomega.NewWithT(t)
		cacheClient := &fakeSecretsManagerAPI{
			describeSecretWithContextFunc: func(ctx context.Context, input *secretsmanager.DescribeSecretInput, opts ...request.Option) (*secretsmanager.DescribeSecretOutput, error) {
				return nil, fmt.Errorf("some error")
			},
		}
		storage := &secureStorage{
			secretCache:  newTestSecretCache(t, cacheClient),
			secretPrefix: "secret-prefix",
			secretClient: &SecretManagerClientMock{},
		}
		_, err := storage.Stat(context.Background(), "some-key")
		g.Expect(err).To(gomega.HaveOccurred())
	})

	t.Run("return the key info", func(t *testing.T) {
		t.Parallel()
		g := gomega.NewWithT(t)
		cacheClient := &fakeSecretsManagerAPI{
			describeSecretWithContextFunc: func(ctx context.Context, input *secretsmanager.DescribeSecretInput, opts ...request.Option) (*secretsmanager.DescribeSecretOutput, error) {
				return &secretsmanager.DescribeSecretOutput{
					VersionIdsToStages: map[string][]*string{
						"AWSCURRENT": {&version},
					},
				}, nil
			},
			getSecretValueWithContextFunc: func(ctx context.Context, input *secretsmanager.GetSecretValueInput, opts ...request.Option) (*secretsmanager.GetSecretValueOutput, error) {
				return &secretsmanager.GetSecretValueOutput{
					SecretBinary: value,
				}, nil
			},
		}
		mock := &SecretManagerClientMock{
			DescribeSecretFunc: func(input *secretsmanager.DescribeSecretInput) (*secretsmanager.DescribeSecretOutput, error) {
				return &secretsmanager.DescribeSecretOutput{
					LastChangedDate: &changedTime,
				}, nil
			},
		}
		storage := &secureStorage{
			secretCache:  newTestSecretCache(t, cacheClient),
			secretPrefix: "secret-prefix",
			secretClient: mock,
		}
		info, err := storage.Stat(context.Background(), "some-other-key")
		g.Expect(err).ToNot(gomega.HaveOccurred())
		g.Expect(info).To(gomega.Equal(certmagic.KeyInfo{
			Modified:   changedTime,
			Key:        "some-other-key",
			IsTerminal: false,
			Size:       int64(len(value)),
		}))

		name := "secret-prefix/some-other-key"
		describeCalls := mock.DescribeSecretCalls()
		g.Expect(describeCalls).To(gomega.HaveLen(1))
		g.Expect(describeCalls[0].Input.SecretId).To(gomega.Equal(&name))
	})
}
