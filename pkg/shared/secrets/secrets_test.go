package secrets

import (
	"reflect"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/spyzhov/ajson"
	"k8s.io/apimachinery/pkg/util/sets"
)

const exampleSchema1 = `
{
  "properties": {
    "registryUrl": {
      "title": "Registry URL",
      "description": "The package registry base URL",
      "type": "string"
    },
    "token": {
      "title": "Registry Token",
      "description": "The token used to authenticate against the registry",
      "oneOf": [
        {
          "description": "The token used to authenticate against the registry",
          "type": "string",
          "format": "password"
        },
        {
          "description": "An opaque reference to the token",
          "type": "object",
          "properties": {}
        }
      ]
    },
    "npm.registry": {
      "title": "Registry override",
      "type": "string"
    },
    "npm.token": {
      "title": "Registry override token",
      "oneOf": [
        {
          "type": "string",
          "format": "password"
        },
        {
          "type": "object",
          "properties": {}
        }
      ]
    }
  }
}
`

func Test_getSecretPaths(t *testing.T) {
	type args struct {
		schemaText string
	}

	tests := []struct {
		name    string
		args    args
		want    []string
		wantErr bool
	}{
		{
			name: "HostRulesSchemaText",
			args: args{
				schemaText: exampleSchema1,
			},
			want:    []string{`["token"]`, `["npm.token"]`},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getPathsToPasswordFields([]byte(tt.args.schemaText))
			if (err != nil) != tt.wantErr {
				t.Errorf("getPathsToPasswordFields() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !reflect.DeepEqual(sets.NewString(got...), sets.NewString(tt.want...)) {
				t.Errorf("getPathsToPasswordFields() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_changePasswordFields(t *testing.T) {
	RegisterTestingT(t)
	type args struct {
		schemaText string
		doc        string
		f          func(node *ajson.Node) error
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
		want    string
	}{
		{
			name: "replace with empty object",
			args: args{
				schemaText: exampleSchema1,
				doc: `{
					"registryUrl": "test",
					"token": "test",
					"npm.registry": "test",
					"npm.token": "test"
				}`,
				f: func(node *ajson.Node) error {
					if node.Type() == ajson.String {
						return node.SetObject(map[string]*ajson.Node{})
					}
					return nil
				},
			},
			want: `{
				"registryUrl": "test",
				"token": {},
				"npm.registry": "test",
				"npm.token": {}
			}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := modifySecrets([]byte(tt.args.schemaText), []byte(tt.args.doc), tt.args.f)
			if (err != nil) != tt.wantErr {
				t.Errorf("modifySecrets() error = %v, wantErr %v", err, tt.wantErr)
			}
			Expect(got).Should(MatchJSON(tt.want))
		})
	}
}
