package handlers

import (
	"testing"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/compat"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/config"
	"github.com/onsi/gomega"
)

func Test_ValidRepositoryName(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		wantErr  bool
	}{
		{
			name:  "valid org/repo slug",
			value: "acme/billing",
		},
		{
			name:  "valid slug with dots and dashes",
			value: "acme-corp/billing.service",
		},
		{
			name:    "missing owner segment",
			value:   "billing",
			wantErr: true,
		},
		{
			name:    "nested path is not a slug",
			value:   "acme/team/billing",
			wantErr: true,
		},
		{
			name:    "empty name",
			value:   "",
			wantErr: true,
		},
		{
			name:    "spaces are rejected",
			value:   "acme/my repo",
			wantErr: true,
		},
	}

	gomega.RegisterTestingT(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidRepositoryName(&tt.value, "name")()
			gomega.Expect(err != nil).To(gomega.Equal(tt.wantErr))
		})
	}
}

func Test_ValidateForgeType(t *testing.T) {
	repositoryConfig := config.NewRepositoryConfig()

	tests := []struct {
		name      string
		forgeType string
		wantErr   bool
	}{
		{
			name:      "github is supported",
			forgeType: "github",
		},
		{
			name:      "gitlab is supported",
			forgeType: "gitlab",
		},
		{
			name:      "unknown forge type is rejected",
			forgeType: "bitbucket",
			wantErr:   true,
		},
		{
			name:      "empty forge type is rejected",
			forgeType: "",
			wantErr:   true,
		},
	}

	gomega.RegisterTestingT(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := compat.RepositoryRequestPayload{Name: "acme/billing", ForgeType: tt.forgeType}
			err := ValidateForgeType(repositoryConfig, &payload, "forge_type")()
			gomega.Expect(err != nil).To(gomega.Equal(tt.wantErr))
		})
	}
}

func Test_ValidateBotConfigDocument(t *testing.T) {
	tests := []struct {
		name    string
		doc     map[string]interface{}
		wantErr bool
	}{
		{
			name: "empty document validates",
			doc:  nil,
		},
		{
			name: "valid document",
			doc: map[string]interface{}{
				"extends":      []interface{}{"defaults:base"},
				"baseBranches": []interface{}{"main"},
				"packageRules": []interface{}{
					map[string]interface{}{
						"matchManagers":    []interface{}{"gomod"},
						"matchUpdateTypes": []interface{}{"patch"},
						"automerge":        true,
					},
				},
			},
		},
		{
			name: "unknown top level key is rejected",
			doc: map[string]interface{}{
				"extendz": []interface{}{"defaults:base"},
			},
			wantErr: true,
		},
		{
			name: "wrong type is rejected",
			doc: map[string]interface{}{
				"prConcurrentLimit": "three",
			},
			wantErr: true,
		},
		{
			name: "unknown update type is rejected",
			doc: map[string]interface{}{
				"packageRules": []interface{}{
					map[string]interface{}{
						"matchUpdateTypes": []interface{}{"gigantic"},
					},
				},
			},
			wantErr: true,
		},
	}

	gomega.RegisterTestingT(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBotConfigDocument(&tt.doc, "bot_config")()
			gomega.Expect(err != nil).To(gomega.Equal(tt.wantErr))
		})
	}
}
