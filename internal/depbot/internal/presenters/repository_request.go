package presenters

import (
	"encoding/json"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/compat"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/botconfig"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
)

// ConvertRepositoryRequest from payload to dbapi.RepositoryRequest
func ConvertRepositoryRequest(payload compat.RepositoryRequestPayload) *dbapi.RepositoryRequest {
	repo := &dbapi.RepositoryRequest{
		Name:          payload.Name,
		ForgeType:     payload.ForgeType,
		DefaultBranch: payload.DefaultBranch,
	}
	if len(payload.BotConfig) > 0 {
		// the payload decoded cleanly, re-encoding cannot fail
		doc, _ := json.Marshal(payload.BotConfig)
		repo.BotConfig = api.JSON(doc)
	}
	return repo
}

// PresentRepositoryRequest - create RepositoryRequest in compat format
func PresentRepositoryRequest(repositoryRequest *dbapi.RepositoryRequest) compat.RepositoryRequest {
	reference := PresentReference(repositoryRequest.ID, repositoryRequest)
	return compat.RepositoryRequest{
		Id:            reference.Id,
		Kind:          reference.Kind,
		Href:          reference.Href,
		Name:          repositoryRequest.Name,
		ForgeType:     repositoryRequest.ForgeType,
		DefaultBranch: repositoryRequest.DefaultBranch,
		Owner:         repositoryRequest.Owner,
		Status:        repositoryRequest.Status,
		BotConfig:     presentBotConfigDocument(repositoryRequest.BotConfig),
		CreatedAt:     repositoryRequest.CreatedAt,
		UpdatedAt:     repositoryRequest.UpdatedAt,
		LastScanAt:    repositoryRequest.LastScanAt,
		FailedReason:  repositoryRequest.FailedReason,
	}
}

// PresentRepositoryRequestAdminView - create RepositoryRequestAdminView in compat format. The
// admin view carries the placement and quota fields the public view hides.
func PresentRepositoryRequestAdminView(repositoryRequest *dbapi.RepositoryRequest) compat.RepositoryRequestAdminView {
	reference := PresentReference(repositoryRequest.ID, repositoryRequest)
	return compat.RepositoryRequestAdminView{
		Id:             reference.Id,
		Kind:           reference.Kind,
		Href:           reference.Href,
		Name:           repositoryRequest.Name,
		ForgeType:      repositoryRequest.ForgeType,
		DefaultBranch:  repositoryRequest.DefaultBranch,
		Owner:          repositoryRequest.Owner,
		OrganisationId: repositoryRequest.OrganisationId,
		SubscriptionId: repositoryRequest.SubscriptionId,
		QuotaType:      repositoryRequest.QuotaType,
		AgentClusterId: repositoryRequest.AgentClusterID,
		Status:         repositoryRequest.Status,
		CreatedAt:      repositoryRequest.CreatedAt,
		UpdatedAt:      repositoryRequest.UpdatedAt,
		LastScanAt:     repositoryRequest.LastScanAt,
		FailedReason:   repositoryRequest.FailedReason,
	}
}

// PresentResolvedBotConfig - serve the preset-expanded configuration document
// for a repository
func PresentResolvedBotConfig(repositoryRequest *dbapi.RepositoryRequest, resolved *botconfig.ResolvedConfig) compat.RepositoryBotConfig {
	reference := PresentReference(repositoryRequest.ID, repositoryRequest)
	doc, _ := json.Marshal(resolved.BotConfig)
	out := map[string]interface{}{}
	_ = json.Unmarshal(doc, &out)
	return compat.RepositoryBotConfig{
		Id:     reference.Id,
		Kind:   "RepositoryBotConfig",
		Href:   reference.Href + "/config",
		Config: out,
	}
}

func presentBotConfigDocument(doc api.JSON) map[string]interface{} {
	if len(doc) == 0 {
		return nil
	}
	out := map[string]interface{}{}
	if err := json.Unmarshal(doc, &out); err != nil {
		return nil
	}
	return out
}
