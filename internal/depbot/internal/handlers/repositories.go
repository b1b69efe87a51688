package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/compat"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/config"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/presenters"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/auth"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/handlers"
	coreServices "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services"
	jsonpatch "github.com/evanphx/json-patch"
	"github.com/gorilla/mux"
)

type repositoryHandler struct {
	service          services.RepositoryService
	updateRunService services.UpdateRunService
	repositoryConfig *config.RepositoryConfig
}

func NewRepositoryHandler(service services.RepositoryService, updateRunService services.UpdateRunService, repositoryConfig *config.RepositoryConfig) *repositoryHandler {
	return &repositoryHandler{
		service:          service,
		updateRunService: updateRunService,
		repositoryConfig: repositoryConfig,
	}
}

func (h repositoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var repositoryRequestPayload compat.RepositoryRequestPayload
	ctx := r.Context()

	cfg := &handlers.HandlerConfig{
		MarshalInto: &repositoryRequestPayload,
		Validate: []handlers.Validate{
			handlers.ValidateAsyncEnabled(r, "registering repositories"),
			handlers.ValidateLength(&repositoryRequestPayload.Name, "name", &handlers.MinRequiredFieldLength, &MaxRepositoryNameLength),
			ValidRepositoryName(&repositoryRequestPayload.Name, "name"),
			ValidateRepositoryNameIsUnique(&repositoryRequestPayload.Name, h.service, ctx),
			ValidateForgeType(h.repositoryConfig, &repositoryRequestPayload, "forge_type"),
			ValidateBotConfigDocument(&repositoryRequestPayload.BotConfig, "bot_config"),
			ValidateDepbotClaims(ctx),
		},
		Action: func() (interface{}, *errors.ServiceError) {
			convRepo := presenters.ConvertRepositoryRequest(repositoryRequestPayload)

			claims, _ := auth.GetClaimsFromContext(ctx)
			convRepo.Owner, _ = claims.GetUsername()
			convRepo.OrganisationId, _ = claims.GetOrgId()
			convRepo.OwnerAccountId, _ = claims.GetAccountId()

			svcErr := h.service.RegisterRepositoryJob(convRepo)
			if svcErr != nil {
				return nil, svcErr
			}
			return presenters.PresentRepositoryRequest(convRepo), nil
		},
	}

	// return 202 status accepted
	handlers.Handle(w, r, cfg, http.StatusAccepted)
}

func (h repositoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (i interface{}, serviceError *errors.ServiceError) {
			id := mux.Vars(r)["id"]
			ctx := r.Context()
			repositoryRequest, err := h.service.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			return presenters.PresentRepositoryRequest(repositoryRequest), nil
		},
	}
	handlers.HandleGet(w, r, cfg)
}

// Update applies the payload's bot configuration as an RFC 7386 merge patch to
// the stored document and re-validates the result against the schema
func (h repositoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var repositoryUpdateRequest compat.RepositoryUpdateRequest
	cfg := &handlers.HandlerConfig{
		MarshalInto: &repositoryUpdateRequest,
		Action: func() (i interface{}, serviceError *errors.ServiceError) {
			id := mux.Vars(r)["id"]
			ctx := r.Context()
			repositoryRequest, err := h.service.Get(ctx, id)
			if err != nil {
				return nil, err
			}

			patched, err := mergeBotConfig(repositoryRequest.BotConfig, repositoryUpdateRequest.BotConfig)
			if err != nil {
				return nil, err
			}

			updated, err := h.service.VerifyAndUpdateBotConfig(ctx, id, patched)
			if err != nil {
				return nil, err
			}
			return presenters.PresentRepositoryRequest(updated), nil
		},
	}
	handlers.Handle(w, r, cfg, http.StatusOK)
}

// Delete is the handler for deregistering a repository
func (h repositoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Validate: []handlers.Validate{
			handlers.ValidateAsyncEnabled(r, "deleting repositories"),
		},
		Action: func() (i interface{}, serviceError *errors.ServiceError) {
			id := mux.Vars(r)["id"]
			ctx := r.Context()

			err := h.service.RegisterRepositoryDeprovisionJob(ctx, id)
			return nil, err
		},
	}
	handlers.HandleDelete(w, r, cfg, http.StatusAccepted)
}

func (h repositoryHandler) List(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (interface{}, *errors.ServiceError) {
			ctx := r.Context()

			listArgs := coreServices.NewListArguments(r.URL.Query())

			if err := listArgs.Validate(); err != nil {
				return nil, errors.NewWithCause(errors.ErrorMalformedRequest, err, "unable to list repositories: %s", err.Error())
			}

			repositoryRequests, paging, err := h.service.List(ctx, listArgs)
			if err != nil {
				return nil, err
			}

			repositoryRequestList := compat.RepositoryRequestList{
				Kind:  "RepositoryRequestList",
				Page:  int32(paging.Page),
				Size:  int32(paging.Size),
				Total: int32(paging.Total),
				Items: []compat.RepositoryRequest{},
			}

			for _, repositoryRequest := range repositoryRequests {
				converted := presenters.PresentRepositoryRequest(repositoryRequest)
				repositoryRequestList.Items = append(repositoryRequestList.Items, converted)
			}

			return repositoryRequestList, nil
		},
	}

	handlers.HandleList(w, r, cfg)
}

// GetConfig serves the preset-expanded configuration of the repository
func (h repositoryHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (i interface{}, serviceError *errors.ServiceError) {
			id := mux.Vars(r)["id"]
			ctx := r.Context()
			repositoryRequest, err := h.service.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			resolved, err := h.service.ResolveBotConfig(ctx, repositoryRequest)
			if err != nil {
				return nil, err
			}
			return presenters.PresentResolvedBotConfig(repositoryRequest, resolved), nil
		},
	}
	handlers.HandleGet(w, r, cfg)
}

// GetDashboard serves the dependency dashboard snapshot, the repository's
// current update runs grouped by status
func (h repositoryHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (i interface{}, serviceError *errors.ServiceError) {
			id := mux.Vars(r)["id"]
			ctx := r.Context()
			repositoryRequest, err := h.service.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			updateRuns, err := h.updateRunService.ListByRepository(repositoryRequest.ID)
			if err != nil {
				return nil, err
			}
			return presenters.PresentDependencyDashboard(repositoryRequest, updateRuns), nil
		},
	}
	handlers.HandleGet(w, r, cfg)
}

// mergeBotConfig applies patch to current per RFC 7386. A nil patch map leaves
// the stored document unchanged.
func mergeBotConfig(current api.JSON, patch map[string]interface{}) (api.JSON, *errors.ServiceError) {
	if len(patch) == 0 {
		return current, nil
	}
	patchDoc, err := json.Marshal(patch)
	if err != nil {
		return nil, errors.MalformedBotConfig("bot_config is not a valid merge patch: %v", err)
	}
	base := []byte(current)
	if len(base) == 0 {
		base = []byte(`{}`)
	}
	merged, err := jsonpatch.MergePatch(base, patchDoc)
	if err != nil {
		return nil, errors.MalformedBotConfig("unable to apply bot_config merge patch: %v", err)
	}
	return api.JSON(merged), nil
}
