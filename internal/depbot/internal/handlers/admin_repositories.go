package handlers

import (
	"net/http"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/compat"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/presenters"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/handlers"
	coreServices "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services"
	"github.com/gorilla/mux"
)

type adminRepositoryHandler struct {
	service          services.RepositoryService
	updateRunService services.UpdateRunService
}

func NewAdminRepositoryHandler(service services.RepositoryService, updateRunService services.UpdateRunService) *adminRepositoryHandler {
	return &adminRepositoryHandler{
		service:          service,
		updateRunService: updateRunService,
	}
}

// List serves the admin view of the whole repository fleet. The admin flag on
// the context lifts the organisation scoping the public list applies.
func (h adminRepositoryHandler) List(w http.ResponseWriter, r *http.Request) {
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

			repositoryRequestList := compat.RepositoryRequestAdminViewList{
				Kind:  "RepositoryRequestAdminViewList",
				Page:  int32(paging.Page),
				Size:  int32(paging.Size),
				Total: int32(paging.Total),
				Items: []compat.RepositoryRequestAdminView{},
			}

			for _, repositoryRequest := range repositoryRequests {
				converted := presenters.PresentRepositoryRequestAdminView(repositoryRequest)
				repositoryRequestList.Items = append(repositoryRequestList.Items, converted)
			}

			return repositoryRequestList, nil
		},
	}
	handlers.HandleList(w, r, cfg)
}

func (h adminRepositoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (i interface{}, serviceError *errors.ServiceError) {
			id := mux.Vars(r)["id"]
			ctx := r.Context()
			repositoryRequest, err := h.service.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			return presenters.PresentRepositoryRequestAdminView(repositoryRequest), nil
		},
	}
	handlers.HandleGet(w, r, cfg)
}

func (h adminRepositoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Update lets an admin replace a repository's bot configuration outright
func (h adminRepositoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var repositoryUpdateRequest compat.RepositoryUpdateRequest
	cfg := &handlers.HandlerConfig{
		MarshalInto: &repositoryUpdateRequest,
		Validate: []handlers.Validate{
			ValidateBotConfigDocument(&repositoryUpdateRequest.BotConfig, "bot_config"),
		},
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
			return presenters.PresentRepositoryRequestAdminView(updated), nil
		},
	}
	handlers.Handle(w, r, cfg, http.StatusOK)
}

// ListUpdateRuns serves the update runs of one repository
func (h adminRepositoryHandler) ListUpdateRuns(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (interface{}, *errors.ServiceError) {
			id := mux.Vars(r)["id"]
			ctx := r.Context()

			repositoryRequest, err := h.service.Get(ctx, id)
			if err != nil {
				return nil, err
			}

			listArgs := coreServices.NewListArguments(r.URL.Query())

			updateRuns, paging, err := h.updateRunService.List(repositoryRequest.ID, listArgs)
			if err != nil {
				return nil, err
			}

			updateRunList := compat.UpdateRunList{
				Kind:  "UpdateRunList",
				Page:  int32(paging.Page),
				Size:  int32(paging.Size),
				Total: int32(paging.Total),
				Items: []compat.UpdateRun{},
			}
			for _, updateRun := range updateRuns {
				updateRunList.Items = append(updateRunList.Items, presenters.PresentUpdateRun(updateRun))
			}
			return updateRunList, nil
		},
	}
	handlers.HandleList(w, r, cfg)
}
