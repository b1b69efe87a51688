package handlers

import (
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/compat"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/presenters"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/handlers"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services/sso"
	"github.com/gorilla/mux"
)

type serviceAccountsHandler struct {
	service sso.DepbotKeycloakService
}

func NewServiceAccountHandler(service sso.DepbotKeycloakService) *serviceAccountsHandler {
	return &serviceAccountsHandler{
		service: service,
	}
}

// The service accounts collection pages with first/max instead of page/size
// and takes named exact-match filter params. This is the published contract of
// the endpoint and must not be reconciled with the other collections.
const (
	defaultServiceAccountFirst = 1
	defaultServiceAccountMax   = 100
)

// serviceAccountOrderBy maps the accepted orderBy values to comparison funcs
var serviceAccountOrderBy = map[string]func(a, b *api.ServiceAccount) bool{
	"name":      func(a, b *api.ServiceAccount) bool { return a.Name < b.Name },
	"clientId":  func(a, b *api.ServiceAccount) bool { return a.ClientID < b.ClientID },
	"creator":   func(a, b *api.ServiceAccount) bool { return a.CreatedBy < b.CreatedBy },
	"createdAt": func(a, b *api.ServiceAccount) bool { return a.CreatedAt.Before(b.CreatedAt) },
}

func acceptedServiceAccountOrderByParams() []string {
	params := make([]string, 0, len(serviceAccountOrderBy))
	for param := range serviceAccountOrderBy {
		params = append(params, param)
	}
	sort.Strings(params)
	return params
}

type serviceAccountListArguments struct {
	first     int
	max       int
	orderBy   string
	sortOrder string
	name      string
	clientId  string
	creator   string
}

func (s serviceAccountsHandler) handleParams(params url.Values) (*serviceAccountListArguments, *errors.ServiceError) {
	listArgs := &serviceAccountListArguments{
		first:     defaultServiceAccountFirst,
		max:       defaultServiceAccountMax,
		sortOrder: "asc",
		name:      params.Get("name"),
		clientId:  params.Get("clientId"),
		creator:   params.Get("creator"),
	}
	if v := params.Get("first"); v != "" {
		first, err := strconv.Atoi(v)
		if err != nil || first < 1 {
			return nil, errors.BadRequest("first must be a positive integer")
		}
		listArgs.first = first
	}
	if v := params.Get("max"); v != "" {
		max, err := strconv.Atoi(v)
		if err != nil || max < 1 {
			return nil, errors.BadRequest("max must be a positive integer")
		}
		listArgs.max = max
	}
	if v := params.Get("orderBy"); v != "" {
		if _, ok := serviceAccountOrderBy[v]; !ok {
			return nil, errors.BadRequest("unknown orderBy field '%s', accepted fields are: %s", v, strings.Join(acceptedServiceAccountOrderByParams(), ", "))
		}
		listArgs.orderBy = v
	}
	if v := params.Get("sortOrder"); v != "" {
		order := strings.ToLower(v)
		if order != "asc" && order != "desc" {
			return nil, errors.BadRequest("invalid sortOrder '%s', accepted values are: asc, desc", v)
		}
		listArgs.sortOrder = order
	}
	return listArgs, nil
}

// filterAndSort applies the exact-match filters and the requested ordering to
// the page retrieved from the SSO provider. The provider API does not expose
// arbitrary filtering, so this happens after the page fetch.
func filterAndSort(accounts []api.ServiceAccount, listArgs *serviceAccountListArguments) []api.ServiceAccount {
	filtered := make([]api.ServiceAccount, 0, len(accounts))
	for i := range accounts {
		account := accounts[i]
		if listArgs.name != "" && account.Name != listArgs.name {
			continue
		}
		if listArgs.clientId != "" && account.ClientID != listArgs.clientId {
			continue
		}
		if listArgs.creator != "" && account.CreatedBy != listArgs.creator {
			continue
		}
		filtered = append(filtered, account)
	}
	if listArgs.orderBy != "" {
		less := serviceAccountOrderBy[listArgs.orderBy]
		sort.SliceStable(filtered, func(i, j int) bool {
			if listArgs.sortOrder == "desc" {
				return less(&filtered[j], &filtered[i])
			}
			return less(&filtered[i], &filtered[j])
		})
	}
	return filtered
}

func (s serviceAccountsHandler) ListServiceAccounts(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (interface{}, *errors.ServiceError) {
			ctx := r.Context()
			listArgs, svcErr := s.handleParams(r.URL.Query())
			if svcErr != nil {
				return nil, svcErr
			}
			// first is 1 based in the published contract, the SSO providers page
			// with a 0 based offset
			sa, err := s.service.ListServiceAcc(ctx, listArgs.first-1, listArgs.max)
			if err != nil {
				return nil, err
			}

			sa = filterAndSort(sa, listArgs)

			serviceAccountList := compat.ServiceAccountList{
				Kind:  "ServiceAccountList",
				Items: []compat.ServiceAccountListItem{},
			}

			for i := range sa {
				converted := presenters.PresentServiceAccountListItem(&sa[i])
				serviceAccountList.Items = append(serviceAccountList.Items, converted)
			}

			return serviceAccountList, nil
		},
	}
	handlers.HandleList(w, r, cfg)
}

func (s serviceAccountsHandler) CreateServiceAccount(w http.ResponseWriter, r *http.Request) {
	var serviceAccountRequest compat.ServiceAccountRequest
	cfg := &handlers.HandlerConfig{
		MarshalInto: &serviceAccountRequest,
		Validate: []handlers.Validate{
			handlers.ValidateLength(&serviceAccountRequest.Name, "name", &handlers.MinRequiredFieldLength, &handlers.MaxServiceAccountNameLength),
			handlers.ValidateMaxLength(&serviceAccountRequest.Description, "description", &handlers.MaxServiceAccountDescLength),
			handlers.ValidateServiceAccountName(&serviceAccountRequest.Name, "name"),
			handlers.ValidateServiceAccountDesc(&serviceAccountRequest.Description, "description"),
		},
		Action: func() (interface{}, *errors.ServiceError) {
			ctx := r.Context()
			convSA := presenters.ConvertServiceAccountRequest(serviceAccountRequest)
			serviceAccount, err := s.service.CreateServiceAccount(convSA, ctx)
			if err != nil {
				return nil, err
			}
			return presenters.PresentServiceAccount(serviceAccount), nil
		},
	}
	handlers.Handle(w, r, cfg, http.StatusAccepted)
}

func (s serviceAccountsHandler) DeleteServiceAccount(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	cfg := &handlers.HandlerConfig{
		Validate: []handlers.Validate{
			handlers.ValidateLength(&id, "id", &handlers.MinRequiredFieldLength, &handlers.MaxServiceAccountId),
			handlers.ValidateServiceAccountId(&id, "id"),
		},
		Action: func() (interface{}, *errors.ServiceError) {
			ctx := r.Context()
			err := s.service.DeleteServiceAccount(ctx, id)
			return nil, err
		},
	}

	handlers.HandleDelete(w, r, cfg, http.StatusNoContent)
}

func (s serviceAccountsHandler) ResetServiceAccountCredential(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	cfg := &handlers.HandlerConfig{
		Validate: []handlers.Validate{
			handlers.ValidateLength(&id, "id", &handlers.MinRequiredFieldLength, &handlers.MaxServiceAccountId),
			handlers.ValidateServiceAccountId(&id, "id"),
		},
		Action: func() (interface{}, *errors.ServiceError) {
			ctx := r.Context()
			sa, err := s.service.ResetServiceAccountCredentials(ctx, id)
			if err != nil {
				return nil, err
			}
			return presenters.PresentServiceAccount(sa), nil
		},
	}

	handlers.HandleGet(w, r, cfg)
}

func (s serviceAccountsHandler) GetServiceAccountById(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	cfg := &handlers.HandlerConfig{
		Validate: []handlers.Validate{
			handlers.ValidateLength(&id, "id", &handlers.MinRequiredFieldLength, &handlers.MaxServiceAccountId),
			handlers.ValidateServiceAccountId(&id, "id"),
		},
		Action: func() (interface{}, *errors.ServiceError) {
			ctx := r.Context()
			sa, err := s.service.GetServiceAccountById(ctx, id)
			if err != nil {
				return nil, err
			}
			return presenters.PresentServiceAccount(sa), nil
		},
	}

	handlers.HandleGet(w, r, cfg)
}
