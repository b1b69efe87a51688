package mocks

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	serviceaccountsclient "github.com/redhat-developer/app-services-sdk-go/serviceaccounts/apiv1internal/client"
)

type RedhatSSOMock interface {
	Start()
	Stop()
	BaseURL() string
	GenerateNewAuthToken() string
	SetBearerToken(token string)
	// RegisterPrivilegedClient registers the credentials a caller uses for the
	// client_credentials grant. The issued access token is accepted as a bearer
	// token on the service accounts API.
	RegisterPrivilegedClient(clientId string, secret string)
}

type redhatSSOMock struct {
	server            *httptest.Server
	authTokens        []string
	serviceAccounts   map[string]serviceaccountsclient.ServiceAccountData
	privilegedClients map[string]string
}

type getTokenResponseMock struct {
	AccessToken      string `json:"access_token,omitempty"`
	ExpiresIn        int    `json:"expires_in,omitempty"`
	RefreshExpiresIn int    `json:"refresh_expires_in,omitempty"`
	TokenType        string `json:"token_type,omitempty"`
	NotBeforePolicy  int    `json:"not-before-policy,omitempty"`
	Scope            string `json:"scope,omitempty"`
}

var _ RedhatSSOMock = &redhatSSOMock{}

func NewMockServer() RedhatSSOMock {
	mockServer := &redhatSSOMock{
		serviceAccounts:   make(map[string]serviceaccountsclient.ServiceAccountData),
		privilegedClients: make(map[string]string),
	}
	mockServer.init()
	return mockServer
}

func (mockServer *redhatSSOMock) Start() {
	mockServer.server.Start()
}

func (mockServer *redhatSSOMock) Stop() {
	mockServer.server.Close()
}

func (mockServer *redhatSSOMock) BaseURL() string {
	return mockServer.server.URL
}

func (mockServer *redhatSSOMock) GenerateNewAuthToken() string {
	token := uuid.New().String()
	mockServer.authTokens = append(mockServer.authTokens, token)
	return token
}

// SetBearerToken registers `token` as a valid bearer token for the service accounts api
func (mockServer *redhatSSOMock) SetBearerToken(token string) {
	mockServer.authTokens = append(mockServer.authTokens, token)
}

func (mockServer *redhatSSOMock) bearerAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		authorizationHeader := request.Header.Get("Authorization")
		if authorizationHeader != "" {
			for _, token := range mockServer.authTokens {
				if authorizationHeader == fmt.Sprintf("Bearer %s", token) {
					next.ServeHTTP(writer, request)
					return
				}
			}
		}

		http.Error(writer, "{\"error\":\"HTTP 401 Unauthorized\"}", http.StatusUnauthorized)
	})
}

func (mockServer *redhatSSOMock) RegisterPrivilegedClient(clientId string, secret string) {
	mockServer.privilegedClients[clientId] = secret
	mockServer.authTokens = append(mockServer.authTokens, secret)
}

func (mockServer *redhatSSOMock) serviceAccountAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		clientId := request.FormValue("client_id")
		clientSecret := request.FormValue("client_secret")

		if secret, ok := mockServer.privilegedClients[clientId]; ok && secret == clientSecret {
			next.ServeHTTP(writer, request)
			return
		}

		if serviceAccount, ok := mockServer.serviceAccounts[clientId]; ok {
			if *serviceAccount.Secret == clientSecret {
				next.ServeHTTP(writer, request)
				return
			}
		}

		http.Error(writer, "{\"error\":\"unauthorized_client\",\"error_description\":\"Invalid client secret\"}", http.StatusUnauthorized)
	})
}

func (mockServer *redhatSSOMock) init() {
	r := mux.NewRouter()
	bearerTokenAuthRouter := r.NewRoute().Subrouter()
	bearerTokenAuthRouter.Use(mockServer.bearerAuthMiddleware)
	serviceAccountAuthenticatedRouter := r.NewRoute().Subrouter()
	serviceAccountAuthenticatedRouter.Use(mockServer.serviceAccountAuthMiddleware)

	serviceAccountAuthenticatedRouter.HandleFunc("/auth/realms/redhat-external/protocol/openid-connect/token", mockServer.getTokenHandler).Methods("POST")

	bearerTokenAuthRouter.HandleFunc("/auth/realms/redhat-external/apis/service_accounts/v1", mockServer.createServiceAccountHandler).Methods("POST")
	bearerTokenAuthRouter.HandleFunc("/auth/realms/redhat-external/apis/service_accounts/v1", mockServer.getServiceAccountsHandler).Methods("GET")
	bearerTokenAuthRouter.HandleFunc("/auth/realms/redhat-external/apis/service_accounts/v1/{clientId}", mockServer.getServiceAccountHandler).Methods("GET")
	bearerTokenAuthRouter.HandleFunc("/auth/realms/redhat-external/apis/service_accounts/v1/{clientId}", mockServer.deleteServiceAccountHandler).Methods("DELETE")
	bearerTokenAuthRouter.HandleFunc("/auth/realms/redhat-external/apis/service_accounts/v1/{clientId}", mockServer.updateServiceAccountHandler).Methods("PATCH")
	bearerTokenAuthRouter.HandleFunc("/auth/realms/redhat-external/apis/service_accounts/v1/{clientId}/resetSecret", mockServer.regenerateSecretHandler).Methods("POST")

	mockServer.server = httptest.NewUnstartedServer(r)
}

// getTokenHandler answers the client_credentials grant with the service account
// secret as the access token. The middleware already validated the credentials.
func (mockServer *redhatSSOMock) getTokenHandler(w http.ResponseWriter, r *http.Request) {
	clientId := r.FormValue("client_id")
	accessToken := ""
	if secret, ok := mockServer.privilegedClients[clientId]; ok {
		accessToken = secret
	} else if serviceAccount, ok := mockServer.serviceAccounts[clientId]; ok {
		accessToken = *serviceAccount.Secret
	} else {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	resp := getTokenResponseMock{
		AccessToken:      accessToken,
		ExpiresIn:        0,
		RefreshExpiresIn: 0,
		TokenType:        "Bearer",
		NotBeforePolicy:  0,
		Scope:            "profile email",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	data, _ := json.Marshal(resp)
	_, _ = w.Write(data)
}

func (mockServer *redhatSSOMock) deleteServiceAccountHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	clientId, ok := vars["clientId"]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if _, ok := mockServer.serviceAccounts[clientId]; !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	delete(mockServer.serviceAccounts, clientId)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
}

func (mockServer *redhatSSOMock) updateServiceAccountHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	data, err := ioutil.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var update serviceaccountsclient.ServiceAccountRequestData
	err = json.Unmarshal(data, &update)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updateField := func(old *string, new *string) {
		if new != nil {
			*old = *new
		}
	}

	clientId, ok := vars["clientId"]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	serviceAccount, ok := mockServer.serviceAccounts[clientId]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	updateField(serviceAccount.Name, update.Name)
	updateField(serviceAccount.Description, update.Description)

	data, err = json.Marshal(serviceAccount)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (mockServer *redhatSSOMock) getServiceAccountHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	clientId, ok := vars["clientId"]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	serviceAccount, ok := mockServer.serviceAccounts[clientId]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	data, _ := json.Marshal(serviceAccount)
	_, _ = w.Write(data)
}

func (mockServer *redhatSSOMock) getServiceAccountsHandler(w http.ResponseWriter, r *http.Request) {
	res := make([]serviceaccountsclient.ServiceAccountData, 0)
	for _, data := range mockServer.serviceAccounts {
		res = append(res, data)
	}
	sort.Slice(res, func(i, j int) bool {
		return *res[i].ClientId < *res[j].ClientId
	})

	// first is a 0 based offset, like in the real service accounts API
	first := 0
	max := len(res)
	if v := r.URL.Query().Get("first"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			first = parsed
		}
	}
	if v := r.URL.Query().Get("max"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			max = parsed
		}
	}
	if first > len(res) {
		first = len(res)
	}
	if first+max > len(res) {
		max = len(res) - first
	}
	res = res[first : first+max]

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	data, _ := json.Marshal(res)
	_, _ = w.Write(data)
}

func (mockServer *redhatSSOMock) createServiceAccountHandler(w http.ResponseWriter, r *http.Request) {
	requestData, err := ioutil.ReadAll(r.Body)
	defer r.Body.Close()

	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var serviceAccountCreateRequestData serviceaccountsclient.ServiceAccountCreateRequestData
	err = json.Unmarshal(requestData, &serviceAccountCreateRequestData)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	id := uuid.New().String()
	clientId := uuid.New().String()
	secret := uuid.New().String()

	serviceAccountData := serviceaccountsclient.ServiceAccountData{
		Id:          &id,
		ClientId:    &clientId,
		Secret:      &secret,
		Name:        &serviceAccountCreateRequestData.Name,
		Description: &serviceAccountCreateRequestData.Description,
	}

	mockServer.serviceAccounts[clientId] = serviceAccountData

	data, _ := json.Marshal(serviceAccountData)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (mockServer *redhatSSOMock) regenerateSecretHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	clientId, ok := vars["clientId"]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	serviceAccount, ok := mockServer.serviceAccounts[clientId]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	*serviceAccount.Secret = uuid.New().String()
	data, err := json.Marshal(serviceAccount)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
