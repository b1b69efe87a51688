package presenters

import (
	"fmt"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/compat"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/handlers"
)

const (
	// KindRepository is a string identifier for the type dbapi.RepositoryRequest
	KindRepository = "Repository"
	// KindUpdateRun is a string identifier for the type dbapi.UpdateRun
	KindUpdateRun = "UpdateRun"
	// KindAgentCluster is a string identifier for the type dbapi.AgentCluster
	KindAgentCluster = "AgentCluster"
	// KindError is a string identifier for the type errors.ServiceError
	KindError = "Error"
	// KindServiceAccount is a string identifier for the type api.ServiceAccount
	KindServiceAccount = "ServiceAccount"

	BasePath = "/api/depbot_mgmt/v1"
)

func PresentReference(id, obj interface{}) compat.ObjectReference {
	return handlers.PresentReferenceWith(id, obj, objectKind, objectPath)
}

func objectKind(i interface{}) string {
	switch i.(type) {
	case dbapi.RepositoryRequest, *dbapi.RepositoryRequest:
		return KindRepository
	case dbapi.UpdateRun, *dbapi.UpdateRun:
		return KindUpdateRun
	case dbapi.AgentCluster, *dbapi.AgentCluster:
		return KindAgentCluster
	case errors.ServiceError, *errors.ServiceError:
		return KindError
	case api.ServiceAccount, *api.ServiceAccount:
		return KindServiceAccount
	default:
		return ""
	}
}

func objectPath(id string, obj interface{}) string {
	switch obj.(type) {
	case dbapi.RepositoryRequest, *dbapi.RepositoryRequest:
		return fmt.Sprintf("%s/repositories/%s", BasePath, id)
	case dbapi.UpdateRun, *dbapi.UpdateRun:
		return fmt.Sprintf("%s/update_runs/%s", BasePath, id)
	case dbapi.AgentCluster, *dbapi.AgentCluster:
		return fmt.Sprintf("%s/agent_clusters/%s", BasePath, id)
	case errors.ServiceError, *errors.ServiceError:
		return fmt.Sprintf("%s/errors/%s", BasePath, id)
	case api.ServiceAccount, *api.ServiceAccount:
		return fmt.Sprintf("%s/service_accounts/%s", BasePath, id)
	default:
		return ""
	}
}
