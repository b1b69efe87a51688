package authorization

import (
	"fmt"

	sdkClient "github.com/openshift-online/ocm-sdk-go"
)

type authorization struct {
	connection *sdkClient.Connection
}

var _ Authorization = &authorization{}

func NewOCMAuthorization(connection *sdkClient.Connection) Authorization {
	return &authorization{
		connection: connection,
	}
}

func (a authorization) CheckUserValid(username string, orgId string) (bool, error) {
	con := a.connection

	accountList, err := con.AccountsMgmt().V1().Accounts().List().
		Search(fmt.Sprintf("username = '%s' and organization.external_id = '%s'", username, orgId)).
		Page(1).
		Size(1).
		Send()
	if err != nil {
		return false, err
	}

	return accountList.Total() > 0 && !accountList.Items().Get(0).Banned(), nil
}
