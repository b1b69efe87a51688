package routes

const (
	ApiEndpoint                    = "/api"
	DepbotFleetManagementApiPrefix = "depbot_mgmt"
	Version                        = "v1"
)
