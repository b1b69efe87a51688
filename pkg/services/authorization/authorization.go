package authorization

//go:generate moq -out authorization_moq.go . Authorization
type Authorization interface {
	// CheckUserValid returns true if the user with the given username exists
	// in the organisation with the given external id and is not banned.
	CheckUserValid(username string, orgId string) (bool, error)
}
