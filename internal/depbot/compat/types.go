// Package compat holds the REST API type definitions shared between the
// public and the private (agent facing) sections of the service API.
package compat

// ObjectReference struct for ObjectReference
type ObjectReference struct {
	Id   string `json:"id,omitempty"`
	Kind string `json:"kind,omitempty"`
	Href string `json:"href,omitempty"`
}

// Error struct for Error
type Error struct {
	Reason string `json:"reason"`
	// The original error id of a forwarded error
	OperationId string `json:"operation_id,omitempty"`
	Id          string `json:"id"`
	Kind        string `json:"kind"`
	Href        string `json:"href"`
	Code        string `json:"code"`
}

// PrivateError struct for PrivateError
type PrivateError struct {
	Reason string `json:"reason"`
	// The original error id of a forwarded error
	OperationId string `json:"operation_id,omitempty"`
	Id          string `json:"id"`
	Kind        string `json:"kind"`
	Href        string `json:"href"`
	Code        string `json:"code"`
}

// ErrorList struct for ErrorList
type ErrorList struct {
	Kind  string  `json:"kind"`
	Page  int32   `json:"page"`
	Size  int32   `json:"size"`
	Total int32   `json:"total"`
	Items []Error `json:"items"`
}
