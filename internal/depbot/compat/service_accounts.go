package compat

import (
	"time"
)

// ServiceAccount struct for ServiceAccount
type ServiceAccount struct {
	Id   string `json:"id,omitempty"`
	Kind string `json:"kind,omitempty"`
	Href string `json:"href,omitempty"`
	// ClientId is the client id the service account authenticates with
	ClientId string `json:"client_id,omitempty"`
	// ClientSecret is only returned on creation and on credential reset
	ClientSecret string    `json:"client_secret,omitempty"`
	Name         string    `json:"name,omitempty"`
	Description  string    `json:"description,omitempty"`
	CreatedBy    string    `json:"created_by,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// ServiceAccountListItem struct for ServiceAccountListItem
type ServiceAccountListItem struct {
	Id       string `json:"id,omitempty"`
	Kind     string `json:"kind,omitempty"`
	Href     string `json:"href,omitempty"`
	ClientId string `json:"client_id,omitempty"`
	// ClientSecret is never present on list items
	Name        string    `json:"name,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// ServiceAccountList struct for ServiceAccountList
type ServiceAccountList struct {
	Kind  string                   `json:"kind"`
	Items []ServiceAccountListItem `json:"items"`
}

// ServiceAccountRequest schema for the request to create a service account
type ServiceAccountRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
