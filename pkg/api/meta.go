package api

import (
	"time"

	"github.com/rs/xid"
	"gorm.io/gorm"
)

// Meta is base model definition, embedded in all DB backed resources.
type Meta struct {
	ID        string `json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// NewID returns a new unique id for a resource. The generated ids are
// DNS-1123 label compatible so they can be reused as hostnames and
// kubernetes resource names.
func NewID() string {
	return xid.New().String()
}

// PagingMeta carries the paging metadata of a list request.
type PagingMeta struct {
	Page  int
	Size  int
	Total int
}
