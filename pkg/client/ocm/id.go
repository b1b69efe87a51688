package ocm

import (
	"fmt"
	"strings"

	"github.com/rs/xid"
)

const (
	// MaxClusterNameLength - defines maximum length of an agent cluster name
	MaxClusterNameLength = 15
)

// IDGenerator interface for string ID generators.
//
//go:generate moq -out idgenerator_moq.go . IDGenerator
type IDGenerator interface {
	// Generate create a new string ID.
	Generate() string
}

var _ IDGenerator = idGenerator{}

// idGenerator internal implementation of IDGenerator.
type idGenerator struct {
	// prefix a string to prefix to any generated ID.
	prefix string
}

// NewIDGenerator create a new default implementation of IDGenerator.
func NewIDGenerator(prefix string) IDGenerator {
	return idGenerator{
		prefix: prefix,
	}
}

// Generate returns a prefixed random ID truncated to MaxClusterNameLength characters.
func (i idGenerator) Generate() string {
	return fmt.Sprintf("%s%s", i.prefix, strings.ToLower(xid.New().String()))[:MaxClusterNameLength]
}
