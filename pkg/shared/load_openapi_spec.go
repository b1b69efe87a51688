package shared

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/ghodss/yaml"
)

func LoadOpenAPISpecFromYAML(openapiYAMLBytes []byte) (data []byte, err error) {
	data, err = yaml.YAMLToJSON(openapiYAMLBytes)
	if err != nil {
		err = errors.GeneralError("can't convert OpenAPI specification from from YAML to JSON")
		return
	}
	return
}
