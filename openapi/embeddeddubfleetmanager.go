package openapi

import (
	_ "embed"
)

//go:embed dub_fleet_manager.yaml
var dubFleetManagerOpenAPIContents []byte

func DubFleetManagerOpenAPIYAMLBytes() []byte {
	return dubFleetManagerOpenAPIContents
}
