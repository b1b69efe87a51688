package secrets

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
	"github.com/santhosh-tekuri/jsonschema/v3"
	"github.com/spyzhov/ajson"
)

// ModifySecrets applies f to every document field the schema marks as a
// password field. Fields are matched by a oneOf of a password formatted
// string and an opaque object reference.
func ModifySecrets(schemaDom map[string]interface{}, doc api.JSON, f func(node *ajson.Node) error) (api.JSON, error) {
	schemaBytes, err := json.Marshal(schemaDom)
	if err != nil {
		return nil, err
	}
	secrets, err := modifySecrets(schemaBytes, []byte(doc), f)
	if err != nil {
		return nil, err
	}
	return secrets, nil
}

func modifySecrets(schemaBytes []byte, doc []byte, f func(node *ajson.Node) error) ([]byte, error) {
	fields, err := getPathsToPasswordFields(schemaBytes)
	if err != nil {
		return nil, err
	}

	root, _ := ajson.Unmarshal(doc)

	for _, field := range fields {
		nodes, _ := root.JSONPath("$" + field)
		for _, node := range nodes {
			err := f(node)
			if err != nil {
				return nil, err
			}
		}

	}
	return ajson.Marshal(root)
}

func getPathsToPasswordFields(schemaBytes []byte) ([]string, error) {

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", bytes.NewReader(schemaBytes)); err != nil {
		return nil, err
	}
	schema, err := c.Compile("schema.json")
	if err != nil {
		return nil, err
	}

	paths := map[string]bool{}
	findPathsMatching(schema, "", paths, func(path string, s *jsonschema.Schema) bool {
		if s.OneOf != nil {
			if len(s.OneOf) == 2 {
				if isTypeAndFormat(s.OneOf[0], "string", "password") && isTypeAndFormat(s.OneOf[1], "object", "") {
					return true
				}
				if isTypeAndFormat(s.OneOf[1], "string", "password") && isTypeAndFormat(s.OneOf[0], "object", "") {
					return true
				}
			}
		}
		return false
	})

	var result []string
	for s := range paths {
		result = append(result, s)
	}
	return result, nil

}

func isTypeAndFormat(s *jsonschema.Schema, t string, format string) bool {
	if s.Format != format {
		return false
	}
	return reflect.DeepEqual(s.Types, []string{t})
}

func findPathsMatching(s *jsonschema.Schema, p string, results map[string]bool, matcher func(path string, s *jsonschema.Schema) bool) {

	if matcher(p, s) {
		results[p] = true
		return
	}

	if s.Properties != nil {
		for n, v := range s.Properties {
			// bracket notation keeps properties with dots in their name addressable
			path := p + `["` + n + `"]`
			findPathsMatching(v, path, results, matcher)
		}
	}

	if s.OneOf != nil {
		for _, v := range s.OneOf {
			findPathsMatching(v, p, results, matcher)
		}
	}

	if s.AnyOf != nil {
		for _, v := range s.AnyOf {
			findPathsMatching(v, p, results, matcher)
		}
	}

}
