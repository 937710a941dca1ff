package sections

import (
	"fmt"
	"strings"

	"github.com/blackcoderx/postman-merge/pkg/collection"
	"github.com/xeipuuv/gojsonschema"
)

// sectionSchema describes what a candidate must look like to be merged: an
// object with a non-empty name holding either a request list or one request.
const sectionSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "item": {"type": "array", "items": {"type": "object"}},
    "request": {"type": "object"}
  },
  "oneOf": [
    {"required": ["item"]},
    {"required": ["request"]}
  ]
}`

// Validate checks every candidate against the section schema and rejects
// duplicate names within the list.
func Validate(candidates []collection.Value) error {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(sectionSchema))
	if err != nil {
		return fmt.Errorf("failed to compile section schema: %w", err)
	}

	seen := make(map[string]int, len(candidates))
	for i, candidate := range candidates {
		data, err := collection.Encode(candidate, "")
		if err != nil {
			return fmt.Errorf("section %d: %w", i, err)
		}

		result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
		if err != nil {
			return fmt.Errorf("section %d: %w", i, err)
		}
		if !result.Valid() {
			var problems []string
			for _, e := range result.Errors() {
				problems = append(problems, e.String())
			}
			return fmt.Errorf("section %d: %s", i, strings.Join(problems, "; "))
		}

		name, _ := candidate.Name()
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("section %d: name '%s' already used by section %d", i, name, prev)
		}
		seen[name] = i
	}

	return nil
}
