package model

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemasFS embed.FS

const listingSchemaPath = "schemas/listing.json"

var listingSchema = mustCompile(listingSchemaPath)

func mustCompile(path string) *jsonschema.Schema {
	data, err := schemasFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("read schema %s: %v", path, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(path, bytes.NewReader(data)); err != nil {
		panic(fmt.Sprintf("add schema %s: %v", path, err))
	}
	schema, err := compiler.Compile(path)
	if err != nil {
		panic(fmt.Sprintf("compile schema %s: %v", path, err))
	}
	return schema
}

// ValidateListingJSON checks that body has the shape of a Listing: required
// keys present, nullable keys null or absent, every value of the right type.
func ValidateListingJSON(body []byte) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("listing is not valid JSON: %w", err)
	}
	if err := listingSchema.Validate(v); err != nil {
		return fmt.Errorf("listing schema validation failed: %w", err)
	}
	return nil
}

// Validate runs the structural check on the JSON form of l.
func (l Listing) Validate() error {
	body, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("failed to marshal listing: %w", err)
	}
	return ValidateListingJSON(body)
}
