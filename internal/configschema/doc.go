// Package configschema generates and inspects the JSON Schema for bmerge's
// own configuration format.
//
// Merge behavior (conflict-marker strings, the maximum input size, profile
// selection) is configured through a ".bmerge.yaml" file described by Go
// structs in [go.jacobcolvin.com/bmerge/internal/config]. This package
// reflects those structs into a JSON Schema using [jsonschema], enriching the
// result with Go source doc comments so the generated schema reads like
// documentation rather than bare type information.
//
// # Usage
//
// Create a [*Generator] with the configuration struct and call
// [Generator.Generate]:
//
//	gen := configschema.New(config.Config{},
//	    configschema.WithPackagePaths("go.jacobcolvin.com/bmerge/internal/config"),
//	)
//	schemaBytes, err := gen.Generate()
//
// The "bmerge schema" subcommand uses this to print the schema; a saved copy
// can be referenced by editors via a "# yaml-language-server: $schema=..."
// directive at the top of a ".bmerge.yaml" file.
package configschema
