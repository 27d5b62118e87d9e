// Package configvalidate validates decoded ".bmerge.yaml" configuration
// against the JSON Schema generated by
// [go.jacobcolvin.com/bmerge/internal/configschema].
//
// Unlike a schema validator built for arbitrary YAML documents, this package
// has no notion of a YAML AST or document path: configuration is decoded to
// a plain Go value (via [github.com/goccy/go-yaml]) before validation, so
// errors are reported as a dotted instance-location string rather than a
// structured path into source text.
package configvalidate

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	// ErrUnmarshalSchema indicates the schema JSON could not be parsed.
	ErrUnmarshalSchema = errors.New("unmarshal schema")

	// ErrCompileSchema indicates the schema failed to compile.
	ErrCompileSchema = errors.New("compile schema")

	// ErrValidation indicates the configuration does not conform to the schema.
	ErrValidation = errors.New("invalid configuration")
)

// Validator validates decoded configuration against a compiled JSON schema.
// Uses [github.com/santhosh-tekuri/jsonschema/v6]. Create instances with
// [New] or [MustNew].
type Validator struct {
	schema *jsonschema.Schema
}

// New creates a new [Validator] from JSON schema data.
// The url parameter is the schema's identifier used for reference resolution.
// Returns an error if the schema JSON is invalid or fails to compile.
func New(url string, schemaData []byte) (*Validator, error) {
	var schema any

	err := json.Unmarshal(schemaData, &schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnmarshalSchema, err)
	}

	compiler := jsonschema.NewCompiler()

	err = compiler.AddResource(url, schema)
	if err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	jss, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileSchema, err)
	}

	return &Validator{schema: jss}, nil
}

// MustNew is like [New] but panics on error.
// Use for schemas known to be valid at compile time, such as embedded schemas.
func MustNew(url string, schemaData []byte) *Validator {
	v, err := New(url, schemaData)
	if err != nil {
		panic(err)
	}

	return v
}

// Validate validates the given decoded value against the schema.
//
// data should be the result of unmarshaling the configuration into a
// generic JSON-compatible value (map[string]any, []any, etc.), not the
// typed Go config struct, since the schema is checked structurally.
//
// Returns nil if validation succeeds. On failure, returns an error wrapping
// [ErrValidation] whose message lists every violated constraint along with
// the dotted instance location it applies to, e.g. "profiles[0].name:
// required property name is missing".
func (v *Validator) Validate(data any) error {
	err := v.schema.Validate(data)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	p := message.NewPrinter(language.English)

	var msg strings.Builder

	if _, ok := validationErr.ErrorKind.(*kind.Schema); ok {
		msg.WriteString(fmt.Sprintf("jsonschema validation failed with %q", filepath.Base(validationErr.SchemaURL)))
	} else {
		msg.WriteString(instanceLocationString(validationErr.InstanceLocation))
		msg.WriteString(": ")
		msg.WriteString(validationErr.ErrorKind.LocalizedString(p))
	}

	for _, cause := range leafCauses(validationErr) {
		msg.WriteString("\n* ")
		msg.WriteString(instanceLocationString(cause.InstanceLocation))
		msg.WriteString(": ")
		msg.WriteString(cause.ErrorKind.LocalizedString(p))
	}

	return fmt.Errorf("%w: %s", ErrValidation, msg.String())
}

// leafCauses flattens the cause tree of a validation error, returning only
// causes with no further causes of their own.
func leafCauses(err *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(err.Causes) == 0 {
		return nil
	}

	var leaves []*jsonschema.ValidationError

	for _, cause := range err.Causes {
		if len(cause.Causes) == 0 {
			leaves = append(leaves, cause)

			continue
		}

		leaves = append(leaves, leafCauses(cause)...)
	}

	return leaves
}

// instanceLocationString renders a JSON Schema instance location as a dotted
// path, e.g. []string{"profiles", "0", "name"} -> "profiles[0].name".
func instanceLocationString(location []string) string {
	if len(location) == 0 {
		return "(root)"
	}

	var b strings.Builder

	for _, part := range location {
		if _, err := strconv.Atoi(part); err == nil {
			b.WriteString("[" + part + "]")

			continue
		}

		if b.Len() > 0 {
			b.WriteByte('.')
		}

		b.WriteString(part)
	}

	return b.String()
}
