package configschema

import (
	"encoding/json"
	"errors"
	"fmt"
	"go/ast"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"golang.org/x/tools/go/packages"
)

// ErrGoModNotFound indicates go.mod was not found when searching for module root.
var ErrGoModNotFound = errors.New("go.mod not found")

// LookupCommentFunc is a factory that creates a comment lookup function.
// It receives a comment map where keys follow the pattern "pkg.TypeName" for
// type comments and "pkg.TypeName.FieldName" for field comments. The returned
// function looks up comments by type and field name (empty field name for
// type-level comments).
type LookupCommentFunc func(commentMap map[string]string) func(t reflect.Type, f string) string

// Generator generates a JSON schema from a Go type using reflection.
// When package paths are provided via [WithPackagePaths], it extracts source
// comments to include as schema descriptions. Uses [github.com/invopop/jsonschema].
// Create instances with [New].
type Generator struct {
	reflector         *jsonschema.Reflector
	lookupCommentFunc LookupCommentFunc
	reflectTarget     any
	packagePaths      []string
	tests             bool // Include test files.
}

// Option configures a [Generator].
//
// Available options:
//   - [WithReflector]
//   - [WithLookupCommentFunc]
//   - [WithPackagePaths]
//   - [WithTests]
type Option func(*Generator)

// WithReflector is an [Option] that sets a custom [jsonschema.Reflector].
func WithReflector(r *jsonschema.Reflector) Option {
	return func(g *Generator) {
		g.reflector = r
	}
}

// WithLookupCommentFunc is an [Option] that sets a custom comment lookup function.
func WithLookupCommentFunc(f LookupCommentFunc) Option {
	return func(g *Generator) {
		g.lookupCommentFunc = f
	}
}

// WithPackagePaths is an [Option] that sets the package paths for comment lookup.
func WithPackagePaths(paths ...string) Option {
	return func(g *Generator) {
		g.packagePaths = paths
	}
}

// WithTests is an [Option] that includes test files when loading packages.
func WithTests(include bool) Option {
	return func(g *Generator) {
		g.tests = include
	}
}

// New creates a new [Generator].
// The reflectTarget is the Go type to generate the schema for.
// Use [WithPackagePaths] to specify packages for comment lookup.
func New(reflectTarget any, opts ...Option) *Generator {
	g := &Generator{
		reflector:         new(jsonschema.Reflector),
		lookupCommentFunc: DefaultLookupCommentFunc,
		reflectTarget:     reflectTarget,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate creates a JSON schema from the configured Go type and returns it as JSON.
func (g *Generator) Generate() ([]byte, error) {
	if len(g.packagePaths) > 0 {
		err := g.addLookupComment()
		if err != nil {
			return nil, fmt.Errorf("lookup comments: %w", err)
		}
	}

	js := g.reflector.Reflect(g.reflectTarget)
	jsData, err := json.MarshalIndent(js, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	return jsData, nil
}

func (g *Generator) addLookupComment() error {
	// Find the module root directory.
	moduleRoot, err := findModuleRoot()
	if err != nil {
		return fmt.Errorf("find module root: %w", err)
	}

	commentMap := make(map[string]string)

	// Load packages using the modern packages API.
	cfg := &packages.Config{
		Mode:  packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes,
		Dir:   moduleRoot,
		Tests: g.tests,
	}

	pkgs, err := packages.Load(cfg, g.packagePaths...)
	if err != nil {
		return fmt.Errorf("load packages: %w", err)
	}

	// Check for package loading errors.
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			// Skip packages with errors.
			continue
		}
		// Build comment map for this package.
		buildCommentMapForPackage(pkg, commentMap)
	}

	// AdditionalProperties are not set correctly when references are used.
	// So, we hardcode this value to false for now.
	g.reflector.DoNotReference = true

	// Create and set a lookup function that uses the comment map.
	g.reflector.LookupComment = g.lookupCommentFunc(commentMap)

	return nil
}

// DefaultLookupCommentFunc returns a comment lookup function that combines
// source comments with pkg.go.dev documentation URLs.
func DefaultLookupCommentFunc(commentMap map[string]string) func(t reflect.Type, f string) string {
	return func(t reflect.Type, f string) string {
		typeName := t.Name()
		pkgPath := t.PkgPath()

		// Generate the documentation URL.
		var docURL string
		if f == "" {
			docURL = fmt.Sprintf("%s: https://pkg.go.dev/%s#%s", typeName, pkgPath, typeName)
		} else {
			docURL = fmt.Sprintf("%s.%s: https://pkg.go.dev/%s#%s", typeName, f, pkgPath, typeName)
		}

		// Look up the comment from the parsed source code.
		var comment string
		if f == "" {
			// Type comment - use the package name from the path.
			pkgName := pkgPath[strings.LastIndex(pkgPath, "/")+1:]
			if typeComment, ok := commentMap[pkgName+"."+typeName]; ok {
				comment = typeComment
			}
		} else {
			// Field comment - use the package name from the path.
			pkgName := pkgPath[strings.LastIndex(pkgPath, "/")+1:]
			if fieldComment, ok := commentMap[pkgName+"."+typeName+"."+f]; ok {
				comment = fieldComment
			}
		}

		// Combine the documentation URL with the comment if available.
		if comment != "" {
			return fmt.Sprintf("%s\n\n%s", comment, docURL)
		}

		return docURL
	}
}

// findModuleRoot searches for the go.mod file starting from the current directory and going up.
func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		_, err := os.Stat(filepath.Join(dir, "go.mod"))
		if err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached the root directory.
			break
		}

		dir = parent
	}

	return "", ErrGoModNotFound
}

// buildCommentMapForPackage parses Go packages and builds a map of comments for types and fields.
func buildCommentMapForPackage(pkg *packages.Package, commentMap map[string]string) {
	// Walk through all syntax files to extract type and field comments directly.
	for _, file := range pkg.Syntax {
		ast.Inspect(file, func(n ast.Node) bool {
			switch node := n.(type) {
			case *ast.GenDecl:
				// Extract type comments from general declarations.
				if node.Doc != nil {
					for _, spec := range node.Specs {
						if typeSpec, ok := spec.(*ast.TypeSpec); ok {
							key := pkg.Name + "." + typeSpec.Name.Name
							commentMap[key] = cleanComment(node.Doc.Text())
						}
					}
				}

			case *ast.TypeSpec:
				// Extract type comments from individual type specs.
				if node.Doc != nil {
					key := pkg.Name + "." + node.Name.Name
					commentMap[key] = cleanComment(node.Doc.Text())
				}

				// Extract field comments from struct types.
				if structType, ok := node.Type.(*ast.StructType); ok {
					typeName := node.Name.Name
					for _, field := range structType.Fields.List {
						// Check both Doc (leading comments) and Comment (trailing comments).
						var comment string
						if field.Doc != nil {
							comment = field.Doc.Text()
						} else if field.Comment != nil {
							comment = field.Comment.Text()
						}

						if comment != "" && len(field.Names) > 0 {
							fieldName := field.Names[0].Name
							key := pkg.Name + "." + typeName + "." + fieldName
							commentMap[key] = cleanComment(comment)
						}
					}
				}
			}

			return true
		})
	}
}

// cleanComment removes leading comment markers and extra whitespace.
func cleanComment(comment string) string {
	lines := strings.Split(comment, "\n")
	cleanLines := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimPrefix(line, "//")
		cleanLines = append(cleanLines, line)
	}

	return strings.TrimSpace(strings.Join(cleanLines, "\n"))
}
