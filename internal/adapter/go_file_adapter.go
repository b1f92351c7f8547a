package adapter

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
)

// ErrNoStringTable is returned when a file has no package-level []string
// variable with the requested name.
var ErrNoStringTable = errors.New("string table not found")

// StringTable describes a package-level `var name = []string{...}`
// declaration.
type StringTable struct {
	Name string
	// Values are the decoded elements in declaration order.
	Values []string
	// Lbrace and Rbrace are the positions of the composite literal braces.
	Lbrace token.Position
	Rbrace token.Position
}

// GoFileAdapter encapsulates Go-specific parsing so the domain layer works
// with lines and fragments instead of syntax trees.
type GoFileAdapter interface {
	// Parse builds an AST using the provided file set and optional source bytes.
	Parse(fileSet *token.FileSet, filename string, src []byte) (*ast.File, error)

	// StringTable finds the package-level []string literal bound to name.
	StringTable(fileSet *token.FileSet, file *ast.File, name string) (StringTable, error)
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// Parse builds an AST for the provided filename/source pair.
func (a *LocalGoFileAdapter) Parse(fileSet *token.FileSet, filename string, src []byte) (*ast.File, error) {
	return parser.ParseFile(fileSet, filename, src, parser.ParseComments)
}

// StringTable walks the top-level var declarations of file looking for
// `var name = []string{...}` and decodes its string literal elements.
func (a *LocalGoFileAdapter) StringTable(fileSet *token.FileSet, file *ast.File, name string) (StringTable, error) {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}

		for _, spec := range gen.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}

			for i, ident := range vs.Names {
				if ident.Name != name || i >= len(vs.Values) {
					continue
				}

				lit, ok := vs.Values[i].(*ast.CompositeLit)
				if !ok || !isStringSlice(lit.Type) {
					return StringTable{}, fmt.Errorf("%s: %w: not a []string literal", name, ErrNoStringTable)
				}

				return decodeStringTable(fileSet, name, lit)
			}
		}
	}

	return StringTable{}, fmt.Errorf("%s: %w", name, ErrNoStringTable)
}

func isStringSlice(expr ast.Expr) bool {
	arr, ok := expr.(*ast.ArrayType)
	if !ok || arr.Len != nil {
		return false
	}

	elt, ok := arr.Elt.(*ast.Ident)

	return ok && elt.Name == "string"
}

func decodeStringTable(fileSet *token.FileSet, name string, lit *ast.CompositeLit) (StringTable, error) {
	table := StringTable{
		Name:   name,
		Values: make([]string, 0, len(lit.Elts)),
		Lbrace: fileSet.Position(lit.Lbrace),
		Rbrace: fileSet.Position(lit.Rbrace),
	}

	for _, elt := range lit.Elts {
		basic, ok := elt.(*ast.BasicLit)
		if !ok || basic.Kind != token.STRING {
			return StringTable{}, fmt.Errorf("%s: element at %s is not a string literal",
				name, fileSet.Position(elt.Pos()))
		}

		value, err := strconv.Unquote(basic.Value)
		if err != nil {
			return StringTable{}, fmt.Errorf("%s: element at %s: %w", name, fileSet.Position(elt.Pos()), err)
		}

		table.Values = append(table.Values, value)
	}

	return table, nil
}
