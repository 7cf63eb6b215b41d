package arch_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"
)

// allowedGlobals lists package-level vars that are intentionally global but
// don't match the detection heuristics.
var allowedGlobals = map[string][]string{
	// content: embedded default profile, written once by go:embed.
	"content": {"defaultProfileTOML"},
}

// allowedGlobalPrefixes lists name prefixes treated as constant-like per
// package.
var allowedGlobalPrefixes = map[string][]string{
	// tui: lipgloss styles (styleXxx) and colors (colorXxx) are immutable
	// after init.
	"tui": {"style", "color"},
}

// TestNoMutableGlobalState flags package-level vars in internal packages
// that are not error sentinels, literals, inline lookup tables, interface
// checks or allowlisted.
func TestNoMutableGlobalState(t *testing.T) {
	t.Parallel()

	for _, pkg := range internalPackages(t) {
		for _, f := range parsePackage(t, pkg) {
			for _, v := range packageVars(f.AST) {
				if v.name == "_" || isAllowlisted(pkg, v.name) || constantLike(v) {
					continue
				}
				t.Errorf("mutable global state in %s: var %s; use dependency injection or move to a function",
					filepath.Base(f.Path), v.name)
			}
		}
	}
}

// TestAllowedGlobalsAreUsed catches stale allowlist entries.
func TestAllowedGlobalsAreUsed(t *testing.T) {
	t.Parallel()

	for pkg, names := range allowedGlobals {
		declared := make(map[string]bool)
		for _, f := range parsePackage(t, pkg) {
			for _, v := range packageVars(f.AST) {
				declared[v.name] = true
			}
		}
		for _, name := range names {
			if !declared[name] {
				t.Errorf("allowedGlobals[%q] contains %q but no such var exists; remove the entry", pkg, name)
			}
		}
	}
}

func TestConstantLikeClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"errors_new", `package p; import "errors"; var ErrFoo = errors.New("foo")`, true},
		{"fmt_errorf", `package p; import "fmt"; var ErrBar = fmt.Errorf("bar: %w", nil)`, true},
		{"typed_error", `package p; var ErrBaz error`, true},
		{"string_literal", `package p; var name = "hello"`, true},
		{"slice_literal", `package p; var items = []string{"a", "b"}`, true},
		{"map_literal", `package p; var lookup = map[string]bool{"x": true}`, true},
		{"make_map", `package p; var m = make(map[string]string)`, false},
		{"make_chan", `package p; var ch = make(chan int)`, false},
		{"uninitialized", `package p; var buf []byte`, false},
		{"constructor_call", `package p; import "strings"; var b = strings.NewReader("")`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			node, err := parser.ParseFile(token.NewFileSet(), "synthetic.go", tt.src, 0)
			if err != nil {
				t.Fatalf("parsing: %v", err)
			}
			vars := packageVars(node)
			if len(vars) != 1 {
				t.Fatalf("parsed %d vars, want 1", len(vars))
			}
			if got := constantLike(vars[0]); got != tt.want {
				t.Errorf("constantLike(%s) = %v, want %v", vars[0].name, got, tt.want)
			}
		})
	}
}

// packageVar is one name of a package-level var declaration.
type packageVar struct {
	name string
	typ  ast.Expr
	val  ast.Expr
}

func packageVars(file *ast.File) []packageVar {
	var vars []packageVar
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR {
			continue
		}
		for _, spec := range gd.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			for i, n := range vs.Names {
				v := packageVar{name: n.Name, typ: vs.Type}
				if i < len(vs.Values) {
					v.val = vs.Values[i]
				}
				vars = append(vars, v)
			}
		}
	}
	return vars
}

func isAllowlisted(pkg, name string) bool {
	if contains(allowedGlobals[pkg], name) {
		return true
	}
	for _, p := range allowedGlobalPrefixes[pkg] {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// constantLike reports whether a var is an error sentinel, a basic literal
// or an inline composite literal.
func constantLike(v packageVar) bool {
	if ident, ok := v.typ.(*ast.Ident); ok && ident.Name == "error" {
		return true
	}
	switch val := v.val.(type) {
	case *ast.BasicLit, *ast.CompositeLit:
		return true
	case *ast.CallExpr:
		sel, ok := val.Fun.(*ast.SelectorExpr)
		if !ok {
			return false
		}
		pkg, ok := sel.X.(*ast.Ident)
		return ok && ((pkg.Name == "errors" && sel.Sel.Name == "New") ||
			(pkg.Name == "fmt" && sel.Sel.Name == "Errorf"))
	}
	return false
}
