package stubs

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/phpx-labs/cargo-php/internal/ext"
)

//go:embed stub.php.tmpl
var stubTemplate string

const indentUnit = "    "

var tmpl = template.Must(template.New("stub").Funcs(template.FuncMap{
	"docblock": docblock,
	"indent":   func(n int) string { return strings.Repeat(indentUnit, n) },
	"short":    shortName,
	"literal":  literal,
	"params":   params,
	"ret":      ret,
	"property": property,
	"method":   method,
	"join":     strings.Join,
}).Parse(stubTemplate))

type namespace struct {
	Name      string
	Constants []ext.Constant
	Functions []ext.Function
	Classes   []ext.Class
}

type stubData struct {
	Module     string
	Namespaces []*namespace
}

// Render writes the PHP stub file for m to w.
func Render(w io.Writer, m *ext.Module) error {
	if m == nil {
		return fmt.Errorf("rendering stubs: no module description")
	}
	if err := tmpl.Execute(w, group(m)); err != nil {
		return fmt.Errorf("rendering stubs for %s: %w", m.Name, err)
	}
	return nil
}

// String renders the PHP stub file for m.
func String(m *ext.Module) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, m); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// group splits m into namespace blocks. The global namespace comes first,
// the others follow in order of first appearance.
func group(m *ext.Module) stubData {
	global := &namespace{}
	blocks := []*namespace{global}
	byName := map[string]*namespace{"": global}

	get := func(name string) *namespace {
		ns := namespaceOf(name)
		if b, ok := byName[ns]; ok {
			return b
		}
		b := &namespace{Name: ns}
		byName[ns] = b
		blocks = append(blocks, b)
		return b
	}

	for _, c := range m.Constants {
		b := get(c.Name)
		b.Constants = append(b.Constants, c)
	}
	for _, f := range m.Functions {
		b := get(f.Name)
		b.Functions = append(b.Functions, f)
	}
	for _, c := range m.Classes {
		b := get(c.Name)
		b.Classes = append(b.Classes, c)
	}

	if len(blocks) > 1 && isEmpty(global) {
		blocks = blocks[1:]
	}
	return stubData{Module: m.Name, Namespaces: blocks}
}

func isEmpty(ns *namespace) bool {
	return len(ns.Constants) == 0 && len(ns.Functions) == 0 && len(ns.Classes) == 0
}

func namespaceOf(name string) string {
	name = strings.TrimPrefix(name, `\`)
	if i := strings.LastIndex(name, `\`); i >= 0 {
		return name[:i]
	}
	return ""
}

func shortName(name string) string {
	if i := strings.LastIndex(name, `\`); i >= 0 {
		return name[i+1:]
	}
	return name
}

func docblock(docs []string, depth int) string {
	if len(docs) == 0 {
		return ""
	}
	pad := strings.Repeat(indentUnit, depth)
	var b strings.Builder
	b.WriteString(pad + "/**\n")
	for _, line := range docs {
		line = strings.TrimRight(line, " ")
		if line == "" {
			b.WriteString(pad + " *\n")
			continue
		}
		b.WriteString(pad + " * " + strings.TrimPrefix(line, " ") + "\n")
	}
	b.WriteString(pad + " */\n")
	return b.String()
}

func literal(v *string) string {
	if v == nil {
		return "null"
	}
	return *v
}

// typeHint renders ty, marking it nullable where PHP's syntax allows it.
func typeHint(ty string, nullable bool) string {
	if ty == "" {
		return ""
	}
	if nullable && ty != "mixed" && ty != "null" && !strings.HasPrefix(ty, "?") && !strings.Contains(ty, "|") {
		return "?" + ty
	}
	return ty
}

func params(ps []ext.Param) string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		var b strings.Builder
		if hint := typeHint(p.Type, p.Nullable); hint != "" {
			b.WriteString(hint + " ")
		}
		if p.Variadic {
			b.WriteString("...")
		}
		b.WriteString("$" + p.Name)
		if p.Default != nil {
			b.WriteString(" = " + *p.Default)
		}
		out = append(out, b.String())
	}
	return strings.Join(out, ", ")
}

func ret(r *ext.Retval) string {
	if r == nil {
		return ""
	}
	return ": " + typeHint(r.Type, r.Nullable)
}

func visibility(v ext.Visibility) string {
	if v == "" {
		return string(ext.Public)
	}
	return string(v)
}

func property(p ext.Property) string {
	parts := []string{visibility(p.Visibility)}
	if p.Static {
		parts = append(parts, "static")
	}
	if hint := typeHint(p.Type, p.Nullable); hint != "" {
		parts = append(parts, hint)
	}
	decl := strings.Join(parts, " ") + " $" + p.Name
	if p.Default != nil {
		decl += " = " + *p.Default
	}
	return decl
}

func method(m ext.Method) string {
	parts := []string{visibility(m.Visibility)}
	if m.Static || m.Kind == "static" {
		parts = append(parts, "static")
	}
	name := m.Name
	if m.Kind == "constructor" {
		name = "__construct"
	}
	decl := strings.Join(parts, " ") + " function " + name + "(" + params(m.Params) + ")"
	if m.Kind != "constructor" {
		decl += ret(m.Ret)
	}
	return decl
}
