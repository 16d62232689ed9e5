// Package literal turns registry-format GUID strings into Go source, so that
// known GUIDs can be compiled in as composite literals instead of being
// parsed at startup. It backs the guidgen command.
package literal

import (
	"bufio"
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"path"
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"github.com/bogu9821/guidparser/pkg/guid"
)

// DefaultImport is the package providing the GUID type in generated code.
const DefaultImport = "github.com/bogu9821/guidparser/pkg/guid"

// Definition binds a Go identifier to a GUID.
type Definition struct {
	Name  string
	Value guid.GUID
	// Doc is the text following the name in the doc comment, if any.
	Doc string
}

// Config controls the generated file.
type Config struct {
	// Package is the package clause of the generated file.
	Package string
	// Import is the import path of the GUID package. An empty string means
	// the file is generated into that package and GUID is unqualified.
	Import string
	// Table, if set, names a map[GUID]string variable listing every
	// definition by name.
	Table string
}

// ParseArg parses a `Name={guid}` pair.
func ParseArg(s string) (Definition, error) {
	name, lit, ok := strings.Cut(s, "=")
	if !ok {
		return Definition{}, errors.Errorf("%q: expected Name={guid}", s)
	}
	return newDefinition(strings.TrimSpace(name), strings.TrimSpace(lit), "")
}

// ParseDefinitions reads one definition per line in the form
// `Name {guid} [doc text]` or `Name={guid}`. Blank lines and lines starting
// with '#' are skipped.
func ParseDefinitions(r io.Reader) ([]Definition, error) {
	var defs []Definition
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var (
			d   Definition
			err error
		)
		if name, _, ok := strings.Cut(line, "="); ok && !strings.ContainsAny(name, " \t") {
			d, err = ParseArg(line)
		} else {
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return nil, errors.Errorf("line %d: expected Name {guid}", n)
			}
			doc := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(strings.TrimPrefix(line, fields[0])), fields[1]))
			d, err = newDefinition(fields[0], fields[1], doc)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
		defs = append(defs, d)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read definitions")
	}
	return defs, nil
}

func newDefinition(name, lit, doc string) (Definition, error) {
	if !token.IsIdentifier(name) {
		return Definition{}, errors.Errorf("%q is not a valid Go identifier", name)
	}
	g, err := guid.Parse(lit)
	if err != nil {
		return Definition{}, errors.Wrapf(err, "%s: %q", name, lit)
	}
	return Definition{Name: name, Value: g, Doc: doc}, nil
}

// Generate writes a gofmt'ed Go file declaring every definition as a
// package-level variable.
func Generate(w io.Writer, cfg Config, defs []Definition) error {
	if !token.IsIdentifier(cfg.Package) {
		return errors.Errorf("invalid package name %q", cfg.Package)
	}
	if cfg.Table != "" && !token.IsIdentifier(cfg.Table) {
		return errors.Errorf("invalid table name %q", cfg.Table)
	}
	seen := make(map[string]bool, len(defs)+1)
	if cfg.Table != "" {
		seen[cfg.Table] = true
	}
	for _, d := range defs {
		if seen[d.Name] {
			return errors.Errorf("%s is defined more than once", d.Name)
		}
		seen[d.Name] = true
	}

	typ := "GUID"
	if cfg.Import != "" {
		typ = path.Base(cfg.Import) + ".GUID"
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, struct {
		Config
		Type string
		Defs []Definition
	}{cfg, typ, defs}); err != nil {
		return errors.Wrap(err, "execute template")
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return errors.Wrap(err, "format generated source")
	}
	_, err = w.Write(src)
	return err
}

// Literal returns g as a Go composite literal of the given type.
func Literal(typ string, g guid.GUID) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s{Data1: 0x%08x, Data2: 0x%04x, Data3: 0x%04x, Data4: [8]byte{", typ, g.Data1, g.Data2, g.Data3)
	for i, x := range g.Data4 {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "0x%02x", x)
	}
	b.WriteString("}}")
	return b.String()
}

var fileTemplate = template.Must(template.New("guidgen").Funcs(template.FuncMap{
	"literal": Literal,
}).Parse(`// Code generated by guidgen; DO NOT EDIT.

package {{.Package}}
{{if .Import}}
import "{{.Import}}"
{{end}}
var (
{{- range .Defs}}
	{{if .Doc}}// {{.Name}} {{.Doc}}
	{{end}}{{.Name}} = {{literal $.Type .Value}} // {{.Value}}
{{- end}}
)
{{if .Table}}
var {{.Table}} = map[{{.Type}}]string{
{{- range .Defs}}
	{{.Name}}: "{{.Name}}",
{{- end}}
}
{{end}}`))
