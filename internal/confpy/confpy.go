// Package confpy renders an assembled configuration as the rendering
// engine's conf.py.
package confpy

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	ferrors "git.home.luguber.info/inful/docconf/internal/foundation/errors"
	"git.home.luguber.info/inful/docconf/internal/sphinx"
)

const confTemplate = `# Generated by docconf from {{ .Source }}. Do not edit.

project = {{ py .Doc.Project }}
author = {{ py .Doc.Author }}
version = {{ py .Doc.Version }}
release = {{ py .Doc.Release }}
copyright = {{ py .Doc.Copyright }}

master_doc = {{ py .Doc.MasterDoc }}

extensions = [
{{- range .Doc.Extensions }}
    {{ py . }},
{{- end }}
]

breathe_projects = {{ pydict .Doc.BreatheProjects }}
breathe_default_project = {{ py .Doc.BreatheDefaultProject }}

# -- Options for LaTeX output ---------------------------------------------

latex_elements = {{ pydict .Doc.LatexElements }}

latex_documents = [
{{- range .Doc.LatexDocuments }}
    ({{ py .StartDoc }}, {{ py .TargetName }}, {{ py .Title }}, {{ py .Author }}, {{ py .DocumentClass }}),
{{- end }}
]

# -- Options for manual page output ---------------------------------------

man_pages = [
{{- range .Doc.ManPages }}
    ({{ py .StartDoc }}, {{ py .Name }}, {{ py .Description }}, {{ pylist .Authors }}, {{ .Section }}),
{{- end }}
]
`

var tmpl = template.Must(template.New("conf.py").Funcs(template.FuncMap{
	"py":     Quote,
	"pylist": quoteList,
	"pydict": quoteDict,
}).Parse(confTemplate))

// Quote renders s as a single-quoted Python string literal.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\x%02x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = Quote(s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func quoteDict(m map[string]string) string {
	if len(m) == 0 {
		return "{}"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = Quote(k) + ": " + Quote(m[k])
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// Write renders cfg to w. source names the settings the file was generated from.
func Write(w io.Writer, cfg *sphinx.Configuration, source string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data := struct {
		Source string
		Doc    sphinx.Document
	}{Source: source, Doc: cfg.Document()}
	if err := tmpl.Execute(w, data); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to render conf.py").Build()
	}
	return nil
}

// WriteFile renders cfg to path, replacing any existing file atomically.
func WriteFile(path string, cfg *sphinx.Configuration, source string) error {
	var buf bytes.Buffer
	if err := Write(&buf, cfg, source); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return writeErr(err, path)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return writeErr(err, path)
	}
	if err := tmp.Close(); err != nil {
		return writeErr(err, path)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return writeErr(err, path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return writeErr(err, path)
	}
	return nil
}

func writeErr(err error, path string) error {
	return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write conf.py").
		Fatal().
		WithContext("file", path).
		Build()
}
