package autoconf

import (
	"fmt"
	"os"
	"regexp"

	ferrors "git.home.luguber.info/inful/docconf/internal/foundation/errors"
)

// DefaultMacro is the autoconf macro declaring a package name and version.
const DefaultMacro = "AC_INIT"

// declarationPattern captures the first two bracketed fields of a macro call.
// Trailing arguments up to the last closing parenthesis on the line are ignored.
// The separator class includes \v, which RE2's \s leaves out.
const declarationPattern = `\(\[(.*?)\],[\s\v]*\[(.*?)\].*\)`

var defaultResolver = NewResolver(DefaultMacro)

// VersionDeclaration is one component/version pair found in a build-configuration source.
type VersionDeclaration struct {
	Component string
	Version   string
}

// Resolver looks up component versions declared through a single macro.
type Resolver struct {
	macro string
	re    *regexp.Regexp
}

// NewResolver returns a Resolver for the given macro name. An empty macro selects AC_INIT.
func NewResolver(macro string) *Resolver {
	if macro == "" {
		macro = DefaultMacro
	}
	return &Resolver{
		macro: macro,
		re:    regexp.MustCompile(regexp.QuoteMeta(macro) + declarationPattern),
	}
}

// Macro returns the macro name this resolver matches.
func (r *Resolver) Macro() string { return r.macro }

// ParseDeclarations returns every declaration in text, in file order.
func (r *Resolver) ParseDeclarations(text string) []VersionDeclaration {
	matches := r.re.FindAllStringSubmatch(text, -1)
	decls := make([]VersionDeclaration, 0, len(matches))
	for _, m := range matches {
		decls = append(decls, VersionDeclaration{Component: m[1], Version: m[2]})
	}
	return decls
}

// Declarations maps component names to versions. Later declarations overwrite earlier ones.
func (r *Resolver) Declarations(text string) map[string]string {
	versions := make(map[string]string)
	for _, d := range r.ParseDeclarations(text) {
		versions[d.Component] = d.Version
	}
	return versions
}

// ResolveVersion reads path and returns the version declared for component.
//
// A missing or unreadable file yields a filesystem error wrapping the underlying
// *fs.PathError. A file without a declaration for component, including one with
// no parseable declarations at all, yields a not-found error wrapping
// ErrVersionNotFound. There is no fallback version.
func (r *Resolver) ResolveVersion(path, component string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to read build configuration").
			Fatal().
			WithContext("file", path).
			Build()
	}

	version, ok := r.Declarations(string(data))[component]
	if !ok {
		return "", ferrors.NotFoundError(fmt.Sprintf("no %s declaration for %q", r.macro, component)).
			WithCause(ErrVersionNotFound).
			WithContext("component", component).
			WithContext("file", path).
			Build()
	}
	return version, nil
}

// ResolveVersion resolves component's version from the AC_INIT declarations in path.
func ResolveVersion(path, component string) (string, error) {
	return defaultResolver.ResolveVersion(path, component)
}

// Declarations parses AC_INIT declarations from text.
func Declarations(text string) map[string]string {
	return defaultResolver.Declarations(text)
}
