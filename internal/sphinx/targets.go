package sphinx

// TargetKind enumerates the output formats produced from one configuration.
type TargetKind string

const (
	TargetWeb           TargetKind = "web"
	TargetTypesetManual TargetKind = "typeset-manual"
	TargetManPage       TargetKind = "man-page"
)

// DefaultManSection is the manual section for library documentation.
const DefaultManSection = 3

// Builder returns the sphinx-build builder name for the kind.
func (k TargetKind) Builder() string {
	switch k {
	case TargetWeb:
		return "html"
	case TargetTypesetManual:
		return "latex"
	case TargetManPage:
		return "man"
	default:
		return ""
	}
}

// ParseTargetKind accepts either a kind or a builder name.
func ParseTargetKind(s string) (TargetKind, bool) {
	for _, k := range AllTargetKinds() {
		if s == string(k) || s == k.Builder() {
			return k, true
		}
	}
	return "", false
}

// AllTargetKinds lists the kinds in render order.
func AllTargetKinds() []TargetKind {
	return []TargetKind{TargetWeb, TargetTypesetManual, TargetManPage}
}

// RenderTarget describes one output format. Identity fields are read through
// Meta so every target follows the same ProjectMetadata.
type RenderTarget struct {
	Kind        TargetKind
	Meta        *ProjectMetadata
	SourceStart string

	// DocumentClass is set for the typeset manual ("manual", "howto").
	DocumentClass string
	// Section is set for the man page.
	Section int
}

// Title is the output title.
func (t RenderTarget) Title() string {
	if t.Kind == TargetWeb {
		return t.Meta.Project
	}
	return t.Meta.DocumentationTitle()
}

// Authors lists the credited authors.
func (t RenderTarget) Authors() []string {
	return []string{t.Meta.Author}
}

// TargetName is the output file name of the typeset manual or the name of the man page.
func (t RenderTarget) TargetName() string {
	switch t.Kind {
	case TargetTypesetManual:
		return t.Meta.Project + ".tex"
	case TargetManPage:
		return t.Meta.Project
	default:
		return ""
	}
}

// RenderTargetSet holds one target per output format.
type RenderTargetSet struct {
	Web           RenderTarget
	TypesetManual RenderTarget
	ManPage       RenderTarget
}

// NewRenderTargets derives all three targets from meta.
func NewRenderTargets(meta *ProjectMetadata, masterDoc string) RenderTargetSet {
	return RenderTargetSet{
		Web: RenderTarget{
			Kind:        TargetWeb,
			Meta:        meta,
			SourceStart: masterDoc,
		},
		TypesetManual: RenderTarget{
			Kind:          TargetTypesetManual,
			Meta:          meta,
			SourceStart:   masterDoc,
			DocumentClass: "manual",
		},
		ManPage: RenderTarget{
			Kind:        TargetManPage,
			Meta:        meta,
			SourceStart: masterDoc,
			Section:     DefaultManSection,
		},
	}
}

// All returns the targets in render order.
func (s RenderTargetSet) All() []RenderTarget {
	return []RenderTarget{s.Web, s.TypesetManual, s.ManPage}
}

// Get returns the target of the given kind.
func (s RenderTargetSet) Get(kind TargetKind) (RenderTarget, bool) {
	for _, t := range s.All() {
		if t.Kind == kind {
			return t, true
		}
	}
	return RenderTarget{}, false
}
