package sphinx

import (
	"fmt"
	"maps"
	"slices"

	ferrors "git.home.luguber.info/inful/docconf/internal/foundation/errors"
)

// DefaultExtensions are the Sphinx extensions enabled for C++ API documentation.
var DefaultExtensions = []string{
	"sphinx.ext.autodoc",
	"sphinx.ext.todo",
	"sphinx.ext.viewcode",
	"breathe",
}

// Configuration is the complete value consumed by the rendering engine.
type Configuration struct {
	Metadata      *ProjectMetadata
	MasterDoc     string
	Extensions    []string
	Bridge        ExtractorBridge
	LatexElements map[string]string
	Targets       RenderTargetSet
}

// Validate checks the identity invariants between metadata, bridge and targets.
func (c *Configuration) Validate() error {
	if c == nil || c.Metadata == nil {
		return ferrors.ValidationError("configuration has no project metadata").Build()
	}
	m := c.Metadata
	if m.Project == "" {
		return ferrors.ValidationError("project name is empty").Build()
	}
	if m.Release != m.Version {
		return ferrors.ValidationError("release differs from version").
			WithContext("version", m.Version).
			WithContext("release", m.Release).
			Build()
	}
	if c.Bridge.DefaultProject != m.Project {
		return ferrors.ValidationError("breathe default project does not match project").
			WithContext("project", m.Project).
			WithContext("default_project", c.Bridge.DefaultProject).
			Build()
	}
	if _, ok := c.Bridge.Projects[m.Project]; !ok {
		return ferrors.ValidationError("breathe projects missing entry for project").
			WithContext("project", m.Project).
			Build()
	}
	for _, t := range c.Targets.All() {
		if t.Meta != m {
			return ferrors.ValidationError(fmt.Sprintf("%s target does not share project metadata", t.Kind)).Build()
		}
	}
	return nil
}

// Document is the flat, engine-facing form of a Configuration using the
// engine's own setting names.
type Document struct {
	Project               string            `json:"project" yaml:"project" toml:"project"`
	Author                string            `json:"author" yaml:"author" toml:"author"`
	Version               string            `json:"version" yaml:"version" toml:"version"`
	Release               string            `json:"release" yaml:"release" toml:"release"`
	Copyright             string            `json:"copyright" yaml:"copyright" toml:"copyright"`
	MasterDoc             string            `json:"master_doc" yaml:"master_doc" toml:"master_doc"`
	Extensions            []string          `json:"extensions" yaml:"extensions" toml:"extensions"`
	BreatheProjects       map[string]string `json:"breathe_projects" yaml:"breathe_projects" toml:"breathe_projects"`
	BreatheDefaultProject string            `json:"breathe_default_project" yaml:"breathe_default_project" toml:"breathe_default_project"`
	LatexElements         map[string]string `json:"latex_elements" yaml:"latex_elements" toml:"latex_elements"`
	LatexDocuments        []LatexDocument   `json:"latex_documents" yaml:"latex_documents" toml:"latex_documents"`
	ManPages              []ManPage         `json:"man_pages" yaml:"man_pages" toml:"man_pages"`
}

// LatexDocument is one latex_documents tuple:
// (source start file, target name, title, author, document class).
type LatexDocument struct {
	StartDoc      string `json:"startdocname" yaml:"startdocname" toml:"startdocname"`
	TargetName    string `json:"targetname" yaml:"targetname" toml:"targetname"`
	Title         string `json:"title" yaml:"title" toml:"title"`
	Author        string `json:"author" yaml:"author" toml:"author"`
	DocumentClass string `json:"theme" yaml:"theme" toml:"theme"`
}

// ManPage is one man_pages tuple:
// (source start file, name, description, authors, manual section).
type ManPage struct {
	StartDoc    string   `json:"startdocname" yaml:"startdocname" toml:"startdocname"`
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Description string   `json:"description" yaml:"description" toml:"description"`
	Authors     []string `json:"authors" yaml:"authors" toml:"authors"`
	Section     int      `json:"section" yaml:"section" toml:"section"`
}

// Document flattens the configuration.
func (c *Configuration) Document() Document {
	latex := c.Targets.TypesetManual
	man := c.Targets.ManPage
	elements := c.LatexElements
	if elements == nil {
		elements = map[string]string{}
	}
	return Document{
		Project:               c.Metadata.Project,
		Author:                c.Metadata.Author,
		Version:               c.Metadata.Version,
		Release:               c.Metadata.Release,
		Copyright:             c.Metadata.Copyright,
		MasterDoc:             c.MasterDoc,
		Extensions:            slices.Clone(c.Extensions),
		BreatheProjects:       maps.Clone(c.Bridge.Projects),
		BreatheDefaultProject: c.Bridge.DefaultProject,
		LatexElements:         maps.Clone(elements),
		LatexDocuments: []LatexDocument{{
			StartDoc:      latex.SourceStart,
			TargetName:    latex.TargetName(),
			Title:         latex.Title(),
			Author:        latex.Meta.Author,
			DocumentClass: latex.DocumentClass,
		}},
		ManPages: []ManPage{{
			StartDoc:    man.SourceStart,
			Name:        man.TargetName(),
			Description: man.Title(),
			Authors:     man.Authors(),
			Section:     man.Section,
		}},
	}
}
