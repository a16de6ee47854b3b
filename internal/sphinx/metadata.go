package sphinx

import "fmt"

// ProjectMetadata identifies the documented project.
type ProjectMetadata struct {
	Project   string `json:"project" yaml:"project"`
	Author    string `json:"author" yaml:"author"`
	Version   string `json:"version" yaml:"version"`
	Release   string `json:"release" yaml:"release"`
	Copyright string `json:"copyright" yaml:"copyright"`
}

// NewProjectMetadata composes metadata with release equal to version and the
// copyright line "<years>, <author>".
func NewProjectMetadata(project, author, years, version string) *ProjectMetadata {
	return &ProjectMetadata{
		Project:   project,
		Author:    author,
		Version:   version,
		Release:   version,
		Copyright: Copyright(years, author),
	}
}

// Copyright formats a copyright notice.
func Copyright(years, holder string) string {
	return fmt.Sprintf("%s, %s", years, holder)
}

// DocumentationTitle is the title shared by the typeset manual and the man page.
func (m *ProjectMetadata) DocumentationTitle() string {
	return m.Project + " Documentation"
}
