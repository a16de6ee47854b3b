package sphinx

// ExtractorBridge points breathe at doxygen's XML output. The key must equal
// ProjectMetadata.Project for cross-references to resolve.
type ExtractorBridge struct {
	Projects       map[string]string
	DefaultProject string
}

// NewExtractorBridge maps project to the extractor output directory.
func NewExtractorBridge(project, outputDir string) ExtractorBridge {
	return ExtractorBridge{
		Projects:       map[string]string{project: outputDir},
		DefaultProject: project,
	}
}
