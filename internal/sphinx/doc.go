// Package sphinx models the configuration value handed to the Sphinx
// rendering engine: project metadata, the breathe bridge to doxygen output and
// one render target per output format.
//
// A Configuration is built once per documentation build and is read-only
// afterwards. Every RenderTarget points at the Configuration's single
// ProjectMetadata so the three outputs cannot disagree on project identity.
package sphinx
