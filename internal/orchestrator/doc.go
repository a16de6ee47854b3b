// Package orchestrator assembles the rendering engine's configuration.
//
// Assembly is a straight-line routine run once per documentation build:
//
//  1. detect a hosted documentation build from the environment signal;
//  2. when hosted, run the native-API extractor synchronously, once;
//  3. resolve the project version from the autoconf source;
//  4. map the project to the extractor output for cross-references;
//  5. derive the web, typeset-manual and man-page targets from one metadata value.
//
// There are no retries. Any failure aborts assembly and is returned to the caller.
package orchestrator
