// Package autoconf extracts project versions from autoconf build-configuration
// sources.
//
// Only declarations of the shape NAME([component], [version], ...) are
// significant; everything else in the file is ignored. When a component is
// declared more than once, the last declaration in file order wins.
package autoconf
