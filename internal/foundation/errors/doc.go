// Package errors provides the classified error primitives used across docconf.
//
// A ClassifiedError carries a category, a severity and structured context in
// addition to its message and cause. Categories drive CLI exit codes through
// CLIErrorAdapter; causes stay reachable through errors.Is / errors.As so
// subsystem sentinels (for example autoconf.ErrVersionNotFound) survive
// classification.
//
// Example usage:
//
//	err := errors.NotFoundError("version declaration not found").
//		WithContext("component", "fsmlite").
//		WithContext("file", "../configure.ac").
//		WithCause(autoconf.ErrVersionNotFound).
//		Build()
package errors
