package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext("file", "docconf.yaml").
			Build()

		assert.Equal(t, CategoryConfig, err.Category())
		assert.Equal(t, SeverityFatal, err.Severity())
		assert.Equal(t, "invalid configuration", err.Message())
		assert.Equal(t, "[config:fatal] invalid configuration", err.Error())

		assert.Equal(t, "docconf.yaml", err.Context()["file"])
	})

	t.Run("Cause survives classification", func(t *testing.T) {
		sentinel := stderrors.New("version not found")
		err := NotFoundError("lookup failed").WithCause(sentinel).Build()
		wrapped := fmt.Errorf("assemble: %w", err)

		assert.ErrorIs(t, wrapped, sentinel)
		assert.True(t, HasCategory(wrapped, CategoryNotFound))
		assert.Equal(t, CategoryNotFound, GetCategory(wrapped))
		assert.True(t, err.IsFatal())
	})

	t.Run("Path errors stay reachable", func(t *testing.T) {
		pathErr := &fs.PathError{Op: "open", Path: "missing", Err: fs.ErrNotExist}
		err := WrapError(pathErr, CategoryFileSystem, "read failed").Build()

		assert.ErrorIs(t, err, fs.ErrNotExist)
		var target *fs.PathError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, "missing", target.Path)
	})

	t.Run("Unclassified errors", func(t *testing.T) {
		err := stderrors.New("plain")
		_, ok := AsClassified(err)
		assert.False(t, ok)
		assert.Equal(t, CategoryInternal, GetCategory(err))
	})
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name     string
		builder  *ErrorBuilder
		category ErrorCategory
		severity ErrorSeverity
	}{
		{"ConfigError", ConfigError("test"), CategoryConfig, SeverityFatal},
		{"ValidationError", ValidationError("test"), CategoryValidation, SeverityFatal},
		{"NotFoundError", NotFoundError("test"), CategoryNotFound, SeverityFatal},
		{"FileSystemError", FileSystemError("test"), CategoryFileSystem, SeverityFatal},
		{"ExtractorError", ExtractorError("test"), CategoryExtractor, SeverityFatal},
		{"RenderError", RenderError("test"), CategoryRender, SeverityError},
		{"InternalError", InternalError("test"), CategoryInternal, SeverityFatal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.builder.Build()
			assert.Equal(t, tt.category, err.Category())
			assert.Equal(t, tt.severity, err.Severity())
		})
	}
}

