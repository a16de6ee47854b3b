package environment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHosted(t *testing.T) {
	tests := []struct {
		name     string
		env      View
		expected bool
	}{
		{"sentinel value", Map{"READTHEDOCS": "True"}, true},
		{"unset", Map{}, false},
		{"lowercase true", Map{"READTHEDOCS": "true"}, false},
		{"numeric", Map{"READTHEDOCS": "1"}, false},
		{"empty", Map{"READTHEDOCS": ""}, false},
		{"nil view", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsHosted(tt.env, ReadTheDocs))
		})
	}

	assert.False(t, IsHosted(Map{"": ""}, Signal{}))
	assert.True(t, IsHosted(Map{"CI_DOCS": "yes"}, Signal{Name: "CI_DOCS", Sentinel: "yes"}))
}

func TestOSLookup(t *testing.T) {
	t.Setenv("DOCCONF_TEST_SIGNAL", "True")
	v, ok := OS{}.Lookup("DOCCONF_TEST_SIGNAL")
	assert.True(t, ok)
	assert.Equal(t, "True", v)
	assert.True(t, IsHosted(OS{}, Signal{Name: "DOCCONF_TEST_SIGNAL", Sentinel: "True"}))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DOCCONF_DOTENV_NEW=from-file\nDOCCONF_DOTENV_SET=from-file\n"), 0o600))

	t.Setenv("DOCCONF_DOTENV_SET", "from-process")
	t.Setenv("DOCCONF_DOTENV_NEW", "")
	require.NoError(t, os.Unsetenv("DOCCONF_DOTENV_NEW"))

	loaded, err := LoadDotEnv(filepath.Join(dir, "missing.env"), envFile)
	require.NoError(t, err)
	assert.Equal(t, []string{envFile}, loaded)
	assert.Equal(t, "from-file", os.Getenv("DOCCONF_DOTENV_NEW"))
	assert.Equal(t, "from-process", os.Getenv("DOCCONF_DOTENV_SET"))
}
