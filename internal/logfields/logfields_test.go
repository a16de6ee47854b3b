package logfields

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"BuildID", KeyBuildID, "b1", BuildID("b1")},
		{"Project", KeyProject, "fsmlite", Project("fsmlite")},
		{"Component", KeyComponent, "mylib", Component("mylib")},
		{"Version", KeyVersion, "2.3.1", Version("2.3.1")},
		{"File", KeyFile, "configure.ac", File("configure.ac")},
		{"Command", KeyCommand, "doxygen", Command("doxygen")},
		{"Target", KeyTarget, "man-page", Target("man-page")},
		{"Category", KeyCategory, "extractor", Category("extractor")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.attrKey, c.attr.Key)
			assert.Equal(t, c.attrVal, c.attr.Value.String())
		})
	}
}

func TestNonStringHelpers(t *testing.T) {
	assert.True(t, Hosted(true).Value.Bool())
	assert.Equal(t, int64(3), ExitCode(3).Value.Int64())
	assert.InDelta(t, 1500.0, Duration(1500*time.Millisecond).Value.Float64(), 0.001)
	assert.Equal(t, "boom", Error(errors.New("boom")).Value.String())
	assert.Empty(t, Error(nil).Value.String())
}
