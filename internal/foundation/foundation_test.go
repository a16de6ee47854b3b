package foundation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docconf/internal/foundation/errors"
)

type color string

func TestNormalizer(t *testing.T) {
	n := NewNormalizer(map[string]color{"Red": "red", "crimson": "red", "blue": "blue"}, "blue")

	assert.Equal(t, color("red"), n.Normalize("  RED "))
	assert.Equal(t, color("red"), n.Normalize("Crimson"))
	assert.Equal(t, color("blue"), n.Normalize("green"))

	_, ok := n.Lookup("green")
	assert.False(t, ok)

	_, err := n.NormalizeWithError("green")
	require.Error(t, err)
	v, err := n.NormalizeWithError("blue")
	require.NoError(t, err)
	assert.Equal(t, color("blue"), v)
}

func TestValidatorChain(t *testing.T) {
	chain := NewValidatorChain(NoneOf("name", " \t", "must not contain whitespace")).
		Add(func(s string) ValidationResult {
			if s == "" {
				return Fail("name", "required", "must not be empty", nil)
			}
			return Valid()
		})

	assert.True(t, chain.Validate("fsmlite").Valid)
	assert.NoError(t, chain.Validate("fsmlite").ToError())

	res := chain.Validate("fsm lite")
	require.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "forbidden_chars", res.Errors[0].Code)

	err := res.ToError()
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
	ce, ok := errors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, "name", ce.Context()["field"])
	assert.Equal(t, "fsm lite", ce.Context()["value"])
	assert.Equal(t, "name: must not contain whitespace", ce.Message())
}

func TestCombineCollectsAll(t *testing.T) {
	res := Fail("a", "x", "first", nil).Combine(Valid()).Combine(Fail("b", "y", "second", nil))
	require.False(t, res.Valid)
	assert.Len(t, res.Errors, 2)
	assert.EqualError(t, res.Errors[1], "b: second")
}
