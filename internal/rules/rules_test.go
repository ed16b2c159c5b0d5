package rules

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/secretscan/pkg/secretscan"
)

func TestDefault_Table(t *testing.T) {
	set := Default()
	require.Equal(t, 3, set.Len())

	got := set.Rules()
	assert.Equal(t, "aws_key", got[0].Name)
	assert.Equal(t, "AKIA", got[0].Needle)
	assert.True(t, got[0].CaseSensitive)

	assert.Equal(t, "password", got[1].Name)
	assert.False(t, got[1].CaseSensitive)

	assert.Equal(t, "secret", got[2].Name)
	assert.False(t, got[2].CaseSensitive)

	for _, r := range got {
		assert.NotEmpty(t, r.Needle, "rule %s", r.Name)
		assert.NotEmpty(t, r.Description, "rule %s", r.Name)
	}
}

func TestRules_ReturnsCopy(t *testing.T) {
	set := Default()
	got := set.Rules()
	got[0].Needle = "mutated"

	r, ok := set.Lookup("aws_key")
	require.True(t, ok)
	assert.Equal(t, "AKIA", r.Needle)
}

func TestNewSet_Validation(t *testing.T) {
	tests := []struct {
		name  string
		rules []secretscan.Rule
	}{
		{"empty needle", []secretscan.Rule{{Name: "x"}}},
		{"empty name", []secretscan.Rule{{Needle: "x"}}},
		{"duplicate name", []secretscan.Rule{{Name: "x", Needle: "a"}, {Name: "x", Needle: "b"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSet(tt.rules...)
			assert.True(t, errors.Is(err, secretscan.ErrInvalidRule), "got %v", err)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := Default().Lookup("nope")
	assert.False(t, ok)
}
