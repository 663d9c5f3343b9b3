package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	require.True(t, IsValidEmail("user@example.com"))
	require.False(t, IsValidEmail(""))
	require.False(t, IsValidEmail("not-an-email"))
	require.False(t, IsValidEmail("user@nodot"))
}

func TestIsValidUsername(t *testing.T) {
	require.True(t, IsValidUsername("alice_42"))
	require.False(t, IsValidUsername("ab"))
	require.False(t, IsValidUsername("has spaces"))
	require.False(t, IsValidUsername(""))
}

func TestIsValidTag(t *testing.T) {
	require.True(t, IsValidTag("history"))
	require.True(t, IsValidTag("world war 2"))
	require.True(t, IsValidTag("sci-fi"))
	require.False(t, IsValidTag(""))
	require.False(t, IsValidTag("History")) // must be lowercase
	require.False(t, IsValidTag("-leading"))
}
