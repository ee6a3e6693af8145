package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetTokenRoundTrip(t *testing.T) {
	token, err := GenerateResetToken("customer", 42)
	require.NoError(t, err)

	userType, userID, err := ParseResetToken(token)
	require.NoError(t, err)
	assert.Equal(t, "customer", userType)
	assert.EqualValues(t, 42, userID)
}

func TestResetTokenRejectsUnknownUserType(t *testing.T) {
	_, err := GenerateResetToken("employee", 1)
	assert.Error(t, err)
}

func TestParseResetTokenRejectsGarbage(t *testing.T) {
	_, _, err := ParseResetToken("not.a.token")
	assert.Error(t, err)
}

func TestParseResetTokenRejectsTamperedSignature(t *testing.T) {
	token, err := GenerateResetToken("admin", 7)
	require.NoError(t, err)

	_, _, err = ParseResetToken(token + "x")
	assert.Error(t, err)
}
