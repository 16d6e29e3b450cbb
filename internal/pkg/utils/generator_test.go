package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	otp, err := GenerateOTP(6)
	require.NoError(t, err)
	assert.Len(t, otp, 6)
	for _, c := range otp {
		assert.True(t, c >= '0' && c <= '9', "otp should contain digits only, got %q", otp)
	}
}

func TestGenerateOTP_Supersede(t *testing.T) {
	first, err := GenerateOTP(6)
	require.NoError(t, err)
	second, err := GenerateOTP(6)
	require.NoError(t, err)

	// Not a hard guarantee, but a 1-in-a-million collision failing the
	// suite would itself be worth investigating.
	assert.NotEqual(t, first, second)
}

func TestGenerateResetToken(t *testing.T) {
	token, err := GenerateResetToken()
	require.NoError(t, err)
	assert.Len(t, token, 40)
	assert.Equal(t, strings.ToLower(token), token, "token should be lowercase hex")
}

func TestGenerateObjectName(t *testing.T) {
	name := GenerateObjectName("cases", "nakedEyePhoto", "Lesion.JPG")
	assert.True(t, strings.HasPrefix(name, "cases/nakedEyePhoto_"))
	assert.True(t, strings.HasSuffix(name, ".jpg"), "extension should be lowered, got %s", name)

	other := GenerateObjectName("reports", "annotated", "annotated.png")
	assert.True(t, strings.HasPrefix(other, "reports/annotated_"))
	assert.True(t, strings.HasSuffix(other, ".png"))
}
