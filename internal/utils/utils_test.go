package utils

import (
	"FoodShare-Backend/domain"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("DB_HOST: db.internal\nAPP_PORT: \"8080\"\nEXPIRY_SCAN_ENABLED: true\n"), 0o600))
	require.NoError(t, LoadConfigFile(path))

	assert.Equal(t, "db.internal", GetConfig("DB_HOST"))
	assert.True(t, GetConfigBool("EXPIRY_SCAN_ENABLED"))
	assert.False(t, GetConfigBool("MAIL_ENABLED"))

	t.Setenv("APP_PORT", "9090")
	assert.Equal(t, "9090", GetConfig("APP_PORT"))
	assert.Equal(t, "", GetConfig("NO_SUCH_KEY"))
}

func TestPhoneValidation(t *testing.T) {
	v := NewValidator()
	cases := map[string]bool{
		"+62 812 3456 7890": true,
		"(021) 555-0199":    true,
		"12345":             false,
		"call me maybe":     false,
	}
	for phone, ok := range cases {
		err := v.Var(phone, "phone")
		assert.Equal(t, ok, err == nil, phone)
	}
}

func TestFieldErrorsUseJSONNames(t *testing.T) {
	v := NewValidator()
	err := v.Struct(domain.RegisterRequest{
		Email:           "nope",
		Password:        "secret1",
		PasswordConfirm: "secret2",
		Role:            "Chef",
	})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, []string{"Enter a valid email address."}, fields["email"])
	assert.Equal(t, []string{"This field is required."}, fields["name"])
	assert.Equal(t, []string{"Must match Password."}, fields["password_confirm"])
	assert.Contains(t, fields, "role")
	assert.Nil(t, FieldErrors(os.ErrNotExist))
}
