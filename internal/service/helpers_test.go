package service_test

import (
	"testing"

	"github.com/grachmannico95/fiscal-bridge/pkg/vault"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef"

func newVault(t *testing.T) *vault.Vault {
	t.Helper()
	v, err := vault.NewFromString(testKey)
	require.NoError(t, err)
	return v
}

func encrypt(t *testing.T, v *vault.Vault, plaintext string) string {
	t.Helper()
	enc, err := v.Encrypt(plaintext)
	require.NoError(t, err)
	return enc
}
