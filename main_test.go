package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"streammax/content"
)

const brokenCatalog = `
plans:
  - name: Basic
    price: "$9.99"
    period: /month
    popular: true
    variant: glass
  - name: Basic
    price: "$19.99"
    period: /month
    popular: true
    variant: premium
`

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func runCatalog(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{"--env-file=" + filepath.Join(t.TempDir(), "none.env"), "catalog"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCatalogCommand_Default(t *testing.T) {
	t.Setenv("CATALOG_FILE", "")
	t.Setenv("EMAIL_PROVIDER", "sendgrid")

	out, err := runCatalog(t, "--validate")

	require.NoError(t, err)
	assert.Contains(t, out, "StreamMax IPTV")
	assert.Contains(t, out, "Premium")
	assert.Contains(t, out, "(most popular)")
	assert.Contains(t, out, "Catalog OK")
}

func TestCatalogCommand_InvalidFile(t *testing.T) {
	path := writeCatalog(t, brokenCatalog)

	out, err := runCatalog(t, "--file", path)
	require.NoError(t, err, "printing alone does not validate")
	assert.NotContains(t, out, "Catalog OK")

	_, err = runCatalog(t, "--file", path, "--validate")
	assert.ErrorIs(t, err, content.ErrInvalidCatalog)
}

func TestLoadCatalog_Strictness(t *testing.T) {
	path := writeCatalog(t, brokenCatalog)

	_, err := loadCatalog(path, true, zap.NewNop())
	assert.ErrorIs(t, err, content.ErrInvalidCatalog)

	core, logs := observer.New(zap.WarnLevel)
	c, err := loadCatalog(path, false, zap.New(core))
	require.NoError(t, err)
	assert.Len(t, c.Plans(), 2)
	assert.Equal(t, 1, logs.FilterMessage("serving catalog with problems").Len())
}
