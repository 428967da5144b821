package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/loader"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func mustLoad(t *testing.T, path string) *loader.Document {
	t.Helper()
	doc, err := loader.LoadFile(path)
	require.NoError(t, err)

	return doc
}
