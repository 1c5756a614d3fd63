package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seuros/cypher-dsl/src/cypher"
)

func TestLoadRenderOptions(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		opts, err := loadRenderOptions("")
		require.NoError(t, err)
		require.Equal(t, cypher.DefaultRenderOptions(), opts)
	})

	t.Run("file overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cyb.yaml")
		require.NoError(t, os.WriteFile(path, []byte("indent: \"\\t\"\nbare_call: true\n"), 0o644))

		opts, err := loadRenderOptions(path)
		require.NoError(t, err)
		require.Equal(t, "\t", opts.Indent)
		require.True(t, opts.BareCall)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cyb.yaml")
		require.NoError(t, os.WriteFile(path, []byte("indent: [\n"), 0o644))

		_, err := loadRenderOptions(path)
		require.Error(t, err)
	})
}

func TestBuildDemoQuery(t *testing.T) {
	q, err := buildDemoQuery()
	require.NoError(t, err)

	out, err := cypher.Render(q)
	require.NoError(t, err)
	require.Equal(t,
		"MATCH (p:Person)-[:KNOWS]->(f:Person)\nWHERE f.age >= $min_age\nRETURN p.name AS person, count(f) AS friends\nORDER BY friends DESC\nLIMIT 10",
		out)
}
