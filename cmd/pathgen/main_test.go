package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/cli"
	"github.com/katalvlaran/pathfinder/loader"
	"github.com/katalvlaran/pathfinder/logging"
	"github.com/katalvlaran/pathfinder/router"
)

func TestRun_GeneratesVerifiableFixtures(t *testing.T) {
	svc := router.New(router.WithLogger(logging.Discard()))
	for _, topo := range []string{"path", "cycle", "star", "complete", "grid", "sparse", "random"} {
		t.Run(topo, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, run(&out, &bytes.Buffer{}, []string{"-topology", topo, "-seed", "11"}))

			doc, err := loader.Parse(strings.NewReader(out.String()))
			require.NoError(t, err)
			v, err := svc.Verify(context.Background(), doc)
			require.NoError(t, err)
			assert.True(t, v.OK)
		})
	}
}

func TestRun_Grid(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, &bytes.Buffer{}, []string{"-rows", "2", "-cols", "2", "-min-weight", "1", "-max-weight", "1"})
	require.NoError(t, err)

	want := "# Nodes\n1\n2\n3\n4\n# Edges\n1 2 1\n1 3 1\n2 4 1\n3 4 1\n# ShortestPath\n1 2 4\n"
	assert.Equal(t, want, out.String())
}

func TestRun_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	args := []string{"-topology", "random", "-n", "30", "-m", "60", "-seed", "5"}
	require.NoError(t, run(&a, &bytes.Buffer{}, args))
	require.NoError(t, run(&b, &bytes.Buffer{}, args))
	assert.Equal(t, a.String(), b.String())
}

func TestRun_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.txt")
	require.NoError(t, run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-topology", "cycle", "-n", "5", "-o", path}))

	doc, err := loader.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, doc.Graph.Order())
}

func TestRun_Errors(t *testing.T) {
	cases := [][]string{
		{"-topology", "torus"},
		{"-topology", "cycle", "-n", "2"},
		{"-topology", "sparse", "-p", "2"},
		{"-min-weight", "5", "-max-weight", "1"},
		{"-bogus"},
	}
	for _, args := range cases {
		err := run(&bytes.Buffer{}, &bytes.Buffer{}, args)
		var ee *cli.ExitError
		require.True(t, errors.As(err, &ee), "%v", args)
		assert.Equal(t, 2, ee.Code, "%v", args)
	}
}
