package osil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOptions(t *testing.T) {
	cfg := defaultSolveConfig()
	WithInitialValues([]float64{0, 1.5, 0})(cfg)
	WithSolverOption("outputLevel", "2")(cfg)
	WithTimeLimit(60)(cfg)

	doc, err := buildOptions(cfg, 3)
	require.NoError(t, err)

	require.NotNil(t, doc.InitialValues)
	assert.Equal(t, 1, doc.InitialValues.NumberOfVar, "zero warm-start entries must be omitted")
	assert.Equal(t, []osolVar{{Idx: 1, Value: "1.5"}}, doc.InitialValues.Var)

	require.NotNil(t, doc.SolverOptions)
	assert.Equal(t, 2, doc.SolverOptions.NumberOfSolverOptions)
	assert.Equal(t, []osolSolverOption{
		{Name: "maxTime", Value: "60"},
		{Name: "outputLevel", Value: "2"},
	}, doc.SolverOptions.SolverOption, "options must be written in name order")
}

func TestBuildOptionsEmpty(t *testing.T) {
	doc, err := buildOptions(defaultSolveConfig(), 2)
	require.NoError(t, err)
	assert.Nil(t, doc.InitialValues)
	assert.Nil(t, doc.SolverOptions)
}

func TestBuildOptionsDimensionMismatch(t *testing.T) {
	cfg := defaultSolveConfig()
	WithInitialValues([]float64{1, 2})(cfg)

	var dimErr *DimensionError
	_, err := buildOptions(cfg, 3)
	require.ErrorAs(t, err, &dimErr)
}

func TestWriteOptions(t *testing.T) {
	cfg := defaultSolveConfig()
	WithInitialValues([]float64{2, 0})(cfg)
	WithSolverOption("maxIterations", "500")(cfg)

	var buf bytes.Buffer
	require.NoError(t, writeOptions(&buf, cfg, 2))

	out := buf.String()
	for _, want := range []string{
		`<osol>`,
		`<var idx="0" value="2">`,
		`<solverOption name="maxIterations" value="500">`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("options document missing %s\n%s", want, out)
		}
	}
}
