package svmlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_Basic(t *testing.T) {
	input := strings.Join([]string{
		"2286 1:0.5 3:0.25",
		"2287 2:1.0",
		"",
		"# full-line comment",
		"2288 1:0.1 2:0.2 4:0.3 # trailing comment",
	}, "\n")

	res, err := Parse(strings.NewReader(input), Options{NumFeatures: 4, OneBased: true})
	require.NoError(t, err)

	require.Equal(t, []float64{2286, 2287, 2288}, res.Targets)
	require.Equal(t, 3, res.Matrix.Rows)
	require.Equal(t, 4, res.Matrix.Cols)

	require.Equal(t, 0.5, res.Matrix.At(0, 0))
	require.Equal(t, 0.25, res.Matrix.At(0, 2))
	require.Equal(t, 1.0, res.Matrix.At(1, 1))
	require.Equal(t, 0.3, res.Matrix.At(2, 3))
}

func TestParse_ZeroBased(t *testing.T) {
	res, err := Parse(strings.NewReader("7 0:1.5 2:2.5"), Options{NumFeatures: 3})
	require.NoError(t, err)
	require.Equal(t, 1.5, res.Matrix.At(0, 0))
	require.Equal(t, 2.5, res.Matrix.At(0, 2))
}

func TestParse_QidIgnored(t *testing.T) {
	res, err := Parse(strings.NewReader("1 qid:4 1:0.5"), Options{NumFeatures: 2, OneBased: true})
	require.NoError(t, err)
	require.Equal(t, 1, res.Matrix.NNZ())
	require.Equal(t, 0.5, res.Matrix.At(0, 0))
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name, input string
	}{
		{"bad target", "x 1:0.5"},
		{"bad pair", "1 nocolon"},
		{"bad index", "1 a:0.5"},
		{"bad value", "1 1:abc"},
		{"index out of range", "1 9:0.5"},
		{"indices not ascending", "1 2:0.5 1:0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), Options{NumFeatures: 4, OneBased: true})
			require.Error(t, err)
		})
	}
}

func TestParse_RequiresFeatureCount(t *testing.T) {
	_, err := Parse(strings.NewReader("1 1:0.5"), Options{})
	require.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	res, err := Parse(strings.NewReader(""), Options{NumFeatures: 2})
	require.NoError(t, err)
	require.Equal(t, 0, res.Matrix.Rows)
	require.Empty(t, res.Targets)
}
