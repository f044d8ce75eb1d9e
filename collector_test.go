package equations

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFinishVariadic(t *testing.T) {
	cases := []struct {
		name   string
		op     Kind
		params []float32
		want   float32
	}{
		{"min", KindMin, []float32{3, 1, 2}, 1},
		{"min negative", KindMin, []float32{3, -1, 2}, -1},
		{"max", KindMax, []float32{3, 1, 2}, 3},
		{"avg", KindAvg, []float32{1, 2, 3, 4, 5}, 3},
		{"avg single", KindAvg, []float32{7}, 7},
		{"med odd", KindMed, []float32{5, 1, 3}, 3},
		{"med even", KindMed, []float32{4, 1, 3, 2}, 2.5},
		{"mode single winner", KindMode, []float32{1, 2, 2, 3}, 2},
		{"mode multimodal", KindMode, []float32{1, 1, 3, 3}, 2},
		{"choice", KindChoice, []float32{5, 2}, 10},
		{"choice k over n", KindChoice, []float32{2, 5}, 0},
		{"choice identity", KindChoice, []float32{20, 0}, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := finishVariadic(c.op, c.params)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestModeUniformIsNaN(t *testing.T) {
	v, err := finishVariadic(KindMode, []float32{1, 2, 3})
	require.NoError(t, err)
	require.True(t, math.IsNaN(float64(v)))
}

// Multimodal averaging follows first-occurrence order, not map order, so
// the result is identical across runs.
func TestModeDeterministic(t *testing.T) {
	params := []float32{5, 5, 1, 1, 9, 9, 3, 3}
	want, err := finishVariadic(KindMode, params)
	require.NoError(t, err)
	require.Equal(t, float32(4.5), want)
	for i := 0; i < 100; i++ {
		got, err := finishVariadic(KindMode, params)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestVariadicErrors(t *testing.T) {
	_, err := finishVariadic(KindMin, nil)
	require.Error(t, err)
	var under *UnderflowError
	require.ErrorAs(t, err, &under)

	var choice *ChoiceError
	_, err = finishVariadic(KindChoice, []float32{1})
	require.ErrorAs(t, err, &choice)
	_, err = finishVariadic(KindChoice, []float32{2.5, 1})
	require.ErrorAs(t, err, &choice)
	_, err = finishVariadic(KindChoice, []float32{-1, 1})
	require.ErrorAs(t, err, &choice)
}

func TestCollectorEvaluatesXTerms(t *testing.T) {
	var c paramCollector
	res, _, err := c.step(Token{Kind: KindMax}, 3)
	require.NoError(t, err)
	require.Equal(t, collectConsumed, res)
	res, _, err = c.step(x(2, 2), 3) // 2*3^2 = 18
	require.NoError(t, err)
	require.Equal(t, collectConsumed, res)
	res, _, err = c.step(num(5), 3)
	require.NoError(t, err)
	require.Equal(t, collectConsumed, res)
	res, v, err := c.step(tk(KindEndMax), 3)
	require.NoError(t, err)
	require.Equal(t, collectDone, res)
	require.Equal(t, float32(18), v)
}
