package contrast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/color"
)

func TestBlackOnWhiteIsTwentyOne(t *testing.T) {
	t.Parallel()

	result := Evaluate("#000000", "#ffffff")
	require.InDelta(t, 21.0, result.Ratio, 0.005)
	require.True(t, result.MeetsAA)
	require.True(t, result.MeetsAAA)
	require.Equal(t, GradeAAA, result.Grade)
}

func TestIdenticalColorsHaveRatioOne(t *testing.T) {
	t.Parallel()

	result := Evaluate("rgb(120, 30, 200)", "rgb(120,30,200)")
	require.InDelta(t, 1.0, result.Ratio, 1e-9)
	require.Equal(t, GradeFail, result.Grade)
}

func TestRatioIsSymmetric(t *testing.T) {
	t.Parallel()

	colors := []string{"#000", "#fff", "#cccccc", "hsl(210, 50%, 40%)", "red", "rgba(10,200,30,0.5)"}
	for _, a := range colors {
		for _, b := range colors {
			assert.InDelta(t, Ratio(a, b), Ratio(b, a), 1e-12, "%s vs %s", a, b)
		}
	}
}

func TestUnparseableColorsFallBackByRole(t *testing.T) {
	t.Parallel()

	// foreground falls back to black, background to white
	require.InDelta(t, 21.0, Ratio("bad", "#fff"), 0.005)
	require.InDelta(t, 1.0, Ratio("#fff", "bad"), 1e-9)
	require.InDelta(t, 21.0, Ratio("bad", "also bad"), 0.005)
	require.InDelta(t, 1.0, Ratio("bad", "#000"), 1e-9)
	require.Equal(t, GradeAAA, Evaluate("", "").Grade)
}

func TestGradeBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		ratio float64
		want  Grade
	}{
		{ratio: 1, want: GradeFail},
		{ratio: 4.49, want: GradeFail},
		{ratio: 4.5, want: GradeAA},
		{ratio: 6.99, want: GradeAA},
		{ratio: 7, want: GradeAAA},
		{ratio: 21, want: GradeAAA},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, GradeFor(tc.ratio), "ratio %v", tc.ratio)
	}
}

func TestLightGrayOnWhiteFailsAA(t *testing.T) {
	t.Parallel()

	result := Evaluate("#cccccc", "#ffffff")
	require.Less(t, result.Ratio, ThresholdAA)
	require.False(t, result.MeetsAA)
	require.False(t, result.MeetsAAA)
	require.Equal(t, GradeFail, result.Grade)
}

func TestInvalidInputsFallBack(t *testing.T) {
	t.Parallel()

	// invalid foreground becomes black
	require.InDelta(t, 21.0, Ratio("javascript:alert(1)", "#fff"), 0.005)
	// invalid background becomes white
	require.InDelta(t, 21.0, Ratio("#000", "hsl(720,150%,50%)"), 0.005)
	// both invalid gives black on white
	require.InDelta(t, 21.0, Ratio("", ""), 0.005)
}

func TestRelativeLuminance(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 0.0, RelativeLuminance(color.RGBColor{}), 1e-12)
	require.InDelta(t, 1.0, RelativeLuminance(color.RGBColor{R: 255, G: 255, B: 255}), 1e-9)
	require.InDelta(t, 0.2126, RelativeLuminance(color.RGBColor{R: 255}), 1e-9)
	// low channel values take the linear branch
	require.InDelta(t, (10.0/255)/12.92*0.7152, RelativeLuminance(color.RGBColor{G: 10}), 1e-12)
}
