package markers

import (
	"math"
	"testing"

	"github.com/ridgelab/fpview/pkg/artifacts"
	"github.com/ridgelab/fpview/pkg/colors"
	"github.com/ridgelab/fpview/pkg/overlay"
)

func TestMarkMinutiaColors(t *testing.T) {
	ending := artifacts.Minutia{Position: artifacts.Point{X: 5, Y: 5}, Type: artifacts.Ending}
	bifurcation := artifacts.Minutia{Position: artifacts.Point{X: 5, Y: 5}, Type: artifacts.Bifurcation}

	e := MarkMinutia(ending).(overlay.Rotated)
	b := MarkMinutia(bifurcation).(overlay.Rotated)
	if got := e.Markers[0].(overlay.Circle).Stroke; got != colors.Ending {
		t.Errorf("ending stroke = %q, want %q", got, colors.Ending)
	}
	if got := b.Markers[0].(overlay.Circle).Stroke; got != colors.Bifurcation {
		t.Errorf("bifurcation stroke = %q, want %q", got, colors.Bifurcation)
	}
}

func TestMarkMinutiaRotation(t *testing.T) {
	m := artifacts.Minutia{
		Position:  artifacts.Point{X: 2, Y: 3},
		Direction: math.Pi / 2,
		Type:      artifacts.Ending,
	}
	r := MarkMinutia(m).(overlay.Rotated)
	if r.X != 2.5 || r.Y != 3.5 {
		t.Errorf("marker at %v,%v, want pixel center 2.5,3.5", r.X, r.Y)
	}
	if math.Abs(r.Degrees-90) > 1e-9 {
		t.Errorf("rotation = %v degrees, want 90", r.Degrees)
	}
	// The tick starts at the circle edge and points outward.
	tick := r.Markers[1].(overlay.Line)
	if tick.X1 != minutiaRadius || tick.X2 != minutiaTickEnd || tick.Y1 != 0 || tick.Y2 != 0 {
		t.Errorf("tick = (%v,%v)-(%v,%v), want (%v,0)-(%v,0)",
			tick.X1, tick.Y1, tick.X2, tick.Y2, minutiaRadius, minutiaTickEnd)
	}
}

func TestTemplateDiffByPosition(t *testing.T) {
	previous := &artifacts.Template{Minutiae: []artifacts.Minutia{
		{Position: artifacts.Point{X: 1, Y: 1}, Type: artifacts.Ending},
		{Position: artifacts.Point{X: 2, Y: 2}, Type: artifacts.Ending},
	}}
	next := &artifacts.Template{Minutiae: []artifacts.Minutia{
		// Same position, different type: still corresponds.
		{Position: artifacts.Point{X: 1, Y: 1}, Type: artifacts.Bifurcation},
	}}

	result := TemplateDiff(previous, next)
	if len(result) != 2 {
		t.Fatalf("got %d markers, want 2 (1 removed + 1 current)", len(result))
	}
	removed := result[0].(overlay.Rotated)
	if got := removed.Markers[0].(overlay.Circle).Stroke; got != colors.MinutiaRemoved {
		t.Errorf("removed marker stroke = %q, want %q", got, colors.MinutiaRemoved)
	}
}

func TestTemplateDiffSelf(t *testing.T) {
	tpl := &artifacts.Template{Minutiae: []artifacts.Minutia{
		{Position: artifacts.Point{X: 4, Y: 4}, Type: artifacts.Ending},
	}}
	result := TemplateDiff(tpl, tpl)
	for _, m := range result {
		stroke := m.(overlay.Rotated).Markers[0].(overlay.Circle).Stroke
		if stroke == colors.MinutiaRemoved {
			t.Error("diff(x,x) produced a removed marker")
		}
	}
}

func TestMinutiaPositions(t *testing.T) {
	tpl := &artifacts.Template{Minutiae: []artifacts.Minutia{
		{Position: artifacts.Point{X: 7, Y: 9}, Type: artifacts.Ending},
	}}
	result := MinutiaPositions(tpl)
	dot := result[0].(overlay.Circle)
	if dot.CX != 7.5 || dot.CY != 9.5 || dot.R != positionRadius || dot.Fill != colors.PositionDot {
		t.Errorf("position dot = %+v", dot)
	}
}
