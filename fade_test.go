package ember

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestFadeOutLinear(t *testing.T) {
	env, _ := testEnv()
	g := NewGenerator(nil, "spark", For(2))
	g.SetFadeOut(1, ease.Linear)
	p, _ := g.Activate(env)

	p.Update(1.0) // fade window starts here
	if a := p.State().Color.A; a != 1 {
		t.Errorf("alpha at fade start = %v, want 1", a)
	}
	p.Update(0.5) // halfway through the fade
	if a := p.State().Color.A; math.Abs(a-0.5) > 1e-6 {
		t.Errorf("alpha mid-fade = %v, want 0.5", a)
	}
	p.Update(0.4)
	if a := p.State().Color.A; math.Abs(a-0.1) > 1e-6 {
		t.Errorf("alpha near end of fade = %v, want 0.1", a)
	}
}

func TestFadeOutScalesConfiguredAlpha(t *testing.T) {
	env, _ := testEnv()
	g := NewGenerator(nil, "spark", For(2))
	g.SetAlpha(FixedParam(0.8))
	g.SetFadeOut(1, ease.Linear)
	p, _ := g.Activate(env)

	p.Update(1.5)
	if a := p.State().Color.A; math.Abs(a-0.4) > 1e-6 {
		t.Errorf("alpha = %v, want configured 0.8 scaled to 0.4 mid-fade", a)
	}
}

func TestFadeOutNilEaseDefaultsLinear(t *testing.T) {
	env, _ := testEnv()
	g := NewGenerator(nil, "spark", For(1))
	g.SetFadeOut(1, nil)
	p, _ := g.Activate(env)
	p.Update(0.5)
	if a := p.State().Color.A; math.Abs(a-0.5) > 1e-6 {
		t.Errorf("alpha = %v, want linear default 0.5", a)
	}
}

func TestNoFadeWithoutConfiguration(t *testing.T) {
	env, _ := testEnv()
	g := NewGenerator(nil, "spark", For(2))
	p, _ := g.Activate(env)
	p.Update(1.9)
	if a := p.State().Color.A; a != 1 {
		t.Errorf("alpha = %v, want 1 without a configured fade", a)
	}
}

func TestFadeIgnoredOnInfiniteDuration(t *testing.T) {
	env, _ := testEnv()
	g := NewGenerator(nil, "spark", Forever())
	g.SetFadeOut(1, ease.Linear)
	p, _ := g.Activate(env)
	p.Update(100)
	if a := p.State().Color.A; a != 1 {
		t.Errorf("alpha = %v, want 1; fade has no window on infinite duration", a)
	}
}

func TestEaseByName(t *testing.T) {
	for _, name := range []string{"", "linear", "out-quad", "in-out-cubic", "in-sine", "out-expo"} {
		if _, ok := easeByName(name); !ok {
			t.Errorf("easeByName(%q) not found", name)
		}
	}
	if _, ok := easeByName("bogus"); ok {
		t.Error("easeByName(\"bogus\") resolved")
	}
}
