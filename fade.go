package ember

import "github.com/tanema/gween/ease"

// SetFadeOut fades the generator's alpha to zero over the last seconds of its
// duration using the given easing function (nil means linear). Only
// meaningful for finite-duration generators; the fade scales the evaluated
// alpha component, it does not replace it.
func (g *Generator) SetFadeOut(seconds float64, fn ease.TweenFunc) {
	g.model.FadeOutSeconds = seconds
	g.model.FadeOutEase = fn
}

// fadeFactor returns the alpha multiplier at elapsed time t: 1 outside the
// fade window, eased from 1 to 0 inside it.
func (p *ParticleGenerator) fadeFactor(t float64) float64 {
	m := &p.model
	if m.FadeOutSeconds <= 0 || m.Duration.IsInfinite() {
		return 1
	}
	start := m.Duration.Seconds() - m.FadeOutSeconds
	if t <= start {
		return 1
	}
	fn := m.FadeOutEase
	if fn == nil {
		fn = ease.Linear
	}
	v := float64(fn(float32(t-start), 1, -1, float32(m.FadeOutSeconds)))
	if v < 0 {
		return 0
	}
	return v
}

// easeByName maps template easing keywords to gween easing functions.
func easeByName(name string) (ease.TweenFunc, bool) {
	switch name {
	case "", "linear":
		return ease.Linear, true
	case "in-quad":
		return ease.InQuad, true
	case "out-quad":
		return ease.OutQuad, true
	case "in-out-quad":
		return ease.InOutQuad, true
	case "in-cubic":
		return ease.InCubic, true
	case "out-cubic":
		return ease.OutCubic, true
	case "in-out-cubic":
		return ease.InOutCubic, true
	case "in-sine":
		return ease.InSine, true
	case "out-sine":
		return ease.OutSine, true
	case "in-out-sine":
		return ease.InOutSine, true
	case "in-expo":
		return ease.InExpo, true
	case "out-expo":
		return ease.OutExpo, true
	}
	return nil, false
}
