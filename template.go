package ember

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Template is a parsed declarative effect description. One template can stamp
// out any number of Generators, each bound to its own owner; the template
// itself is immutable after parsing.
//
// Template YAML grammar. A dist is written as a scalar (fixed value), a
// two-element number list (uniform range), or a map with "angle" and
// "magnitude" ranges (angular). A param is a list of 1-4 coefficient values
// (value, speed, accel, jerk), or a bare scalar for a fixed param. A
// dist-param is a list of 1-4 dists.
//
//	image: spark
//	duration: 2.5            # seconds, or "forever"
//	position: [[12], [8, 1.5]]
//	gen_rate: 40
//	initial_gen: 5
//	color:
//	  red: 1
//	  alpha: [1, -0.5]
//	fade_out:
//	  seconds: 0.5
//	  ease: out-quad
//	particle:
//	  position:
//	    - [{angle: [0, 6.2832], magnitude: [0, 0.5]},
//	       {angle: [0, 6.2832], magnitude: [1, 3]}]
//	  duration: [0.5, 1.5]
//	  size: [0.3, 0.3]
type Template struct {
	image       string
	duration    Duration
	model       GeneratorModel
	hasPosition bool
}

type templateDoc struct {
	Image           string      `yaml:"image"`
	Duration        yaml.Node   `yaml:"duration"`
	Position        []yaml.Node `yaml:"position"`
	Rotation        yaml.Node   `yaml:"rotation"`
	GenRate         yaml.Node   `yaml:"gen_rate"`
	InitialGen      float64     `yaml:"initial_gen"`
	Blocking        *bool       `yaml:"blocking"`
	DrawAbove       *bool       `yaml:"draw_above"`
	MovesWithParent bool        `yaml:"moves_with_parent"`
	Color           struct {
		Red   yaml.Node `yaml:"red"`
		Green yaml.Node `yaml:"green"`
		Blue  yaml.Node `yaml:"blue"`
		Alpha yaml.Node `yaml:"alpha"`
	} `yaml:"color"`
	FadeOut struct {
		Seconds float64 `yaml:"seconds"`
		Ease    string  `yaml:"ease"`
	} `yaml:"fade_out"`
	Particle struct {
		Position        []yaml.Node `yaml:"position"`
		Duration        yaml.Node   `yaml:"duration"`
		Size            []yaml.Node `yaml:"size"`
		FrameTimeOffset yaml.Node   `yaml:"frame_time_offset"`
	} `yaml:"particle"`
}

// ParseTemplate parses YAML template data. Malformed documents, unknown
// easing keywords, and params with more than four coefficients are rejected
// here, at the configuration boundary; the numeric core never validates.
func ParseTemplate(data []byte) (*Template, error) {
	var doc templateDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("ember: template: %w", err)
	}
	if doc.Image == "" {
		return nil, fmt.Errorf("ember: template: missing image")
	}

	duration, err := parseTemplateDuration(&doc.Duration)
	if err != nil {
		return nil, err
	}

	t := &Template{
		image:    doc.Image,
		duration: duration,
		model:    NewGeneratorModel(duration, 0, 0),
	}
	m := &t.model
	m.InitialOverflow = doc.InitialGen
	m.MovesWithParent = doc.MovesWithParent
	if doc.Blocking != nil {
		m.IsBlocking = *doc.Blocking
	}
	if doc.DrawAbove != nil {
		m.DrawAboveEntities = *doc.DrawAbove
	}

	if doc.Position != nil {
		if len(doc.Position) != 2 {
			return nil, fmt.Errorf("ember: template: position wants [x, y], got %d elements", len(doc.Position))
		}
		if m.PositionX, err = parseTemplateParam("position x", &doc.Position[0]); err != nil {
			return nil, err
		}
		if m.PositionY, err = parseTemplateParam("position y", &doc.Position[1]); err != nil {
			return nil, err
		}
		t.hasPosition = true
	}
	if !doc.Rotation.IsZero() {
		rot, err := parseTemplateParam("rotation", &doc.Rotation)
		if err != nil {
			return nil, err
		}
		m.Rotation = &rot
	}
	if !doc.GenRate.IsZero() {
		if m.GenRate, err = parseTemplateParam("gen_rate", &doc.GenRate); err != nil {
			return nil, err
		}
	}

	colors := []struct {
		name string
		node *yaml.Node
		dst  *Param
	}{
		{"red", &doc.Color.Red, &m.Red},
		{"green", &doc.Color.Green, &m.Green},
		{"blue", &doc.Color.Blue, &m.Blue},
		{"alpha", &doc.Color.Alpha, &m.Alpha},
	}
	for _, c := range colors {
		if c.node.IsZero() {
			continue
		}
		if *c.dst, err = parseTemplateParam("color "+c.name, c.node); err != nil {
			return nil, err
		}
	}

	if doc.FadeOut.Seconds > 0 {
		fn, ok := easeByName(doc.FadeOut.Ease)
		if !ok {
			return nil, fmt.Errorf("ember: template: unknown fade_out ease %q", doc.FadeOut.Ease)
		}
		m.FadeOutSeconds = doc.FadeOut.Seconds
		m.FadeOutEase = fn
	}

	if err := parseTemplateParticle(&doc, m); err != nil {
		return nil, err
	}
	return t, nil
}

func parseTemplateParticle(doc *templateDoc, m *GeneratorModel) error {
	if doc.Particle.Position != nil {
		switch len(doc.Particle.Position) {
		case 1:
			x, err := parseTemplateDistParam("particle position", &doc.Particle.Position[0])
			if err != nil {
				return err
			}
			d := NewDistParam2D(x)
			m.ParticlePositionDist = &d
		case 2:
			x, err := parseTemplateDistParam("particle position x", &doc.Particle.Position[0])
			if err != nil {
				return err
			}
			y, err := parseTemplateDistParam("particle position y", &doc.Particle.Position[1])
			if err != nil {
				return err
			}
			d := NewDistParam2DXY(x, y)
			m.ParticlePositionDist = &d
		default:
			return fmt.Errorf("ember: template: particle position wants 1 or 2 dist-params, got %d", len(doc.Particle.Position))
		}
	}
	if !doc.Particle.Duration.IsZero() {
		d, err := parseTemplateDist("particle duration", &doc.Particle.Duration)
		if err != nil {
			return err
		}
		m.ParticleDurationDist = &d
	}
	if doc.Particle.Size != nil {
		if len(doc.Particle.Size) != 2 {
			return fmt.Errorf("ember: template: particle size wants [width, height], got %d elements", len(doc.Particle.Size))
		}
		w, err := parseTemplateDist("particle width", &doc.Particle.Size[0])
		if err != nil {
			return err
		}
		h, err := parseTemplateDist("particle height", &doc.Particle.Size[1])
		if err != nil {
			return err
		}
		m.ParticleSizeDist = &SizeDist{Width: w, Height: h}
	}
	if !doc.Particle.FrameTimeOffset.IsZero() {
		d, err := parseTemplateDist("particle frame_time_offset", &doc.Particle.FrameTimeOffset)
		if err != nil {
			return err
		}
		m.ParticleFrameTimeOffsetDist = &d
	}
	return nil
}

// Image returns the template's image identifier.
func (t *Template) Image() string {
	return t.image
}

// Generator builds a fresh Generator from the template, bound to owner. When
// the template sets no position, the generator defaults to the owner's
// center, exactly as NewGenerator does.
func (t *Template) Generator(owner Owner) *Generator {
	g := NewGenerator(owner, t.image, t.duration)
	m := t.model.clone()
	if !t.hasPosition {
		m.PositionX = g.model.PositionX
		m.PositionY = g.model.PositionY
	}
	g.model = m
	return g
}

// --- node parsers ---

func parseTemplateDuration(n *yaml.Node) (Duration, error) {
	if n.IsZero() {
		return Forever(), nil
	}
	var name string
	if n.Decode(&name) == nil && name == "forever" {
		return Forever(), nil
	}
	var secs float64
	if err := n.Decode(&secs); err != nil {
		return Duration{}, fmt.Errorf("ember: template: duration wants seconds or \"forever\": %w", err)
	}
	return For(secs), nil
}

// parseTemplateParam parses a scalar (fixed param) or a 1-4 element number
// list (value, speed, accel, jerk).
func parseTemplateParam(field string, n *yaml.Node) (Param, error) {
	var v float64
	if n.Kind == yaml.ScalarNode {
		if err := n.Decode(&v); err != nil {
			return Param{}, fmt.Errorf("ember: template: %s: %w", field, err)
		}
		return FixedParam(v), nil
	}
	var coeffs []float64
	if err := n.Decode(&coeffs); err != nil {
		return Param{}, fmt.Errorf("ember: template: %s wants a number or number list: %w", field, err)
	}
	if len(coeffs) == 0 || len(coeffs) > 4 {
		return Param{}, fmt.Errorf("ember: template: %s has %d coefficients, want 1-4", field, len(coeffs))
	}
	var p Param
	p.Value = coeffs[0]
	if len(coeffs) > 1 {
		p.Speed = coeffs[1]
	}
	if len(coeffs) > 2 {
		p.Accel = coeffs[2]
	}
	if len(coeffs) > 3 {
		p.Jerk = coeffs[3]
	}
	return p, nil
}

// angularNode is the map form of an angular dist.
type angularNode struct {
	Angle     []float64 `yaml:"angle"`
	Magnitude []float64 `yaml:"magnitude"`
}

// parseTemplateDist parses a dist node: scalar, [min, max], or angular map.
func parseTemplateDist(field string, n *yaml.Node) (Dist, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := n.Decode(&v); err != nil {
			return Dist{}, fmt.Errorf("ember: template: %s: %w", field, err)
		}
		return FixedDist(v), nil
	case yaml.SequenceNode:
		var r []float64
		if err := n.Decode(&r); err != nil {
			return Dist{}, fmt.Errorf("ember: template: %s: %w", field, err)
		}
		if len(r) != 2 {
			return Dist{}, fmt.Errorf("ember: template: %s range wants [min, max], got %d elements", field, len(r))
		}
		return UniformDist(r[0], r[1]), nil
	case yaml.MappingNode:
		var a angularNode
		if err := n.Decode(&a); err != nil {
			return Dist{}, fmt.Errorf("ember: template: %s: %w", field, err)
		}
		if len(a.Angle) != 2 || len(a.Magnitude) != 2 {
			return Dist{}, fmt.Errorf("ember: template: %s angular dist wants angle and magnitude [min, max] ranges", field)
		}
		return AngularDist(a.Angle[0], a.Angle[1], a.Magnitude[0], a.Magnitude[1]), nil
	}
	return Dist{}, fmt.Errorf("ember: template: %s is not a dist", field)
}

// parseTemplateDistParam parses a dist-param node: a list of 1-4 dist nodes,
// or a single dist node as shorthand for a stationary param.
func parseTemplateDistParam(field string, n *yaml.Node) (DistParam, error) {
	nodes := []*yaml.Node{n}
	if n.Kind == yaml.SequenceNode {
		nodes = n.Content
	}
	if len(nodes) == 0 || len(nodes) > 4 {
		return DistParam{}, fmt.Errorf("ember: template: %s has %d coefficients, want 1-4", field, len(nodes))
	}
	dp := FixedDistParam(ZeroDist())
	dsts := []*Dist{&dp.Value, &dp.Speed, &dp.Accel, &dp.Jerk}
	for i, node := range nodes {
		d, err := parseTemplateDist(field, node)
		if err != nil {
			return DistParam{}, err
		}
		*dsts[i] = d
	}
	return dp, nil
}
