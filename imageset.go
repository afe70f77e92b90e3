package ember

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageSet is a named-image resolver backed by sprite sheets. It implements
// ImageSource for use as Env.Images. Unlike a render atlas there is no
// placeholder fallback: a missing name reports not-found, and activation
// against it fails with ErrImageNotFound.
type ImageSet struct {
	images map[string]*ebiten.Image
}

// NewImageSet returns an empty ImageSet.
func NewImageSet() *ImageSet {
	return &ImageSet{images: make(map[string]*ebiten.Image)}
}

// Add registers an image under name, replacing any previous entry.
func (s *ImageSet) Add(name string, img *ebiten.Image) {
	s.images[name] = img
}

// Image resolves a name to its image resource.
func (s *ImageSet) Image(name string) (*ebiten.Image, bool) {
	img, ok := s.images[name]
	return img, ok
}

// Len returns the number of registered images.
func (s *ImageSet) Len() int {
	return len(s.images)
}

// --- sheet JSON structure types ---

type sheetRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type sheetDoc struct {
	Frames map[string]sheetRect `json:"frames"`
}

// LoadSheet parses sprite sheet JSON data ({"frames": {"name": {x,y,w,h}}})
// and registers each named frame as a sub-image of page. Frames from multiple
// sheets may be loaded into one ImageSet; later sheets win on name collision.
func (s *ImageSet) LoadSheet(jsonData []byte, page *ebiten.Image) error {
	var doc sheetDoc
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return fmt.Errorf("ember: failed to parse sheet JSON: %w", err)
	}
	if doc.Frames == nil {
		return fmt.Errorf("ember: sheet JSON has no \"frames\" key")
	}

	bounds := page.Bounds()
	for name, f := range doc.Frames {
		r := image.Rect(f.X, f.Y, f.X+f.W, f.Y+f.H)
		if !r.In(bounds) {
			return fmt.Errorf("ember: sheet frame %q (%v) outside page bounds %v", name, r, bounds)
		}
		s.images[name] = page.SubImage(r).(*ebiten.Image)
	}
	return nil
}
