package slides

// The deck is described as plain shape data first and only turned into
// a .pptx at the very end. Keeping the intermediate form free of any
// office-format types makes the slide builders trivially testable.

// Distance is a length in English Metric Units (914400 per inch).
type Distance int64

const (
	emuPerInch  = 914400
	emuPerPoint = 12700
)

// Inches converts inches to EMU.
func Inches(v float64) Distance {
	return Distance(v * emuPerInch)
}

// Points converts typographic points to EMU.
func Points(v float64) Distance {
	return Distance(v * emuPerPoint)
}

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Rect positions a shape on the slide canvas.
type Rect struct {
	X, Y, W, H Distance
}

// Align controls horizontal paragraph alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// BoxKind selects the preset geometry of a Box.
type BoxKind int

const (
	BoxRect BoxKind = iota
	BoxRounded
	BoxOval
)

// Shape is a drawable element. Shapes render in insertion order, so a
// filled bar added after its track covers it.
type Shape interface {
	shape()
}

// Box is a filled geometric shape, optionally outlined.
type Box struct {
	Kind      BoxKind
	Rect      Rect
	Fill      RGB
	HasLine   bool
	Line      RGB
	LineWidth Distance
}

func (Box) shape() {}

// Text is a text frame. Each entry of Lines becomes its own paragraph.
type Text struct {
	Rect  Rect
	Lines []string
	Size  float64 // points
	Bold  bool
	Color RGB
	Align Align
}

func (Text) shape() {}

// Slide is one canvas with a solid background.
type Slide struct {
	Background RGB
	Shapes     []Shape
}

// AddBox appends a box shape.
func (s *Slide) AddBox(b Box) {
	s.Shapes = append(s.Shapes, b)
}

// AddText appends a text frame.
func (s *Slide) AddText(t Text) {
	s.Shapes = append(s.Shapes, t)
}

// Texts returns every text shape in order, for inspection.
func (s *Slide) Texts() []Text {
	var out []Text
	for _, sh := range s.Shapes {
		if t, ok := sh.(Text); ok {
			out = append(out, t)
		}
	}
	return out
}

// Boxes returns every box shape in order, for inspection.
func (s *Slide) Boxes() []Box {
	var out []Box
	for _, sh := range s.Shapes {
		if b, ok := sh.(Box); ok {
			out = append(out, b)
		}
	}
	return out
}

// Deck is a complete presentation.
type Deck struct {
	Width  Distance
	Height Distance
	Slides []*Slide
}

// AddSlide appends a slide with the given background.
func (d *Deck) AddSlide(background RGB) *Slide {
	s := &Slide{Background: background}
	d.Slides = append(d.Slides, s)
	return s
}
