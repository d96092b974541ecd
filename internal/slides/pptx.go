package slides

import (
	"bytes"
	"fmt"

	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/presentation"
	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/pml"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/logger"
)

// Writer turns a Deck into the OOXML presentation container.
type Writer struct {
	log *logger.Logger
}

// NewWriter creates a pptx writer.
func NewWriter() *Writer {
	return &Writer{log: logger.NewDefault().WithComponent("pptx")}
}

// Marshal renders the deck and returns the .pptx file bytes.
func (w *Writer) Marshal(d *Deck) ([]byte, error) {
	ppt, err := w.build(d)
	if err != nil {
		return nil, err
	}
	defer ppt.Close()

	var buf bytes.Buffer
	if err := ppt.Save(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize presentation: %w", err)
	}

	w.log.Info("Presentation serialized", map[string]interface{}{
		"slides": len(d.Slides),
		"bytes":  buf.Len(),
	})
	return buf.Bytes(), nil
}

func (w *Writer) build(d *Deck) (*presentation.Presentation, error) {
	if d == nil || len(d.Slides) == 0 {
		return nil, fmt.Errorf("deck has no slides")
	}

	ppt := presentation.New()
	if ppt.X().SldSz == nil {
		ppt.X().SldSz = pml.NewCT_SlideSize()
	}
	ppt.X().SldSz.CxAttr = int32(d.Width)
	ppt.X().SldSz.CyAttr = int32(d.Height)

	for _, src := range d.Slides {
		sld := ppt.AddSlide()
		setBackground(sld, src.Background)

		for _, shape := range src.Shapes {
			switch sh := shape.(type) {
			case Box:
				addBox(sld, sh)
			case Text:
				addText(sld, sh)
			default:
				return nil, fmt.Errorf("unknown shape type %T", shape)
			}
		}
	}

	return ppt, nil
}

func addBox(sld presentation.Slide, b Box) {
	tb := sld.AddTextBox()
	props := tb.Properties()
	props.SetGeometry(geometry(b.Kind))
	props.SetPosition(measurement.Distance(b.Rect.X), measurement.Distance(b.Rect.Y))
	props.SetSize(measurement.Distance(b.Rect.W), measurement.Distance(b.Rect.H))
	props.SetSolidFill(rgb(b.Fill))
	if b.HasLine {
		line := props.LineProperties()
		line.SetSolidFill(rgb(b.Line))
		line.SetWidth(measurement.Distance(b.LineWidth))
	} else {
		props.LineProperties().SetNoFill()
	}
	// The schema wants at least one paragraph even for a plain shape.
	tb.AddParagraph()
}

func addText(sld presentation.Slide, t Text) {
	tb := sld.AddTextBox()
	props := tb.Properties()
	props.SetPosition(measurement.Distance(t.Rect.X), measurement.Distance(t.Rect.Y))
	props.SetSize(measurement.Distance(t.Rect.W), measurement.Distance(t.Rect.H))
	props.SetNoFill()
	props.LineProperties().SetNoFill()

	for _, line := range t.Lines {
		para := tb.AddParagraph()
		if t.Align == AlignCenter {
			para.Properties().SetAlign(dml.ST_TextAlignTypeCtr)
		}
		run := para.AddRun()
		run.SetText(line)
		rp := run.Properties()
		rp.SetSize(measurement.Distance(t.Size) * measurement.Point)
		rp.SetBold(t.Bold)
		rp.SetSolidFill(rgb(t.Color))
	}
}

func setBackground(sld presentation.Slide, c RGB) {
	fill := dml.NewCT_SolidColorFillProperties()
	fill.SrgbClr = dml.NewCT_SRgbColor()
	fill.SrgbClr.ValAttr = fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)

	bg := pml.NewCT_Background()
	bg.BgPr = pml.NewCT_BackgroundProperties()
	bg.BgPr.SolidFill = fill
	sld.X().CSld.Bg = bg
}

func geometry(k BoxKind) dml.ST_ShapeType {
	switch k {
	case BoxRounded:
		return dml.ST_ShapeTypeRoundRect
	case BoxOval:
		return dml.ST_ShapeTypeEllipse
	default:
		return dml.ST_ShapeTypeRect
	}
}

func rgb(c RGB) color.Color {
	return color.RGB(c.R, c.G, c.B)
}
