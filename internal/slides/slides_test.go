package slides

import (
	"math"
	"os"
	"strings"
	"testing"

	"github.com/unidoc/unioffice/common/license"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/schema"
)

func buildTestDeck(t *testing.T) *Deck {
	t.Helper()
	d, err := NewBuilder(schema.LoadMetrics()).BuildDeck()
	if err != nil {
		t.Fatalf("BuildDeck failed: %v", err)
	}
	return d
}

func slideText(s *Slide) string {
	var b strings.Builder
	for _, txt := range s.Texts() {
		for _, line := range txt.Lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func TestBuildDeckSlideCount(t *testing.T) {
	d := buildTestDeck(t)
	if len(d.Slides) != 10 {
		t.Fatalf("expected 10 slides, got %d", len(d.Slides))
	}
	if d.Width != Inches(10) || d.Height != Inches(7.5) {
		t.Errorf("unexpected canvas size %d x %d", d.Width, d.Height)
	}
	for i, s := range d.Slides {
		if s.Background != colorDark {
			t.Errorf("slide %d background = %v, want dark", i+1, s.Background)
		}
	}
}

func TestBuildDeckNilMetrics(t *testing.T) {
	if _, err := NewBuilder(nil).BuildDeck(); err == nil {
		t.Fatal("expected error for nil metrics")
	}
}

func TestTitleAndSummarySlides(t *testing.T) {
	d := buildTestDeck(t)

	title := slideText(d.Slides[0])
	if !strings.Contains(title, "MIDOR-ETHYDCO Integration") {
		t.Errorf("title slide missing heading:\n%s", title)
	}
	if !strings.Contains(title, "$196 Million/Year Net Value") {
		t.Errorf("title slide missing headline value:\n%s", title)
	}

	summary := slideText(d.Slides[1])
	for _, want := range []string{"$196M", "$100M", "$96M", "Provides 49-71% of ETHYDCO's ethane feedstock requirements"} {
		if !strings.Contains(summary, want) {
			t.Errorf("executive summary missing %q:\n%s", want, summary)
		}
	}
}

func TestPhasesSlideValues(t *testing.T) {
	d := buildTestDeck(t)
	text := slideText(d.Slides[3])

	for _, want := range []string{"$105M", "$79M", "$36M", "$60M", "$196M", "Net/Year"} {
		if !strings.Contains(text, want) {
			t.Errorf("phases slide missing %q", want)
		}
	}

	ovals := 0
	for _, b := range d.Slides[3].Boxes() {
		if b.Kind == BoxOval {
			ovals++
		}
	}
	if ovals != 4 {
		t.Errorf("expected 4 phase number circles, got %d", ovals)
	}
}

func TestProductValuesSortedAndScaled(t *testing.T) {
	b := NewBuilder(schema.LoadMetrics())
	rows := b.productValueRows()
	if len(rows) != 7 {
		t.Fatalf("expected 7 product rows, got %d", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Value > rows[i-1].Value {
			t.Errorf("rows not sorted by value: %s (%f) after %s (%f)",
				rows[i].Name, rows[i].Value, rows[i-1].Name, rows[i-1].Value)
		}
	}

	d := buildTestDeck(t)
	text := slideText(d.Slides[4])
	for _, want := range []string{"$91.5M", "125,509 t/y", "$13.5M", "21,733 t/y", "$78.9M", "39,445 t/y"} {
		if !strings.Contains(text, want) {
			t.Errorf("product values slide missing %q", want)
		}
	}

	// Bars come in track/fill pairs; the fill never exceeds the track
	// and scales with value over the declared maximum.
	var track, fill []Box
	for _, box := range d.Slides[4].Boxes() {
		if box.Kind != BoxRounded || box.HasLine {
			continue
		}
		if box.Fill == colorDarkLight {
			track = append(track, box)
		} else {
			fill = append(fill, box)
		}
	}
	if len(track) != 7 || len(fill) != 7 {
		t.Fatalf("expected 7 track and 7 fill bars, got %d and %d", len(track), len(fill))
	}
	for i := range fill {
		if fill[i].Rect.W > track[i].Rect.W {
			t.Errorf("bar %d wider than its track", i)
		}
		wantW := Inches(7.5 * (rows[i].Value / 1e6) / productBarMaxMillions)
		if diff := fill[i].Rect.W - wantW; diff < -1000 || diff > 1000 {
			t.Errorf("bar %d width = %d EMU, want %d", i, fill[i].Rect.W, wantW)
		}
	}
}

func TestCoverageSlide(t *testing.T) {
	d := buildTestDeck(t)
	text := slideText(d.Slides[5])

	for _, want := range []string{
		"MIDOR can supply 59,005 t/y of ethane to ETHYDCO",
		"ETHYDCO needs: 83,600 t/y",
		"ETHYDCO needs: 121,600 t/y",
		"70.6%",
		"48.5%",
		"$23.6M",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("coverage slide missing %q", want)
		}
	}
}

func TestHydrogenBalanceSlide(t *testing.T) {
	d := buildTestDeck(t)
	text := slideText(d.Slides[6])

	for _, want := range []string{
		"39.4K t/y", "65.7K t/y", "26.2K t/y", "60%",
		"Methanol Allocation (224,070 t/y Total)",
		"35.5% | $35.8M",
		"64.5% | $60.4M",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("hydrogen slide missing %q", want)
		}
	}
}

func TestFinancialSummarySlide(t *testing.T) {
	d := buildTestDeck(t)
	text := slideText(d.Slides[7])

	for _, want := range []string{"$176.1M", "-$76.2M", "$99.8M", "$272.3M", "$196.1M",
		"Phase 1+2: $99.8M (51%)", "Phase 3+4: $96.2M (49%)"} {
		if !strings.Contains(text, want) {
			t.Errorf("financial slide missing %q", want)
		}
	}

	// The two stacked bars fill the full breakdown width together.
	var stacked []Box
	for _, box := range d.Slides[7].Boxes() {
		if box.Kind == BoxRounded && !box.HasLine && (box.Fill == colorPrimary || box.Fill == colorAccent) {
			stacked = append(stacked, box)
		}
	}
	if len(stacked) != 2 {
		t.Fatalf("expected 2 stacked bars, got %d", len(stacked))
	}
	total := float64(stacked[0].Rect.W + stacked[1].Rect.W)
	if math.Abs(total-float64(Inches(8.5))) > 1000 {
		t.Errorf("stacked bars sum to %f EMU, want ~%d", total, Inches(8.5))
	}
}

func TestConclusionSlide(t *testing.T) {
	d := buildTestDeck(t)
	text := slideText(d.Slides[9])

	for _, want := range []string{"$196M", "Gas Streams Utilized", "Valuable Products", "60%+",
		"Ready to Transform Waste into Value"} {
		if !strings.Contains(text, want) {
			t.Errorf("conclusion slide missing %q", want)
		}
	}
	if !strings.Contains(text, "6\n") || !strings.Contains(text, "7\n") {
		t.Errorf("conclusion slide missing stream/product counts:\n%s", text)
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{125508.57, "125,509"},
		{40468.50, "40,468"},
		{79539.50, "79,540"},
		{1234567, "1,234,567"},
		{999, "999"},
		{-5000, "-5,000"},
	}
	for _, tt := range tests {
		if got := groupThousands(tt.in); got != tt.want {
			t.Errorf("groupThousands(%f) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriterMarshal(t *testing.T) {
	key := os.Getenv("UNIDOC_LICENSE_API_KEY")
	if key == "" {
		t.Skip("UNIDOC_LICENSE_API_KEY not set")
	}
	if err := license.SetMeteredKey(key); err != nil {
		t.Fatalf("failed to set license key: %v", err)
	}

	deck := buildTestDeck(t)
	data, err := NewWriter().Marshal(deck)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if len(data) < 4 || data[0] != 'P' || data[1] != 'K' {
		t.Errorf("output does not look like a zip container")
	}
}
