package schema

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestAnnualizeHourly(t *testing.T) {
	if got := AnnualizeHourly(70); got != 560000 {
		t.Errorf("70 t/h should annualize to 560000 t/y, got %f", got)
	}
	if got := HourlyFromAnnual(560000); got != 70 {
		t.Errorf("560000 t/y should be 70 t/h, got %f", got)
	}
}

func TestHourlyKgToAnnualTonnes(t *testing.T) {
	// 1000 kg/h is 1 t/h, so a year is the operating hours count.
	if got := HourlyKgToAnnualTonnes(1000); got != OperatingHoursPerYear {
		t.Errorf("expected %f, got %f", OperatingHoursPerYear, got)
	}
}

func TestUtilizationClamping(t *testing.T) {
	cases := []struct {
		name           string
		actual, design float64
		want           float64
	}{
		{"normal", 50, 100, 50},
		{"over capacity clamps", 150, 100, 100},
		{"zero design", 50, 0, 0},
		{"negative design", 50, -10, 0},
		{"negative actual clamps", -5, 100, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Utilization(c.actual, c.design); got != c.want {
				t.Errorf("Utilization(%f, %f) = %f, want %f", c.actual, c.design, got, c.want)
			}
		})
	}
}

func TestQuantityConversions(t *testing.T) {
	q := Scalar(48459.44, KilogramsPerHour)
	if got := q.AnnualTonnes(); !almostEqual(got, 387675.52, 0.5) {
		t.Errorf("kg/h to t/y conversion off: got %f", got)
	}
	if got := q.HourlyTonnes(); !almostEqual(got, 48.45944, 1e-6) {
		t.Errorf("kg/h to t/h conversion off: got %f", got)
	}

	r := Range(83600, 121600, TonnesPerYear)
	if got := r.Representative(); got != 102600 {
		t.Errorf("range midpoint should be 102600, got %f", got)
	}
	if got := r.HourlyTonnes(); !almostEqual(got, 102600.0/8000.0, 1e-9) {
		t.Errorf("range t/y to t/h off: got %f", got)
	}

	var nilQ *Quantity
	if nilQ.AnnualTonnes() != 0 || nilQ.Representative() != 0 {
		t.Error("nil quantity should convert to zero")
	}
}

func TestMetricsInternalConsistency(t *testing.T) {
	m := LoadMetrics()

	if got := m.LPGRecovery.LPGValue; !almostEqual(got, m.LPGRecovery.TotalLPG*729, 1) {
		t.Errorf("LPG value does not match quantity times price: %f", got)
	}

	ms := m.MethanolSynthesis
	if !almostEqual(ms.H2Required-ms.H2Available, ms.H2Deficit, 0.01) {
		t.Errorf("H2 deficit %f does not equal required minus available", ms.H2Deficit)
	}
	if !almostEqual(ms.H2Available/ms.H2Required, ms.H2Utilization, 0.0001) {
		t.Errorf("H2 utilization literal %f inconsistent with quantities", ms.H2Utilization)
	}

	es := m.EthaneSupply
	if !almostEqual(es.MIDORSupply/es.ETHYDCONeedMin, es.CoverageMin, 0.0001) {
		t.Errorf("coverage against minimum demand inconsistent: %f", es.CoverageMin)
	}
	if !almostEqual(es.MIDORSupply/es.ETHYDCONeedMax, es.CoverageMax, 0.0001) {
		t.Errorf("coverage against maximum demand inconsistent: %f", es.CoverageMax)
	}

	s := m.Summary
	if !almostEqual(s.Phase12Net+s.Phase34Net, s.TotalNet, 0.05) {
		t.Errorf("phase nets %f + %f do not sum to total %f", s.Phase12Net, s.Phase34Net, s.TotalNet)
	}
	if !almostEqual(s.Phase12Gross-s.Phase12NGCost, s.Phase12Net, 0.05) {
		t.Errorf("phase 1+2 net %f inconsistent with gross minus NG cost", s.Phase12Net)
	}
}

func TestStreamTableShape(t *testing.T) {
	m := LoadMetrics()
	n := m.Streams.Len()
	if n != 6 {
		t.Fatalf("expected 6 streams, got %d", n)
	}
	if len(m.Streams.NamesAR) != n || len(m.Streams.FlowKgH) != n || len(m.Streams.FlowTY) != n {
		t.Error("stream table columns have mismatched lengths")
	}
	for comp, row := range m.StreamComponents {
		if len(row) != n {
			t.Errorf("component %s has %d stream values, want %d", comp, len(row), n)
		}
	}
	for _, comp := range m.ComponentOrder {
		if _, ok := m.StreamComponents[comp]; !ok {
			t.Errorf("component order lists %s but no row exists", comp)
		}
	}
}

func TestKnowledgeBaseShape(t *testing.T) {
	entries := LoadKnowledgeBase()
	counts := CountByCategory(entries)

	want := map[Category]int{
		CategoryFeed:    4,
		CategoryProduct: 7,
		CategoryFlare:   2,
		CategoryFuel:    2,
		CategoryOther:   3,
	}
	for cat, n := range want {
		if counts[cat] != n {
			t.Errorf("category %s: got %d entries, want %d", cat, counts[cat], n)
		}
	}

	// Entries must already be grouped in section order.
	rank := make(map[Category]int, len(CategoryOrder))
	for i, c := range CategoryOrder {
		rank[c] = i
	}
	last := -1
	for _, e := range entries {
		r := rank[e.Category]
		if r < last {
			t.Fatalf("entry %q out of section order", e.ID)
		}
		last = r
	}
}

func TestKnowledgeBaseValidates(t *testing.T) {
	if err := ValidateKnowledgeBase(LoadKnowledgeBase(), LoadDefinitions()); err != nil {
		t.Fatalf("shipped knowledge base failed validation: %v", err)
	}
}

func TestValidateRejectsBadEntries(t *testing.T) {
	defs := LoadDefinitions()

	bad := []KnowledgeEntry{{
		ID:            "x",
		Name:          BilingualText{EN: "X"},
		Category:      CategoryFeed,
		DefinitionKey: "no-such-term",
	}}
	if err := ValidateKnowledgeBase(bad, defs); err == nil {
		t.Error("dangling definition key should be rejected")
	}

	bad = []KnowledgeEntry{{
		ID:       "x",
		Name:     BilingualText{EN: "X"},
		Category: CategoryFeed,
		Actual:   Scalar(-1, TonnesPerYear),
	}}
	if err := ValidateKnowledgeBase(bad, defs); err == nil {
		t.Error("negative quantity should be rejected")
	}

	bad = []KnowledgeEntry{{
		ID:       "x",
		Name:     BilingualText{EN: "X"},
		Category: CategoryFeed,
		Design:   Range(200, 100, TonnesPerYear),
	}}
	if err := ValidateKnowledgeBase(bad, defs); err == nil {
		t.Error("inverted range should be rejected")
	}

	bad = []KnowledgeEntry{{
		ID:          "x",
		Name:        BilingualText{EN: "X"},
		Category:    CategoryFeed,
		Composition: []CompositionItem{{Name: "H2", Min: 50, Max: 130}},
	}}
	if err := ValidateKnowledgeBase(bad, defs); err == nil {
		t.Error("composition share above 100 should be rejected")
	}

	bad = []KnowledgeEntry{
		{ID: "dup", Name: BilingualText{EN: "A"}, Category: CategoryFeed},
		{ID: "dup", Name: BilingualText{EN: "B"}, Category: CategoryFeed},
	}
	if err := ValidateKnowledgeBase(bad, defs); err == nil {
		t.Error("duplicate IDs should be rejected")
	}
}

func TestEntryUtilization(t *testing.T) {
	entries := LoadKnowledgeBase()
	byID := make(map[string]*KnowledgeEntry, len(entries))
	for i := range entries {
		byID[entries[i].ID] = &entries[i]
	}

	// Mixed units: design and actual both kg/h, compared after conversion.
	if got := byID["refinery-off-gas"].Utilization(); !almostEqual(got, 93.19, 0.01) {
		t.Errorf("refinery off-gas utilization: got %f", got)
	}
	// Range design uses the midpoint.
	if got := byID["ethane-product"].Utilization(); !almostEqual(got, 57.51, 0.01) {
		t.Errorf("ethane utilization: got %f", got)
	}
	// No design quantity means no utilization bar.
	if got := byID["fuel-gas-methane"].Utilization(); got != 0 {
		t.Errorf("entry without design should report 0, got %f", got)
	}
	if byID["feed-limitations"].HasQuantities() {
		t.Error("descriptive entry should report no quantities")
	}
}
