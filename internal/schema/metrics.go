package schema

// MetricSet is the full set of numeric facts behind the dashboard and the
// presentation. Every leaf is a hand-entered literal from the integration
// study workbook; nothing here is computed at generation time. It is
// constructed once by LoadMetrics and treated as immutable afterwards.
type MetricSet struct {
	Prices            []ProductPrice
	Streams           StreamTable
	Products          []ProductQuantity
	ComponentOrder    []string
	StreamComponents  map[string][]float64 // component -> t/y per stream, same index as Streams
	LPGRecovery       LPGRecovery
	HydrogenRecovery  HydrogenRecovery
	EthaneSupply      EthaneSupply
	MethanolSynthesis MethanolSynthesis
	MTOEconomics      MTOEconomics
	Summary           Summary
}

// ProductPrice is one row of the product price table, in $/tonne.
type ProductPrice struct {
	Name  string
	Price float64
}

// StreamTable lists the six recovered gas streams in fixed order with
// bilingual names and both flow representations from the source tables.
type StreamTable struct {
	Names   []string  // English
	NamesAR []string  // Arabic
	FlowKgH []float64 // kg/h
	FlowTY  []float64 // t/y (as annualized in the workbook)
}

// Len returns the number of streams.
func (s StreamTable) Len() int { return len(s.Names) }

// ProductQuantity is one recovered product with its yearly quantity in t/y.
type ProductQuantity struct {
	Name     string
	TonnesPY float64
}

// LPGRecovery holds the LPG and C5+ recovery economics (study calc 1).
type LPGRecovery struct {
	TotalLPG     float64 // t/y
	TotalC5Plus  float64 // t/y
	LPGValue     float64 // $/y
	C5PlusValue  float64 // $/y
	NetValue     float64 // $/y after NG makeup
}

// HydrogenRecovery holds the hydrogen recovery economics (study calc 2).
type HydrogenRecovery struct {
	TotalH2   float64            // t/y
	H2Value   float64            // $/y
	NetValue  float64            // $/y
	H2Sources map[string]float64 // source stream -> t/y
}

// EthaneSupply holds the MIDOR-to-ETHYDCO ethane supply figures (study
// calc 3). CoverageMin is the fraction of the minimum demand covered and
// CoverageMax the fraction of the maximum demand; the "min" gauge is
// therefore the larger number. The workbook pairs them this way and the
// literals are preserved without relabeling.
type EthaneSupply struct {
	MIDORSupply    float64 // t/y
	ETHYDCONeedMin float64 // t/y
	ETHYDCONeedMax float64 // t/y
	CoverageMin    float64 // fraction of minimum demand
	CoverageMax    float64 // fraction of maximum demand
	C2Value        float64 // $/y
}

// MethanolSynthesis holds the hydrogen balance for methanol production
// (study calc 5).
type MethanolSynthesis struct {
	H2Required    float64 // t/y
	H2Available   float64 // t/y
	H2Deficit     float64 // t/y
	H2Utilization float64 // fraction
	TotalMethanol float64 // t/y
}

// MTOEconomics holds the methanol allocation and MTO conversion economics
// (study calc 6).
type MTOEconomics struct {
	MethanolInGasoline float64 // t/y
	MethanolForMTO     float64 // t/y
	EthyleneFromMTO    float64 // t/y
	PropyleneFromMTO   float64 // t/y
	MethanolValue      float64 // $/y
	EthyleneValue      float64 // $/y
	PropyleneValue     float64 // $/y
	Phase34Net         float64 // $/y
}

// Summary holds the headline phase and total figures.
type Summary struct {
	Phase12Gross  float64 // $/y
	Phase12NGCost float64 // $/y
	Phase12Net    float64 // $/y
	Phase34Net    float64 // $/y
	TotalNet      float64 // $/y
}

// LoadMetrics constructs the metric set from the study literals.
func LoadMetrics() *MetricSet {
	return &MetricSet{
		Prices: []ProductPrice{
			{"H2", 2000}, {"C2H6", 400}, {"C2H4", 400}, {"LPG", 729},
			{"C5+", 620}, {"Methanol", 450}, {"Ethylene_MTO", 1200}, {"Propylene_MTO", 900},
		},

		Streams: StreamTable{
			Names:   []string{"Flare Gas OLD", "Flare Gas New", "Refinery Gas", "PSA Purge", "Sweep Gas", "Penex"},
			NamesAR: []string{"غاز الشعلة القديم", "غاز الشعلة الجديد", "غاز المصفاة", "تنظيف PSA", "غاز الكنس", "بنيكس"},
			FlowKgH: []float64{4122, 2989, 48459.44, 62786.45, 3723.42, 2088.12},
			FlowTY:  []float64{32976, 23912, 387675.54, 502291.59, 29787.34, 16704.93},
		},

		Products: []ProductQuantity{
			{"H2", 39444.77}, {"CH4", 251737.80}, {"C2H6", 59230.02}, {"C2H4", 2062.40},
			{"C3H8", 57097.95}, {"C3H6", 2915.37}, {"iC4", 32898.08}, {"nC4", 43014.61},
			{"C4=", 4631.79}, {"C5+", 21733.10}, {"CO", 65956.12}, {"CO2", 408747.17},
		},

		ComponentOrder: []string{"H2", "CH4", "C2", "C3", "C4", "C5+", "CO", "CO2"},
		StreamComponents: map[string][]float64{
			"H2":  {4031.75, 3420.66, 16074.74, 10645.69, 2766.34, 2505.59},
			"CH4": {8659.03, 5530.73, 194089.88, 39689.32, 2692.79, 1076.05},
			"C2":  {3640.52, 1992.00, 45949.35, 27.45, 7396.02, 2287.08},
			"C3":  {4389.92, 3206.61, 36257.20, 48.31, 9011.38, 7099.90},
			"C4":  {5636.10, 4645.15, 60600.94, 56.60, 6288.14, 3317.54},
			"C5+": {4396.36, 2768.20, 10851.65, 0, 1397.49, 2319.40},
			"CO":  {5313.69, 4069.12, 29206.57, 24952.88, 0, 2413.85},
			"CO2": {2499.26, 2279.22, 0, 401936.87, 135.20, 1896.61},
		},

		LPGRecovery: LPGRecovery{
			TotalLPG:    125508.57,
			TotalC5Plus: 21733.10,
			LPGValue:    91495749.75,
			C5PlusValue: 13474523.07,
			NetValue:    76231321.92,
		},

		HydrogenRecovery: HydrogenRecovery{
			TotalH2:  39444.77,
			H2Value:  78889537.01,
			NetValue: 61561956.72,
			H2Sources: map[string]float64{
				"Off-Gas":   16074.74,
				"Flare OLD": 4031.75,
				"Flare New": 3420.66,
				"PSA Purge": 10645.69,
				"Sweep Gas": 2766.34,
				"Penex":     2505.59,
			},
		},

		EthaneSupply: EthaneSupply{
			MIDORSupply:    59005.34,
			ETHYDCONeedMin: 83600,
			ETHYDCONeedMax: 121600,
			CoverageMin:    0.7058,
			CoverageMax:    0.4852,
			C2Value:        23602135.55,
		},

		MethanolSynthesis: MethanolSynthesis{
			H2Required:    65665.68,
			H2Available:   39444.77,
			H2Deficit:     26220.91,
			H2Utilization: 0.6007,
			TotalMethanol: 224069.87,
		},

		MTOEconomics: MTOEconomics{
			MethanolInGasoline: 79539.50,
			MethanolForMTO:     144530.37,
			EthyleneFromMTO:    40468.50,
			PropyleneFromMTO:   60702.75,
			MethanolValue:      35792775.30,
			EthyleneValue:      16187401.19,
			PropyleneValue:     44252308.01,
			Phase34Net:         96232484.50,
		},

		Summary: Summary{
			Phase12Gross:  176064779.38,
			Phase12NGCost: 76231321.92,
			Phase12Net:    99833457.46,
			Phase34Net:    96232484.50,
			TotalNet:      196065941.97,
		},
	}
}
