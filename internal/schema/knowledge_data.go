package schema

// LoadKnowledgeBase constructs the knowledge-base entries in their fixed
// section order: feeds, products, flares, fuel, other. Quantities and
// shares are literals from the integration study; compositions are the
// workbook's component splits expressed in percent of the stream total.
func LoadKnowledgeBase() []KnowledgeEntry {
	return []KnowledgeEntry{
		// --- Feeds -----------------------------------------------------
		{
			ID:       "refinery-off-gas",
			Name:     BilingualText{EN: "Refinery Off-Gas", AR: "غاز المصفاة"},
			Category: CategoryFeed,
			Design:   Scalar(52000, KilogramsPerHour),
			Actual:   Scalar(48459.44, KilogramsPerHour),
			Composition: []CompositionItem{
				{Name: "H2", Min: 4.1, Max: 4.1},
				{Name: "CH4", Min: 49.4, Max: 49.4},
				{Name: "C2", Min: 11.7, Max: 11.7},
				{Name: "C3", Min: 9.2, Max: 9.2},
				{Name: "C4", Min: 15.4, Max: 15.4},
				{Name: "C5+", Min: 2.8, Max: 2.8},
				{Name: "CO", Min: 7.4, Max: 7.4},
			},
			Conditions: &OperatingConditions{Pressure: "5.2 barg", Temperature: "38 °C", Phase: "gas"},
			Routing: &Routing{
				From: BilingualText{EN: "MIDOR process units", AR: "وحدات معالجة ميدور"},
				To:   BilingualText{EN: "Gas recovery unit", AR: "وحدة استرداد الغاز"},
			},
			Comment: BilingualText{
				EN: "Largest single recoverable stream; rich in **ethane and LPG precursors**.",
				AR: "أكبر تيار واحد قابل للاسترداد؛ غني **بالإيثان ومكونات غاز البترول المسال**.",
			},
			DefinitionKey: "off-gas",
		},
		{
			ID:       "psa-purge",
			Name:     BilingualText{EN: "PSA Purge Gas", AR: "غاز تنظيف PSA"},
			Category: CategoryFeed,
			Design:   Scalar(68000, KilogramsPerHour),
			Actual:   Scalar(62786.45, KilogramsPerHour),
			Composition: []CompositionItem{
				{Name: "H2", Min: 2.2, Max: 2.2},
				{Name: "CH4", Min: 8.3, Max: 8.3},
				{Name: "CO", Min: 5.2, Max: 5.2},
				{Name: "CO2", Min: 84.2, Max: 84.2},
			},
			Conditions: &OperatingConditions{Pressure: "0.3 barg", Temperature: "40 °C", Phase: "gas"},
			Routing: &Routing{
				From: BilingualText{EN: "Hydrogen PSA unit", AR: "وحدة PSA للهيدروجين"},
				To:   BilingualText{EN: "Methanol synthesis", AR: "وحدة تصنيع الميثانول"},
			},
			Comment: BilingualText{
				EN: "CO2-dominated purge; the carbon feed for methanol synthesis.",
				AR: "غاز تنظيف يغلب عليه ثاني أكسيد الكربون؛ مصدر الكربون لتصنيع الميثانول.",
			},
			DefinitionKey: "psa",
		},
		{
			ID:       "sweep-gas",
			Name:     BilingualText{EN: "Sweep Gas", AR: "غاز الكنس"},
			Category: CategoryFeed,
			Design:   Scalar(4500, KilogramsPerHour),
			Actual:   Scalar(3723.42, KilogramsPerHour),
			Composition: []CompositionItem{
				{Name: "H2", Min: 9.3, Max: 9.3},
				{Name: "CH4", Min: 9.1, Max: 9.1},
				{Name: "C2", Min: 24.9, Max: 24.9},
				{Name: "C3", Min: 30.4, Max: 30.4},
				{Name: "C4", Min: 21.2, Max: 21.2},
				{Name: "C5+", Min: 4.7, Max: 4.7},
			},
			Conditions: &OperatingConditions{Pressure: "1.8 barg", Temperature: "45 °C", Phase: "gas"},
			Routing: &Routing{
				From: BilingualText{EN: "Isomerization section", AR: "قسم الأزمرة"},
				To:   BilingualText{EN: "Gas recovery unit", AR: "وحدة استرداد الغاز"},
			},
			DefinitionKey: "sweep-gas",
		},
		{
			ID:       "penex-off-gas",
			Name:     BilingualText{EN: "Penex Off-Gas", AR: "غاز بنيكس"},
			Category: CategoryFeed,
			Design:   Scalar(2600, KilogramsPerHour),
			Actual:   Scalar(2088.12, KilogramsPerHour),
			Composition: []CompositionItem{
				{Name: "H2", Min: 10.9, Max: 10.9},
				{Name: "CH4", Min: 4.7, Max: 4.7},
				{Name: "C2", Min: 10.0, Max: 10.0},
				{Name: "C3", Min: 31.0, Max: 31.0},
				{Name: "C4", Min: 14.5, Max: 14.5},
				{Name: "C5+", Min: 10.1, Max: 10.1},
			},
			Conditions: &OperatingConditions{Pressure: "2.5 barg", Temperature: "42 °C", Phase: "gas"},
			Routing: &Routing{
				From: BilingualText{EN: "Penex unit", AR: "وحدة بنيكس"},
				To:   BilingualText{EN: "Gas recovery unit", AR: "وحدة استرداد الغاز"},
			},
			DefinitionKey: "penex",
		},

		// --- Products --------------------------------------------------
		{
			ID:       "lpg-product",
			Name:     BilingualText{EN: "LPG (C3+C4)", AR: "غاز البترول المسال"},
			Category: CategoryProduct,
			Design:   Scalar(130000, TonnesPerYear),
			Actual:   Scalar(125508.57, TonnesPerYear),
			Routing: &Routing{
				From: BilingualText{EN: "Gas recovery unit", AR: "وحدة استرداد الغاز"},
				To:   BilingualText{EN: "LPG storage & sales", AR: "تخزين وبيع الغاز المسال"},
			},
			Comment: BilingualText{
				EN: "Highest-value recovered product at $91.5M per year.",
				AR: "أعلى المنتجات المستردة قيمةً بواقع 91.5 مليون دولار سنويًا.",
			},
			DefinitionKey: "lpg",
		},
		{
			ID:       "naphtha-product",
			Name:     BilingualText{EN: "Naphtha (C5+)", AR: "نافثا"},
			Category: CategoryProduct,
			Design:   Scalar(25000, TonnesPerYear),
			Actual:   Scalar(21733.10, TonnesPerYear),
			Routing: &Routing{
				From: BilingualText{EN: "Gas recovery unit", AR: "وحدة استرداد الغاز"},
				To:   BilingualText{EN: "Gasoline pool", AR: "مجمع البنزين"},
			},
			DefinitionKey: "naphtha",
		},
		{
			ID:       "hydrogen-product",
			Name:     BilingualText{EN: "Hydrogen (H2)", AR: "هيدروجين"},
			Category: CategoryProduct,
			Design:   Scalar(42000, TonnesPerYear),
			Actual:   Scalar(39444.77, TonnesPerYear),
			Routing: &Routing{
				From: BilingualText{EN: "Gas recovery unit", AR: "وحدة استرداد الغاز"},
				To:   BilingualText{EN: "Refinery use & methanol synthesis", AR: "استخدام المصفاة وتصنيع الميثانول"},
			},
			Comment: BilingualText{
				EN: "Covers 60% of the hydrogen required for full methanol production; the balance needs external supply.",
				AR: "يغطي 60% من الهيدروجين المطلوب لإنتاج الميثانول الكامل؛ الباقي يحتاج إمدادًا خارجيًا.",
			},
		},
		{
			ID:       "ethane-product",
			Name:     BilingualText{EN: "Ethane (C2)", AR: "إيثان"},
			Category: CategoryProduct,
			Design:   Range(83600, 121600, TonnesPerYear),
			Actual:   Scalar(59005.34, TonnesPerYear),
			Routing: &Routing{
				From: BilingualText{EN: "MIDOR gas recovery", AR: "استرداد الغاز بميدور"},
				To:   BilingualText{EN: "ETHYDCO cracker", AR: "وحدة التكسير بإيثيدكو"},
			},
			Comment: BilingualText{
				EN: "Design range is the ETHYDCO demand window; MIDOR covers 49-71% of it.",
				AR: "نطاق التصميم هو نافذة طلب إيثيدكو؛ تغطي ميدور 49-71% منه.",
			},
			DefinitionKey: "coverage",
		},
		{
			ID:       "methanol-product",
			Name:     BilingualText{EN: "Methanol Blend", AR: "ميثانول المزج"},
			Category: CategoryProduct,
			Design:   Scalar(80000, TonnesPerYear),
			Actual:   Scalar(79539.50, TonnesPerYear),
			Routing: &Routing{
				From: BilingualText{EN: "Methanol unit", AR: "وحدة الميثانول"},
				To:   BilingualText{EN: "Gasoline pool", AR: "مجمع البنزين"},
			},
			DefinitionKey: "methanol-blending",
		},
		{
			ID:       "ethylene-mto",
			Name:     BilingualText{EN: "Ethylene (MTO)", AR: "إيثيلين MTO"},
			Category: CategoryProduct,
			Design:   Scalar(45000, TonnesPerYear),
			Actual:   Scalar(40468.50, TonnesPerYear),
			Routing: &Routing{
				From: BilingualText{EN: "MTO unit", AR: "وحدة MTO"},
				To:   BilingualText{EN: "ETHYDCO polymer feed", AR: "تغذية البوليمرات بإيثيدكو"},
			},
			DefinitionKey: "mto",
		},
		{
			ID:       "propylene-mto",
			Name:     BilingualText{EN: "Propylene (MTO)", AR: "بروبيلين MTO"},
			Category: CategoryProduct,
			Design:   Scalar(65000, TonnesPerYear),
			Actual:   Scalar(60702.75, TonnesPerYear),
			Routing: &Routing{
				From: BilingualText{EN: "MTO unit", AR: "وحدة MTO"},
				To:   BilingualText{EN: "Polypropylene feed", AR: "تغذية البولي بروبيلين"},
			},
			DefinitionKey: "mto",
		},

		// --- Flares ----------------------------------------------------
		{
			ID:       "flare-gas-old",
			Name:     BilingualText{EN: "Flare Gas OLD", AR: "غاز الشعلة القديم"},
			Category: CategoryFlare,
			Design:   Scalar(6500, KilogramsPerHour),
			Actual:   Scalar(4122, KilogramsPerHour),
			Composition: []CompositionItem{
				{Name: "H2", Min: 10.5, Max: 10.5},
				{Name: "CH4", Min: 22.5, Max: 22.5},
				{Name: "C2", Min: 9.4, Max: 9.4},
				{Name: "C3", Min: 11.4, Max: 11.4},
				{Name: "C4", Min: 14.6, Max: 14.6},
				{Name: "C5+", Min: 11.4, Max: 11.4},
				{Name: "CO", Min: 13.8, Max: 13.8},
				{Name: "CO2", Min: 6.5, Max: 6.5},
			},
			Conditions: &OperatingConditions{Pressure: "0.1 barg", Temperature: "ambient", Phase: "gas"},
			Routing: &Routing{
				From: BilingualText{EN: "Old flare header", AR: "مجمع الشعلة القديم"},
				To:   BilingualText{EN: "Gas recovery unit", AR: "وحدة استرداد الغاز"},
			},
			Comment: BilingualText{
				EN: "Currently burned. Recovery turns a *pure loss* into product.",
				AR: "يُحرق حاليًا. الاسترداد يحول *خسارة صافية* إلى منتج.",
			},
			DefinitionKey: "flare",
		},
		{
			ID:       "flare-gas-new",
			Name:     BilingualText{EN: "Flare Gas New", AR: "غاز الشعلة الجديد"},
			Category: CategoryFlare,
			Design:   Scalar(5200, KilogramsPerHour),
			Actual:   Scalar(2989, KilogramsPerHour),
			Composition: []CompositionItem{
				{Name: "H2", Min: 12.3, Max: 12.3},
				{Name: "CH4", Min: 19.8, Max: 19.8},
				{Name: "C2", Min: 7.1, Max: 7.1},
				{Name: "C3", Min: 11.5, Max: 11.5},
				{Name: "C4", Min: 16.6, Max: 16.6},
				{Name: "C5+", Min: 9.9, Max: 9.9},
				{Name: "CO", Min: 14.6, Max: 14.6},
				{Name: "CO2", Min: 8.2, Max: 8.2},
			},
			Conditions: &OperatingConditions{Pressure: "0.1 barg", Temperature: "ambient", Phase: "gas"},
			Routing: &Routing{
				From: BilingualText{EN: "New flare header", AR: "مجمع الشعلة الجديد"},
				To:   BilingualText{EN: "Gas recovery unit", AR: "وحدة استرداد الغاز"},
			},
			DefinitionKey: "flare",
		},

		// --- Fuel ------------------------------------------------------
		{
			ID:       "fuel-gas-methane",
			Name:     BilingualText{EN: "Methane Fuel Gas", AR: "غاز وقود الميثان"},
			Category: CategoryFuel,
			Actual:   Scalar(251737.80, TonnesPerYear),
			Routing: &Routing{
				From: BilingualText{EN: "Gas recovery unit", AR: "وحدة استرداد الغاز"},
				To:   BilingualText{EN: "Refinery fuel gas system", AR: "شبكة غاز وقود المصفاة"},
			},
			Comment: BilingualText{
				EN: "Returned to the fuel system; offsets part of the natural gas makeup.",
				AR: "يُعاد إلى شبكة الوقود ويعوض جزءًا من الغاز الطبيعي التعويضي.",
			},
		},
		{
			ID:       "co-rich-gas",
			Name:     BilingualText{EN: "CO-Rich Gas", AR: "غاز غني بأول أكسيد الكربون"},
			Category: CategoryFuel,
			Actual:   Scalar(65956.12, TonnesPerYear),
			Routing: &Routing{
				From: BilingualText{EN: "Gas recovery unit", AR: "وحدة استرداد الغاز"},
				To:   BilingualText{EN: "Methanol synthesis", AR: "وحدة تصنيع الميثانول"},
			},
		},

		// --- Other -----------------------------------------------------
		{
			ID:       "co2-stream",
			Name:     BilingualText{EN: "CO2 Stream", AR: "تيار ثاني أكسيد الكربون"},
			Category: CategoryOther,
			Actual:   Scalar(408747.17, TonnesPerYear),
			Routing: &Routing{
				From: BilingualText{EN: "PSA purge separation", AR: "فصل غاز تنظيف PSA"},
				To:   BilingualText{EN: "Methanol synthesis", AR: "وحدة تصنيع الميثانول"},
			},
			Comment: BilingualText{
				EN: "Carbon source for methanol; surplus remains a disposal question.",
				AR: "مصدر الكربون للميثانول؛ الفائض يظل مسألة تصريف.",
			},
		},
		{
			ID:       "feed-limitations",
			Name:     BilingualText{EN: "Feed Limitations", AR: "قيود التغذية"},
			Category: CategoryOther,
			Notes: []BilingualText{
				{EN: "Recovery assumes 8000 operating hours per year", AR: "يفترض الاسترداد 8000 ساعة تشغيل سنويًا"},
				{EN: "Flare flows vary with upset frequency", AR: "تتغير تدفقات الشعلة مع تكرار الاضطرابات"},
				{EN: "PSA purge availability tracks hydrogen plant load", AR: "يتبع توفر غاز تنظيف PSA حمل وحدة الهيدروجين"},
			},
		},
		{
			ID:       "feed-composition",
			Name:     BilingualText{EN: "Combined Feed Composition", AR: "تركيب التغذية المجمعة"},
			Category: CategoryOther,
			Composition: []CompositionItem{
				{Name: "H2", Min: 3.5, Max: 4.5},
				{Name: "CH4", Min: 24, Max: 28},
				{Name: "C2", Min: 5, Max: 7},
				{Name: "C3", Min: 5.5, Max: 7.5},
				{Name: "C4", Min: 7, Max: 9},
				{Name: "C5+", Min: 2, Max: 3},
				{Name: "CO", Min: 6, Max: 8},
				{Name: "CO2", Min: 38, Max: 44},
			},
		},
	}
}
