package schema

// DefinitionEntry is one glossary item shown as a popover when a card
// references it through its DefinitionKey. Short is the one-line popover
// lead; Long is the expanded explanation below it.
type DefinitionEntry struct {
	Key   string
	Term  BilingualText
	Short BilingualText
	Long  BilingualText
}

// LoadDefinitions returns the glossary keyed for popover lookup.
func LoadDefinitions() map[string]DefinitionEntry {
	entries := []DefinitionEntry{
		{
			Key:   "off-gas",
			Term:  BilingualText{EN: "Refinery Off-Gas", AR: "غاز المصفاة"},
			Short: BilingualText{EN: "Light gas byproduct of refinery process units.", AR: "غاز خفيف ناتج عن وحدات معالجة المصفاة."},
			Long: BilingualText{
				EN: "Mixed light hydrocarbons, hydrogen and carbon oxides collected from process units, normally routed to the fuel gas system or flared. Recovery separates it into salable fractions instead.",
				AR: "خليط من الهيدروكربونات الخفيفة والهيدروجين وأكاسيد الكربون يُجمع من وحدات المعالجة، ويُوجَّه عادة إلى شبكة غاز الوقود أو الشعلة. يفصله الاسترداد إلى أجزاء قابلة للبيع بدلًا من ذلك.",
			},
		},
		{
			Key:   "psa",
			Term:  BilingualText{EN: "PSA (Pressure Swing Adsorption)", AR: "الامتزاز بتأرجح الضغط"},
			Short: BilingualText{EN: "Hydrogen purification process.", AR: "عملية تنقية الهيدروجين."},
			Long: BilingualText{
				EN: "Purifies hydrogen by adsorbing impurities at high pressure and releasing them at low pressure. The purge gas carries the rejected CO2, CO and methane and is the carbon feed for methanol synthesis.",
				AR: "تنقي الهيدروجين بامتزاز الشوائب عند ضغط مرتفع وإطلاقها عند ضغط منخفض. يحمل غاز التنظيف ثاني أكسيد الكربون وأول أكسيد الكربون والميثان المرفوضة وهو مصدر الكربون لتصنيع الميثانول.",
			},
		},
		{
			Key:   "sweep-gas",
			Term:  BilingualText{EN: "Sweep Gas", AR: "غاز الكنس"},
			Short: BilingualText{EN: "Carrier gas purged from the isomerization section.", AR: "غاز ناقل يُطرد من قسم الأزمرة."},
			Long: BilingualText{
				EN: "Rich in C2-C4 hydrocarbons, which makes it a worthwhile recovery target despite its small flow.",
				AR: "غني بالهيدروكربونات C2-C4، ما يجعله هدفًا مجديًا للاسترداد رغم صغر تدفقه.",
			},
		},
		{
			Key:   "penex",
			Term:  BilingualText{EN: "Penex", AR: "بنيكس"},
			Short: BilingualText{EN: "Light naphtha isomerization unit.", AR: "وحدة أزمرة النافثا الخفيفة."},
			Long: BilingualText{
				EN: "Upgrades light naphtha octane by isomerization; its off-gas is the smallest recovered stream but carries a high C3/C4 share.",
				AR: "ترفع رقم أوكتان النافثا الخفيفة بالأزمرة؛ غازها الخارج أصغر التيارات المستردة لكنه يحمل نسبة عالية من C3/C4.",
			},
		},
		{
			Key:   "lpg",
			Term:  BilingualText{EN: "LPG", AR: "غاز البترول المسال"},
			Short: BilingualText{EN: "Liquefied petroleum gas, the C3+C4 fraction.", AR: "غاز البترول المسال، جزء C3+C4."},
			Long: BilingualText{
				EN: "Propane and butane condensed from the recovered gas and sold as product. The single largest value contributor of the integration.",
				AR: "بروبان وبيوتان مكثفان من الغاز المسترد ويباعان كمنتج. أكبر مساهم منفرد في قيمة التكامل.",
			},
		},
		{
			Key:   "naphtha",
			Term:  BilingualText{EN: "Naphtha (C5+)", AR: "نافثا"},
			Short: BilingualText{EN: "Condensed C5-and-heavier fraction.", AR: "الجزء المكثف C5 وما أثقل."},
			Long: BilingualText{
				EN: "Pentanes and heavier hydrocarbons recovered as liquid and blended into the gasoline pool at naphtha value.",
				AR: "بنتانات وهيدروكربونات أثقل تُسترد كسائل وتُمزج في مجمع البنزين بقيمة النافثا.",
			},
		},
		{
			Key:   "flare",
			Term:  BilingualText{EN: "Flare Gas", AR: "غاز الشعلة"},
			Short: BilingualText{EN: "Gas currently burned at the flare stack.", AR: "غاز يُحرق حاليًا في الشعلة."},
			Long: BilingualText{
				EN: "Relief and excess gas sent to the flare headers and burned. Recovering it is the core of phases 1 and 2: every tonne diverted is product instead of emissions.",
				AR: "غاز التنفيس والفائض المرسل إلى مجمعات الشعلة ويُحرق. استرداده جوهر المرحلتين 1 و2: كل طن يُحوَّل هو منتج بدلًا من انبعاثات.",
			},
		},
		{
			Key:   "coverage",
			Term:  BilingualText{EN: "C2 Coverage", AR: "تغطية الإيثان"},
			Short: BilingualText{EN: "Share of ETHYDCO's ethane demand MIDOR can satisfy.", AR: "نسبة طلب إيثيدكو من الإيثان التي يمكن لميدور تلبيتها."},
			Long: BilingualText{
				EN: "ETHYDCO's cracker demand is a window rather than a point; MIDOR's recovered supply covers 71% of the low end and 49% of the high end.",
				AR: "طلب وحدة التكسير بإيثيدكو نافذة وليس نقطة؛ يغطي إمداد ميدور المسترد 71% من الحد الأدنى و49% من الحد الأقصى.",
			},
		},
		{
			Key:   "methanol-blending",
			Term:  BilingualText{EN: "Methanol Blending", AR: "مزج الميثانول"},
			Short: BilingualText{EN: "Adding methanol to gasoline up to the blend limit.", AR: "إضافة الميثانول إلى البنزين حتى حد المزج."},
			Long: BilingualText{
				EN: "Methanol produced from recovered CO2 and hydrogen is monetized first by blending into gasoline up to the allowed limit; the remainder goes to MTO conversion.",
				AR: "يُحقق الميثانول المنتج من ثاني أكسيد الكربون والهيدروجين المستردين قيمته أولًا بالمزج في البنزين حتى الحد المسموح؛ ويذهب الباقي إلى تحويل MTO.",
			},
		},
		{
			Key:   "mto",
			Term:  BilingualText{EN: "MTO (Methanol to Olefins)", AR: "الميثانول إلى الأوليفينات"},
			Short: BilingualText{EN: "Catalytic conversion of methanol into olefins.", AR: "التحويل الحفزي للميثانول إلى أوليفينات."},
			Long: BilingualText{
				EN: "Converts methanol into ethylene and propylene over a zeolite catalyst, turning recovered carbon into polymer feed at olefin prices.",
				AR: "يحوّل الميثانول إلى إيثيلين وبروبيلين على حفاز زيوليتي، محولًا الكربون المسترد إلى تغذية للبوليمرات بأسعار الأوليفينات.",
			},
		},
	}

	m := make(map[string]DefinitionEntry, len(entries))
	for _, e := range entries {
		m[e.Key] = e
	}
	return m
}
