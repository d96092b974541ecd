package slides

// Deck colors, matched to the dashboard palette.
var (
	colorPrimary   = RGB{14, 165, 233}  // #0ea5e9
	colorSecondary = RGB{6, 182, 212}   // #06b6d4
	colorAccent    = RGB{245, 158, 11}  // #f59e0b
	colorSuccess   = RGB{34, 197, 94}   // #22c55e
	colorDanger    = RGB{239, 68, 68}   // #ef4444
	colorDark      = RGB{15, 23, 42}    // #0f172a
	colorDarkLight = RGB{30, 41, 59}    // #1e293b
	colorWhite     = RGB{255, 255, 255}
	colorGray      = RGB{148, 163, 184} // #94a3b8
	colorLight     = RGB{241, 245, 249} // #f1f5f9
	colorTotalCell = RGB{20, 50, 40}
)
