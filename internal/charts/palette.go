package charts

// Dashboard palette. Keep in sync with the CSS variables in the report
// template and the slide color table.
const (
	colorPrimary   = "#0ea5e9"
	colorSecondary = "#06b6d4"
	colorAccent    = "#f59e0b"
	colorSuccess   = "#22c55e"
	colorDanger    = "#ef4444"
	colorGray      = "#94a3b8"
	colorLight     = "#f1f5f9"
	colorFlare     = "#f97316"
	colorViolet    = "#8b5cf6"

	gridLineColor = "rgba(255,255,255,0.1)"
	transparent   = "rgba(0,0,0,0)"
)
