package schema

// OperatingHoursPerYear is the annualization basis used throughout the
// study tables: an hourly flow times 8000 operating hours gives the
// yearly quantity. Some precomputed values in the source workbook imply
// a slightly different implicit basis; those literals are carried as-is
// and never recomputed (see DESIGN.md).
const OperatingHoursPerYear = 8000.0

// Unit is a display unit for a quantity.
type Unit string

const (
	KilogramsPerHour Unit = "kg/h"
	TonnesPerHour    Unit = "t/h"
	TonnesPerYear    Unit = "t/y"
)

// AnnualizeHourly converts a per-hour quantity to a per-year quantity.
func AnnualizeHourly(hourly float64) float64 {
	return hourly * OperatingHoursPerYear
}

// HourlyFromAnnual converts a per-year quantity back to a per-hour quantity.
func HourlyFromAnnual(annual float64) float64 {
	return annual / OperatingHoursPerYear
}

// KilogramsToTonnes converts kilograms to metric tonnes.
func KilogramsToTonnes(kg float64) float64 {
	return kg / 1000.0
}

// HourlyKgToAnnualTonnes converts a kg/h flow to t/y.
func HourlyKgToAnnualTonnes(kgPerHour float64) float64 {
	return KilogramsToTonnes(AnnualizeHourly(kgPerHour))
}

// Utilization returns the capacity utilization of actual against design
// as a percentage clamped to [0, 100]. A missing or zero design resolves
// to 0 rather than dividing by zero.
func Utilization(actual, design float64) float64 {
	if design <= 0 {
		return 0
	}
	pct := actual / design * 100.0
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
