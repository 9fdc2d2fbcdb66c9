package render

// Utilization thresholds. Boundary values belong to the upper tier: exactly
// 90% is critical, exactly 70% is a warning.
const (
	CriticalThreshold = 90.0
	WarningThreshold  = 70.0
)

// Tier is the severity of a utilization percentage.
type Tier int

const (
	TierNormal Tier = iota
	TierWarning
	TierCritical
)

// Classify maps a used-space percentage to its severity tier. The caller is
// responsible for computing the percentage; a zero sentinel for an empty
// volume classifies as normal like any other value.
func Classify(usedPercent float64) Tier {
	switch {
	case usedPercent >= CriticalThreshold:
		return TierCritical
	case usedPercent >= WarningThreshold:
		return TierWarning
	default:
		return TierNormal
	}
}

// Color returns the ANSI color code for the tier.
func (t Tier) Color() string {
	switch t {
	case TierCritical:
		return ColorRed
	case TierWarning:
		return ColorYellow
	default:
		return ColorGreen
	}
}

func (t Tier) String() string {
	switch t {
	case TierCritical:
		return "critical"
	case TierWarning:
		return "warning"
	default:
		return "normal"
	}
}
