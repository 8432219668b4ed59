package analysis

import "fmt"

// Column names as written by the simulation exporter. The per-gamma files use
// short names; the per-theta and market-size files use the long uppercase
// headers.
const (
	ColGamma          = "Gamma"
	ColPhi            = "Phi"
	ColPercentage     = "Percentage"
	ColPhiConditional = "Phi_bedingt"

	ColTheta        = "THETA"
	ColMarketSize   = "MARKET SIZE"
	ColDegree       = "DEGREE OF TACIT COLLUSION"
	ColCoordination = "PERCENTAGE OF COORDINATION"

	ColPeriod = "Period"
	ColAlpha  = "alpha"

	// Column names produced when melting a surface file.
	ColDelta = "delta"
)

// FirmColumn returns the time-series column of one firm's decision variable,
// e.g. "Price of firm 1".
func FirmColumn(c Competition, firm int) string {
	return fmt.Sprintf("%s of firm %d", c.Variable(), firm)
}
