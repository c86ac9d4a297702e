package breakeven

// CostPoint is total cost and revenue at one unit volume.
type CostPoint struct {
	Units      int     `json:"units"`
	TotalCosts float64 `json:"totalCosts"`
	Revenue    float64 `json:"revenue"`
}

// CostTable returns total costs and revenue for every unit volume from 0 to
// the analysis range inclusive.
func CostTable(in Inputs) []CostPoint {
	if in.AnalysisUnitRange < 0 {
		return nil
	}
	table := make([]CostPoint, in.AnalysisUnitRange+1)
	for u := range table {
		units := float64(u)
		table[u] = CostPoint{
			Units:      u,
			TotalCosts: in.FixedCosts + in.VariableCostPerUnit*units,
			Revenue:    in.PricePerUnit * units,
		}
	}
	return table
}
