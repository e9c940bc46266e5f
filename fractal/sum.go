package fractal

// SumArea generates the sequence for the same arguments as Generate and returns its
// TotalArea.
func SumArea(formula AreaFormula, dims []float64, cfg Config) (float64, error) {
	seq, err := Generate(formula, dims, cfg)
	if err != nil {
		return 0, err
	}
	return seq.TotalArea(), nil
}
