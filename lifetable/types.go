package lifetable

// Options configures the treatment of raw mortality-rate vectors.
//
// Fields:
//   - MissingAsZero — treat NaN rate entries as zero hazard. This mirrors
//     the usual "no observed exposure" coercion in demographic sources,
//     but it is an approximation: with the flag disabled, Survivorship
//     and E0 return ErrMissingValue instead so nothing is coerced
//     silently.
//
// Example:
//
//	opts := lifetable.DefaultOptions()
//	opts.MissingAsZero = false // strict mode: NaN rates are an error
//	lx, err := lifetable.Survivorship(mx, &opts)
type Options struct {
	MissingAsZero bool
}

// DefaultOptions returns the documented defaults: MissingAsZero=true.
func DefaultOptions() Options {
	return Options{MissingAsZero: true}
}

// Columns bundles the derived lifetable columns for one rate vector.
// All slices share the length of the input rate vector.
type Columns struct {
	Survival    []float64 // lx — probability of surviving to age x
	Deaths      []float64 // dx — deaths within [x, x+1)
	PersonYears []float64 // Lx — person-years lived within [x, x+1)
	TotalYears  []float64 // Tx — person-years remaining above age x
	Expectancy  []float64 // ex — remaining life expectancy at age x
}
