package grm

// NumCategories is the number of ordered response categories the kernel
// supports — the 1..7 Likert scale every item in the bank uses.
const NumCategories = 7

// numThresholds is NumCategories-1, the number of β thresholds an item
// carries.
const numThresholds = NumCategories - 1

// probabilityFloor is the ε floor applied to any category probability
// before renormalization: any entry below ε = 1e-12 is raised to ε and
// the vector is rescaled to sum to 1.
const probabilityFloor = 1e-12

// ItemParams is the minimal GRM parameterization the kernel needs: one
// discrimination and six ordered thresholds. It is deliberately decoupled
// from itembank.Item so this package has zero dependencies beyond the
// standard library; callers project their own item representation into an
// ItemParams at the call site.
type ItemParams struct {
	Alpha float64
	Beta  [numThresholds]float64
}
