package dataset

// Sex is the categorical population selector of the input table.
type Sex string

const (
	Male   Sex = "Male"
	Female Sex = "Female"
	Total  Sex = "Total"
)

// validSex reports membership in the closed Sex enum.
func validSex(s Sex) bool {
	return s == Male || s == Female || s == Total
}

// Row is one (Sex, Age) record. Missing rates are NaN; exposures are
// raw counts, not shares.
type Row struct {
	Sex    Sex
	Age    int
	Mx1950 float64
	Mx2000 float64
	Px1950 float64
	Px2000 float64
}

// Table is the parsed input, row order preserved.
type Table struct {
	Rows []Row
}

// Series holds one sex's vectors, index-aligned by age group.
type Series struct {
	Sex    Sex
	Ages   []int
	Mx1950 []float64
	Mx2000 []float64
	Px1950 []float64
	Px2000 []float64
}

// Structures returns both exposure vectors rescaled to compositions
// (shares summing to 1). Zero total exposure yields ErrNoRows.
func (s *Series) Structures() (cx1950, cx2000 []float64, err error) {
	cx1950, err = normalize(s.Px1950)
	if err != nil {
		return nil, nil, err
	}
	cx2000, err = normalize(s.Px2000)
	if err != nil {
		return nil, nil, err
	}

	return cx1950, cx2000, nil
}

func normalize(px []float64) ([]float64, error) {
	var total float64
	for _, v := range px {
		total += v
	}
	if total == 0 {
		return nil, ErrNoRows
	}
	out := make([]float64, len(px))
	for i, v := range px {
		out[i] = v / total
	}

	return out, nil
}
