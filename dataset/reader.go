package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// header is the fixed six-column layout of the input table.
var header = []string{"Sex", "Age", "Mx_1950", "Mx_2000", "Px_1950", "Px_2000"}

// ReadTable parses the CSV form of the input table.
//
// Per row: Sex must be Male/Female/Total; Age a non-negative integer,
// strictly ascending within its sex; rates non-negative reals with
// "" / "NA" / "NaN" meaning missing (stored as NaN — the lifetable
// missing-value policy decides later what that means); exposures
// non-negative reals, required. The table is read once, fully, into
// memory; nothing is ever written back.
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", ErrBadHeader)
	}
	if len(head) != len(header) {
		return nil, ErrBadHeader
	}
	for i, want := range header {
		if strings.TrimSpace(head[i]) != want {
			return nil, ErrBadHeader
		}
	}

	t := &Table{}
	lastAge := map[Sex]int{}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, ErrBadRecord)
		}

		row, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if prev, seen := lastAge[row.Sex]; seen && row.Age <= prev {
			return nil, fmt.Errorf("line %d: %w", line, ErrAgeOrder)
		}
		lastAge[row.Sex] = row.Age
		t.Rows = append(t.Rows, row)
	}
	if len(t.Rows) == 0 {
		return nil, ErrNoRows
	}

	return t, nil
}

func parseRow(rec []string) (Row, error) {
	sex := Sex(strings.TrimSpace(rec[0]))
	if !validSex(sex) {
		return Row{}, ErrUnknownSex
	}
	age, err := strconv.Atoi(strings.TrimSpace(rec[1]))
	if err != nil || age < 0 {
		return Row{}, ErrBadRecord
	}

	mx1, err := parseRate(rec[2])
	if err != nil {
		return Row{}, err
	}
	mx2, err := parseRate(rec[3])
	if err != nil {
		return Row{}, err
	}
	px1, err := parseExposure(rec[4])
	if err != nil {
		return Row{}, err
	}
	px2, err := parseExposure(rec[5])
	if err != nil {
		return Row{}, err
	}

	return Row{Sex: sex, Age: age, Mx1950: mx1, Mx2000: mx2, Px1950: px1, Px2000: px2}, nil
}

// parseRate accepts a non-negative real or a missing marker ("", NA, NaN).
func parseRate(field string) (float64, error) {
	f := strings.TrimSpace(field)
	switch f {
	case "", "NA", "NaN", ".":
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(f, 64)
	if err != nil {
		return 0, ErrBadRecord
	}
	if v < 0 {
		return 0, ErrNegativeValue
	}

	return v, nil
}

// parseExposure accepts a required non-negative real.
func parseExposure(field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, ErrBadRecord
	}
	if v < 0 || math.IsNaN(v) {
		return 0, ErrNegativeValue
	}

	return v, nil
}

// Sexes lists the distinct sexes in first-appearance order.
func (t *Table) Sexes() []Sex {
	var out []Sex
	seen := map[Sex]bool{}
	for _, row := range t.Rows {
		if !seen[row.Sex] {
			seen[row.Sex] = true
			out = append(out, row.Sex)
		}
	}

	return out
}

// Series extracts one sex's vectors, index-aligned by age group.
func (t *Table) Series(sex Sex) (*Series, error) {
	if !validSex(sex) {
		return nil, ErrUnknownSex
	}
	s := &Series{Sex: sex}
	for _, row := range t.Rows {
		if row.Sex != sex {
			continue
		}
		s.Ages = append(s.Ages, row.Age)
		s.Mx1950 = append(s.Mx1950, row.Mx1950)
		s.Mx2000 = append(s.Mx2000, row.Mx2000)
		s.Px1950 = append(s.Px1950, row.Px1950)
		s.Px2000 = append(s.Px2000, row.Px2000)
	}
	if len(s.Ages) == 0 {
		return nil, ErrNoRows
	}

	return s, nil
}
