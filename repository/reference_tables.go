package repository

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"sync"

	"gopkg.in/yaml.v3"

	"policy-valuation/domain"
)

//go:embed reference_tables.yaml
var embeddedReferenceTables []byte

const (
	ReferenceRateCount = 9
	ReferenceYearCount = 35
)

var ErrMalformedTable = errors.New("malformed reference table")

type ReferenceTableRepository interface {
	// Tables returns the low and high premium anchor tables.
	Tables() (low, high domain.ReferenceTable, err error)
}

type referenceTableFile struct {
	Tables []domain.ReferenceTable `yaml:"tables"`
}

// YAMLReferenceTables decodes reference tables from YAML once and hands out
// copies on every call.
type YAMLReferenceTables struct {
	raw []byte

	once sync.Once
	low  domain.ReferenceTable
	high domain.ReferenceTable
	err  error
}

// NewEmbeddedReferenceTables returns the tables compiled into the binary.
func NewEmbeddedReferenceTables() *YAMLReferenceTables {
	return NewYAMLReferenceTables(embeddedReferenceTables)
}

func NewYAMLReferenceTables(raw []byte) *YAMLReferenceTables {
	return &YAMLReferenceTables{raw: raw}
}

func (r *YAMLReferenceTables) Tables() (domain.ReferenceTable, domain.ReferenceTable, error) {
	r.once.Do(r.load)
	if r.err != nil {
		return domain.ReferenceTable{}, domain.ReferenceTable{}, r.err
	}
	return r.low.Clone(), r.high.Clone(), nil
}

func (r *YAMLReferenceTables) load() {
	var file referenceTableFile
	if err := yaml.Unmarshal(r.raw, &file); err != nil {
		r.err = fmt.Errorf("%w: %v", ErrMalformedTable, err)
		return
	}

	if len(file.Tables) != 2 {
		r.err = fmt.Errorf("%w: expected 2 tables, got %d", ErrMalformedTable, len(file.Tables))
		return
	}

	low, high := file.Tables[0], file.Tables[1]
	if low.Premium > high.Premium {
		low, high = high, low
	}
	if low.Premium == high.Premium {
		r.err = fmt.Errorf("%w: anchor premiums must differ (both %.2f)", ErrMalformedTable, low.Premium)
		return
	}

	for _, t := range []domain.ReferenceTable{low, high} {
		if err := validateTable(t); err != nil {
			r.err = err
			return
		}
	}

	for j := range low.Rates {
		if low.Rates[j] != high.Rates[j] {
			r.err = fmt.Errorf("%w: rate axes differ at column %d", ErrMalformedTable, j)
			return
		}
	}

	r.low, r.high = low, high
}

func validateTable(t domain.ReferenceTable) error {
	if t.Premium <= 0 || math.IsNaN(t.Premium) || math.IsInf(t.Premium, 0) {
		return fmt.Errorf("%w: invalid premium %v", ErrMalformedTable, t.Premium)
	}
	if len(t.Rates) != ReferenceRateCount {
		return fmt.Errorf("%w: premium %.0f has %d rates, want %d",
			ErrMalformedTable, t.Premium, len(t.Rates), ReferenceRateCount)
	}
	for j := 1; j < len(t.Rates); j++ {
		if !(t.Rates[j] > t.Rates[j-1]) {
			return fmt.Errorf("%w: premium %.0f rates not strictly ascending at column %d",
				ErrMalformedTable, t.Premium, j)
		}
	}
	if len(t.Rows) != ReferenceYearCount {
		return fmt.Errorf("%w: premium %.0f has %d rows, want %d",
			ErrMalformedTable, t.Premium, len(t.Rows), ReferenceYearCount)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Rates) {
			return fmt.Errorf("%w: premium %.0f year %d has %d values, want %d",
				ErrMalformedTable, t.Premium, i+1, len(row), len(t.Rates))
		}
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: premium %.0f year %d has a non-finite value",
					ErrMalformedTable, t.Premium, i+1)
			}
		}
	}
	return nil
}
