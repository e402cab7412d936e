package itembank

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// yamlRow mirrors the item-bank file format: columns number, trait,
// reverse, alpha, beta1..beta6.
type yamlRow struct {
	Number  int     `yaml:"number"`
	Trait   string  `yaml:"trait"`
	Reverse bool    `yaml:"reverse"`
	Alpha   float64 `yaml:"alpha"`
	Beta1   float64 `yaml:"beta1"`
	Beta2   float64 `yaml:"beta2"`
	Beta3   float64 `yaml:"beta3"`
	Beta4   float64 `yaml:"beta4"`
	Beta5   float64 `yaml:"beta5"`
	Beta6   float64 `yaml:"beta6"`
}

type yamlFile struct {
	Items []yamlRow `yaml:"items"`
}

func (r yamlRow) toItem() Item {
	return Item{
		Number:  r.Number,
		Trait:   Trait(r.Trait),
		Reverse: r.Reverse,
		Alpha:   r.Alpha,
		Beta:    [BetaCount]float64{r.Beta1, r.Beta2, r.Beta3, r.Beta4, r.Beta5, r.Beta6},
	}
}

// LoadFile reads a YAML item-bank file from path, validates it, and returns
// a ready-to-use Bank. A malformed file or row is a startup-fatal
// configuration error and is returned as a wrapped
// ErrInvalidItem/ErrBankIncomplete/ErrDuplicateItem.
func LoadFile(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("itembank: read %s: %w", path, err)
	}

	return Load(raw)
}

// Load parses raw YAML bytes in the item-bank file format and returns a
// validated Bank.
func Load(raw []byte) (*Bank, error) {
	var doc yamlFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("itembank: parse yaml: %w", err)
	}

	items := make([]Item, 0, len(doc.Items))
	for _, row := range doc.Items {
		it := row.toItem()
		if !isMonotoneBeta(it) {
			log.Warn().Int("item", it.Number).Msg("itembank: beta thresholds are not monotone non-decreasing")
		}
		items = append(items, it)
	}

	bank, err := New(items)
	if err != nil {
		return nil, err
	}

	log.Info().Int("items", bank.Size()).Msg("itembank: loaded bank")

	return bank, nil
}
