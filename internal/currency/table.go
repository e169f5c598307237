package currency

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"resale/internal/domain/models"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Table is the read-only set of currencies the marketplace trades in.
type Table struct {
	byCode map[string]models.Currency
	byID   map[int64]models.Currency
}

type tableFile struct {
	Currencies []models.Currency `yaml:"currencies"`
}

// LoadTable reads and validates a YAML currency file.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read currency table: %w", err)
	}
	return ParseTable(data)
}

// ParseTable decodes a YAML document of the form `currencies: [...]`.
func ParseTable(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse currency table: %w", err)
	}
	return NewTable(f.Currencies)
}

// NewTable validates every entry and rejects duplicate codes or ids.
func NewTable(list []models.Currency) (*Table, error) {
	if len(list) == 0 {
		return nil, errors.New("currency table is empty")
	}
	t := &Table{
		byCode: make(map[string]models.Currency, len(list)),
		byID:   make(map[int64]models.Currency, len(list)),
	}
	for _, c := range list {
		if err := validate.Struct(c); err != nil {
			return nil, fmt.Errorf("currency %q: %w", c.Code, err)
		}
		if _, dup := t.byCode[c.Code]; dup {
			return nil, fmt.Errorf("currency %q: duplicate code", c.Code)
		}
		if _, dup := t.byID[c.ID]; dup {
			return nil, fmt.Errorf("currency %q: duplicate id %d", c.Code, c.ID)
		}
		t.byCode[c.Code] = c
		t.byID[c.ID] = c
	}
	return t, nil
}

// ByCode looks a currency up case-insensitively.
func (t *Table) ByCode(code string) (models.Currency, bool) {
	c, ok := t.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

func (t *Table) ByID(id int64) (models.Currency, bool) {
	c, ok := t.byID[id]
	return c, ok
}

// Codes returns the known codes sorted by currency id.
func (t *Table) Codes() []string {
	all := make([]models.Currency, 0, len(t.byID))
	for _, c := range t.byID {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	out := make([]string, len(all))
	for i, c := range all {
		out[i] = c.Code
	}
	return out
}
