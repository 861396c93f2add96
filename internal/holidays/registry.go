package holidays

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/SergeyKozhin/yearly-calendar/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

type fileDTO struct {
	Year     int          `yaml:"year"`
	Region   string       `yaml:"region"`
	Holidays []holidayDTO `yaml:"holidays"`
}

type holidayDTO struct {
	Date        string `yaml:"date"`
	Name        string `yaml:"name"`
	CutiBersama bool   `yaml:"cuti_bersama"`
}

// Registry holds one Table per year. Years without a table have no holidays.
type Registry struct {
	tables map[int]Table
}

func NewRegistry() *Registry {
	return &Registry{tables: make(map[int]Table)}
}

// NewDefaultRegistry loads the tables shipped with the binary and, when dir
// is not empty, every *.yaml file in dir on top of them.
func NewDefaultRegistry(dir string) (*Registry, error) {
	r := NewRegistry()
	if err := r.loadFS(embedded, "data"); err != nil {
		return nil, fmt.Errorf("load embedded holidays: %w", err)
	}

	if dir != "" {
		if err := r.loadFS(os.DirFS(dir), "."); err != nil {
			return nil, fmt.Errorf("load holidays from %s: %w", dir, err)
		}
	}

	return r, nil
}

// Set replaces the table for year.
func (r *Registry) Set(year int, t Table) {
	r.tables[year] = t
}

func (r *Registry) ForYear(year int) Table {
	return r.tables[year]
}

func (r *Registry) Lookup(date civil.Date) (*model.Holiday, bool) {
	return r.ForYear(date.Year).Lookup(date)
}

func (r *Registry) loadFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}

		data, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return err
		}

		year, table, err := Parse(data)
		if err != nil {
			return fmt.Errorf("%s: %w", e.Name(), err)
		}

		r.Set(year, table)
	}

	return nil
}

// Parse decodes one YAML holiday document.
func Parse(data []byte) (int, Table, error) {
	var dto fileDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return 0, nil, err
	}

	if dto.Year == 0 {
		return 0, nil, errors.New("year must be provided")
	}

	table := make(Table, len(dto.Holidays))
	for i, h := range dto.Holidays {
		d, err := civil.ParseDate(h.Date)
		if err != nil {
			return 0, nil, fmt.Errorf("holiday %d: invalid date %q", i, h.Date)
		}
		if d.Year != dto.Year {
			return 0, nil, fmt.Errorf("holiday %d: %s is outside %d", i, d, dto.Year)
		}

		table[i] = model.Holiday{
			Date:        d,
			Name:        h.Name,
			CutiBersama: h.CutiBersama,
		}
	}

	return dto.Year, table, nil
}
