package store

import (
	"context"
	"fmt"

	"github.com/Igorek95/Test-work-Dzerbun/pkg/models"
)

// Blank and NULL countries share the empty name.
const countGoodsPerCountrySQL = `
	SELECT COALESCE(NAME_COUNTRY, '') AS country, COUNT(ID_TOVAR)
	FROM GOODS
	GROUP BY country
	ORDER BY country
`

// CountGoodsPerCountry counts GOODS rows per country text, ordered by
// country name ascending.
func (m *Manager) CountGoodsPerCountry(ctx context.Context) ([]models.CountryCount, error) {
	if err := m.ready(); err != nil {
		return nil, err
	}

	rows, err := m.db.QueryContext(ctx, countGoodsPerCountrySQL)
	if err != nil {
		return nil, fmt.Errorf("failed to count goods per country: %w", err)
	}
	defer rows.Close()

	var counts []models.CountryCount
	for rows.Next() {
		var c models.CountryCount
		if err := rows.Scan(&c.Country, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan country count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// TableStats holds row counts of the three tables.
type TableStats struct {
	Goods     int64
	Countries int64
	Groups    int64
}

func (m *Manager) Stats(ctx context.Context) (TableStats, error) {
	var s TableStats
	if err := m.ready(); err != nil {
		return s, err
	}

	for _, q := range []struct {
		table string
		dst   *int64
	}{
		{"GOODS", &s.Goods},
		{"COUNTRY", &s.Countries},
		{"ISG", &s.Groups},
	} {
		if err := m.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+q.table).Scan(q.dst); err != nil {
			return s, fmt.Errorf("failed to count %s: %w", q.table, err)
		}
	}
	return s, nil
}

// Countries lists the COUNTRY table by id.
func (m *Manager) Countries(ctx context.Context) ([]models.Country, error) {
	var out []models.Country
	err := m.listNames(ctx, `SELECT ID_COUNTRY, NAME_COUNTRY FROM COUNTRY ORDER BY ID_COUNTRY`, func(id int64, name string) {
		out = append(out, models.Country{ID: id, Name: name})
	})
	return out, err
}

// ProductGroups lists the ISG table by id.
func (m *Manager) ProductGroups(ctx context.Context) ([]models.ProductGroup, error) {
	var out []models.ProductGroup
	err := m.listNames(ctx, `SELECT ID_ISG, NAME_ISG FROM ISG ORDER BY ID_ISG`, func(id int64, name string) {
		out = append(out, models.ProductGroup{ID: id, Name: name})
	})
	return out, err
}

func (m *Manager) listNames(ctx context.Context, query string, add func(int64, string)) error {
	if err := m.ready(); err != nil {
		return err
	}

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to list names: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return fmt.Errorf("failed to scan name: %w", err)
		}
		add(id, name)
	}
	return rows.Err()
}
