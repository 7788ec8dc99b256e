package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Igorek95/Test-work-Dzerbun/internal/etl"
	"github.com/Igorek95/Test-work-Dzerbun/pkg/models"
)

// ImportStage names the step of an import that failed.
type ImportStage string

const (
	StageParse     ImportStage = "parse"
	StageTransform ImportStage = "transform"
	StageGoods     ImportStage = "goods"
	StageCountries ImportStage = "countries"
	StageGroups    ImportStage = "groups"
)

// ImportError is a failed import. Each stage commits on its own, so when
// Partial is set GOODS already holds the new rows while COUNTRY and ISG
// may be incomplete.
type ImportError struct {
	Stage   ImportStage
	Partial bool
	Err     error
}

func (e *ImportError) Error() string {
	msg := fmt.Sprintf("import failed at %s stage: %v", e.Stage, e.Err)
	if e.Partial {
		msg += " (goods already replaced, dimension tables may be incomplete)"
	}
	return msg
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// ImportResult describes what an import wrote.
type ImportResult struct {
	Goods int
	// Distinct non-blank names seen in the source, first-seen order.
	Countries []string
	Groups    []string
	// Rows actually inserted; names already stored are skipped.
	CountriesAdded int64
	GroupsAdded    int64
}

const (
	deleteGoodsSQL   = `DELETE FROM GOODS`
	insertGoodSQL    = `INSERT INTO GOODS (ID_TOVAR, NAME_TOVAR, BARCOD, ID_ISG, NAME_ISG, NAME_COUNTRY) VALUES (?, ?, ?, ?, ?, ?)`
	insertCountrySQL = `INSERT OR IGNORE INTO COUNTRY (NAME_COUNTRY) VALUES (?)`
	insertGroupSQL   = `INSERT OR IGNORE INTO ISG (NAME_ISG) VALUES (?)`
)

// ImportDataFromXLSX imports the first worksheet of the workbook at path.
func (m *Manager) ImportDataFromXLSX(ctx context.Context, path string) (ImportResult, error) {
	return m.Import(ctx, etl.NewXLSXExtractor(path))
}

// Import replaces GOODS with the extracted rows, then adds the distinct
// country and group names to COUNTRY and ISG. Failures of the import
// itself are returned as *ImportError; lifecycle violations are not.
func (m *Manager) Import(ctx context.Context, ext etl.Extractor) (ImportResult, error) {
	var res ImportResult
	if err := m.ready(); err != nil {
		return res, err
	}

	sheet, err := ext.Extract(ctx)
	if err != nil {
		return res, &ImportError{Stage: StageParse, Err: err}
	}

	goods, err := etl.NewTransformer(m.mapping).TransformToGoods(sheet)
	if err != nil {
		return res, &ImportError{Stage: StageTransform, Err: err}
	}

	if err := m.replaceGoods(ctx, goods); err != nil {
		return res, &ImportError{Stage: StageGoods, Err: err}
	}
	res.Goods = len(goods)

	res.Countries = distinct(goods, func(g models.Good) string { return g.CountryName })
	res.CountriesAdded, err = m.insertNames(ctx, insertCountrySQL, res.Countries)
	if err != nil {
		return res, &ImportError{Stage: StageCountries, Partial: true, Err: err}
	}

	res.Groups = distinct(goods, func(g models.Good) string { return g.GroupName })
	res.GroupsAdded, err = m.insertNames(ctx, insertGroupSQL, res.Groups)
	if err != nil {
		return res, &ImportError{Stage: StageGroups, Partial: true, Err: err}
	}

	m.state = Loaded
	return res, nil
}

func (m *Manager) replaceGoods(ctx context.Context, goods []models.Good) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteGoodsSQL); err != nil {
		return fmt.Errorf("failed to clear goods: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertGoodSQL)
	if err != nil {
		return fmt.Errorf("failed to prepare goods insert: %w", err)
	}
	defer stmt.Close()

	for _, g := range goods {
		var groupID sql.NullInt64
		if g.GroupID != nil {
			groupID = sql.NullInt64{Int64: *g.GroupID, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, g.ID, g.Name, g.Barcode, groupID, g.GroupName, g.CountryName); err != nil {
			return fmt.Errorf("failed to insert good %d: %w", g.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit goods: %w", err)
	}
	return nil
}

func (m *Manager) insertNames(ctx context.Context, query string, names []string) (int64, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	var added int64
	for _, name := range names {
		r, err := stmt.ExecContext(ctx, name)
		if err != nil {
			return 0, fmt.Errorf("failed to insert %q: %w", name, err)
		}
		n, err := r.RowsAffected()
		if err != nil {
			return 0, err
		}
		added += n
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return added, nil
}

// distinct returns the non-blank values of field in first-seen order.
func distinct(goods []models.Good, field func(models.Good) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, g := range goods {
		v := field(g)
		if strings.TrimSpace(v) == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
