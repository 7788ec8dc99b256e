package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Igorek95/Test-work-Dzerbun/internal/etl"
	"github.com/Igorek95/Test-work-Dzerbun/internal/store"
	"github.com/Igorek95/Test-work-Dzerbun/internal/testutil"
	"github.com/Igorek95/Test-work-Dzerbun/pkg/models"
)

type recordingLoader struct {
	got [][]models.CountryCount
	err error
}

func (r *recordingLoader) Load(_ context.Context, counts []models.CountryCount) error {
	r.got = append(r.got, counts)
	return r.err
}

func TestPipeline_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WriteGoodsXLSX(t, dir, "data.xlsx", testutil.SampleGoods)
	report := filepath.Join(dir, "data.tsv")

	sum, err := New(filepath.Join(dir, "store.sqlite"), src, "run-1", etl.NewTextReportLoader(report)).
		Run(context.Background())
	require.NoError(t, err)

	assert.Nil(t, sum.ImportErr)
	assert.Equal(t, 3, sum.Import.Goods)

	got, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Equal(t, "France - 1\nItaly - 2\n", string(got))
}

func TestPipeline_MissingSourceStillReports(t *testing.T) {
	dir := t.TempDir()
	report := filepath.Join(dir, "data.tsv")
	rec := &recordingLoader{}

	sum, err := New(filepath.Join(dir, "store.sqlite"), filepath.Join(dir, "missing.xlsx"), "run-2",
		etl.NewTextReportLoader(report), rec).Run(context.Background())
	require.NoError(t, err)

	require.NotNil(t, sum.ImportErr)
	assert.Equal(t, store.StageParse, sum.ImportErr.Stage)
	assert.Empty(t, sum.Counts)
	require.Len(t, rec.got, 1)

	got, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPipeline_FailedImportReportsStaleData(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "store.sqlite")
	report := filepath.Join(dir, "data.tsv")
	src := testutil.WriteGoodsXLSX(t, dir, "data.xlsx", testutil.SampleGoods)

	_, err := New(db, src, "run-a", etl.NewTextReportLoader(report)).Run(context.Background())
	require.NoError(t, err)

	sum, err := New(db, filepath.Join(dir, "gone.xlsx"), "run-b", etl.NewTextReportLoader(report)).Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sum.ImportErr)

	got, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Equal(t, "France - 1\nItaly - 2\n", string(got))
}

func TestPipeline_LoaderFailureIsFatal(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WriteGoodsXLSX(t, dir, "data.xlsx", testutil.SampleGoods)
	boom := errors.New("boom")
	second := &recordingLoader{}

	_, err := New(filepath.Join(dir, "store.sqlite"), src, "run-3", &recordingLoader{err: boom}, second).
		Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, second.got)
}

func TestPipeline_UnopenableStore(t *testing.T) {
	dir := t.TempDir()
	_, err := New(filepath.Join(dir, "no", "such", "dir", "store.sqlite"), "data.xlsx", "run-4").
		Run(context.Background())
	assert.Error(t, err)
}
