package searchsync

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"carmarket-service/internal/catalog"
	"carmarket-service/pkg/search"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testFiles() []catalog.BrandFile {
	return []catalog.BrandFile{
		{
			BrandID:  1,
			FileName: "vinfast.json",
			Models: []catalog.ModelRecord{
				{
					ID:   "m-1",
					Name: "VF 8",
					ModelYears: []catalog.ModelYearRecord{
						{
							ID:   "my-1",
							Year: 2024,
							Trims: []catalog.TrimRecord{
								{ID: "t-1", Name: "Eco"},
								{ID: "t-2", Name: "Plus"},
							},
						},
					},
				},
			},
		},
		{
			BrandID:  3,
			FileName: "toyota.json",
			Models: []catalog.ModelRecord{
				{
					ID:   "m-2",
					Name: "Vios",
					ModelYears: []catalog.ModelYearRecord{
						{ID: "my-2", Year: 2022},
					},
				},
			},
		},
	}
}

func TestRebuildIndex(t *testing.T) {
	index := newFakeIndex()
	p := &Pipeline{index: index, log: zap.NewNop()}

	require.NoError(t, p.rebuildIndex(context.Background(), testFiles()))

	require.Equal(t, []string{search.CollectionCarModels}, index.resets)
	require.Len(t, index.imports[search.CollectionCarModels], 2)
	require.Len(t, index.imports[search.CollectionCarModels][0], 2)
	require.Len(t, index.imports[search.CollectionCarModels][1], 1)
}

func TestRebuildIndexResetFailureIsFatal(t *testing.T) {
	index := newFakeIndex()
	index.resetErr = errors.New("engine unreachable")
	p := &Pipeline{index: index, log: zap.NewNop()}

	err := p.rebuildIndex(context.Background(), testFiles())
	require.Error(t, err)
	require.Empty(t, index.imports)
}

func TestRebuildIndexSkipsFailedFile(t *testing.T) {
	index := newFakeIndex()
	index.failFirstImports = 1
	p := &Pipeline{index: index, log: zap.NewNop()}

	// The first file's import is rejected; the run still succeeds and
	// the second file lands.
	require.NoError(t, p.rebuildIndex(context.Background(), testFiles()))
	require.Len(t, index.imports[search.CollectionCarModels], 1)
	require.Len(t, index.imports[search.CollectionCarModels][0], 1)
}

func TestRebuildIndexSkipsEmptyProjection(t *testing.T) {
	index := newFakeIndex()
	p := &Pipeline{index: index, log: zap.NewNop()}

	files := []catalog.BrandFile{
		{BrandID: 1, FileName: "empty.json", Models: []catalog.ModelRecord{{ID: "m-1", Name: "A"}}},
	}
	require.NoError(t, p.rebuildIndex(context.Background(), files))
	require.Empty(t, index.imports)
}

// fakeSyncer records the cancellation state of every context it is
// handed.
type fakeSyncer struct {
	calls   []string
	ctxErrs []error
}

func (f *fakeSyncer) record(ctx context.Context, call string) error {
	f.calls = append(f.calls, call)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	return nil
}

func (f *fakeSyncer) ResetCatalogTables(ctx context.Context) error {
	return f.record(ctx, "reset_catalog")
}

func (f *fakeSyncer) ResetBrands(ctx context.Context) error {
	return f.record(ctx, "reset_brands")
}

func (f *fakeSyncer) SyncBrands(ctx context.Context) error {
	return f.record(ctx, "sync_brands")
}

func (f *fakeSyncer) SyncFile(ctx context.Context, file *catalog.BrandFile) error {
	return f.record(ctx, "sync_file:"+file.FileName)
}

func TestRunFullSurvivesCallerCancellation(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "toyota.json"),
		[]byte(`{"brand_id": 2, "models": [{"id": "m-1", "model": "Vios", "model_years": [{"id": "my-1", "year": 2024}]}]}`),
		0o644))

	index := newFakeIndex()
	syncer := &fakeSyncer{}
	p := &Pipeline{
		syncer:    syncer,
		loader:    catalog.NewLoader(zap.NewNop()),
		index:     index,
		masterDir: dir,
		log:       zap.NewNop(),
	}

	// A disconnected admin client cancels the request context; the run
	// must still finish.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, p.RunFull(ctx))

	require.Equal(t, []string{"reset_brands", "reset_catalog", "sync_brands", "sync_file:toyota.json"}, syncer.calls)
	for i, err := range syncer.ctxErrs {
		require.NoError(t, err, syncer.calls[i])
	}
	require.Len(t, index.imports[search.CollectionCarModels], 1)
}

func TestRunFullRejectsConcurrentSync(t *testing.T) {
	p := &Pipeline{index: newFakeIndex(), log: zap.NewNop()}

	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.RunFull(context.Background())
	require.ErrorIs(t, err, ErrSyncInProgress)
}

func TestSearchCarModels(t *testing.T) {
	index := newFakeIndex()
	index.searchRes = &search.Result{Found: 1, Page: 2, PerPage: 5}
	p := &Pipeline{index: index, log: zap.NewNop()}

	res, err := p.SearchCarModels(context.Background(), "vios", 2, 5)
	require.NoError(t, err)
	require.Equal(t, 1, res.Found)

	require.Len(t, index.searches, 1)
	require.Equal(t, "vios", index.searches[0].Text)
	require.Equal(t, "title", index.searches[0].QueryBy)
	require.Equal(t, 2, index.searches[0].Page)
	require.Equal(t, 5, index.searches[0].PerPage)
}
