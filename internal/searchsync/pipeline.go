// Package searchsync keeps the search indexes consistent with the
// relational store: the full catalog rebuild pipeline and the
// best-effort mirroring of listing writes.
package searchsync

import (
	"context"
	"errors"
	"sync"
	"time"

	"carmarket-service/internal/catalog"
	"carmarket-service/pkg/search"
	"carmarket-service/prometheus"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrSyncInProgress is returned when a full resync is requested while
// another one is still running.
var ErrSyncInProgress = errors.New("catalog sync already in progress")

// catalogSyncer is the relational stage of the resync.
type catalogSyncer interface {
	ResetCatalogTables(ctx context.Context) error
	ResetBrands(ctx context.Context) error
	SyncBrands(ctx context.Context) error
	SyncFile(ctx context.Context, file *catalog.BrandFile) error
}

// Pipeline runs the full catalog resync: truncate and repopulate the
// relational tables from the master files, then rebuild the car_models
// index from the same parsed data.
type Pipeline struct {
	syncer    catalogSyncer
	loader    *catalog.Loader
	index     search.IndexClient
	masterDir string
	log       *zap.Logger

	mu sync.Mutex
}

func NewPipeline(db *gorm.DB, index search.IndexClient, masterDir string, log *zap.Logger) *Pipeline {
	return &Pipeline{
		syncer:    catalog.NewSyncer(db, log),
		loader:    catalog.NewLoader(log),
		index:     index,
		masterDir: masterDir,
		log:       log,
	}
}

// RunFull executes the whole pipeline synchronously. A relational
// write failure aborts the remainder of the resync; an index import
// failure only skips that file. Concurrent calls are rejected with
// ErrSyncInProgress.
//
// A started run cannot be cancelled: the caller's context is detached
// so a dropped HTTP connection cannot abort the resync between the
// truncate and the repopulation.
func (p *Pipeline) RunFull(ctx context.Context) error {
	if !p.mu.TryLock() {
		return ErrSyncInProgress
	}
	defer p.mu.Unlock()

	ctx = context.WithoutCancel(ctx)

	start := time.Now()
	p.log.Info("starting full catalog sync", zap.String("dir", p.masterDir))

	files, err := p.loader.LoadDir(p.masterDir)
	if err != nil {
		return err
	}

	// Relational stage: reset everything so no orphaned rows survive a
	// master-file rename or removal, then upsert file by file.
	if err := p.syncer.ResetBrands(ctx); err != nil {
		return err
	}
	if err := p.syncer.ResetCatalogTables(ctx); err != nil {
		return err
	}
	if err := p.syncer.SyncBrands(ctx); err != nil {
		return err
	}
	for i := range files {
		if err := p.syncer.SyncFile(ctx, &files[i]); err != nil {
			return err
		}
		prometheus.RecordCatalogFileSynced()
	}

	if err := p.rebuildIndex(ctx, files); err != nil {
		return err
	}

	prometheus.ObserveSyncDuration(time.Since(start))
	p.log.Info("full catalog sync completed", zap.Duration("took", time.Since(start)))
	return nil
}

// rebuildIndex drops and repopulates the car_models collection from the
// parsed files. A failed collection reset is fatal; a failed file
// import only skips that file. The collection is briefly absent between
// drop and recreate; searches in that window see a not-found condition.
func (p *Pipeline) rebuildIndex(ctx context.Context, files []catalog.BrandFile) error {
	if err := p.index.ResetCollection(ctx, search.CarModelsSchema()); err != nil {
		return err
	}

	for i := range files {
		file := &files[i]
		docs := catalog.Project(file.Models, file.BrandID)
		if len(docs) == 0 {
			p.log.Warn("catalog file projected no documents", zap.String("file", file.FileName))
			continue
		}

		payload := make([]interface{}, len(docs))
		for j := range docs {
			payload[j] = docs[j]
		}

		if err := p.index.ImportDocuments(ctx, search.CollectionCarModels, payload); err != nil {
			// Skip this file, continue with the rest.
			p.log.Error("failed to import catalog file into search index",
				zap.String("file", file.FileName),
				zap.Error(err))
			prometheus.RecordCatalogFileSkipped()
			continue
		}

		prometheus.RecordDocumentsImported(len(docs))
		p.log.Info("catalog file synced to search index",
			zap.String("file", file.FileName),
			zap.Int("documents", len(docs)))
	}
	return nil
}

// SearchCarModels queries the catalog index by title.
func (p *Pipeline) SearchCarModels(ctx context.Context, text string, page, perPage int) (*search.Result, error) {
	return p.index.Search(ctx, search.CollectionCarModels, &search.Query{
		Text:    text,
		QueryBy: "title",
		Page:    page,
		PerPage: perPage,
	})
}
