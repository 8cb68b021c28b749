package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/wirvsvirus/measures-dashboard/loader"
	"github.com/wirvsvirus/measures-dashboard/schema"
)

const (
	cacheLogPrefix = "snapshot"
	maxReloads     = 3
)

// SnapshotProvider - provide the current immutable record snapshot
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*schema.Snapshot, error)
	Invalidate()
}

// SnapshotCache keeps the records of the current data-set version in
// memory and reloads them from the source when the version changes.
type SnapshotCache struct {
	sync.Mutex
	source   RecordSource
	snapshot *schema.Snapshot
}

func NewSnapshotCache(source RecordSource) *SnapshotCache {
	return &SnapshotCache{source: source}
}

// Snapshot returns the records of the current data-set version. The
// returned snapshot is shared and must not be modified.
func (c *SnapshotCache) Snapshot(ctx context.Context) (*schema.Snapshot, error) {
	c.Lock()
	defer c.Unlock()

	var err error
	for attempt := 0; attempt < maxReloads; attempt++ {
		var version string
		version, err = c.source.Version(ctx)
		if err != nil {
			return nil, err
		}
		if c.snapshot != nil && c.snapshot.Version == version {
			return c.snapshot, nil
		}

		var cases []schema.CaseRecord
		var actions []schema.ActionRecord
		cases, actions, err = c.source.Load(ctx, version)
		if errors.Is(err, loader.ErrVersionChanged) {
			log.WithFields(log.Fields{"prefix": cacheLogPrefix, "version": version}).Warn("data-set replaced while loading")
			continue
		}
		if err != nil {
			return nil, err
		}

		c.snapshot = &schema.Snapshot{
			Version:  version,
			Cases:    cases,
			Actions:  actions,
			LoadedAt: time.Now().UTC(),
		}
		log.WithFields(log.Fields{
			"prefix":  cacheLogPrefix,
			"version": version,
			"cases":   len(cases),
			"actions": len(actions),
		}).Info("snapshot loaded")

		return c.snapshot, nil
	}
	return nil, fmt.Errorf("%w: %s", loader.ErrDataUnavailable, err)
}

// Invalidate drops the cached snapshot; the next call reloads it.
func (c *SnapshotCache) Invalidate() {
	c.Lock()
	c.snapshot = nil
	c.Unlock()
	log.WithField("prefix", cacheLogPrefix).Info("snapshot invalidated")
}
