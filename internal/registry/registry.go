// Package registry loads the trained artifact bundle (pillar classifiers,
// meta combiner, importance rankings, metadata) and serves it as an immutable
// process-wide snapshot.
package registry

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/klauspost/compress/zstd"
	"github.com/venturelens/venturelens/internal/classify"
	"github.com/venturelens/venturelens/internal/feature"
	"github.com/venturelens/venturelens/internal/models"
	"github.com/venturelens/venturelens/internal/recommend"
)

// Options adjusts bundle loading behavior.
type Options struct {
	// TolerateShapeMismatch enables degraded operation when an artifact's
	// schema width disagrees with its trained feature count: short vectors
	// are zero-padded with a warning instead of failing requests.
	TolerateShapeMismatch bool
}

// Snapshot is one immutable, fully-loaded view of the artifact bundle.
// In-flight requests hold a snapshot for their duration; a concurrent reload
// never mutates it.
type Snapshot struct {
	Scorers    map[models.Pillar]classify.PillarScorer
	Combiner   *classify.Combiner
	Metadata   *models.ModelMetadata
	Importance recommend.Importance

	// Degraded is set when any classifier or the metadata fell back to its
	// built-in substitute; Warnings records why.
	Degraded bool
	Warnings []string
}

// Registry owns the active snapshot behind an atomic pointer (copy-on-reload,
// never mutate-in-place).
type Registry struct {
	dir  string
	opts Options
	cur  atomic.Pointer[Snapshot]
}

// Open loads the bundle from dir. Per-artifact failures degrade to heuristic
// substitutes rather than failing the open; a missing directory yields a
// fully degraded snapshot. Open never refuses traffic.
func Open(dir string, opts Options) *Registry {
	r := &Registry{dir: dir, opts: opts}
	r.cur.Store(load(dir, opts))
	return r
}

// Snapshot returns the active bundle view.
func (r *Registry) Snapshot() *Snapshot {
	return r.cur.Load()
}

// Metadata returns the metadata of the active snapshot.
func (r *Registry) Metadata() *models.ModelMetadata {
	return r.cur.Load().Metadata
}

// Reload re-reads the whole bundle and swaps the snapshot atomically.
// Requests reading the previous snapshot are unaffected.
func (r *Registry) Reload() {
	snap := load(r.dir, r.opts)
	r.cur.Swap(snap)
	slog.Info("artifact bundle reloaded", "version", snap.Metadata.Version, "degraded", snap.Degraded)
}

func load(dir string, opts Options) *Snapshot {
	snap := &Snapshot{
		Scorers:    make(map[models.Pillar]classify.PillarScorer, len(models.Pillars)),
		Importance: recommend.Importance{},
	}

	for _, p := range models.Pillars {
		scorer, err := loadPillar(dir, p, opts)
		if err != nil {
			snap.degrade(fmt.Sprintf("%s classifier unavailable, using heuristic fallback: %v", p, err))
			scorer = classify.NewHeuristicScorer(p)
		}
		snap.Scorers[p] = scorer
	}

	combiner, err := loadCombiner(dir, opts)
	if err != nil {
		snap.degrade(fmt.Sprintf("meta combiner unavailable, using heuristic blend: %v", err))
		combiner = classify.NewFallbackCombiner()
	}
	snap.Combiner = combiner

	if err := readJSONArtifact(filepath.Join(dir, "importance.json"), &snap.Importance); err != nil {
		snap.degrade(fmt.Sprintf("importance rankings unavailable: %v", err))
	}

	meta, err := loadMetadata(dir)
	if err != nil {
		snap.degrade(fmt.Sprintf("metadata unavailable, serving fallback: %v", err))
		meta = fallbackMetadata()
	}
	snap.Metadata = meta

	return snap
}

func (s *Snapshot) degrade(msg string) {
	s.Degraded = true
	s.Warnings = append(s.Warnings, msg)
	slog.Warn(msg)
}

func loadPillar(dir string, p models.Pillar, opts Options) (classify.PillarScorer, error) {
	path := filepath.Join(dir, fmt.Sprintf("%s.model.json", p))
	var art classify.Artifact
	if err := readJSONArtifact(path, &art); err != nil {
		return nil, &models.ArtifactLoadError{Path: path, Err: err}
	}
	clf, err := classify.New(&art)
	if err != nil {
		return nil, &models.ArtifactLoadError{Path: path, Err: err}
	}
	return classify.NewModelScorer(p, &art.FeatureSchema, clf, opts.TolerateShapeMismatch)
}

func loadCombiner(dir string, opts Options) (*classify.Combiner, error) {
	path := filepath.Join(dir, "meta.model.json")
	var art classify.Artifact
	if err := readJSONArtifact(path, &art); err != nil {
		return nil, &models.ArtifactLoadError{Path: path, Err: err}
	}
	clf, err := classify.New(&art)
	if err != nil {
		return nil, &models.ArtifactLoadError{Path: path, Err: err}
	}

	// The meta artifact's schema, when present, describes auxiliary raw
	// features appended after the four pillar probabilities.
	var aux *feature.Schema
	if len(art.FeatureSchema.Fields) > 0 {
		s := art.FeatureSchema
		aux = &s
	}
	return classify.NewCombiner(clf, aux, opts.TolerateShapeMismatch)
}

// readJSONArtifact reads a JSON document, transparently decompressing
// zstd-packed bundles: when path is absent, path+".zst" is tried.
func readJSONArtifact(path string, v any) error {
	data, err := readMaybeZstd(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readMaybeZstd(path string) ([]byte, error) {
	if !strings.HasSuffix(path, ".zst") {
		if data, err := os.ReadFile(path); err == nil {
			return data, nil
		} else if !os.IsNotExist(err) {
			return nil, err
		}
		path += ".zst"
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("opening zstd stream %s: %w", filepath.Base(path), err)
	}
	defer zr.Close()

	return io.ReadAll(zr)
}
