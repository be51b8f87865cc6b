package policy

import (
	"log/slog"
	"sync/atomic"
)

// Provider holds the active policy behind an atomic pointer so reloads swap a
// whole new value while in-flight requests keep reading the old snapshot.
type Provider struct {
	path string
	cur  atomic.Pointer[Policy]
}

// NewProvider loads the policy at path. A missing or malformed document falls
// back to the built-in default with a warning; it never fails construction.
// An empty path silently installs the default.
func NewProvider(path string) *Provider {
	pr := &Provider{path: path}
	if path == "" {
		pr.cur.Store(Default())
		return pr
	}
	p, err := Load(path)
	if err != nil {
		slog.Warn("policy document unusable, falling back to built-in default", "error", err)
		p = Default()
	}
	pr.cur.Store(p)
	return pr
}

// Current returns the active policy snapshot.
func (pr *Provider) Current() *Policy {
	return pr.cur.Load()
}

// Reload re-reads the policy document and swaps it in atomically. On error
// the previous policy stays active and the error is returned for the
// administrative caller; prediction traffic is unaffected.
func (pr *Provider) Reload() error {
	if pr.path == "" {
		return nil
	}
	p, err := Load(pr.path)
	if err != nil {
		return err
	}
	old := pr.cur.Swap(p)
	slog.Info("policy reloaded", "from", old.Version, "to", p.Version)
	return nil
}
