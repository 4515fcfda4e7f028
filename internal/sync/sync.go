package sync

import (
	"context"
	"io"

	"github.com/catalystcommunity/stackdns/internal/cloudns"
	"github.com/catalystcommunity/stackdns/internal/stack"
)

// ExportLister lists stack exports; satisfied by *stack.Source.
type ExportLister interface {
	List(ctx context.Context) ([]stack.Export, error)
}

// Syncer performs one full synchronization pass: every qualifying export is
// parsed, resolved against the provider's zones, and reconciled, strictly in
// listing order. There is no retry state; the first error ends the pass and
// records already written stay in place. Re-running the sync is the recovery
// path, the pass is idempotent.
type Syncer struct {
	dns     *cloudns.Client
	exports ExportLister
	ttl     string
	stacks  []string
	out     io.Writer
}

// NewSyncer creates a syncer. stacks restricts the pass to exports owned by
// those stacks (short names or full ARNs); empty scans everything. out
// receives the decision lines (stdout when nil).
func NewSyncer(dns *cloudns.Client, exports ExportLister, ttl string, stacks []string, out io.Writer) *Syncer {
	return &Syncer{
		dns:     dns,
		exports: exports,
		ttl:     ttl,
		stacks:  stacks,
		out:     out,
	}
}

// Run executes the pass. One zone cache spans the whole run, so hostnames
// sharing a zone cost a single probe. Calls are issued strictly one at a
// time; the zone cache and the provider's rate limits make concurrent
// mutation unsafe without coordination this tool does not have.
func (s *Syncer) Run(ctx context.Context) error {
	exports, err := s.exports.List(ctx)
	if err != nil {
		return err
	}

	cache := cloudns.NewZoneCache()
	reconciler := NewReconciler(s.dns, s.ttl, s.out)

	for _, export := range exports {
		if !stack.MatchesFilter(export.StackID, s.stacks) {
			continue
		}

		directive, ok := ParseExportName(export.Name)
		if !ok {
			continue
		}

		target, err := cloudns.ResolveTarget(ctx, s.dns, cache, directive.Hostname)
		if err != nil {
			return err
		}

		if err := reconciler.Reconcile(ctx, target, directive.RecordType, export.Value); err != nil {
			return err
		}
	}

	return nil
}
