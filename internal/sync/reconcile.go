package sync

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/catalystcommunity/stackdns/internal/cloudns"
)

// DefaultTTL applied to created and updated records when none is given.
const DefaultTTL = "300"

// Reconciler applies one desired record to the provider: no-op when the
// stored record already matches, modify when it differs, add when absent.
// Every decision is written to out before any mutating call; that line is
// the audit trail, there is no dry-run mode.
type Reconciler struct {
	client *cloudns.Client
	ttl    string
	out    io.Writer
}

// NewReconciler creates a reconciler writing its decisions to out (stdout
// when nil) and stamping ttl on every mutation.
func NewReconciler(client *cloudns.Client, ttl string, out io.Writer) *Reconciler {
	if ttl == "" {
		ttl = DefaultTTL
	}
	if out == nil {
		out = os.Stdout
	}
	return &Reconciler{
		client: client,
		ttl:    ttl,
		out:    out,
	}
}

// Reconcile fetches the stored records for (zone, host, type) and issues the
// matching mutation. Only one stored record is considered even when the
// provider holds several for the triple (round-robin A records, say): the
// lowest record id, so repeated runs inspect the same entry. Managing
// multi-record sets is a known limitation.
func (r *Reconciler) Reconcile(ctx context.Context, target cloudns.Target, recordType, value string) error {
	records, err := r.client.ListRecords(ctx, target.Zone, target.Host, recordType)
	if err != nil {
		return err
	}

	existing := firstRecord(records)

	tuple := fmt.Sprintf("%s %s %s %s ZONE %s HOST %s",
		target.FQDN(), recordType, r.ttl, value, target.Zone, target.Host)

	if existing.ID != "" &&
		existing.Host == target.Host &&
		existing.Type == recordType &&
		existing.TTL == r.ttl &&
		existing.Record == value {
		fmt.Fprintf(r.out, "OK %s\n", tuple)
		return nil
	}

	if existing.ID != "" {
		fmt.Fprintf(r.out, "UPDATE %s\n", tuple)
		result, err := r.client.ModifyRecord(ctx, target.Zone, existing.ID, target.Host, recordType, value, r.ttl)
		if err != nil {
			return err
		}
		return mutationError(result)
	}

	fmt.Fprintf(r.out, "CREATE %s\n", tuple)
	result, err := r.client.AddRecord(ctx, target.Zone, target.Host, recordType, value, r.ttl)
	if err != nil {
		return err
	}
	return mutationError(result)
}

// firstRecord picks the stored record with the lowest id, or a zero Record
// when the map is empty.
func firstRecord(records map[string]cloudns.Record) cloudns.Record {
	if len(records) == 0 {
		return cloudns.Record{}
	}

	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return records[ids[0]]
}

func mutationError(result *cloudns.MutationResult) error {
	if result.Failed() {
		return fmt.Errorf("record mutation rejected by provider: %s", result.Message())
	}
	return nil
}
