package cloudns

import (
	"context"
	"fmt"
	"strings"
)

// ZoneNotFoundError reports that neither the 2-label nor the 3-label suffix
// of a name is a registered zone on the account.
type ZoneNotFoundError struct {
	Name string
}

func (e *ZoneNotFoundError) Error() string {
	return fmt.Sprintf("no registered zone found for %s", e.Name)
}

// ZoneCache memoizes zone-info probes for the duration of one sync run, so
// hostnames sharing a zone cost a single lookup. It is created per run and
// threaded through the driver rather than held globally; execution is
// single-threaded, so no locking is needed. Entries are never evicted.
type ZoneCache struct {
	probes map[string]*ZoneInfo
}

// NewZoneCache creates an empty zone cache for one sync run.
func NewZoneCache() *ZoneCache {
	return &ZoneCache{
		probes: make(map[string]*ZoneInfo),
	}
}

// Probe returns the zone-info result for domain, asking the provider on the
// first request for a given domain and the cache afterwards.
func (z *ZoneCache) Probe(ctx context.Context, client *Client, domain string) (*ZoneInfo, error) {
	if info, ok := z.probes[domain]; ok {
		return info, nil
	}

	info, err := client.GetZoneInfo(ctx, domain)
	if err != nil {
		return nil, err
	}

	z.probes[domain] = info
	return info, nil
}

// Target is a fully-qualified name split into the registered zone suffix and
// the in-zone host prefix. Host is empty for apex records.
type Target struct {
	Zone string
	Host string
}

// FQDN reassembles the original dotted name.
func (t Target) FQDN() string {
	if t.Host == "" {
		return t.Zone
	}
	return t.Host + "." + t.Zone
}

// ResolveTarget splits a dotted name into zone and host by asking the
// provider which suffix it manages, instead of consulting a public-suffix
// table. Exactly two candidates are probed: the last two labels and the last
// three labels. The 2-label candidate wins whenever it is registered, even
// when the 3-label candidate is registered too. Names shorter than three
// labels still probe their degenerate 3-label candidate; the provider
// answering with a non-"1" status is the rejection path, there is no local
// label-count check.
func ResolveTarget(ctx context.Context, client *Client, cache *ZoneCache, name string) (Target, error) {
	parts := strings.Split(name, ".")

	candidateA := splitAt(parts, len(parts)-2)
	candidateB := splitAt(parts, len(parts)-3)

	infoA, err := cache.Probe(ctx, client, candidateA.Zone)
	if err != nil {
		return Target{}, err
	}

	infoB, err := cache.Probe(ctx, client, candidateB.Zone)
	if err != nil {
		return Target{}, err
	}

	switch {
	case infoA.Registered():
		return candidateA, nil
	case infoB.Registered():
		return candidateB, nil
	default:
		return Target{}, &ZoneNotFoundError{Name: name}
	}
}

// splitAt builds a candidate with labels[cut:] as the zone and labels[:cut]
// as the host. A negative cut collapses to zero, the degenerate candidate
// for short names.
func splitAt(labels []string, cut int) Target {
	if cut < 0 {
		cut = 0
	}
	return Target{
		Zone: strings.Join(labels[cut:], "."),
		Host: strings.Join(labels[:cut], "."),
	}
}
