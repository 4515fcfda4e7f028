package sync

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"testing"

	"github.com/catalystcommunity/stackdns/internal/cloudns"
)

// fakeProvider is an in-memory ClouDNS API: zone probes against a fixed zone
// set, a mutable record store, and counters for probes and mutations.
type fakeProvider struct {
	t          *testing.T
	zones      map[string]bool
	records    map[string]map[string]cloudns.Record // zone -> record id -> record
	nextID     int
	probes     map[string]int
	mutations  []string
	rejectWith string // when set, every mutation answers status Failed
}

func newFakeProvider(t *testing.T, zones ...string) *fakeProvider {
	t.Helper()

	registered := map[string]bool{}
	for _, z := range zones {
		registered[z] = true
	}

	return &fakeProvider{
		t:       t,
		zones:   registered,
		records: map[string]map[string]cloudns.Record{},
		nextID:  100,
		probes:  map[string]int{},
	}
}

// seed stores a record directly, bypassing the API.
func (f *fakeProvider) seed(zone string, record cloudns.Record) {
	if f.records[zone] == nil {
		f.records[zone] = map[string]cloudns.Record{}
	}
	f.records[zone][record.ID] = record
}

func (f *fakeProvider) server() *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/dns/get-zone-info.json":
			domain := r.URL.Query().Get("domain-name")
			f.probes[domain]++
			if f.zones[domain] {
				json.NewEncoder(w).Encode(map[string]string{"status": "1", "name": domain})
			} else {
				json.NewEncoder(w).Encode(map[string]string{"status": "Failed"})
			}

		case "/dns/records.json":
			q := r.URL.Query()
			matches := map[string]cloudns.Record{}
			for id, rec := range f.records[q.Get("domain-name")] {
				if rec.Host == q.Get("host") && rec.Type == q.Get("type") {
					matches[id] = rec
				}
			}
			if len(matches) == 0 {
				// The real API answers [] for an empty result set.
				w.Write([]byte(`[]`))
				return
			}
			json.NewEncoder(w).Encode(matches)

		case "/dns/add-record.json":
			if f.reject(w) {
				return
			}
			if err := r.ParseForm(); err != nil {
				f.t.Errorf("bad add-record form: %v", err)
				return
			}
			zone := r.PostForm.Get("domain-name")
			id := strconv.Itoa(f.nextID)
			f.nextID++
			f.seed(zone, cloudns.Record{
				ID:     id,
				Host:   r.PostForm.Get("host"),
				Type:   r.PostForm.Get("record-type"),
				TTL:    r.PostForm.Get("ttl"),
				Record: r.PostForm.Get("record"),
			})
			f.mutations = append(f.mutations, fmt.Sprintf("add %s %s", zone, r.PostForm.Get("host")))
			json.NewEncoder(w).Encode(map[string]string{"status": "Success"})

		case "/dns/mod-record.json":
			if f.reject(w) {
				return
			}
			if err := r.ParseForm(); err != nil {
				f.t.Errorf("bad mod-record form: %v", err)
				return
			}
			zone := r.PostForm.Get("domain-name")
			id := r.PostForm.Get("record-id")
			if _, ok := f.records[zone][id]; !ok {
				f.t.Errorf("mod-record for unknown record id %s in %s", id, zone)
			}
			f.records[zone][id] = cloudns.Record{
				ID:     id,
				Host:   r.PostForm.Get("host"),
				Type:   r.PostForm.Get("record-type"),
				TTL:    r.PostForm.Get("ttl"),
				Record: r.PostForm.Get("record"),
			}
			f.mutations = append(f.mutations, fmt.Sprintf("mod %s %s", zone, id))
			json.NewEncoder(w).Encode(map[string]string{"status": "Success"})

		default:
			f.t.Errorf("unexpected request path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	f.t.Cleanup(server.Close)

	return server
}

func (f *fakeProvider) reject(w http.ResponseWriter) bool {
	if f.rejectWith == "" {
		return false
	}
	json.NewEncoder(w).Encode(map[string]string{
		"status":            "Failed",
		"statusDescription": f.rejectWith,
	})
	return true
}

// zoneRecords returns the stored records of a zone sorted by id.
func (f *fakeProvider) zoneRecords(zone string) []cloudns.Record {
	var out []cloudns.Record
	for _, rec := range f.records[zone] {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
