package cloudns

// ZoneInfo is the provider's zone-lookup result. Status "1" means the
// queried domain is a registered zone on the account; every other value
// (including an absent field) means it is not.
type ZoneInfo struct {
	Status string `json:"status"`
}

// Registered reports whether the probed domain is a zone on the account.
func (z *ZoneInfo) Registered() bool {
	return z != nil && z.Status == "1"
}

// Record is a DNS record as stored by the provider. records.json keys its
// response by record id and echoes ttl as a string; the reconciler compares
// ttl in that representation, so it is deliberately not parsed to an int.
type Record struct {
	ID     string `json:"id"`
	Host   string `json:"host"`
	Type   string `json:"type"`
	TTL    string `json:"ttl"`
	Record string `json:"record"`
}

// MutationResult is the response shape of add-record and mod-record calls.
type MutationResult struct {
	Status            string `json:"status"`
	StatusMessage     string `json:"statusMessage"`
	StatusDescription string `json:"statusDescription"`
}

// Failed reports whether the provider rejected the mutation.
func (m *MutationResult) Failed() bool {
	return m.Status == "Failed"
}

// Message returns the provider-supplied failure text, preferring
// statusMessage over statusDescription.
func (m *MutationResult) Message() string {
	if m.StatusMessage != "" {
		return m.StatusMessage
	}
	return m.StatusDescription
}
