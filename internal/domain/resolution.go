package domain

// Resolution methods.
const (
	ResolveExact = "exact"
	ResolveFuzzy = "fuzzy"
)

// ResolutionRecord captures how one requested name was mapped back onto the
// catalog. Recorded for observability; never drives control flow.
type ResolutionRecord struct {
	Requested string `json:"requested"`
	Resolved  string `json:"resolved"`
	Method    string `json:"method"`
	Distance  int    `json:"distance,omitempty"`
}
