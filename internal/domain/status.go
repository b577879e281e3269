package domain

// Status classifies remote service reachability as observed by a probe.
type Status string

const (
	StatusOnline  Status = "ONLINE"
	StatusOffline Status = "OFFLINE"
)

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Sentinel strings surfaced at the API boundary when a reachable service
// returns a structurally incomplete payload. They stand in for records so
// callers can tell "reachable but empty payload" apart from "unreachable".
const (
	SentinelMissingBody   = "Missing Data Body"
	SentinelMissingResult = "Missing Data Results"
)
