// Package stats holds the Pi-hole statistics snapshot and its TTL cache.
package stats

import "time"

// ComponentVersion pairs the installed and latest published version of one
// Pi-hole component.
type ComponentVersion struct {
	Local  string
	Remote string
}

// ComponentVersions covers the three components reported by the API.
type ComponentVersions struct {
	Core ComponentVersion
	Web  ComponentVersion
	FTL  ComponentVersion
}

// Snapshot is one complete, internally consistent set of statistics fetched
// in a single request. It is never partially mutated: each refresh replaces
// the whole value, or stores an error variant via ErrorSnapshot.
type Snapshot struct {
	BlockedCount   int64
	TotalCount     int64
	PercentBlocked float64
	GravitySize    int64

	RecentBlocked string
	TopBlocked    string
	TopDomain     string
	TopClient     string
	ActiveClients int

	HostName string
	HostIP   string

	CPUPercent     float64
	CPULoad        [3]float64
	MemoryPercent  float64
	CPUTempCelsius float64
	Uptime         time.Duration

	Versions ComponentVersions

	// Err is the fetch failure message for the error variant. A non-empty
	// Err means every other field is zero and must not be trusted.
	Err string
}

// ErrorSnapshot builds the error variant carrying a fetch failure message.
func ErrorSnapshot(message string) *Snapshot {
	return &Snapshot{Err: message}
}

// OK reports whether the snapshot carries real data.
func (s *Snapshot) OK() bool {
	return s != nil && s.Err == ""
}
