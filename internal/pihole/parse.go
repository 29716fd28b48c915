package pihole

import (
	"encoding/json"
	"time"

	"github.com/rileyhilliard/padd/internal/stats"
)

// paddSummary mirrors the /api/padd?full=true payload. Only the
// fields the screens display are decoded; everything else is dropped
// at the boundary.
type paddSummary struct {
	Queries struct {
		Total          int64   `json:"total"`
		Blocked        int64   `json:"blocked"`
		PercentBlocked float64 `json:"percent_blocked"`
	} `json:"queries"`

	GravitySize   int64  `json:"gravity_size"`
	RecentBlocked string `json:"recent_blocked"`
	TopBlocked    string `json:"top_blocked"`
	TopDomain     string `json:"top_domain"`
	TopClient     string `json:"top_client"`
	ActiveClients int    `json:"active_clients"`
	NodeName      string `json:"node_name"`

	Iface struct {
		V4 struct {
			Addr string `json:"addr"`
		} `json:"v4"`
	} `json:"iface"`

	System struct {
		Uptime int64 `json:"uptime"`
		CPU    struct {
			Percent float64 `json:"%cpu"`
			Load    struct {
				Raw []float64 `json:"raw"`
			} `json:"load"`
		} `json:"cpu"`
		Memory struct {
			RAM struct {
				PercentUsed float64 `json:"%used"`
			} `json:"ram"`
		} `json:"memory"`
	} `json:"system"`

	Sensors struct {
		CPUTemp float64 `json:"cpu_temp"`
	} `json:"sensors"`

	Version struct {
		Core paddComponent `json:"core"`
		Web  paddComponent `json:"web"`
		FTL  paddComponent `json:"ftl"`
	} `json:"version"`
}

type paddComponent struct {
	Local struct {
		Version string `json:"version"`
	} `json:"local"`
	Remote struct {
		Version string `json:"version"`
	} `json:"remote"`
}

// ParseSummary decodes a PADD summary payload into a Snapshot.
// Absent fields keep their zero values; the renderers substitute N/A.
func ParseSummary(body []byte) (*stats.Snapshot, error) {
	var p paddSummary
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, err
	}

	snap := &stats.Snapshot{
		BlockedCount:   p.Queries.Blocked,
		TotalCount:     p.Queries.Total,
		PercentBlocked: p.Queries.PercentBlocked,
		GravitySize:    p.GravitySize,
		RecentBlocked:  p.RecentBlocked,
		TopBlocked:     p.TopBlocked,
		TopDomain:      p.TopDomain,
		TopClient:      p.TopClient,
		ActiveClients:  p.ActiveClients,
		HostName:       p.NodeName,
		HostIP:         p.Iface.V4.Addr,
		CPUPercent:     p.System.CPU.Percent,
		MemoryPercent:  p.System.Memory.RAM.PercentUsed,
		CPUTempCelsius: p.Sensors.CPUTemp,
		Uptime:         time.Duration(p.System.Uptime) * time.Second,
		Versions: stats.ComponentVersions{
			Core: component(p.Version.Core),
			Web:  component(p.Version.Web),
			FTL:  component(p.Version.FTL),
		},
	}
	for i, v := range p.System.CPU.Load.Raw {
		if i >= len(snap.CPULoad) {
			break
		}
		snap.CPULoad[i] = v
	}
	return snap, nil
}

func component(c paddComponent) stats.ComponentVersion {
	return stats.ComponentVersion{
		Local:  c.Local.Version,
		Remote: c.Remote.Version,
	}
}
