// Package render turns a statistics snapshot into the logical screen
// content shared by the terminal and e-ink surfaces. Everything here is
// a pure function of its inputs so layout is testable without a live
// display.
package render

import (
	"github.com/rileyhilliard/padd/internal/screen"
	"github.com/rileyhilliard/padd/internal/stats"
	"github.com/rileyhilliard/padd/internal/version"
)

// Checkmark marks an up-to-date component on the versions screen.
const Checkmark = "✓"

// Fixed placeholders shown when a screen has no usable snapshot.
const (
	PlaceholderOverview = "No Pi-hole data available."
	PlaceholderSystem   = "No system data available."
	PlaceholderVersions = "Version data not available."
)

// Connection-failed overlay text.
const (
	ConnFailedTitle = "UNABLE TO CONNECT"
	ConnFailedHint  = "Is Pi-hole OK?"
)

// Versions screen footer states.
const (
	FooterUpdateAvailable = "** Update available"
	FooterHealthy         = Checkmark + " " + Checkmark + " SYSTEM IS HEALTHY " + Checkmark + " " + Checkmark
)

// Bar is an inline percentage bar. Surfaces size it themselves and use
// BarFill for the fill rule.
type Bar struct {
	Percent float64
}

// Line is one logical label/value row of a screen.
type Line struct {
	Label    string
	Value    string
	Severity Severity
	Bar      *Bar
}

// Screen is the complete logical content of one rendered frame. Both
// renderer implementations must expose these lines in this order.
type Screen struct {
	Title          string
	Lines          []Line
	Footer         string
	FooterSeverity Severity

	// QRURL is set only for the QR overlay; the surface encodes it.
	QRURL string
}

// VersionInfo carries the tool's own release state into the versions
// screen, supplied by the version checker.
type VersionInfo struct {
	Current string
	Latest  string
	Status  version.Status
}

// Compose builds the logical screen for the current rotator state.
// The admin URL feeds the QR overlay.
func Compose(snap *stats.Snapshot, st screen.State, info VersionInfo, adminURL string) Screen {
	switch st.Overlay {
	case screen.OverlayConnectionFailed:
		return ConnectionFailed(snap, adminURL)
	case screen.OverlayQRCode:
		return QRCode(adminURL)
	}

	switch st.Screen {
	case screen.ScreenSystem:
		return System(snap)
	case screen.ScreenVersions:
		return Versions(snap, info)
	default:
		return Overview(snap)
	}
}

// Overview builds the main Pi-hole statistics screen.
func Overview(snap *stats.Snapshot) Screen {
	s := Screen{Title: "Pi-hole Stats"}
	if !snap.OK() {
		s.Lines = append(s.Lines, Line{Value: PlaceholderOverview})
		return s
	}

	percent := snap.PercentBlocked
	s.Lines = []Line{
		{Label: "Blocking:", Value: FormatCount(snap.GravitySize)},
		{Label: "Piholed:", Value: FormatPercent(percent), Bar: &Bar{Percent: percent}},
		{Label: "Queries:", Value: FormatCount(snap.BlockedCount) + " out of " + FormatCount(snap.TotalCount)},
		{Label: "Latest:", Value: orNA(snap.RecentBlocked)},
		{Label: "Top Ad:", Value: orNA(snap.TopBlocked)},
		{Label: "Top Domain:", Value: orNA(snap.TopDomain)},
		{Label: "Top Client:", Value: orNA(snap.TopClient)},
		{Label: "Clients:", Value: FormatCount(int64(snap.ActiveClients))},
	}
	return s
}

// System builds the host statistics screen. The heat classification is
// reused for CPU use, memory use, and temperature.
func System(snap *stats.Snapshot) Screen {
	s := Screen{Title: "System Stats"}
	if !snap.OK() {
		s.Lines = append(s.Lines, Line{Value: PlaceholderSystem})
		return s
	}

	host := orNA(snap.HostName)
	if snap.HostIP != "" {
		host += " (" + snap.HostIP + ")"
	}

	s.Lines = []Line{
		{Label: "Host:", Value: host},
		{Label: "CPU Used:", Value: FormatPercent(snap.CPUPercent), Severity: Heat(snap.CPUPercent), Bar: &Bar{Percent: snap.CPUPercent}},
		{Label: "CPU Load:", Value: FormatLoad(snap.CPULoad), Severity: Heat(snap.CPULoad[0])},
		{Label: "Memory:", Value: FormatPercent(snap.MemoryPercent), Severity: Heat(snap.MemoryPercent), Bar: &Bar{Percent: snap.MemoryPercent}},
		{Label: "CPU Temp:", Value: FormatTemp(snap.CPUTempCelsius), Severity: Heat(snap.CPUTempCelsius)},
		{Label: "Uptime:", Value: FormatUptime(snap.Uptime)},
	}
	return s
}

// Versions builds the component versions screen. The footer flags an
// update when any component, or padd itself, has a newer release.
func Versions(snap *stats.Snapshot, info VersionInfo) Screen {
	s := Screen{Title: "Component Versions"}

	selfLine, selfUpdate := selfVersionLine(info)
	s.Lines = append(s.Lines, selfLine)
	anyUpdates := selfUpdate

	if !snap.OK() {
		s.Lines = append(s.Lines, Line{Value: PlaceholderVersions})
	} else {
		components := []struct {
			label string
			cv    stats.ComponentVersion
		}{
			{"Pi-hole:", snap.Versions.Core},
			{"Web UI:", snap.Versions.Web},
			{"FTL:", snap.Versions.FTL},
		}
		for _, c := range components {
			value, hasUpdate := componentStatus(c.cv)
			if hasUpdate {
				anyUpdates = true
			}
			sev := SeverityNominal
			if hasUpdate {
				sev = SeverityElevated
			}
			s.Lines = append(s.Lines, Line{Label: c.label, Value: value, Severity: sev})
		}
	}

	if anyUpdates {
		s.Footer = FooterUpdateAvailable
		s.FooterSeverity = SeverityCritical
	} else {
		s.Footer = FooterHealthy
		s.FooterSeverity = SeverityNominal
	}
	return s
}

// componentStatus formats one component's version cell and reports
// whether a newer remote release exists.
func componentStatus(cv stats.ComponentVersion) (string, bool) {
	if cv.Local == "" {
		return NA, false
	}
	if cv.Remote != "" && version.Compare(cv.Remote, cv.Local) > 0 {
		return cv.Local + "**", true
	}
	return cv.Local + " " + Checkmark, false
}

func selfVersionLine(info VersionInfo) (Line, bool) {
	value := "v" + info.Current
	update := info.Status == version.StatusUpdateAvailable
	switch info.Status {
	case version.StatusUpdateAvailable:
		value += "**"
	case version.StatusUpToDate:
		value += " " + Checkmark
	}
	sev := SeverityNominal
	if update {
		sev = SeverityElevated
	}
	return Line{Label: "PADD:", Value: value, Severity: sev}, update
}

// QRCode builds the admin URL overlay. The surface encodes the QR
// symbol itself; this layer only decides the textual content.
func QRCode(adminURL string) Screen {
	return Screen{
		Title: "Pi-hole Admin",
		Lines: []Line{
			{Value: adminURL},
			{Value: "Hold the refresh button to close"},
		},
		QRURL: adminURL,
	}
}

// ConnectionFailed builds the failure overlay. The snapshot's error
// message rides along when present.
func ConnectionFailed(snap *stats.Snapshot, adminURL string) Screen {
	s := Screen{Title: "Pi-hole Stats"}
	s.Lines = []Line{
		{Value: ConnFailedTitle, Severity: SeverityCritical},
		{Value: "to " + adminURL, Severity: SeverityCritical},
		{Value: ConnFailedHint},
	}
	if snap != nil && snap.Err != "" {
		s.Footer = snap.Err
		s.FooterSeverity = SeverityCritical
	}
	return s
}
