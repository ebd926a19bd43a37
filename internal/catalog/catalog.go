// Package catalog provides the launch sites and launch schedule the service
// starts with. Each call returns fresh values; callers wrap them in the
// immutable domain directories.
package catalog

import "github.com/couchcryptid/launch-score-service/internal/domain"

const (
	KennedySpaceCenter = "Kennedy Space Center"
	CapeCanaveral      = "Cape Canaveral"
	Vandenberg         = "Vandenberg"
)

// Sites returns the known launch sites.
func Sites() []domain.Site {
	return []domain.Site{
		{
			Name:        KennedySpaceCenter,
			Lat:         28.573255,
			Lon:         -80.646895,
			Description: "NASA's primary launch center",
		},
		{
			Name:        CapeCanaveral,
			Lat:         28.4889,
			Lon:         -80.5778,
			Description: "Historic launch site",
		},
		{
			Name:        Vandenberg,
			Lat:         34.742,
			Lon:         -120.5724,
			Description: "West coast polar and sun-synchronous launches",
		},
	}
}

// Launches returns the launch schedule.
func Launches() []domain.LaunchEvent {
	return []domain.LaunchEvent{
		{ID: 1, Site: KennedySpaceCenter, Date: "2024-12-15", Time: "14:30", Status: "Scheduled", Mission: "CRS-32", Rocket: "Falcon 9", Customer: "NASA"},
		{ID: 2, Site: CapeCanaveral, Date: "2024-12-18", Time: "10:00", Status: "Scheduled", Mission: "Starlink Group 12-5", Rocket: "Falcon 9", Customer: "SpaceX"},
		{ID: 3, Site: Vandenberg, Date: "2025-01-09", Time: "07:45", Status: "Scheduled", Mission: "NROL-153", Rocket: "Falcon 9", Customer: "NRO"},
		{ID: 4, Site: KennedySpaceCenter, Date: "2025-01-16", Time: "01:03", Status: "Delayed", Mission: "Blue Ghost Mission 1", Rocket: "Falcon 9", Customer: "Firefly Aerospace"},
	}
}

// Directories builds the site and launch directories from the built-in data.
func Directories() (*domain.SiteDirectory, *domain.LaunchDirectory) {
	return domain.NewSiteDirectory(Sites()), domain.NewLaunchDirectory(Launches())
}
