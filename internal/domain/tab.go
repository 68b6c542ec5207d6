package domain

import "strings"

// Tab identifies a dashboard section. Switching tabs while a session is
// being tracked always stops the session first.
type Tab string

const (
	TabSales        Tab = "sales"
	TabProject      Tab = "project"
	TabEngineering  Tab = "engineering"
	TabProduction   Tab = "production"
	TabInstallation Tab = "installation"
	TabMaintenance  Tab = "maintenance"
	TabAdmin        Tab = "admin"
)

// AllTabs lists the dashboard tabs in display order.
func AllTabs() []Tab {
	return []Tab{
		TabSales,
		TabProject,
		TabEngineering,
		TabProduction,
		TabInstallation,
		TabMaintenance,
		TabAdmin,
	}
}

// Valid reports whether t names a known tab.
func (t Tab) Valid() bool {
	for _, tab := range AllTabs() {
		if t == tab {
			return true
		}
	}
	return false
}

// Label returns the human-readable tab title.
func (t Tab) Label() string {
	switch t {
	case TabSales:
		return "Sales & Contracts"
	case TabProject:
		return "Project Management"
	case TabEngineering:
		return "Engineering"
	case TabProduction:
		return "Production"
	case TabInstallation:
		return "Installation"
	case TabMaintenance:
		return "Maintenance"
	case TabAdmin:
		return "User Admin"
	default:
		if t == "" {
			return ""
		}
		return strings.ToUpper(string(t[0])) + string(t[1:])
	}
}
