package domain

// Site is a named launch site.
type Site struct {
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Description string  `json:"description,omitempty"`
}

// Coordinates returns the site position.
func (s Site) Coordinates() Coordinates {
	return Coordinates{Lat: s.Lat, Lon: s.Lon}
}

// SiteDirectory resolves launch site names to coordinates. It is read-only
// after construction and safe for concurrent use.
type SiteDirectory struct {
	sites  []Site
	byName map[string]int
}

// NewSiteDirectory copies sites into a directory. Later duplicates of a name
// are ignored.
func NewSiteDirectory(sites []Site) *SiteDirectory {
	d := &SiteDirectory{
		sites:  make([]Site, 0, len(sites)),
		byName: make(map[string]int, len(sites)),
	}
	for _, s := range sites {
		if _, dup := d.byName[s.Name]; dup {
			continue
		}
		d.byName[s.Name] = len(d.sites)
		d.sites = append(d.sites, s)
	}
	return d
}

// Lookup returns the site with the exact given name.
func (d *SiteDirectory) Lookup(name string) (Site, bool) {
	i, ok := d.byName[name]
	if !ok {
		return Site{}, false
	}
	return d.sites[i], true
}

// All returns a copy of every site in insertion order.
func (d *SiteDirectory) All() []Site {
	out := make([]Site, len(d.sites))
	copy(out, d.sites)
	return out
}

// Len returns the number of sites.
func (d *SiteDirectory) Len() int { return len(d.sites) }
