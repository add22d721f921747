package domain

// Staff represents a bookable service provider. Defined at startup, immutable.
type Staff struct {
	ID    string
	Name  string
	Phone string
}

// Service represents an offered service with a fixed price and duration.
type Service struct {
	ID              string
	Name            string
	Price           float64
	DurationMinutes int
}

// Catalog is the read-only registry of staff members and services.
type Catalog struct {
	staff    map[string]Staff
	services map[string]Service
}

// NewCatalog builds a catalog from the startup configuration maps.
func NewCatalog(staff map[string]Staff, services map[string]Service) *Catalog {
	c := &Catalog{
		staff:    make(map[string]Staff, len(staff)),
		services: make(map[string]Service, len(services)),
	}
	for id, s := range staff {
		s.ID = id
		c.staff[id] = s
	}
	for id, s := range services {
		s.ID = id
		c.services[id] = s
	}
	return c
}

// StaffByID looks up a staff member.
func (c *Catalog) StaffByID(id string) (Staff, bool) {
	s, ok := c.staff[id]
	return s, ok
}

// ServiceByID looks up a service.
func (c *Catalog) ServiceByID(id string) (Service, bool) {
	s, ok := c.services[id]
	return s, ok
}

// StaffCount returns the number of registered staff members.
func (c *Catalog) StaffCount() int {
	return len(c.staff)
}

// ServiceCount returns the number of registered services.
func (c *Catalog) ServiceCount() int {
	return len(c.services)
}
