package models

import (
	"strconv"

	apperrors "github.com/NomadCrew/tourist-travel-backend/errors"
	"github.com/NomadCrew/tourist-travel-backend/types"
)

var seedPackages = []types.TravelPackage{
	{
		ID:          1,
		Name:        "Lakshadweep Paradise",
		Location:    "Lakshadweep",
		Duration:    "3 days",
		Persons:     "2 Person",
		Price:       "₹15,000.00",
		Rating:      4,
		Image:       "img/Lakshadweep2.jpg",
		Description: "Escape to paradise: Dive into turquoise waters, bask in sun-kissed beaches of Lakshadweep.",
		Includes:    []string{"Accommodation", "Meals", "Water Sports", "Island Hopping"},
	},
	{
		ID:          2,
		Name:        "Tirumala Spiritual Journey",
		Location:    "Tirumala",
		Duration:    "3 days",
		Persons:     "2 Person",
		Price:       "₹13,999.00",
		Rating:      5,
		Image:       "img/tirupati2.jpg",
		Description: "Celebrate spiritual serenity at Tirumala. Discover divine bliss in majestic landscapes and traditions.",
		Includes:    []string{"Accommodation", "Darshan Tickets", "Meals", "Local Transport"},
	},
	{
		ID:          3,
		Name:        "Alleppey Backwaters",
		Location:    "Alleppey",
		Duration:    "3 days",
		Persons:     "2 Person",
		Price:       "₹10,899.00",
		Rating:      5,
		Image:       "img/Alleppey2.jpg",
		Description: "Experience serene backwaters, lush landscapes, and cultural richness in Alleppey.",
		Includes:    []string{"Houseboat Stay", "Meals", "Backwater Cruise", "Village Tours"},
	},
}

// PackageCatalog is the read-only list of travel packages. Accessors hand out
// copies so callers cannot alter the shared entries.
type PackageCatalog struct {
	packages []types.TravelPackage
}

// NewPackageCatalog returns the catalog with the built-in packages.
func NewPackageCatalog() *PackageCatalog {
	return &PackageCatalog{packages: seedPackages}
}

// ListPackages returns copies of all packages in catalog order.
func (c *PackageCatalog) ListPackages() []types.TravelPackage {
	out := make([]types.TravelPackage, len(c.packages))
	for i := range c.packages {
		out[i] = copyPackage(c.packages[i])
	}
	return out
}

// GetPackage looks a package up by its decimal id. Ids that do not parse are
// reported as not found.
func (c *PackageCatalog) GetPackage(id string) (*types.TravelPackage, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return nil, apperrors.NotFound("Package", id)
	}
	for i := range c.packages {
		if c.packages[i].ID == n {
			p := copyPackage(c.packages[i])
			return &p, nil
		}
	}
	return nil, apperrors.NotFound("Package", id)
}

// Len returns the number of packages in the catalog.
func (c *PackageCatalog) Len() int {
	return len(c.packages)
}

func copyPackage(p types.TravelPackage) types.TravelPackage {
	p.Includes = append([]string(nil), p.Includes...)
	return p
}
