package types

// TravelPackage is an entry of the static package catalog.
type TravelPackage struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Duration    string   `json:"duration"`
	Persons     string   `json:"persons"`
	Price       string   `json:"price"`
	Rating      int      `json:"rating"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Includes    []string `json:"includes"`
}
