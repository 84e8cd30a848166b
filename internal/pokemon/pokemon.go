package pokemon

// Pokemon is one entry of the PokeAPI listing. URL points at the detail
// resource and is carried through unchanged.
type Pokemon struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ListResponse matches api/v2/pokemon
type ListResponse struct {
	Count    int       `json:"count"`
	Next     *string   `json:"next"`
	Previous *string   `json:"previous"`
	Results  []Pokemon `json:"results"`
}
