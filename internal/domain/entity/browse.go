package entity

// BrowseFilters carries human-readable facet values. Values within a facet
// are OR-ed, facets are AND-ed.
type BrowseFilters struct {
	Genres    []string
	Themes    []string
	Platforms []string
	Years     []string
	Offset    int
	Limit     int
}

type BrowseResult struct {
	Games  []Game `json:"games"`
	Count  int    `json:"count"`
	Offset int    `json:"offset"`
	// HasMore is true when a full page came back. The catalog total is not
	// queried, so the last full page reports a next page that is empty.
	HasMore bool `json:"hasMore"`
}
