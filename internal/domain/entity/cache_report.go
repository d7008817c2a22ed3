package entity

// CacheReport summarizes one curated cache run.
type CacheReport struct {
	Message       string `json:"message"`
	Total         int    `json:"total"`
	Cached        int    `json:"cached"`
	AlreadyCached int    `json:"alreadyCached"`
	NotFound      int    `json:"notFound"`
}
