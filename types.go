package main

// Post is one blog post extracted from the export feed.
type Post struct {
	ID        string
	Title     string
	Published string
	Draft     bool
	Tags      []string
	HTML      string
}

// ImportStatus represents the outcome status of importing a post
type ImportStatus string

const (
	StatusSuccess ImportStatus = "success"
	StatusSkipped ImportStatus = "skipped"
	StatusError   ImportStatus = "error"
)

// ImportResult tracks the outcome of importing each post
type ImportResult struct {
	Title    string
	Status   ImportStatus
	Filename string
	Error    error
}

// Summary aggregates the counts reported at the end of a run
type Summary struct {
	TotalPosts int `json:"totalPosts"`
}
