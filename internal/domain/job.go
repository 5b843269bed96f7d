package domain

// JobPosting is a link sampled from a careers page. Title is the trimmed link
// text and may be empty.
type JobPosting struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Valid bool   `json:"valid"`
}
