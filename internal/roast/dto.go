package roast

// CVResponse is the success body for POST /roast/cv.
type CVResponse struct {
	Success         bool   `json:"success"`
	Roast           string `json:"roast"`
	WordCount       int    `json:"wordCount"`
	ExtractedLength int    `json:"extractedLength"`
}

// LinkedInRequest is the body for POST /roast/linkedin.
type LinkedInRequest struct {
	URL     string `json:"url"`
	Content string `json:"content"`
}

// LinkedInResponse is the success body for POST /roast/linkedin. ProfileURL
// is omitted when the caller pasted content instead of a URL.
type LinkedInResponse struct {
	Success    bool   `json:"success"`
	Roast      string `json:"roast"`
	ProfileURL string `json:"profileUrl,omitempty"`
}
