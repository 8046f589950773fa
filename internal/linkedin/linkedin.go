package linkedin

import "strings"

const profilePathMarker = "linkedin.com/in/"

// IsProfileURL reports whether the URL points at a LinkedIn profile path.
func IsProfileURL(url string) bool {
	return strings.Contains(strings.ToLower(url), profilePathMarker)
}

// FetchProfile stands in for live profile scraping, which is deliberately not
// implemented: LinkedIn blocks anonymous crawling, so callers are asked to
// paste their profile text instead. The returned text is static and is what
// gets roasted when only a URL is supplied.
func FetchProfile(url string) string {
	return "This LinkedIn profile could not be fetched automatically. " +
		"The profile lives at " + url + ". " +
		"Roast the very idea of submitting a bare LinkedIn URL instead of pasting the profile text: " +
		"explain, in character, that the author should copy their About section, headline and " +
		"experience into the content field to get a real critique."
}
