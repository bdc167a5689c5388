package domain

import "regexp"

// tweetURLRegex matches Twitter/X URLs and extracts username and tweet ID.
// The match is unanchored: the scheme is optional and any host ending in
// x.com or twitter.com is accepted, so mobile., www. and mirror hosts such
// as fxtwitter.com work.
// Query parameters are ignored.
var tweetURLRegex = regexp.MustCompile(
	`(?:x\.com|twitter\.com)/(\w+)/status/(\d+)`,
)

// ParseTweetURL extracts the username and tweet ID from a Twitter/X URL.
// Returns ErrInvalidURL if the URL format is invalid.
func ParseTweetURL(url string) (username string, tweetID string, err error) {
	matches := tweetURLRegex.FindStringSubmatch(url)
	if len(matches) < 3 {
		return "", "", ErrInvalidURL
	}
	return matches[1], matches[2], nil
}

// StatusURL returns the canonical x.com URL of a post.
func StatusURL(username, tweetID string) string {
	return "https://x.com/" + username + "/status/" + tweetID
}
