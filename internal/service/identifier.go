package service

import "regexp"

// URL shapes a channel can be addressed by.
var channelURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/channel/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`youtube\.com/c/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`youtube\.com/user/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`youtube\.com/@([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]+)`),
}

// ExtractChannelIdentifier pulls the channel ID, username or handle out of a
// YouTube channel URL. It returns "" when the URL matches none of the known
// shapes.
func ExtractChannelIdentifier(url string) string {
	for _, pattern := range channelURLPatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}
