package publicpage

import "strings"

// EmbedURL rewrites the two recognized YouTube link shapes to the
// embeddable form. Anything else passes through unchanged — best effort,
// not validated.
//
//	https://www.youtube.com/watch?v=VIDEO_ID  -> https://www.youtube.com/embed/VIDEO_ID
//	https://youtu.be/VIDEO_ID                 -> https://www.youtube.com/embed/VIDEO_ID
func EmbedURL(raw string) string {
	if raw == "" {
		return ""
	}

	if _, rest, ok := strings.Cut(raw, "watch?v="); ok {
		id, _, _ := strings.Cut(rest, "&")
		return "https://www.youtube.com/embed/" + id
	}

	if _, rest, ok := strings.Cut(raw, "youtu.be/"); ok {
		id, _, _ := strings.Cut(rest, "?")
		return "https://www.youtube.com/embed/" + id
	}

	return raw
}
