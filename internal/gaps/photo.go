package gaps

import (
	"strings"

	"consultant-gaps/lib/textutil"
)

type PhotoStatus string

const (
	PhotoMissing     PhotoStatus = "missing"
	PhotoPlaceholder PhotoStatus = "placeholder"
	PhotoReal        PhotoStatus = "real"
)

// image urls are sometimes rewritten by an image proxy, the original url
// then lives after this marker.
const proxiedUrlMarker = "url="

// ClassifyPhoto expects `image` to be normalized already and `patterns` to
// be lower case.
func ClassifyPhoto(image string, patterns []string) PhotoStatus {
	if image == "" {
		return PhotoMissing
	}
	target := image
	if idx := strings.Index(target, proxiedUrlMarker); idx >= 0 {
		target = target[idx+len(proxiedUrlMarker):]
	}
	if textutil.MatchAny(target, patterns) {
		return PhotoPlaceholder
	}
	return PhotoReal
}
