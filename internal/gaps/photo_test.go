package gaps

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyPhoto(t *testing.T) {
	classifier := NewClassifier(DefaultRules())

	table := []struct {
		image    string
		expected PhotoStatus
	}{
		{image: "", expected: PhotoMissing},
		{image: "   ", expected: PhotoMissing},
		{image: "null", expected: PhotoMissing},
		{
			image:    "https://img/proxy?url=https%3A%2F%2Fcdn%2Fplaceholder-consultant.png",
			expected: PhotoPlaceholder,
		},
		{image: "https://cdn/images/PlaceHolder.JPG", expected: PhotoPlaceholder},
		{image: "https://cdn/images/no-image.png", expected: PhotoPlaceholder},
		{image: "https://cdn/images/default-consultant.png", expected: PhotoPlaceholder},
		{image: "https://cdn/images/silhouette-male.svg", expected: PhotoPlaceholder},
		{image: "https://cdn/images/dr-jane-smith.jpg", expected: PhotoReal},
		// only the part after the proxy marker is inspected
		{image: "https://generic-proxy/resize?url=https%3A%2F%2Fcdn%2Fdr-smith.jpg", expected: PhotoReal},
	}

	for _, row := range table {
		require.Equal(t, row.expected, classifier.PhotoStatus(row.image), row.image)
	}
}

func TestClassifyPhotoCustomPatterns(t *testing.T) {
	classifier := NewClassifier(Rules{PlaceholderPatterns: []string{"STOCK"}})
	require.Equal(t, PhotoPlaceholder, classifier.PhotoStatus("https://cdn/stock-photo.png"))
	require.Equal(t, PhotoReal, classifier.PhotoStatus("https://cdn/placeholder.png"))
}
