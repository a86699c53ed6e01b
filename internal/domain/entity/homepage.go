package entity

import "strings"

const (
	// NewTabURL is the homepage value meaning "open a new tab page".
	NewTabURL = "about:newtab"
	// BlankURL is the engine's empty document.
	BlankURL = "about:blank"
)

// IsNewTabHomePage reports whether the stored homepage means "new tab".
func IsNewTabHomePage(homePage string) bool {
	return homePage == "" || homePage == NewTabURL || homePage == BlankURL
}

// NormalizeHomePage turns user input into a stored homepage value.
// Empty input (or the placeholder) becomes the new tab page; input without
// a scheme gets https://.
func NormalizeHomePage(input, placeholder string) string {
	url := strings.TrimSpace(input)
	if url == "" || (placeholder != "" && url == placeholder) {
		return NewTabURL
	}
	if !strings.Contains(url, "://") && !strings.HasPrefix(url, "about:") {
		url = "https://" + url
	}
	return url
}

// HomePageDisplayText returns the label shown for a stored homepage.
func HomePageDisplayText(homePage string) string {
	if IsNewTabHomePage(homePage) {
		return "Open the new tab page"
	}
	return homePage
}
