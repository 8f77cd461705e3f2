package ui

import (
	"fmt"
	"net/url"
	"strings"
)

// Input bounds for the search and settings screens.
const (
	minQueryLength  = 2
	maxQueryLength  = 500
	minTimeout      = 1
	maxTimeout      = 300
	minItemsPerPage = 1
	maxItemsPerPage = 100
)

// ValidateSearchQuery checks a query before it is submitted.
func ValidateSearchQuery(query string) error {
	if query == "" {
		return fmt.Errorf("Search query cannot be empty")
	}
	query = strings.TrimSpace(query)
	if len(query) < minQueryLength {
		return fmt.Errorf("Search query must be at least %d characters", minQueryLength)
	}
	if len(query) > maxQueryLength {
		return fmt.Errorf("Search query too long (max %d characters)", maxQueryLength)
	}
	return nil
}

// ValidateURL checks a server URL entered on the settings screen.
func ValidateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("URL cannot be empty")
	}
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("Invalid URL format")
	}
	if parsed.Scheme == "" {
		return fmt.Errorf("URL must include a scheme (http:// or https://)")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("URL scheme must be http or https, got: %s", parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("URL must include a hostname")
	}
	return nil
}

// ValidateTimeout checks a request timeout in seconds.
func ValidateTimeout(seconds int) error {
	if seconds < minTimeout {
		return fmt.Errorf("Timeout must be at least %d second(s)", minTimeout)
	}
	if seconds > maxTimeout {
		return fmt.Errorf("Timeout too large (max %d seconds)", maxTimeout)
	}
	return nil
}

// ValidateItemsPerPage checks the page size setting.
func ValidateItemsPerPage(n int) error {
	if n < minItemsPerPage {
		return fmt.Errorf("Items per page must be at least %d", minItemsPerPage)
	}
	if n > maxItemsPerPage {
		return fmt.Errorf("Items per page too large (max %d)", maxItemsPerPage)
	}
	return nil
}

// ValidateBiblioID checks a record id before lookup.
func ValidateBiblioID(id int) error {
	if id <= 0 {
		return fmt.Errorf("Biblio ID must be positive")
	}
	return nil
}
