package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateSearchQuery(t *testing.T) {
	require.NoError(t, ValidateSearchQuery("hemingway"))
	require.NoError(t, ValidateSearchQuery("go"))

	require.EqualError(t, ValidateSearchQuery(""), "Search query cannot be empty")
	require.EqualError(t, ValidateSearchQuery("a"), "Search query must be at least 2 characters")
	require.EqualError(t, ValidateSearchQuery(" x "), "Search query must be at least 2 characters")
	require.EqualError(t, ValidateSearchQuery(strings.Repeat("x", 501)),
		"Search query too long (max 500 characters)")
}

func TestValidateURL(t *testing.T) {
	require.NoError(t, ValidateURL("https://demo.koha-community.org"))
	require.NoError(t, ValidateURL("http://localhost:8080"))

	require.EqualError(t, ValidateURL(""), "URL cannot be empty")
	require.EqualError(t, ValidateURL("demo.koha-community.org"),
		"URL must include a scheme (http:// or https://)")
	require.EqualError(t, ValidateURL("ftp://demo.koha-community.org"),
		"URL scheme must be http or https, got: ftp")
	require.EqualError(t, ValidateURL("https://"), "URL must include a hostname")
}

func TestValidateTimeout(t *testing.T) {
	require.NoError(t, ValidateTimeout(1))
	require.NoError(t, ValidateTimeout(300))

	require.Error(t, ValidateTimeout(0))
	require.Error(t, ValidateTimeout(301))
}

func TestValidateItemsPerPage(t *testing.T) {
	require.NoError(t, ValidateItemsPerPage(1))
	require.NoError(t, ValidateItemsPerPage(100))

	require.Error(t, ValidateItemsPerPage(0))
	require.Error(t, ValidateItemsPerPage(101))
}

func TestValidateBiblioID(t *testing.T) {
	require.NoError(t, ValidateBiblioID(1))
	require.Error(t, ValidateBiblioID(0))
	require.Error(t, ValidateBiblioID(-5))
}
