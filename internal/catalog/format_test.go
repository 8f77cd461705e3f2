package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatDetailsBasic(t *testing.T) {
	rec := &BiblioRecord{
		Title:           "Dune",
		Author:          "Herbert, Frank",
		Publisher:       "Chilton Books",
		PublicationYear: "1965",
		ISBN:            "9780441013593",
		CallNumberLCC:   "PS3558.E63 D8",
	}

	out := FormatDetails(rec, "lcc", false)
	lines := strings.Split(out, "\n")
	require.Equal(t, []string{
		"Title:      Dune",
		"Author:     Herbert, Frank",
		"Published:  Chilton Books, 1965",
		"ISBN:       9780441013593",
		"Call No:    PS3558.E63 D8",
	}, lines)
}

func TestFormatDetailsSkipsEmptyFields(t *testing.T) {
	rec := &BiblioRecord{}
	out := FormatDetails(rec, "both", false)
	require.Equal(t, "Title:      Unknown Title", out)
}

func TestFormatDetailsExtended(t *testing.T) {
	rec := &BiblioRecord{
		Title:               "Dune",
		Edition:             "1st ed.",
		PhysicalDescription: "412 pages",
		Series:              "Dune chronicles ; 1",
		Subjects:            []string{"Deserts", "Politics", "Ecology", "Messiahs"},
		Summary:             strings.Repeat("x", 130),
	}

	out := FormatDetails(rec, "both", true)
	require.Contains(t, out, "Edition:    1st ed.")
	require.Contains(t, out, "Physical:   412 pages")
	require.Contains(t, out, "Series:     Dune chronicles ; 1")
	require.Contains(t, out, "Subjects:   Deserts; Politics; Ecology...")
	require.Contains(t, out, strings.Repeat("x", 117)+"...")
	require.NotContains(t, out, strings.Repeat("x", 118))
}

func TestFormatDetailsExtendedFlagOff(t *testing.T) {
	rec := &BiblioRecord{Title: "Dune", Summary: "A desert planet."}
	out := FormatDetails(rec, "both", false)
	require.NotContains(t, out, "Summary")
}
