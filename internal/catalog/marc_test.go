package catalog

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleMARCJSON = `{
	"leader": "01234cam a2200301 a 4500",
	"fields": [
		{"001": "42"},
		{"008": "200101s2020    nyu           000 0 eng d"},
		{"020": {"ind1": " ", "ind2": " ", "subfields": [{"a": "9780123456789"}]}},
		{"050": {"ind1": "0", "ind2": "0", "subfields": [{"a": "PS3515.E37"}, {"b": "F6 2020"}]}},
		{"082": {"ind1": "0", "ind2": "4", "subfields": [{"a": "813.52"}]}},
		{"100": {"ind1": "1", "ind2": " ", "subfields": [{"a": "Hemingway, Ernest,"}]}},
		{"245": {"ind1": "1", "ind2": "0", "subfields": [{"a": "For whom the bell tolls :"}, {"b": "a novel /"}]}},
		{"264": {"ind1": " ", "ind2": "1", "subfields": [{"a": "New York :"}, {"b": "Scribner,"}, {"c": "2020."}]}},
		{"300": {"ind1": " ", "ind2": " ", "subfields": [{"a": "471 pages ; 24 cm"}]}},
		{"520": {"ind1": " ", "ind2": " ", "subfields": [{"a": "An American joins a guerrilla band in the Spanish Civil War."}]}},
		{"650": {"ind1": " ", "ind2": "0", "subfields": [{"a": "Spain"}]}},
		{"650": {"ind1": " ", "ind2": "0", "subfields": [{"a": "War stories"}]}}
	]
}`

func TestDecodeMARC(t *testing.T) {
	doc, err := DecodeMARC([]byte(sampleMARCJSON))
	require.NoError(t, err)
	require.Equal(t, "01234cam a2200301 a 4500", doc.Leader)

	// Control fields keep their raw value.
	require.Equal(t, "42", doc.First("001", ""))

	// Data fields expose subfields.
	require.Equal(t, "For whom the bell tolls :", doc.First("245", "a"))
	require.Equal(t, "a novel /", doc.First("245", "b"))

	// Repeated tags come back in document order.
	subjects := doc.All("650", "a")
	require.Equal(t, []string{"Spain", "War stories"}, subjects)
}

func TestDecodeMARCInvalid(t *testing.T) {
	_, err := DecodeMARC([]byte("not json"))
	require.Error(t, err)
}

func TestDecodeMARCSkipsMalformedEntries(t *testing.T) {
	doc, err := DecodeMARC([]byte(`{
		"leader": "x",
		"fields": [
			{"245": 12345},
			{"100": {"ind1": "1", "ind2": " ", "subfields": [{"a": "Author"}]}}
		]
	}`))
	require.NoError(t, err)
	require.Equal(t, "", doc.First("245", "a"))
	require.Equal(t, "Author", doc.First("100", "a"))
}

func TestRecordFromMARC(t *testing.T) {
	doc, err := DecodeMARC([]byte(sampleMARCJSON))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(sampleMARCJSON), &raw))

	rec := RecordFromMARC(42, doc, raw)
	require.Equal(t, 42, rec.BiblioID)
	require.Equal(t, "For whom the bell tolls : a novel", rec.Title)
	require.Equal(t, "Hemingway, Ernest", rec.Author)
	require.Equal(t, "2020", rec.PublicationYear)
	require.Equal(t, "New York: Scribner", rec.Publisher)
	require.Equal(t, "9780123456789", rec.ISBN)
	require.Equal(t, "PS3515.E37 F6 2020", rec.CallNumberLCC)
	require.Equal(t, "813.52", rec.CallNumberDewey)
	require.Equal(t, "PS3515.E37 F6 2020", rec.CallNumber)
	require.Equal(t, "471 pages ; 24 cm", rec.PhysicalDescription)
	require.Equal(t, []string{"Spain", "War stories"}, rec.Subjects)
	require.Contains(t, rec.Summary, "guerrilla band")
	require.False(t, rec.ScrapedFromHTML())
}

func TestRecordFromMARCFallbacks(t *testing.T) {
	doc := &MARCDocument{}
	rec := RecordFromMARC(7, doc, nil)
	require.Equal(t, "Record #7", rec.Title)
	require.Empty(t, rec.Author)
	require.Empty(t, rec.CallNumber)
}

func TestMARCFromRaw(t *testing.T) {
	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(sampleMARCJSON), &raw))

	doc := MARCFromRaw(raw)
	require.NotNil(t, doc)
	require.Equal(t, "For whom the bell tolls :", doc.First("245", "a"))

	require.Nil(t, MARCFromRaw(nil))
	require.Nil(t, MARCFromRaw(map[string]any{"source": "opac_html"}))
}

func TestFormatMARC(t *testing.T) {
	doc, err := DecodeMARC([]byte(sampleMARCJSON))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(sampleMARCJSON), &raw))
	rec := RecordFromMARC(42, doc, raw)

	out := FormatMARC(rec)
	require.Contains(t, out, "MARC RECORD")
	require.Contains(t, out, "Record #42")
	require.Contains(t, out, "LDR")
	require.Contains(t, out, "245")
	require.Contains(t, out, "Title Statement")
	require.Contains(t, out, "$a")
	require.Contains(t, out, "Indicators: [1][0]")
}

func TestFormatMARCWithoutData(t *testing.T) {
	rec := &BiblioRecord{BiblioID: 9, Title: "Scraped", RawData: map[string]any{"source": "opac_html"}}
	out := FormatMARC(rec)
	require.True(t, strings.HasPrefix(out, "MARC record data not available."))
}

func TestMARCFieldDescription(t *testing.T) {
	require.Equal(t, "Title Statement", MARCFieldDescription("245"))
	require.Equal(t, "Koha Holdings Data", MARCFieldDescription("952"))
	require.Empty(t, MARCFieldDescription("xyz"))
}
