package catalog

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// MARC 21 tags used by the record mapping. Tags are three-digit
// strings; anything below 010 is a control field carrying a bare
// value instead of indicators and subfields.
const (
	tagISBN              = "020"
	tagLCCallNumber      = "050"
	tagDeweyDecimal      = "082"
	tagLocalCallNumber   = "090"
	tagAuthorPersonal    = "100"
	tagAuthorCorporate   = "110"
	tagTitle             = "245"
	tagPublicationOld    = "260" // pre-RDA records
	tagPublicationRDA    = "264"
	tagPhysicalDesc      = "300"
	tagSummary           = "520"
	tagSubjectTopical    = "650"
	tagAddedAuthor       = "700"
)

// MARCSubfield is a single-letter-coded value inside a data field.
type MARCSubfield struct {
	Code  string
	Value string
}

// MARCField is one tagged field of a MARC record. Control fields
// carry Value; data fields carry indicators and ordered subfields.
type MARCField struct {
	Tag       string
	Value     string
	Ind1      string
	Ind2      string
	Subfields []MARCSubfield
}

// IsControl reports whether the field is a control field (no
// indicators or subfields).
func (f *MARCField) IsControl() bool {
	return len(f.Subfields) == 0 && f.Value != ""
}

// MARCDocument is a decoded MARC-in-JSON payload. Field order is
// preserved from the source document.
type MARCDocument struct {
	Leader string
	Fields []MARCField
}

// First returns the first occurrence of the given subfield, scanning
// fields in document order. For control fields the bare value is
// returned regardless of code. Missing tags or codes yield "".
func (d *MARCDocument) First(tag, code string) string {
	for i := range d.Fields {
		f := &d.Fields[i]
		if f.Tag != tag {
			continue
		}
		if f.IsControl() {
			return f.Value
		}
		for _, sf := range f.Subfields {
			if sf.Code == code {
				return sf.Value
			}
		}
	}
	return ""
}

// All returns every occurrence of the given subfield across repeated
// fields, in document order.
func (d *MARCDocument) All(tag, code string) []string {
	var out []string
	for i := range d.Fields {
		f := &d.Fields[i]
		if f.Tag != tag {
			continue
		}
		for _, sf := range f.Subfields {
			if sf.Code == code {
				out = append(out, sf.Value)
			}
		}
	}
	return out
}

// marc-in-json wire shapes. Each entry of "fields" is an object with a
// single key (the tag) whose value is either a string (control field)
// or an object with indicators and single-key subfield objects.
type marcJSONField struct {
	Ind1      string            `json:"ind1"`
	Ind2      string            `json:"ind2"`
	Subfields []map[string]string `json:"subfields"`
}

type marcJSONDoc struct {
	Leader string                       `json:"leader"`
	Fields []map[string]json.RawMessage `json:"fields"`
}

// DecodeMARC parses a MARC-in-JSON payload. Malformed field entries
// are skipped rather than failing the whole document; an error is
// returned only when the envelope itself cannot be decoded.
func DecodeMARC(data []byte) (*MARCDocument, error) {
	var raw marcJSONDoc
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode marc-in-json: %w", err)
	}

	doc := &MARCDocument{Leader: raw.Leader}
	for _, entry := range raw.Fields {
		for tag, body := range entry {
			field := MARCField{Tag: tag}

			var control string
			if err := json.Unmarshal(body, &control); err == nil {
				field.Value = control
				doc.Fields = append(doc.Fields, field)
				continue
			}

			var df marcJSONField
			if err := json.Unmarshal(body, &df); err != nil {
				continue
			}
			field.Ind1 = df.Ind1
			field.Ind2 = df.Ind2
			for _, sub := range df.Subfields {
				for code, value := range sub {
					field.Subfields = append(field.Subfields, MARCSubfield{Code: code, Value: value})
				}
			}
			doc.Fields = append(doc.Fields, field)
		}
	}
	return doc, nil
}

// MARCFromRaw re-decodes the MARC document out of a record's RawData.
// Returns nil for records without MARC provenance (HTML scrapes).
func MARCFromRaw(raw map[string]any) *MARCDocument {
	if raw == nil || raw["fields"] == nil {
		return nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	doc, err := DecodeMARC(data)
	if err != nil {
		return nil
	}
	return doc
}

var yearDigits = regexp.MustCompile(`\d{4}`)

// RecordFromMARC maps a MARC document onto a flat BiblioRecord using
// the standard bibliographic tags. Absent tags and subfields degrade
// to empty fields; the mapping never fails.
func RecordFromMARC(biblioID int, doc *MARCDocument, raw map[string]any) *BiblioRecord {
	title := doc.First(tagTitle, "a")
	if subtitle := doc.First(tagTitle, "b"); subtitle != "" {
		title = strings.TrimSpace(title + " " + subtitle)
	}
	title = strings.TrimRight(title, " /")
	if title == "" {
		title = fmt.Sprintf("Record #%d", biblioID)
	}

	author := doc.First(tagAuthorPersonal, "a")
	if author == "" {
		author = doc.First(tagAuthorCorporate, "a")
	}
	if author == "" {
		author = doc.First(tagAddedAuthor, "a")
	}
	author = strings.TrimRight(author, " ,")

	publisher := firstNonEmpty(doc.First(tagPublicationOld, "b"), doc.First(tagPublicationRDA, "b"))
	pubPlace := firstNonEmpty(doc.First(tagPublicationOld, "a"), doc.First(tagPublicationRDA, "a"))
	pubYear := firstNonEmpty(doc.First(tagPublicationOld, "c"), doc.First(tagPublicationRDA, "c"))
	// Reduce "c1998." and friends to the bare year.
	if pubYear != "" {
		pubYear = yearDigits.FindString(pubYear)
	}

	lcc := joinCallNumber(doc.First(tagLCCallNumber, "a"), doc.First(tagLCCallNumber, "b"))
	if lcc == "" {
		lcc = joinCallNumber(doc.First(tagLocalCallNumber, "a"), doc.First(tagLocalCallNumber, "b"))
	}
	dewey := doc.First(tagDeweyDecimal, "a")

	fullPublisher := strings.TrimRight(pubPlace, " :,")
	if publisher != "" {
		if fullPublisher != "" {
			fullPublisher += ": "
		}
		fullPublisher += strings.TrimRight(publisher, " ,")
	}

	return &BiblioRecord{
		BiblioID:            biblioID,
		Title:               title,
		Author:              author,
		PublicationYear:     pubYear,
		Publisher:           fullPublisher,
		ISBN:                doc.First(tagISBN, "a"),
		CallNumber:          firstNonEmpty(lcc, dewey),
		CallNumberLCC:       lcc,
		CallNumberDewey:     dewey,
		PhysicalDescription: doc.First(tagPhysicalDesc, "a"),
		Summary:             doc.First(tagSummary, "a"),
		Subjects:            doc.All(tagSubjectTopical, "a"),
		RawData:             raw,
	}
}

// joinCallNumber appends the cutter to the class number when present.
func joinCallNumber(class, cutter string) string {
	if cutter == "" {
		return strings.TrimSpace(class)
	}
	return strings.TrimSpace(class + " " + cutter)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
