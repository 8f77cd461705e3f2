package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Text-level patterns for the OPAC pages. The page structure is
// handled by goquery; these only pick values out of text runs.
var (
	resultCountRe   = regexp.MustCompile(`(?i)returned\s+(\d+)\s+results?`)
	trailingPunctRe = regexp.MustCompile(`\s*[:/]\s*$`)
	trailingDotsRe  = regexp.MustCompile(`[\s.]+$`)
	leadingByRe     = regexp.MustCompile(`(?i)^by\s+`)
	trailingCommaRe = regexp.MustCompile(`[,\s]+$`)
	fourDigitsRe    = regexp.MustCompile(`\d{4}`)
	blockIDRe       = regexp.MustCompile(`title_summary_(\d+)`)

	detailTitleRe     = regexp.MustCompile(`(?i)<title>([^<]+)</title>`)
	detailSuffixRe    = regexp.MustCompile(`\s*[|›»]\s*.*$`)
	detailYearRe      = regexp.MustCompile(`(?i)(?:published|copyright|date)[:\s]*(\d{4})`)
	anyModernYearRe   = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)
	detailPublisherRe = regexp.MustCompile(`(?i)(?:publisher|imprint)[:\s]*([^<\n]+)`)
	detailISBNRe      = regexp.MustCompile(`(?i)(?:ISBN)[:\s]*([\d\-X]+)`)
	detailCallNoRe    = regexp.MustCompile(`(?i)(?:call\s*number|shelfmark)[:\s]*([^<\n]+)`)
)

// parseResultsHTML extracts a result page from the OPAC search markup.
// Primary path reads the structured title_summary blocks; when none
// are present (theme variations strip them) the result checkboxes
// supply id and title alone. A page that yields nothing produces an
// empty result, not an error.
func parseResultsHTML(html string, page, perPage int) *SearchResult {
	result := &SearchResult{Page: page, PerPage: perPage}

	if m := resultCountRe.FindStringSubmatch(html); m != nil {
		result.TotalCount, _ = strconv.Atoi(m[1])
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return result
	}

	doc.Find("div.title_summary").Each(func(_ int, block *goquery.Selection) {
		id, ok := block.Attr("id")
		if !ok {
			return
		}
		m := blockIDRe.FindStringSubmatch(id)
		if m == nil {
			return
		}
		biblioID, _ := strconv.Atoi(m[1])

		title := strings.TrimSpace(block.Find("a.title").First().Text())
		title = trailingPunctRe.ReplaceAllString(title, "")

		author := strings.TrimSpace(block.Find("span.title_resp_stmt").First().Text())
		author = trailingDotsRe.ReplaceAllString(author, "")
		author = leadingByRe.ReplaceAllString(author, "")

		year := fourDigitsRe.FindString(block.Find("span.publisher_date").First().Text())

		publisher := strings.TrimSpace(block.Find("span.publisher_name").First().Text())
		publisher = trailingCommaRe.ReplaceAllString(publisher, "")

		result.Records = append(result.Records, BiblioRecord{
			BiblioID:        biblioID,
			Title:           fallbackTitle(title, biblioID),
			Author:          author,
			PublicationYear: year,
			Publisher:       publisher,
			RawData:         scrapeRaw(biblioID),
		})
	})

	if len(result.Records) == 0 {
		doc.Find(`input[name="biblionumber"]`).Each(func(_ int, input *goquery.Selection) {
			value, ok := input.Attr("value")
			if !ok {
				return
			}
			biblioID, err := strconv.Atoi(value)
			if err != nil {
				return
			}
			label, _ := input.Attr("aria-label")
			title := strings.TrimSpace(strings.TrimPrefix(label, "Select search result:"))
			title = trailingPunctRe.ReplaceAllString(title, "")

			result.Records = append(result.Records, BiblioRecord{
				BiblioID: biblioID,
				Title:    fallbackTitle(title, biblioID),
				RawData:  scrapeRaw(biblioID),
			})
		})
	}

	if result.TotalCount == 0 {
		result.TotalCount = len(result.Records)
	}
	return result
}

// parseDetailHTML pulls what it can out of an OPAC detail page. The
// markup varies wildly across Koha themes, so everything here is
// best-effort text heuristics; absent fields stay empty.
func parseDetailHTML(biblioID int, html string) *BiblioRecord {
	rec := &BiblioRecord{
		BiblioID: biblioID,
		RawData:  scrapeRaw(biblioID),
	}

	if m := detailTitleRe.FindStringSubmatch(html); m != nil {
		title := strings.TrimSpace(m[1])
		rec.Title = detailSuffixRe.ReplaceAllString(title, "")
	}

	// A title-classed element beats the page <title> when present.
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err == nil {
		if t := strings.TrimSpace(doc.Find(`[class*="title"]`).First().Text()); t != "" {
			rec.Title = t
		}
		if a := strings.TrimSpace(doc.Find(`[class*="author"]`).First().Text()); a != "" {
			rec.Author = a
		}
	}

	if m := detailYearRe.FindStringSubmatch(html); m != nil {
		rec.PublicationYear = m[1]
	} else if m := anyModernYearRe.FindStringSubmatch(html); m != nil {
		rec.PublicationYear = m[1]
	}

	if m := detailPublisherRe.FindStringSubmatch(html); m != nil {
		rec.Publisher = strings.TrimSpace(m[1])
	}
	if m := detailISBNRe.FindStringSubmatch(html); m != nil {
		rec.ISBN = strings.TrimSpace(m[1])
	}
	if m := detailCallNoRe.FindStringSubmatch(html); m != nil {
		rec.CallNumber = strings.TrimSpace(m[1])
	}

	if rec.Title == "" {
		rec.Title = fallbackTitle("", biblioID)
	}
	return rec
}

func fallbackTitle(title string, biblioID int) string {
	if title != "" {
		return title
	}
	return "Record #" + strconv.Itoa(biblioID)
}

func scrapeRaw(biblioID int) map[string]any {
	return map[string]any{"biblionumber": biblioID, "source": "opac_html"}
}
