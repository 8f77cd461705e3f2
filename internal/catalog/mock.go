package catalog

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// sampleLibraries backs the mock Libraries call.
var sampleLibraries = map[string]string{
	"MAIN":  "Main Library",
	"NORTH": "North Branch",
	"SOUTH": "South Branch",
	"CHILD": "Children's Library",
	"REF":   "Reference Library",
}

var sampleLocations = []string{
	"Adult Fiction",
	"Adult Non-Fiction",
	"Young Adult",
	"Children's",
	"Reference",
	"Large Print",
	"Audio Books",
}

var samplePublicNotes = []string{
	"Signed by author",
	"Large print edition",
	"Includes supplementary materials",
	"Replacement copy",
	"Gift from Friends of the Library",
}

// sampleBooks is the fixed demo catalog.
var sampleBooks = []BiblioRecord{
	{
		BiblioID: 1, Title: "For Whom the Bell Tolls", Author: "Hemingway, Ernest, 1899-1961",
		PublicationYear: "1940", Publisher: "Charles Scribner's Sons", ISBN: "9780684803357",
		ItemType: "Book", CallNumber: "PS3515.E37 F6", CallNumberLCC: "PS3515.E37 F6", CallNumberDewey: "813.52",
		Summary: "A young American in the International Brigades during the Spanish Civil War.",
	},
	{
		BiblioID: 2, Title: "True at First Light", Author: "Hemingway, Ernest, 1899-1961",
		PublicationYear: "1999", Publisher: "Scribner", ISBN: "9780684842714",
		ItemType: "Book", CallNumber: "PS3515.E37 T78", CallNumberLCC: "PS3515.E37 T78", CallNumberDewey: "813.52",
		Summary: "A fictionalized memoir of an African safari.",
	},
	{
		BiblioID: 3, Title: "The Old Man and the Sea", Author: "Hemingway, Ernest, 1899-1961",
		PublicationYear: "1952", Publisher: "Charles Scribner's Sons", ISBN: "9780684801223",
		ItemType: "sound recording", CallNumber: "PS3515.E37 O4", CallNumberLCC: "PS3515.E37 O4", CallNumberDewey: "813.52",
		Summary: "The story of an aging Cuban fisherman and his epic battle with a giant marlin.",
	},
	{
		BiblioID: 4, Title: "A Moveable Feast", Author: "Hemingway, Ernest, 1899-1961",
		PublicationYear: "1964", Publisher: "Charles Scribner's Sons", ISBN: "9780684824994",
		ItemType: "Book", CallNumber: "PS3515.E37 Z523", CallNumberLCC: "PS3515.E37 Z523", CallNumberDewey: "813.52",
		Summary: "A memoir of Paris in the 1920s.",
	},
	{
		BiblioID: 5, Title: "Foundation", Author: "Asimov, Isaac, 1920-1992",
		PublicationYear: "1951", Publisher: "Gnome Press", ISBN: "9780553293357",
		ItemType: "Book", CallNumber: "PS3551.S5 F6", CallNumberLCC: "PS3551.S5 F6", CallNumberDewey: "813.54",
		Summary: "The first novel in Asimov's classic science fiction masterpiece.",
	},
	{
		BiblioID: 6, Title: "I, Robot", Author: "Asimov, Isaac, 1920-1992",
		PublicationYear: "1950", Publisher: "Gnome Press", ISBN: "9780553294385",
		ItemType: "Book", CallNumber: "PS3551.S5 I2", CallNumberLCC: "PS3551.S5 I2", CallNumberDewey: "813.54",
		Summary: "A collection of nine science fiction short stories about robots.",
	},
	{
		BiblioID: 7, Title: "The Great Gatsby", Author: "Fitzgerald, F. Scott, 1896-1940",
		PublicationYear: "1925", Publisher: "Charles Scribner's Sons", ISBN: "9780743273565",
		ItemType: "Book", CallNumber: "PS3511.I9 G7", CallNumberLCC: "PS3511.I9 G7", CallNumberDewey: "813.52",
		Summary: "A portrait of the Jazz Age in all of its decadence and excess.",
	},
	{
		BiblioID: 8, Title: "To Kill a Mockingbird", Author: "Lee, Harper, 1926-2016",
		PublicationYear: "1960", Publisher: "J. B. Lippincott & Co.", ISBN: "9780061120084",
		ItemType: "Book", CallNumber: "PS3562.E353 T6", CallNumberLCC: "PS3562.E353 T6", CallNumberDewey: "813.54",
		Summary: "A novel about racial injustice and the loss of innocence in the American South.",
	},
	{
		BiblioID: 9, Title: "1984", Author: "Orwell, George, 1903-1950",
		PublicationYear: "1949", Publisher: "Secker & Warburg", ISBN: "9780451524935",
		ItemType: "Book", CallNumber: "PR6029.R8 N5", CallNumberLCC: "PR6029.R8 N5", CallNumberDewey: "823.912",
		Summary: "A dystopian novel set in a totalitarian society.",
	},
	{
		BiblioID: 10, Title: "Pride and Prejudice", Author: "Austen, Jane, 1775-1817",
		PublicationYear: "1813", Publisher: "T. Egerton", ISBN: "9780141439518",
		ItemType: "Book", CallNumber: "PR4034 .P7", CallNumberLCC: "PR4034 .P7", CallNumberDewey: "823.7",
		Summary: "A romantic novel following the character development of Elizabeth Bennet.",
	},
	{
		BiblioID: 11, Title: "The Catcher in the Rye", Author: "Salinger, J. D., 1919-2010",
		PublicationYear: "1951", Publisher: "Little, Brown and Company", ISBN: "9780316769488",
		ItemType: "Book", CallNumber: "PS3537.A426 C3", CallNumberLCC: "PS3537.A426 C3", CallNumberDewey: "813.54",
		Summary: "A novel about teenage alienation and loss of innocence.",
	},
	{
		BiblioID: 12, Title: "One Hundred Years of Solitude", Author: "García Márquez, Gabriel, 1927-2014",
		PublicationYear: "1967", Publisher: "Harper & Row", ISBN: "9780060883287",
		ItemType: "Book", CallNumber: "PQ8180.17.A73 C513", CallNumberLCC: "PQ8180.17.A73 C513", CallNumberDewey: "863.64",
		Summary: "A landmark novel telling the multi-generational story of the Buendía family.",
	},
	{
		BiblioID: 14, Title: "The Hobbit", Author: "Tolkien, J. R. R., 1892-1973",
		PublicationYear: "1937", Publisher: "George Allen & Unwin", ISBN: "9780547928227",
		ItemType: "Book", CallNumber: "PR6039.O32 H6", CallNumberLCC: "PR6039.O32 H6", CallNumberDewey: "823.912",
		Summary: "A fantasy novel about the adventures of hobbit Bilbo Baggins.",
	},
	{
		BiblioID: 15, Title: "The Lord of the Rings", Author: "Tolkien, J. R. R., 1892-1973",
		PublicationYear: "1954", Publisher: "George Allen & Unwin", ISBN: "9780618640157",
		ItemType: "Book", CallNumber: "PR6039.O32 L6", CallNumberLCC: "PR6039.O32 L6", CallNumberDewey: "823.912",
		Summary: "An epic high-fantasy novel following the quest to destroy the One Ring.",
	},
	{
		BiblioID: 16, Title: "Python Programming: An Introduction to Computer Science", Author: "Zelle, John M.",
		PublicationYear: "2016", Publisher: "Franklin, Beedle & Associates", ISBN: "9781590282755",
		ItemType: "Book", CallNumber: "QA76.73.P98 Z45", CallNumberLCC: "QA76.73.P98 Z45", CallNumberDewey: "005.133",
		Summary: "A textbook designed for a first course in computer science using Python.",
	},
	{
		BiblioID: 17, Title: "Clean Code: A Handbook of Agile Software Craftsmanship", Author: "Martin, Robert C.",
		PublicationYear: "2008", Publisher: "Prentice Hall", ISBN: "9780132350884",
		ItemType: "Book", CallNumber: "QA76.76.D47 M38", CallNumberLCC: "QA76.76.D47 M38", CallNumberDewey: "005.1",
		Summary: "A guide to writing clean, readable, and maintainable code.",
	},
	{
		BiblioID: 18, Title: "The Sun Also Rises", Author: "Hemingway, Ernest, 1899-1961",
		PublicationYear: "1926", Publisher: "Charles Scribner's Sons", ISBN: "9780743297332",
		ItemType: "Book", CallNumber: "PS3515.E37 S8", CallNumberLCC: "PS3515.E37 S8", CallNumberDewey: "813.52",
		Summary: "A novel about a group of American and British expatriates in Paris and Spain.",
	},
	{
		BiblioID: 19, Title: "A Farewell to Arms", Author: "Hemingway, Ernest, 1899-1961",
		PublicationYear: "1929", Publisher: "Charles Scribner's Sons", ISBN: "9780684801469",
		ItemType: "Book", CallNumber: "PS3515.E37 F3", CallNumberLCC: "PS3515.E37 F3", CallNumberDewey: "813.52",
		Summary: "A novel set during World War I about an American ambulance driver and an English nurse.",
	},
	{
		BiblioID: 20, Title: "The Grapes of Wrath", Author: "Steinbeck, John, 1902-1968",
		PublicationYear: "1939", Publisher: "The Viking Press", ISBN: "9780143039433",
		ItemType: "Book", CallNumber: "PS3537.T3234 G8", CallNumberLCC: "PS3537.T3234 G8", CallNumberDewey: "813.52",
		Summary: "A novel about the Joad family's migration from Oklahoma to California during the Dust Bowl.",
	},
}

// Mock serves the fixed sample catalog, for demo mode and tests. It
// imitates a live server's feel with small randomized delays unless
// SimulateDelay is off.
type Mock struct {
	// SimulateDelay adds 50-500ms of latency per call when true.
	// Tests leave it false.
	SimulateDelay bool

	rng *rand.Rand
}

var _ Provider = (*Mock)(nil)

// NewMock builds a Mock provider with randomized holdings.
func NewMock(simulateDelay bool) *Mock {
	return &Mock{
		SimulateDelay: simulateDelay,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (m *Mock) delay(ctx context.Context, minMS, maxMS int) error {
	if !m.SimulateDelay {
		return nil
	}
	d := time.Duration(minMS+m.rng.Intn(maxMS-minMS+1)) * time.Millisecond
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return classifyTransport(ctx.Err())
	}
}

// Search filters the sample catalog by substring match.
func (m *Mock) Search(ctx context.Context, query string, searchType SearchType, page, perPage int) (*SearchResult, error) {
	if err := m.delay(ctx, 100, 500); err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var matches []BiblioRecord
	for _, book := range sampleBooks {
		var hit bool
		switch searchType {
		case SearchTitle, SearchTitleExact:
			hit = strings.Contains(strings.ToLower(book.Title), q)
		case SearchAuthor:
			hit = strings.Contains(strings.ToLower(book.Author), q)
		case SearchISBN:
			hit = strings.Contains(
				strings.ReplaceAll(book.ISBN, "-", ""),
				strings.ReplaceAll(q, "-", ""),
			)
		case SearchSubject, SearchKeyword:
			searchable := strings.ToLower(book.Title + " " + book.Author + " " + book.Summary)
			hit = strings.Contains(searchable, q)
		default:
			hit = strings.Contains(strings.ToLower(book.Title), q)
		}
		if hit {
			matches = append(matches, book)
		}
	}

	total := len(matches)
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return &SearchResult{
		Records:    matches[start:end],
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

// GetRecord looks up a sample book by id.
func (m *Mock) GetRecord(ctx context.Context, biblioID int) (*BiblioRecord, error) {
	if err := m.delay(ctx, 100, 500); err != nil {
		return nil, err
	}

	for i := range sampleBooks {
		if sampleBooks[i].BiblioID == biblioID {
			book := sampleBooks[i]
			return &book, nil
		}
	}
	return nil, errf(KindNotFound, "Record not found")
}

// GetHoldings fabricates 1-5 randomized copies of a sample book.
func (m *Mock) GetHoldings(ctx context.Context, biblioID int) ([]HoldingItem, error) {
	if err := m.delay(ctx, 100, 500); err != nil {
		return nil, err
	}

	var book *BiblioRecord
	for i := range sampleBooks {
		if sampleBooks[i].BiblioID == biblioID {
			book = &sampleBooks[i]
			break
		}
	}
	if book == nil {
		return nil, errf(KindNotFound, "Record not found")
	}

	libraryIDs := make([]string, 0, len(sampleLibraries))
	for id := range sampleLibraries {
		libraryIDs = append(libraryIDs, id)
	}

	copies := 1 + m.rng.Intn(5)
	holdings := make([]HoldingItem, 0, copies)
	for i := 0; i < copies; i++ {
		libraryID := libraryIDs[m.rng.Intn(len(libraryIDs))]

		status := "Available"
		available := true
		dueDate := ""
		if m.rng.Float64() <= 0.3 {
			status = "On Loan"
			available = false
			due := time.Now().AddDate(0, 0, 1+m.rng.Intn(21))
			dueDate = due.Format("2006-01-02")
		}

		note := ""
		if m.rng.Float64() > 0.7 {
			note = samplePublicNotes[m.rng.Intn(len(samplePublicNotes))]
		}

		holdings = append(holdings, HoldingItem{
			ItemID:      biblioID*100 + i + 1,
			Barcode:     fmt.Sprintf("%06d%03d", biblioID, i+1),
			LibraryID:   libraryID,
			LibraryName: sampleLibraries[libraryID],
			Location:    sampleLocations[m.rng.Intn(len(sampleLocations))],
			CallNumber:  book.CallNumber,
			CopyNumber:  i + 1,
			ItemType:    book.ItemType,
			DueDate:     dueDate,
			Notes:       note,
			PublicNote:  note,
			Status:      status,
			IsAvailable: available,
		})
	}
	return holdings, nil
}

// Libraries returns the fixed branch table.
func (m *Mock) Libraries(ctx context.Context) (map[string]string, error) {
	if err := m.delay(ctx, 50, 100); err != nil {
		return nil, err
	}
	return sampleLibraries, nil
}

// Close is a no-op; the mock holds no resources.
func (m *Mock) Close() error {
	return nil
}
