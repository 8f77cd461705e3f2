package ui

const aboutText = `
╔══════════════════════════════════════════════════════════════════════════════╗
║                                                                              ║
║                          LIBRARY CATALOG TERMINAL                            ║
║                               Version 1.0.0                                  ║
║                                                                              ║
╠══════════════════════════════════════════════════════════════════════════════╣
║                                                                              ║
║  A nostalgic text-based interface for the Koha Integrated Library System,    ║
║  inspired by the classic Dynix and BLCMP library terminals of the 1990s.     ║
║                                                                              ║
║  This application connects to any Koha ILS via its REST API to provide:      ║
║                                                                              ║
║    • Catalog searching by title, author, subject, ISBN, and more             ║
║    • Detailed bibliographic record viewing                                   ║
║    • Real-time item availability and holdings information                    ║
║    • Classic terminal aesthetics with customizable color themes              ║
║                                                                              ║
╠══════════════════════════════════════════════════════════════════════════════╣
║                                                                              ║
║  For more information about Koha:                                            ║
║    https://koha-community.org                                                ║
║                                                                              ║
╠══════════════════════════════════════════════════════════════════════════════╣
║                                                                              ║
║  Color Themes Available:                                                     ║
║    • Amber  - Classic amber phosphor terminal look                           ║
║    • Green  - Green phosphor terminal (P1 phosphor)                          ║
║    • White  - Monochrome white on black                                      ║
║    • Blue   - Cool blue terminal style                                       ║
║                                                                              ║
║  Change themes in Settings (option 8 from main menu)                         ║
║                                                                              ║
╚══════════════════════════════════════════════════════════════════════════════╝

                    Press any key to return to the main menu
`

func (m Model) viewAbout() (string, string) {
	return m.styles.Text.Render(aboutText), "Any key=Back"
}
