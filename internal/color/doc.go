// Package color holds the palette and lipgloss styles of the result browser.
//
// Colors are adaptive: lipgloss picks the light or dark variant from the
// terminal background, which Initialize can force. The styles are package
// level values so the view and the plain-text printer render the same way.
//
// # Usage Example
//
//	color.Initialize(lipgloss.HasDarkBackground())
//	fmt.Println(color.ErrorStyle.Render("search failed"))
package color
