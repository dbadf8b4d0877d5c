// Package templates provides the four changelog templates (main, header,
// commit, footer) and renders release contexts with them.
package templates

import "embed"

//go:embed files/*.tmpl
var embedded embed.FS

// Names of the template files, in load order.
const (
	MainFile   = "template.tmpl"
	HeaderFile = "header.tmpl"
	CommitFile = "commit.tmpl"
	FooterFile = "footer.tmpl"
)

// Files lists every template file.
func Files() []string {
	return []string{MainFile, HeaderFile, CommitFile, FooterFile}
}

// Embedded returns the built-in content of name.
func Embedded(name string) ([]byte, error) {
	return embedded.ReadFile("files/" + name)
}
