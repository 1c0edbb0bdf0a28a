package gen

import (
	"fmt"
	"strings"
)

const docsHeader = "# API Documentation\n\n## Endpoints\n"

// GenerateDocs renders the Markdown API reference for the given logical
// paths, in order. Each route gets the same four method bullets whatever the
// route file registers.
func GenerateDocs(paths []string) string {
	var b strings.Builder
	b.WriteString(docsHeader)

	for _, p := range paths {
		fmt.Fprintf(&b, "### `%s`\n", p)
		fmt.Fprintf(&b, "- **GET**: Fetch data from %s\n", p)
		fmt.Fprintf(&b, "- **POST**: Send data to %s\n", p)
		fmt.Fprintf(&b, "- **PUT**: Update data at %s\n", p)
		fmt.Fprintf(&b, "- **DELETE**: Remove data at %s\n", p)
		b.WriteString("\n")
	}

	return b.String()
}
