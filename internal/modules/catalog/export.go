package catalog

import (
	"fmt"
	"strings"

	"onlinelibrary/internal/domain/catalog"
)

// BuildCSV renders the catalog as `Id,Title,Authors,Genres` rows.
// Multiple authors or genres are joined with ';' inside one field; a
// book with none on either side renders the literal text None there.
// No quoting or escaping is applied anywhere — downstream consumers
// parse this exact raw layout, so a title containing a comma or a line
// break will shift the columns, and that behavior must stay.
func BuildCSV(books []catalog.Book) []byte {
	var sb strings.Builder
	sb.WriteString("Id,Title,Authors,Genres\n")

	for _, b := range books {
		authors := "None"
		if len(b.Authors) > 0 {
			names := make([]string, len(b.Authors))
			for i, a := range b.Authors {
				names[i] = a.Name
			}
			authors = strings.Join(names, ";")
		}

		genres := "None"
		if len(b.Genres) > 0 {
			names := make([]string, len(b.Genres))
			for i, g := range b.Genres {
				names[i] = g.Name
			}
			genres = strings.Join(names, ";")
		}

		fmt.Fprintf(&sb, "%d,%s,%s,%s\n", b.ID, b.Title, authors, genres)
	}

	return []byte(sb.String())
}
