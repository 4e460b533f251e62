package provider

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractTable scans every <table> in document order and extracts the first
// one whose leading row contains a header cell matching any of the given
// keywords (substring match on trimmed text, <th> or <td>).
//
// Headers are the trimmed texts of every cell in the matched row. Each
// subsequent row contributes the trimmed texts of its <td> cells; rows with
// no <td> cells are skipped. Cell values stay raw strings — no numeric or
// date parsing happens here.
//
// Scanning stops at the first match. When nothing matches, the result is an
// empty table, never an error: the upstream markup drifting out from under
// the keyword set is an expected condition, not a failure.
func ExtractTable(doc *goquery.Document, keywords []string) Table {
	out := EmptyTable()

	doc.Find("table").EachWithBreak(func(_ int, tbl *goquery.Selection) bool {
		rows := tbl.Find("tr")
		if rows.Length() == 0 {
			return true // keep scanning
		}

		headers, matched := headerCells(rows.First(), keywords)
		if !matched {
			return true
		}

		out.Headers = headers
		rows.Slice(1, rows.Length()).Each(func(_ int, tr *goquery.Selection) {
			cells := tr.Find("td")
			if cells.Length() == 0 {
				return
			}
			row := make([]string, 0, cells.Length())
			cells.Each(func(_ int, td *goquery.Selection) {
				row = append(row, strings.TrimSpace(td.Text()))
			})
			out.Rows = append(out.Rows, row)
		})
		return false // first match wins
	})

	return out
}

// headerCells extracts the trimmed header texts of a candidate header row
// and reports whether any cell matched a keyword.
func headerCells(row *goquery.Selection, keywords []string) ([]string, bool) {
	headers := []string{}
	matched := false
	row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		text := strings.TrimSpace(cell.Text())
		headers = append(headers, text)
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				matched = true
				break
			}
		}
	})
	return headers, matched
}
