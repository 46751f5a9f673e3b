package html

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// maxColspan bounds the padding a single cell can add.
const maxColspan = 1000

// table renders a pipe table. The first row is the header and every row is
// padded to the widest row. A cell spanning N columns is followed by N-1
// empty cells.
func (c *Converter) table(n *html.Node, _ state) string {
	var rows [][]string
	width := 0
	for _, tr := range descendants(n, []string{"tr"}, []string{"table"}) {
		cells := descendants(tr, []string{"td", "th"}, []string{"td", "th", "table"})
		if len(cells) == 0 {
			continue
		}
		var row []string
		for _, cell := range cells {
			row = append(row, c.cell(cell))
			for i := 1; i < colspan(cell); i++ {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
		width = max(width, len(row))
	}
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		writeRow(&b, row)
		if i == 0 {
			sep := make([]string, width)
			for j := range sep {
				sep[j] = "---"
			}
			writeRow(&b, sep)
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (c *Converter) cell(n *html.Node) string {
	text := Normalize(c.children(n, state{keep: true}))
	if !c.escape {
		text = strings.ReplaceAll(text, "|", `\|`)
	}
	return text
}

func colspan(n *html.Node) int {
	span, err := strconv.Atoi(strings.TrimSpace(attr(n, "colspan")))
	if err != nil || span < 1 {
		return 1
	}
	return min(span, maxColspan)
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, cell := range cells {
		b.WriteString(" " + cell + " |")
	}
	b.WriteString("\n")
}
