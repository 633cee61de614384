package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spirit-labs/colcmp/query"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

// formatResults renders one section per segment: a header with the match count, then the result of each row. Rows
// where an operand is null are marked.
func formatResults(expression string, results []query.SegmentResult) string {
	sb := strings.Builder{}
	for _, res := range results {
		matches := 0
		for _, m := range res.Matches {
			matches += int(m)
		}
		sb.WriteString(headerStyle.Render(fmt.Sprintf("%s: %s (%d of %d rows)", res.SegmentName, expression, matches,
			len(res.Matches))))
		sb.WriteRune('\n')
		for row, m := range res.Matches {
			if res.NullRows != nil && res.NullRows.Contains(uint32(row)) {
				sb.WriteString(fmt.Sprintf("%d\t%d\tnull operand\n", row, m))
			} else {
				sb.WriteString(fmt.Sprintf("%d\t%d\n", row, m))
			}
		}
	}
	return sb.String()
}
