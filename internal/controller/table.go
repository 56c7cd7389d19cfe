package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/reindex/internal/model"
)

// renderCandidateTable builds the listing table shared by both UIs.
func renderCandidateTable(results []m.FileResult) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Path", "Specifiers", "Would Change"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	specifiers := 0
	changing := 0

	for _, result := range results {
		wouldChange := "no"
		if result.Changed {
			wouldChange = "yes"
			changing++
		}

		specifiers += result.Specifiers

		table.Append([]string{string(result.File), fmt.Sprintf("%d", result.Specifiers), wouldChange})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		fmt.Sprintf("%d", specifiers),
		fmt.Sprintf("%d", changing),
	})

	table.Render()

	return buf.String()
}
