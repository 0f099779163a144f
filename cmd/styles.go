package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SHADYEHABOCOR/gLabs/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#859900", Dark: "#50fa7b"}).
			Bold(true)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#005577", Dark: "#00aadd"})

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#b58900", Dark: "#f1fa8c"})
)

func printSummary(s domain.Summary) {
	fmt.Println(titleStyle.Render("run " + s.RunID))
	fmt.Printf("%s %d rows, %d items\n", labelStyle.Render("processed:"), s.TotalRows, s.Items)
	fmt.Printf("%s %d inline, %d copied, %d machine-translated\n",
		labelStyle.Render("arabic:"), s.ArabicTranslationsFound, s.AlreadyArabic, s.Translated)
	if s.AutoGeneratedIDs > 0 {
		fmt.Printf("%s %d\n", labelStyle.Render("generated ids:"), s.AutoGeneratedIDs)
	}
	if len(s.Currencies) > 0 {
		fmt.Printf("%s %s\n", labelStyle.Render("currencies:"), strings.Join(s.Currencies, ", "))
	}
	if s.ImagesResolved > 0 {
		fmt.Printf("%s %d\n", labelStyle.Render("images:"), s.ImagesResolved)
	}
	if s.CaloriesEstimated > 0 {
		fmt.Printf("%s %d\n", labelStyle.Render("calories:"), s.CaloriesEstimated)
	}
	if s.FailedBatches > 0 {
		fmt.Println(warnStyle.Render(fmt.Sprintf("%d enrichment batches failed; affected rows left unenriched", s.FailedBatches)))
	}
	for _, a := range s.Anomalies {
		switch a.Kind {
		case domain.AnomalyOrphanTranslation:
			fmt.Println(warnStyle.Render(fmt.Sprintf("orphan translation at row %d: %s", a.Row, a.Value)))
		case domain.AnomalyEmptyDataset:
			fmt.Println(warnStyle.Render("input file contains no data rows"))
		case domain.AnomalyZeroItems:
			fmt.Println(warnStyle.Render("no items identified after classification"))
		}
	}
}
