package render

import (
	"fmt"
	"io"
	"strings"

	"order-viewer/internal/features/lookup/domain"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const labelWidth = 15

// Terminal writes a document snapshot as the CLI shows it: only visible
// regions, fields grouped by section and the items as a table. Colour is
// used only when w is a terminal.
func Terminal(w io.Writer, snap domain.Snapshot, notice *Notice) error {
	r := lipgloss.NewRenderer(w)

	titleStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle := r.NewStyle().Width(labelWidth).Foreground(lipgloss.Color("8"))
	errorStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	noticeStyle := r.NewStyle().Italic(true).Foreground(lipgloss.Color("11"))

	var b strings.Builder

	if notice != nil {
		fmt.Fprintln(&b, noticeStyle.Render(fmt.Sprintf("[%s] %s", notice.Level, notice.Message)))
		fmt.Fprintln(&b)
	}

	if snap.IsVisible(domain.RegionLoader) {
		fmt.Fprintln(&b, "Loading...")
	}

	if snap.IsVisible(domain.RegionError) {
		fmt.Fprintln(&b, errorStyle.Render("Error: "+snap.Text(domain.TargetErrorMessage)))
	}

	if snap.IsVisible(domain.RegionDetails) {
		for i, section := range sections(snap) {
			if i > 0 {
				fmt.Fprintln(&b)
			}
			fmt.Fprintln(&b, titleStyle.Render(section.Title))
			for _, field := range section.Fields {
				fmt.Fprintln(&b, labelStyle.Render(field.Label)+" "+field.Text)
			}
		}

		fmt.Fprintln(&b)
		fmt.Fprintln(&b, titleStyle.Render("Items"))
		fmt.Fprintln(&b, itemsTable(r, snap.Rows))
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func itemsTable(r *lipgloss.Renderer, rows []domain.ItemRow) string {
	headerStyle := r.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := r.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers(domain.ItemColumns...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, row := range rows {
		t.Row(row.Cells()...)
	}

	return t.String()
}
