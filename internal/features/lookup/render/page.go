package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"order-viewer/internal/features/lookup/domain"
)

//go:embed templates/page.html
var templatesFS embed.FS

var pageTemplate = template.Must(
	template.New("page.html").
		Funcs(template.FuncMap{"hiddenClass": hiddenClass}).
		ParseFS(templatesFS, "templates/page.html"),
)

// Notice is an operator message shown above the lookup form.
type Notice struct {
	Level   string
	Message string
}

type fieldView struct {
	ID    string
	Label string
	Text  string
}

type sectionView struct {
	Title  string
	Fields []fieldView
}

type pageView struct {
	Lang      string
	Notice    *Notice
	Input     string
	Loader    bool
	Error     bool
	ErrorText string
	Details   bool
	Sections  []sectionView
	Columns   []string
	Rows      []domain.ItemRow
}

func hiddenClass(visible bool) string {
	if visible {
		return ""
	}
	return "hidden"
}

// Page writes the lookup page for a document snapshot. Every value goes
// through html/template escaping, so record text is never markup.
func Page(w io.Writer, snap domain.Snapshot, notice *Notice, lang string) error {
	view := pageView{
		Lang:      lang,
		Notice:    notice,
		Input:     snap.Input,
		Loader:    snap.IsVisible(domain.RegionLoader),
		Error:     snap.IsVisible(domain.RegionError),
		ErrorText: snap.Text(domain.TargetErrorMessage),
		Details:   snap.IsVisible(domain.RegionDetails),
		Sections:  sections(snap),
		Columns:   domain.ItemColumns,
		Rows:      snap.Rows,
	}

	if err := pageTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// sections groups domain.Fields by section, keeping their order.
func sections(snap domain.Snapshot) []sectionView {
	var out []sectionView
	for _, spec := range domain.Fields {
		if len(out) == 0 || out[len(out)-1].Title != string(spec.Section) {
			out = append(out, sectionView{Title: string(spec.Section)})
		}
		last := &out[len(out)-1]
		last.Fields = append(last.Fields, fieldView{
			ID:    string(spec.Target),
			Label: spec.Label,
			Text:  snap.Text(spec.Target),
		})
	}
	return out
}
