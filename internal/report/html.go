package report

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"time"

	"consultant-gaps/internal/gaps"
)

//go:embed report.html.tmpl
var reportTemplate string

type Options struct {
	Title  string
	Styles Styles
}

type Builder struct {
	opts Options
	tmpl *template.Template
}

func NewBuilder(opts Options) (*Builder, error) {
	if opts.Styles == nil {
		opts.Styles = DefaultStyles()
	}
	if opts.Title == "" {
		opts.Title = "Consultant profile gap analysis"
	}
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"percent": func(n, total int) string {
			if total == 0 {
				return "0.0"
			}
			return fmt.Sprintf("%.1f", float64(n)*100/float64(total))
		},
	}).Parse(reportTemplate)
	if err != nil {
		return nil, err
	}
	return &Builder{opts: opts, tmpl: tmpl}, nil
}

type flagView struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Label string `json:"label"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

type columnView struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// columns exported by the in-page "Export CSV" button, in order.
var exportColumns = []columnView{
	{Key: "id", Label: "id"},
	{Key: "fullname", Label: "fullname"},
	{Key: "title", Label: "title"},
	{Key: "url", Label: "url"},
	{Key: "gender", Label: "gender"},
	{Key: "specialties", Label: "specialties"},
	{Key: "hospitals", Label: "hospitals"},
	{Key: "photo_status", Label: "photo_status"},
	{Key: "bookable", Label: "bookable"},
	{Key: "treatments", Label: "treatments"},
	{Key: "missing_count", Label: "missing_count"},
	{Key: "missing_fields", Label: "missing_fields"},
}

type document struct {
	Title         string
	GeneratedAt   string
	Total         int
	FullyComplete int
	Flags         []flagView
	PhotosReal    int
	Placeholders  int
	PhotosMissing int
	TopTreatments []TagCount
	DataJSON      template.JS
	FlagsJSON     template.JS
	ColumnsJSON   template.JS
}

// json.Marshal escapes <, > and & so the output is safe to inline in a
// <script> element.
func inlineJSON(v any) (template.JS, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(out), nil
}

// RenderHTML produces a self-contained report document. `top` may be empty,
// in which case the treatments panel is left out.
func (b *Builder) RenderHTML(records []gaps.GapRecord, summary Summary, top []TagCount, generatedAt time.Time) (string, error) {
	flags := make([]flagView, 0, len(gaps.AllFlags))
	for _, f := range summary.VisibleFlags() {
		style := b.opts.Styles.Get(f)
		flags = append(flags, flagView{
			Key:   f.Column(),
			Name:  string(f),
			Label: style.Label,
			Color: style.Color,
			Count: summary.Count(f),
		})
	}

	data := make([]map[string]any, len(records))
	for i, r := range records {
		data[i] = r.Data()
	}

	doc := document{
		Title:         b.opts.Title,
		GeneratedAt:   generatedAt.Format("2006-01-02 15:04"),
		Total:         summary.Total,
		FullyComplete: summary.FullyComplete,
		Flags:         flags,
		PhotosReal:    summary.Photos[gaps.PhotoReal],
		Placeholders:  summary.Photos[gaps.PhotoPlaceholder],
		PhotosMissing: summary.Photos[gaps.PhotoMissing],
		TopTreatments: top,
	}

	var err error
	doc.DataJSON, err = inlineJSON(data)
	if err != nil {
		return "", err
	}
	doc.FlagsJSON, err = inlineJSON(flags)
	if err != nil {
		return "", err
	}
	doc.ColumnsJSON, err = inlineJSON(exportColumns)
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	err = b.tmpl.Execute(&out, doc)
	if err != nil {
		return "", err
	}
	return out.String(), nil
}
