// Package render turns a service and its content blocks into the markup used
// by public detail pages. The portal's live-preview API runs unsaved blocks
// through the same pipeline, so editors see exactly what will be published.
package render

import (
	"bytes"
	"encoding/json"
	"html/template"
	"sort"
	"strings"

	"amma-cms/internal/domain/services"
)

type serviceView struct {
	Name        string
	Description string
	Icon        string
}

type blockView struct {
	Type       string
	Title      string
	Paragraphs []string

	List     services.ListData
	Steps    services.StepsData
	Table    services.TableData
	Grid     services.GridData
	Document services.DocumentData
	Image    services.ImageData
}

type detailView struct {
	Service serviceView
	Blocks  []blockView
}

// ServiceDetail renders a service's detail markup from the given block set.
// Inactive blocks are skipped; the rest render in SortOrder, ties broken by
// persisted id. Transient blocks (id zero) keep their submitted order.
func ServiceDetail(svc services.Service, blocks []services.ServiceContentBlock) (string, error) {
	ordered := make([]services.ServiceContentBlock, 0, len(blocks))
	for _, b := range blocks {
		if b.IsActive {
			ordered = append(ordered, b)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].SortOrder != ordered[j].SortOrder {
			return ordered[i].SortOrder < ordered[j].SortOrder
		}
		return ordered[i].ID < ordered[j].ID
	})

	view := detailView{
		Service: serviceView{Name: svc.Name, Description: svc.Description, Icon: svc.Icon},
		Blocks:  make([]blockView, 0, len(ordered)),
	}
	for _, b := range ordered {
		view.Blocks = append(view.Blocks, buildBlockView(b))
	}

	var buf bytes.Buffer
	if err := detailTemplate.ExecuteTemplate(&buf, "service_detail", view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildBlockView(b services.ServiceContentBlock) blockView {
	v := blockView{
		Type:       string(services.NormalizeBlockType(b.BlockType)),
		Title:      b.Title,
		Paragraphs: paragraphs(b.Content),
	}

	// Lenient by design: a payload that doesn't match its block type renders
	// as an empty section rather than failing the whole page.
	switch services.BlockType(v.Type) {
	case services.BlockList:
		_ = json.Unmarshal(b.Data, &v.List)
	case services.BlockSteps:
		_ = json.Unmarshal(b.Data, &v.Steps)
	case services.BlockTable:
		_ = json.Unmarshal(b.Data, &v.Table)
	case services.BlockServiceGrid:
		_ = json.Unmarshal(b.Data, &v.Grid)
	case services.BlockDocument:
		_ = json.Unmarshal(b.Data, &v.Document)
		if v.Document.Label == "" {
			v.Document.Label = "Download"
		}
	case services.BlockImage:
		_ = json.Unmarshal(b.Data, &v.Image)
	}
	return v
}

func paragraphs(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

var detailTemplate = template.Must(template.New("blocks").Parse(`
{{- define "block_title" -}}
{{if .Title}}<h2 class="block-title">{{.Title}}</h2>{{end}}
{{- end -}}

{{- define "block_paragraphs" -}}
{{range .Paragraphs}}<p>{{.}}</p>
{{end}}
{{- end -}}

{{- define "service_detail" -}}
<section class="service-detail">
<header class="service-header">
<span class="service-icon" data-lucide="{{.Service.Icon}}"></span>
<h1>{{.Service.Name}}</h1>
<p class="service-description">{{.Service.Description}}</p>
</header>
{{range .Blocks}}
{{- if eq .Type "text"}}
<div class="content-block content-block-text">
{{template "block_title" .}}
{{template "block_paragraphs" .}}
</div>
{{- else if eq .Type "list"}}
<div class="content-block content-block-list">
{{template "block_title" .}}
{{template "block_paragraphs" .}}
<ul>
{{range .List.Items}}<li>{{.}}</li>
{{end}}</ul>
</div>
{{- else if eq .Type "steps"}}
<div class="content-block content-block-steps">
{{template "block_title" .}}
{{template "block_paragraphs" .}}
<ol class="steps">
{{range .Steps.Steps}}<li>
<h3>{{.Title}}</h3>
<p>{{.Description}}</p>
{{if .List}}<ul>
{{range .List}}<li>{{.}}</li>
{{end}}</ul>{{end}}
</li>
{{end}}</ol>
</div>
{{- else if eq .Type "notice"}}
<div class="content-block content-block-notice" role="note">
{{template "block_title" .}}
{{template "block_paragraphs" .}}
</div>
{{- else if eq .Type "table"}}
<div class="content-block content-block-table">
{{template "block_title" .}}
<table>
<thead><tr>{{range .Table.Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Table.Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</div>
{{- else if eq .Type "service_grid"}}
<div class="content-block content-block-grid">
{{template "block_title" .}}
<div class="service-grid">
{{range .Grid.Items}}<div class="service-card">
<h3>{{.Title}}</h3>
<p>{{.Description}}</p>
{{if .List}}<ul>
{{range .List}}<li>{{.}}</li>
{{end}}</ul>{{end}}
</div>
{{end}}</div>
</div>
{{- else if eq .Type "document"}}
<div class="content-block content-block-document">
{{template "block_title" .}}
{{template "block_paragraphs" .}}
<a class="document-link" href="{{.Document.URL}}">{{.Document.Label}}</a>
</div>
{{- else if eq .Type "image"}}
<figure class="content-block content-block-image">
<img src="{{.Image.URL}}" alt="{{.Image.Caption}}">
{{if .Image.Caption}}<figcaption>{{.Image.Caption}}</figcaption>{{end}}
</figure>
{{- end}}
{{end}}
</section>
{{- end -}}
`))
