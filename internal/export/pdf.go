package export

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"listkeeper/internal/model"
)

// A4 paper in inches, half-inch margins.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
	marginIn      = 0.5
)

var pdfTemplate = template.Must(template.New("pdf").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: Helvetica, Arial, sans-serif; color: #222; }
h1 { font-size: 20px; margin-bottom: 2px; }
.meta { color: #888; font-size: 11px; margin-bottom: 16px; }
table { width: 100%; border-collapse: collapse; font-size: 12px; }
th, td { text-align: left; padding: 6px 8px; border-bottom: 1px solid #ddd; }
th { border-bottom: 2px solid #999; }
.done { text-decoration: line-through; color: #999; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="meta">{{.Category}} &middot; {{.Count}} items</div>
<table>
<tr><th></th><th>Item</th><th>Qty</th><th>Priority</th><th>Due</th><th>Notes</th></tr>
{{range .Items}}<tr{{if .Completed}} class="done"{{end}}><td>{{.Box}}</td><td>{{.Text}}</td><td>{{.Quantity}}</td><td>{{.Priority}}</td><td>{{.Due}}</td><td>{{.Notes}}</td></tr>
{{end}}</table>
</body>
</html>`))

type pdfRow struct {
	Box       string
	Text      string
	Quantity  string
	Priority  string
	Due       string
	Notes     string
	Completed bool
}

type pdfData struct {
	Title    string
	Category string
	Count    int
	Items    []pdfRow
}

// RenderPDF prints the list through a headless Chromium page. A browser is
// launched per call and torn down afterwards; exports are rare enough that
// keeping one warm is not worth the resident footprint.
func (r *Renderer) RenderPDF(ctx context.Context, l model.List) ([]byte, error) {
	html, err := renderHTML(l)
	if err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}

	launch := launcher.New().Headless(true)
	if r.chromeBin != "" {
		launch = launch.Bin(r.chromeBin)
	}
	controlURL, err := launch.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chrome: %w", err)
	}
	defer launch.Cleanup()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}
	defer func() {
		if err := browser.Close(); err != nil {
			r.l.Warnf(ctx, "export.RenderPDF close browser: %v", err)
		}
	}()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("set content: %w", err)
	}

	paperW, paperH, margin := paperWidthIn, paperHeightIn, marginIn
	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: true,
		PaperWidth:      &paperW,
		PaperHeight:     &paperH,
		MarginTop:       &margin,
		MarginBottom:    &margin,
		MarginLeft:      &margin,
		MarginRight:     &margin,
	})
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}
	return io.ReadAll(stream)
}

func renderHTML(l model.List) (string, error) {
	data := pdfData{
		Title:    l.DisplayTitle(),
		Category: string(l.Category),
		Count:    len(l.Items),
	}
	for _, it := range l.Items {
		box := "☐"
		if it.Completed {
			box = "☑"
		}
		data.Items = append(data.Items, pdfRow{
			Box:       box,
			Text:      it.Text,
			Quantity:  quantityCell(it.Quantity),
			Priority:  string(it.Priority),
			Due:       dateCell(it),
			Notes:     it.Notes,
			Completed: it.Completed,
		})
	}
	var b strings.Builder
	if err := pdfTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
