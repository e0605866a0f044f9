package usecase

import (
	"context"
	"fmt"
	"strings"

	"listkeeper/internal/list"
)

// ExportList renders the list from the current snapshot. Exports never hit
// the backend tables; PDF rendering still takes ctx because it drives a
// headless browser.
func (uc *implUseCase) ExportList(ctx context.Context, listID string, format list.ExportFormat) (list.ExportOutput, error) {
	current, err := uc.findList(listID)
	if err != nil {
		return list.ExportOutput{}, err
	}

	base := exportFilename(current.DisplayTitle())
	switch format {
	case list.ExportCSV:
		return list.ExportOutput{
			Data:     uc.exporter.RenderCSV(current),
			Filename: base + ".csv",
			MIMEType: "text/csv",
		}, nil
	case list.ExportTXT:
		return list.ExportOutput{
			Data:     uc.exporter.RenderTXT(current),
			Filename: base + ".txt",
			MIMEType: "text/plain",
		}, nil
	case list.ExportPDF:
		data, err := uc.exporter.RenderPDF(ctx, current)
		if err != nil {
			uc.l.Errorf(ctx, "uc.ExportList RenderPDF: %v", err)
			return list.ExportOutput{}, fmt.Errorf("failed to render pdf: %w", err)
		}
		return list.ExportOutput{
			Data:     data,
			Filename: base + ".pdf",
			MIMEType: "application/pdf",
		}, nil
	}
	return list.ExportOutput{}, list.ErrUnsupportedFormat
}

// exportFilename slugs a list title into a safe download name.
func exportFilename(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('-')
		}
	}
	s := strings.Trim(b.String(), "-")
	if s == "" {
		s = "list"
	}
	return s
}
