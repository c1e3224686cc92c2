package dto

import "strings"

// ReportDTO is a rendered report. HTML is a complete sanitized page built from Markdown.
type ReportDTO struct {
	Title    string `json:"title"`
	Filename string `json:"filename"`
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

// MarkdownFilename is Filename with a .md extension.
func (r *ReportDTO) MarkdownFilename() string {
	return strings.TrimSuffix(r.Filename, ".html") + ".md"
}
