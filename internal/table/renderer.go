// Package table renders console tables for combined reports and setup checks.
package table

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
)

// Section is a titled table. Empty replaces the table when there are no rows.
type Section struct {
	Title   string
	Headers []string
	Rows    [][]string
	Footer  []string
	Empty   string
}

// Renderer turns sections into console text.
type Renderer interface {
	Render(section Section, opts ...Option) string
}

type renderer struct {
	log    logrus.FieldLogger
	colors *ColorHelper
}

// NewRenderer creates a new table renderer
func NewRenderer(log logrus.FieldLogger) Renderer {
	return &renderer{
		log:    log.WithField("component", "table.renderer"),
		colors: NewColorHelper(),
	}
}

type style struct {
	border   bool
	rowLines bool
	merge    []int
}

// Option adjusts how a section is drawn.
type Option func(*style)

// WithBorder controls border visibility
func WithBorder(show bool) Option {
	return func(s *style) { s.border = show }
}

// WithRowLines draws a separator between every row.
func WithRowLines(show bool) Option {
	return func(s *style) { s.rowLines = show }
}

// WithMergedColumns blanks repeated consecutive values in the given columns,
// so a feature name is printed once for its scenarios.
func WithMergedColumns(columns ...int) Option {
	return func(s *style) { s.merge = columns }
}

func (r *renderer) Render(section Section, opts ...Option) string {
	st := style{border: true}
	for _, opt := range opts {
		opt(&st)
	}

	var out strings.Builder

	if section.Title != "" {
		out.WriteString("\n" + r.colors.Header("▸ "+section.Title) + "\n\n")
	}

	if len(section.Rows) == 0 && section.Empty != "" {
		out.WriteString(r.colors.Muted(section.Empty) + "\n")
		return out.String()
	}

	tw := tablewriter.NewWriter(&out)
	tw.SetHeader(section.Headers)
	tw.SetAutoWrapText(false)
	tw.SetAutoFormatHeaders(true)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetCenterSeparator("")
	tw.SetColumnSeparator("│")
	tw.SetRowSeparator("─")
	tw.SetBorder(st.border)
	tw.SetRowLine(st.rowLines)

	if len(st.merge) > 0 {
		tw.SetAutoMergeCellsByColumnIndex(st.merge)
	}

	if len(section.Footer) > 0 {
		tw.SetFooter(section.Footer)
		tw.SetFooterAlignment(tablewriter.ALIGN_LEFT)
	}

	tw.AppendBulk(section.Rows)
	tw.Render()

	r.log.WithFields(logrus.Fields{"section": section.Title, "rows": len(section.Rows)}).Debug("rendered table")

	return out.String()
}

// Compile-time interface compliance check
var _ Renderer = (*renderer)(nil)
