package render

import (
	"strings"
	"testing"

	"amma-cms/internal/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/datatypes"
)

func renderBlocks(t *testing.T, blocks ...services.ServiceContentBlock) string {
	t.Helper()
	svc := services.Service{Name: "Test Service", Description: "For rendering", Icon: "file-text"}
	html, err := ServiceDetail(svc, blocks)
	require.NoError(t, err)
	return html
}

func TestServiceDetailHeader(t *testing.T) {
	html := renderBlocks(t)
	assert.Contains(t, html, "<h1>Test Service</h1>")
	assert.Contains(t, html, `data-lucide="file-text"`)
	assert.Contains(t, html, `<p class="service-description">For rendering</p>`)
}

func TestListThenTableOrder(t *testing.T) {
	html := renderBlocks(t,
		services.ServiceContentBlock{
			BlockType: "table",
			Title:     "Fees",
			Data:      datatypes.JSON(`{"headers":["Service","Fee (GHS)"],"rows":[["Permit","150"]]}`),
			SortOrder: 1,
			IsActive:  true,
		},
		services.ServiceContentBlock{
			BlockType: "list",
			Title:     "Requirements",
			Data:      datatypes.JSON(`{"items":["Completed form","Site plan"]}`),
			SortOrder: 0,
			IsActive:  true,
		},
	)

	// Bullets first, one-row table after.
	assert.Contains(t, html, "<li>Completed form</li>")
	assert.Contains(t, html, "<li>Site plan</li>")
	assert.Contains(t, html, "<th>Fee (GHS)</th>")
	assert.Contains(t, html, "<td>150</td>")
	assert.Less(t,
		strings.Index(html, "content-block-list"),
		strings.Index(html, "content-block-table"))
	assert.Equal(t, 1, strings.Count(html, "<tr><td>"))
}

func TestInactiveBlocksSkipped(t *testing.T) {
	html := renderBlocks(t,
		services.ServiceContentBlock{BlockType: "text", Title: "Visible", Content: "Shown", IsActive: true},
		services.ServiceContentBlock{BlockType: "text", Title: "Hidden", Content: "Not shown", IsActive: false},
	)
	assert.Contains(t, html, "Visible")
	assert.NotContains(t, html, "Hidden")
}

func TestTextParagraphSplitting(t *testing.T) {
	html := renderBlocks(t,
		services.ServiceContentBlock{
			BlockType: "text",
			Content:   "First paragraph.\n\n  Second paragraph.  \n",
			IsActive:  true,
		},
	)
	assert.Contains(t, html, "<p>First paragraph.</p>")
	assert.Contains(t, html, "<p>Second paragraph.</p>")
}

func TestStepsBlock(t *testing.T) {
	html := renderBlocks(t,
		services.ServiceContentBlock{
			BlockType: "steps",
			Title:     "How to Apply",
			Data:      datatypes.JSON(`{"steps":[{"title":"Submit","description":"Bring the form","list":["Form A"]},{"title":"Pay","description":"At the cashier"}]}`),
			IsActive:  true,
		},
	)
	assert.Contains(t, html, `<h2 class="block-title">How to Apply</h2>`)
	assert.Contains(t, html, "<h3>Submit</h3>")
	assert.Contains(t, html, "<li>Form A</li>")
	assert.Contains(t, html, "<h3>Pay</h3>")
}

func TestDocumentBlockDefaultLabel(t *testing.T) {
	html := renderBlocks(t,
		services.ServiceContentBlock{
			BlockType: "document",
			Data:      datatypes.JSON(`{"url":"/files/form-a.pdf"}`),
			IsActive:  true,
		},
	)
	assert.Contains(t, html, `href="/files/form-a.pdf"`)
	assert.Contains(t, html, ">Download</a>")
}

func TestMalformedPayloadRendersEmptySection(t *testing.T) {
	html := renderBlocks(t,
		services.ServiceContentBlock{
			BlockType: "list",
			Title:     "Broken",
			Data:      datatypes.JSON(`{"items":"not an array"}`),
			IsActive:  true,
		},
	)
	// The page still renders; the list is just empty.
	assert.Contains(t, html, "content-block-list")
	assert.Contains(t, html, "Broken")
	assert.NotContains(t, html, "not an array")
}

func TestUnknownTypeRendersAsText(t *testing.T) {
	html := renderBlocks(t,
		services.ServiceContentBlock{
			BlockType: "hologram",
			Content:   "Fallback content",
			IsActive:  true,
		},
	)
	assert.Contains(t, html, "content-block-text")
	assert.Contains(t, html, "<p>Fallback content</p>")
}

func TestContentEscaped(t *testing.T) {
	html := renderBlocks(t,
		services.ServiceContentBlock{
			BlockType: "text",
			Content:   `<script>alert("x")</script>`,
			IsActive:  true,
		},
	)
	assert.NotContains(t, html, "<script>")
}
