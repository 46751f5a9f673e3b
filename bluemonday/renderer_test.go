package bluemonday_test

import (
	"testing"

	"github.com/fwojciec/pagemd/bluemonday"
	"github.com/stretchr/testify/assert"
)

func TestRenderer_RenderHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "headings",
			markdown: "# One\n## Two\n###### Six",
			want:     "<h1>One</h1>\n<h2>Two</h2>\n<h6>Six</h6>",
		},
		{
			name:     "seven hashes stay text",
			markdown: "####### Seven",
			want:     "####### Seven",
		},
		{
			name:     "heading needs a space",
			markdown: "#tag",
			want:     "#tag",
		},
		{
			name:     "bold is non greedy",
			markdown: "**a** and **b**",
			want:     "<b>a</b> and <b>b</b>",
		},
		{
			name:     "list items at line start",
			markdown: "* first\n* **second**\ntext * not item",
			want:     "<li>first</li>\n<li><b>second</b></li>\ntext * not item",
		},
		{
			name:     "dash items are not converted",
			markdown: "- item",
			want:     "- item",
		},
		{
			name:     "script is removed",
			markdown: "# Title\n<script>alert(1)</script>",
			want:     "<h1>Title</h1>\n",
		},
		{
			name:     "empty input",
			markdown: "",
			want:     "",
		},
	}

	r := bluemonday.NewRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, r.RenderHTML(tt.markdown))
		})
	}
}
