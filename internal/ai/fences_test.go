package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		text string
		lang string
		want string
	}{
		{
			name: "python tagged fence",
			text: "```python\nx = 1\n```",
			lang: "python",
			want: " \nx = 1\n ",
		},
		{
			name: "r tagged fence",
			text: "```r\nx <- 1\n```",
			lang: "r",
			want: " \nx <- 1\n ",
		},
		{
			name: "untagged fences",
			text: "```\nprint(1)\n```",
			lang: "python",
			want: " \nprint(1)\n ",
		},
		{
			name: "no fences",
			text: "x = 1\n",
			lang: "python",
			want: "x = 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripFences(tt.text, tt.lang)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "```")
		})
	}
}
