package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractScore(t *testing.T) {
	tests := []struct {
		name   string
		report string
		want   string
	}{
		{
			name: "rating line returned verbatim",
			report: "************* Module example\n" +
				"example.py:1:0: C0114: Missing module docstring (missing-module-docstring)\n" +
				"\n" +
				"Your code has been rated at 7.50/10 (previous run: 6.00/10, +1.50)\n",
			want: "Your code has been rated at 7.50/10 (previous run: 6.00/10, +1.50)",
		},
		{
			name:   "first matching line wins",
			report: "Your code has been rated at 9.00/10\nYour code has been rated at 2.00/10\n",
			want:   "Your code has been rated at 9.00/10",
		},
		{
			name:   "no rating line",
			report: "************* Module example\nexample.py:3:0: E0001: invalid syntax\n",
			want:   "Pylint score not found.",
		},
		{
			name:   "empty report",
			report: "",
			want:   "Pylint score not found.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractScore(tt.report))
		})
	}
}
