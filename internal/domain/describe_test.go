package domain

import "testing"

func TestExtractDescription(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "labeled description",
			content: "---\ntool_name: t\n---\n# t\n\n**Description:** The labeled one.\n\nOther text.\n",
			want:    "The labeled one.",
		},
		{
			name:    "first paragraph wins over a later label",
			content: "---\ntool_name: t\n---\n# t\n\nEarly paragraph.\n\n**Description:** The labeled one.\n",
			want:    "Early paragraph.",
		},
		{
			name:    "first paragraph after title",
			content: "---\ntool_name: t\n---\n# t\n\nPlain paragraph line.\n",
			want:    "Plain paragraph line.",
		},
		{
			name:    "bold lines are not descriptions",
			content: "---\ntool_name: t\n---\n# t\n\n**Category:** quality\n\nActual text.\n",
			want:    "Actual text.",
		},
		{
			name:    "fallback when body is empty",
			content: "---\ntool_name: t\n---\n# t\n",
			want:    FallbackDescription,
		},
		{
			name:    "fallback when only headings",
			content: "---\ntool_name: t\n---\n# t\n\n## Usage\n",
			want:    FallbackDescription,
		},
		{
			name:    "no header block still extracts",
			content: "# Title\n\nBody line.\n",
			want:    "Body line.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractDescription(tt.content); got != tt.want {
				t.Errorf("ExtractDescription() = %q, want %q", got, tt.want)
			}
		})
	}
}
