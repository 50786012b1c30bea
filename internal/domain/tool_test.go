package domain

import (
	"reflect"
	"testing"
)

func TestToolFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]Value
		want   ToolRecord
	}{
		{
			name: "full record",
			fields: map[string]Value{
				"tool_name":      ScalarValue("depviz"),
				"repository_url": ScalarValue("https://github.com/example/depviz"),
				"category":       ScalarValue("visualization"),
				"tags":           ListValue([]string{"graphs", "deps"}),
				"themes":         ListValue([]string{"dependency-analysis"}),
				"submitted_date": ScalarValue("2026-01-15"),
			},
			want: ToolRecord{
				Name:          "depviz",
				RepositoryURL: "https://github.com/example/depviz",
				Category:      "visualization",
				Tags:          []string{"graphs", "deps"},
				Themes:        []string{"dependency-analysis"},
				SubmittedDate: "2026-01-15",
				SourceFile:    "visualization/depviz.md",
			},
		},
		{
			name: "name field alias",
			fields: map[string]Value{
				"name": ScalarValue("gofmt"),
			},
			want: ToolRecord{
				Name:       "gofmt",
				SourceFile: "visualization/depviz.md",
			},
		},
		{
			name: "primary and secondary themes",
			fields: map[string]Value{
				"tool_name":        ScalarValue("linty"),
				"primary_theme":    ScalarValue("code-quality"),
				"secondary_themes": ListValue([]string{"automation"}),
			},
			want: ToolRecord{
				Name:       "linty",
				Themes:     []string{"code-quality", "automation"},
				SourceFile: "visualization/depviz.md",
			},
		},
		{
			name: "wrong shapes are treated as absent",
			fields: map[string]Value{
				"tool_name": ListValue([]string{"not", "a", "scalar"}),
				"tags":      ScalarValue("not-a-list"),
			},
			want: ToolRecord{
				SourceFile: "visualization/depviz.md",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToolFromHeader(tt.fields, "visualization/depviz.md")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ToolFromHeader() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizedTags(t *testing.T) {
	tool := ToolRecord{
		Tags: []string{"Code Review", "code_review", "Linting", "!!!", ""},
	}

	got := tool.NormalizedTags()
	want := []string{"code-review", "linting"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizedTags() = %v, want %v", got, want)
	}
}

func TestSortTools(t *testing.T) {
	tools := []ToolRecord{
		{Name: "zeta"},
		{Name: "alpha"},
		{Name: "mid"},
	}

	SortTools(tools)

	want := []string{"alpha", "mid", "zeta"}
	for i, w := range want {
		if tools[i].Name != w {
			t.Errorf("position %d: got %q, want %q", i, tools[i].Name, w)
		}
	}
}
