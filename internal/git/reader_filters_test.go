package git

import "testing"

func TestHistoryReader_matchesFilters_InvalidPatternsReturnError(t *testing.T) {
	t.Run("invalid exclude pattern", func(t *testing.T) {
		r := &HistoryReader{
			opts:        ReadOptions{Exclude: []string{"["}},
			filterCache: make(map[string]bool),
		}
		_, err := r.matchesFilters("a.go")
		if err == nil {
			t.Fatal("expected error for invalid exclude glob, got nil")
		}
	})

	t.Run("invalid include pattern", func(t *testing.T) {
		r := &HistoryReader{
			opts:        ReadOptions{Include: []string{"["}},
			filterCache: make(map[string]bool),
		}
		_, err := r.matchesFilters("a.go")
		if err == nil {
			t.Fatal("expected error for invalid include glob, got nil")
		}
	})
}

func TestHistoryReader_matchesFilters(t *testing.T) {
	r := &HistoryReader{
		opts: ReadOptions{
			Include: []string{"src/**", "*.md"},
			Exclude: []string{"src/vendor/**"},
		},
		filterCache: make(map[string]bool),
	}

	tests := []struct {
		path string
		want bool
	}{
		{path: "src/main.go", want: true},
		{path: "src/pkg/deep/file.go", want: true},
		{path: "README.md", want: true},
		{path: `src\windows\path.go`, want: true},
		{path: "src/vendor/lib/x.go", want: false},
		{path: "docs/guide.txt", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := r.matchesFilters(tt.path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("matchesFilters(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}

	if _, ok := r.filterCache["src/main.go"]; !ok {
		t.Error("expected result to be cached")
	}
}
