package git

import "testing"

func TestParseBackend(t *testing.T) {
	tests := []struct {
		input   string
		want    Backend
		wantErr bool
	}{
		{input: "", want: BackendGoGit},
		{input: "gogit", want: BackendGoGit},
		{input: "Go-Git", want: BackendGoGit},
		{input: "gitcli", want: BackendGitCLI},
		{input: "git", want: BackendGitCLI},
		{input: "svn", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBackend(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseBackend(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestReadOptions_HasFilters(t *testing.T) {
	if (ReadOptions{}).HasFilters() {
		t.Error("empty options reported filters")
	}
	if !(ReadOptions{Exclude: []string{"*.md"}}).HasFilters() {
		t.Error("exclude-only options reported no filters")
	}
}
