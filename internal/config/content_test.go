package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultContent(t *testing.T) {
	c := DefaultContent()
	want := []string{"hero", "about", "skills", "journey", "projects", "resume", "contact"}
	if len(c.Sections) != len(want) {
		t.Fatalf("expected %d sections, got %d", len(want), len(c.Sections))
	}
	for i, s := range want {
		if c.Sections[i] != s {
			t.Errorf("section %d = %q, want %q", i, c.Sections[i], s)
		}
	}
	if len(c.Messages) == 0 {
		t.Error("expected typing messages")
	}
	if len(c.Timeline) != 4 || c.Timeline[0].Period != "2021" {
		t.Errorf("timeline = %+v", c.Timeline)
	}
}

func TestParseContent(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
	}{
		{
			name: "valid",
			yamlContent: `
sections: [hero, about]
skills:
  - name: Go
    level: 80
`,
		},
		{
			name:        "no sections",
			yamlContent: "owner:\n  name: x\n",
			wantErr:     true,
			errContains: "sections must not be empty",
		},
		{
			name:        "duplicate section",
			yamlContent: "sections: [hero, hero]\n",
			wantErr:     true,
			errContains: "duplicate section",
		},
		{
			name: "skill out of range",
			yamlContent: `
sections: [hero]
skills:
  - name: Go
    level: 120
`,
			wantErr:     true,
			errContains: "out of range",
		},
		{
			name: "negative stat",
			yamlContent: `
sections: [hero]
stats:
  - label: Projects
    target: -1
`,
			wantErr:     true,
			errContains: "must not be negative",
		},
		{
			name:        "malformed yaml",
			yamlContent: "sections: [hero",
			wantErr:     true,
			errContains: "failed to parse content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseContent([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadContentFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, []byte("sections: [hero, contact]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadContent(path)
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}
	if len(c.Sections) != 2 || c.Sections[1] != "contact" {
		t.Errorf("unexpected sections %v", c.Sections)
	}

	if _, err := LoadContent(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestContentWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	if err := os.WriteFile(path, []byte("sections: [hero]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := WatchContent(path)
	if err != nil {
		t.Fatalf("WatchContent: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("sections: [hero, about]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-w.Updates:
		if len(c.Sections) != 2 {
			t.Errorf("expected reloaded sections, got %v", c.Sections)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestContentWatcherWaitsForLastWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	if err := os.WriteFile(path, []byte("sections: [hero]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := WatchContent(path)
	if err != nil {
		t.Fatalf("WatchContent: %v", err)
	}
	defer w.Close()

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("sections: [hero, "); err != nil {
		t.Fatal(err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, err := f.WriteString("about, skills]\n"); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-w.Updates:
		if len(c.Sections) != 3 || c.Sections[2] != "skills" {
			t.Errorf("reloaded sections = %v, want the completed edit", c.Sections)
		}
	case err := <-w.Errors:
		t.Fatalf("half-written file was parsed: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}
