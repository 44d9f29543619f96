package changed

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing/object"
)

func initRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit failed: %v", err)
	}
	return dir, repo
}

func commitFile(t *testing.T, repo *git.Repository, dir, relPath, content string) {
	t.Helper()
	full := filepath.Join(dir, relPath)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("failed to create parent dir: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("failed to get worktree: %v", err)
	}
	if _, err := wt.Add(relPath); err != nil {
		t.Fatalf("failed to add file: %v", err)
	}
	sig := &object.Signature{Name: "test", Email: "test@example.com", When: time.Unix(0, 0)}
	if _, err := wt.Commit("commit "+relPath, &git.CommitOptions{Author: sig}); err != nil {
		t.Fatalf("failed to commit: %v", err)
	}
}

func TestDetector_ChangedFiles(t *testing.T) {
	dir, repo := initRepo(t)
	commitFile(t, repo, dir, "rtes/alpha/config.json", `{"a":1}`)

	headRef, err := repo.Head()
	if err != nil {
		t.Fatalf("failed to get head: %v", err)
	}
	baseHash := headRef.Hash().String()

	commitFile(t, repo, dir, "rtes/beta/config.json", `{"b":1}`)

	det, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	files, err := det.ChangedFiles(baseHash)
	if err != nil {
		t.Fatalf("ChangedFiles failed: %v", err)
	}

	sort.Strings(files)
	want := []string{"rtes/beta/config.json"}
	if len(files) != len(want) || files[0] != want[0] {
		t.Errorf("ChangedFiles() = %v, want %v", files, want)
	}
}

func TestModulesUnder(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		root  string
		want  []string
	}{
		{
			name:  "single module",
			files: []string{"rtes/alpha/config.json", "rtes/alpha/connections.json"},
			root:  "rtes",
			want:  []string{"alpha"},
		},
		{
			name:  "multiple modules, dedup",
			files: []string{"rtes/alpha/config.json", "rtes/beta/config.json", "rtes/alpha/other.json"},
			root:  "rtes",
			want:  []string{"alpha", "beta"},
		},
		{
			name:  "file outside root is ignored",
			files: []string{"tests/alpha/config.json", "rtes/beta/config.json"},
			root:  "rtes",
			want:  []string{"beta"},
		},
		{
			name:  "root is current directory",
			files: []string{"alpha/config.json"},
			root:  ".",
			want:  []string{"alpha"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ModulesUnder(tt.files, tt.root)
			sort.Strings(got)
			if len(got) != len(tt.want) {
				t.Fatalf("ModulesUnder() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ModulesUnder()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
