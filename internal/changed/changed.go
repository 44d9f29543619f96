// Package changed implements changed-module detection for incremental
// pipeline generation: which module directories were touched between a
// base ref and HEAD. Uses go-git/v6 - the library the policy package's git
// source already depends on - rather than shelling out to the git binary.
package changed

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
)

// Detector maps files changed in a git repository onto the module names
// declared under a root directory.
type Detector struct {
	repo *git.Repository
}

// Open opens the git repository rooted at dir.
func Open(dir string) (*Detector, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}
	return &Detector{repo: repo}, nil
}

// DefaultBaseRef picks a base ref to diff against when none was given.
func (d *Detector) DefaultBaseRef() string {
	for _, name := range []string{"main", "master"} {
		if _, err := d.repo.Reference(plumbing.NewRemoteReferenceName("origin", name), true); err == nil {
			return "origin/" + name
		}
	}
	return "HEAD~1"
}

// ChangedFiles returns every file path that differs between baseRef and
// HEAD.
func (d *Detector) ChangedFiles(baseRef string) ([]string, error) {
	headRef, err := d.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	headCommit, err := d.repo.CommitObject(headRef.Hash())
	if err != nil {
		return nil, err
	}

	baseHash, err := d.resolve(baseRef)
	if err != nil {
		return nil, err
	}
	baseCommit, err := d.repo.CommitObject(baseHash)
	if err != nil {
		return nil, err
	}

	baseTree, err := baseCommit.Tree()
	if err != nil {
		return nil, err
	}
	headTree, err := headCommit.Tree()
	if err != nil {
		return nil, err
	}

	changes, err := baseTree.Diff(headTree)
	if err != nil {
		return nil, fmt.Errorf("failed to diff trees: %w", err)
	}

	var files []string
	for _, c := range changes {
		from, to, filesErr := c.Files()
		if filesErr != nil {
			continue
		}
		if to != nil {
			files = append(files, to.Name)
		} else if from != nil {
			files = append(files, from.Name)
		}
	}
	return files, nil
}

func (d *Detector) resolve(ref string) (plumbing.Hash, error) {
	if h, err := d.repo.ResolveRevision(plumbing.Revision(ref)); err == nil {
		return *h, nil
	}
	return plumbing.Hash{}, fmt.Errorf("cannot resolve ref %q", ref)
}

// ModulesUnder maps changed file paths onto the first path segment each
// one falls under relative to root - the module name a "<root>/<module>/.."
// per-module config layout expects.
func ModulesUnder(files []string, root string) []string {
	root = filepath.ToSlash(filepath.Clean(root))

	seen := map[string]bool{}
	var modules []string
	for _, f := range files {
		f = filepath.ToSlash(f)
		prefix := root + "/"
		if root == "." {
			prefix = ""
		} else if !strings.HasPrefix(f, prefix) {
			continue
		}
		rel := strings.TrimPrefix(f, prefix)
		module := strings.SplitN(rel, "/", 2)[0]
		if module == "" || seen[module] {
			continue
		}
		seen[module] = true
		modules = append(modules, module)
	}
	return modules
}
