// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/homer-cli/homer/internal/config"
	"github.com/homer-cli/homer/internal/log"
)

const (
	terraformFileGlob = "*.tf"
	packerFileGlob    = "*.pkr.hcl"
)

// ErrNoProjectRoot is returned by Discover when no directory between the
// starting directory and the filesystem root qualifies as a project root.
var ErrNoProjectRoot = errors.New(
	"no project root found: expected a directory whose subdirectories contain .tf files")

// TargetNotFoundError reports an environment or app name that does not
// resolve to a usable directory. No subprocess is spawned when one of these
// is returned.
type TargetNotFoundError struct {
	Target string
	Kind   string // "environment" or "app"
	Dir    string // where it was looked for
	Hint   string // set when the name resolves as the other kind
}

func (e *TargetNotFoundError) Error() string {
	msg := fmt.Sprintf("%s %q not found under %s", e.Kind, e.Target, e.Dir)
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

// Layout is the discovered on-disk project shape: the root holding the
// Terraform environment directories and the subtree holding Packer apps.
type Layout struct {
	Root   string
	AppDir string
}

// Discover walks up from startDir looking for the project root. A directory
// qualifies when it, or its terraform/ subdirectory, contains at least one
// non-hidden subdirectory with .tf files.
func Discover(startDir string) (*Layout, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		if isTerraformRoot(dir) {
			return newLayout(dir), nil
		}
		if sub := filepath.Join(dir, "terraform"); isTerraformRoot(sub) {
			return newLayout(sub), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, ErrNoProjectRoot
		}
		dir = parent
	}
}

func newLayout(root string) *Layout {
	l := &Layout{
		Root:   root,
		AppDir: filepath.Join(root, config.PackerAppDir()),
	}
	log.Debugf("project root: root=%s appdir=%s", l.Root, l.AppDir)
	return l
}

// Environments returns the sorted names of the valid Terraform environments
// under the root.
func (l *Layout) Environments() []string {
	return subdirsWithGlob(l.Root, terraformFileGlob)
}

// Apps returns the sorted names of the valid Packer apps under the app dir.
func (l *Layout) Apps() []string {
	return subdirsWithGlob(l.AppDir, packerFileGlob)
}

// EnvPath resolves an environment name to its directory. The directory must
// exist and contain .tf files. When the name is actually an app, the error
// points the user at `homer build`.
func (l *Layout) EnvPath(name string) (string, error) {
	if !l.IsEnvironment(name) {
		err := &TargetNotFoundError{Target: name, Kind: "environment", Dir: l.Root}
		if l.IsApp(name) {
			err.Hint = fmt.Sprintf("%q is an app; try `homer build %s`", name, name)
		}
		return "", err
	}
	return filepath.Join(l.Root, name), nil
}

// AppPath resolves an app name to its directory. The directory must exist
// and contain .pkr.hcl templates. When the name is actually an environment,
// the error says so.
func (l *Layout) AppPath(name string) (string, error) {
	if !l.IsApp(name) {
		err := &TargetNotFoundError{Target: name, Kind: "app", Dir: l.AppDir}
		if l.IsEnvironment(name) {
			err.Hint = fmt.Sprintf("%q is an environment, not an app", name)
		}
		return "", err
	}
	return filepath.Join(l.AppDir, name), nil
}

// IsEnvironment reports whether name is a valid environment.
func (l *Layout) IsEnvironment(name string) bool {
	return dirHasGlob(filepath.Join(l.Root, name), terraformFileGlob)
}

// IsApp reports whether name is a valid app.
func (l *Layout) IsApp(name string) bool {
	return dirHasGlob(filepath.Join(l.AppDir, name), packerFileGlob)
}

// PinnedVersion returns the Terraform version pinned by a .terraform-version
// file, searching from the root upward. The second return is false when no
// readable pin exists.
func (l *Layout) PinnedVersion() (string, bool) {
	dir := l.Root
	for {
		file := filepath.Join(dir, ".terraform-version")
		if data, err := os.ReadFile(file); err == nil {
			if v := strings.TrimSpace(string(data)); v != "" {
				return v, true
			}
			return "", false
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func isTerraformRoot(dir string) bool {
	return len(subdirsWithGlob(dir, terraformFileGlob)) > 0
}

func subdirsWithGlob(dir, glob string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if dirHasGlob(filepath.Join(dir, e.Name()), glob) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

func dirHasGlob(dir, glob string) bool {
	matches, err := filepath.Glob(filepath.Join(dir, glob))
	return err == nil && len(matches) > 0
}
