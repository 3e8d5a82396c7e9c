// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package foldertree renders an indented tree representation of a directory
// and its contents, directories first, each level sorted.
package foldertree

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	entryPrefix  = "|-- "
	indentPrefix = "|   "
)

// Options controls which entries a listing skips. Non-regular entries
// (symlinks, sockets, devices) are always skipped.
type Options struct {
	ExcludeDirs  map[string]bool
	ExcludeFiles map[string]bool
}

// List returns the tree lines for root, one entry per line. Directories sort
// before files at every level; excluded names are dropped together with
// their subtrees.
func List(root string, opt Options) ([]string, error) {
	return list(root, "", opt)
}

func list(dir, prefix string, opt Options) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var dirs, files []string
	for _, entry := range entries {
		name := entry.Name()
		if opt.ExcludeDirs[name] || opt.ExcludeFiles[name] {
			continue
		}
		switch {
		case entry.IsDir():
			dirs = append(dirs, name)
		case entry.Type().IsRegular():
			files = append(files, name)
		}
	}
	sort.Strings(dirs)
	sort.Strings(files)

	var res []string
	for _, d := range dirs {
		res = append(res, prefix+entryPrefix+d+"/")
		sub, err := list(filepath.Join(dir, d), prefix+indentPrefix, opt)
		if err != nil {
			return nil, err
		}
		res = append(res, sub...)
	}
	for _, f := range files {
		res = append(res, prefix+entryPrefix+f)
	}
	return res, nil
}

// Render returns the full tree as a single string, headed by the root
// directory's base name.
func Render(root string, opt Options) (string, error) {
	lines, err := List(root, opt)
	if err != nil {
		return "", err
	}
	header := "/" + filepath.Base(filepath.Clean(root))
	return header + "\n" + strings.Join(lines, "\n"), nil
}
