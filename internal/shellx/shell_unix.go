// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

//go:build !windows

package shellx

func shellCommand() string { return "/bin/bash" }
