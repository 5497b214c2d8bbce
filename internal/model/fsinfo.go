// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines FSInfo, which links a loaded record back to the
// definition file it came from so errors can name the file.
package model

// FSInfo stores file system metadata for a record.
type FSInfo struct {
	FilePath string
}

// NewFSInfo returns FSInfo for filePath.
func NewFSInfo(filePath string) *FSInfo {
	return &FSInfo{
		FilePath: filePath,
	}
}
