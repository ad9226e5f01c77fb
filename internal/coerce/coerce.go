// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

// Package coerce converts raw spreadsheet cells into the nullable values sent
// to the backend. Every function is total: bad input yields nil, never a panic.
package coerce

import (
	"strconv"
	"strings"
)

// String returns the trimmed cell, or nil when it is empty or whitespace only.
func String(raw string) *string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil
	}
	return &v
}

// Int parses the trimmed cell as a base-10 integer. Empty or unparsable
// cells yield nil.
func Int(raw string) *int {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// TagEntry is one "type:tag" pair from a tag list cell.
type TagEntry struct {
	Type string
	Tag  string
}

// ParseTagList splits a "type:tag,type:tag" cell into entries in input order.
// Empty entries are skipped. Entries without a colon cannot be typed and are
// returned in malformed instead. Only the first colon separates type from tag.
func ParseTagList(raw string) (tags []TagEntry, malformed []string) {
	tags = []TagEntry{}
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		typ, tag, ok := strings.Cut(entry, ":")
		if !ok {
			malformed = append(malformed, entry)
			continue
		}
		tags = append(tags, TagEntry{
			Type: strings.TrimSpace(typ),
			Tag:  strings.TrimSpace(tag),
		})
	}
	return tags, malformed
}
