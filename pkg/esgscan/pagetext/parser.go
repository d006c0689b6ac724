// Package pagetext parses the page-delimited text files produced by the
// extraction stage back into document metadata and per-page text.
package pagetext

import (
	"errors"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoPages reports a file without any page delimiters. Such a file is
// treated as malformed and skipped by the tagging stage.
var ErrNoPages = errors.New("no page delimiters found")

// Metadata is the provenance block read from a file header. Year stays a
// string here; it is either a 4-digit year or "Unknown".
type Metadata struct {
	SourceFile   string
	Year         string
	DocumentType string
}

// Page is one extracted page. Total is the page count of the source
// document and is the same on every page of a file.
type Page struct {
	Number int
	Total  int
	Text   string
}

var (
	pageDelim   = regexp.MustCompile(`={80}\n\[PAGE (\d+) OF (\d+)\]\n={80}`)
	sourceLine  = regexp.MustCompile(`(?m)^Source File: (.+)$`)
	yearLine    = regexp.MustCompile(`(?m)^Year: (.+)$`)
	docTypeLine = regexp.MustCompile(`(?m)^Document Type: (.+)$`)
)

// ParseFile reads and parses one extracted-text file.
func ParseFile(path string) (Metadata, []Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, nil, err
	}
	return Parse(string(data))
}

// Parse splits an extracted-text document into its header metadata and
// pages. The region before the first page delimiter is the header; each
// page's text runs from its delimiter to the next one.
func Parse(content string) (Metadata, []Page, error) {
	meta := Metadata{
		SourceFile:   headerField(sourceLine, content),
		Year:         headerField(yearLine, content),
		DocumentType: headerField(docTypeLine, content),
	}

	marks := pageDelim.FindAllStringSubmatchIndex(content, -1)
	if len(marks) == 0 {
		return meta, nil, ErrNoPages
	}

	pages := make([]Page, 0, len(marks))
	for i, m := range marks {
		num, err := strconv.Atoi(content[m[2]:m[3]])
		if err != nil {
			return meta, nil, err
		}
		total, err := strconv.Atoi(content[m[4]:m[5]])
		if err != nil {
			return meta, nil, err
		}

		end := len(content)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		pages = append(pages, Page{
			Number: num,
			Total:  total,
			Text:   content[m[1]:end],
		})
	}
	return meta, pages, nil
}

func headerField(re *regexp.Regexp, content string) string {
	if m := re.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return "Unknown"
}
