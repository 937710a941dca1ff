package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/blackcoderx/postman-merge/pkg/collection"
	"github.com/blackcoderx/postman-merge/pkg/sections"
	"github.com/blackcoderx/postman-merge/pkg/storage"
	"github.com/charmbracelet/glamour"
)

// SetsMarkdown lists the built-in sets with their folders and requests.
func SetsMarkdown(sets []*sections.Set) (string, error) {
	var sb strings.Builder
	sb.WriteString("# Section sets\n")

	for _, set := range sets {
		fmt.Fprintf(&sb, "\n## %s\n\n", set.Name)
		if set.Description != "" {
			sb.WriteString(set.Description + "\n")
		}

		folders, err := set.Folders()
		if err != nil {
			return "", fmt.Errorf("set '%s': %w", set.Name, err)
		}
		for _, folder := range folders {
			writeFolder(&sb, folder, nil)
		}
	}

	return sb.String(), nil
}

// CollectionMarkdown lists the top-level sections of a collection. Request
// URLs are shown with the collection's own variables substituted.
func CollectionMarkdown(path string, doc *collection.Document) string {
	title := filepath.Base(path)
	if info, ok := doc.Root().Get("info"); ok {
		if name, ok := info.Name(); ok && name != "" {
			title = name
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)
	fmt.Fprintf(&sb, "`%s`, %d sections\n", path, len(doc.Sections()))

	vars := storage.CollectionVariables(doc)
	for i, section := range doc.Sections() {
		folder, err := storage.DecodeFolder(section)
		if err != nil {
			name, ok := section.Name()
			if !ok {
				name = fmt.Sprintf("(unnamed section %d)", i+1)
			}
			fmt.Fprintf(&sb, "\n### %s\n\n_not a folder: %v_\n", name, err)
			continue
		}
		if folder.Name == "" {
			folder.Name = fmt.Sprintf("(unnamed section %d)", i+1)
		}
		writeFolder(&sb, folder, vars)
	}

	return sb.String()
}

func writeFolder(sb *strings.Builder, folder storage.Folder, vars map[string]string) {
	fmt.Fprintf(sb, "\n### %s\n\n", folder.Name)

	requests := folder.Requests()
	if len(requests) == 0 {
		sb.WriteString("_no requests_\n")
		return
	}

	sb.WriteString("| Method | Request | URL |\n")
	sb.WriteString("|---|---|---|\n")
	for _, item := range requests {
		url := item.Request.URL.Raw
		if vars != nil {
			url = storage.SubstituteVariables(url, vars)
		}
		fmt.Fprintf(sb, "| %s | %s | `%s` |\n",
			cell(item.Request.Method), cell(item.Name), cell(url))
	}
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// Render renders markdown for the terminal with glamour. If the renderer
// cannot be built, the markdown is returned as is.
func Render(markdown string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markdown
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}

	return out
}
