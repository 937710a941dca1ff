package storage

import (
	"os"
	"regexp"
	"strings"

	"github.com/blackcoderx/postman-merge/pkg/collection"
)

var placeholder = regexp.MustCompile(`\{\{\s*([^{}]+?)\s*\}\}`)

// CollectionVariables returns the collection-level variables declared in the
// top-level "variable" list. Entries without a string key are ignored.
func CollectionVariables(doc *collection.Document) map[string]string {
	vars := make(map[string]string)

	list, ok := doc.Root().Get("variable")
	if !ok {
		return vars
	}

	for _, entry := range list.Elems() {
		keyVal, _ := entry.Get("key")
		key, ok := keyVal.AsString()
		if !ok || key == "" {
			continue
		}
		valVal, _ := entry.Get("value")
		value, _ := valVal.AsString()
		vars[key] = value
	}

	return vars
}

// SubstituteVariables expands {{name}} placeholders from vars and
// {{env:NAME}} from the process environment. Placeholders that resolve to
// nothing are left as written.
func SubstituteVariables(text string, vars map[string]string) string {
	return placeholder.ReplaceAllStringFunc(text, func(match string) string {
		name := placeholder.FindStringSubmatch(match)[1]
		if value := lookupVariable(name, vars); value != "" {
			return value
		}
		return match
	})
}

func lookupVariable(name string, vars map[string]string) string {
	if envName, ok := strings.CutPrefix(name, "env:"); ok {
		return os.Getenv(envName)
	}
	return vars[name]
}
