package ir

import (
	"strconv"
	"strings"
)

// RootPath addresses the document root, used for document-wide findings.
const RootPath = "$"

// AutomationPath returns the path of the i-th automation in a document.
func AutomationPath(i int) string {
	return "automations[" + strconv.Itoa(i) + "]"
}

// JoinKey appends a mapping key to a path.
func JoinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// JoinIndex appends a list index to a path.
func JoinIndex(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

// AutomationIndex extracts the automation index from a path produced by
// AutomationPath, e.g. 2 for "automations[2].action[0]". It returns -1 for
// paths outside any automation.
func AutomationIndex(path string) int {
	rest, ok := strings.CutPrefix(path, "automations[")
	if !ok {
		return -1
	}
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		return -1
	}
	n, err := strconv.Atoi(rest[:end])
	if err != nil {
		return -1
	}
	return n
}
