// Package markup models the declarative layout tree that the decorator
// registry turns into components. Layouts are written in YAML; see
// internal/ui for the embedded default.
package markup

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Node is one element of a layout document. Classes select the component
// constructor; attrs carry construction-time settings (orientation, scroll
// policy, selected/disabled/hidden marks, labels).
type Node struct {
	ID       string            `yaml:"id"`
	Classes  []string          `yaml:"classes"`
	Label    string            `yaml:"label"`
	Attrs    map[string]string `yaml:"attrs"`
	Children []*Node           `yaml:"children"`
}

// Attr returns the named attribute, or "" when absent.
func (n *Node) Attr(name string) string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	return n.Attrs[name]
}

// BoolAttr reports whether the named attribute is a truthy flag.
func (n *Node) BoolAttr(name string) bool {
	switch strings.ToLower(n.Attr(name)) {
	case "true", "yes", "1":
		return true
	}
	return false
}

// HasClass reports whether the node carries the given class.
func (n *Node) HasClass(class string) bool {
	if n == nil {
		return false
	}
	for _, c := range n.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Find returns the first node in the subtree with the given ID, or nil.
func (n *Node) Find(id string) *Node {
	if n == nil {
		return nil
	}
	if n.ID == id {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Parse decodes a YAML layout document into a node tree.
func Parse(data []byte) (*Node, error) {
	var root Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	return &root, nil
}

// ParseFile reads and decodes a YAML layout file.
func ParseFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout %s: %w", path, err)
	}
	return Parse(data)
}
