// Package prompt holds the static portfolio context and assembles the text
// sent to the model.
package prompt

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed portfolio.txt
var defaultContext string

// DefaultContext returns the embedded portfolio context.
func DefaultContext() string {
	return defaultContext
}

// Builder joins a fixed context with a visitor's question.
type Builder struct {
	context string
}

func NewBuilder(context string) *Builder {
	return &Builder{context: strings.TrimRight(context, "\n")}
}

// LoadBuilder reads the context from path, or uses the embedded one when
// path is empty.
func LoadBuilder(path string) (*Builder, error) {
	if path == "" {
		return NewBuilder(defaultContext), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt context: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, fmt.Errorf("prompt context file %s is empty", path)
	}
	return NewBuilder(string(data)), nil
}

// Build returns the context followed by the question. The message is
// inserted as-is.
func (b *Builder) Build(message string) string {
	var sb strings.Builder
	sb.Grow(len(b.context) + len(message) + 32)
	sb.WriteString(b.context)
	sb.WriteString("\n\nUser's question: \"")
	sb.WriteString(message)
	sb.WriteString("\"\n")
	return sb.String()
}
