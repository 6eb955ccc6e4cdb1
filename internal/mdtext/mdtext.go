// Package mdtext extracts scoreable prose from Markdown. Code blocks,
// code spans, and raw HTML carry no prose and are dropped; inline
// structure (links, emphasis) is flattened to its text.
package mdtext

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Extract parses Markdown and returns plain text, one line per block.
func Extract(source []byte) string {
	reader := text.NewReader(source)
	root := goldmark.DefaultParser().Parse(reader)

	var b strings.Builder
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.FencedCodeBlock:
			return skipOnEnter(entering)
		case *ast.CodeBlock:
			return skipOnEnter(entering)
		case *ast.HTMLBlock:
			return skipOnEnter(entering)
		case *ast.CodeSpan:
			return skipOnEnter(entering)
		case *ast.RawHTML:
			return skipOnEnter(entering)
		case *ast.Text:
			if entering {
				b.Write(node.Segment.Value(source))
				if node.SoftLineBreak() || node.HardLineBreak() {
					b.WriteByte(' ')
				}
			}
		case *ast.String:
			if entering {
				b.Write(node.Value)
			}
		default:
			// Block boundaries become line breaks so headings and list
			// items do not run into the next block's first sentence.
			if !entering && n.Type() == ast.TypeBlock {
				b.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(b.String())
}

func skipOnEnter(entering bool) (ast.WalkStatus, error) {
	if entering {
		return ast.WalkSkipChildren, nil
	}
	return ast.WalkContinue, nil
}
