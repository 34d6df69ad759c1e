package jira

import (
	"fmt"
	"strings"
)

// renderADF converts an Atlassian Document Format tree (as decoded JSON)
// into markdown-flavoured plain text. Unknown node types are skipped rather
// than failing the whole document.
func renderADF(doc map[string]any) string {
	var parts []string

	for _, block := range childNodes(doc) {
		switch nodeType(block) {
		case "paragraph":
			if text := renderInline(childNodes(block)); text != "" {
				parts = append(parts, text)
			}

		case "heading":
			level := intAttr(block, "level", 1)
			if text := renderInline(childNodes(block)); text != "" {
				parts = append(parts, strings.Repeat("#", level)+" "+text)
			}

		case "bulletList":
			var items []string
			for _, item := range childNodes(block) {
				if text := renderListItem(item); text != "" {
					items = append(items, "- "+text)
				}
			}
			if len(items) > 0 {
				parts = append(parts, strings.Join(items, "\n"))
			}

		case "orderedList":
			start := intAttr(block, "start", 1)
			var items []string
			for i, item := range childNodes(block) {
				if text := renderListItem(item); text != "" {
					items = append(items, fmt.Sprintf("%d. %s", start+i, text))
				}
			}
			if len(items) > 0 {
				parts = append(parts, strings.Join(items, "\n"))
			}

		case "codeBlock":
			lang, _ := attrs(block)["language"].(string)
			var code strings.Builder
			for _, textNode := range childNodes(block) {
				if s, ok := textNode["text"].(string); ok {
					code.WriteString(s)
				}
			}
			parts = append(parts, "```"+lang+"\n"+code.String()+"\n```")

		case "rule":
			parts = append(parts, "---")

		case "blockquote":
			var quoted []string
			for _, p := range childNodes(block) {
				if nodeType(p) == "paragraph" {
					if text := renderInline(childNodes(p)); text != "" {
						quoted = append(quoted, "> "+text)
					}
				}
			}
			if len(quoted) > 0 {
				parts = append(parts, strings.Join(quoted, "\n"))
			}
		}
	}

	return strings.Join(parts, "\n\n")
}

// renderInline flattens text and hardBreak nodes, applying marks as markdown.
func renderInline(nodes []map[string]any) string {
	var out strings.Builder
	for _, node := range nodes {
		switch nodeType(node) {
		case "text":
			text, _ := node["text"].(string)
			if marks, ok := node["marks"].([]any); ok {
				for _, m := range marks {
					mark, ok := m.(map[string]any)
					if !ok {
						continue
					}
					switch nodeType(mark) {
					case "strong":
						text = "**" + text + "**"
					case "em":
						text = "*" + text + "*"
					case "code":
						text = "`" + text + "`"
					case "strike":
						text = "~~" + text + "~~"
					}
				}
			}
			out.WriteString(text)
		case "hardBreak":
			out.WriteString("\n")
		}
	}
	return out.String()
}

// renderListItem joins the paragraphs of a listItem node with spaces.
func renderListItem(item map[string]any) string {
	var paras []string
	for _, p := range childNodes(item) {
		if nodeType(p) == "paragraph" {
			if text := renderInline(childNodes(p)); text != "" {
				paras = append(paras, text)
			}
		}
	}
	return strings.Join(paras, " ")
}

func nodeType(node map[string]any) string {
	t, _ := node["type"].(string)
	return t
}

func attrs(node map[string]any) map[string]any {
	a, _ := node["attrs"].(map[string]any)
	return a
}

func intAttr(node map[string]any, key string, fallback int) int {
	// JSON numbers decode as float64.
	if v, ok := attrs(node)[key].(float64); ok {
		return int(v)
	}
	return fallback
}

func childNodes(node map[string]any) []map[string]any {
	raw, _ := node["content"].([]any)
	nodes := make([]map[string]any, 0, len(raw))
	for _, r := range raw {
		if m, ok := r.(map[string]any); ok {
			nodes = append(nodes, m)
		}
	}
	return nodes
}
