package html

import (
	"strings"

	"golang.org/x/net/html"
)

// rule renders one element. Tags without a rule are transparent.
type rule func(c *Converter, n *html.Node, s state) string

func defaultRules() map[string]rule {
	rules := map[string]rule{
		"p":          (*Converter).paragraph,
		"strong":     inlineRule("**", "**"),
		"b":          inlineRule("**", "**"),
		"em":         inlineRule("*", "*"),
		"i":          inlineRule("*", "*"),
		"del":        inlineRule("~~", "~~"),
		"s":          inlineRule("~~", "~~"),
		"ins":        inlineRule("++", "++"),
		"mark":       inlineRule("==", "=="),
		"small":      inlineRule("<small>", "</small>"),
		"sub":        inlineRule("<sub>", "</sub>"),
		"sup":        inlineRule("<sup>", "</sup>"),
		"code":       inlineRule("`", "`"),
		"pre":        (*Converter).preformatted,
		"blockquote": (*Converter).blockquote,
		"ul":         (*Converter).list,
		"ol":         (*Converter).list,
		"dl":         (*Converter).definitionList,
		"li":         (*Converter).transparent,
		"a":          (*Converter).anchor,
		"img":        (*Converter).image,
		"table":      (*Converter).table,
		"br":         func(*Converter, *html.Node, state) string { return "\n" },
		"hr":         func(*Converter, *html.Node, state) string { return "\n---\n\n" },
	}
	for _, h := range []string{"h1", "h2", "h3", "h4", "h5", "h6"} {
		rules[h] = (*Converter).heading
	}
	return rules
}

func inlineRule(open, close string) rule {
	return func(c *Converter, n *html.Node, s state) string {
		return wrap(open, c.children(n, s), close)
	}
}

func (c *Converter) transparent(n *html.Node, s state) string {
	return c.children(n, s)
}

func (c *Converter) paragraph(n *html.Node, s state) string {
	content := strings.TrimSpace(c.children(n, s))
	if content == "" {
		return ""
	}
	return "\n" + content + "\n\n"
}

func (c *Converter) preformatted(n *html.Node, s state) string {
	return "\n```\n" + strings.TrimSpace(c.children(n, s)) + "\n```\n\n"
}

func (c *Converter) blockquote(n *html.Node, s state) string {
	inner := blankLines.ReplaceAllString(c.children(n, s), "\n\n")
	inner = strings.Trim(inner, "\n")
	lines := strings.Split(inner, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			lines[i] = ">"
			continue
		}
		lines[i] = "> " + line
	}
	return "\n" + strings.Join(lines, "\n") + "\n\n"
}

func (c *Converter) anchor(n *html.Node, s state) string {
	text := c.children(n, s)
	href := attr(n, "href")
	if href == "" || strings.HasPrefix(href, "#") {
		return text
	}
	return wrap("[", text, "]("+href+")")
}

func (c *Converter) image(n *html.Node, _ state) string {
	src := attr(n, "src")
	if src == "" {
		return ""
	}
	alt := attr(n, "alt")
	if alt == "" {
		alt = "Image"
	}
	return "![" + alt + "](" + src + ")"
}
