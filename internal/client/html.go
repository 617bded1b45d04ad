package client

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// errNoArticle is returned when a page carries no <article> element, which
// usually means the session cookie is stale and the site served an error
// page.
var errNoArticle = errors.New("no <article> element in page")

func parsePage(page string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

func findElements(doc *html.Node, tag string) []*html.Node {
	var found []*html.Node
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			found = append(found, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(doc)
	return found
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(n)
	return sb.String()
}

// articleText returns the trimmed plain text of the first <article> in the
// page. Submission responses carry their verdict there.
func articleText(page string) (string, error) {
	doc, err := parsePage(page)
	if err != nil {
		return "", err
	}
	articles := findElements(doc, "article")
	if len(articles) == 0 {
		return "", errNoArticle
	}
	return strings.TrimSpace(squashSpace(textContent(articles[0]))), nil
}

var spaceRun = regexp.MustCompile(`[ \t\n]+`)

func squashSpace(s string) string {
	return spaceRun.ReplaceAllString(s, " ")
}

// articlesToMarkdown converts every <article> of a puzzle page to markdown.
// Puzzle pages carry one article per unlocked part.
func articlesToMarkdown(page string) (string, error) {
	doc, err := parsePage(page)
	if err != nil {
		return "", err
	}
	articles := findElements(doc, "article")
	if len(articles) == 0 {
		return "", errNoArticle
	}
	var parts []string
	for _, article := range articles {
		parts = append(parts, articleMarkdown(article))
	}
	return strings.Join(parts, "\n\n"), nil
}

func articleMarkdown(article *html.Node) string {
	var blocks []string
	for c := article.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "h1", "h2":
			blocks = append(blocks, "## "+strings.TrimSpace(inlineMarkdown(c)))
		case "p":
			blocks = append(blocks, strings.TrimSpace(inlineMarkdown(c)))
		case "pre":
			code := strings.TrimRight(textContent(c), "\n")
			blocks = append(blocks, "```\n"+code+"\n```")
		case "ul", "ol":
			var items []string
			for li := c.FirstChild; li != nil; li = li.NextSibling {
				if li.Type == html.ElementNode && li.Data == "li" {
					items = append(items, "- "+strings.TrimSpace(inlineMarkdown(li)))
				}
			}
			blocks = append(blocks, strings.Join(items, "\n"))
		}
	}
	return strings.Join(blocks, "\n\n")
}

// inlineMarkdown renders the inline content of a node, mapping emphasis,
// inline code, and links to their markdown forms.
func inlineMarkdown(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode:
			sb.WriteString(c.Data)
		case c.Type != html.ElementNode:
			// Skip comments.
		case c.Data == "em":
			sb.WriteString("*" + inlineMarkdown(c) + "*")
		case c.Data == "code":
			sb.WriteString("`" + textContent(c) + "`")
		case c.Data == "a":
			if href := attr(c, "href"); href != "" {
				sb.WriteString("[" + inlineMarkdown(c) + "](" + href + ")")
			} else {
				sb.WriteString(inlineMarkdown(c))
			}
		default:
			sb.WriteString(inlineMarkdown(c))
		}
	}
	return sb.String()
}

var calendarDayClass = regexp.MustCompile(`calendar-day(\d+)`)

// parseCalendar extracts per-day star counts from a year's calendar page.
// Each day is an anchor with a calendar-dayN class; completion level is
// carried in the calendar-complete / calendar-verycomplete classes.
func parseCalendar(page string) (map[int]int, error) {
	doc, err := parsePage(page)
	if err != nil {
		return nil, err
	}
	stars := map[int]int{}
	for _, a := range findElements(doc, "a") {
		class := attr(a, "class")
		m := calendarDayClass.FindStringSubmatch(class)
		if m == nil {
			continue
		}
		day, err := strconv.Atoi(m[1])
		if err != nil || day < 1 || day > 25 {
			continue
		}
		switch {
		case strings.Contains(class, "calendar-verycomplete"):
			stars[day] = 2
		case strings.Contains(class, "calendar-complete"):
			stars[day] = 1
		default:
			stars[day] = 0
		}
	}
	if len(stars) == 0 {
		return nil, errors.New("no calendar days found in page")
	}
	return stars, nil
}
