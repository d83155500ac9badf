package main

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"

	"fromblank/builder"
)

type seedCmd struct {
	Path  string `arg:"" help:"Page path to store the document under."`
	File  string `arg:"" type:"existingfile" help:"HTML or markdown file to import."`
	Title string `help:"Page title for markdown imports." default:""`
}

// Run imports an existing document into the page store. Markdown files
// are rendered into a complete HTML document; HTML files go in verbatim.
func (c *seedCmd) Run(app *appContext) error {
	raw, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}

	content := string(raw)
	lower := strings.ToLower(c.File)
	if strings.HasSuffix(lower, ".md") || strings.HasSuffix(lower, ".markdown") {
		content, err = renderMarkdownPage(raw, c.Title)
		if err != nil {
			return fmt.Errorf("render %s: %w", c.File, err)
		}
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%s is empty", c.File)
	}

	pagePath := builder.NormalizePath(c.Path)
	if builder.Reserved(pagePath) {
		return fmt.Errorf("%w: %s", builder.ErrInvalidPath, pagePath)
	}

	ctx := context.Background()
	st, err := openStore(ctx, app.cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Put(ctx, pagePath, content, "seeded from "+filepath.Base(c.File)); err != nil {
		return err
	}
	app.log.Info().Str("path", pagePath).Int("bytes", len(content)).Msg("page seeded")
	return nil
}

func renderMarkdownPage(md []byte, title string) (string, error) {
	var body bytes.Buffer
	if err := goldmark.Convert(md, &body); err != nil {
		return "", err
	}
	if title == "" {
		title = "fromblank"
	}

	var doc strings.Builder
	doc.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	doc.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	doc.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	doc.WriteString("<style>body{max-width:46rem;margin:3rem auto;padding:0 1.5rem;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',sans-serif;line-height:1.6}pre{overflow-x:auto}</style>\n")
	doc.WriteString("</head>\n<body>\n")
	doc.Write(body.Bytes())
	doc.WriteString("</body>\n</html>\n")
	return doc.String(), nil
}
