package viewer

import (
	"bytes"
	_ "embed"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

//go:embed ABOUT.md
var aboutMarkdown []byte

var (
	aboutOnce sync.Once
	aboutPage []byte
)

const aboutShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>About Elemex</title>
<style>
  body { max-width: 760px; margin: 40px auto; padding: 0 20px; font-family: -apple-system, "Segoe UI", Roboto, sans-serif; color: #1e1e1e; }
  h1, h2 { color: #1e3a8a; }
  pre { background: #f6f8fa; padding: 12px; border-radius: 8px; overflow-x: auto; }
  table { border-collapse: collapse; }
  td, th { border: 1px solid #e5e7eb; padding: 6px 10px; text-align: left; }
  a.back { font-size: .85rem; }
</style>
</head>
<body>
<a class="back" href="/">&larr; back to the table</a>
%s
</body>
</html>
`

// handleAbout serves the embedded ABOUT.md rendered to HTML. The page is
// rendered once and reused.
func (v *Viewer) handleAbout(w http.ResponseWriter, r *http.Request) {
	aboutOnce.Do(func() {
		md := goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		)
		var buf bytes.Buffer
		if err := md.Convert(aboutMarkdown, &buf); err != nil {
			log.Printf("viewer: rendering about page: %v", err)
			buf.Reset()
			buf.Write(aboutMarkdown)
		}
		aboutPage = []byte(fmt.Sprintf(aboutShell, buf.String()))
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(aboutPage)
}
