package server

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/alexisbeaulieu97/fieldguide/internal/fieldguide"
	"github.com/alexisbeaulieu97/fieldguide/internal/palette"
	"github.com/alexisbeaulieu97/fieldguide/internal/render/svg"
)

var pageTemplate = template.Must(template.New("index").Funcs(template.FuncMap{"hex": hexColour}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Entry.Name}} | Field Guide</title>
<style>
body { font-family: Georgia, serif; margin: 2rem auto; max-width: 860px; color: #282828; }
figure { margin: 0; }
dl { display: grid; grid-template-columns: max-content auto; gap: .25rem 1rem; }
.swatch { display: inline-block; width: 1em; height: 1em; vertical-align: middle; border: 1px solid #999; }
</style>
</head>
<body>
<h1>{{.Entry.Name}}</h1>
<figure>{{.SVG}}</figure>
<dl>
<dt>Bark</dt><dd><span class="swatch" style="background: {{hex .Entry.BarkColour}}"></span> {{.Entry.BarkColourName}}</dd>
<dt>Foliage</dt><dd><span class="swatch" style="background: {{hex .Entry.FoliageColour}}"></span> {{.Entry.FoliageColourName}}</dd>
<dt>Branches</dt><dd>{{.Entry.Branches}} ({{.Entry.Leaves}} leaves, depth {{.Entry.Depth}})</dd>
<dt>Seed</dt><dd><a href="/trees/{{.Entry.Seed}}.svg">{{.Entry.Seed}}</a></dd>
</dl>
<form method="get" action="/"><button type="submit">Generate another</button></form>
</body>
</html>
`))

type pageData struct {
	Entry fieldguide.Entry
	SVG   template.HTML
}

func (s *Server) handleIndex(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	seed, err := s.seedFor(req)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	specimen, err := s.svc.GenerateSeeded(ctx, seed)
	if err != nil {
		s.logger.Error(ctx, "generation failed", "seed", seed, "error", err)
		sendError(w, "server error", http.StatusInternalServerError)
		return
	}

	opts := s.cfg.SVGOptions()
	opts.Fit = true
	surface := svg.New(opts)
	if err := s.svc.Draw(ctx, specimen, surface); err != nil {
		sendError(w, "server error", http.StatusInternalServerError)
		return
	}
	data, err := surface.Bytes()
	if err != nil {
		s.logger.Error(ctx, "svg encode failed", "seed", seed, "error", err)
		sendError(w, "server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	// svgo output is generated from palette tokens and lexicon words only.
	page := pageData{Entry: specimen.Entry(), SVG: template.HTML(stripProlog(data))}
	if err := pageTemplate.Execute(&buf, page); err != nil {
		s.logger.Error(ctx, "page render failed", "error", err)
		sendError(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// stripProlog drops the XML declaration and doctype svgo emits so the
// document can be inlined in HTML.
func stripProlog(doc []byte) []byte {
	if i := bytes.Index(doc, []byte("<svg")); i > 0 {
		return doc[i:]
	}
	return doc
}

// hexColour converts palette tokens for CSS contexts, where html/template
// rejects parentheses.
func hexColour(token string) string {
	hex, err := palette.Hex(token)
	if err != nil {
		return "transparent"
	}
	return hex
}
