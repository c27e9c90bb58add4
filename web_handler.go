package main

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"visitordash/chart"
)

const sessionCookie = "visitordash_session"

// Server wires the session store and the pre-wired views to the router.
type Server struct {
	store *SessionStore
	views []View
}

func NewServer(store *SessionStore, views []View) *Server {
	return &Server{store: store, views: views}
}

func (s *Server) Routes() *httprouter.Router {
	router := httprouter.New()
	router.GET("/", s.handleIndex)
	router.GET("/view/:name", s.handleView)
	router.GET("/export/:name", s.handleExport)
	router.GET("/data", s.handleData)
	router.POST("/reload", s.handleReload)
	return router
}

// session resolves the caller's session from the cookie, loading the
// dataset on first contact, and refreshes the cookie.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*Session, error) {
	var id string
	if c, err := r.Cookie(sessionCookie); err == nil {
		id = c.Value
	}
	sess, id, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: id, Path: "/"})
	return sess, nil
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Inbound Visitor Dashboard</title>
<style>
body { font-family: sans-serif; margin: 0; background: #fafafa; }
header { background: #2b3a55; color: #fff; padding: 12px 24px; }
nav { background: #fff; border-bottom: 1px solid #ddd; padding: 0 24px; }
nav a { display: inline-block; padding: 10px 14px; text-decoration: none; color: #2b3a55; }
nav a:hover { background: #eef2f8; }
section { margin: 16px 24px; background: #fff; border: 1px solid #ddd; padding: 12px; }
section p { color: #555; }
iframe { width: 100%; height: 560px; border: none; }
</style>
</head>
<body>
<header><h1>Inbound Visitor Dashboard</h1></header>
<nav>
{{range .Views}}<a href="#{{.Name}}">{{.Title}}</a>{{end}}
<a href="/data">Data info</a>
</nav>
{{range .Views}}
<section id="{{.Name}}">
<h2>{{.Title}}</h2>
<p>{{.Comment}}</p>
<iframe src="/view/{{.Name}}" loading="lazy"></iframe>
<p><a href="/export/{{.Name}}">Download PNG</a></p>
</section>
{{end}}
</body>
</html>`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if _, err := s.session(w, r); err != nil {
		s.renderLoadFailure(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, map[string]any{"Views": s.views}); err != nil {
		log.Printf("error rendering index: %v", err)
	}
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, err := s.session(w, r)
	if err != nil {
		s.renderLoadFailure(w, err)
		return
	}
	view, ok := findView(s.views, ps.ByName("name"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	spec, err := view.Build(sess.Data)
	if err != nil {
		s.renderChartFailure(w, view, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := chart.Render(spec).Render(w); err != nil {
		log.Printf("error rendering view %s: %v", view.Name, err)
	}
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, err := s.session(w, r)
	if err != nil {
		s.renderLoadFailure(w, err)
		return
	}
	view, ok := findView(s.views, ps.ByName("name"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	spec, err := view.Build(sess.Data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	png, err := chart.RenderPNG(spec)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.png", view.Name))
	w.Write(png)
}

func (s *Server) handleData(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess, err := s.session(w, r)
	if err != nil {
		s.renderLoadFailure(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "Summary table: %d rows\n\n", sess.Data.Summary.Len())
	fmt.Fprintln(w, GenerateTablePreview(sess.Data.Summary, 15))
	fmt.Fprintln(w, GenerateCategoryTable(sess.Data.Summary))
	fmt.Fprintf(w, "\nExpenditure table: %d rows\n\n", sess.Data.Expenditure.Len())
	fmt.Fprintln(w, GenerateTablePreview(sess.Data.Expenditure, 15))
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		s.store.Invalidate(c.Value)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// renderLoadFailure covers the source-unavailable class: fatal for the
// whole dashboard, nothing else renders.
func (s *Server) renderLoadFailure(w http.ResponseWriter, err error) {
	log.Printf("dataset load failed: %v", err)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusServiceUnavailable)
	fmt.Fprintf(w, `<h1>Data unavailable</h1><p>%s</p>`, template.HTMLEscapeString(err.Error()))
}

// renderChartFailure covers the per-chart classes: schema mismatches are
// errors for that chart only, empty filter results just a notice. Other
// views keep working either way.
func (s *Server) renderChartFailure(w http.ResponseWriter, view View, err error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var empty *chart.EmptyResultError
	if errors.As(err, &empty) {
		fmt.Fprintf(w, `<p style="color:#777">%s: %s. Chart skipped.</p>`,
			template.HTMLEscapeString(view.Title), template.HTMLEscapeString(err.Error()))
		return
	}
	log.Printf("view %s failed: %v", view.Name, err)
	fmt.Fprintf(w, `<p style="color:#b00">Cannot render %s: %s</p>`,
		template.HTMLEscapeString(view.Title), template.HTMLEscapeString(err.Error()))
}
