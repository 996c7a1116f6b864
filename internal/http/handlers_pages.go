package http

import (
	"encoding/xml"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	netmail "net/mail"

	"calchub/internal/content"
	"calchub/internal/mail"
	"calchub/internal/queue"
)

// staticView is the template data for the content-only pages.
type staticView struct {
	SEO         content.SEO
	Calculators []content.Calculator
	Success     bool
	Error       string
}

// handleStaticPage builds a GET handler for a content-only page. SEO
// strings come from the store when a row exists for the page key.
func (s *Server) handleStaticPage(page, tmpl string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", "GET")
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		s.render(w, r, tmpl, staticView{SEO: s.seoFor(r, page)})
	}
}

func (s *Server) seoFor(r *http.Request, page string) content.SEO {
	seo, err := s.store.SEOFor(r.Context(), page)
	if err != nil && !errors.Is(err, content.ErrNotFound) {
		slog.ErrorContext(r.Context(), "SEO lookup failed", "error", err, "page", page)
	}
	return seo
}

func (s *Server) handleSitemapPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	calcs, err := s.store.ListCalculators(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Calculator list failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.render(w, r, "sitemap.html", staticView{SEO: s.seoFor(r, "sitemap"), Calculators: calcs})
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// handleSitemapXML generates the sitemap from the live catalog.
func (s *Server) handleSitemapXML(w http.ResponseWriter, r *http.Request) {
	calcs, err := s.store.ListCalculators(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Calculator list failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: s.baseURL + "/", ChangeFreq: "weekly", Priority: 1.0},
			{Loc: s.baseURL + "/about", ChangeFreq: "monthly", Priority: 0.5},
			{Loc: s.baseURL + "/contact", ChangeFreq: "monthly", Priority: 0.5},
			{Loc: s.baseURL + "/privacy", ChangeFreq: "yearly", Priority: 0.3},
			{Loc: s.baseURL + "/terms", ChangeFreq: "yearly", Priority: 0.3},
		},
	}
	for _, c := range calcs {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        s.baseURL + "/calculators/" + c.Slug,
			ChangeFreq: "monthly",
			Priority:   0.8,
		})
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	if err := xml.NewEncoder(w).Encode(set); err != nil {
		slog.ErrorContext(r.Context(), "Sitemap encoding failed", "error", err)
	}
}

func (s *Server) handleRobots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "User-agent: *\nAllow: /\nDisallow: /healthz\nDisallow: /readyz\nDisallow: /metrics\n\nSitemap: %s/sitemap.xml\n", s.baseURL)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.render(w, r, "contact.html", staticView{SEO: s.seoFor(r, "contact")})
	case http.MethodPost:
		s.handleContactSubmit(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	fail := func(status int, msg string) {
		if isXHR(r) {
			writeJSON(w, status, map[string]any{"success": false, "error": msg})
			return
		}
		s.renderStatus(w, r, status, "contact.html", staticView{SEO: s.seoFor(r, "contact"), Error: msg})
	}

	if err := r.ParseForm(); err != nil {
		fail(http.StatusBadRequest, "invalid form data")
		return
	}

	name := sanitizeInput(r.Form.Get("name"))
	email := sanitizeInput(r.Form.Get("email"))
	subject := sanitizeInput(r.Form.Get("subject"))
	body := sanitizeInput(r.Form.Get("message"))

	if name == "" || body == "" {
		fail(http.StatusUnprocessableEntity, "name and message are required")
		return
	}
	if _, err := netmail.ParseAddress(email); err != nil {
		fail(http.StatusUnprocessableEntity, "a valid email address is required")
		return
	}
	if subject == "" {
		subject = "Contact form submission"
	}

	msg := queue.NewContactMessage(name, email, subject, body)

	// Prefer the queue; deliver directly when AMQP is not configured.
	switch {
	case s.contacts != nil:
		if err := s.contacts.PublishContact(r.Context(), msg); err != nil {
			slog.ErrorContext(r.Context(), "Contact publish failed", "error", err)
			fail(http.StatusInternalServerError, "could not send your message, please try again later")
			return
		}
	case s.mailer != nil:
		err := s.mailer.Send(r.Context(), mail.Message{
			FromName:  s.mailFrom[0],
			FromEmail: email,
			ToEmail:   s.mailTo,
			Subject:   fmt.Sprintf("[Contact] %s", subject),
			TextBody:  fmt.Sprintf("From: %s <%s>\n\n%s", name, email, body),
		})
		if err != nil {
			slog.ErrorContext(r.Context(), "Contact mail delivery failed", "error", err)
			fail(http.StatusInternalServerError, "could not send your message, please try again later")
			return
		}
	default:
		slog.WarnContext(r.Context(), "Contact submission dropped, no delivery configured", "from", email)
	}

	if isXHR(r) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
		return
	}
	s.render(w, r, "contact.html", staticView{SEO: s.seoFor(r, "contact"), Success: true})
}
