package http

import (
	"log/slog"
	"net/http"

	"calchub/internal/content"
)

const homeCacheKey = "home"

// homeView is the assembled homepage data, cached as one unit.
type homeView struct {
	Homepage     content.Homepage
	Calculators  []content.Calculator
	Featured     []content.Calculator
	Features     []content.Feature
	Testimonials []content.Testimonial
	TotalUsage   int64
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.renderNotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	view, err := s.getHomeView(r)
	if err != nil {
		slog.ErrorContext(r.Context(), "Homepage assembly failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.render(w, r, "home.html", view)
}

func (s *Server) getHomeView(r *http.Request) (homeView, error) {
	if view, ok := s.homeCache.Get(homeCacheKey); ok {
		slog.DebugContext(r.Context(), "Homepage cache hit")
		return view, nil
	}

	ctx := r.Context()
	var view homeView
	var err error

	if view.Homepage, err = s.store.Homepage(ctx); err != nil {
		return view, err
	}
	if view.Calculators, err = s.store.ListCalculators(ctx); err != nil {
		return view, err
	}
	if view.Featured, err = s.store.FeaturedCalculators(ctx, 6); err != nil {
		return view, err
	}
	if view.Homepage.ShowFeatures {
		if view.Features, err = s.store.ListFeatures(ctx); err != nil {
			return view, err
		}
	}
	if view.Homepage.ShowTestimonials {
		if view.Testimonials, err = s.store.ListTestimonials(ctx, 6); err != nil {
			return view, err
		}
	}
	if view.Homepage.ShowStatistics {
		if view.TotalUsage, err = s.store.TotalUsage(ctx); err != nil {
			return view, err
		}
	}

	s.homeCache.Set(homeCacheKey, view)
	return view, nil
}

// render executes a page template, logging failures.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	s.renderStatus(w, r, http.StatusOK, name, data)
}

func (s *Server) renderStatus(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution failed", "error", err, "template", name)
	}
}

func (s *Server) renderNotFound(w http.ResponseWriter, r *http.Request) {
	s.renderStatus(w, r, http.StatusNotFound, "404.html", nil)
}
