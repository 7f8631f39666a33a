package web

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/landing/internal/common"
	"github.com/dmitrijs2005/landing/internal/httpx"
	"github.com/dmitrijs2005/landing/internal/server/abtest"
	"github.com/dmitrijs2005/landing/internal/server/counter"
	"github.com/dmitrijs2005/landing/internal/server/models"
	"github.com/dmitrijs2005/landing/internal/server/page"
	"github.com/dmitrijs2005/landing/internal/server/security"
)

const (
	pageDescription = "Insanely fast landing pages, shipped at the edge."
	defaultFlagKey  = "feature:beta"
)

// origin reconstructs the external origin of the request, trusting the
// proxy's X-Forwarded-Proto when the connection itself is not TLS.
func origin(r *http.Request) string {
	scheme := "https"
	if r.TLS == nil && r.Header.Get("X-Forwarded-Proto") != "https" {
		scheme = "http"
	}
	return scheme + "://" + r.Host
}

// clientIP picks the best available client address for bot verification.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("CF-Connecting-IP"); ip != "" {
		return ip
	}
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func setPublicCache(h http.Header, seconds int) {
	h.Set("Cache-Control", fmt.Sprintf("public, max-age=%d, s-maxage=%d", seconds, seconds))
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {

	nonce, err := security.NewNonce()
	if err != nil {
		s.logger.Error(r.Context(), "nonce error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	existing := ""
	if c, err := r.Cookie(abtest.CookieName); err == nil {
		existing = c.Value
	}
	variant, isNew := abtest.Assign(existing)
	if isNew {
		http.SetCookie(w, abtest.NewCookie(variant))
	}

	csp := security.BuildCSP(nonce, s.config.AnalyticsToken != "", s.config.TurnstileSiteKey != "")
	w.Header().Set("Content-Security-Policy", csp)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	data := page.Data{
		Title:            s.config.SiteTitle,
		Description:      pageDescription,
		URL:              origin(r) + "/",
		Nonce:            nonce,
		Variant:          variant,
		AnalyticsToken:   s.config.AnalyticsToken,
		TurnstileSiteKey: s.config.TurnstileSiteKey,
		Year:             time.Now().Year(),
	}
	if err := page.Render(w, data); err != nil {
		s.logger.Error(r.Context(), "render error", "error", err)
	}
}

func (s *Server) handleVisits(w http.ResponseWriter, r *http.Request) {
	count, err := s.visits.Increment(r.Context(), counter.GlobalCounter)
	if err != nil {
		s.logger.Error(r.Context(), "visit counter error", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"count": count})
}

func (s *Server) handleFlagGet(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		key = defaultFlagKey
	}

	value, ok, err := s.flags.Get(r.Context(), key)
	if err != nil {
		s.logger.Error(r.Context(), "flag get error", "key", key, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := struct {
		Key   string  `json:"key"`
		Value *string `json:"value"`
	}{Key: key}
	if ok {
		resp.Value = &value
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

func (s *Server) handleFlagPut(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := httpx.ReadJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Key == "" {
		httpx.WriteError(w, http.StatusBadRequest, common.ErrMissingKey.Error())
		return
	}

	if err := s.flags.Put(r.Context(), req.Key, req.Value); err != nil {
		s.logger.Error(r.Context(), "flag put error", "key", req.Key, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "key": req.Key, "value": req.Value})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Mobile    string `json:"mobile"`
		OptEmail  bool   `json:"opt_email"`
		OptSMS    bool   `json:"opt_sms"`
		Token     string `json:"turnstileToken"`
	}
	if err := httpx.ReadJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	sub := &models.Subscriber{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Mobile:    req.Mobile,
		OptEmail:  req.OptEmail,
		OptSMS:    req.OptSMS,
	}

	err := s.signup.Signup(r.Context(), sub, req.Token, clientIP(r))
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
	case errors.Is(err, common.ErrInvalidEmail),
		errors.Is(err, common.ErrFirstNameRequired),
		errors.Is(err, common.ErrVerificationFailed):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error(r.Context(), "signup error", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) handleObjectPut(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Key     string `json:"key"`
		Content string `json:"content"`
	}
	if err := httpx.ReadJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Key == "" {
		httpx.WriteError(w, http.StatusBadRequest, common.ErrMissingKey.Error())
		return
	}

	if err := s.objects.Put(r.Context(), req.Key, []byte(req.Content)); err != nil {
		s.logger.Error(r.Context(), "object put error", "key", req.Key, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "key": req.Key})
}

func (s *Server) handleRobots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, page.RobotsTxt(origin(r)))
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	setPublicCache(w.Header(), 3600)
	io.WriteString(w, page.SitemapXML(origin(r), time.Now()))
}

func (s *Server) handleFaviconSVG(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	setPublicCache(w.Header(), 86400)
	io.WriteString(w, page.FaviconSVG())
}

func (s *Server) handleOGCard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	setPublicCache(w.Header(), 7200)
	io.WriteString(w, page.OGSVG(s.config.SiteTitle))
}

// handleNotFound keeps unknown paths on the hardened plain-text path.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	io.WriteString(w, "Not found")
}
