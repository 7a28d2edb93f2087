package httpapi

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/TemirB/rental-cart/internal/application/service"
	"github.com/TemirB/rental-cart/internal/cart"
	"github.com/TemirB/rental-cart/internal/domain"
	"github.com/TemirB/rental-cart/internal/observability"
)

//go:generate mockgen -source internal/httpapi/httpapi.go -destination=internal/httpapi/httpapi_mock_test.go -package=httpapi

//go:embed templates/*
var templateFS embed.FS

type CartService interface {
	View(ctx context.Context, session string) (cart.View, error)
	AddItem(ctx context.Context, session string, item domain.CartItem) (cart.View, error)
	ToggleSelect(ctx context.Context, session, itemID string, on bool) (cart.View, error)
	ChangeQuantity(ctx context.Context, session, itemID string, delta int) (cart.View, error)
	RemoveItem(ctx context.Context, session, itemID string) (cart.View, error)
	ClearCart(ctx context.Context, session string, confirmed bool) (cart.View, error)
	SelectAll(ctx context.Context, session string, on bool) (cart.View, error)
	Checkout(ctx context.Context, session string) (service.Result, error)
}

type Server struct {
	service   CartService
	router    chi.Router
	templates *template.Template
	logger    *zap.Logger
	metrics   observability.Metrics
}

func New(service CartService, logger *zap.Logger, metrics observability.Metrics) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/cart.gohtml")
	if err != nil {
		return nil, err
	}
	s := &Server{
		service:   service,
		router:    chi.NewRouter(),
		templates: tmpl,
		logger:    logger,
		metrics:   metrics,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.router
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(ServerTimingApp(s.metrics))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(Session)

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/cart", http.StatusFound)
		})
		r.Get("/cart", s.cartPage)
		r.Post("/cart", s.cartAction)

		r.Route("/api/cart", func(r chi.Router) {
			r.Get("/", s.getCart)
			r.Delete("/", s.clearCart)
			r.Post("/items", s.addItem)
			r.Post("/items/{id}/select", s.selectItem)
			r.Post("/items/{id}/quantity", s.changeQuantity)
			r.Delete("/items/{id}", s.removeItem)
			r.Post("/select-all", s.selectAll)
			r.Post("/checkout", s.checkout)
		})
	})
}

func (s *Server) cartPage(w http.ResponseWriter, r *http.Request) {
	view, err := s.service.View(r.Context(), SessionID(r.Context()))
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := s.templates.ExecuteTemplate(w, "cart.gohtml", view); err != nil {
		s.logger.Error("Error while rendering cart page", zap.Error(err))
	}
}

// cartAction is the single endpoint every control on the cart page posts to.
func (s *Server) cartAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	ctx := r.Context()
	session := SessionID(ctx)
	id := r.PostForm.Get("id")

	var err error
	switch action := r.PostForm.Get("action"); action {
	case "toggle":
		_, err = s.service.ToggleSelect(ctx, session, id, formBool(r, "on"))
	case "increase":
		_, err = s.service.ChangeQuantity(ctx, session, id, 1)
	case "decrease":
		_, err = s.service.ChangeQuantity(ctx, session, id, -1)
	case "remove":
		_, err = s.service.RemoveItem(ctx, session, id)
	case "clear":
		_, err = s.service.ClearCart(ctx, session, formBool(r, "confirm"))
	case "select-all":
		_, err = s.service.SelectAll(ctx, session, formBool(r, "on"))
	case "checkout":
		var res service.Result
		res, err = s.service.Checkout(ctx, session)
		if err == nil && res.Redirect != "" {
			http.Redirect(w, r, res.Redirect, http.StatusSeeOther)
			return
		}
	default:
		http.Error(w, "unknown action "+strconv.Quote(action), http.StatusBadRequest)
		return
	}
	if err != nil {
		s.fail(w, err)
		return
	}
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	view, err := s.service.View(r.Context(), SessionID(r.Context()))
	s.respond(w, http.StatusOK, view, err)
}

func (s *Server) addItem(w http.ResponseWriter, r *http.Request) {
	var item domain.CartItem
	if !s.decode(w, r, &item) {
		return
	}
	if err := item.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	view, err := s.service.AddItem(r.Context(), SessionID(r.Context()), item)
	s.respond(w, http.StatusCreated, view, err)
}

type selectRequest struct {
	Selected bool `json:"selected"`
}

type quantityRequest struct {
	Delta int `json:"delta"`
}

func (s *Server) selectItem(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if !s.decode(w, r, &req) {
		return
	}
	view, err := s.service.ToggleSelect(r.Context(), SessionID(r.Context()), chi.URLParam(r, "id"), req.Selected)
	s.respond(w, http.StatusOK, view, err)
}

func (s *Server) changeQuantity(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Delta == 0 {
		http.Error(w, "delta must be non-zero", http.StatusBadRequest)
		return
	}
	view, err := s.service.ChangeQuantity(r.Context(), SessionID(r.Context()), chi.URLParam(r, "id"), req.Delta)
	s.respond(w, http.StatusOK, view, err)
}

func (s *Server) removeItem(w http.ResponseWriter, r *http.Request) {
	view, err := s.service.RemoveItem(r.Context(), SessionID(r.Context()), chi.URLParam(r, "id"))
	s.respond(w, http.StatusOK, view, err)
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	if !confirmed {
		http.Error(w, domain.ErrConfirmationRequired.Error(), http.StatusBadRequest)
		return
	}
	view, err := s.service.ClearCart(r.Context(), SessionID(r.Context()), true)
	s.respond(w, http.StatusOK, view, err)
}

func (s *Server) selectAll(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if !s.decode(w, r, &req) {
		return
	}
	view, err := s.service.SelectAll(r.Context(), SessionID(r.Context()), req.Selected)
	s.respond(w, http.StatusOK, view, err)
}

type checkoutResponse struct {
	Redirect string    `json:"redirect,omitempty"`
	View     cart.View `json:"view"`
}

func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	res, err := s.service.Checkout(r.Context(), SessionID(r.Context()))
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, checkoutResponse{Redirect: res.Redirect, View: res.View})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return false
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		s.logger.Warn("Error while decoding JSON", zap.Error(err))
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) respond(w http.ResponseWriter, status int, view cart.View, err error) {
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, status, view)
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidItem) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "cart unavailable", http.StatusInternalServerError)
}

func formBool(r *http.Request, key string) bool {
	switch strings.ToLower(r.PostForm.Get(key)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Handler() http.Handler { return s.router }
