// Package http is the REST surface the presentation layer consumes: the live
// cart with totals, the four cart mutations, drawer state, auth, catalog and
// orders.
package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/chandnsingh/groceryfrontend/internal/cart"
	"github.com/chandnsingh/groceryfrontend/internal/domain"
	"github.com/chandnsingh/groceryfrontend/internal/drawer"
	"github.com/chandnsingh/groceryfrontend/internal/pricing"
	"github.com/chandnsingh/groceryfrontend/internal/remote"
	"github.com/chandnsingh/groceryfrontend/internal/session"
)

type Handler struct {
	engine  *cart.Engine
	drawer  *drawer.Notifier
	session session.TokenStore
	api     *remote.Client
	log     *zap.Logger
	timeout time.Duration
}

func NewHandler(engine *cart.Engine, dr *drawer.Notifier, sess session.TokenStore, api *remote.Client, log *zap.Logger, timeout time.Duration) *Handler {
	return &Handler{
		engine:  engine,
		drawer:  dr,
		session: sess,
		api:     api,
		log:     log,
		timeout: timeout,
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(RequestIDMiddleware)

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Post("/items", h.AddItem)
		r.Post("/items/{productID}/decrease", h.DecreaseItem)
		r.Delete("/items/{productID}", h.RemoveItem)
		r.Put("/clear", h.ClearCart)
		r.Get("/drawer", h.DrawerState)
		r.Post("/drawer/dismiss", h.DismissDrawer)
	})
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/register", h.Register)
		r.Post("/logout", h.Logout)
	})
	r.Get("/products", h.ListProducts)
	r.Get("/products/{productID}", h.GetProduct)
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.PlaceOrder)
		r.Get("/my-orders", h.MyOrders)
		r.Get("/{orderID}", h.GetOrder)
	})
	return otelhttp.NewHandler(r, "storefront")
}

type cartResponse struct {
	Items         []domain.LineItem `json:"items"`
	MRPTotal      float64           `json:"mrpTotal"`
	DiscountTotal float64           `json:"discountTotal"`
	Total         float64           `json:"total"`
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	items := h.engine.Items()
	totals := h.engine.Totals()
	respondJSON(w, http.StatusOK, cartResponse{
		Items:         items,
		MRPTotal:      pricing.Round2(totals.MRP),
		DiscountTotal: pricing.Round2(totals.Discount),
		Total:         pricing.Round2(totals.Payable()),
	})
}

type addItemRequest struct {
	Product      domain.Product `json:"product"`
	SelectedUnit string         `json:"selectedUnit,omitempty"`
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Product.ID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product", "product _id is required")
		return
	}

	if err := h.engine.AddItem(ctx, req.Product, req.SelectedUnit); err != nil {
		handleCartError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, h.engine.Items())
}

func (h *Handler) DecreaseItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID := chi.URLParam(r, "productID")
	unit := r.URL.Query().Get("unit")
	if err := h.engine.DecreaseItem(ctx, productID, unit); err != nil {
		handleCartError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.engine.Items())
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID := chi.URLParam(r, "productID")
	unit := r.URL.Query().Get("unit")
	if err := h.engine.RemoveItem(ctx, productID, unit); err != nil {
		handleCartError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.engine.Items())
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.engine.Clear(ctx); err != nil {
		handleCartError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.engine.Items())
}

type drawerResponse struct {
	Visible   bool       `json:"visible"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func (h *Handler) DrawerState(w http.ResponseWriter, r *http.Request) {
	resp := drawerResponse{Visible: h.drawer.Visible()}
	if at, ok := h.drawer.ExpiresAt(); ok {
		resp.ExpiresAt = &at
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) DismissDrawer(w http.ResponseWriter, r *http.Request) {
	h.drawer.Dismiss()
	w.WriteHeader(http.StatusNoContent)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	user, token, err := h.api.Login(ctx, req.Email, req.Password)
	if err != nil {
		handleCartError(w, err)
		return
	}
	if err := h.session.SaveLogin(ctx, user, token); err != nil {
		h.log.Error("persist session failed", zap.String("request_id", RequestID(ctx)), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "could not persist session")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"user": user, "token": token})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	user, token, err := h.api.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		handleCartError(w, err)
		return
	}
	if err := h.session.SaveLogin(ctx, user, token); err != nil {
		h.log.Error("persist session failed", zap.String("request_id", RequestID(ctx)), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "could not persist session")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{"user": user, "token": token})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.session.Clear(ctx); err != nil {
		h.log.Error("clear session failed", zap.String("request_id", RequestID(ctx)), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "could not clear session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	products, err := h.api.ListProducts(ctx)
	if err != nil {
		handleCartError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	product, err := h.api.GetProduct(ctx, chi.URLParam(r, "productID"))
	if err != nil {
		handleCartError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

type placeOrderRequest struct {
	Customer domain.Customer `json:"customer"`
}

// PlaceOrder submits the current basket with the customer's delivery details.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	token, err := h.session.Token(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "sign in to place an order")
		return
	}
	items := h.engine.Items()
	if len(items) == 0 {
		respondError(w, http.StatusBadRequest, "empty_cart", "cart is empty")
		return
	}

	order := domain.Order{Customer: req.Customer, TotalAmount: pricing.Round2(h.engine.Totals().Payable())}
	for _, li := range items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: li.ProductID(),
			Name:      li.Product.Name,
			Unit:      li.SelectedUnit,
			Price:     li.Price,
			Quantity:  li.Quantity,
		})
	}

	placed, err := h.api.PlaceOrder(ctx, token, order)
	if err != nil {
		handleCartError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, placed)
}

func (h *Handler) MyOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	token, err := h.session.Token(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "sign in to view orders")
		return
	}
	orders, err := h.api.MyOrders(ctx, token)
	if err != nil {
		handleCartError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	token, err := h.session.Token(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "sign in to view orders")
		return
	}
	order, err := h.api.GetOrder(ctx, token, chi.URLParam(r, "orderID"))
	if err != nil {
		handleCartError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}
