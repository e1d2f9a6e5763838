package httpx

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"menu-kiosk/internal/cart"
	"menu-kiosk/internal/catalog"
	"menu-kiosk/internal/orders"
)

// KioskHandler serves the customer ordering flow: browse the menu, build
// a session cart, confirm, and show the receipt.
type KioskHandler struct {
	Catalog *catalog.Repo
	Carts   *cart.Store
	Orders  *orders.Service
	Redis   *redis.Client
	Render  *Renderer
}

func (h *KioskHandler) Register(r *chi.Mux) {
	r.Get("/order", h.menu)
	r.Get("/order/cart", h.viewCart)
	r.Get("/order/{category}", h.menu)
	r.Post("/order/add/{id}", h.addToCart)
	r.Post("/order/update/{id}", h.updateCart)
	r.Post("/order/remove/{id}", h.removeFromCart)
	r.Post("/order/confirm", h.confirmOrder)
}

type menuPage struct {
	Flash      *Flash
	Categories []catalog.Category
	Selected   *catalog.Category
	Items      []catalog.MenuItem
	CartCount  int
}

func (h *KioskHandler) menu(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()
	session := sessionID(w, r)

	cats, err := h.Catalog.Categories(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page := menuPage{
		Flash:      popFlash(ctx, h.Redis, session),
		Categories: cats,
	}
	if raw := chi.URLParam(r, "category"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		c, err := h.Catalog.Category(ctx, id)
		if errors.Is(err, catalog.ErrNotFound) {
			http.NotFound(w, r)
			return
		} else if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		page.Selected = &c
	} else if len(cats) > 0 {
		page.Selected = &cats[0]
	}

	if page.Selected != nil {
		page.Items, err = h.Catalog.AvailableByCategory(ctx, page.Selected.ID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	if c, err := h.Carts.Load(ctx, session); err == nil {
		for _, l := range c.Lines {
			page.CartCount += l.Quantity
		}
	}

	h.Render.Render(w, "kiosk_menu", page)
}

type cartPage struct {
	Flash *Flash
	Cart  *cart.Cart
}

func (h *KioskHandler) viewCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()
	session := sessionID(w, r)

	c, err := h.Carts.Load(ctx, session)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.Render.Render(w, "kiosk_cart", cartPage{
		Flash: popFlash(ctx, h.Redis, session),
		Cart:  c,
	})
}

func (h *KioskHandler) addToCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()
	session := sessionID(w, r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.flashAndBack(w, r, session, "error", "Unknown menu item.")
		return
	}
	item, err := h.Catalog.MenuItem(ctx, id)
	if errors.Is(err, catalog.ErrNotFound) {
		h.flashAndBack(w, r, session, "error", "Unknown menu item.")
		return
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	c, err := h.Carts.Load(ctx, session)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	c.Add(item.ID, item.Name, item.Price, item.Image)
	if err := h.Carts.Save(ctx, session, c); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.flashAndBack(w, r, session, "success", item.Name+" added to cart.")
}

func (h *KioskHandler) updateCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()
	session := sessionID(w, r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.flashCart(w, r, session, "error", "Item not found in cart.")
		return
	}
	qty, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		h.flashCart(w, r, session, "error", "Quantity must be a number.")
		return
	}

	c, err := h.Carts.Load(ctx, session)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	switch err := c.Update(id, qty); {
	case errors.Is(err, cart.ErrLineNotFound):
		h.flashCart(w, r, session, "error", "Item not found in cart.")
		return
	case errors.Is(err, cart.ErrBadQuantity):
		h.flashCart(w, r, session, "error", "Quantity must be at least 1.")
		return
	}
	if err := h.Carts.Save(ctx, session, c); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.flashCart(w, r, session, "success", "Cart updated.")
}

func (h *KioskHandler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()
	session := sessionID(w, r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.flashCart(w, r, session, "error", "Item not found in cart.")
		return
	}
	c, err := h.Carts.Load(ctx, session)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := c.Remove(id); errors.Is(err, cart.ErrLineNotFound) {
		h.flashCart(w, r, session, "error", "Item not found in cart.")
		return
	}
	if err := h.Carts.Save(ctx, session, c); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.flashCart(w, r, session, "success", "Item removed from cart.")
}

type confirmPage struct {
	Order      *orders.Order
	ReceiptURL string
}

func (h *KioskHandler) confirmOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()
	session := sessionID(w, r)

	c, err := h.Carts.Load(ctx, session)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	order, err := h.Orders.Confirm(ctx, c.Lines)
	if errors.Is(err, orders.ErrEmptyCart) {
		setFlash(ctx, h.Redis, session, "error", "Cart is empty.")
		http.Redirect(w, r, "/order", http.StatusSeeOther)
		return
	} else if err != nil {
		setFlash(ctx, h.Redis, session, "error", "Could not confirm your order. Please try again.")
		http.Redirect(w, r, "/order/cart", http.StatusSeeOther)
		return
	}

	if err := h.Carts.Clear(ctx, session); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page := confirmPage{Order: order}
	if order.QRCode != "" {
		page.ReceiptURL = "/storage/" + order.QRCode
	}
	h.Render.Render(w, "kiosk_confirm", page)
}

func (h *KioskHandler) flashAndBack(w http.ResponseWriter, r *http.Request, session, level, msg string) {
	setFlash(r.Context(), h.Redis, session, level, msg)
	back := r.Referer()
	if back == "" {
		back = "/order"
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (h *KioskHandler) flashCart(w http.ResponseWriter, r *http.Request, session, level, msg string) {
	setFlash(r.Context(), h.Redis, session, level, msg)
	http.Redirect(w, r, "/order/cart", http.StatusSeeOther)
}

func reqCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 5*time.Second)
}
