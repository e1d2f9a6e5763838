package httpx

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"menu-kiosk/internal/catalog"
	"menu-kiosk/internal/storage"
)

const maxImageBytes = 4 << 20

// AdminHandler serves the menu-management CRUD surface.
type AdminHandler struct {
	Catalog *catalog.Repo
	Files   *storage.Disk
	Redis   *redis.Client
	Render  *Renderer
}

func (h *AdminHandler) Register(r *chi.Mux) {
	r.Get("/", h.index)
	r.Get("/menu_items", h.index)
	r.Get("/menu_items/create", h.createForm)
	r.Post("/menu_items", h.store)
	r.Get("/menu_items/{id}", h.show)
	r.Get("/menu_items/{id}/edit", h.editForm)
	r.Post("/menu_items/{id}", h.update)
	r.Post("/menu_items/{id}/delete", h.destroy)
}

type adminIndexPage struct {
	Flash      *Flash
	Items      []catalog.MenuItem
	Categories []catalog.Category
	Filter     catalog.Filter
	Page       int
	TotalPages int
}

func (h *AdminHandler) index(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()
	session := sessionID(w, r)

	var f catalog.Filter
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			f.CategoryID = &id
		}
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		st := catalog.Status(raw)
		if st.Valid() {
			f.Status = &st
		}
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	items, total, err := h.Catalog.ListMenuItems(ctx, f, page)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	cats, err := h.Catalog.Categories(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	totalPages := (total + catalog.PageSize - 1) / catalog.PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	h.Render.Render(w, "admin_index", adminIndexPage{
		Flash:      popFlash(ctx, h.Redis, session),
		Items:      items,
		Categories: cats,
		Filter:     f,
		Page:       page,
		TotalPages: totalPages,
	})
}

type adminFormPage struct {
	Flash      *Flash
	Categories []catalog.Category
	Item       *catalog.MenuItem // nil on create
}

func (h *AdminHandler) createForm(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()
	session := sessionID(w, r)

	cats, err := h.Catalog.Categories(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.Render.Render(w, "admin_form", adminFormPage{
		Flash:      popFlash(ctx, h.Redis, session),
		Categories: cats,
	})
}

func (h *AdminHandler) store(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()
	session := sessionID(w, r)

	in, err := h.parseMenuItemForm(r)
	if err != nil {
		setFlash(ctx, h.Redis, session, "error", err.Error())
		http.Redirect(w, r, "/menu_items/create", http.StatusSeeOther)
		return
	}
	if _, err := h.Catalog.CreateMenuItem(ctx, in); err != nil {
		setFlash(ctx, h.Redis, session, "error", err.Error())
		http.Redirect(w, r, "/menu_items/create", http.StatusSeeOther)
		return
	}
	setFlash(ctx, h.Redis, session, "success", "Menu item created successfully.")
	http.Redirect(w, r, "/menu_items", http.StatusSeeOther)
}

func (h *AdminHandler) show(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()
	session := sessionID(w, r)

	item, ok := h.loadItem(w, r)
	if !ok {
		return
	}
	h.Render.Render(w, "admin_show", adminFormPage{
		Flash: popFlash(ctx, h.Redis, session),
		Item:  item,
	})
}

func (h *AdminHandler) editForm(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()
	session := sessionID(w, r)

	item, ok := h.loadItem(w, r)
	if !ok {
		return
	}
	cats, err := h.Catalog.Categories(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.Render.Render(w, "admin_form", adminFormPage{
		Flash:      popFlash(ctx, h.Redis, session),
		Categories: cats,
		Item:       item,
	})
}

func (h *AdminHandler) update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()
	session := sessionID(w, r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	in, err := h.parseMenuItemForm(r)
	if err != nil {
		setFlash(ctx, h.Redis, session, "error", err.Error())
		http.Redirect(w, r, fmt.Sprintf("/menu_items/%d/edit", id), http.StatusSeeOther)
		return
	}
	if err := h.Catalog.UpdateMenuItem(ctx, id, in); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		setFlash(ctx, h.Redis, session, "error", err.Error())
		http.Redirect(w, r, fmt.Sprintf("/menu_items/%d/edit", id), http.StatusSeeOther)
		return
	}
	setFlash(ctx, h.Redis, session, "success", "Menu item updated successfully.")
	http.Redirect(w, r, "/menu_items", http.StatusSeeOther)
}

func (h *AdminHandler) destroy(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()
	session := sessionID(w, r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := h.Catalog.DeleteMenuItem(ctx, id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		setFlash(ctx, h.Redis, session, "error", err.Error())
		http.Redirect(w, r, "/menu_items", http.StatusSeeOther)
		return
	}
	setFlash(ctx, h.Redis, session, "success", "Menu item deleted successfully.")
	http.Redirect(w, r, "/menu_items", http.StatusSeeOther)
}

func (h *AdminHandler) loadItem(w http.ResponseWriter, r *http.Request) (*catalog.MenuItem, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return nil, false
	}
	item, err := h.Catalog.MenuItem(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		http.NotFound(w, r)
		return nil, false
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return &item, true
}

// parseMenuItemForm reads the multipart admin form, storing an uploaded
// image under menu_images/ when present.
func (h *AdminHandler) parseMenuItemForm(r *http.Request) (catalog.MenuItemInput, error) {
	var in catalog.MenuItemInput
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		return in, fmt.Errorf("parse form: %w", err)
	}

	in.Name = strings.TrimSpace(r.FormValue("name"))
	in.Status = catalog.Status(r.FormValue("status"))

	price, err := decimal.NewFromString(r.FormValue("price"))
	if err != nil {
		return in, errors.New("price must be a number")
	}
	in.Price = price

	if raw := r.FormValue("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return in, errors.New("invalid category")
		}
		in.CategoryID = &id
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		ext := strings.ToLower(filepath.Ext(header.Filename))
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			return in, errors.New("image must be jpg, jpeg or png")
		}
		data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
		if err != nil {
			return in, fmt.Errorf("read image: %w", err)
		}
		if len(data) > maxImageBytes {
			return in, errors.New("image must be 4MB or less")
		}
		path, err := h.Files.Put("menu_images/"+uuid.NewString()+ext, data)
		if err != nil {
			return in, fmt.Errorf("store image: %w", err)
		}
		in.Image = path
	} else if !errors.Is(err, http.ErrMissingFile) {
		return in, fmt.Errorf("read image: %w", err)
	}

	return in, in.Validate()
}
