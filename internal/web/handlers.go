package web

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"sync"

	"github.com/hpungsan/pcbuild/internal/build"
	"github.com/hpungsan/pcbuild/internal/config"
	"github.com/hpungsan/pcbuild/internal/errors"
	"github.com/hpungsan/pcbuild/internal/ops"
)

// Handlers contains HTTP route handlers for the web UI. mu guards the
// session and the pending notice for the duration of one request.
type Handlers struct {
	mu       sync.Mutex
	sess     *ops.Session
	cfg      *config.Config
	renderer *Renderer
	logger   *log.Logger
	notice   *ops.Notice
}

// SelectRequest is the JSON body of POST /api/select.
type SelectRequest struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Price    *int   `json:"price,omitempty"`
}

func (h *Handlers) currentView() ops.View {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sess.View()
}

// pageData builds the shared layout data and consumes the pending notice.
// Callers hold mu.
func (h *Handlers) pageData(title string) PageData {
	current := h.sess.View()
	views := ops.Views()
	tabs := make([]Tab, len(views))
	for i, v := range views {
		tabs[i] = Tab{View: v, Label: v.Label(), Active: v == current}
	}
	pd := PageData{
		Title:   title,
		Version: h.renderer.version,
		Nav:     current,
		Tabs:    tabs,
		Summary: h.sess.Summary(),
		Notice:  h.notice,
	}
	h.notice = nil
	return pd
}

// HandleView handles GET /build/{view}: a category tab, the summary, or
// the compatibility report.
func (h *Handlers) HandleView(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	out, err := h.sess.SwitchView(r.PathValue("view"))
	if err != nil {
		h.renderer.renderError(w, r, errors.NewNotFound(r.URL.Path))
		return
	}

	switch out.View {
	case ops.ViewSummary:
		st := h.sess.State()
		data := SummaryPageData{
			PageData:     h.pageData(out.View.Label()),
			RenderedHTML: renderMarkdown(build.Markdown(st)),
		}
		if !st.IsEmpty() {
			data.ShareText = build.ShareText(st)
		}
		h.renderer.renderPage(w, r, "summary", data)

	case ops.ViewCompatibility:
		h.renderer.renderPage(w, r, "compat", CompatPageData{
			PageData: h.pageData(out.View.Label()),
			Check:    *out.Check,
		})

	default:
		cat, _ := out.View.Category()
		list, err := h.sess.ListCatalog(string(cat))
		if err != nil {
			h.renderer.renderError(w, r, err)
			return
		}
		h.renderer.renderPage(w, r, "builder", BuilderPageData{
			PageData: h.pageData(out.View.Label()),
			Group:    list.Groups[0],
		})
	}
}

// HandleSelect handles POST /build/select from the component cards.
func (h *Handlers) HandleSelect(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	result, err := h.sess.Select(r.FormValue("category"), r.FormValue("name"))
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, result)
		return
	}

	h.notice = &result.Notice
	http.Redirect(w, r, "/build/"+url.PathEscape(string(result.Selection.Category)), http.StatusSeeOther)
}

// HandleSave handles POST /build/save.
func (h *Handlers) HandleSave(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := h.sess.Save(r.Context())
	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, n)
		return
	}
	h.notice = &n
	http.Redirect(w, r, "/build/"+string(ops.ViewSummary), http.StatusSeeOther)
}

// HandleLoad handles POST /build/load.
func (h *Handlers) HandleLoad(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	out, ok := h.sess.Load(r.Context())
	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, map[string]any{"loaded": ok, "build": out})
		return
	}
	if ok {
		h.notice = &out.Notice
	}
	http.Redirect(w, r, "/build/"+string(ops.ViewSummary), http.StatusSeeOther)
}

// HandleReset handles POST /build/reset.
func (h *Handlers) HandleReset(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.sess.Reset()
	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, h.sess.Summary())
		return
	}
	http.Redirect(w, r, "/build/"+string(h.sess.View()), http.StatusSeeOther)
}

// HandleShareText handles GET /build/share.txt: the plain-text summary
// used by the browser share tiers.
func (h *Handlers) HandleShareText(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	st := h.sess.State()
	if st.IsEmpty() {
		h.renderer.renderError(w, r, errors.NewEmptyBuild("share"))
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(build.ShareText(st)))
}

// HandleAPIBuild handles GET /api/build.
func (h *Handlers) HandleAPIBuild(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	renderJSON(w, http.StatusOK, h.sess.Summary())
}

// HandleAPICheck handles GET /api/check.
func (h *Handlers) HandleAPICheck(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	renderJSON(w, http.StatusOK, h.sess.Check())
}

// HandleAPISelect handles POST /api/select with a JSON body.
func (h *Handlers) HandleAPISelect(w http.ResponseWriter, r *http.Request) {
	// API clients always get JSON errors.
	r.Header.Set("Accept", "application/json")

	var req SelectRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	if err := dec.Decode(&req); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid JSON body"))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	var (
		result *ops.SelectOutput
		err    error
	)
	if req.Price != nil {
		result, err = h.sess.SelectCustom(req.Category, req.Name, *req.Price)
	} else {
		result, err = h.sess.Select(req.Category, req.Name)
	}
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, result)
}
