package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/inex/ixp-console/internal/platform/timeouts"
	"github.com/inex/ixp-console/internal/services/console/alert"
	"github.com/inex/ixp-console/internal/services/console/pagerender"
	"github.com/inex/ixp-console/internal/services/console/routepath"
	"github.com/inex/ixp-console/internal/services/console/storage"
	"github.com/inex/ixp-console/internal/services/console/templates"
	"github.com/inex/ixp-console/internal/services/console/viewfmt"
)

const (
	// asMacroPerLine caps the ASNs shown per line in the interfaces table.
	asMacroPerLine = 6
	// uploadField is the multipart field carrying the uploaded file.
	uploadField = "file"
	// uploadMemory is how much of a multipart body is buffered in memory
	// before spilling to temporary files.
	uploadMemory = 1 << 20
	// uploadFormOverhead leaves room for multipart framing around the file.
	uploadFormOverhead = 64 << 10
)

// Handler routes console requests.
type Handler struct {
	store     storage.InterfaceStore
	formatter *viewfmt.Formatter
	renderer  *templates.Renderer
}

// interfaceRow is one line of the interfaces table.
type interfaceRow struct {
	storage.VlanInterface
	NagiosURL string
}

// NewHandler builds the console HTTP handler.
func NewHandler(store storage.InterfaceStore, formatter *viewfmt.Formatter, renderer *templates.Renderer) (http.Handler, error) {
	if store == nil {
		return nil, errors.New("interface store is required")
	}
	if formatter == nil {
		formatter = viewfmt.NewFormatter()
	}
	if renderer == nil {
		var err error
		renderer, err = templates.NewRenderer(formatter)
		if err != nil {
			return nil, fmt.Errorf("init renderer: %w", err)
		}
	}
	h := &Handler{store: store, formatter: formatter, renderer: renderer}
	return h.routes(), nil
}

// routes wires the HTTP routes for the console handler.
func (h *Handler) routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(routepath.Root, http.HandlerFunc(h.handleRoot))
	mux.Handle(routepath.Healthz, http.HandlerFunc(h.handleHealthz))
	mux.Handle(routepath.Interfaces, http.HandlerFunc(h.handleInterfacesPage))
	mux.Handle(routepath.InterfacesPrefix, http.HandlerFunc(h.handleInterfaceRoutes))
	mux.Handle(routepath.Upload, http.HandlerFunc(h.handleUpload))
	return mux
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Root {
		http.NotFound(w, r)
		return
	}
	if !allowMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	http.Redirect(w, r, routepath.Interfaces, http.StatusFound)
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok\n")
}

func (h *Handler) handleInterfacesPage(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Request)
	defer cancel()

	ifaces, err := h.store.ListInterfaces(ctx)
	if err != nil {
		log.Printf("list interfaces: %v", err)
		http.Error(w, "member interfaces unavailable", http.StatusServiceUnavailable)
		return
	}
	rows := make([]interfaceRow, 0, len(ifaces))
	for _, iface := range ifaces {
		rows = append(rows, interfaceRow{VlanInterface: iface, NagiosURL: routepath.InterfaceNagios(iface.ID)})
	}

	alerts := alert.NewContainer(w, r)
	body := h.renderer.Page(templates.ViewInterfaces, map[string]any{
		"Interfaces": rows,
		"PerLine":    asMacroPerLine,
	}, alerts)
	if err := pagerender.WritePage(w, r, pagerender.Page{Title: "Interfaces", Body: body}); err != nil {
		log.Printf("render interfaces page: %v", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}

// handleInterfaceRoutes dispatches /interfaces/{id}/... paths.
func (h *Handler) handleInterfaceRoutes(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, routepath.InterfacesPrefix)
	rawID, suffix, found := strings.Cut(rest, "/")
	if !found || "/"+suffix != routepath.NagiosSuffix {
		http.NotFound(w, r)
		return
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		http.NotFound(w, r)
		return
	}
	h.handleInterfaceNagios(w, r, id)
}

func (h *Handler) handleInterfaceNagios(w http.ResponseWriter, r *http.Request, id int64) {
	if !allowMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Request)
	defer cancel()

	iface, err := h.store.GetInterface(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Printf("get interface %d: %v", id, err)
		http.Error(w, "member interface unavailable", http.StatusServiceUnavailable)
		return
	}
	err = pagerender.WriteText(w, http.StatusOK, func(out io.Writer) error {
		return h.renderer.NagiosHost(out, iface)
	})
	if err != nil {
		log.Printf("render nagios host %d: %v", id, err)
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.handleUploadPage(w, r)
	case http.MethodPost:
		h.handleUploadSubmit(w, r)
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleUploadPage(w http.ResponseWriter, r *http.Request) {
	alerts := alert.NewContainer(w, r)
	body := h.renderer.Page(templates.ViewUpload, map[string]any{"Action": routepath.Upload}, alerts)
	if err := pagerender.WritePage(w, r, pagerender.Page{Title: "Upload", Body: body}); err != nil {
		log.Printf("render upload page: %v", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}

// handleUploadSubmit checks an uploaded file against the upload limit and
// reports the outcome through an alert on the redirected form.
func (h *Handler) handleUploadSubmit(w http.ResponseWriter, r *http.Request) {
	limit := h.formatter.UploadLimitBytes()
	if limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limit+uploadFormOverhead)
	}
	defer http.Redirect(w, r, routepath.Upload, http.StatusSeeOther)

	if err := r.ParseMultipartForm(uploadMemory); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			alert.Add(w, r, h.tooLargeAlert())
		case errors.Is(err, http.ErrNotMultipart):
			alert.Add(w, r, alert.Warning("Choose a file to upload."))
		default:
			log.Printf("parse upload: %v", err)
			alert.Add(w, r, alert.Danger("The upload could not be read."))
		}
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Printf("remove upload temp files: %v", err)
		}
	}()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			log.Printf("read upload field: %v", err)
		}
		alert.Add(w, r, alert.Warning("Choose a file to upload."))
		return
	}
	_ = file.Close()

	if limit > 0 && header.Size > limit {
		alert.Add(w, r, h.tooLargeAlert())
		return
	}
	alert.Add(w, r, alert.Success(fmt.Sprintf("Received %s (%s).",
		header.Filename, h.formatter.ScaleBytes(float64(header.Size), viewfmt.DefaultDecimals))))
}

func (h *Handler) tooLargeAlert() alert.Alert {
	return alert.Danger("The file exceeds the maximum upload size of " + h.formatter.MaxFileUploadSize() + ".")
}

func allowMethod(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, method := range methods {
		if r.Method == method {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	return false
}
