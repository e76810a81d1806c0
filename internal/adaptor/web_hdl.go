package adaptor

import (
	"html/template"
	"io/fs"
	"net/http"

	"movie-booking/internal/dto/response"
	"movie-booking/internal/usecase"
	"movie-booking/web"

	"go.uber.org/zap"
)

// WebHandler renders the server-side pages. Presentation only; all logic
// stays in the usecase layer.
type WebHandler struct {
	movieService   usecase.MovieService
	bookingService usecase.BookingService
	tmpl           *template.Template
	static         http.Handler
	log            *zap.Logger
}

func NewWebHandler(movieService usecase.MovieService, bookingService usecase.BookingService, log *zap.Logger) (*WebHandler, error) {
	tmpl, err := template.ParseFS(web.FS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	staticFS, err := fs.Sub(web.FS, "static")
	if err != nil {
		return nil, err
	}

	return &WebHandler{
		movieService:   movieService,
		bookingService: bookingService,
		tmpl:           tmpl,
		static:         http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))),
		log:            log.With(zap.String("handler", "web")),
	}, nil
}

// Home handles GET /
func (h *WebHandler) Home(w http.ResponseWriter, r *http.Request) {
	movieCount, _ := h.movieService.MovieCount(r.Context())
	bookingCount, _ := h.bookingService.BookingCount(r.Context())

	h.render(w, "index", map[string]any{
		"Title":         "Home",
		"TotalMovies":   movieCount,
		"TotalBookings": bookingCount,
		"PricePerSeat":  h.bookingService.PricePerSeat(),
	})
}

// Movies handles GET /movies
func (h *WebHandler) Movies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.movieService.GetMovies(r.Context())
	if err != nil {
		h.renderError(w, err)
		return
	}

	h.render(w, "movies", map[string]any{
		"Title":  "Movies",
		"Movies": movies,
	})
}

// Booking handles GET /booking
func (h *WebHandler) Booking(w http.ResponseWriter, r *http.Request) {
	h.render(w, "booking", map[string]any{
		"Title": "Book Tickets",
	})
}

// MyBookings handles GET /my-bookings
func (h *WebHandler) MyBookings(w http.ResponseWriter, r *http.Request) {
	var (
		bookings []response.BookingResponse
		err      error
	)

	// Optional ?customer= filter, otherwise the whole ledger
	if customer := r.URL.Query().Get("customer"); customer != "" {
		bookings, err = h.bookingService.GetBookingsByCustomer(r.Context(), customer)
	} else {
		bookings, err = h.bookingService.GetBookings(r.Context())
	}
	if err != nil {
		h.renderError(w, err)
		return
	}

	h.render(w, "bookings", map[string]any{
		"Title":    "My Bookings",
		"Bookings": bookings,
	})
}

// Static serves /static/* assets
func (h *WebHandler) Static(w http.ResponseWriter, r *http.Request) {
	h.static.ServeHTTP(w, r)
}

func (h *WebHandler) render(w http.ResponseWriter, name string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		h.log.Error("Failed to render template",
			zap.Error(err),
			zap.String("template", name),
		)
	}
}

func (h *WebHandler) renderError(w http.ResponseWriter, err error) {
	h.log.Error("Page data lookup failed", zap.Error(err))
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
