package analysis

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cardiocare/cardiocare/internal/domain/patient"
)

// SessionCookie names the cookie carrying the session identifier.
const SessionCookie = "cardiocare_session"

type Handler struct {
	svc        *Service
	sessionTTL time.Duration
}

func NewHandler(svc *Service, sessionTTL time.Duration) *Handler {
	return &Handler{svc: svc, sessionTTL: sessionTTL}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/analyses", h.CreateAnalysis)
	api.GET("/analyses/current", h.CurrentAnalysis)
	api.GET("/sample-patients", h.SamplePatients)
}

// CreateAnalysis accepts a patient record, runs the analysis, and
// returns the rendered result view.
func (h *Handler) CreateAnalysis(c echo.Context) error {
	var rec patient.Record
	if err := c.Bind(&rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sessionID := h.sessionID(c)
	res, err := h.svc.Analyze(c.Request().Context(), sessionID, &rec)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, NewView(res))
}

// CurrentAnalysis returns the session's stored result view, if any.
func (h *Handler) CurrentAnalysis(c echo.Context) error {
	sessionID := h.sessionID(c)
	res, err := h.svc.Current(c.Request().Context(), sessionID)
	if errors.Is(err, ErrNoResult) {
		return echo.NewHTTPError(http.StatusNotFound, "no analysis result for this session")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, NewView(res))
}

// SamplePatients returns example records for prefill.
func (h *Handler) SamplePatients(c echo.Context) error {
	samples, err := h.svc.SamplePatients(c.Request().Context())
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, samples)
}

// mapError converts domain failures into HTTP responses. Validation
// errors carry the per-field list so the form can surface them inline;
// upstream failures map by error kind, never by message text.
func (h *Handler) mapError(c echo.Context, err error) error {
	var verr *patient.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	}

	if errors.Is(err, ErrAnalysisInFlight) {
		return echo.NewHTTPError(http.StatusConflict, ErrAnalysisInFlight.Error())
	}

	var cerr *ClientError
	if errors.As(err, &cerr) {
		switch cerr.Kind {
		case KindTimeout:
			return echo.NewHTTPError(http.StatusGatewayTimeout, cerr.Error())
		case KindAPI:
			return echo.NewHTTPError(http.StatusBadGateway, cerr.Error())
		}
	}

	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// sessionID reads the session cookie, issuing a fresh identifier (and
// cookie) when the request carries none.
func (h *Handler) sessionID(c echo.Context) uuid.UUID {
	if ck, err := c.Cookie(SessionCookie); err == nil {
		if id, err := uuid.Parse(ck.Value); err == nil {
			return id
		}
	}

	id := uuid.New()
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    id.String(),
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
