package availability

import (
	"hotel/infras/otel"
	"hotel/internal/domains/availability/model/dto"
	"hotel/internal/domains/availability/service"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.CheckAvailability)
		routerGroup.Get("/alternatives", handler.GetAlternatives)
	})
}

// CheckAvailability reports whether a room of the given type is free for the stay.
// @Summary Check availability
// @Tags Availability
// @Produce json
// @Param room_type_id query string true "Room type ID"
// @Param check_in_date query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out_date query string false "Check-out date (YYYY-MM-DD)"
// @Param duration query int false "Number of nights"
// @Success 200 {object} response.Data[dto.AvailabilityResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/availability [get]
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	req := dto.StayRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Check(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability checked successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetAlternatives suggests other dates and room types for a stay.
// @Summary Suggest alternatives
// @Tags Availability
// @Produce json
// @Param room_type_id query string true "Room type ID"
// @Param check_in_date query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out_date query string false "Check-out date (YYYY-MM-DD)"
// @Param duration query int false "Number of nights"
// @Success 200 {object} response.Data[dto.AlternativesResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/availability/alternatives [get]
func (handler *Handler) GetAlternatives(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAlternatives")
	defer scope.End()

	req := dto.StayRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Alternatives(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to suggest alternatives")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Alternatives suggested successfully")

	response.WithJSON(w, http.StatusOK, res)
}
