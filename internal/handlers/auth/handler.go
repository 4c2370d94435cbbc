package auth

import (
	"net/http"
	"tourcrm/infras/otel"
	"tourcrm/internal/domains/auth/model/dto"
	"tourcrm/internal/domains/auth/service"
	"tourcrm/shared/constant"
	"tourcrm/shared/failure"
	"tourcrm/shared/validator"
	"tourcrm/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", handler.Login)
	})
}

// Login checks a user's credentials
// @Summary Login a user
// @Description Verify email and password and return the user's public profile. No token is issued.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.LoginResponse]
// @Failure 400 {object} response.Message
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid login body")

		response.WithError(w, err)

		return
	}

	email := req.NormalizedEmail()
	scope.SetAttribute("auth.email", email)

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)

		if failure.GetCode(err) >= http.StatusInternalServerError {
			log.Error().Err(err).Str("email", email).Msg("login lookup failed")
		} else {
			log.Info().Err(err).Str("email", email).Msg("login rejected")
		}

		response.WithError(w, err)

		return
	}

	log.Info().Int64("usuario_id", res.ID).Msg("login accepted")
	scope.AddEvent("login accepted")

	response.WithJSON(w, http.StatusOK, res)
}
