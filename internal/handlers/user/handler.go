package user

import (
	"net/http"

	"gomoto/infras/otel"
	"gomoto/internal/domains/user/model"
	"gomoto/internal/domains/user/model/dto"
	"gomoto/internal/domains/user/service"
	"gomoto/shared"
	"gomoto/shared/constant"
	gDto "gomoto/shared/dto"
	"gomoto/shared/failure"
	"gomoto/shared/validator"
	"gomoto/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", handler.GetUsers)
		r.Get("/me", handler.Me)
		r.Put("/me", handler.UpdateProfile)
	})
}

// GetUsers retrieves all users based on query parameters.
// @Summary Get all users
// @Description Retrieve users with optional filtering and pagination.
// @Tags User
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param role query string false "Filter by role"
// @Param active query bool false "Filter by active flag"
// @Param search query string false "Match username, email or full name"
// @Success 200 {object} response.Envelope[dto.GetUsersResponse] "List of users"
// @Failure 403 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/users [get]
// @Security BearerAuth
func (handler *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	users, err := handler.service.GetAll(ctx, queryParams, usersFilter(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get users")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Users retrieved successfully")

	response.WithJSON(w, http.StatusOK, users)
}

// Me returns the profile of the caller.
// @Summary Get current user
// @Tags User
// @Produce json
// @Success 200 {object} response.Envelope[dto.UserResponse] "Profile"
// @Failure 401 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /v1/users/me [get]
// @Security BearerAuth
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		response.WithError(w, failure.Unauthorized("authentication required"))

		return
	}

	user, err := handler.service.Get(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("user_id", userID).Msg("failed to get profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, user)
}

// UpdateProfile updates the profile of the caller.
// @Summary Update current user
// @Description Update profile fields. Username, email, role and password cannot be changed here.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Update Profile Request"
// @Success 200 {object} response.Envelope[dto.UserResponse] "Profile updated"
// @Failure 400 {object} response.Message
// @Failure 401 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/users/me [put]
// @Security BearerAuth
func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		response.WithError(w, failure.Unauthorized("authentication required"))

		return
	}

	req := dto.UpdateProfileRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	user, err := handler.service.UpdateProfile(ctx, req, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("user_id", userID).Msg("failed to update profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Profile updated successfully")

	response.WithData(w, http.StatusOK, "Profile updated successfully", user)
}

func usersFilter(r *http.Request) gDto.FilterGroup {
	query := r.URL.Query()
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if role := query.Get(model.FieldRole); role != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldRole,
			Operator: gDto.FilterOperatorEq,
			Value:    role,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(query.Get(model.FieldActive)); active != nil {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	if search := query.Get("search"); search != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{ArgName: "search_username", Field: model.FieldUsername, Operator: gDto.FilterOperatorLike, Value: search, Table: model.TableName},
				gDto.Filter{ArgName: "search_email", Field: model.FieldEmail, Operator: gDto.FilterOperatorLike, Value: search, Table: model.TableName},
				gDto.Filter{ArgName: "search_full_name", Field: model.FieldFullName, Operator: gDto.FilterOperatorLike, Value: search, Table: model.TableName},
			},
		})
	}

	return filter
}
