package catalog

import (
	"net/http"
	"roam/infras/otel"
	"roam/internal/domains/catalog/model"
	"roam/internal/domains/catalog/model/dto"
	"roam/internal/domains/catalog/service"
	"roam/shared"
	"roam/shared/constant"
	gDto "roam/shared/dto"
	"roam/shared/failure"
	"roam/shared/validator"
	"roam/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/packages", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPackages)
		routerGroup.Get("/{id}", handler.GetPackageByID)
		routerGroup.Post("/", handler.CreatePackage)
		routerGroup.Put("/{id}", handler.UpdatePackage)
		routerGroup.Delete("/{id}", handler.DeletePackage)
		routerGroup.Post("/{id}/images", handler.UploadImage)
		routerGroup.Delete("/{id}/images/{objectKey}", handler.DeleteImage)
	})
}

// GetPackages retrieves the tour package catalog.
// @Summary Get all tour packages
// @Description Retrieve tour packages with optional filtering and pagination. Public.
// @Tags Catalog
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param location query string false "Filter by location"
// @Param available query bool false "Filter by availability"
// @Param search query string false "Search by title or location"
// @Success 200 {object} response.Data[dto.GetPackagesResponse] "List of tour packages"
// @Failure 500 {object} response.Error
// @Router /v1/packages [get]
func (handler *Handler) GetPackages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackages")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	location := r.URL.Query().Get(model.FieldLocation)
	available := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldAvailable))
	search := r.URL.Query().Get(constant.RequestParamSearch)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if location != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Operator: gDto.FilterOperatorEq,
			Value:    location,
			Table:    model.TableName,
		})
	}

	if available != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAvailable,
			Operator: gDto.FilterOperatorEq,
			Value:    *available,
			Table:    model.TableName,
		})
	}

	if search != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldTitle,
					Operator: gDto.FilterOperatorLike,
					Value:    search,
					Table:    model.TableName,
				},
				gDto.Filter{
					ArgName:  "search_location",
					Field:    model.FieldLocation,
					Operator: gDto.FilterOperatorLike,
					Value:    search,
					Table:    model.TableName,
				},
			},
		})
	}

	packages, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tour packages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tour packages retrieved successfully")

	response.WithJSON(w, http.StatusOK, packages)
}

// GetPackageByID retrieves a tour package by ID.
// @Summary Get a tour package by ID
// @Description Retrieve a tour package by its unique identifier. Public.
// @Tags Catalog
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} response.Data[dto.PackageResponse] "Tour package details"
// @Failure 404 {object} response.Error
// @Router /v1/packages/{id} [get]
func (handler *Handler) GetPackageByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackageByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	pkg, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tour package by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tour package retrieved successfully")

	response.WithJSON(w, http.StatusOK, pkg)
}

// CreatePackage creates a new tour package.
// @Summary Create a tour package
// @Description Create a new tour package in the catalog. Admin only.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.CreatePackageRequest true "Create Package Request"
// @Success 201 {object} response.Data[dto.PackageResponse] "Tour package created"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/packages [post]
// @Security BearerAuth
func (handler *Handler) CreatePackage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePackage")
	defer scope.End()

	req := dto.CreatePackageRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create tour package")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tour package created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// UpdatePackage updates a tour package by ID.
// @Summary Update a tour package by ID
// @Description Update the details of an existing tour package. Admin only.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Param request body dto.UpdatePackageRequest true "Update Package Request"
// @Success 200 {object} response.Message "Tour package updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/packages/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePackage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePackageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update tour package")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tour package updated successfully")

	response.WithMessage(w, http.StatusOK, "Tour package updated successfully")
}

// DeletePackage deletes a tour package by ID.
// @Summary Delete a tour package by ID
// @Description Remove a tour package and its stored images. Admin only.
// @Tags Catalog
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} response.Message "Tour package deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/packages/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePackage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete tour package")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tour package deleted successfully")

	response.WithMessage(w, http.StatusOK, "Tour package deleted successfully")
}

// UploadImage attaches an image to a tour package.
// @Summary Upload a tour package image
// @Description Upload an image file and attach it to a tour package. Admin only.
// @Tags Catalog
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Package ID"
// @Param file formData file true "Image file"
// @Param alt formData string false "Alternative text"
// @Success 201 {object} response.Data[dto.UploadImageResponse] "Uploaded image"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/packages/{id}/images [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded file")

		response.WithError(w, failure.BadRequestFromString("file is required"))

		return
	}
	defer file.Close()

	alt := r.FormValue("alt")

	res, err := handler.service.UploadImage(ctx, id, alt, file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload tour package image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tour package image uploaded successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// DeleteImage detaches an image from a tour package.
// @Summary Delete a tour package image
// @Description Remove an image from a tour package and delete the stored file. Admin only.
// @Tags Catalog
// @Produce json
// @Param id path string true "Package ID"
// @Param objectKey path string true "Image object key"
// @Success 200 {object} response.Message "Image deleted"
// @Failure 404 {object} response.Error
// @Router /v1/packages/{id}/images/{objectKey} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	objectKey := chi.URLParam(r, "objectKey")

	if err := handler.service.DeleteImage(ctx, id, objectKey); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete tour package image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tour package image deleted successfully")

	response.WithMessage(w, http.StatusOK, "Tour package image deleted successfully")
}
