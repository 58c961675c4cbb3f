package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"codecamp/internal/delivery/http/helpers"
	"codecamp/internal/domain"
)

type CampController struct {
	Logger  *slog.Logger
	Service domain.CampService
}

func NewCampController(logger *slog.Logger, svc domain.CampService) *CampController {
	return &CampController{
		Logger:  logger,
		Service: svc,
	}
}

func campNotFound(moniker string) string {
	return fmt.Sprintf("Could not find camp with Moniker %s.", moniker)
}

// ListCamps godoc
// @Summary List camps
// @Description List every camp ordered by event date. Talks and their speakers are embedded when includeTalks is true.
// @Tags camps
// @Produce json
// @Param includeTalks query bool false "Embed talks"
// @Success 200 {object} controllers.CampListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /camps [get]
func (c *CampController) ListCamps(w http.ResponseWriter, r *http.Request) {
	includeTalks, err := helpers.QueryBool(r, "includeTalks")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	camps, err := c.Service.ListCamps(r.Context(), includeTalks)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, campsToModels(camps))
}

// GetCamp godoc
// @Summary Get a camp
// @Description Get a camp by its moniker.
// @Tags camps
// @Produce json
// @Param moniker path string true "Camp moniker"
// @Param includeTalks query bool false "Embed talks"
// @Success 200 {object} controllers.CampSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /camps/{moniker} [get]
func (c *CampController) GetCamp(w http.ResponseWriter, r *http.Request) {
	moniker := r.PathValue("moniker")
	includeTalks, err := helpers.QueryBool(r, "includeTalks")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	camp, err := c.Service.GetCamp(r.Context(), moniker, includeTalks)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, campNotFound(moniker))
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, campToModel(camp))
}

// SearchCamps godoc
// @Summary Search camps by event date
// @Description Return the camps whose event date falls on the given calendar day.
// @Tags camps
// @Produce json
// @Param eventDate query string true "Date (YYYY-MM-DD or RFC3339)"
// @Param includeTalks query bool false "Embed talks"
// @Success 200 {object} controllers.CampListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /camps/search [get]
func (c *CampController) SearchCamps(w http.ResponseWriter, r *http.Request) {
	date, err := helpers.QueryDate(r, "eventDate")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	includeTalks, err := helpers.QueryBool(r, "includeTalks")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	camps, err := c.Service.SearchByEventDate(r.Context(), date, includeTalks)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, fmt.Sprintf("No camps found on %s.", date.Format("2006-01-02")))
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, campsToModels(camps))
}

// CreateCamp godoc
// @Summary Create a camp
// @Description Create a camp. The moniker must be unused; the response carries a Location header for the new camp.
// @Tags camps
// @Accept json
// @Produce json
// @Param camp body CampModel true "Camp"
// @Success 201 {object} controllers.CampSuccessResponse
// @Header 201 {string} Location "/api/camps/{moniker}"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /camps [post]
func (c *CampController) CreateCamp(w http.ResponseWriter, r *http.Request) {
	var req CampModel
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	camp := req.toCamp()
	if err := c.Service.CreateCamp(r.Context(), camp); err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	location, err := helpers.CampLocation(camp.Moniker)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONCreated(w, location, campToModel(camp))
}

// UpdateCamp godoc
// @Summary Update a camp
// @Description Overwrite name, event date, length and location of the camp named by the moniker query parameter (or the body moniker when absent).
// @Tags camps
// @Accept json
// @Produce json
// @Param moniker query string false "Camp moniker"
// @Param camp body CampModel true "Camp"
// @Success 200 {object} controllers.CampSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /camps [put]
func (c *CampController) UpdateCamp(w http.ResponseWriter, r *http.Request) {
	var req CampModel
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	moniker := strings.TrimSpace(r.URL.Query().Get("moniker"))
	if moniker == "" {
		moniker = req.Moniker
	}
	camp, err := c.Service.UpdateCamp(r.Context(), moniker, req.toCamp())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, campNotFound(moniker))
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, campToModel(camp))
}

// DeleteCamp godoc
// @Summary Delete a camp
// @Description Delete a camp and its talks.
// @Tags camps
// @Produce json
// @Param moniker path string true "Camp moniker"
// @Success 200 {object} controllers.StatusSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /camps/{moniker} [delete]
func (c *CampController) DeleteCamp(w http.ResponseWriter, r *http.Request) {
	moniker := r.PathValue("moniker")
	if err := c.Service.DeleteCamp(r.Context(), moniker); err != nil {
		writeServiceError(c.Logger, w, r, err, campNotFound(moniker))
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
