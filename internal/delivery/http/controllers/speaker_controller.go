package controllers

import (
	"fmt"
	"log/slog"
	"net/http"

	"codecamp/internal/delivery/http/helpers"
	"codecamp/internal/domain"
)

type SpeakerController struct {
	Logger  *slog.Logger
	Service domain.SpeakerService
}

func NewSpeakerController(logger *slog.Logger, svc domain.SpeakerService) *SpeakerController {
	return &SpeakerController{
		Logger:  logger,
		Service: svc,
	}
}

// ListSpeakers godoc
// @Summary List speakers
// @Tags speakers
// @Produce json
// @Success 200 {object} controllers.SpeakerListSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers [get]
func (c *SpeakerController) ListSpeakers(w http.ResponseWriter, r *http.Request) {
	speakers, err := c.Service.ListSpeakers(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, speakersToModels(speakers))
}

// GetSpeaker godoc
// @Summary Get a speaker
// @Tags speakers
// @Produce json
// @Param speakerId path int true "Speaker ID"
// @Success 200 {object} controllers.SpeakerSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/{speakerId} [get]
func (c *SpeakerController) GetSpeaker(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathInt(r, "speakerId")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	speaker, err := c.Service.GetSpeaker(r.Context(), id)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, fmt.Sprintf("Could not find speaker %d.", id))
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, speakerToModel(speaker))
}
