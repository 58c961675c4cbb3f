package controllers

import (
	"fmt"
	"log/slog"
	"net/http"

	"codecamp/internal/delivery/http/helpers"
	"codecamp/internal/domain"
)

type TalkController struct {
	Logger  *slog.Logger
	Service domain.TalkService
}

func NewTalkController(logger *slog.Logger, svc domain.TalkService) *TalkController {
	return &TalkController{
		Logger:  logger,
		Service: svc,
	}
}

func talkNotFound(moniker string, talkID int) string {
	return fmt.Sprintf("Could not find talk %d for camp %s.", talkID, moniker)
}

// talkID reads the talkId path value, writing a 400 when it is not an integer.
func talkID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := helpers.PathInt(r, "talkId")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return 0, false
	}
	return id, true
}

// ListTalks godoc
// @Summary List talks of a camp
// @Tags talks
// @Produce json
// @Param moniker path string true "Camp moniker"
// @Success 200 {object} controllers.TalkListSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /camps/{moniker}/talks [get]
func (c *TalkController) ListTalks(w http.ResponseWriter, r *http.Request) {
	moniker := r.PathValue("moniker")
	talks, err := c.Service.ListTalks(r.Context(), moniker)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, campNotFound(moniker))
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, talksToModels(talks))
}

// GetTalk godoc
// @Summary Get a talk
// @Tags talks
// @Produce json
// @Param moniker path string true "Camp moniker"
// @Param talkId path int true "Talk ID"
// @Success 200 {object} controllers.TalkSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /camps/{moniker}/talks/{talkId} [get]
func (c *TalkController) GetTalk(w http.ResponseWriter, r *http.Request) {
	moniker := r.PathValue("moniker")
	id, ok := talkID(w, r)
	if !ok {
		return
	}
	talk, err := c.Service.GetTalk(r.Context(), moniker, id)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, talkNotFound(moniker, id))
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, talkToModel(talk))
}

// CreateTalk godoc
// @Summary Create a talk
// @Description Create a talk in a camp. speaker.speaker_id must reference an existing speaker.
// @Tags talks
// @Accept json
// @Produce json
// @Param moniker path string true "Camp moniker"
// @Param talk body TalkModel true "Talk"
// @Success 201 {object} controllers.TalkSuccessResponse
// @Header 201 {string} Location "/api/camps/{moniker}/talks/{talkId}"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /camps/{moniker}/talks [post]
func (c *TalkController) CreateTalk(w http.ResponseWriter, r *http.Request) {
	moniker := r.PathValue("moniker")
	var req TalkModel
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	talk := req.toTalk()
	if err := c.Service.CreateTalk(r.Context(), moniker, talk, req.speakerID()); err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	location, err := helpers.TalkLocation(moniker, talk.ID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONCreated(w, location, talkToModel(talk))
}

// UpdateTalk godoc
// @Summary Update a talk
// @Description Overwrite title, abstract and level. The speaker is reassigned only when speaker.speaker_id resolves.
// @Tags talks
// @Accept json
// @Produce json
// @Param moniker path string true "Camp moniker"
// @Param talkId path int true "Talk ID"
// @Param talk body TalkModel true "Talk"
// @Success 200 {object} controllers.TalkSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /camps/{moniker}/talks/{talkId} [put]
func (c *TalkController) UpdateTalk(w http.ResponseWriter, r *http.Request) {
	moniker := r.PathValue("moniker")
	id, ok := talkID(w, r)
	if !ok {
		return
	}
	var req TalkModel
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	talk, err := c.Service.UpdateTalk(r.Context(), moniker, id, req.toUpdate())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, talkNotFound(moniker, id))
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, talkToModel(talk))
}

// DeleteTalk godoc
// @Summary Delete a talk
// @Tags talks
// @Produce json
// @Param moniker path string true "Camp moniker"
// @Param talkId path int true "Talk ID"
// @Success 200 {object} controllers.StatusSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /camps/{moniker}/talks/{talkId} [delete]
func (c *TalkController) DeleteTalk(w http.ResponseWriter, r *http.Request) {
	moniker := r.PathValue("moniker")
	id, ok := talkID(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteTalk(r.Context(), moniker, id); err != nil {
		writeServiceError(c.Logger, w, r, err, talkNotFound(moniker, id))
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
