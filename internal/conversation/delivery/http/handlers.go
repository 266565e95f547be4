package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Runs one assistant turn. Without session_id a new session is created. chat_history, when present, replaces the stored history for this turn.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, h.mapBindError(err))
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusOK, h.newChatResp(output))
}

// Session godoc
// @Summary     Get a session
// @Description Returns the stored history and trip draft of a session.
// @Tags        Conversation
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /sessions/{id} [GET]
func (h *handler) Session(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.History(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// Reset godoc
// @Summary     Clear a session
// @Description Forgets the history and draft of a session. Unknown ids succeed.
// @Tags        Conversation
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /sessions/{id} [DELETE]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Reset(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
