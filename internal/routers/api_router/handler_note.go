package api_router

import (
	"errors"
	"io"
	"time"

	"github.com/notin-app/notin-service/internal/app"
	"github.com/notin-app/notin-service/internal/dto"
	pkgapp "github.com/notin-app/notin-service/pkg/app"
	"github.com/notin-app/notin-service/pkg/code"
	apperrors "github.com/notin-app/notin-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NoteHandler note API route handler.
type NoteHandler struct {
	*Handler
}

func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{Handler: NewHandler(a)}
}

// readSourceFile reads the optional multipart source upload into
// memory. A missing file is not an error here; the service decides
// whether the source type requires one.
func (h *NoteHandler) readSourceFile(c *gin.Context) ([]byte, error) {
	fileHeader, err := c.FormFile("source")
	if err != nil {
		return nil, nil
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// Generate runs the note generation pipeline for the authenticated
// user.
func (h *NoteHandler) Generate(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteGenerateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Generate.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	file, err := h.readSourceFile(c)
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)
	start := time.Now()

	noteDTO, err := h.App.NoteService.Generate(ctx, uid, params, file)
	if err != nil {
		resultCode := code.Failed.Code()
		var codeErr *code.Code
		if errors.As(err, &codeErr) {
			resultCode = codeErr.Code()
		}
		observeGenerate(params.SourceType, resultCode, time.Since(start).Seconds())

		h.logError(ctx, "NoteHandler.Generate", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	observeGenerate(params.SourceType, code.Success.Code(), time.Since(start).Seconds())

	response.ToResponse(code.Success.WithData(noteDTO))
}

// Collect lists the authenticated user's notes, newest first.
func (h *NoteHandler) Collect(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	noteListTotal.Inc()

	notes, err := h.App.NoteService.List(ctx, pkgapp.GetUID(c))
	if err != nil {
		h.logError(ctx, "NoteHandler.Collect", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(notes))
}
