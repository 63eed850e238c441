package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finanzas-personales/backend/internal/application/usecase/snapshot"
	"github.com/finanzas-personales/backend/internal/integration/entrypoint/dto"
)

// SnapshotController handles snapshot import and export endpoints.
type SnapshotController struct {
	importUseCase *snapshot.ImportUseCase
	exportUseCase *snapshot.ExportUseCase
}

// NewSnapshotController creates a new snapshot controller instance.
func NewSnapshotController(importUseCase *snapshot.ImportUseCase, exportUseCase *snapshot.ExportUseCase) *SnapshotController {
	return &SnapshotController{
		importUseCase: importUseCase,
		exportUseCase: exportUseCase,
	}
}

// Import handles POST /snapshot requests. The body is a full snapshot
// document; it replaces the current store.
func (c *SnapshotController) Import(ctx *gin.Context) {
	var document snapshot.Document
	if err := ctx.ShouldBindJSON(&document); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid snapshot document: " + err.Error(),
		})
		return
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), snapshot.ImportInput{Document: document})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to import snapshot",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToImportSnapshotResponse(output))
}

// Export handles GET /snapshot requests, returning the store in the legacy
// snapshot layout.
func (c *SnapshotController) Export(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export snapshot",
		})
		return
	}

	ctx.JSON(http.StatusOK, output.Document)
}
