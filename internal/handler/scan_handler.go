package handler

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"upiscan/internal/domain"
	"upiscan/internal/middleware"
	"upiscan/internal/report"
	"upiscan/internal/service"
	"upiscan/internal/upi"
)

// ScanHandler handles payload scanning endpoints.
type ScanHandler struct {
	scanService service.ScanService
	now         func() time.Time
}

// NewScanHandler creates a new ScanHandler.
func NewScanHandler(scanService service.ScanService) *ScanHandler {
	return &ScanHandler{scanService: scanService, now: time.Now}
}

// Scan handles POST /api/v1/scans
// @Summary Scan a QR payload
// @Description Extract the payee address from decoded QR text, copy it and trigger the USSD dial
// @Tags scans
// @Accept json
// @Produce json
// @Param request body PayloadRequest true "Decoded QR text"
// @Success 200 {object} Response{data=domain.ScanResult} "Payee address found"
// @Failure 400 {object} ErrorResponseBody "Malformed request body"
// @Failure 422 {object} ErrorResponseBody "Invalid QR"
// @Router /scans [post]
func (h *ScanHandler) Scan(c *gin.Context) {
	var req PayloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.scanService.Scan(c.Request.Context(), req.Payload)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// ScanImage handles POST /api/v1/scans/image
// @Summary Scan a QR image
// @Description Decode a QR code from an uploaded image (JPG, PNG or GIF) and scan its text
// @Tags scans
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image containing a QR code"
// @Success 200 {object} Response{data=domain.ScanResult} "Payee address found"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 422 {object} ErrorResponseBody "No QR code or invalid QR"
// @Router /scans/image [post]
func (h *ScanHandler) ScanImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.scanService.ScanImage(c.Request.Context(), service.ImageScanInput{
		File: file,
		Size: header.Size,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Batch handles POST /api/v1/scans/batch
// @Summary Extract payee addresses in bulk
// @Description Extract every payload concurrently. JSON returns the items; csv and xlsx return a download.
// @Tags scans
// @Accept json
// @Produce json
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param request body BatchRequest true "Payloads to extract"
// @Param format query string false "Report format: json, csv or xlsx" default(json)
// @Param name query string false "Base name of the downloaded report" default(scans)
// @Success 200 {object} Response{data=[]domain.BatchItem,meta=BatchMeta} "Batch results"
// @Failure 400 {object} ErrorResponseBody "Malformed request or unsupported format"
// @Failure 413 {object} ErrorResponseBody "Too many payloads"
// @Router /scans/batch [post]
func (h *ScanHandler) Batch(c *gin.Context) {
	format, err := domain.ParseReportFormat(c.Query("format"))
	if err != nil {
		HandleError(c, err)
		return
	}

	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	items, err := h.scanService.ExtractBatch(c.Request.Context(), req.Payloads)
	if err != nil {
		HandleError(c, err)
		return
	}

	if format == domain.ReportFormatJSON {
		found := 0
		for i := range items {
			if items[i].OK() {
				found++
			}
		}
		RespondBatch(c, items, BatchMeta{Total: len(items), Found: found})
		return
	}

	filename := report.BuildFilename(c.Query("name"), format, h.now())
	c.Header("Content-Type", report.ContentType(format))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)

	if err := report.Write(c.Writer, format, items); err != nil {
		requestID, _ := c.Get(middleware.ContextKeyRequestID)
		log.Printf("[%s] scanHandler.Batch: writing %s report: %v", requestID, format, err)
	}
}

// Classify handles POST /api/v1/payloads/classify
// @Summary Classify a QR payload
// @Tags payloads
// @Accept json
// @Produce json
// @Param request body PayloadRequest true "Decoded QR text"
// @Success 200 {object} Response{data=ClassifyResponse} "Payload kind"
// @Failure 400 {object} ErrorResponseBody "Malformed request body"
// @Router /payloads/classify [post]
func (h *ScanHandler) Classify(c *gin.Context) {
	var req PayloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	RespondOK(c, ClassifyResponse{Kind: domain.PayloadKind(upi.Classify(req.Payload))})
}

// Inspect handles POST /api/v1/payloads/inspect
// @Summary Inspect the TLV fields of an EMV payload
// @Tags payloads
// @Accept json
// @Produce json
// @Param request body PayloadRequest true "Decoded QR text"
// @Success 200 {object} Response{data=domain.Inspection} "Top-level and merchant account fields"
// @Failure 400 {object} ErrorResponseBody "Malformed request body"
// @Failure 422 {object} ErrorResponseBody "Invalid QR"
// @Router /payloads/inspect [post]
func (h *ScanHandler) Inspect(c *gin.Context) {
	var req PayloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	inspection, err := h.scanService.Inspect(c.Request.Context(), req.Payload)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, inspection)
}
