package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

type InvoiceHandler struct {
	service usecase.InvoiceService
	log     *zap.Logger
}

func NewInvoiceHandler(service usecase.InvoiceService, log *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		service: service,
		log:     log.With(zap.String("handler", "invoice")),
	}
}

// DownloadInvoice handles POST /api/download-invoice. The PDF is rendered
// fully before any header is written, so failures still produce a clean
// JSON error instead of a truncated download.
func (h *InvoiceHandler) DownloadInvoice(w http.ResponseWriter, r *http.Request) {
	var req request.InvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	pdf, err := h.service.RenderInvoice(&req)
	if err != nil {
		handleServiceError(h.log, w, err, "download invoice")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", req.InvoiceID))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
