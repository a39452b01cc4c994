package api

import (
	"net/http"

	reqdto "storezee/internal/handler/dto/request"
	resdto "storezee/internal/handler/dto/response"
	"storezee/internal/handler/httperr"
	"storezee/internal/pkg/config"
	"storezee/internal/pkg/errs"
	"storezee/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	cfg  config.BookingConfig
}

func NewBookingHandler(cmds commands.BookingCommands, cfg config.Config) *BookingHandler {
	return &BookingHandler{cmds: cmds, cfg: cfg.Booking}
}

// @Summary Create booking
// @Description Create the customer, identity document, booking and add-on rows in one transaction and upload the attached files
// @Tags bookings
// @Accept multipart/form-data
// @Produce json
// @Param full_name formData string true "Customer full name"
// @Param email formData string true "Customer email"
// @Param phone formData string true "Customer phone"
// @Param storage_unit_id formData string true "Storage unit id"
// @Param storage_booked_location formData string true "Location label"
// @Param booking_created_time formData string false "Start time, defaults to now"
// @Param latitude formData number false "Latitude"
// @Param longitude formData number false "Longitude"
// @Param luggage_time formData int false "Duration in hours, defaults to 6"
// @Param addons formData string false "Comma separated add-on ids"
// @Param user_remark formData string false "Free text remark"
// @Param identification_number formData string false "Identity document number"
// @Param file formData file false "Identity document"
// @Param luggage_pic formData file false "Luggage photo, repeatable"
// @Success 200 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /api/create-everything [post]
func (h *BookingHandler) CreateEverything(c *gin.Context) {
	if h.cfg.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxUploadBytes)
	}

	var form reqdto.CreateBookingForm
	if err := c.ShouldBind(&form); err != nil {
		var tooLarge *http.MaxBytesError
		if errs.As(err, &tooLarge) {
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "Request body too large", nil)
			return
		}
		if fields := reqdto.BindingFieldErrors(err); len(fields) > 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking request", fields)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid multipart form", nil)
		return
	}

	input, err := form.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	files, err := reqdto.ReadBookingFiles(c.Request.MultipartForm, h.cfg.MaxPhotos, h.cfg.MaxUploadBytes)
	if err != nil {
		switch {
		case errs.Is(err, reqdto.ErrFileTooLarge):
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "Uploaded file too large", nil)
		case errs.Is(err, reqdto.ErrTooManyDocuments), errs.Is(err, reqdto.ErrTooManyPhotos):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to read uploaded files", nil)
		}
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), input, files)
	if err != nil {
		status, msg := httperr.StatusFor(err)
		var details any
		var verr *commands.ValidationError
		if errs.As(err, &verr) {
			details = verr.Fields
		}
		httperr.AbortWithError(c, status, err, msg, details)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCreateBookingResult(result))
}
