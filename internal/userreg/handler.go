package userreg

import (
	"errors"
	"net/http"

	sharedError "github.com/funfun03/form-showcase/internal/shared/error"
	"github.com/funfun03/form-showcase/internal/shared/handler"
	"github.com/funfun03/form-showcase/internal/shared/metrics"
	"github.com/funfun03/form-showcase/internal/shared/validator"
	"github.com/funfun03/form-showcase/internal/web"
	"github.com/gin-gonic/gin"
)

const templateName = "user-registration"

type UserRegistrationHandler struct {
	userRegistrationService *UserRegistrationService
	metrics                 metrics.Recorder
}

func NewUserRegistrationHandler(userRegistrationService *UserRegistrationService, recorder metrics.Recorder) *UserRegistrationHandler {
	return &UserRegistrationHandler{
		userRegistrationService: userRegistrationService,
		metrics:                 recorder,
	}
}

func (h *UserRegistrationHandler) Page(c *gin.Context) {
	c.HTML(http.StatusOK, templateName, newPage(UserRegistrationRequest{}, web.Toggles{}))
}

func (h *UserRegistrationHandler) Submit(c *gin.Context) {
	var toggles web.Toggles
	if err := c.ShouldBind(&toggles); err != nil {
		handler.RespondError(c, err, sharedError.InvalidRequest)
		return
	}

	var request UserRegistrationRequest
	fields, ok := handler.BindForm(c, &request, userRegistrationMessages)
	if !ok {
		return
	}

	// File inputs cannot be refilled, a toggle drops the selected picture.
	if toggles.Apply() {
		c.HTML(http.StatusOK, templateName, newPage(request, toggles))
		return
	}

	p := newPage(request, toggles)

	picture, err := checkPicture(&request, fields)
	if err != nil {
		h.renderFailure(c, p, err)
		return
	}

	if len(fields) > 0 {
		handler.RecordRejected(h.metrics, formName, fields)
		p.Errors = fields
		c.HTML(http.StatusUnprocessableEntity, templateName, p)
		return
	}

	receipt, err := h.userRegistrationService.Register(c.Request.Context(), &request, picture)
	if err != nil {
		h.renderFailure(c, p, err)
		return
	}

	h.metrics.RecordSubmission(formName, metrics.OutcomeAccepted)
	c.HTML(http.StatusOK, "accepted", web.AcceptedPage{
		PageData:  web.PageData{Title: "User Registration", Page: templateName},
		Heading:   "Registration received",
		ReceiptID: receipt.ID,
	})
}

// API accepts the same fields as JSON or multipart/form-data.
func (h *UserRegistrationHandler) API(c *gin.Context) {
	var request UserRegistrationRequest
	fields, ok := handler.BindForm(c, &request, userRegistrationMessages)
	if !ok {
		h.metrics.RecordSubmission(formName, metrics.OutcomeInvalid)
		return
	}

	picture, err := checkPicture(&request, fields)
	if err != nil {
		h.metrics.RecordSubmission(formName, metrics.OutcomeFailed)
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	if len(fields) > 0 {
		handler.RecordRejected(h.metrics, formName, fields)
		c.JSON(http.StatusBadRequest, sharedError.NewValidationErrorResponse(fields))
		return
	}

	receipt, err := h.userRegistrationService.Register(c.Request.Context(), &request, picture)
	if err != nil {
		h.metrics.RecordSubmission(formName, metrics.OutcomeFailed)
		handler.RespondError(c, err, handler.ResponseFor(err))
		return
	}

	h.metrics.RecordSubmission(formName, metrics.OutcomeAccepted)
	c.JSON(http.StatusCreated, receipt)
}

func (h *UserRegistrationHandler) renderFailure(c *gin.Context, p page, err error) {
	resp := handler.ResponseFor(err)
	c.Error(err)
	h.metrics.RecordSubmission(formName, metrics.OutcomeFailed)

	p.Error = resp.Message
	c.HTML(resp.Status, templateName, p)
}

// checkPicture adds the profilePicture message for a rejected upload.
// A non-nil error means the upload could not be read at all.
func checkPicture(request *UserRegistrationRequest, fields validator.FieldErrors) (*Picture, error) {
	if request.ProfilePicture == nil {
		return nil, nil
	}

	picture, err := inspectPicture(request.ProfilePicture)
	if errors.Is(err, errUnsupportedPicture) {
		fields.Add("profilePicture", userRegistrationMessages["profilePicture"])
		return nil, nil
	}
	return picture, err
}
