package registration

import (
	"net/http"

	sharedError "github.com/funfun03/form-showcase/internal/shared/error"
	"github.com/funfun03/form-showcase/internal/shared/handler"
	"github.com/funfun03/form-showcase/internal/shared/metrics"
	"github.com/funfun03/form-showcase/internal/web"
	"github.com/gin-gonic/gin"
)

const templateName = "register"

type RegistrationHandler struct {
	registrationService *RegistrationService
	metrics             metrics.Recorder
}

func NewRegistrationHandler(registrationService *RegistrationService, recorder metrics.Recorder) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
		metrics:             recorder,
	}
}

func (h *RegistrationHandler) Page(c *gin.Context) {
	c.HTML(http.StatusOK, templateName, newPage(RegisterRequest{}, web.Toggles{}))
}

func (h *RegistrationHandler) Submit(c *gin.Context) {
	var toggles web.Toggles
	if err := c.ShouldBind(&toggles); err != nil {
		handler.RespondError(c, err, sharedError.InvalidRequest)
		return
	}

	var request RegisterRequest
	fields, ok := handler.BindForm(c, &request, registerMessages)
	if !ok {
		return
	}

	// An eye button only flips a flag, nothing is validated.
	if toggles.Apply() {
		c.HTML(http.StatusOK, templateName, newPage(request, toggles))
		return
	}

	p := newPage(request, toggles)
	if len(fields) > 0 {
		handler.RecordRejected(h.metrics, formName, fields)
		p.Errors = fields
		c.HTML(http.StatusUnprocessableEntity, templateName, p)
		return
	}

	receipt, err := h.registrationService.Register(c.Request.Context(), &request)
	if err != nil {
		resp := handler.ResponseFor(err)
		c.Error(err)
		h.metrics.RecordSubmission(formName, metrics.OutcomeFailed)

		p.Error = resp.Message
		c.HTML(resp.Status, templateName, p)
		return
	}

	h.metrics.RecordSubmission(formName, metrics.OutcomeAccepted)
	c.HTML(http.StatusOK, "accepted", web.AcceptedPage{
		PageData:  web.PageData{Title: "Register | Lottery Display", Page: "register"},
		Heading:   "Welcome aboard, " + request.FirstName,
		ReceiptID: receipt.ID,
	})
}

func (h *RegistrationHandler) API(c *gin.Context) {
	var request RegisterRequest

	// Parse and validate JSON request
	if !handler.BindJSON(c, &request, registerMessages) {
		h.metrics.RecordSubmission(formName, metrics.OutcomeInvalid)
		return
	}

	receipt, err := h.registrationService.Register(c.Request.Context(), &request)
	if err != nil {
		h.metrics.RecordSubmission(formName, metrics.OutcomeFailed)
		handler.RespondError(c, err, handler.ResponseFor(err))
		return
	}

	h.metrics.RecordSubmission(formName, metrics.OutcomeAccepted)
	c.JSON(http.StatusCreated, receipt)
}
