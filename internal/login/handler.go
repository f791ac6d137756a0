package login

import (
	"net/http"

	sharedError "github.com/funfun03/form-showcase/internal/shared/error"
	"github.com/funfun03/form-showcase/internal/shared/handler"
	"github.com/funfun03/form-showcase/internal/shared/metrics"
	"github.com/funfun03/form-showcase/internal/web"
	"github.com/gin-gonic/gin"
)

const templateName = "login"

type LoginHandler struct {
	loginService *LoginService
	metrics      metrics.Recorder
}

func NewLoginHandler(loginService *LoginService, recorder metrics.Recorder) *LoginHandler {
	return &LoginHandler{
		loginService: loginService,
		metrics:      recorder,
	}
}

func (h *LoginHandler) Page(c *gin.Context) {
	c.HTML(http.StatusOK, templateName, newPage(LoginRequest{}, web.Toggles{}))
}

func (h *LoginHandler) Submit(c *gin.Context) {
	var toggles web.Toggles
	if err := c.ShouldBind(&toggles); err != nil {
		handler.RespondError(c, err, sharedError.InvalidRequest)
		return
	}

	var request LoginRequest
	fields, ok := handler.BindForm(c, &request, loginMessages)
	if !ok {
		return
	}

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

	receipt, err := h.loginService.Login(c.Request.Context(), &request)
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
		PageData:  web.PageData{Title: "Login | Grovia", Page: "login"},
		Heading:   "Welcome back to Grovia",
		ReceiptID: receipt.ID,
	})
}

func (h *LoginHandler) API(c *gin.Context) {
	var request LoginRequest

	// Parse and validate JSON request
	if !handler.BindJSON(c, &request, loginMessages) {
		h.metrics.RecordSubmission(formName, metrics.OutcomeInvalid)
		return
	}

	receipt, err := h.loginService.Login(c.Request.Context(), &request)
	if err != nil {
		h.metrics.RecordSubmission(formName, metrics.OutcomeFailed)
		handler.RespondError(c, err, handler.ResponseFor(err))
		return
	}

	h.metrics.RecordSubmission(formName, metrics.OutcomeAccepted)
	c.JSON(http.StatusCreated, receipt)
}
