package showcase

import (
	"fmt"
	"net/http"

	sharedError "github.com/funfun03/form-showcase/internal/shared/error"
	"github.com/funfun03/form-showcase/internal/shared/handler"
	"github.com/funfun03/form-showcase/internal/shared/metrics"
	"github.com/funfun03/form-showcase/internal/web"
	"github.com/gin-gonic/gin"
)

const templateName = "showcase"

type ShowcaseHandler struct {
	showcaseService *ShowcaseService
	metrics         metrics.Recorder
}

func NewShowcaseHandler(showcaseService *ShowcaseService, recorder metrics.Recorder) *ShowcaseHandler {
	return &ShowcaseHandler{
		showcaseService: showcaseService,
		metrics:         recorder,
	}
}

// Page renders the view picked in the navigation bar.
func (h *ShowcaseHandler) Page(c *gin.Context) {
	state := NewState()
	state.Select(ParseView(c.Query("view")))

	c.HTML(http.StatusOK, templateName, newPage(state))
}

func (h *ShowcaseHandler) SignIn(c *gin.Context) {
	var request SignInRequest

	fields, ok := handler.BindForm(c, &request, signInMessages)
	if !ok {
		return
	}

	state := NewState()
	if len(fields) > 0 {
		handler.RecordRejected(h.metrics, formSignIn, fields)

		state.Email = request.Email
		p := newPage(state)
		p.Errors = fields
		c.HTML(http.StatusUnprocessableEntity, templateName, p)
		return
	}

	h.showcaseService.SignIn(c.Request.Context(), &state, &request)
	h.metrics.RecordSubmission(formSignIn, metrics.OutcomeAccepted)
	h.metrics.RecordTransition(string(ViewSignIn), string(state.View))

	c.HTML(http.StatusOK, templateName, newPage(state))
}

func (h *ShowcaseHandler) SignUp(c *gin.Context) {
	state, submitted, ok := h.bindView(c, ViewSignUp)
	if !ok {
		return
	}

	if !submitted {
		p := newPage(state)
		if name, exists := c.GetPostForm("name"); exists {
			p.Name = name
		}
		p.Password = c.PostForm("password")
		c.HTML(http.StatusOK, templateName, p)
		return
	}

	var request SignUpRequest
	fields, ok := handler.BindForm(c, &request, signUpMessages)
	if !ok {
		return
	}

	p := newPage(state)
	p.Name = request.Name
	p.Password = request.Password

	if len(fields) > 0 {
		handler.RecordRejected(h.metrics, formSignUp, fields)
		p.Errors = fields
		c.HTML(http.StatusUnprocessableEntity, templateName, p)
		return
	}

	receipt, err := h.showcaseService.SignUp(c.Request.Context(), &request)
	if err != nil {
		h.renderFailure(c, formSignUp, p, err)
		return
	}

	h.metrics.RecordSubmission(formSignUp, metrics.OutcomeAccepted)
	c.HTML(http.StatusOK, "accepted", web.AcceptedPage{
		PageData:  web.PageData{Title: "Welcome", Page: string(ViewSignUp)},
		Heading:   "Your account is on its way",
		ReceiptID: receipt.ID,
	})
}

func (h *ShowcaseHandler) LogIn(c *gin.Context) {
	state, submitted, ok := h.bindView(c, ViewLogIn)
	if !ok {
		return
	}

	if !submitted {
		p := newPage(state)
		p.Password = c.PostForm("password")
		c.HTML(http.StatusOK, templateName, p)
		return
	}

	var request LogInRequest
	fields, ok := handler.BindForm(c, &request, logInMessages)
	if !ok {
		return
	}

	p := newPage(state)
	p.Password = request.Password

	if len(fields) > 0 {
		handler.RecordRejected(h.metrics, formLogIn, fields)
		p.Errors = fields
		c.HTML(http.StatusUnprocessableEntity, templateName, p)
		return
	}

	receipt, err := h.showcaseService.LogIn(c.Request.Context(), &request)
	if err != nil {
		h.renderFailure(c, formLogIn, p, err)
		return
	}

	h.metrics.RecordSubmission(formLogIn, metrics.OutcomeAccepted)
	c.HTML(http.StatusOK, "accepted", web.AcceptedPage{
		PageData:  web.PageData{Title: "Welcome back", Page: string(ViewLogIn)},
		Heading:   "Welcome back, " + DisplayName(request.Email),
		ReceiptID: receipt.ID,
	})
}

// bindView restores the view state and applies back / toggle actions.
// submitted is true when the view's own form was submitted.
func (h *ShowcaseHandler) bindView(c *gin.Context, current View) (state State, submitted bool, ok bool) {
	var form viewForm
	if err := c.ShouldBind(&form); err != nil {
		handler.RespondError(c, err, sharedError.InvalidRequest)
		return State{}, false, false
	}

	state = State{View: current, Email: form.Email, ShowPassword: form.ShowPassword}
	switch form.Action {
	case actionBack:
		state.Back()
		h.metrics.RecordTransition(string(current), string(state.View))
		return state, false, true
	case actionTogglePassword:
		state.ShowPassword.Toggle()
		return state, false, true
	case actionContinue, "":
		return state, true, true
	default:
		handler.RespondError(c, fmt.Errorf("unknown action %q", form.Action), sharedError.InvalidRequest)
		return State{}, false, false
	}
}

func (h *ShowcaseHandler) renderFailure(c *gin.Context, form string, p page, err error) {
	resp := handler.ResponseFor(err)
	c.Error(err)
	h.metrics.RecordSubmission(form, metrics.OutcomeFailed)

	p.Error = resp.Message
	c.HTML(resp.Status, templateName, p)
}

// SignInAPI is the JSON form of the sign-in transition.
func (h *ShowcaseHandler) SignInAPI(c *gin.Context) {
	var request SignInRequest

	if !handler.BindJSON(c, &request, signInMessages) {
		h.metrics.RecordSubmission(formSignIn, metrics.OutcomeInvalid)
		return
	}

	state := NewState()
	h.showcaseService.SignIn(c.Request.Context(), &state, &request)
	h.metrics.RecordSubmission(formSignIn, metrics.OutcomeAccepted)
	h.metrics.RecordTransition(string(ViewSignIn), string(state.View))

	c.JSON(http.StatusOK, SignInResponse{
		View:  state.View,
		Email: state.Email,
		Name:  NamePrefill(state.Email),
	})
}

// NavVisibility answers the scroll check for the navigation bar.
func (h *ShowcaseHandler) NavVisibility(c *gin.Context) {
	var request NavVisibilityRequest

	if !handler.BindJSON(c, &request, nil) {
		return
	}

	visible := web.NavVisible(web.Rect{Top: request.Top, Bottom: request.Bottom}, request.ViewportHeight)
	c.JSON(http.StatusOK, NavVisibilityResponse{Visible: visible})
}
