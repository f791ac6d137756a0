package registration_test

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/funfun03/form-showcase/internal/account"
	"github.com/funfun03/form-showcase/internal/registration"
	sharedError "github.com/funfun03/form-showcase/internal/shared/error"
	"github.com/funfun03/form-showcase/internal/shared/metrics"
	"github.com/funfun03/form-showcase/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupRegistrationRouter(gateway account.Gateway) *gin.Engine {
	router := testutil.SetupTestRouter()

	service := registration.NewRegistrationService(gateway, account.NewHasher(bcrypt.MinCost))
	h := registration.NewRegistrationHandler(service, metrics.NewCollector(prometheus.NewRegistry()))

	router.GET("/register", h.Page)
	router.POST("/register", h.Submit)
	router.POST("/api/v1/forms/register", h.API)

	return router
}

func validForm() url.Values {
	return url.Values{
		"firstName":       {"Alice"},
		"lastName":        {"Nguyen"},
		"phone":           {"0912345678"},
		"email":           {"alice@example.com"},
		"password":        {"abc12345"},
		"confirmPassword": {"abc12345"},
		"agreeTerms":      {"true"},
	}
}

func validRequest() registration.RegisterRequest {
	return registration.RegisterRequest{
		FirstName:       "Alice",
		LastName:        "Nguyen",
		Phone:           "0912345678",
		Email:           "alice@example.com",
		Password:        "abc12345",
		ConfirmPassword: "abc12345",
		AgreeTerms:      true,
	}
}

func TestPage_SubmitDisabledUntilTermsAccepted(t *testing.T) {
	router := setupRegistrationRouter(testutil.NewMockGateway())

	w := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/register"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `id="createAccount" type="submit" disabled`)
}

func TestSubmit_Success(t *testing.T) {
	// Given
	gateway := testutil.NewMockGateway()
	router := setupRegistrationRouter(gateway)

	// When
	w := testutil.ExecuteForm(t, router, "/register", validForm())

	// Then
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock-receipt")

	submitted := gateway.Last()
	require.NotNil(t, submitted)
	assert.Equal(t, "register", submitted.Form)
	assert.Equal(t, "alice@example.com", submitted.Email)
	assert.NotContains(t, submitted.Fields, "password")
	assert.NotContains(t, submitted.Fields, "confirmPassword")
	assert.Equal(t, false, submitted.Fields["wantEmails"])
}

func TestSubmit_PasswordMismatch(t *testing.T) {
	// Given: confirmation differs by one character
	gateway := testutil.NewMockGateway()
	router := setupRegistrationRouter(gateway)
	form := validForm()
	form.Set("confirmPassword", "abc1234")

	// When
	w := testutil.ExecuteForm(t, router, "/register", form)

	// Then
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Passwords must match")
	assert.Nil(t, gateway.Last())
}

func TestSubmit_FieldRules(t *testing.T) {
	testCases := []struct {
		name    string
		field   string
		value   string
		message string
	}{
		{"short first name", "firstName", "A", "First name must be at least 2 characters"},
		{"missing last name", "lastName", "", "Last name is required"},
		{"phone too short", "phone", "12345", "Phone number is not valid"},
		{"phone with letters", "phone", "09123abc78", "Phone number is not valid"},
		{"malformed email", "email", "alice@", "Invalid email"},
		{"short password", "password", "abc12", "Password must be at least 6 characters"},
		{"password over 72 bytes", "password", strings.Repeat("a", 73), "Password cannot exceed 72 bytes"},
		{"markup in first name", "firstName", "<i>Al</i>", "First name cannot contain HTML markup"},
		{"markup in last name", "lastName", "Ng<b>uyen", "Last name cannot contain HTML markup"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := setupRegistrationRouter(testutil.NewMockGateway())
			form := validForm()
			form.Set(tc.field, tc.value)
			if tc.field == "password" {
				form.Set("confirmPassword", tc.value)
			}

			w := testutil.ExecuteForm(t, router, "/register", form)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Contains(t, w.Body.String(), tc.message)
		})
	}
}

func TestSubmit_TermsNotAccepted(t *testing.T) {
	router := setupRegistrationRouter(testutil.NewMockGateway())
	form := validForm()
	form.Del("agreeTerms")

	w := testutil.ExecuteForm(t, router, "/register", form)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "You must accept the terms and conditions")
	assert.Contains(t, w.Body.String(), `id="createAccount" type="submit" disabled`)
}

func TestSubmit_ToggleDoesNotValidate(t *testing.T) {
	router := setupRegistrationRouter(testutil.NewMockGateway())
	form := url.Values{
		"password": {"abc"},
		"toggle":   {"confirmPassword"},
	}

	w := testutil.ExecuteForm(t, router, "/register", form)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `name="confirmPassword" type="text"`)
	assert.Contains(t, body, `name="password" type="password"`)
	assert.NotContains(t, body, "is required")
}

func TestSubmit_GatewayFailure(t *testing.T) {
	gateway := &testutil.MockGateway{
		SubmitFunc: func(ctx context.Context, s account.Submission) (*account.Receipt, error) {
			return nil, account.ErrSubmissionRejected
		},
	}
	router := setupRegistrationRouter(gateway)

	w := testutil.ExecuteForm(t, router, "/register", validForm())

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "could not be submitted")
	// Typed values survive the failure
	assert.Contains(t, w.Body.String(), `value="Nguyen"`)
}

func TestAPI_Success(t *testing.T) {
	router := setupRegistrationRouter(testutil.NewMockGateway())

	w := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/forms/register",
		Body:   validRequest(),
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var receipt account.Receipt
	testutil.ParseResponse(t, w, &receipt)
	assert.Equal(t, "mock-receipt", receipt.ID)
	assert.Equal(t, "register", receipt.Form)
}

func TestAPI_ValidationErrors(t *testing.T) {
	router := setupRegistrationRouter(testutil.NewMockGateway())
	request := validRequest()
	request.ConfirmPassword = "abc1234"
	request.AgreeTerms = false

	w := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/forms/register",
		Body:   request,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp sharedError.ValidationErrorResponse
	testutil.ParseResponse(t, w, &resp)
	assert.Equal(t, sharedError.ValidationFailed.Code, resp.Code)
	assert.Equal(t, "Passwords must match", resp.Fields["confirmPassword"])
	assert.Equal(t, "You must accept the terms and conditions", resp.Fields["agreeTerms"])
}

func TestAPI_GatewayFailure(t *testing.T) {
	gateway := &testutil.MockGateway{
		SubmitFunc: func(ctx context.Context, s account.Submission) (*account.Receipt, error) {
			return nil, account.ErrSubmissionRejected
		},
	}
	router := setupRegistrationRouter(gateway)

	w := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/forms/register",
		Body:   validRequest(),
	})

	require.Equal(t, http.StatusBadGateway, w.Code)
	var resp sharedError.ErrorResponse
	testutil.ParseResponse(t, w, &resp)
	assert.Equal(t, "SUBMIT-001", resp.Code)
}
