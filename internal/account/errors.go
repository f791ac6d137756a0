package account

import (
	"net/http"

	sharedError "github.com/funfun03/form-showcase/internal/shared/error"
)

const (
	submissionRejected = "SUBMISSION_REJECTED" // errInfo
)

var (
	ErrSubmissionRejected = sharedError.NewDomainError(submissionRejected)
)

func init() {
	sharedError.RegisterDomainErrorResponse(submissionRejected, sharedError.ErrorResponse{
		Status:  http.StatusBadGateway,
		Code:    "SUBMIT-001",
		Message: "Your details could not be submitted, please try again.",
	})
}
