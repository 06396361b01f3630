package pkg

// AppError is the error shape handlers return to clients.
//
// Err keeps the underlying cause for logs; it is never serialized.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Details    []string
	Fields     []string
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
	Fields  []string `json:"fields,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithDetails attaches per-field messages and their field paths.
func (e *AppError) WithDetails(details, fields []string) *AppError {
	e.Details = details
	e.Fields = fields
	return e
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Errors: e.Details, Fields: e.Fields}
}
