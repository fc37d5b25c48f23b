package services

// ServiceError is a typed error with an HTTP status code. Service methods
// return it rather than panicking so failure handling stays uniform across
// every operation.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func badRequest(msg string) *ServiceError {
	return &ServiceError{StatusCode: 400, Message: msg}
}

func notFound(msg string) *ServiceError {
	return &ServiceError{StatusCode: 404, Message: msg}
}

func internal(msg string) *ServiceError {
	return &ServiceError{StatusCode: 500, Message: msg}
}
