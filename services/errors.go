package services

import (
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceError represents a typed error with an HTTP status code. Err keeps the
// underlying cause for logging and is never shown to clients.
type ServiceError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func NotFound(message string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusNotFound, Message: message}
}

func Validation(message string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Message: message}
}

func Persistence(message string, err error) *ServiceError {
	return &ServiceError{StatusCode: http.StatusInternalServerError, Message: message, Err: err}
}

// parseID converts a hex id from the URL, naming the entity in the error.
func parseID(id, entity string) (primitive.ObjectID, *ServiceError) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, Validation("Invalid " + entity + " ID.")
	}
	return oid, nil
}
