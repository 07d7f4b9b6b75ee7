package model

import (
	"fmt"
	"regexp"

	log "github.com/sirupsen/logrus"
)

const (
	ErrorInvalidRequest = 100001
	ErrorEngine         = 100002
	ErrorStore          = 100003
	ErrorStatusProbe    = 100004
)

var ErrorMessages = map[int]string{
	ErrorInvalidRequest: "ungültige Anfrage",
	ErrorEngine:         "Chat fehlgeschlagen",
	ErrorStore:          "Vektor-Store Fehler",
	ErrorStatusProbe:    "Status-Test fehlgeschlagen",
}

type Error struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	InnerError error  `json:"inner_error"`
}

func (err Error) Error() string {
	return err.Message
}

// NewError logs the inner error once at creation and keeps only code+message,
// so provider details never leak into HTTP responses.
func NewError(code int, innerError error) *Error {
	if innerError != nil {
		var re = regexp.MustCompile(`[\n\t]+`)
		innerErrorString := re.ReplaceAllString(fmt.Sprintf("%+v", innerError), " ")
		log.Errorf("NewError code:%d, message:%s, innerError:%+v", code, ErrorMessages[code], innerErrorString)
	}
	return &Error{
		Code:    code,
		Message: ErrorMessages[code],
	}
}

func NewErrorWithMessage(code int, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}
