package echo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	errInvalidUTF8      = errors.New("body is not valid UTF-8")
	errNotObject        = errors.New("body must be a JSON object")
	errMissingMessage   = errors.New("missing required property message")
	errDuplicateMessage = errors.New("duplicate property message")
	errNullMessage      = errors.New("message must be a string")
)

// Payload is both the request and the response body of the echo endpoint.
// Unknown properties are accepted and dropped.
type Payload struct {
	_       struct{} `json:"-" additionalProperties:"true"`
	Message string   `json:"message" doc:"Arbitrary text, returned unchanged" example:"ping"`
}

// UnmarshalJSON rejects input that encoding/json would otherwise repair or
// resolve silently: invalid UTF-8 and a repeated message property.
func (p *Payload) UnmarshalJSON(data []byte) error {
	if !utf8.Valid(data) {
		return errInvalidUTF8
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errNotObject
	}

	var message *string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if key, _ := tok.(string); key != "message" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return err
			}
			continue
		}
		if message != nil {
			return errDuplicateMessage
		}
		if err := dec.Decode(&message); err != nil {
			return fmt.Errorf("message: %w", err)
		}
		if message == nil {
			return errNullMessage
		}
	}
	if message == nil {
		return errMissingMessage
	}
	p.Message = *message
	return nil
}

// Input is the request wrapper for POST /echo.
type Input struct {
	Body Payload
}

// Output is the response wrapper for POST /echo.
type Output struct {
	Body Payload
}
