package uaccount

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/mitchellh/mapstructure"
)

// Response is the decoded JSON body of a successful call. Numbers are kept
// as json.Number so integer fields round-trip exactly.
type Response map[string]interface{}

// RetCode returns the RetCode field and whether it was present as an integer.
func (r Response) RetCode() (int, bool) {
	switch v := r["RetCode"].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

// Message returns the Message field, or "" if absent.
func (r Response) Message() string {
	if s, ok := r["Message"].(string); ok {
		return s
	}
	return ""
}

// Action returns the echoed Action field.
func (r Response) Action() string {
	if s, ok := r["Action"].(string); ok {
		return s
	}
	return ""
}

// Decode copies the response into out, a pointer to a struct, converting
// loosely typed values (numbers sent as strings and the like).
func (r Response) Decode(out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]interface{}(r))
}

// CheckResponse classifies a raw HTTP response. In order: a non-200 status
// is a *ServerError carrying the raw body; a body that is not a JSON object
// with an integer RetCode is a *ClientError; a nonzero RetCode is an
// *APIError. Anything else is returned as the parsed Response.
func CheckResponse(statusCode int, body []byte) (Response, error) {
	if statusCode != http.StatusOK {
		return nil, &ServerError{StatusCode: statusCode, Body: string(body)}
	}

	resp, err := parseBody(body)
	if err != nil {
		return nil, &ClientError{Message: errUnknown, Err: err}
	}

	code, ok := resp.RetCode()
	if !ok {
		return nil, &ClientError{Message: errUnknown, Err: errors.New("missing or non-integer RetCode")}
	}
	if code != 0 {
		return nil, &APIError{Code: code, Message: resp.Message()}
	}

	return resp, nil
}

func parseBody(body []byte) (Response, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var resp Response
	if err := dec.Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if resp == nil {
		return nil, errors.New("response is not a JSON object")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON object")
	}
	return resp, nil
}
