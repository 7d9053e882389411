package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError classifies a completed response. 2xx yields nil, 401 yields
// [ErrUnauthorized], anything else a [*RequestFailedError].
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}
	if status == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	return &RequestFailedError{
		StatusCode: status,
		Message:    detailMessage(resp.Body()),
	}
}

// detailMessage extracts the "detail" field of an error body. A string is
// used as is; a validation error list contributes its first "msg". Anything
// else, including a non-JSON body, yields [FallbackMessage].
func detailMessage(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return FallbackMessage
	}

	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err == nil {
		if detail = strings.TrimSpace(detail); detail != "" {
			return detail
		}
		return FallbackMessage
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(payload.Detail, &items); err == nil && len(items) > 0 {
		if msg := strings.TrimSpace(items[0].Msg); msg != "" {
			return msg
		}
	}

	return FallbackMessage
}
