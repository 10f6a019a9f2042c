package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	var statusErr error
	switch resp.StatusCode() {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusBadRequest:
		statusErr = ErrBadRequest
	case http.StatusUnauthorized:
		statusErr = ErrUnauthorized
	case http.StatusForbidden:
		statusErr = ErrForbidden
	case http.StatusInternalServerError:
		statusErr = ErrInternalServerError
	default:
		statusErr = fmt.Errorf("%w %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	return fmt.Errorf("%w: %w: %s", ErrRemoteUnavailable, statusErr, body)
}
