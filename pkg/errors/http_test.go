package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgErrors "schedule-interpreter/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPError(409, "already exists")
	if err.StatusCode != 409 || err.Code != 409 {
		t.Errorf("unexpected codes %d/%d", err.StatusCode, err.Code)
	}
	if err.Error() != "409: already exists" {
		t.Errorf("Error() = %q", err.Error())
	}

	wrapped := fmt.Errorf("handler: %w", err)
	var target *pkgErrors.HTTPError
	if !errors.As(wrapped, &target) || target.Message != "already exists" {
		t.Errorf("errors.As failed on wrapped HTTPError")
	}
}
