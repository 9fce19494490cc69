package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http/httptest"
	"strings"
	"testing"

	"hirehub/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type errorResponse struct {
	Message string                `json:"message"`
	Errors  []response.FieldError `json:"errors"`
}

func testApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(NewErrorMiddleware(log.New(io.Discard, "", 0)).Middleware())
	app.Get("/", handler)
	return app
}

func doRequest(t *testing.T, app *fiber.App) (int, errorResponse) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.StatusCode, body
}

func TestErrorMiddlewarePassesAppErrorThrough(t *testing.T) {
	app := testApp(func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusForbidden, "Access denied", nil)
	})

	status, body := doRequest(t, app)
	if status != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", status)
	}
	if body.Message != "Access denied" {
		t.Errorf("expected Access denied, got %q", body.Message)
	}
}

func TestErrorMiddlewareRendersFieldErrors(t *testing.T) {
	fields := []response.FieldError{
		{Field: "title", Message: "Job title is required"},
		{Field: "skills", Message: "At least one skill is required"},
	}
	app := testApp(func(c fiber.Ctx) error {
		return NewValidationAppError(fields, errors.New("validation failed"))
	})

	status, body := doRequest(t, app)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if len(body.Errors) != 2 || body.Errors[0].Field != "title" {
		t.Errorf("expected field errors, got %+v", body.Errors)
	}
}

func TestErrorMiddlewareHidesInternalDetail(t *testing.T) {
	app := testApp(func(c fiber.Ctx) error {
		return errors.New("pq: connection refused")
	})

	status, body := doRequest(t, app)
	if status != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if body.Message != response.MessageServerError {
		t.Errorf("expected generic message, got %q", body.Message)
	}
	if strings.Contains(body.Message, "connection refused") {
		t.Error("internal detail must not leak to the client")
	}
}

func TestErrorMiddlewareRecoversFromPanic(t *testing.T) {
	app := testApp(func(c fiber.Ctx) error {
		panic("boom")
	})

	status, body := doRequest(t, app)
	if status != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if body.Message != response.MessageServerError {
		t.Errorf("expected generic message, got %q", body.Message)
	}
}

func TestErrorMiddlewareNormalizesFiberErrors(t *testing.T) {
	app := testApp(func(c fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Job not found")
	})

	status, body := doRequest(t, app)
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if body.Message != "Job not found" {
		t.Errorf("expected Job not found, got %q", body.Message)
	}
}
