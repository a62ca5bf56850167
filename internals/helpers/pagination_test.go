package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func parseOn(t *testing.T, target string) (Params, error) {
	t.Helper()

	app := fiber.New()
	var params Params
	var parseErr error
	app.Get("/", func(c *fiber.Ctx) error {
		params, parseErr = ParseFromSize(c)
		return nil
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	return params, parseErr
}

func TestParseFromSizeDefaults(t *testing.T) {
	p, err := parseOn(t, "/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.From != DefaultFrom || p.Size != DefaultSize {
		t.Errorf("expected defaults %d/%d, got %d/%d", DefaultFrom, DefaultSize, p.From, p.Size)
	}
}

func TestParseFromSizeExplicit(t *testing.T) {
	p, err := parseOn(t, "/?from=20&size=50")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Offset() != 20 || p.Limit() != 50 {
		t.Errorf("expected 20/50, got %d/%d", p.Offset(), p.Limit())
	}
}

func TestParseFromSizeCapsAtMax(t *testing.T) {
	p, err := parseOn(t, "/?size=99999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Size != MaxSize {
		t.Errorf("size should cap at %d, got %d", MaxSize, p.Size)
	}
}

func TestParseFromSizeRejectsBadValues(t *testing.T) {
	for _, target := range []string{"/?from=-1", "/?size=0", "/?size=-5", "/?from=abc", "/?size=abc"} {
		_, err := parseOn(t, target)
		fe, ok := err.(*fiber.Error)
		if !ok || fe.Code != fiber.StatusBadRequest {
			t.Errorf("%s: expected 400, got %v", target, err)
		}
	}
}
