package log

import (
	"bytes"
	"encoding/json"
	"errors"
	stdlog "log"
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meno/internal/domain"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldW, oldFlags := stdlog.Writer(), stdlog.Flags()
	stdlog.SetOutput(&buf)
	stdlog.SetFlags(0)
	t.Cleanup(func() {
		stdlog.SetOutput(oldW)
		stdlog.SetFlags(oldFlags)
	})
	return &buf
}

func decode(t *testing.T, buf *bytes.Buffer) line {
	t.Helper()
	var l line
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &l))
	return l
}

func TestLineCarriesRequestContext(t *testing.T) {
	buf := capture(t)

	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		c.Locals("requestid", "rid-1")
		c.Locals("claims", domain.Claims{ID: 42, Email: "a@b.c", Role: "r"})
		c.Status(fiber.StatusTeapot)
		Error(c, "thing.fail", errors.New("kaput"), map[string]any{"k": "v"})
		return nil
	})
	_, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)

	l := decode(t, buf)
	assert.Equal(t, LevelError, l.Level)
	assert.Equal(t, "thing.fail", l.Action)
	assert.Equal(t, "rid-1", l.ReqID)
	assert.Equal(t, int64(42), l.UserID)
	assert.Equal(t, "GET", l.Method)
	assert.Equal(t, "/x", l.Route)
	assert.Equal(t, fiber.StatusTeapot, l.Status)
	assert.Equal(t, "kaput", l.Err)
	assert.Equal(t, "v", l.Fields["k"])
}

func TestLineWithoutRequest(t *testing.T) {
	buf := capture(t)

	Info(nil, "boot", nil)

	l := decode(t, buf)
	assert.Equal(t, LevelInfo, l.Level)
	assert.Zero(t, l.UserID)
	assert.Zero(t, l.Status)
	assert.Empty(t, l.Route)
}

func TestUnencodableFieldsStillLog(t *testing.T) {
	buf := capture(t)

	Audit(nil, "odd", map[string]any{"n": math.Inf(1)})

	l := decode(t, buf)
	assert.Equal(t, "odd", l.Action)
	assert.Nil(t, l.Fields)
	assert.NotEmpty(t, l.Err)
}
