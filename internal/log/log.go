// Package log writes one JSON object per line through the standard logger,
// enriched with whatever the current request can tell about itself.
package log

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"meno/internal/domain"
)

type Level string

const (
	LevelInfo  Level = "info"
	LevelAudit Level = "audit"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

type line struct {
	TS     string         `json:"ts"`
	Level  Level          `json:"level"`
	Action string         `json:"action"`
	ReqID  string         `json:"req_id,omitempty"`
	UserID int64          `json:"user_id,omitempty"`
	IP     string         `json:"ip,omitempty"`
	Method string         `json:"method,omitempty"`
	Route  string         `json:"route,omitempty"`
	Status int            `json:"status,omitempty"`
	Err    string         `json:"err,omitempty"`
	Fields map[string]any `json:"fields,omitempty"`
}

// fromRequest fills the request part of l. Status is the response status as
// set so far, so callers log after they have written the response.
func (l *line) fromRequest(c *fiber.Ctx) {
	l.IP = c.IP()
	l.Method = c.Method()
	l.Route = c.Path()
	l.Status = c.Response().StatusCode()
	if rid, ok := c.Locals("requestid").(string); ok {
		l.ReqID = rid
	}
	if cl, ok := c.Locals("claims").(domain.Claims); ok {
		l.UserID = cl.ID
	}
}

func emit(level Level, c *fiber.Ctx, action string, err error, fields map[string]any) {
	l := line{
		TS:     time.Now().UTC().Format(time.RFC3339),
		Level:  level,
		Action: action,
		Fields: fields,
	}
	if c != nil {
		l.fromRequest(c)
	}
	if err != nil {
		l.Err = err.Error()
	}
	b, mErr := json.Marshal(l)
	if mErr != nil {
		// Only an unencodable field value gets here.
		l.Fields = nil
		l.Err = mErr.Error()
		b, _ = json.Marshal(l)
	}
	log.Println(string(b))
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	emit(LevelInfo, c, action, nil, fields)
}

// Audit records a state change made on behalf of the caller.
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	emit(LevelAudit, c, action, nil, fields)
}

// Security records a refused or suspicious request.
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	emit(LevelWarn, c, action, nil, fields)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	emit(LevelError, c, action, err, fields)
}
