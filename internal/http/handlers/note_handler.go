package handlers

import (
	"errors"

	applog "meno/internal/log"
	"meno/internal/metrics"
	"meno/internal/services"
	"meno/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type NoteHandler struct {
	Notes   *services.NoteService
	Metrics *metrics.Metrics
}

type noteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// parse reads an optional JSON body. Malformed JSON and non-string title or
// content values are both rejected.
func (h *NoteHandler) parse(c *fiber.Ctx) (noteRequest, error) {
	var in noteRequest
	// An empty body leaves both fields null.
	if len(c.Body()) == 0 {
		return in, nil
	}
	err := c.BodyParser(&in)
	return in, err
}

func badBody(c *fiber.Ctx, action string) error {
	werr := c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	applog.Security(c, action, nil)
	return werr
}

func (h *NoteHandler) record(op string, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, services.ErrNotFoundOrForbidden):
		outcome = "miss"
	default:
		outcome = "error"
	}
	h.Metrics.NoteOps.WithLabelValues(op, outcome).Inc()
}

func (h *NoteHandler) List(c *fiber.Ctx) error {
	cl, _ := CurrentClaims(c)
	notes, err := h.Notes.List(c.UserContext(), cl.ID)
	h.record("list", err)
	if err != nil {
		return fail(c, err, "note.list.fail", nil)
	}
	return c.JSON(notes)
}

func (h *NoteHandler) Create(c *fiber.Ctx) error {
	cl, _ := CurrentClaims(c)
	in, err := h.parse(c)
	if err != nil {
		return badBody(c, "note.create.invalid")
	}
	id, err := h.Notes.Create(c.UserContext(), cl.ID, in.Title, in.Content)
	h.record("create", err)
	if err != nil {
		return fail(c, err, "note.create.fail", nil)
	}
	c.Status(fiber.StatusCreated)
	applog.Audit(c, "note.create", map[string]any{"note": id})
	return c.JSON(fiber.Map{"id": id})
}

func (h *NoteHandler) Update(c *fiber.Ctx) error {
	cl, _ := CurrentClaims(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		// Unparseable ids cannot match a row.
		h.record("update", services.ErrNotFoundOrForbidden)
		return deny(c, services.ErrNotFoundOrForbidden, "note.update.miss", map[string]any{"note": c.Params("id")})
	}
	in, err := h.parse(c)
	if err != nil {
		return badBody(c, "note.update.invalid")
	}
	err = h.Notes.Update(c.UserContext(), id, cl.ID, in.Title, in.Content)
	h.record("update", err)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrNotFoundOrForbidden):
		return deny(c, err, "note.update.miss", map[string]any{"note": id})
	default:
		return fail(c, err, "note.update.fail", map[string]any{"note": id})
	}
	applog.Audit(c, "note.update", map[string]any{"note": id})
	return c.JSON(fiber.Map{"message": "Note updated successfully"})
}

func (h *NoteHandler) Delete(c *fiber.Ctx) error {
	cl, _ := CurrentClaims(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		h.record("delete", services.ErrNotFoundOrForbidden)
		return deny(c, services.ErrNotFoundOrForbidden, "note.delete.miss", map[string]any{"note": c.Params("id")})
	}
	err := h.Notes.Delete(c.UserContext(), id, cl.ID)
	h.record("delete", err)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrNotFoundOrForbidden):
		return deny(c, err, "note.delete.miss", map[string]any{"note": id})
	default:
		return fail(c, err, "note.delete.fail", map[string]any{"note": id})
	}
	applog.Audit(c, "note.delete", map[string]any{"note": id})
	return c.JSON(fiber.Map{"message": "Note deleted successfully"})
}
