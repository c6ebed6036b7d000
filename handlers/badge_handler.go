package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jgrivera/fruition/middleware"
	"github.com/jgrivera/fruition/models"
	"github.com/jgrivera/fruition/repository"
)

const badgeCreatedMessage = "Successfully created badge"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

type BadgeRequest struct {
	Name string `json:"name" validate:"notblank"`
}

type BadgeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func toBadgeResponse(badge *models.Badge) BadgeResponse {
	return BadgeResponse{ID: badge.ID.String(), Name: badge.Name}
}

type BadgeHandler struct {
	repo repository.BadgeRepository
}

func NewBadgeHandler(repo repository.BadgeRepository) *BadgeHandler {
	return &BadgeHandler{repo: repo}
}

func (h *BadgeHandler) ListBadges(c *fiber.Ctx) error {
	badges, err := h.repo.List(c.UserContext())
	if err != nil {
		return internalError(c, err, "Failed to retrieve badges")
	}

	response := make([]BadgeResponse, 0, len(badges))
	for i := range badges {
		response = append(response, toBadgeResponse(&badges[i]))
	}
	return c.JSON(response)
}

func (h *BadgeHandler) GetBadge(c *fiber.Ctx) error {
	id, ok := badgeID(c)
	if !ok {
		return badgeNotFound(c)
	}

	badge, err := h.repo.GetByID(c.UserContext(), id)
	if errors.Is(err, repository.ErrBadgeNotFound) {
		return badgeNotFound(c)
	}
	if err != nil {
		return internalError(c, err, "Failed to retrieve badge")
	}

	return c.JSON(toBadgeResponse(badge))
}

func (h *BadgeHandler) CreateBadge(c *fiber.Ctx) error {
	req, msg := parseBadgeRequest(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	badge, err := h.repo.Create(c.UserContext(), req.Name)
	if err != nil {
		return internalError(c, err, "Failed to create badge")
	}

	middleware.Logger(c).WithField("badgeID", badge.ID).Debug("badge created")
	return c.JSON(fiber.Map{"message": badgeCreatedMessage})
}

func (h *BadgeHandler) UpdateBadge(c *fiber.Ctx) error {
	req, msg := parseBadgeRequest(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	id, ok := badgeID(c)
	if !ok {
		return badgeNotFound(c)
	}

	badge, err := h.repo.Update(c.UserContext(), id, req.Name)
	if errors.Is(err, repository.ErrBadgeNotFound) {
		return badgeNotFound(c)
	}
	if err != nil {
		return internalError(c, err, "Failed to update badge")
	}

	return c.JSON(toBadgeResponse(badge))
}

func (h *BadgeHandler) DeleteBadge(c *fiber.Ctx) error {
	id, ok := badgeID(c)
	if !ok {
		return badgeNotFound(c)
	}

	found, err := h.repo.Delete(c.UserContext(), id)
	if err != nil {
		return internalError(c, err, "Failed to delete badge")
	}
	if !found {
		return badgeNotFound(c)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// parseBadgeRequest returns a client facing message when the body is unusable.
func parseBadgeRequest(c *fiber.Ctx) (*BadgeRequest, string) {
	var req BadgeRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, "Cannot parse JSON"
	}
	if err := validate.Struct(req); err != nil {
		return nil, err.Error()
	}
	return &req, ""
}

// Only the canonical form that responses carry is accepted. Anything else is
// reported as not found, same as unknown ids.
func badgeID(c *fiber.Ctx) (uuid.UUID, bool) {
	raw := c.Params("id")
	id, err := uuid.Parse(raw)
	if err != nil || id.String() != raw {
		return uuid.Nil, false
	}
	return id, true
}

func badgeNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Badge not found"})
}

func internalError(c *fiber.Ctx, err error, message string) error {
	middleware.Logger(c).WithError(err).Error(message)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}
