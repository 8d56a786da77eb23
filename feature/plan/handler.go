package plan

import (
	"errors"
	"strconv"

	"nomo-governance/core/catalog"
	"nomo-governance/core/governance"
	"nomo-governance/core/logger"
	"nomo-governance/core/network"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for governance plans.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the plan routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/plans")
	group.Get("/", h.HandleNetworks)
	group.Get("/:network", h.HandlePlan)
	group.Get("/:network/payload", h.HandlePayload)
	group.Get("/:network/history", h.HandleHistory)
	group.Post("/:network/record", h.HandleRecord)
}

// HandleNetworks lists the networks that can be planned.
// @Summary List Networks
// @Description Lists the networks configured in the catalog.
// @Tags plans
// @Produce json
// @Success 200 {object} map[string]interface{} "Configured networks"
// @Router /plans [get]
func (h *Handler) HandleNetworks(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"networks": h.service.Networks()})
}

// HandlePlan returns the dry-run report of a network: every pending command
// rendered as a call, in submission order, plus per-planner counts.
// @Summary Dry-Run Report
// @Description Reads live state and returns the pending administrative commands for a network, in submission order.
// @Tags plans
// @Produce json
// @Param network path string true "Network name (e.g. bscmainnet)"
// @Success 200 {object} map[string]interface{} "Plan report"
// @Failure 400 {object} map[string]string "Unknown network"
// @Failure 404 {object} map[string]string "Network not configured"
// @Failure 422 {object} map[string]string "Configuration error"
// @Failure 502 {object} map[string]string "Chain inspection failed"
// @Router /plans/{network} [get]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	n, err := network.Parse(c.Params("network"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	plan, err := h.service.Plan(c.Context(), n)
	if err != nil {
		return h.fail(c, l, "Plan failed", err)
	}

	commands := make([]string, len(plan.Commands))
	for i, cmd := range plan.Commands {
		commands[i] = cmd.String()
	}

	return c.JSON(fiber.Map{
		"network":  plan.Network,
		"live":     plan.Live,
		"summary":  plan.Summary,
		"commands": commands,
	})
}

// HandlePayload returns the timelock proposal for a network.
// @Summary Timelock Proposal
// @Description Encodes the pending commands as a timelock proposal (targets, values, signatures, calldatas).
// @Tags plans
// @Produce json
// @Param network path string true "Network name"
// @Success 200 {object} governance.Proposal "Proposal payload"
// @Failure 400 {object} map[string]string "Unknown network"
// @Failure 502 {object} map[string]string "Chain inspection failed"
// @Router /plans/{network}/payload [get]
func (h *Handler) HandlePayload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	n, err := network.Parse(c.Params("network"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	_, proposal, err := h.service.Payload(c.Context(), n)
	if err != nil {
		return h.fail(c, l, "Payload failed", err)
	}
	return c.JSON(proposal)
}

// HandleHistory returns stored plan records, newest first.
// @Summary Plan History
// @Description Returns recorded plan runs for a network, newest first.
// @Tags plans
// @Produce json
// @Param network path string true "Network name"
// @Param limit query int false "Maximum records (default 20, max 100)"
// @Success 200 {object} map[string]interface{} "Stored records"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 503 {object} map[string]string "History store not configured"
// @Router /plans/{network}/history [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	n, err := network.Parse(c.Params("network"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must be a number"})
		}
	}

	records, err := h.service.History(c.Context(), n, limit)
	if err != nil {
		return h.fail(c, l, "History failed", err)
	}
	return c.JSON(fiber.Map{"network": n, "records": records})
}

// HandleRecord computes and stores a plan record.
// @Summary Record Plan
// @Description Computes the plan for a network and stores it in the history table.
// @Tags plans
// @Produce json
// @Param network path string true "Network name"
// @Success 201 {object} models.PlanRecord "Stored record"
// @Failure 400 {object} map[string]string "Unknown network"
// @Failure 503 {object} map[string]string "History store not configured"
// @Router /plans/{network}/record [post]
func (h *Handler) HandleRecord(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	n, err := network.Parse(c.Params("network"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	record, err := h.service.Record(c.Context(), n)
	if err != nil {
		return h.fail(c, l, "Record failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, network.ErrUnknown):
		return fiber.StatusBadRequest
	case errors.Is(err, catalog.ErrNetworkNotConfigured):
		return fiber.StatusNotFound
	case errors.Is(err, governance.ErrConfiguration):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, governance.ErrInspection):
		return fiber.StatusBadGateway
	case errors.Is(err, ErrNoHistory), errors.Is(err, ErrNoStorage):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
