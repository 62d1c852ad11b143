package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/os-sim/os-sim/config"
	"github.com/os-sim/os-sim/sim/fcfs"
	"github.com/os-sim/os-sim/sim/lru"
	"github.com/os-sim/os-sim/sim/scenario"
	"github.com/os-sim/os-sim/sim/trace"
)

// SchedulerRequest is the body of POST /api/v1/fcfs.
type SchedulerRequest struct {
	Processes []fcfs.Process `json:"processes"`
}

// SchedulerResponse is the body returned by POST /api/v1/fcfs.
type SchedulerResponse struct {
	*trace.FCFSRun
	ReplayIntervalMs int64 `json:"replay_interval_ms"`
}

// PagingRequest is the body of POST /api/v1/lru. A missing frame_count uses the
// configured default.
type PagingRequest struct {
	ReferenceString string `json:"reference_string"`
	FrameCount      *int   `json:"frame_count"`
}

// PagingResponse is the body returned by both LRU routes.
type PagingResponse struct {
	*trace.LRURun
	ReplayIntervalMs int64 `json:"replay_interval_ms"`
}

// SimulatorHandler serves the simulation routes. It holds only configuration;
// every request builds its own engine state.
type SimulatorHandler struct {
	cfg *config.ServerConfig
}

// NewSimulatorHandler returns a handler bound to cfg.
func NewSimulatorHandler(cfg *config.ServerConfig) *SimulatorHandler {
	return &SimulatorHandler{cfg: cfg}
}

// FirstComeFirstServe handles POST /api/v1/fcfs.
func (h *SimulatorHandler) FirstComeFirstServe(c *fiber.Ctx) error {
	var req SchedulerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}
	if len(req.Processes) > h.cfg.MaxProcesses {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("too many processes: %d > %d", len(req.Processes), h.cfg.MaxProcesses))
	}
	if err := fcfs.Validate(req.Processes); err != nil {
		return err
	}

	rec := trace.RunFCFS("", req.Processes)
	return c.JSON(SchedulerResponse{
		FCFSRun:          rec.FCFS,
		ReplayIntervalMs: durationMs(h.cfg.ScheduleInterval),
	})
}

// LeastRecentlyUsed handles POST /api/v1/lru.
func (h *SimulatorHandler) LeastRecentlyUsed(c *fiber.Ctx) error {
	var req PagingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}
	frames := h.cfg.DefaultFrames
	if req.FrameCount != nil {
		frames = *req.FrameCount
	}
	return h.simulate(c, req.ReferenceString, frames)
}

// LeastRecentlyUsedQuery handles GET /api/v1/lru?refs=7,0,1&frames=3. An
// unparseable frames value falls back to the configured default.
func (h *SimulatorHandler) LeastRecentlyUsedQuery(c *fiber.Ctx) error {
	frames := lru.ParseFrameCount(c.Query("frames"), h.cfg.DefaultFrames)
	return h.simulate(c, c.Query("refs"), frames)
}

func (h *SimulatorHandler) simulate(c *fiber.Ctx, raw string, frames int) error {
	refs := lru.ParseReferenceString(raw)
	if err := lru.ValidateReferenceString(refs); err != nil {
		return err
	}
	if len(refs) > h.cfg.MaxReferences {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("reference string too long: %d > %d", len(refs), h.cfg.MaxReferences))
	}
	if err := lru.ValidateFrameCount(frames, h.cfg.MinFrames, h.cfg.MaxFrames); err != nil {
		return err
	}

	rec := trace.RunLRU("", refs, frames)
	return c.JSON(PagingResponse{
		LRURun:           rec.LRU,
		ReplayIntervalMs: durationMs(h.cfg.PagingInterval),
	})
}

// Presets handles GET /api/v1/presets.
func (h *SimulatorHandler) Presets(c *fiber.Ctx) error {
	return c.JSON(scenario.Default())
}

func durationMs(d time.Duration) int64 {
	return d.Milliseconds()
}
