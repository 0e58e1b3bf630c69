// Package api serves the scheduling policies over HTTP.
package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/vinhtrinh326/cpusched/internal/metrics"
	"github.com/vinhtrinh326/cpusched/internal/process"
	"github.com/vinhtrinh326/cpusched/internal/scheduler"
)

type SchedulerHandler interface {
	Schedule(ctx *fiber.Ctx) error
	Compare(ctx *fiber.Ctx) error
	Policies(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	defaultQuantum int64
}

func NewSchedulerHandlerImpl(defaultQuantum int64) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{defaultQuantum: defaultQuantum}
}

// NewApp registers the handler's routes on a new fiber app.
func NewApp(h SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(requestLogger)
	app.Get("/healthz", h.Health)

	v1 := app.Group("/api/v1")
	{
		v1.Get("/policies", h.Policies)
		v1.Post("/schedule/:policy", h.Schedule)
		v1.Post("/compare", h.Compare)
	}
	return app
}

func requestLogger(ctx *fiber.Ctx) error {
	err := ctx.Next()
	logrus.WithFields(logrus.Fields{
		"method": ctx.Method(),
		"path":   ctx.Path(),
		"status": ctx.Response().StatusCode(),
	}).Info("handled request")
	return err
}

func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	policy, err := scheduler.ParsePolicy(ctx.Params("policy"))
	if err != nil {
		return fail(ctx, fiber.StatusNotFound, err)
	}
	request, quantum, err := s.parse(ctx)
	if err != nil {
		return fail(ctx, fiber.StatusBadRequest, err)
	}

	ps := toProcesses(request.Processes)
	trace, err := scheduler.Run(policy, ps, quantum)
	if err != nil {
		return fail(ctx, statusFor(err), err)
	}
	summary, err := metrics.Summarize(ps)
	if err != nil {
		return fail(ctx, fiber.StatusInternalServerError, err)
	}
	return ctx.JSON(newScheduleResponse(policy, quantum, ps, trace, summary))
}

func (s *SchedulerHandlerImpl) Compare(ctx *fiber.Ctx) error {
	request, quantum, err := s.parse(ctx)
	if err != nil {
		return fail(ctx, fiber.StatusBadRequest, err)
	}

	results, err := scheduler.Compare(toProcesses(request.Processes), quantum)
	if err != nil {
		return fail(ctx, statusFor(err), err)
	}
	response := CompareResponse{Results: make([]ScheduleResponse, 0, len(results))}
	for _, r := range results {
		summary, err := metrics.Summarize(r.Processes)
		if err != nil {
			return fail(ctx, fiber.StatusInternalServerError, err)
		}
		response.Results = append(response.Results, newScheduleResponse(r.Policy, quantum, r.Processes, r.Trace, summary))
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Policies(ctx *fiber.Ctx) error {
	policies := make([]fiber.Map, 0, len(scheduler.Policies()))
	for _, p := range scheduler.Policies() {
		policies = append(policies, fiber.Map{
			"name":          string(p),
			"title":         p.Title(),
			"needs_quantum": p.NeedsQuantum(),
		})
	}
	return ctx.JSON(fiber.Map{"policies": policies, "default_quantum": s.defaultQuantum})
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

// parse decodes the request body. The server default applies only when the
// quantum is omitted; an explicit value, even zero, is passed on as given.
func (s *SchedulerHandlerImpl) parse(ctx *fiber.Ctx) (ScheduleRequest, int64, error) {
	var request ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return request, 0, errors.New("invalid request format")
	}
	quantum := s.defaultQuantum
	if request.Quantum != nil {
		quantum = *request.Quantum
	}
	return request, quantum, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, process.ErrEmptyInput),
		errors.Is(err, process.ErrInvalidProcess),
		errors.Is(err, scheduler.ErrInvalidConfiguration):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func fail(ctx *fiber.Ctx, status int, err error) error {
	logrus.Debugf("request failed with %d: %v", status, err)
	return ctx.Status(status).JSON(ErrorResponse{Error: err.Error()})
}
