package api

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cpu-scheduler-simulator/config"
	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/requests"
	"cpu-scheduler-simulator/internal/responses"
	"cpu-scheduler-simulator/internal/schedulers"
	"cpu-scheduler-simulator/internal/workload"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Workload(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PolicyFirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PolicyRoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PolicyShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PolicyPriority)
}

// Schedule serves /schedule/:policy.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	return s.schedule(ctx, ctx.Params("policy"))
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidFormat(ctx)
	}

	results, err := schedulers.ScheduleAll(request.Inputs(), s.params(request))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(responses.NewCompareResponse(uuid.NewString(), results))
}

func (s *SchedulerHandlerImpl) Workload(ctx *fiber.Ctx) error {
	count := ctx.QueryInt("count", s.config.Workload.Count)
	seed := time.Now().UnixNano()
	if raw := ctx.Query("seed"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "seed must be an integer"})
		}
		seed = v
	}

	generator, err := workload.NewGenerator(seed, s.config.Workload.Ranges())
	if err != nil {
		return writeError(ctx, err)
	}
	processes, err := generator.Generate(count)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(responses.WorkloadResponse{Seed: seed, Processes: requests.FromInputs(processes)})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policy string) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidFormat(ctx)
	}

	result, err := schedulers.Schedule(policy, request.Inputs(), s.params(request))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(responses.NewScheduleResponse(uuid.NewString(), result))
}

func (s *SchedulerHandlerImpl) params(request requests.ScheduleRequests) schedulers.Params {
	quantum := s.config.RoundRobinTimeQuantum
	if request.TimeQuantum != nil {
		quantum = *request.TimeQuantum
	}
	return schedulers.Params{TimeQuantum: quantum}
}

func invalidFormat(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
}

// writeError maps engine errors to responses. Input errors are the caller's
// to fix; a timeline error is an engine defect and is logged.
func writeError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, core.ErrInvalidProcess), errors.Is(err, core.ErrInvalidParameter):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, core.ErrInvalidSegment):
		log.Println("scheduler defect:", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal scheduling error"})
	default:
		log.Println("can not process request:", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
	}
}
