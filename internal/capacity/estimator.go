package capacity

import (
	"errors"
	"fmt"
)

var ErrInvalidInput = errors.New("capacity: input must be > 0")

// CU cost weights per token, in CU-milliseconds. Output tokens cost 4x
// as much per token as input tokens.
const (
	inputWeight  = 100.0
	outputWeight = 400.0
)

// DefaultOutputFactor models the expected response length as a multiple
// of the prompt length.
const DefaultOutputFactor = 4.0

// Result holds the derived capacity metrics for one workload estimate.
type Result struct {
	InputTokens      float64 `json:"input_tokens"`
	OutputTokens     float64 `json:"output_tokens"`
	CUSeconds        float64 `json:"cu_seconds"`
	CUMinutes        float64 `json:"cu_minutes"`
	CUHours          float64 `json:"cu_hours"`
	UsersPerDay      float64 `json:"users_per_day"`
	QuestionsPerUser float64 `json:"questions_per_user"`
	RequestsDay      float64 `json:"requests_day"`
	CapacityNeed     float64 `json:"capacity_need"`
}

// Estimator derives compute-unit capacity metrics from workload inputs.
type Estimator struct {
	OutputFactor float64
}

// Default returns an estimator with the standard output factor.
func Default() Estimator {
	return Estimator{OutputFactor: DefaultOutputFactor}
}

// Compute derives all capacity metrics from the three workload inputs.
// Every input must be strictly positive. capacity_need is the average
// concurrent CU throughput, spreading daily CU-hours evenly across 24h.
func (e Estimator) Compute(avgInputTokens, usersPerDay, questionsPerUser float64) (Result, error) {
	if avgInputTokens <= 0 {
		return Result{}, fmt.Errorf("%w: average input tokens", ErrInvalidInput)
	}
	if usersPerDay <= 0 {
		return Result{}, fmt.Errorf("%w: users per day", ErrInvalidInput)
	}
	if questionsPerUser <= 0 {
		return Result{}, fmt.Errorf("%w: questions per user", ErrInvalidInput)
	}

	factor := e.OutputFactor
	if factor <= 0 {
		factor = DefaultOutputFactor
	}

	outputTokens := avgInputTokens * factor
	cuSeconds := (avgInputTokens*inputWeight + outputTokens*outputWeight) / 1000
	cuMinutes := cuSeconds / 60
	cuHours := cuMinutes / 60
	requestsDay := usersPerDay * questionsPerUser

	return Result{
		InputTokens:      avgInputTokens,
		OutputTokens:     outputTokens,
		CUSeconds:        cuSeconds,
		CUMinutes:        cuMinutes,
		CUHours:          cuHours,
		UsersPerDay:      usersPerDay,
		QuestionsPerUser: questionsPerUser,
		RequestsDay:      requestsDay,
		CapacityNeed:     (requestsDay * cuHours) / 24,
	}, nil
}
