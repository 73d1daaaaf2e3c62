package handler

import (
	"net/http"

	go_json "github.com/goccy/go-json"

	"github.com/taperlab/taper/internal/apperr"
	"github.com/taperlab/taper/internal/engine"
	"github.com/taperlab/taper/internal/plan"
	"github.com/taperlab/taper/internal/validator"
)

// decode unmarshals the request body into dst and runs its validation.
func decode(r *http.Request, dst validator.Validator) error {
	if err := go_json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.BadRequest("invalid_json", "request body is not valid JSON")
	}
	if verr := validator.Validate(dst); verr != nil {
		return verr
	}
	return nil
}

type progressRequest struct {
	Completed []plan.CompletedWorkout `json:"completed_workouts"`
	Planned   []plan.PlannedWorkout   `json:"planned_workouts,omitempty"`
}

func (req *progressRequest) Validate() map[string]string {
	if len(req.Completed) == 0 {
		return map[string]string{"completed_workouts": "at least one completed workout is required"}
	}
	return nil
}

type recoveryRequest struct {
	Metrics   *plan.RecoveryMetrics   `json:"metrics,omitempty"`
	Completed []plan.CompletedWorkout `json:"completed_workouts,omitempty"`
}

func (req *recoveryRequest) Validate() map[string]string {
	if req.Metrics == nil && len(req.Completed) == 0 {
		return map[string]string{"metrics": "metrics or completed_workouts must be provided"}
	}
	return nil
}

type fatigueRequest struct {
	Completed []plan.CompletedWorkout `json:"completed_workouts"`
	Planned   []plan.PlannedWorkout   `json:"planned_workouts,omitempty"`
	Metrics   *plan.RecoveryMetrics   `json:"metrics,omitempty"`
}

func (req *fatigueRequest) Validate() map[string]string {
	if len(req.Completed) == 0 {
		return map[string]string{"completed_workouts": "at least one completed workout is required"}
	}
	return nil
}

type riskRequest struct {
	Completed []plan.CompletedWorkout `json:"completed_workouts"`
	Planned   []plan.PlannedWorkout   `json:"planned_workouts,omitempty"`
}

func (req *riskRequest) Validate() map[string]string {
	if len(req.Completed) == 0 {
		return map[string]string{"completed_workouts": "at least one completed workout is required"}
	}
	return nil
}

type suggestRequest struct {
	Plan      plan.TrainingPlan       `json:"plan"`
	Completed []plan.CompletedWorkout `json:"completed_workouts,omitempty"`
	Metrics   *plan.RecoveryMetrics   `json:"metrics,omitempty"`
}

func (req *suggestRequest) Validate() map[string]string {
	if req.Plan.ID == "" {
		return map[string]string{"plan.id": "plan id is required"}
	}
	return nil
}

type applyRequest struct {
	Plan          plan.TrainingPlan         `json:"plan"`
	Modifications []engine.PlanModification `json:"modifications"`
}

func (req *applyRequest) Validate() map[string]string {
	if req.Plan.ID == "" {
		return map[string]string{"plan.id": "plan id is required"}
	}
	return nil
}

type protocolRequest struct {
	Condition    engine.Condition `json:"condition"`
	Severity     engine.Severity  `json:"severity"`
	AffectedArea string           `json:"affected_area,omitempty"`
}

func (req *protocolRequest) Validate() map[string]string {
	errs := make(map[string]string)
	switch req.Condition {
	case engine.ConditionInjury, engine.ConditionIllness:
	default:
		errs["condition"] = "condition must be injury or illness"
	}
	switch req.Severity {
	case engine.SeverityMild, engine.SeverityModerate, engine.SeveritySevere:
	default:
		errs["severity"] = "severity must be mild, moderate, or severe"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
