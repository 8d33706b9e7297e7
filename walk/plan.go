package walk

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/perimeterx/marshmallow"

	"github.com/pdok/gridstep/direction"
	"github.com/pdok/gridstep/point"
)

// Plan describes a walk: where to start, which steps to take and how to scale the result.
//
//	{"name": "zigzag", "start": {"x": 0, "y": 0}, "moves": ["Up", "UpRight"], "scale": 2}
type Plan struct {
	// Name of the plan, only used for display
	Name string `json:"name,omitempty"`
	// Factor the visited points are multiplied with when reported
	Scale float64 `default:"1" validate:"ne=0" json:"scale"`
	// Starting point, the origin if omitted
	Start point.Point[float64] `json:"-"`
	// Steps to take, in order
	Moves []direction.Direction `validate:"required,min=1" json:"-"`
}

// NewPlan returns a validated plan with the default scale.
func NewPlan(start point.Point[float64], moves ...direction.Direction) (Plan, error) {
	var plan Plan
	if err := defaults.Set(&plan); err != nil {
		return plan, err
	}
	plan.Start = start
	plan.Moves = moves
	return plan, plan.Validate()
}

func (plan *Plan) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return validate.Struct(plan)
}

func (plan *Plan) UnmarshalJSON(data []byte) error {
	err := defaults.Set(plan)
	if err != nil {
		return err
	}

	specials, err := marshmallow.Unmarshal(data, plan, marshmallow.WithExcludeKnownFieldsFromMap(true))
	if err != nil {
		return err
	}

	// Start
	if rawStart, ok := specials["start"]; ok {
		plan.Start, err = unmarshalStart(rawStart)
		if err != nil {
			return err
		}
	}

	// Moves
	rawMoves, ok := specials["moves"]
	if !ok {
		return fmt.Errorf(`missing key "moves"`)
	}
	plan.Moves, err = unmarshalMoves(rawMoves)
	if err != nil {
		return err
	}

	return plan.Validate()
}

func unmarshalStart(rawStart interface{}) (point.Point[float64], error) {
	var start point.Point[float64]
	rawStartMap, ok := rawStart.(map[string]interface{})
	if !ok {
		return start, fmt.Errorf(`"start" should be an object, not a %T`, rawStart)
	}
	for key, ord := range map[string]*float64{"x": &start.X, "y": &start.Y} {
		raw, ok := rawStartMap[key]
		if !ok {
			return start, fmt.Errorf(`missing key %q in "start"`, key)
		}
		if *ord, ok = raw.(float64); !ok {
			return start, fmt.Errorf(`"start.%s" should be a number, not a %T`, key, raw)
		}
	}
	return start, nil
}

func unmarshalMoves(rawMoves interface{}) ([]direction.Direction, error) {
	rawMovesList, ok := rawMoves.([]interface{})
	if !ok {
		return nil, fmt.Errorf(`"moves" should be an array`)
	}
	moves := make([]direction.Direction, 0, len(rawMovesList))
	for i, rawMove := range rawMovesList {
		name, ok := rawMove.(string)
		if !ok {
			return nil, fmt.Errorf(`"moves[%d]" should be a string, not a %T`, i, rawMove)
		}
		move, err := direction.Parse(name)
		if err != nil {
			return nil, fmt.Errorf(`"moves[%d]": %w`, i, err)
		}
		moves = append(moves, move)
	}
	return moves, nil
}

// Follow walks the plan from its start and returns the trail.
func (plan *Plan) Follow() *Trail[float64] {
	tr := NewTrail(plan.Start)
	tr.Walk(plan.Moves...)
	return tr
}
