package api

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/wesen/studio/internal/apperr"
	"github.com/wesen/studio/internal/catalog"
	"github.com/wesen/studio/internal/studio"
	"github.com/wesen/studio/pkg/geometry"
)

// TargetRequest names what a pointer event landed on. When a pointer event
// carries no target, the server resolves it from the coordinates.
type TargetRequest struct {
	Kind   string `json:"kind" validate:"required,oneof=canvas node handle"`
	NodeID string `json:"node_id"`
	Handle string `json:"handle" validate:"omitempty,oneof=top right bottom left"`
}

// EventRequest is the JSON body of POST /sessions/{id}/events.
type EventRequest struct {
	Kind   string         `json:"kind" validate:"required,oneof=pointer_down pointer_move pointer_up drop delete activate"`
	X      int            `json:"x"`
	Y      int            `json:"y"`
	Target *TargetRequest `json:"target"`
	NodeID string         `json:"node_id"`
	// Template is a shortcut for drops: the type tag of a palette entry.
	Template string            `json:"template"`
	Fields   map[string]string `json:"fields"`
	Confirm  bool              `json:"confirm"`
}

var validate = validator.New()

// validateRequest runs struct validation and flattens the failures into a
// single validation error.
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.NewValidation("invalid request: %v", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return apperr.NewValidation("%s", strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// toEvent turns a validated request into a controller event. resolve is
// used for pointer events that carry no explicit target.
func (req EventRequest) toEvent(resolve func(image.Point) studio.Target) (studio.Event, error) {
	at := image.Pt(req.X, req.Y)
	switch req.Kind {
	case "pointer_down", "pointer_up":
		target, err := req.target(at, resolve)
		if err != nil {
			return nil, err
		}
		if req.Kind == "pointer_down" {
			return studio.PointerDown{At: at, Target: target}, nil
		}
		return studio.PointerUp{At: at, Target: target}, nil
	case "pointer_move":
		return studio.PointerMove{At: at}, nil
	case "drop":
		fields := req.Fields
		if req.Template != "" {
			fields = catalog.Payload{Type: req.Template}.Encode()
		}
		if len(fields) == 0 {
			return nil, apperr.NewValidation("drop needs a template or payload fields")
		}
		return studio.DropTemplate{Fields: fields, At: at}, nil
	case "delete":
		if req.NodeID == "" {
			return nil, apperr.NewValidation("node_id is required")
		}
		if !req.Confirm {
			return nil, apperr.NewValidation("delete must be confirmed with \"confirm\": true")
		}
		return studio.DeleteNode{NodeID: req.NodeID}, nil
	case "activate":
		if req.NodeID == "" {
			return nil, apperr.NewValidation("node_id is required")
		}
		return studio.Activate{NodeID: req.NodeID}, nil
	}
	return nil, apperr.NewValidation("unknown event kind %q", req.Kind)
}

func (req EventRequest) target(at image.Point, resolve func(image.Point) studio.Target) (studio.Target, error) {
	t := req.Target
	if t == nil {
		return resolve(at), nil
	}
	switch t.Kind {
	case "node":
		if t.NodeID == "" {
			return studio.Target{}, apperr.NewValidation("target.node_id is required")
		}
		return studio.OnNode(t.NodeID), nil
	case "handle":
		if t.NodeID == "" || t.Handle == "" {
			return studio.Target{}, apperr.NewValidation("handle target needs node_id and handle")
		}
		return studio.OnHandle(t.NodeID, geometry.Handle(t.Handle)), nil
	}
	return studio.OnCanvas(), nil
}
