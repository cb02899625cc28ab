package catalog

import "github.com/wesen/studio/internal/apperr"

// Keys under which a drag payload is carried between palette and canvas.
const (
	PayloadTypeKey = "application/x-studio-node-type"
	PayloadNameKey = "application/x-studio-node-name"
)

// Payload is what a palette drag carries: the template's type tag and
// display name.
type Payload struct {
	Type string
	Name string
}

// Encode returns the payload as string fields for a drag transfer.
func (p Payload) Encode() map[string]string {
	return map[string]string{
		PayloadTypeKey: p.Type,
		PayloadNameKey: p.Name,
	}
}

// DecodePayload reads a payload back from drag transfer fields. The type
// field is mandatory; the name is informational.
func DecodePayload(fields map[string]string) (Payload, error) {
	t := fields[PayloadTypeKey]
	if t == "" {
		return Payload{}, apperr.NewValidation("drag payload has no %s field", PayloadTypeKey)
	}
	return Payload{Type: t, Name: fields[PayloadNameKey]}, nil
}
