package ax

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourusername/mado-cli/internal/client"
	"github.com/yourusername/mado-cli/internal/models"
)

// Remote implements Service on top of the host client
type Remote struct {
	client *client.Client
}

// NewRemote wraps a host client
func NewRemote(c *client.Client) *Remote {
	return &Remote{client: c}
}

// FrontmostApplication returns the application that currently has focus
func (r *Remote) FrontmostApplication(ctx context.Context) (Application, error) {
	app, err := r.client.FrontmostApplication(ctx)
	if err != nil {
		return Application{}, mapError(err)
	}
	return fromWireApplication(app), nil
}

// Application returns the running application with the given pid
func (r *Remote) Application(ctx context.Context, pid int) (Application, error) {
	app, err := r.client.Application(ctx, pid)
	if err != nil {
		return Application{}, mapError(err)
	}
	return fromWireApplication(app), nil
}

// GetAttribute reads one attribute
func (r *Remote) GetAttribute(ctx context.Context, el Element, attr Attribute) (Value, error) {
	wire, err := r.client.GetAttribute(ctx, string(el), string(attr))
	if err != nil {
		return Value{}, mapError(err)
	}
	return fromWireValue(wire)
}

// SetAttribute writes one attribute
func (r *Remote) SetAttribute(ctx context.Context, el Element, attr Attribute, v Value) error {
	wire, err := toWireValue(v)
	if err != nil {
		return err
	}
	if err := r.client.SetAttribute(ctx, string(el), string(attr), wire); err != nil {
		return mapError(err)
	}
	return nil
}

// Activate brings the application forward
func (r *Remote) Activate(ctx context.Context, pid int, opts ActivationOptions) error {
	if err := r.client.Activate(ctx, pid, opts.Names()); err != nil {
		return mapError(err)
	}
	return nil
}

func fromWireApplication(app *models.Application) Application {
	return Application{
		PID:     app.PID,
		Name:    app.LocalizedName,
		Element: Element(app.Element),
	}
}

func fromWireValue(w *models.AttributeValue) (Value, error) {
	switch w.Type {
	case models.ValuePoint:
		if w.Point != nil {
			return PointValue(*w.Point), nil
		}
	case models.ValueSize:
		if w.Size != nil {
			return SizeValue(*w.Size), nil
		}
	case models.ValueString:
		if w.String != nil {
			return StringValue(*w.String), nil
		}
	case models.ValueElement:
		if w.Element != "" {
			return ElementValue(Element(w.Element)), nil
		}
	default:
		return Value{}, fmt.Errorf("%w: unknown value type %q", ErrTypeMismatch, w.Type)
	}
	return Value{}, fmt.Errorf("%w: %s payload missing", ErrNoValue, w.Type)
}

func toWireValue(v Value) (models.AttributeValue, error) {
	switch v.Type {
	case TypePoint:
		p := v.Point
		return models.AttributeValue{Type: models.ValuePoint, Point: &p}, nil
	case TypeSize:
		s := v.Size
		return models.AttributeValue{Type: models.ValueSize, Size: &s}, nil
	case TypeString:
		s := v.Str
		return models.AttributeValue{Type: models.ValueString, String: &s}, nil
	case TypeElement:
		return models.AttributeValue{Type: models.ValueElement, Element: string(v.Element)}, nil
	}
	return models.AttributeValue{}, fmt.Errorf("%w: cannot encode value type %q", ErrTypeMismatch, v.Type)
}

// mapError translates host error codes into status errors, keeping the
// host error in the chain.
func mapError(err error) error {
	var serr *client.ServerError
	if !errors.As(err, &serr) {
		return err
	}

	var status error
	switch serr.Code {
	case models.CodeInvalidElement:
		status = ErrInvalidElement
	case models.CodeAttributeUnsupported:
		status = ErrAttributeUnsupported
	case models.CodeTypeMismatch:
		status = ErrTypeMismatch
	case models.CodeNoValue:
		status = ErrNoValue
	case models.CodeNoApplication:
		status = ErrNoApplication
	default:
		return err
	}
	return fmt.Errorf("%w: %w", status, err)
}
