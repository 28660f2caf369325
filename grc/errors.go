package grc

import "errors"

// Sentinel errors returned by document decoding and resource conversion.
// Use [errors.Is] to classify a failure; every converter wraps one of these
// with resource-specific context via fmt.Errorf("%w: ...").
var (
	// ErrConditionHandlingNotImplemented indicates a `#condition` key was
	// found somewhere conditional compilation isn't supported.
	ErrConditionHandlingNotImplemented = errors.New("condition handling not implemented here")
	// ErrUnsupportedResourceType indicates a top-level tag isn't a known
	// resource kind.
	ErrUnsupportedResourceType = errors.New("unsupported resource type")
	// ErrUnsupportedGDLGControl indicates a GDLG control kind isn't known,
	// or a known control kind was used with an unsupported property.
	ErrUnsupportedGDLGControl = errors.New("unsupported GDLG control")
	// ErrUnsupportedGDLGControlProperty indicates a control property value
	// isn't in its allowed mapping.
	ErrUnsupportedGDLGControlProperty = errors.New("unsupported GDLG control property")
	// ErrIllegalStyle indicates a dialog style-flag combination isn't
	// legal for the dialog's type.
	ErrIllegalStyle = errors.New("illegal style")
	// ErrUnhandledJSONProperty indicates a resource object had fields left
	// over after conversion -- an unrecognized or misplaced property.
	ErrUnhandledJSONProperty = errors.New("unhandled JSON property")

	// ErrReadInput indicates an I/O error reading a document or
	// translation file.
	ErrReadInput = errors.New("read input")
	// ErrWriteOutput indicates an I/O error writing converted output.
	ErrWriteOutput = errors.New("write output")
	// ErrInvalidOption indicates an invalid CLI configuration value.
	ErrInvalidOption = errors.New("invalid option")
)
