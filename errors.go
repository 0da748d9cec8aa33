package messages

import (
	"errors"
	"fmt"
)

// ErrDuplicateVariant indicates an insert collided with an existing variant key.
var ErrDuplicateVariant = errors.New("messages: duplicate variant")

// ErrNoVariantFound indicates resolution exhausted every candidate key.
var ErrNoVariantFound = errors.New("messages: no variant found")

// ErrMissingValue indicates a placeholder had neither a runtime value nor default text.
var ErrMissingValue = errors.New("messages: missing placeholder value")

// ErrShapeMismatch indicates a text unit paired sides of different shapes.
var ErrShapeMismatch = errors.New("messages: text unit shape mismatch")

// ErrDuplicateID indicates a message id is already registered.
var ErrDuplicateID = errors.New("messages: duplicate message id")

// ErrGroupNotFound indicates no locale in the fallback chain carries the group.
var ErrGroupNotFound = errors.New("messages: group not found")

// DuplicateVariantError reports the key that collided during Group.Insert.
type DuplicateVariantError struct {
	GroupID string
	Key     SelectorSet
}

func (e *DuplicateVariantError) Error() string {
	if e.GroupID == "" {
		return fmt.Sprintf("messages: duplicate variant %s", e.Key)
	}
	return fmt.Sprintf("messages: duplicate variant %s in group %q", e.Key, e.GroupID)
}

func (e *DuplicateVariantError) Unwrap() error { return ErrDuplicateVariant }

// NoVariantFoundError reports the query that no candidate key satisfied.
type NoVariantFoundError struct {
	GroupID string
	Query   SelectorSet
}

func (e *NoVariantFoundError) Error() string {
	if e.GroupID == "" {
		return fmt.Sprintf("messages: no variant for %s", e.Query)
	}
	return fmt.Sprintf("messages: no variant for %s in group %q", e.Query, e.GroupID)
}

func (e *NoVariantFoundError) Unwrap() error { return ErrNoVariantFound }

// MissingValueError reports the placeholder that had no value at render time.
type MissingValueError struct {
	PlaceholderID string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("messages: missing value for placeholder %q", e.PlaceholderID)
}

func (e *MissingValueError) Unwrap() error { return ErrMissingValue }

// ShapeMismatchError reports the side shapes handed to NewTextUnit.
type ShapeMismatchError struct {
	Source UnitShape
	Target UnitShape
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("messages: text unit pairs %s source with %s target",
		shapeLabel(e.Source), shapeLabel(e.Target))
}

func (e *ShapeMismatchError) Unwrap() error { return ErrShapeMismatch }

func shapeLabel(shape UnitShape) string {
	if shape == "" {
		return "missing"
	}
	return string(shape)
}
