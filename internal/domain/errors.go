package domain

import "errors"

var (
	// ErrInvalidDiameter is returned when the dome diameter is not greater than zero.
	ErrInvalidDiameter = errors.New("diameter must be greater than 0")

	// ErrInvalidThickness is returned when the shell thickness is not greater than zero.
	ErrInvalidThickness = errors.New("thickness must be greater than 0")

	// ErrNonNumericInput is returned when console input cannot be read as a number.
	ErrNonNumericInput = errors.New("enter a numeric value for diameter and thickness")
)
