package models

import "errors"

// ErrUnknownChart is returned when a chart kind has no series
var ErrUnknownChart = errors.New("unknown chart kind")
