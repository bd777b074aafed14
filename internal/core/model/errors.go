package model

import "errors"

// ErrNotFound indicates a catalog lookup miss.
var ErrNotFound = errors.New("not found")
