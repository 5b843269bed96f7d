package store

import "errors"

var ErrRunNotFound = errors.New("run not found")
