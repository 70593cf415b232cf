package view

import "errors"

var ErrCoinNotFound = errors.New("coin not found")
