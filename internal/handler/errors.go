package handler

import "errors"

var errNoHandlersAreCreated = errors.New("no handlers are created: no http address was given")
