package client

import "errors"

var ErrTooManyArguments = errors.New("too many arguments: want [table [SECTION.key]]")
