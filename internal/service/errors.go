package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrEmptyTemplate      = errors.New("uri template is empty")
	ErrInvalidTemplate    = errors.New("invalid uri template")
	ErrMissingTemplateVar = errors.New("missing uri template variable")
)
