package config

import "errors"

var (
	ErrTimeoutNegative     = errors.New("timeout is negative")
	ErrRootURLNotAbsolute  = errors.New("root URL must start with /")
	ErrAssetsDirNotFound   = errors.New("assets directory not found")
	ErrAssetsDirNotDir     = errors.New("assets path is not a directory")
	ErrNoProviderSpecified = errors.New("no provider specified")
	ErrLogLevelUnknown     = errors.New("log level is unknown")
	ErrLogCallerNotValid   = errors.New("log caller value is not valid")
	ErrAddressHostEmpty    = errors.New("address host is empty")
	ErrAddressPortEmpty    = errors.New("address port is empty")
	ErrTimeoutTooLow       = errors.New("timeout is too low")
)
