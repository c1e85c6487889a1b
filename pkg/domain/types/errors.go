package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classifying failures of a publish run. Input errors are caused
// by configuration or local files, remote-not-found means an object that a
// completed operation should have created or located is missing, and
// remote-call covers every failure surfaced by the GitHub transport.
var (
	ErrTagInput          = goerr.NewTag("input")
	ErrTagRemoteNotFound = goerr.NewTag("remote_not_found")
	ErrTagRemoteCall     = goerr.NewTag("remote_call")
)
