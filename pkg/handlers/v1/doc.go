// Package v1 contains all http.Handlers used to service the version 1.X.X API
// of a running relay. The version tracks this system's own HTTP surface and
// is unrelated to the versions of the upstream or AWS APIs it talks to.
package v1
