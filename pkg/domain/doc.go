// Package domain is a container of all of the domain types and interfaces
// that are shared between the relay core, the upstream client, and the
// hosting adapters.
//
// This package is also the container for all domain errors. Each error here
// represents one terminal condition of a relayed prompt and carries the
// structured fields needed to render it as a response. Apart from the
// Error() methods of those types, this package contains no executable code.
package domain
