// Package relay contains the PromptRelay: the function that validates a
// prompt request, forwards it to the generative-language API through a
// domain.Generator, and renders every possible outcome as a
// domain.OutboundResponse. It knows nothing about the hosting runtime;
// adapters in other packages translate to and from HTTP or Lambda events.
package relay
