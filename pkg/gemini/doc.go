// Package gemini implements domain.Generator against the Google
// generative-language REST API, plus an Echo generator that answers
// locally for the mocked build modes.
package gemini
