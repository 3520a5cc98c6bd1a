// Package handlers is a container for HTTP handlers. Note that this is not a
// container for lambda.Handler related elements. Instead, this is where the
// http.Handler instances are defined that expose the relay over plain HTTP
// and over the AWS Lambda Invoke API.
package handlers
