// Package function exposes the relay as an AWS Lambda function that
// consumes API Gateway proxy events. The resulting domain.Handler runs
// either natively under the Lambda SDK or through the Invoke API served
// by the HTTP build modes.
package function
