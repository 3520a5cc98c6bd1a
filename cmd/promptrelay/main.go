package main

// The relay binary. Browsers POST {"prompt": "..."} to /api/callGemini and
// receive the generateContent response of the configured Gemini model.
// This can be called like:
//
//		curl --request POST --data '{"prompt": "hello"}' localhost:8080/api/callGemini
//
// The same function is reachable through the Lambda Invoke API as callGemini
// and, when built with BuildMode=lambda, runs natively on AWS Lambda.

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/asecurityteam/settings/v2"
	promptrelay "github.com/leonyu5566/sp500-ai-advisor/pkg"
)

func main() {
	// Handle the -h flag and print settings.
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.Usage = func() {}
	err := fs.Parse(os.Args[1:])
	if err == flag.ErrHelp {
		fmt.Println(promptrelay.Help())
		return
	}

	// Lambda sets the function name for every instance it starts.
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" && promptrelay.BuildMode == promptrelay.BuildModeHTTP {
		promptrelay.BuildMode = promptrelay.BuildModeLambda
	}

	source, err := settings.NewEnvSource(os.Environ())
	if err != nil {
		panic(err.Error())
	}
	if err := promptrelay.Start(context.Background(), source); err != nil {
		panic(err.Error())
	}
}
