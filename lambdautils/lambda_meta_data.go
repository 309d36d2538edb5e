package lambdautils

import (
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"
)

// LambdaMetaData stores details about the current lambda invocation.
type LambdaMetaData struct {
	FunctionName    string
	FunctionVersion string
	LogGroupName    string
	LogStreamName   string
	MemoryLimitInMB int
	RequestID       string
	Context         *lambdacontext.LambdaContext
}

// GetLambdaMetaData returns MetaData extracted from the current lambda context.
// Outside of a lambda invocation the request id and Context are empty.
func GetLambdaMetaData(ctx context.Context) LambdaMetaData {
	lm := LambdaMetaData{
		FunctionName:    lambdacontext.FunctionName,
		FunctionVersion: lambdacontext.FunctionVersion,
		LogGroupName:    lambdacontext.LogGroupName,
		LogStreamName:   lambdacontext.LogStreamName,
		MemoryLimitInMB: lambdacontext.MemoryLimitInMB,
	}

	if lc, ok := lambdacontext.FromContext(ctx); ok {
		lm.Context = lc
		lm.RequestID = lc.AwsRequestID
	}

	return lm
}

// Fields returns the non empty identifying values as log fields.
func (lm LambdaMetaData) Fields() logrus.Fields {
	fields := logrus.Fields{}

	if lm.FunctionName != "" {
		fields["function"] = lm.FunctionName
	}
	if lm.FunctionVersion != "" {
		fields["version"] = lm.FunctionVersion
	}
	if lm.RequestID != "" {
		fields["request_id"] = lm.RequestID
	}

	return fields
}
