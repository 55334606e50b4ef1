// Package pipeline starts executions of a deployed delivery pipeline.
package pipeline

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/codepipeline"
	"github.com/aws/aws-sdk-go/service/codepipeline/codepipelineiface"
)

// Start requests a new execution of the named pipeline and returns the
// execution identifier.
func Start(ctx context.Context, client codepipelineiface.CodePipelineAPI, name string) (string, error) {
	out, err := client.StartPipelineExecutionWithContext(ctx, &codepipeline.StartPipelineExecutionInput{
		Name: aws.String(name),
	})
	if err != nil {
		return "", err
	}

	return aws.StringValue(out.PipelineExecutionId), nil
}
