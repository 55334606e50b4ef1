package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/codepipeline"
	"github.com/aws/aws-sdk-go/service/codepipeline/codepipelineiface"
)

type mockCodePipeline struct {
	codepipelineiface.CodePipelineAPI

	executionID string
	err         error
	name        string
}

func (m *mockCodePipeline) StartPipelineExecutionWithContext(ctx aws.Context, in *codepipeline.StartPipelineExecutionInput, opts ...request.Option) (*codepipeline.StartPipelineExecutionOutput, error) {
	m.name = aws.StringValue(in.Name)
	if m.err != nil {
		return nil, m.err
	}
	return &codepipeline.StartPipelineExecutionOutput{
		PipelineExecutionId: aws.String(m.executionID),
	}, nil
}

func TestStart(t *testing.T) {
	client := &mockCodePipeline{executionID: "abc-123"}

	id, err := Start(context.Background(), client, "release")
	if err != nil {
		t.Fatalf("Expected no error, got %s", err)
	}

	if id != "abc-123" {
		t.Errorf("Expected execution id abc-123, got %q", id)
	}

	if client.name != "release" {
		t.Errorf("Expected pipeline release, got %q", client.name)
	}
}

func TestStartFailure(t *testing.T) {
	client := &mockCodePipeline{err: errors.New("no such pipeline")}

	if _, err := Start(context.Background(), client, "release"); err == nil {
		t.Error("Expected an error")
	}
}
