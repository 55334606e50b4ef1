package preflight

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/codestarconnections"
	"github.com/aws/aws-sdk-go/service/codestarconnections/codestarconnectionsiface"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/stackship/stackship-cli/report"
)

type mockS3 struct {
	s3iface.S3API

	err   error
	calls int
}

func (m *mockS3) HeadBucketWithContext(ctx aws.Context, in *s3.HeadBucketInput, opts ...request.Option) (*s3.HeadBucketOutput, error) {
	m.calls++
	return &s3.HeadBucketOutput{}, m.err
}

type mockConnections struct {
	codestarconnectionsiface.CodeStarConnectionsAPI

	status string
	err    error
	calls  int
}

func (m *mockConnections) GetConnectionWithContext(ctx aws.Context, in *codestarconnections.GetConnectionInput, opts ...request.Option) (*codestarconnections.GetConnectionOutput, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &codestarconnections.GetConnectionOutput{
		Connection: &codestarconnections.Connection{
			ConnectionStatus: aws.String(m.status),
		},
	}, nil
}

func TestCheckBucketSkippedWhenUnnamed(t *testing.T) {
	client := &mockS3{}

	res := CheckBucket(context.Background(), client, "")

	if res.Status != report.Skipped {
		t.Errorf("Expected skipped, got %s", res.Status)
	}

	if client.calls != 0 {
		t.Errorf("Expected no call, got %d", client.calls)
	}
}

func TestCheckBucketOK(t *testing.T) {
	res := CheckBucket(context.Background(), &mockS3{}, "artifacts")

	if res.Status != report.OK {
		t.Errorf("Expected ok, got %s (%s)", res.Status, res.Detail)
	}
}

func TestCheckBucketUnreachableIsWarning(t *testing.T) {
	client := &mockS3{err: errors.New("403")}

	res := CheckBucket(context.Background(), client, "artifacts")

	if res.Status != report.Warn {
		t.Errorf("Expected warn, got %s", res.Status)
	}
}

func TestCheckConnectionAvailable(t *testing.T) {
	client := &mockConnections{status: codestarconnections.ConnectionStatusAvailable}

	res := CheckConnection(context.Background(), client, "arn:aws:codestar-connections:::connection/abc")

	if res.Status != report.OK {
		t.Errorf("Expected ok, got %s (%s)", res.Status, res.Detail)
	}
}

func TestCheckConnectionPendingIsWarning(t *testing.T) {
	client := &mockConnections{status: codestarconnections.ConnectionStatusPending}

	res := CheckConnection(context.Background(), client, "arn:aws:codestar-connections:::connection/abc")

	if res.Status != report.Warn {
		t.Errorf("Expected warn, got %s", res.Status)
	}
}

func TestCheckConnectionSkippedWhenUnnamed(t *testing.T) {
	client := &mockConnections{}

	res := CheckConnection(context.Background(), client, "")

	if res.Status != report.Skipped {
		t.Errorf("Expected skipped, got %s", res.Status)
	}

	if client.calls != 0 {
		t.Errorf("Expected no call, got %d", client.calls)
	}
}
