// Package preflight performs best-effort existence and status checks of the
// resources a pipeline stack depends on. Preflight never blocks a deploy;
// a failed check only surfaces as a warning in the run report.
package preflight

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/codestarconnections"
	"github.com/aws/aws-sdk-go/service/codestarconnections/codestarconnectionsiface"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/stackship/stackship-cli/report"
)

// CheckBucket verifies that the artifact bucket is reachable.
func CheckBucket(ctx context.Context, client s3iface.S3API, bucket string) report.Result {
	const step = "preflight: artifact bucket"

	if bucket == "" {
		return report.SkippedResult(step, "no ArtifactBucketName parameter")
	}

	_, err := client.HeadBucketWithContext(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return report.WarnResult(step, fmt.Sprintf("bucket %s unreachable: %s", bucket, err))
	}

	return report.OKResult(step, bucket)
}

// CheckConnection verifies that the source connection exists and is
// available. A pending connection still deploys, but the pipeline cannot
// pull source until it is confirmed in the console.
func CheckConnection(ctx context.Context, client codestarconnectionsiface.CodeStarConnectionsAPI, arn string) report.Result {
	const step = "preflight: source connection"

	if arn == "" {
		return report.SkippedResult(step, "no ConnectionArn parameter")
	}

	out, err := client.GetConnectionWithContext(ctx, &codestarconnections.GetConnectionInput{
		ConnectionArn: aws.String(arn),
	})
	if err != nil {
		return report.WarnResult(step, fmt.Sprintf("connection unreachable: %s", err))
	}

	status := aws.StringValue(out.Connection.ConnectionStatus)
	if status != codestarconnections.ConnectionStatusAvailable {
		return report.WarnResult(step, fmt.Sprintf("connection status is %s, expected %s",
			status, codestarconnections.ConnectionStatusAvailable))
	}

	return report.OKResult(step, status)
}
