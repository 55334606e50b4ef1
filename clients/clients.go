// Package clients constructs the AWS service clients the deploy pipeline
// talks to. A single shared session is safe to reuse across all of them.
package clients

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/cloudformation/cloudformationiface"
	"github.com/aws/aws-sdk-go/service/codepipeline"
	"github.com/aws/aws-sdk-go/service/codepipeline/codepipelineiface"
	"github.com/aws/aws-sdk-go/service/codestarconnections"
	"github.com/aws/aws-sdk-go/service/codestarconnections/codestarconnectionsiface"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

const defaultUserAgent = "stackship-cli"

// Version is the CLI version stamped into the User-Agent header.
var Version = "dev"

// NewSession returns an AWS session for the given region and, when set, the
// given named profile. Credentials resolve through the SDK's usual chain;
// failure to build a session is a missing prerequisite for every
// provider call that follows.
func NewSession(region, profile string) (*session.Session, error) {
	opts := session.Options{
		Config:            aws.Config{Region: aws.String(region)},
		SharedConfigState: session.SharedConfigEnable,
	}

	if profile != "" {
		opts.Profile = profile
	}

	sess, err := session.NewSessionWithOptions(opts)
	if err != nil {
		return nil, err
	}

	sess.Handlers.Build.PushBack(request.MakeAddToUserAgentHandler(defaultUserAgent, Version))
	return sess, nil
}

// NewCloudFormation returns a client for the stack service.
func NewCloudFormation(sess *session.Session) cloudformationiface.CloudFormationAPI {
	return cloudformation.New(sess)
}

// NewS3 returns a client for the artifact storage service.
func NewS3(sess *session.Session) s3iface.S3API {
	return s3.New(sess)
}

// NewCodePipeline returns a client for the pipeline execution service.
func NewCodePipeline(sess *session.Session) codepipelineiface.CodePipelineAPI {
	return codepipeline.New(sess)
}

// NewConnections returns a client for the source connection service.
func NewConnections(sess *session.Session) codestarconnectionsiface.CodeStarConnectionsAPI {
	return codestarconnections.New(sess)
}
