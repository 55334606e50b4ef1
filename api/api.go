package api

import (
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudformation/cloudformationiface"
	"github.com/aws/aws-sdk-go/service/codepipeline/codepipelineiface"
	"github.com/aws/aws-sdk-go/service/codestarconnections/codestarconnectionsiface"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/stackship/stackship-cli/clients"
)

// API bundles the service clients a command needs. Only the requested
// clients are constructed; the rest stay nil.
type API struct {
	CloudFormation cloudformationiface.CloudFormationAPI
	S3             s3iface.S3API
	CodePipeline   codepipelineiface.CodePipelineAPI
	Connections    codestarconnectionsiface.CodeStarConnectionsAPI
}

// Client identifies a constructible service client.
type Client int

// The available service clients.
const (
	CloudFormation Client = iota
	S3
	CodePipeline
	Connections
)

// New builds an API holding the requested service clients on a shared
// session.
func New(sess *session.Session, list ...Client) *API {
	api := &API{}

	for _, e := range list {
		switch e {
		case CloudFormation:
			api.CloudFormation = clients.NewCloudFormation(sess)
		case S3:
			api.S3 = clients.NewS3(sess)
		case CodePipeline:
			api.CodePipeline = clients.NewCodePipeline(sess)
		case Connections:
			api.Connections = clients.NewConnections(sess)
		}
	}

	return api
}
