// Package stack drives the create-or-update lifecycle of a single
// CloudFormation stack: validation, deploy, tag reapplication, completion
// wait, and output queries.
package stack

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/cloudformation/cloudformationiface"

	"github.com/stackship/stackship-cli/report"
)

// Output is a single stack output key/value pair.
type Output struct {
	Key         string
	Value       string
	Description string
}

// Validate performs a remote syntax and semantic check of the template body.
// Unlike the rest of the deploy pipeline, a validation failure is fatal.
func Validate(ctx context.Context, cfn cloudformationiface.CloudFormationAPI, templateBody string) error {
	_, err := cfn.ValidateTemplateWithContext(ctx, &cloudformation.ValidateTemplateInput{
		TemplateBody: aws.String(templateBody),
	})
	return err
}

// Deploy issues a create-or-update request for the stack. A stack that
// already exists falls through to an update; an update with nothing to
// change counts as success. Any other failure degrades to a warning and the
// run continues, letting the completion wait and the output query tell the
// operator where things stand.
func Deploy(ctx context.Context, cfn cloudformationiface.CloudFormationAPI, name,
	templateBody string, parameters []*cloudformation.Parameter) report.Result {

	const step = "deploy"

	_, err := cfn.CreateStackWithContext(ctx, &cloudformation.CreateStackInput{
		StackName:    aws.String(name),
		TemplateBody: aws.String(templateBody),
		Parameters:   parameters,
		Capabilities: aws.StringSlice([]string{cloudformation.CapabilityCapabilityNamedIam}),
	})
	if err == nil {
		return report.OKResult(step, "stack creation started")
	}

	if !isAlreadyExists(err) {
		return report.WarnResult(step, fmt.Sprintf("create failed: %s", err))
	}

	_, err = cfn.UpdateStackWithContext(ctx, &cloudformation.UpdateStackInput{
		StackName:    aws.String(name),
		TemplateBody: aws.String(templateBody),
		Parameters:   parameters,
		Capabilities: aws.StringSlice([]string{cloudformation.CapabilityCapabilityNamedIam}),
	})
	if err == nil {
		return report.OKResult(step, "stack update started")
	}
	if isNoUpdate(err) {
		return report.OKResult(step, "no changes to deploy")
	}

	return report.WarnResult(step, fmt.Sprintf("update failed: %s", err))
}

// ApplyTags reapplies the stack's tags with a second update. The provider's
// update semantics require resubmitting the full parameter list even though
// the template is reused unchanged. An update with nothing to change counts
// as success; other failures degrade to warnings.
func ApplyTags(ctx context.Context, cfn cloudformationiface.CloudFormationAPI, name string,
	parameters []*cloudformation.Parameter, tags []*cloudformation.Tag) report.Result {

	const step = "tags"

	if len(tags) == 0 {
		return report.SkippedResult(step, "no tags in parameters file")
	}

	_, err := cfn.UpdateStackWithContext(ctx, &cloudformation.UpdateStackInput{
		StackName:           aws.String(name),
		UsePreviousTemplate: aws.Bool(true),
		Parameters:          parameters,
		Tags:                tags,
		Capabilities:        aws.StringSlice([]string{cloudformation.CapabilityCapabilityNamedIam}),
	})
	if err == nil {
		return report.OKResult(step, fmt.Sprintf("%d tags applied", len(tags)))
	}
	if isNoUpdate(err) {
		return report.OKResult(step, "tags already up to date")
	}

	return report.WarnResult(step, fmt.Sprintf("tag update failed: %s", err))
}

// WaitSettle blocks until the stack reaches a terminal creation state, or,
// failing that, a terminal update state. When the stack was updated rather
// than created the first wait fails fast, so the second covers it. If
// neither wait succeeds the run still proceeds to reporting.
func WaitSettle(ctx context.Context, cfn cloudformationiface.CloudFormationAPI, name string) report.Result {
	const step = "wait"

	input := &cloudformation.DescribeStacksInput{StackName: aws.String(name)}

	if err := cfn.WaitUntilStackCreateCompleteWithContext(ctx, input); err == nil {
		return report.OKResult(step, "stack create complete")
	}

	if err := cfn.WaitUntilStackUpdateCompleteWithContext(ctx, input); err != nil {
		return report.WarnResult(step, fmt.Sprintf("stack did not reach a complete state: %s", err))
	}

	return report.OKResult(step, "stack update complete")
}

// Outputs queries the stack's output key/value pairs.
func Outputs(ctx context.Context, cfn cloudformationiface.CloudFormationAPI, name string) ([]Output, error) {
	res, err := cfn.DescribeStacksWithContext(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(name),
	})
	if err != nil {
		return nil, err
	}

	if len(res.Stacks) == 0 {
		return nil, fmt.Errorf("stack %s not found", name)
	}

	outputs := make([]Output, 0, len(res.Stacks[0].Outputs))
	for _, o := range res.Stacks[0].Outputs {
		outputs = append(outputs, Output{
			Key:         aws.StringValue(o.OutputKey),
			Value:       aws.StringValue(o.OutputValue),
			Description: aws.StringValue(o.Description),
		})
	}

	return outputs, nil
}

func isAlreadyExists(err error) bool {
	if aerr, ok := err.(awserr.Error); ok {
		return aerr.Code() == cloudformation.ErrCodeAlreadyExistsException
	}
	return false
}

// isNoUpdate matches the ValidationError the provider returns for an update
// with no drift. A no-op deploy is equivalent to success.
func isNoUpdate(err error) bool {
	if aerr, ok := err.(awserr.Error); ok {
		return aerr.Code() == "ValidationError" &&
			strings.Contains(aerr.Message(), "No updates are to be performed")
	}
	return false
}
