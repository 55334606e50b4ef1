// Package params reads the JSON parameters file accompanying a stack
// template and derives the parameter and tag overrides submitted with a
// deploy.
package params

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudformation"
)

// Well-known parameter keys looked up directly for the preflight checks and
// the pipeline trigger.
const (
	PipelineNameKey   = "PipelineName"
	ArtifactBucketKey = "ArtifactBucketName"
	ConnectionArnKey  = "ConnectionArn"
)

type file struct {
	Parameters map[string]interface{} `json:"Parameters"`
	Tags       map[string]interface{} `json:"Tags"`
}

// Params holds the parameter and tag overrides extracted from a parameters
// file. Both top-level mappings are optional in the file.
type Params struct {
	parameters map[string]string
	tags       map[string]string
}

// Load reads and parses the parameters file at path.
func Load(path string) (*Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes a parameters document from r. Numbers keep their source
// representation, so a template parameter declared as "1" and one declared
// as 1 derive the same override.
func Parse(r io.Reader) (*Params, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc file
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}

	p := &Params{
		parameters: make(map[string]string, len(doc.Parameters)),
		tags:       make(map[string]string, len(doc.Tags)),
	}

	for k, v := range doc.Parameters {
		p.parameters[k] = formatScalar(v)
	}
	for k, v := range doc.Tags {
		p.tags[k] = formatScalar(v)
	}

	return p, nil
}

// Overrides returns the parameter overrides in KEY=VALUE form, ordered by
// key.
func (p *Params) Overrides() []string {
	overrides := make([]string, 0, len(p.parameters))
	for _, k := range sortedKeys(p.parameters) {
		overrides = append(overrides, k+"="+p.parameters[k])
	}
	return overrides
}

// StackParameters returns the parameter overrides as CloudFormation
// parameters, ordered by key.
func (p *Params) StackParameters() []*cloudformation.Parameter {
	stackParams := make([]*cloudformation.Parameter, 0, len(p.parameters))
	for _, k := range sortedKeys(p.parameters) {
		stackParams = append(stackParams, &cloudformation.Parameter{
			ParameterKey:   aws.String(k),
			ParameterValue: aws.String(p.parameters[k]),
		})
	}
	return stackParams
}

// StackTags returns the tag overrides as CloudFormation tags, ordered by
// key. An empty result means the tagging step should be skipped.
func (p *Params) StackTags() []*cloudformation.Tag {
	tags := make([]*cloudformation.Tag, 0, len(p.tags))
	for _, k := range sortedKeys(p.tags) {
		tags = append(tags, &cloudformation.Tag{
			Key:   aws.String(k),
			Value: aws.String(p.tags[k]),
		})
	}
	return tags
}

// Lookup returns the value of a single parameter, or the empty string if it
// is absent.
func (p *Params) Lookup(key string) string {
	return p.parameters[key]
}

// PipelineName returns the name of the pipeline the stack provisions.
func (p *Params) PipelineName() string {
	return p.Lookup(PipelineNameKey)
}

// ArtifactBucket returns the name of the pipeline's artifact bucket.
func (p *Params) ArtifactBucket() string {
	return p.Lookup(ArtifactBucketKey)
}

// ConnectionArn returns the ARN of the pipeline's source connection.
func (p *Params) ConnectionArn() string {
	return p.Lookup(ConnectionArnKey)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatScalar(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprintf("%v", s)
	}
}
