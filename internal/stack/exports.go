package stack

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/cloudformation"
)

// Export is one named stack output value as listed by CloudFormation.
type Export struct {
	// Name is the export name, the cross-stack reference key.
	Name string
	// Value is the exported value, the literal record data for DNS exports.
	Value string
	// StackID is the ARN of the stack owning the export.
	StackID string
}

// CloudFormationAPI is the subset of the CloudFormation client used here,
// narrowed so tests can stub it.
type CloudFormationAPI interface {
	ListExportsWithContext(ctx aws.Context, input *cloudformation.ListExportsInput, opts ...request.Option) (*cloudformation.ListExportsOutput, error)
}

// Source lists stack exports from CloudFormation.
type Source struct {
	api CloudFormationAPI
}

// NewSource creates an export source backed by the given CloudFormation API.
func NewSource(api CloudFormationAPI) *Source {
	return &Source{api: api}
}

// List pages through every export on the account and region, following
// NextToken until the cursor is exhausted. Listing order is preserved.
func (s *Source) List(ctx context.Context) ([]Export, error) {
	var exports []Export

	input := &cloudformation.ListExportsInput{}
	for {
		out, err := s.api.ListExportsWithContext(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to list stack exports: %w", err)
		}

		for _, e := range out.Exports {
			exports = append(exports, Export{
				Name:    aws.StringValue(e.Name),
				Value:   aws.StringValue(e.Value),
				StackID: aws.StringValue(e.ExportingStackId),
			})
		}

		if aws.StringValue(out.NextToken) == "" {
			return exports, nil
		}
		input.NextToken = out.NextToken
	}
}
