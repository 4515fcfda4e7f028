package secrets

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/ssm"
)

// SSMAPI is the subset of the SSM client used for parameter fetches, narrowed
// so tests can stub it.
type SSMAPI interface {
	GetParameterWithContext(ctx aws.Context, input *ssm.GetParameterInput, opts ...request.Option) (*ssm.GetParameterOutput, error)
}

// SSMResolver fetches SecureString parameters from AWS SSM Parameter Store,
// decrypting at read time. It is the terminal resolver of the chain.
type SSMResolver struct {
	api SSMAPI
}

// NewSSMResolver creates a resolver backed by the given SSM API
func NewSSMResolver(api SSMAPI) *SSMResolver {
	return &SSMResolver{api: api}
}

// Resolve fetches and decrypts the named parameter
func (s *SSMResolver) Resolve(ctx context.Context, name string) (string, error) {
	out, err := s.api.GetParameterWithContext(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch parameter %s: %w", name, err)
	}

	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("parameter %s has no value", name)
	}

	return aws.StringValue(out.Parameter.Value), nil
}
