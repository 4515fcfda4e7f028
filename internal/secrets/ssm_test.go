package secrets

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSSM struct {
	input  *ssm.GetParameterInput
	output *ssm.GetParameterOutput
	err    error
}

func (s *stubSSM) GetParameterWithContext(_ aws.Context, input *ssm.GetParameterInput, _ ...request.Option) (*ssm.GetParameterOutput, error) {
	s.input = input
	if s.err != nil {
		return nil, s.err
	}
	return s.output, nil
}

func TestSSMResolver(t *testing.T) {
	t.Run("fetches with decryption", func(t *testing.T) {
		stub := &stubSSM{
			output: &ssm.GetParameterOutput{
				Parameter: &ssm.Parameter{Value: aws.String("hunter2")},
			},
		}

		value, err := NewSSMResolver(stub).Resolve(context.Background(), "cloudns-password")
		require.NoError(t, err)
		assert.Equal(t, "hunter2", value)
		assert.Equal(t, "cloudns-password", aws.StringValue(stub.input.Name))
		assert.True(t, aws.BoolValue(stub.input.WithDecryption))
	})

	t.Run("API error surfaces", func(t *testing.T) {
		stub := &stubSSM{err: fmt.Errorf("AccessDeniedException")}

		_, err := NewSSMResolver(stub).Resolve(context.Background(), "cloudns-password")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to fetch parameter cloudns-password")
	})

	t.Run("missing value is an error", func(t *testing.T) {
		stub := &stubSSM{output: &ssm.GetParameterOutput{}}

		_, err := NewSSMResolver(stub).Resolve(context.Background(), "cloudns-password")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "has no value")
	})
}
