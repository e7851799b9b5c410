package lambda

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awslambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/goccy/go-json"

	"intellispell-go/internal/game"
)

// Invoker is the slice of the Lambda client the hint source needs
type Invoker interface {
	Invoke(ctx context.Context, params *awslambda.InvokeInput, optFns ...func(*awslambda.Options)) (*awslambda.InvokeOutput, error)
}

type hintRequest struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type hintResponse struct {
	Text string `json:"text"`
}

// HintSource asks a deployed function for "Hint n:" text
type HintSource struct {
	client   Invoker
	function string
}

func NewHintSource(client Invoker, function string) *HintSource {
	return &HintSource{
		client:   client,
		function: function,
	}
}

func (s *HintSource) FetchHints(ctx context.Context, word string, count int) (string, error) {
	if s.client == nil || s.function == "" {
		return "", fmt.Errorf("%w: no hint function configured", game.ErrProviderUnavailable)
	}

	payload, err := json.Marshal(hintRequest{Word: word, Count: count})
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	out, err := s.client.Invoke(ctx, &awslambda.InvokeInput{
		FunctionName: aws.String(s.function),
		Payload:      payload,
	})
	if err != nil {
		return "", fmt.Errorf("%w: invoke %s: %v", game.ErrProviderUnavailable, s.function, err)
	}
	if out.FunctionError != nil {
		return "", fmt.Errorf("%w: function error %s", game.ErrProviderUnavailable, aws.ToString(out.FunctionError))
	}

	var resp hintResponse
	if err := json.Unmarshal(out.Payload, &resp); err != nil {
		return "", fmt.Errorf("%w: failed to decode payload: %v", game.ErrMalformedResponse, err)
	}
	if resp.Text == "" {
		return "", fmt.Errorf("%w: empty text", game.ErrMalformedResponse)
	}

	return resp.Text, nil
}
