package ai_model

import (
	"bytes"
	"context"
	"fmt"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const (
	pathSymptoms = "/symptoms"
	pathPredict  = "/predict"
)

type predictionClient struct {
	BaseUrl    string
	HTTPClient *http.Client
}

// upstreamBody covers every field either endpoint may answer with.
type upstreamBody struct {
	Success          *bool    `json:"success"`
	Symptoms         []string `json:"symptoms"`
	Prediction       string   `json:"prediction"`
	PredictedDisease string   `json:"predicted_disease"`
	Message          string   `json:"message"`
	Error            string   `json:"error"`
}

func (b *upstreamBody) errorMessage() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Error
}

func NewPredictionClient(baseUrl string, timeout time.Duration) contracts.PredictionClient {
	return &predictionClient{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

func (c *predictionClient) FetchSymptoms(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+pathSymptoms, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	// An absent success flag counts as a failure.
	if body.Success == nil || !*body.Success {
		message := body.errorMessage()
		if message == "" {
			message = constvars.ErrClientSymptomsFailed
		}
		return nil, exceptions.ErrPredictionUpstream(nil, message)
	}
	if body.Symptoms == nil {
		return []string{}, nil
	}
	return body.Symptoms, nil
}

// Predict returns the upstream label, falling back to predicted_disease and
// then to a fixed placeholder.
func (c *predictionClient) Predict(ctx context.Context, symptoms []string) (string, error) {
	requestJSON, err := json.Marshal(map[string][]string{"symptoms": symptoms})
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+pathPredict, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	body, err := c.do(req)
	if err != nil {
		return "", err
	}

	switch {
	case body.Prediction != "":
		return body.Prediction, nil
	case body.PredictedDisease != "":
		return body.PredictedDisease, nil
	default:
		return constvars.PredictionUnavailable, nil
	}
}

// do sends req once. Failures surface the upstream message, then the upstream
// error, then the transport error text.
func (c *predictionClient) do(req *http.Request) (*upstreamBody, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrPredictionUpstream(err, err.Error())
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrPredictionUpstream(err, err.Error())
	}

	body := new(upstreamBody)
	decodeErr := json.Unmarshal(bodyBytes, body)

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		statusErr := fmt.Errorf("prediction service responded with status %d", resp.StatusCode)
		message := ""
		if decodeErr == nil {
			message = body.errorMessage()
		}
		if message == "" {
			message = statusErr.Error()
		}
		return nil, exceptions.ErrPredictionUpstream(statusErr, message)
	}

	if decodeErr != nil {
		return nil, exceptions.ErrDecodeResponse(decodeErr, "prediction service")
	}
	return body, nil
}
