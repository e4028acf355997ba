package httpinteractions

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
)

// HandleAPIGateway adapta un evento HTTP API (v2) de API Gateway a Handle.
func (s *Server) HandleAPIGateway(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	reqID := req.RequestContext.RequestID
	if reqID == "" {
		reqID = uuid.NewString()
	}
	s.log.Debug("lambda hit", "request_id", reqID, "path", req.RawPath,
		"method", req.RequestContext.HTTP.Method, "ip", req.RequestContext.HTTP.SourceIP, "b64", req.IsBase64Encoded)

	if m := req.RequestContext.HTTP.Method; m != "" && m != http.MethodPost {
		return response(http.StatusMethodNotAllowed, reqID, errorBody("method not allowed")), nil
	}

	body := []byte(req.Body)
	if req.IsBase64Encoded {
		dec, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return response(http.StatusBadRequest, reqID, errorBody("invalid base64")), nil
		}
		body = dec
	}

	status, out := s.Handle(ctx, reqID, header(req.Headers, HeaderSignature), header(req.Headers, HeaderTimestamp), body)
	return response(status, reqID, out), nil
}

// API Gateway v2 manda los headers en minúscula, pero no siempre.
func header(h map[string]string, name string) string {
	if v, ok := h[strings.ToLower(name)]; ok {
		return v
	}
	if v, ok := h[name]; ok {
		return v
	}
	for k, v := range h {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

func response(status int, reqID string, body []byte) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":  "application/json",
			HeaderRequestID: reqID,
		},
		Body: string(body),
	}
}
