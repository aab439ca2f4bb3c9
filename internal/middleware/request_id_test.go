package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func (s *RequestIDTestSuite) TestGeneratesTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	var seen string
	handler := RequestID()(func(c echo.Context) error {
		seen = GetTraceID(c)
		return c.NoContent(http.StatusOK)
	})

	s.Require().NoError(handler(c))

	s.NotEmpty(seen)
	_, err := uuid.Parse(seen)
	s.NoError(err, "generated trace ID should be a UUID")
	s.Equal(seen, rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestPropagatesIncomingTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "incoming-trace-id")
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	s.Require().NoError(handler(c))
	s.Equal("incoming-trace-id", rec.Header().Get(TraceIDHeader))
	s.Equal("incoming-trace-id", GetTraceID(c))
}

func (s *RequestIDTestSuite) TestGetTraceID_Missing() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := s.echo.NewContext(req, httptest.NewRecorder())

	s.Empty(GetTraceID(c))
}
