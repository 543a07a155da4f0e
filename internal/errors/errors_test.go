package errors_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-forge/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestErrorString() {
	s.Equal("NOT_FOUND: encounter not found", errors.NotFound("encounter not found").Error())

	wrapped := errors.Wrap(fmt.Errorf("connection reset"), "failed to store encounter")
	s.Equal("INTERNAL: failed to store encounter: connection reset", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWrap() {
	s.Run("plain error becomes internal", func() {
		base := fmt.Errorf("database connection failed")
		wrapped := errors.Wrap(base, "failed to get encounter")

		s.Equal(errors.CodeInternal, wrapped.Code)
		s.Equal("failed to get encounter", wrapped.Message)
		s.Equal(base, wrapped.Unwrap())
	})

	s.Run("code and meta survive", func() {
		base := errors.NotFoundf("encounter %s not found", "enc_1").WithMeta("encounter_id", "enc_1")
		wrapped := errors.Wrapf(base, "failed to get encounter %s", "enc_1")

		s.Equal(errors.CodeNotFound, wrapped.Code)
		s.Equal("enc_1", wrapped.Meta["encounter_id"])
		s.True(errors.IsNotFound(wrapped))
	})

	s.Run("nil stays nil", func() {
		s.Nil(errors.Wrap(nil, "ignored"))
		s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "ignored"))
	})
}

func (s *ErrorsTestSuite) TestWrapWithCode_CopiesMeta() {
	base := errors.InvalidArgument("bad party").WithMeta("party_size", 0)
	wrapped := errors.WrapWithCode(base, errors.CodeResourceExhausted, "encounter generation unavailable")
	wrapped.WithMeta("attempts", 1)

	s.Equal(errors.CodeResourceExhausted, wrapped.Code)
	s.Equal(0, wrapped.Meta["party_size"])
	s.NotContains(base.Meta, "attempts")
}

func (s *ErrorsTestSuite) TestErrorIs() {
	s.True(errors.NotFound("a").Is(errors.NotFound("b")))
	s.False(errors.NotFound("a").Is(errors.InvalidArgument("a")))
	s.False(errors.NotFound("a").Is(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestGenerationUnavailable() {
	err := errors.GenerationUnavailable(map[string]string{
		"anthropic": "status 529",
		"openai":    "status 503",
	})

	s.True(errors.IsResourceExhausted(err))
	s.True(err.Code.Retryable())
	s.Equal(map[string]interface{}{
		"anthropic": "status 529",
		"openai":    "status 503",
	}, errors.GetMeta(err)[errors.MetaProviderErrors])
}

func (s *ErrorsTestSuite) TestFromContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.True(errors.IsCanceled(errors.FromContext(ctx.Err(), "generation stopped")))

	deadline := errors.FromContext(context.DeadlineExceeded, "generation stopped")
	s.Equal(errors.CodeDeadlineExceeded, deadline.Code)
	s.Equal(context.DeadlineExceeded, deadline.Unwrap())
}

func (s *ErrorsTestSuite) TestAccessors() {
	err := errors.Wrap(errors.NotFound("user friendly message").WithMeta("key", "value"), "wrapped message")
	plain := fmt.Errorf("standard error")

	s.Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Equal(errors.CodeInternal, errors.GetCode(plain))
	s.Equal(errors.CodeOK, errors.GetCode(nil))

	s.Equal("value", errors.GetMeta(err)["key"])
	s.Nil(errors.GetMeta(plain))

	s.Equal("wrapped message", errors.GetMessage(err))
	s.Equal("standard error", errors.GetMessage(plain))
	s.Empty(errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestCodeMappings() {
	testCases := []struct {
		code      errors.Code
		http      int
		grpc      codes.Code
		retryable bool
	}{
		{errors.CodeOK, http.StatusOK, codes.OK, false},
		{errors.CodeInvalidArgument, http.StatusBadRequest, codes.InvalidArgument, false},
		{errors.CodeNotFound, http.StatusNotFound, codes.NotFound, false},
		{errors.CodeResourceExhausted, http.StatusTooManyRequests, codes.ResourceExhausted, true},
		{errors.CodeCanceled, http.StatusRequestTimeout, codes.Canceled, false},
		{errors.CodeDeadlineExceeded, http.StatusGatewayTimeout, codes.DeadlineExceeded, false},
		{errors.CodeInternal, http.StatusInternalServerError, codes.Internal, false},
		{errors.CodeUnavailable, http.StatusServiceUnavailable, codes.Unavailable, true},
		{errors.Code("BOGUS"), http.StatusInternalServerError, codes.Unknown, false},
	}

	for _, tc := range testCases {
		s.Run(tc.code.String(), func() {
			s.Equal(tc.http, tc.code.HTTPStatus())
			s.Equal(tc.grpc, tc.code.GRPCCode())
			s.Equal(tc.retryable, tc.code.Retryable())
		})
	}
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	grpcErr := errors.ToGRPCError(errors.NotFound("encounter not found"))
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())
	s.Equal("encounter not found", st.Message())

	back := errors.FromGRPCError(status.Error(codes.InvalidArgument, "invalid input"))
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(back))
	s.Equal("invalid input", errors.GetMessage(back))

	s.Equal(errors.CodeInternal, errors.GetCode(errors.FromGRPCError(status.Error(codes.AlreadyExists, "dup"))))

	st, _ = status.FromError(errors.ToGRPCError(fmt.Errorf("plain")))
	s.Equal(codes.Internal, st.Code())

	s.Nil(errors.ToGRPCError(nil))
	s.Nil(errors.FromGRPCError(nil))
}

func (s *ErrorsTestSuite) TestGRPCConversion_MetaRoundTrip() {
	err := errors.NewValidationBuilder().RequiredField("party").Build()
	err = errors.Wrap(err, "invalid encounter request").WithMeta("attempts", 3)

	back := errors.FromGRPCError(errors.ToGRPCError(err))

	s.True(errors.IsInvalidArgument(back))
	meta := errors.GetMeta(back)
	s.Require().NotNil(meta)
	s.Equal(float64(3), meta["attempts"])
	s.Equal(
		map[string]interface{}{"party": []interface{}{"is required"}},
		meta[errors.MetaValidationErrors],
	)
}
