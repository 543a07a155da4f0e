package errors

import (
	"encoding/json"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

var grpcCodes = map[Code]codes.Code{
	CodeOK:                codes.OK,
	CodeCanceled:          codes.Canceled,
	CodeInvalidArgument:   codes.InvalidArgument,
	CodeDeadlineExceeded:  codes.DeadlineExceeded,
	CodeNotFound:          codes.NotFound,
	CodeResourceExhausted: codes.ResourceExhausted,
	CodeInternal:          codes.Internal,
	CodeUnavailable:       codes.Unavailable,
}

// GRPCCode returns the matching gRPC status code, Unknown for codes outside the set
func (c Code) GRPCCode() codes.Code {
	if gc, ok := grpcCodes[c]; ok {
		return gc
	}
	return codes.Unknown
}

// codeFromGRPC is the inverse of GRPCCode; statuses the service never sends become internal
func codeFromGRPC(gc codes.Code) Code {
	for code, candidate := range grpcCodes {
		if candidate == gc {
			return code
		}
	}
	return CodeInternal
}

// ToGRPCError converts err to a gRPC status error.
// Metadata travels as a structpb.Struct detail holding code, message and meta.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !errors.As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if len(customErr.Meta) > 0 {
		if details, detailErr := errorDetails(customErr); detailErr == nil {
			if withDetails, attachErr := st.WithDetails(details); attachErr == nil {
				st = withDetails
			}
		}
	}
	return st.Err()
}

// FromGRPCError rebuilds an *Error from a gRPC status, restoring meta from the Struct detail.
// Errors that are not statuses pass through.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		details, ok := detail.(*structpb.Struct)
		if !ok {
			continue
		}
		if meta, ok := details.AsMap()["meta"].(map[string]interface{}); ok {
			customErr.Meta = meta
		}
		break
	}

	return customErr
}

// errorDetails flattens meta through JSON so every value is one structpb accepts
func errorDetails(e *Error) (*structpb.Struct, error) {
	raw, err := json.Marshal(e.Meta)
	if err != nil {
		return nil, err
	}
	var meta map[string]interface{}
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, err
	}

	return structpb.NewStruct(map[string]interface{}{
		"code":    string(e.Code),
		"message": e.Message,
		"meta":    meta,
	})
}
