// Package errors is the error vocabulary of rpg-forge.
//
// Every failure the service reports carries a Code that both transports understand:
// the gRPC handler converts with ToGRPCError and the HTTP handler with Code.HTTPStatus.
// Content problems found while balancing an encounter are not errors; they travel in
// the validation result instead.
//
// # Creating and wrapping
//
//	err := errors.NotFoundf("encounter %s not found", id)
//	return errors.Wrapf(err, "failed to get encounter %s", id)
//
// Wrap keeps the inner code and metadata. WrapWithCode reclassifies:
//
//	return errors.WrapWithCode(err, errors.CodeUnavailable, "redis: ping failed")
//
// # Generation failures
//
// When every provider has failed the generation client returns
//
//	errors.GenerationUnavailable(map[string]string{"anthropic": "status 529"})
//
// a ResourceExhausted error with the per-provider messages under MetaProviderErrors.
// FromContext turns ctx.Err() into Canceled or DeadlineExceeded.
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	for i, m := range party {
//	    errors.ValidatePartyMember(i, m.ClassName, m.Level, vb)
//	}
//	errors.ValidateDifficulty("difficulty", int(tier), vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// Build returns an InvalidArgument error whose MetaValidationErrors entry maps
// field names such as "party[2].level" to messages.
//
// # gRPC
//
// ToGRPCError attaches metadata as a google.protobuf.Struct status detail and
// FromGRPCError restores it, so meta values come back with JSON types.
package errors
