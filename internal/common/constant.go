package common

// ServerTokenSize is the number of random bytes behind the per-process
// verification token.
const ServerTokenSize = 32

// AccessTokenHeaderName is the gRPC metadata key a client may use to carry
// its bearer credential instead of putting it into the request body.
const AccessTokenHeaderName = "access_token"
