package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRestrictedCurrency indicates that a currency named by a request is on
// the restricted list and must not be converted. Policy violation, surfaced
// to the caller immediately, checked before any cache or provider access.
var ErrRestrictedCurrency = errors.New("restricted currency")

// ErrProviderFailure indicates a single rate provider failed (non-2xx
// response, timeout, or malformed payload). Recovered internally by the
// failover chain and never surfaced by Convert.
var ErrProviderFailure = errors.New("rate provider failure")

// ErrNoProviderAvailable indicates every provider in the chain, including the
// static fallback, failed to produce a rate. This is the only total-failure
// mode of a conversion.
var ErrNoProviderAvailable = errors.New("no rate provider available")

// ErrPersistence indicates a rate-store read or write failed. Reads degrade
// to a cache miss; writes after a successful fetch are logged and dropped.
var ErrPersistence = errors.New("persistence error")
